// Package prompt reads answers from a line-oriented terminal and re-asks
// until an answer passes validation.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	dcerrors "github.com/wexinc/depthchart/internal/errors"
)

// Validator turns a raw answer into a value. A non-nil error rejects the
// answer; its message is shown before the question is asked again.
type Validator[T any] func(raw string) (T, error)

// Prompter asks questions on out and reads one line per answer from in.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Out returns the writer questions are printed to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Ask prints label and returns the next line of input without its line
// ending. It returns io.EOF once input is exhausted.
func (p *Prompter) Ask(label string) (string, error) {
	if _, err := io.WriteString(p.out, label); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

// AskValid asks label until validate accepts the answer. Rejections print
// the validator's message. Read errors, including io.EOF, end the loop.
func AskValid[T any](p *Prompter, label string, validate Validator[T]) (T, error) {
	for {
		raw, err := p.Ask(label)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := validate(raw)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, dcerrors.Message(err))
	}
}

// IsEOF reports whether err means input ended.
func IsEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
