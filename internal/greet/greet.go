// Package greet asks for a name until one is given and says hello.
package greet

import (
	"fmt"

	"github.com/wexinc/depthchart/internal/prompt"
)

const (
	Question = "Enter your name: "
	Retry    = "You did not enter your name. Please try again."
)

// Run asks for a name, repeating the question while the answer is blank,
// and prints the greeting. The name is printed as typed.
func Run(p *prompt.Prompter) (string, error) {
	name, err := prompt.AskValid(p, Question, func(raw string) (string, error) {
		if _, err := prompt.NonEmpty(Retry)(raw); err != nil {
			return "", err
		}
		return raw, nil
	})
	if err != nil {
		return "", err
	}
	fmt.Fprintf(p.Out(), "Hello %s\n", name)
	return name, nil
}
