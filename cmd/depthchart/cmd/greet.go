package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/depthchart/internal/greet"
	"github.com/wexinc/depthchart/internal/prompt"
)

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet",
		Short: "Ask for your name and say hello",
		Long:  "Ask for your name until one is entered, then say hello.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := greet.Run(prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()))
			if prompt.IsEOF(err) {
				return nil
			}
			return err
		},
	}
}
