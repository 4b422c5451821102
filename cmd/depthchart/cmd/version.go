package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wexinc/depthchart/internal/version"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for depthchart.

Displays the current version, commit hash, build date,
and Go/platform information.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	c.Flags().Bool("json", false, "Print version information as JSON")
	return c
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Current()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := info.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
	return nil
}
