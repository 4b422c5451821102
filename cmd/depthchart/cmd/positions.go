package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wexinc/depthchart/internal/chart"
)

func newPositionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "positions",
		Short: "List the positions and the names they accept",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range chart.Positions {
				fmt.Fprintf(cmd.OutOrStdout(), "%-3s %-16s %s\n", p, p.FullName(), strings.Join(chart.Aliases(p), ", "))
			}
		},
	}
}
