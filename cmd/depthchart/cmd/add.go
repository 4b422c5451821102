package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add POSITION PLAYER...",
		Short: "Add a player to the bottom of a position",
		Long: `Add a player to the bottom of a position's depth chart.

POSITION accepts the code or the full name in any case (QB, qb,
quarterback). The remaining arguments are joined into the player name.
A position already holding four players is not changed.

Examples:
  depthchart add QB Tom Brady
  depthchart add "running back" Barry Sanders`,
		Args: cobra.MinimumNArgs(2),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, "add")
	if err != nil {
		return err
	}
	defer s.Close()

	placed, err := s.store.Add(args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s.\n", placed)
	return nil
}
