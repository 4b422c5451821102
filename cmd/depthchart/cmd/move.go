package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wexinc/depthchart/internal/chart"
	"github.com/wexinc/depthchart/internal/prompt"
)

func newMoveCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "move FROM PLAYER TO",
		Short: "Move a player to a new position and string",
		Long: `Move a player from one position to a string position in another.

The player is taken off FROM and inserted at --rank in TO, pushing the
players below down. If TO has fewer players than the rank, the player is
added at the bottom. Without --rank the string position is asked for.

Examples:
  depthchart move WR "Jerry Rice" TE --rank 1
  depthchart move LB Lee "defensive end"`,
		Args: cobra.ExactArgs(3),
		RunE: runMove,
	}
	c.Flags().IntP("rank", "r", 0, fmt.Sprintf("String position in the new position (%d-%d)", chart.MinRank, chart.MaxRank))
	return c
}

func runMove(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, "move")
	if err != nil {
		return err
	}
	defer s.Close()

	from, to, err := s.store.CheckMove(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	player := strings.TrimSpace(args[1])

	rank, _ := cmd.Flags().GetInt("rank")
	if !cmd.Flags().Changed("rank") {
		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		label := fmt.Sprintf("Enter the string position (%d-%d) for %s in %s: ", chart.MinRank, chart.MaxRank, player, to)
		rank, err = prompt.AskValid(p, label, prompt.Rank)
		if err != nil {
			return fmt.Errorf("no string position given: %w", err)
		}
	}

	placed, err := s.store.Move(string(from), player, string(to), rank)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s.\n", player, from)
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s.\n", placed)
	return nil
}
