package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wexinc/depthchart/internal/chart"
)

func newShowCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "show",
		Short: "Show the full depth chart",
		Long: `Show every position in chart order with its players ranked from
1st string down.

Use --json to print the chart the way it is stored on disk.`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}
	c.Flags().Bool("json", false, "Print the chart as JSON")
	return c
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, "show")
	if err != nil {
		return err
	}
	defer s.Close()

	c := s.store.Chart()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	return chart.RenderChart(cmd.OutOrStdout(), c)
}

func newLineupCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "lineup",
		Aliases: []string{"starters"},
		Short:   "Show the starting eleven",
		Long: `Show the offensive and defensive starters taken from the top of each
position. Slots without a player are shown as "` + chart.NotFilled + `".`,
		Args: cobra.NoArgs,
		RunE: runLineup,
	}
}

func runLineup(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, "lineup")
	if err != nil {
		return err
	}
	defer s.Close()

	return chart.RenderStartingEleven(cmd.OutOrStdout(), s.store.Chart())
}
