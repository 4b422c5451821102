// Package cmd provides the CLI commands for depthchart.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/wexinc/depthchart/internal/config"
	dcerrors "github.com/wexinc/depthchart/internal/errors"
	"github.com/wexinc/depthchart/internal/menu"
	"github.com/wexinc/depthchart/internal/prompt"
	"github.com/wexinc/depthchart/internal/tui"
	"github.com/wexinc/depthchart/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

// newRootCmd builds the full command tree. Cobra commands keep flag state
// between runs, so tests build a fresh tree for each case.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "depthchart",
		Short: "Manage a football team's depth chart",
		Long: `depthchart keeps a ranked list of players for each of the 18 football
positions and saves it to a JSON file after every change.

Run without a subcommand to open the interactive menu, or use the
subcommands to script changes.

Examples:
  depthchart                          # Interactive menu
  depthchart --tui                    # Full-screen interface
  depthchart add QB Tom Brady         # Add a player to the bottom of QB
  depthchart move WR Alice TE -r 1    # Move Alice to 1st string TE
  depthchart lineup                   # Show the starting eleven`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	pf := root.PersistentFlags()
	pf.StringP("file", "f", "", "Depth chart JSON file (overrides chart.file)")
	pf.String("config", "", "Config file (default "+config.DefaultConfigPath+")")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.Bool("tui", false, "Use the full-screen interface for the interactive menu")

	root.Version = version.Current().Version
	root.SetVersionTemplate("depthchart {{.Version}}\n")

	root.AddCommand(
		newAddCmd(),
		newMoveCmd(),
		newShowCmd(),
		newLineupCmd(),
		newPositionsCmd(),
		newGreetCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// runRoot starts the interactive menu selected by --tui or ui.mode.
func runRoot(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, "menu")
	if err != nil {
		return err
	}
	defer s.Close()

	useTUI, _ := cmd.Flags().GetBool("tui")
	if useTUI || s.cfg.UI.Mode == config.UIModeTUI {
		s.logger.Info("starting full-screen interface")
		return tui.Run(s.store)
	}

	m := menu.New(s.store, prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()))
	m.SetLogger(s.logger)
	switch s.cfg.UI.Color {
	case config.ColorAlways:
		m.SetColor(true)
	case config.ColorNever:
		m.SetColor(false)
	}
	return m.Run()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// FormatError renders err for the terminal, with the suggestion when the
// error carries one. The result ends in a newline.
func FormatError(err error) string {
	var ce *dcerrors.ChartError
	if errors.As(err, &ce) {
		return ce.Format()
	}
	return "Error: " + err.Error() + "\n"
}
