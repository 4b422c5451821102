package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/depthchart/internal/config"
	dcerrors "github.com/wexinc/depthchart/internal/errors"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initC := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file with the default settings.

Use --force to overwrite an existing file.

Examples:
  depthchart config init
  depthchart config init --config team.yaml --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}
	initC.Flags().Bool("force", false, "Overwrite an existing config file")

	showC := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file, .env and
DEPTHCHART_* environment variables have been applied.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}

	c.AddCommand(initC, showC)
	return c
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return dcerrors.ConfigExists(path)
	}

	if err := config.Save(config.NewConfig(), path); err != nil {
		return dcerrors.Wrap(err, dcerrors.ErrConfig, "failed to write configuration")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
