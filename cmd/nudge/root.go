package main

import (
	"fmt"

	"github.com/mzkr/nudge/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// createRootCommand creates the main root command that shows help by default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Advisory lifecycle hooks for Claude Code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.ConfigFilename, "Path to config file")

	rootCmd.AddCommand(
		createBashCommand(),
		createEditCommand(),
		createPrecompactCommand(),
		createSessionCommand(),
		createInstallCommand(),
		createStatusCommand(),
	)

	return rootCmd
}

// configPathFromFlags extracts the config path from a command's flag set.
func configPathFromFlags(flags *pflag.FlagSet) (string, error) {
	configPath, err := flags.GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	return configPath, nil
}
