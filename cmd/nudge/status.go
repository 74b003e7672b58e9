package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mzkr/nudge/internal/config"
	"github.com/mzkr/nudge/internal/constants"
	"github.com/mzkr/nudge/internal/project"
	"github.com/mzkr/nudge/internal/settings"
	"github.com/mzkr/nudge/internal/state"
	"github.com/mzkr/nudge/internal/storage"
	"github.com/mzkr/nudge/internal/tracker"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// createStatusCommand creates the status command.
func createStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show hook installation and tracker status",
		Long:  "Show which nudge hooks are registered, whether the tracker CLI is available, and invocation counts.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := configPathFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			fs := afero.NewOsFs()
			cfg := config.LoadOrDefault(fs, configPath)

			root, err := project.FindRoot()
			if err != nil {
				return fmt.Errorf("failed to find project root: %w", err)
			}

			journalPath, err := storage.New(fs).GetJournalPath()
			if err != nil {
				return fmt.Errorf("failed to resolve journal path: %w", err)
			}

			return runStatus(cmd.OutOrStdout(), fs, root, journalPath, cfg)
		},
	}
}

func runStatus(out io.Writer, fs afero.Fs, root, journalPath string, cfg *config.Config) error {
	settingsPath := filepath.Join(root, constants.ClaudeDir, constants.SettingsFilename)

	current, err := settings.Load(fs, settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Hooks in %s:\n", settingsPath)
	for _, reg := range hookRegistrations() {
		installState := color.YellowString("missing")
		if current.FindHook(reg.event, reg.matcher) != nil {
			installState = color.GreenString("installed")
		}
		_, _ = fmt.Fprintf(out, "  %-11s %s\n", reg.name, installState)
	}

	client := tracker.NewClient(cfg.Tracker.Command, cfg.QueryTimeout())
	trackerState := color.YellowString("not found on PATH")
	if client.Available() {
		trackerState = color.GreenString("found")
	}
	_, _ = fmt.Fprintf(out, "Tracker CLI %q: %s\n", client.Command(), trackerState)

	printInvocationCounts(out, journalPath, root)
	return nil
}

// printInvocationCounts shows journal totals. The journal is best-effort on
// the write side, so an unreadable journal is reported, not fatal.
func printInvocationCounts(out io.Writer, journalPath, root string) {
	journal, err := state.Open(journalPath, root)
	if err != nil {
		_, _ = fmt.Fprintln(out, "Invocation journal unavailable")
		return
	}
	defer func() { _ = journal.Close() }()

	counts, err := journal.Counts(context.Background())
	if err != nil {
		_, _ = fmt.Fprintln(out, "Invocation journal unavailable")
		return
	}

	_, _ = fmt.Fprintln(out, "Invocations:")
	for _, reg := range hookRegistrations() {
		_, _ = fmt.Fprintf(out, "  %-11s %d\n", reg.name, counts[reg.name])
	}
}
