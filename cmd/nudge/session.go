package main

import (
	"context"

	"github.com/mzkr/nudge/internal/advice"
	"github.com/mzkr/nudge/internal/config"
	"github.com/mzkr/nudge/internal/constants"
	"github.com/mzkr/nudge/internal/hooks"
	"github.com/mzkr/nudge/internal/tracker"
	"github.com/spf13/cobra"
)

// createSessionCommand creates the SessionStart hook command.
func createSessionCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "session",
		Short:        "Print the session start briefing",
		Long:         "Prints the session checklist, then best-effort work-item sections from the issue tracker.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHookCommand(cmd, constants.SessionHook, false, sessionAdvice)
		},
	}
}

func sessionAdvice(ctx context.Context, cfg *config.Config, _ *hooks.HookEvent) []string {
	client := tracker.NewClient(cfg.Tracker.Command, cfg.QueryTimeout())
	return advice.ForSession(ctx, client, cfg.Tracker.ActiveLimit, cfg.Tracker.ReadyLimit)
}
