package main

import (
	"context"
	"time"

	"github.com/mzkr/nudge/internal/advice"
	"github.com/mzkr/nudge/internal/config"
	"github.com/mzkr/nudge/internal/constants"
	"github.com/mzkr/nudge/internal/hooks"
	"github.com/spf13/cobra"
)

// createPrecompactCommand creates the PreCompact hook command.
func createPrecompactCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "precompact",
		Short:        "Print the pre-compaction checklist",
		Long:         "Prints handoff reminders before context compaction. Any stdin payload is ignored.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHookCommand(cmd, constants.PrecompactHook, false, precompactAdvice)
		},
	}
}

func precompactAdvice(_ context.Context, cfg *config.Config, _ *hooks.HookEvent) []string {
	return advice.ForCompaction(time.Now(), cfg.WorklogDir)
}
