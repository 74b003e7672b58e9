package main

import (
	"context"

	"github.com/mzkr/nudge/internal/advice"
	"github.com/mzkr/nudge/internal/config"
	"github.com/mzkr/nudge/internal/constants"
	"github.com/mzkr/nudge/internal/hooks"
	"github.com/spf13/cobra"
)

// createBashCommand creates the PreToolUse(Bash) hook command.
func createBashCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "bash",
		Short:        "Advise on an about-to-run shell command",
		Long:         "Reads a PreToolUse payload from stdin and prints commit-hygiene and push reminders.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHookCommand(cmd, constants.BashHook, true, bashAdvice)
		},
	}
}

func bashAdvice(_ context.Context, cfg *config.Config, event *hooks.HookEvent) []string {
	return advice.ForCommand(event.ToolInput.Command, cfg.Harness)
}
