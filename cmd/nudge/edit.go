package main

import (
	"context"

	"github.com/mzkr/nudge/internal/advice"
	"github.com/mzkr/nudge/internal/config"
	"github.com/mzkr/nudge/internal/constants"
	"github.com/mzkr/nudge/internal/hooks"
	"github.com/spf13/cobra"
)

// createEditCommand creates the PreToolUse(Edit|Write|MultiEdit) hook command.
func createEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "edit",
		Short:        "Advise on an about-to-run file edit",
		Long:         "Reads a PreToolUse payload from stdin and prints a testing reminder for source files.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHookCommand(cmd, constants.EditHook, true, editAdvice)
		},
	}
}

func editAdvice(_ context.Context, cfg *config.Config, event *hooks.HookEvent) []string {
	return advice.ForEdit(event.ToolInput.FilePath, cfg.Harness)
}
