package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mzkr/nudge/internal/constants"
	"github.com/mzkr/nudge/internal/project"
	"github.com/mzkr/nudge/internal/prompt"
	"github.com/mzkr/nudge/internal/settings"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// hookRegistration describes one hook entry nudge manages in settings.json.
type hookRegistration struct {
	name    string
	event   settings.HookEvent
	matcher string
	command string
}

func hookRegistrations() []hookRegistration {
	return []hookRegistration{
		{
			name:    constants.BashHook,
			event:   settings.PreToolUseEvent,
			matcher: constants.BashToolMatcher,
			command: constants.AppName + " " + constants.BashHook,
		},
		{
			name:    constants.EditHook,
			event:   settings.PreToolUseEvent,
			matcher: constants.EditToolMatcher,
			command: constants.AppName + " " + constants.EditHook,
		},
		{
			name:    constants.PrecompactHook,
			event:   settings.PreCompactEvent,
			matcher: "",
			command: constants.AppName + " " + constants.PrecompactHook,
		},
		{
			name:    constants.SessionHook,
			event:   settings.SessionStartEvent,
			matcher: "",
			command: constants.AppName + " " + constants.SessionHook,
		},
	}
}

// createInstallCommand creates the install command.
func createInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Register nudge hooks in the project's Claude settings",
		Long:  "Register the four nudge hook commands in the project's .claude settings file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}

			root, err := project.FindRoot()
			if err != nil {
				return fmt.Errorf("failed to find project root: %w", err)
			}

			return runInstall(cmd.OutOrStdout(), afero.NewOsFs(), prompt.NewLinerPrompter(), root, force)
		},
	}
	cmd.Flags().Bool("force", false, "Reinstall without confirmation")
	return cmd
}

func runInstall(out io.Writer, fs afero.Fs, prompter prompt.Prompter, root string, force bool) error {
	defer func() { _ = prompter.Close() }()

	settingsDir := filepath.Join(root, constants.ClaudeDir)
	settingsPath := filepath.Join(settingsDir, constants.SettingsFilename)

	current, err := settings.Load(fs, settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if hasNudgeHooks(current) && !force {
		confirmed, err := prompt.Confirm(prompter, "nudge hooks already installed. Reinstall?")
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(out, "Install cancelled.")
			return nil
		}
	}

	exists, err := afero.Exists(fs, settingsPath)
	if err != nil {
		return fmt.Errorf("failed to check settings file: %w", err)
	}
	if exists {
		backupPath, err := settings.CreateBackup(fs, settingsPath)
		if err != nil {
			return fmt.Errorf("failed to back up settings: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Backed up existing settings to %s\n", backupPath)
	}

	registrations := hookRegistrations()
	for _, reg := range registrations {
		if err := current.RemoveHook(reg.event, reg.matcher); err != nil {
			return fmt.Errorf("failed to replace %s hook: %w", reg.name, err)
		}
		command := settings.HookCommand{Type: "command", Command: reg.command}
		if err := current.AddHook(reg.event, reg.matcher, command); err != nil {
			return fmt.Errorf("failed to add %s hook: %w", reg.name, err)
		}
	}

	if err := fs.MkdirAll(settingsDir, 0o750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := settings.Save(fs, current, settingsPath); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	_, _ = fmt.Fprintln(out, color.GreenString("Installed %d hooks into %s", len(registrations), settingsPath))
	return nil
}

func hasNudgeHooks(s *settings.Settings) bool {
	for _, reg := range hookRegistrations() {
		if s.FindHook(reg.event, reg.matcher) != nil {
			return true
		}
	}
	return false
}
