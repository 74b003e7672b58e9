package main

import (
	"context"
	"fmt"
	"io"

	"github.com/mzkr/nudge/internal/config"
	"github.com/mzkr/nudge/internal/hooks"
	"github.com/mzkr/nudge/internal/logging"
	"github.com/mzkr/nudge/internal/project"
	"github.com/mzkr/nudge/internal/state"
	"github.com/mzkr/nudge/internal/storage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// adviseFunc turns a parsed hook event into advisory output lines. Hooks
// that ignore stdin receive a nil event.
type adviseFunc func(ctx context.Context, cfg *config.Config, event *hooks.HookEvent) []string

// runHookCommand is the shared body of every hook subcommand. It must never
// return an error: the hook contract is that advisory processing cannot fail
// the host's action, so every failure path collapses to "no further output,
// exit zero".
func runHookCommand(cmd *cobra.Command, hookName string, readsInput bool, advise adviseFunc) error {
	fs := afero.NewOsFs()
	ctx, projectRoot := initHookContext(fs)
	cfg := loadHookConfig(cmd, fs)

	var event *hooks.HookEvent
	if readsInput {
		parsed, err := hooks.ParseInput(cmd.InOrStdin())
		if err != nil {
			logging.Get(ctx).Debug().Err(err).Str("hook", hookName).Msg("unusable hook payload")
			return nil
		}
		event = parsed
	}

	writeLines(cmd.OutOrStdout(), advise(ctx, cfg, event))
	recordInvocation(ctx, fs, projectRoot, hookName)
	return nil
}

// initHookContext builds a logging context keyed to the project root. Both
// steps are best-effort; a bare context is good enough to keep going.
func initHookContext(fs afero.Fs) (context.Context, string) {
	projectRoot, err := project.FindRoot()
	if err != nil {
		projectRoot = ""
	}

	ctx, err := logging.New(context.Background(), fs, logging.Config{
		ProjectID: projectRoot,
		Level:     logging.InfoLevel,
	})
	if err != nil {
		return context.Background(), projectRoot
	}
	return ctx, projectRoot
}

// loadHookConfig resolves the --config flag and loads config, falling back
// to defaults on any problem.
func loadHookConfig(cmd *cobra.Command, fs afero.Fs) *config.Config {
	configPath, err := configPathFromFlags(cmd.Flags())
	if err != nil {
		return config.Default()
	}
	return config.LoadOrDefault(fs, configPath)
}

func writeLines(w io.Writer, lines []string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(w, line)
	}
}

// recordInvocation journals one hook firing for `nudge status`. Failures are
// logged and dropped; the journal is never worth breaking a hook over.
func recordInvocation(ctx context.Context, fs afero.Fs, projectRoot, hookName string) {
	journalPath, err := storage.New(fs).GetJournalPath()
	if err != nil {
		logging.Get(ctx).Debug().Err(err).Msg("journal path unavailable")
		return
	}

	journal, err := state.Open(journalPath, projectRoot)
	if err != nil {
		logging.Get(ctx).Debug().Err(err).Msg("journal open failed")
		return
	}
	defer func() { _ = journal.Close() }()

	if err := journal.Record(ctx, hookName); err != nil {
		logging.Get(ctx).Debug().Err(err).Msg("journal write failed")
	}
}
