package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(afero.NewMemMapFs(), "nudge.yml")
	require.NoError(t, err)

	assert.Equal(t, DefaultTrackerCommand, cfg.Tracker.Command)
	assert.Equal(t, DefaultActiveLimit, cfg.Tracker.ActiveLimit)
	assert.Equal(t, DefaultReadyLimit, cfg.Tracker.ReadyLimit)
	assert.Equal(t, DefaultWorklogDir, cfg.WorklogDir)
	assert.Equal(t, DefaultHarness, cfg.Harness)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout())
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	yml := []byte(`
tracker:
  command: beads
  timeout: 2
  ready_limit: 7
worklog_dir: notes
harness: make check
`)
	require.NoError(t, afero.WriteFile(fs, "nudge.yml", yml, 0o600))

	cfg, err := Load(fs, "nudge.yml")
	require.NoError(t, err)

	assert.Equal(t, "beads", cfg.Tracker.Command)
	assert.Equal(t, 2*time.Second, cfg.QueryTimeout())
	assert.Equal(t, 7, cfg.Tracker.ReadyLimit)
	// Unset fields keep their defaults
	assert.Equal(t, DefaultActiveLimit, cfg.Tracker.ActiveLimit)
	assert.Equal(t, "notes", cfg.WorklogDir)
	assert.Equal(t, "make check", cfg.Harness)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "nudge.yml", []byte("tracker: ["), 0o600))

	_, err := Load(fs, "nudge.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yml  string
	}{
		{name: "negative timeout", yml: "tracker:\n  timeout: -1\n"},
		{name: "negative limit", yml: "tracker:\n  ready_limit: -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "nudge.yml", []byte(tt.yml), 0o600))

			_, err := Load(fs, "nudge.yml")
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefaultSwallowsErrors(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "nudge.yml", []byte("{{{"), 0o600))

	cfg := LoadOrDefault(fs, "nudge.yml")
	assert.Equal(t, DefaultTrackerCommand, cfg.Tracker.Command)
}
