package storage

import (
	"path/filepath"
	"testing"

	"github.com/mzkr/nudge/internal/constants"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDataDir(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	manager := New(fs)

	dataDir, err := manager.GetDataDir()
	require.NoError(t, err)
	assert.Equal(t, constants.AppName, filepath.Base(dataDir))

	exists, err := afero.DirExists(fs, dataDir)
	require.NoError(t, err)
	assert.True(t, exists, "data directory should be created")
}

func TestGetLogPath(t *testing.T) {
	t.Parallel()

	manager := New(afero.NewMemMapFs())

	logPath, err := manager.GetLogPath()
	require.NoError(t, err)
	assert.Equal(t, constants.LogFilename, filepath.Base(logPath))
}

func TestGetJournalPath(t *testing.T) {
	t.Parallel()

	manager := New(afero.NewMemMapFs())

	journalPath, err := manager.GetJournalPath()
	require.NoError(t, err)
	assert.Equal(t, constants.JournalFilename, filepath.Base(journalPath))
}
