package settings

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nudgeCommand(cmd string) HookCommand {
	return HookCommand{Type: "command", Command: cmd}
}

func TestAddHook(t *testing.T) {
	t.Parallel()

	s := &Settings{}
	err := s.AddHook(PreToolUseEvent, "Bash", nudgeCommand("nudge bash"))
	require.NoError(t, err)

	matcher := s.FindHook(PreToolUseEvent, "Bash")
	require.NotNil(t, matcher)
	require.Len(t, matcher.Hooks, 1)
	assert.Equal(t, "nudge bash", matcher.Hooks[0].Command)
}

func TestAddHookDuplicate(t *testing.T) {
	t.Parallel()

	s := &Settings{}
	require.NoError(t, s.AddHook(SessionStartEvent, "", nudgeCommand("nudge session")))

	err := s.AddHook(SessionStartEvent, "", nudgeCommand("nudge session"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAddHookValidation(t *testing.T) {
	t.Parallel()

	s := &Settings{}

	err := s.AddHook(PreToolUseEvent, "Bash", HookCommand{Command: "nudge bash"})
	assert.Error(t, err, "empty type should be rejected")

	err = s.AddHook(PreToolUseEvent, "Bash", HookCommand{Type: "command"})
	assert.Error(t, err, "empty command should be rejected")
}

func TestAddHookUnsupportedEvent(t *testing.T) {
	t.Parallel()

	s := &Settings{}
	err := s.AddHook(HookEvent("PostCompact"), "", nudgeCommand("nudge x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported event")
}

func TestFindHookMissing(t *testing.T) {
	t.Parallel()

	s := &Settings{}
	assert.Nil(t, s.FindHook(PreCompactEvent, ""))

	require.NoError(t, s.AddHook(PreCompactEvent, "", nudgeCommand("nudge precompact")))
	assert.Nil(t, s.FindHook(PreCompactEvent, "SomethingElse"))
}

func TestRemoveHook(t *testing.T) {
	t.Parallel()

	s := &Settings{}
	require.NoError(t, s.AddHook(PreToolUseEvent, "Bash", nudgeCommand("nudge bash")))
	require.NoError(t, s.AddHook(PreToolUseEvent, "Edit|Write|MultiEdit", nudgeCommand("nudge edit")))

	require.NoError(t, s.RemoveHook(PreToolUseEvent, "Bash"))

	assert.Nil(t, s.FindHook(PreToolUseEvent, "Bash"))
	assert.NotNil(t, s.FindHook(PreToolUseEvent, "Edit|Write|MultiEdit"))
}

func TestRemoveHookMissingIsNoop(t *testing.T) {
	t.Parallel()

	s := &Settings{}
	assert.NoError(t, s.RemoveHook(PreToolUseEvent, "Bash"))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	s, err := Load(afero.NewMemMapFs(), ".claude/settings.local.json")
	require.NoError(t, err)
	assert.Nil(t, s.Hooks)
}

func TestLoadInvalidJSON(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "settings.json", []byte("{broken"), 0o600))

	_, err := Load(fs, "settings.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings JSON")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	original := &Settings{Model: "opus"}
	require.NoError(t, original.AddHook(SessionStartEvent, "", nudgeCommand("nudge session")))

	require.NoError(t, Save(fs, original, "settings.json"))

	loaded, err := Load(fs, "settings.json")
	require.NoError(t, err)
	assert.Equal(t, "opus", loaded.Model)
	require.NotNil(t, loaded.FindHook(SessionStartEvent, ""))
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "settings.json", []byte(`{"model":"opus"}`), 0o600))

	backupPath, err := CreateBackup(fs, "settings.json")
	require.NoError(t, err)
	assert.Equal(t, "settings.json.bak", backupPath)

	data, err := afero.ReadFile(fs, backupPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"model":"opus"}`, string(data))
}
