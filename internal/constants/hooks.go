package constants

// Hook names used for settings registration and the invocation journal.
const (
	// BashHook advises on about-to-run shell commands.
	BashHook = "bash"

	// EditHook advises on about-to-run file edits.
	EditHook = "edit"

	// PrecompactHook emits the pre-compaction checklist.
	PrecompactHook = "precompact"

	// SessionHook emits the session start briefing.
	SessionHook = "session"
)

// Tool matchers for PreToolUse hook registration.
const (
	// BashToolMatcher matches the Bash tool.
	BashToolMatcher = "Bash"

	// EditToolMatcher matches the file modification tools.
	EditToolMatcher = "Edit|Write|MultiEdit"
)
