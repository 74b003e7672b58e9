// Package constants contains shared name and path constants used by nudge.
package constants

const (
	// AppName is the application name used for XDG directory paths and hook commands.
	AppName = "nudge"

	// ClaudeDir is the Claude configuration directory name (.claude).
	ClaudeDir = ".claude"

	// LogFilename is the default log file name for nudge.
	LogFilename = "nudge.log"

	// JournalFilename is the invocation journal database file name.
	JournalFilename = "journal.db"

	// SettingsFilename is the Claude settings file name that nudge modifies.
	SettingsFilename = "settings.local.json"

	// ConfigFilename is the default nudge configuration file name.
	ConfigFilename = "nudge.yml"
)
