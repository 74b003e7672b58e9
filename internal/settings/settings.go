// Package settings provides programmatic access to Claude settings.json files.
package settings

// Schema: https://www.schemastore.org/claude-code-settings.json

// Settings models the parts of settings.json nudge reads or writes. Fields
// outside this struct are dropped on rewrite, which is why installs always
// back the file up first.
type Settings struct {
	Permissions *Permissions `json:"permissions,omitempty"`
	Hooks       *Hooks       `json:"hooks,omitempty"`
	OutputStyle string       `json:"outputStyle,omitempty"` //nolint:tagliatelle // Claude settings.json format
	Model       string       `json:"model,omitempty"`
}

// Permissions defines the Claude permission system configuration.
type Permissions struct {
	Allow []string `json:"allow,omitempty"`
}

// Hooks defines the complete hooks configuration structure.
type Hooks struct {
	PreToolUse       []HookMatcher `json:"PreToolUse,omitempty"`       //nolint:tagliatelle // Claude uses PascalCase
	PostToolUse      []HookMatcher `json:"PostToolUse,omitempty"`      //nolint:tagliatelle // Claude uses PascalCase
	UserPromptSubmit []HookMatcher `json:"UserPromptSubmit,omitempty"` //nolint:tagliatelle // Claude uses PascalCase
	SessionStart     []HookMatcher `json:"SessionStart,omitempty"`     //nolint:tagliatelle // Claude uses PascalCase
	Stop             []HookMatcher `json:"Stop,omitempty"`             //nolint:tagliatelle // Claude uses PascalCase
	SubagentStop     []HookMatcher `json:"SubagentStop,omitempty"`     //nolint:tagliatelle // Claude uses PascalCase
	PreCompact       []HookMatcher `json:"PreCompact,omitempty"`       //nolint:tagliatelle // Claude uses PascalCase
	Notification     []HookMatcher `json:"Notification,omitempty"`     //nolint:tagliatelle // Claude uses PascalCase
}

// HookMatcher represents a single matcher within a hook event.
type HookMatcher struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []HookCommand `json:"hooks"`
}

// HookCommand represents a single command to execute when a hook matches.
type HookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}
