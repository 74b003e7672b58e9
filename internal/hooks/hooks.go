// Package hooks parses the JSON payloads Claude Code delivers on stdin.
package hooks

import (
	"encoding/json"
	"io"
)

// ToolInput carries the tool parameters of a PreToolUse event. Fields absent
// from the payload stay empty strings; callers treat empty as "nothing to
// inspect" rather than an error.
type ToolInput struct {
	Command     string `json:"command"`
	FilePath    string `json:"file_path"` //nolint:tagliatelle // API uses snake_case
	Description string `json:"description"`
}

// HookEvent is the subset of the hook payload nudge inspects.
type HookEvent struct {
	HookEventName string    `json:"hook_event_name"` //nolint:tagliatelle // API uses snake_case
	ToolName      string    `json:"tool_name"`       //nolint:tagliatelle // API uses snake_case
	ToolInput     ToolInput `json:"tool_input"`      //nolint:tagliatelle // API uses snake_case
}

// ParseInput decodes a hook payload from the given reader.
func ParseInput(reader io.Reader) (*HookEvent, error) {
	var event HookEvent
	decoder := json.NewDecoder(reader)
	err := decoder.Decode(&event)
	if err != nil {
		return nil, err //nolint:wrapcheck // JSON decode errors are self-descriptive
	}
	return &event, nil
}
