package settings

import (
	"errors"
	"fmt"
)

// HookEvent represents the valid hook event types.
type HookEvent string

const (
	PreToolUseEvent       HookEvent = "PreToolUse"
	PostToolUseEvent      HookEvent = "PostToolUse"
	UserPromptSubmitEvent HookEvent = "UserPromptSubmit"
	SessionStartEvent     HookEvent = "SessionStart"
	StopEvent             HookEvent = "Stop"
	SubagentStopEvent     HookEvent = "SubagentStop"
	PreCompactEvent       HookEvent = "PreCompact"
	NotificationEvent     HookEvent = "Notification"
)

// matchersFor returns a pointer to the matcher slice for the given event.
func (h *Hooks) matchersFor(event HookEvent) (*[]HookMatcher, error) {
	switch event {
	case PreToolUseEvent:
		return &h.PreToolUse, nil
	case PostToolUseEvent:
		return &h.PostToolUse, nil
	case UserPromptSubmitEvent:
		return &h.UserPromptSubmit, nil
	case SessionStartEvent:
		return &h.SessionStart, nil
	case StopEvent:
		return &h.Stop, nil
	case SubagentStopEvent:
		return &h.SubagentStop, nil
	case PreCompactEvent:
		return &h.PreCompact, nil
	case NotificationEvent:
		return &h.Notification, nil
	default:
		return nil, fmt.Errorf("unsupported event: %s", event)
	}
}

// AddHook adds a new hook to the specified event in the settings. An empty
// matcher is allowed and matches everything.
func (s *Settings) AddHook(event HookEvent, matcher string, command HookCommand) error {
	if command.Type == "" {
		return errors.New("command type cannot be empty")
	}
	if command.Command == "" {
		return errors.New("command cannot be empty")
	}

	if s.Hooks == nil {
		s.Hooks = &Hooks{}
	}

	matchers, err := s.Hooks.matchersFor(event)
	if err != nil {
		return err
	}

	for _, existing := range *matchers {
		if existing.Matcher == matcher {
			return fmt.Errorf("hook with matcher '%s' already exists for event '%s'", matcher, event)
		}
	}

	*matchers = append(*matchers, HookMatcher{
		Matcher: matcher,
		Hooks:   []HookCommand{command},
	})
	return nil
}

// FindHook returns the matcher registered for the event, or nil if absent.
func (s *Settings) FindHook(event HookEvent, matcher string) *HookMatcher {
	if s.Hooks == nil {
		return nil
	}

	matchers, err := s.Hooks.matchersFor(event)
	if err != nil {
		return nil
	}

	for i := range *matchers {
		if (*matchers)[i].Matcher == matcher {
			return &(*matchers)[i]
		}
	}
	return nil
}

// RemoveHook removes the matcher registered for the event, if present.
func (s *Settings) RemoveHook(event HookEvent, matcher string) error {
	if s.Hooks == nil {
		return nil
	}

	matchers, err := s.Hooks.matchersFor(event)
	if err != nil {
		return err
	}

	for i, existing := range *matchers {
		if existing.Matcher == matcher {
			*matchers = append((*matchers)[:i], (*matchers)[i+1:]...)
			return nil
		}
	}
	return nil
}
