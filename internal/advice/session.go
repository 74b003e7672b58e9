package advice

import (
	"context"
	"fmt"

	"github.com/mzkr/nudge/internal/logging"
	"github.com/mzkr/nudge/internal/tracker"
)

// Section headers for the two tracker-backed briefing sections.
const (
	activeHeader = "=== ACTIVE WORK (in_progress) ==="
	readyHeader  = "=== READY TO WORK (no blockers) ==="
)

// ForSession returns the session start briefing: a fixed checklist followed
// by up to two sections of work items from the tracker. The two queries are
// sequential and independently best-effort; a query that fails, times out,
// or returns nothing simply contributes no section. The checklist is always
// present.
func ForSession(ctx context.Context, src tracker.Source, activeLimit, readyLimit int) []string {
	lines := []string{
		"=== SESSION START ===",
		"- For non-trivial work: Read SYSTEM_DESIGN.md first",
		"- Check beads for related/blocking issues",
		"- Confirm understanding before writing code",
		"- If unclear, ask questions first",
		"",
	}

	active, err := src.ListInProgress(ctx)
	if err != nil {
		logging.Get(ctx).Debug().Err(err).Msg("in_progress query skipped")
	} else {
		lines = append(lines, issueSection(activeHeader, active, activeLimit)...)
	}

	ready, err := src.ListReady(ctx, readyLimit)
	if err != nil {
		logging.Get(ctx).Debug().Err(err).Msg("ready query skipped")
	} else {
		lines = append(lines, issueSection(readyHeader, ready, readyLimit)...)
	}

	return lines
}

// issueSection renders a header and up to limit issues. An empty list yields
// no section at all, header included.
func issueSection(header string, issues []tracker.Issue, limit int) []string {
	if len(issues) == 0 {
		return nil
	}
	if len(issues) > limit {
		issues = issues[:limit]
	}

	lines := make([]string, 0, len(issues)+2)
	lines = append(lines, header)
	for _, issue := range issues {
		lines = append(lines, formatIssue(issue))
	}
	return append(lines, "")
}

func formatIssue(issue tracker.Issue) string {
	id := issue.ID
	if id == "" {
		id = "?"
	}
	title := issue.Title
	if title == "" {
		title = "Untitled"
	}
	return fmt.Sprintf("  [%s] %s", id, title)
}
