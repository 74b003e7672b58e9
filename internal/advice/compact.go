package advice

import (
	"fmt"
	"time"
)

// ForCompaction returns the pre-compaction checklist. Input from the host is
// ignored entirely; the only variable part is the suggested worklog file
// name, derived from the local calendar date.
func ForCompaction(now time.Time, worklogDir string) []string {
	return []string{
		"",
		"=== COMPACTION IMMINENT ===",
		"",
		"Before context is compacted, ensure:",
		"",
		"1. Work state is saved:",
		"   - Update beads issues with current status",
		"   - If work is incomplete, note what's left",
		"",
		fmt.Sprintf("2. Handoff notes (in %s/):", worklogDir),
		"   - What changed",
		"   - What surprised you",
		"   - What to remember",
		"",
		"3. No hanging state:",
		"   - Uncommitted changes? Commit or stash",
		"   - Failing tests? Create a beads issue",
		"",
		fmt.Sprintf("Suggested worklog file: %s/%s.md", worklogDir, now.Format("2006-01-02")),
		"",
	}
}
