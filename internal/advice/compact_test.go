package advice

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mzkr/nudge/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForCompaction(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	lines := ForCompaction(now, config.DefaultWorklogDir)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "=== COMPACTION IMMINENT ===")
	assert.Contains(t, joined, "1. Work state is saved:")
	assert.Contains(t, joined, "2. Handoff notes (in worklogs/):")
	assert.Contains(t, joined, "3. No hanging state:")
	assert.Contains(t, joined, "Suggested worklog file: worklogs/2026-08-31.md")
}

func TestForCompactionDateFormat(t *testing.T) {
	t.Parallel()

	lines := ForCompaction(time.Now(), config.DefaultWorklogDir)

	pattern := regexp.MustCompile(`Suggested worklog file: worklogs/\d{4}-\d{2}-\d{2}\.md`)
	var matched bool
	for _, line := range lines {
		if pattern.MatchString(line) {
			matched = true
		}
	}
	assert.True(t, matched, "expected a suggested worklog line with a YYYY-MM-DD date")
}

func TestForCompactionZeroPadsDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	lines := ForCompaction(now, config.DefaultWorklogDir)

	assert.Contains(t, lines, "Suggested worklog file: worklogs/2026-01-02.md")
}

func TestForCompactionCustomWorklogDir(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	lines := ForCompaction(now, "notes")

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "2. Handoff notes (in notes/):")
	assert.Contains(t, joined, "Suggested worklog file: notes/2026-08-31.md")
}

func TestForCompactionIsDeterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	first := ForCompaction(now, config.DefaultWorklogDir)
	second := ForCompaction(now, config.DefaultWorklogDir)
	require.Equal(t, first, second)
}
