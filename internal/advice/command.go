// Package advice produces the advisory text nudge prints to the transcript.
//
// Every advisor is a pure function from its inputs to a list of output
// lines. An empty result means the advisor had nothing to say, which is
// indistinguishable from a failure upstream; that equivalence is the
// contract that keeps hooks non-blocking.
package advice

import (
	"fmt"
	"strings"
)

// Attribution markers that should never appear in commit commands.
var attributionMarkers = []string{"Generated with", "Co-Authored-By"}

// ForCommand inspects an about-to-run shell command and returns commit and
// push reminders. Matching is deliberately plain substring matching: a
// command mentioning "git commit" anywhere triggers the style guide, false
// positives included.
func ForCommand(command, harness string) []string {
	var lines []string

	if strings.Contains(command, "git commit") {
		lines = append(lines,
			"=== COMMIT STYLE ===",
			"- Single line, imperative mood, ~50 chars",
			"- NO AI attribution, NO co-author, NO emoji",
			"- Write it like a human developer would",
			"- Example: 'Add dark mode toggle to settings'",
		)

		if containsAttribution(command) {
			lines = append(lines,
				"",
				"WARNING: AI attribution detected - remove it!",
			)
		}
	}

	if strings.Contains(command, "git push") {
		lines = append(lines, fmt.Sprintf("-> Did you run `%s`?", harness))
	}

	return lines
}

func containsAttribution(command string) bool {
	for _, marker := range attributionMarkers {
		if strings.Contains(command, marker) {
			return true
		}
	}
	return false
}
