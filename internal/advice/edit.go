package advice

import (
	"fmt"
	"strings"
)

var (
	codeSuffixes   = []string{".ts", ".tsx", ".js", ".jsx", ".py"}
	testMarkers    = []string{".test.", "__tests__", ".spec."}
	configPatterns = []string{"package.json", "tsconfig", ".md", ".txt", ".json", ".yml", ".yaml"}
)

// ForEdit inspects an about-to-be-modified file path and returns a testing
// reminder for source files. Test files and config/doc files get nothing;
// the test-file exclusion wins even when the path also looks like code.
func ForEdit(path, harness string) []string {
	if !isCode(path) || isTest(path) || isConfig(path) {
		return nil
	}

	return []string{
		fmt.Sprintf("-> Code modified. Run relevant tests or `%s`", harness),
		"   - Check for type errors",
		"   - Test the actual behavior if it's visual/runtime",
	}
}

func isCode(path string) bool {
	for _, suffix := range codeSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func isTest(path string) bool {
	for _, marker := range testMarkers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

func isConfig(path string) bool {
	for _, pattern := range configPatterns {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}
