package handbook

import (
	"fmt"
	"strings"
)

// FormatResults formats search results for display, one numbered entry per
// result with its anchor and preview. Returns an empty string when there
// are no results.
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for i, r := range results {
		parts = append(parts, fmt.Sprintf("%d. %s (#%s)\n   %s", i+1, r.Title, r.ID, r.Preview))
	}

	return strings.Join(parts, "\n\n")
}
