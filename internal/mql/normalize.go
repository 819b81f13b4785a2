// Package mql post-processes generated Expert Advisor source: stripping
// the Markdown wrapper the model may emit and decorating the result for
// display. Nothing here validates or reformats the code itself.
package mql

import (
	"regexp"
	"strings"
)

// fenceLine matches a line that is nothing but a code-fence delimiter,
// optionally carrying a language tag (```mql5, ```cpp, ```). Matching is
// line-anchored on purpose: inline backticks inside the code must survive.
var fenceLine = regexp.MustCompile("^```[A-Za-z0-9+#._-]*[ \t]*$")

// Normalize removes fence delimiter lines from the raw model response and
// trims surrounding blank space, yielding the clean source text that is
// displayed, copied, and saved. It is idempotent.
func Normalize(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if fenceLine.MatchString(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
