// Package suppress implements the inline suppression markers shared by all
// three scanners: check-disable / check-enable block scoping plus the
// one-shot check-disable-next-line, each written in the host language's
// comment syntax. The next-line marker suppresses the next non-blank line in
// every language.
package suppress

import (
	"regexp"
	"strings"
)

// Tracker carries suppression state across the lines of one file.
type Tracker struct {
	nextLineRe *regexp.Regexp
	disableRe  *regexp.Regexp
	enableRe   *regexp.Regexp

	disabled bool
	skipNext bool
}

// NewCSS recognizes markers in /* ... */ comments.
func NewCSS() *Tracker {
	return &Tracker{
		nextLineRe: regexp.MustCompile(`/\*\s*check-disable-next-line\s*\*/`),
		disableRe:  regexp.MustCompile(`/\*\s*check-disable\s*\*/`),
		enableRe:   regexp.MustCompile(`/\*\s*check-enable\s*\*/`),
	}
}

// NewJS recognizes markers in both // and /* ... */ comments.
func NewJS() *Tracker {
	return &Tracker{
		nextLineRe: regexp.MustCompile(`(?://\s*check-disable-next-line(?:\s|$)|/\*\s*check-disable-next-line\s*\*/)`),
		disableRe:  regexp.MustCompile(`(?://\s*check-disable(?:\s|$)|/\*\s*check-disable\s*\*/)`),
		enableRe:   regexp.MustCompile(`(?://\s*check-enable(?:\s|$)|/\*\s*check-enable\s*\*/)`),
	}
}

// NewHTML recognizes markers in <!-- ... --> comments.
func NewHTML() *Tracker {
	return &Tracker{
		nextLineRe: regexp.MustCompile(`<!--\s*check-disable-next-line\s*-->`),
		disableRe:  regexp.MustCompile(`<!--\s*check-disable\s*-->`),
		enableRe:   regexp.MustCompile(`<!--\s*check-enable\s*-->`),
	}
}

// Observe consumes one raw source line and reports whether checks on that
// line are suppressed. Marker detection runs on the raw line so markers
// survive the scanners' comment stripping.
func (t *Tracker) Observe(line string) bool {
	suppressed := false

	// A pending next-line marker is consumed by the first non-blank line.
	if t.skipNext && strings.TrimSpace(line) != "" {
		suppressed = true
		t.skipNext = false
	}

	// next-line must be tested before disable: the disable pattern is a
	// prefix of the next-line marker text.
	switch {
	case t.nextLineRe.MatchString(line):
		t.skipNext = true
	case t.disableRe.MatchString(line):
		t.disabled = true
	case t.enableRe.MatchString(line):
		t.disabled = false
	}

	return suppressed || t.disabled
}

// Lines runs the tracker over whole-file content and returns the set of
// 1-based line numbers whose checks are suppressed. Used by the HTML
// scanner, which matches by offset rather than line by line.
func Lines(content string, t *Tracker) map[int]bool {
	suppressed := make(map[int]bool)
	for i, line := range strings.Split(content, "\n") {
		if t.Observe(line) {
			suppressed[i+1] = true
		}
	}
	return suppressed
}
