package js

import "regexp"

// secretPattern pairs a detection regex with the label used in the issue
// message. Patterns run against the raw, unstripped line: secrets live
// inside the very string literals the other checks blank out.
type secretPattern struct {
	re    *regexp.Regexp
	label string
}

var secretPatterns = []secretPattern{
	{
		re:    regexp.MustCompile(`(?i)(?:password|passwd|pwd)\s*[:=]\s*["'` + "`" + `][^"'` + "`" + `]{8,}["'` + "`" + `]`),
		label: "hardcoded password",
	},
	{
		re:    regexp.MustCompile(`(?i)(?:api[_-]?key|apikey)\s*[:=]\s*["'` + "`" + `][^"'` + "`" + `]{16,}["'` + "`" + `]`),
		label: "hardcoded API key",
	},
	{
		re:    regexp.MustCompile(`(?i)(?:secret|token|auth)[\w-]*\s*[:=]\s*["'` + "`" + `][^"'` + "`" + `]{16,}["'` + "`" + `]`),
		label: "hardcoded secret or token",
	},
	{
		re:    regexp.MustCompile(`(?i)(?:access[_-]?key|private[_-]?key)\s*[:=]\s*["'` + "`" + `][^"'` + "`" + `]{16,}["'` + "`" + `]`),
		label: "hardcoded access key",
	},
	{
		re:    regexp.MustCompile(`["'` + "`" + `][sp]k[-_](?:live|test)[-_][0-9a-zA-Z]{10,}["'` + "`" + `]`),
		label: "hardcoded payment provider key",
	},
}

// FindSecret returns the label of the first secret pattern matching the raw
// line, or "". At most one secret is reported per line even when several
// patterns match.
func FindSecret(raw string) string {
	for _, p := range secretPatterns {
		if p.re.MatchString(raw) {
			return p.label
		}
	}
	return ""
}
