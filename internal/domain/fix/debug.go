package fix

import (
	"regexp"
	"strings"

	"github.com/designcheck/designcheck/internal/domain/js"
	"github.com/designcheck/designcheck/internal/domain/suppress"
)

var debuggerStmtRe = regexp.MustCompile(`^\s*debugger\s*;?\s*$`)

// Debug removes debugger statements and statement-position console calls.
// Calls spanning several lines are consumed by tracking parenthesis depth
// over string-stripped text until the call closes, so an unbalanced paren
// inside a string literal cannot derail the match.
type Debug struct{}

func (Debug) Name() string         { return "debug" }
func (Debug) Summary() string      { return "remove console.* calls and debugger statements" }
func (Debug) Extensions() []string { return []string{".js", ".jsx", ".ts", ".tsx"} }
func (Debug) Verb() string         { return "FIXED" }

func (Debug) Apply(_, content string) (string, int) {
	lines := strings.Split(content, "\n")

	// First pass: suppression flags and a comment- and string-stripped view
	// of every line. The removal pass below jumps across lines, so state
	// tracking cannot be interleaved with it.
	sup := suppress.NewJS()
	inComment := false
	suppressed := make([]bool, len(lines))
	views := make([]string, len(lines))
	for i, raw := range lines {
		suppressed[i] = sup.Observe(raw)
		stripped, nowInComment := js.StripComments(raw, inComment)
		inComment = nowInComment
		views[i] = js.StripStrings(stripped)
	}

	var out []string
	fixes := 0

	for i := 0; i < len(lines); i++ {
		raw := lines[i]
		if suppressed[i] {
			out = append(out, raw)
			continue
		}

		if debuggerStmtRe.MatchString(views[i]) {
			fixes++
			continue
		}

		m := js.ConsoleCallRe.FindStringIndex(views[i])
		if m == nil || strings.TrimSpace(views[i][:m[0]]) != "" {
			out = append(out, raw)
			continue
		}

		j, after := closeCall(views, i, m[1]-1)
		if j < 0 {
			// Unbalanced through end of file; leave the call alone.
			out = append(out, raw)
			continue
		}
		fixes++
		// The view offsets map onto the raw line up to any dropped // tail.
		rest := lines[j][after:]
		if strings.TrimSpace(rest) != "" {
			out = append(out, rest)
		}
		i = j
	}

	return strings.Join(out, "\n"), fixes
}

// closeCall scans forward from views[start][open] counting parenthesis
// depth until the call closes, then consumes a trailing semicolon. It
// returns the closing line index and the offset just past the statement,
// or -1 if the call never balances.
func closeCall(views []string, start, open int) (int, int) {
	depth := 0
	for j := start; j < len(views); j++ {
		pos := 0
		if j == start {
			pos = open
		}
		for ; pos < len(views[j]); pos++ {
			switch views[j][pos] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					end := pos + 1
					for end < len(views[j]) && (views[j][end] == ' ' || views[j][end] == '\t') {
						end++
					}
					if end < len(views[j]) && views[j][end] == ';' {
						end++
					}
					return j, end
				}
			}
		}
	}
	return -1, -1
}
