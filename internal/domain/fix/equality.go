package fix

import (
	"strings"

	"github.com/designcheck/designcheck/internal/domain/js"
	"github.com/designcheck/designcheck/internal/domain/suppress"
)

// Equality upgrades loose equality operators to their strict forms, == to
// === and != to !==. It shares js.FindLooseEquality with the scanner, so
// the "== null" idiom and operators inside strings or comments are left
// alone by both.
type Equality struct{}

func (Equality) Name() string         { return "equality" }
func (Equality) Summary() string      { return "replace == and != with === and !==" }
func (Equality) Extensions() []string { return []string{".js", ".jsx", ".ts", ".tsx"} }
func (Equality) Verb() string         { return "FIXED" }

func (Equality) Apply(_, content string) (string, int) {
	lines := strings.Split(content, "\n")

	sup := suppress.NewJS()
	inComment := false
	fixes := 0

	for i, raw := range lines {
		suppressed := sup.Observe(raw)

		// Comment state has to advance even on suppressed lines.
		startInComment := inComment
		stripped, nowInComment := js.StripComments(raw, startInComment)
		inComment = nowInComment
		if suppressed {
			continue
		}

		// Each insertion shifts later offsets, so re-derive the stripped
		// view and ask for the first remaining violation until none is
		// left. The fixed operator gains a third '=' and stops matching.
		for {
			idx := js.FindLooseEquality(js.StripStrings(stripped))
			if idx < 0 {
				break
			}
			raw = raw[:idx+2] + "=" + raw[idx+2:]
			stripped, _ = js.StripComments(raw, startInComment)
			fixes++
		}
		lines[i] = raw
	}

	return strings.Join(lines, "\n"), fixes
}
