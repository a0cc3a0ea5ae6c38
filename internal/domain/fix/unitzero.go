package fix

import (
	"strings"

	"github.com/designcheck/designcheck/internal/domain/css"
	"github.com/designcheck/designcheck/internal/domain/suppress"
)

// UnitZero rewrites zero values carrying a redundant unit, "margin: 0px"
// becoming "margin: 0". It walks stylesheets with the same brace-depth and
// :root tracking as the scanner, so it only ever touches declarations the
// scanner would flag.
type UnitZero struct{}

func (UnitZero) Name() string         { return "unit-zero" }
func (UnitZero) Summary() string      { return "rewrite 0px, 0em, 0% and friends to bare 0" }
func (UnitZero) Extensions() []string { return []string{".css"} }
func (UnitZero) Verb() string         { return "FIXED" }

func (UnitZero) Apply(_, content string) (string, int) {
	lines := strings.Split(content, "\n")

	sup := suppress.NewCSS()
	inComment := false
	depth := 0
	rootDepth := -1
	pendingRoot := false
	fixes := 0

	for i, raw := range lines {
		suppressed := sup.Observe(raw)

		line, nowInComment := css.StripBlockComments(raw, inComment)
		inComment = nowInComment
		stripped := css.BlankValues(line)

		if css.IsRootSelector(stripped) && rootDepth == -1 {
			pendingRoot = true
		}

		// Collect value-region edits, then apply right to left so earlier
		// offsets stay valid. Offsets in stripped map onto raw because both
		// strip passes are length preserving.
		type edit struct{ start, end int }
		var edits []edit

		decls := css.DeclRe.FindAllStringSubmatchIndex(stripped, -1)
		declIdx := 0
		for pos := 0; pos <= len(stripped); pos++ {
			if declIdx < len(decls) && decls[declIdx][2] == pos {
				m := decls[declIdx]
				declIdx++
				prop := stripped[m[2]:m[3]]
				value := stripped[m[4]:m[5]]

				ok := !suppressed && rootDepth == -1 && depth > 0 &&
					!strings.HasPrefix(prop, "--")
				if ok {
					for _, z := range css.UnitZeroRe.FindAllStringSubmatchIndex(value, -1) {
						edits = append(edits, edit{m[4] + z[4], m[4] + z[5]})
					}
				}
			}
			if pos == len(stripped) {
				break
			}
			switch stripped[pos] {
			case '{':
				if pendingRoot {
					rootDepth = depth
					pendingRoot = false
				}
				depth++
			case '}':
				if depth > 0 {
					depth--
				}
				if rootDepth != -1 && depth <= rootDepth {
					rootDepth = -1
				}
			}
		}

		for j := len(edits) - 1; j >= 0; j-- {
			raw = raw[:edits[j].start] + "0" + raw[edits[j].end:]
			fixes++
		}
		lines[i] = raw
	}

	return strings.Join(lines, "\n"), fixes
}
