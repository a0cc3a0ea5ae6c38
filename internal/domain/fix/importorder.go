package fix

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/designcheck/designcheck/internal/domain/cascade"
	"github.com/designcheck/designcheck/internal/domain/css"
	"github.com/designcheck/designcheck/internal/domain/html"
	"github.com/designcheck/designcheck/internal/domain/suppress"
)

// ImportOrder reorders canonical stylesheet references into cascade order,
// covering both @import lines in CSS and <link rel="stylesheet"> lines in
// HTML. Lines are reassigned among the slots they already occupy, so
// comments and unrelated markup between them stay where they are.
type ImportOrder struct{}

func (ImportOrder) Name() string { return "import-order" }
func (ImportOrder) Summary() string {
	return "reorder @import and <link> lines into cascade order"
}
func (ImportOrder) Extensions() []string { return []string{".css", ".html"} }
func (ImportOrder) Verb() string { return "REORDERED" }

func (ImportOrder) Apply(name, content string) (string, int) {
	lines := strings.Split(content, "\n")

	var sup *suppress.Tracker
	isHTML := strings.EqualFold(filepath.Ext(name), ".html")
	if isHTML {
		sup = suppress.NewHTML()
	} else {
		sup = suppress.NewCSS()
	}

	// One reference per line is assumed, matching the scanners. Suppressed
	// lines keep their place and do not participate in the reorder.
	type slot struct {
		line int
		pos  int
	}
	var slots []slot
	inComment := false

	for i, raw := range lines {
		suppressed := sup.Observe(raw)

		var ref string
		if isHTML {
			if tag := html.LinkRe.FindString(raw); tag != "" {
				if m := html.HrefRe.FindStringSubmatch(tag); m != nil {
					ref = m[1]
				}
			}
		} else {
			line, nowInComment := css.StripBlockComments(raw, inComment)
			inComment = nowInComment
			if m := css.ImportRe.FindStringSubmatch(line); m != nil {
				ref = m[1]
			}
		}
		if ref == "" || suppressed {
			continue
		}
		if pos := cascade.Position(ref); pos >= 0 {
			slots = append(slots, slot{line: i, pos: pos})
		}
	}

	ordered := make([]slot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(a, b int) bool { return ordered[a].pos < ordered[b].pos })

	fixes := 0
	reordered := make([]string, len(lines))
	copy(reordered, lines)
	for k, s := range ordered {
		target := slots[k].line
		if reordered[target] != lines[s.line] {
			fixes++
		}
		reordered[target] = lines[s.line]
	}

	return strings.Join(reordered, "\n"), fixes
}
