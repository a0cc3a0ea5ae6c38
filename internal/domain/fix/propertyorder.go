package fix

import (
	"regexp"
	"sort"
	"strings"

	"github.com/designcheck/designcheck/internal/domain/css"
	"github.com/designcheck/designcheck/internal/domain/suppress"
)

var (
	declLineRe = regexp.MustCompile(`^\s*(-?[a-zA-Z][a-zA-Z-]*)\s*:\s*[^;{}]+;\s*$`)
	markerRe   = regexp.MustCompile(`check-(disable|enable)`)
)

// PropertyOrder sorts the declarations of simple rule blocks into group
// order: Positioning, Box Model, Typography, Visual, Animation. Only
// blocks whose body is plain one-declaration-per-line text are touched;
// nested blocks, :root, and anything near a suppression marker are left
// exactly as written. Ungrouped declarations keep their original slots.
type PropertyOrder struct{}

func (PropertyOrder) Name() string { return "property-order" }
func (PropertyOrder) Summary() string {
	return "sort rule-block declarations into property-group order"
}
func (PropertyOrder) Extensions() []string { return []string{".css"} }
func (PropertyOrder) Verb() string         { return "SORTED" }

func (PropertyOrder) Apply(_, content string) (string, int) {
	lines := strings.Split(content, "\n")

	sup := suppress.NewCSS()
	inComment := false
	suppressed := make([]bool, len(lines))
	stripped := make([]string, len(lines))
	for i, raw := range lines {
		suppressed[i] = sup.Observe(raw)
		s, nowInComment := css.StripBlockComments(raw, inComment)
		inComment = nowInComment
		stripped[i] = css.BlankValues(s)
	}

	fixes := 0
	i := 0
	for i < len(lines) {
		if !isBlockOpener(stripped[i]) || css.IsRootSelector(stripped[i]) {
			i++
			continue
		}

		// The body must close with a bare "}" and contain no nested braces,
		// otherwise the block is not simple and stays untouched.
		j := i + 1
		simple := true
		for ; j < len(lines); j++ {
			s := stripped[j]
			if strings.Contains(s, "{") {
				simple = false
				break
			}
			if strings.Contains(s, "}") {
				simple = strings.TrimSpace(s) == "}"
				break
			}
		}
		if j >= len(lines) || !simple {
			i++
			continue
		}

		if blockSortable(lines, suppressed, i, j) {
			fixes += sortBlock(lines, stripped, i+1, j)
		}
		i = j + 1
	}

	return strings.Join(lines, "\n"), fixes
}

func isBlockOpener(s string) bool {
	t := strings.TrimSpace(s)
	return strings.HasSuffix(t, "{") &&
		strings.Count(t, "{") == 1 && !strings.Contains(t, "}")
}

// blockSortable rejects blocks that a reorder could corrupt: suppressed
// lines, suppression markers whose scope depends on line position, and
// comments left open across a line boundary.
func blockSortable(lines []string, suppressed []bool, open, close int) bool {
	for k := open; k <= close; k++ {
		if suppressed[k] || markerRe.MatchString(lines[k]) {
			return false
		}
		if strings.Contains(lines[k], "/*") && !strings.Contains(lines[k], "*/") {
			return false
		}
	}
	return true
}

// sortBlock stable-sorts the grouped declaration lines of one block body
// among the slots they already occupy and returns the number of lines
// that moved.
func sortBlock(lines, stripped []string, from, to int) int {
	var slots []int
	var groups []css.Group
	for k := from; k < to; k++ {
		m := declLineRe.FindStringSubmatch(stripped[k])
		if m == nil {
			continue
		}
		if g := css.GroupOf(strings.ToLower(m[1])); g != css.GroupNone {
			slots = append(slots, k)
			groups = append(groups, g)
		}
	}

	order := make([]int, len(slots))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool { return groups[order[a]] < groups[order[b]] })

	moved := 0
	sorted := make([]string, len(slots))
	for k, src := range order {
		sorted[k] = lines[slots[src]]
	}
	for k, slot := range slots {
		if lines[slot] != sorted[k] {
			moved++
		}
		lines[slot] = sorted[k]
	}
	return moved
}
