// Package tier implements the three-layer architecture model: source files
// live in 01-presentation, 02-logic or 03-data directories, and imports may
// only flow forward one layer at a time.
package tier

import "regexp"

// Names maps tier index (1-3) to its directory name suffix.
var Names = map[int]string{
	1: "presentation",
	2: "logic",
	3: "data",
}

// Dirs lists the tier directory basenames in order.
var Dirs = []string{"01-presentation", "02-logic", "03-data"}

var segmentRe = regexp.MustCompile(`0([1-3])-(presentation|logic|data)`)

// Of extracts the tier index from a path containing a 0N-<tiername> segment.
// Returns 0 when the path carries no tier segment or the number and name
// disagree.
func Of(path string) int {
	m := segmentRe.FindStringSubmatch(path)
	if m == nil {
		return 0
	}
	n := int(m[1][0] - '0')
	if Names[n] != m[2] {
		return 0
	}
	return n
}

// Violation classifies an import edge between two tiered files.
type Violation int

const (
	// OK means the import direction is allowed.
	OK Violation = iota
	// Reverse means a lower tier is imported from a higher one
	// (e.g. logic importing presentation).
	Reverse
	// Skip means the import jumps over the intermediate tier
	// (e.g. presentation importing data directly).
	Skip
)

// Classify checks an import from a file in fileTier to a target in
// importTier. Same-tier and adjacent-forward imports are allowed.
func Classify(fileTier, importTier int) Violation {
	if fileTier == 0 || importTier == 0 || fileTier == importTier {
		return OK
	}
	if importTier < fileTier {
		return Reverse
	}
	if importTier > fileTier+1 {
		return Skip
	}
	return OK
}
