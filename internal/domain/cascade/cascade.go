// Package cascade defines the five canonical stylesheet roles and the fixed
// precedence in which they must be imported or linked.
package cascade

import (
	"path"
	"strings"
)

// Roles lists the canonical stylesheet basenames in cascade order.
var Roles = []string{"reset", "global", "layouts", "components", "overrides"}

// Position returns the ordinal cascade position (0-4) for a referenced
// stylesheet path, or -1 if the basename is not one of the canonical roles.
// Query strings and the .css extension are stripped before matching.
func Position(ref string) int {
	name := Basename(ref)
	for i, role := range Roles {
		if name == role {
			return i
		}
	}
	return -1
}

// Basename extracts the bare role name from a stylesheet reference:
// directory prefix, query string and .css extension removed, lowercased.
func Basename(ref string) string {
	ref = strings.TrimSpace(ref)
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	name := path.Base(strings.ReplaceAll(ref, "\\", "/"))
	name = strings.TrimSuffix(name, ".css")
	return strings.ToLower(name)
}

// Expected renders the canonical order for issue messages,
// e.g. "reset → global → layouts → components → overrides".
func Expected() string {
	return strings.Join(Roles, " → ")
}

// IsCanonical reports whether the basename of ref names one of the five
// canonical roles.
func IsCanonical(ref string) bool {
	return Position(ref) >= 0
}
