// Package fix implements the mechanical repair transforms. Each fixer
// targets one violation class and reuses the detection predicates exported
// by the corresponding scanner package, so checker and fixer cannot
// disagree about what counts as a violation.
package fix

// Fixer rewrites one violation class in a file's content.
type Fixer interface {
	// Name is the subcommand and registry key.
	Name() string
	// Summary is a one-line description for help output.
	Summary() string
	// Extensions lists the file extensions this fixer applies to,
	// including the leading dot.
	Extensions() []string
	// Verb is the per-file report prefix, e.g. "FIXED" or "SORTED".
	Verb() string
	// Apply transforms content and returns the result plus the number of
	// individual fixes made. name is the file path, for fixers whose
	// behavior depends on the file type. Apply must be idempotent.
	Apply(name, content string) (string, int)
}

// All returns every fixer in registration order.
func All() []Fixer {
	return []Fixer{
		UnitZero{},
		Debug{},
		Equality{},
		ImportOrder{},
		PropertyOrder{},
	}
}

// ByName looks a fixer up by its subcommand name.
func ByName(name string) (Fixer, bool) {
	for _, f := range All() {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}
