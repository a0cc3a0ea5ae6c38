package domain

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var registryYAML []byte

// Registry is the static total mapping from rule id to the skill that
// enforces it. A rule mapped to the empty string is a project-specific
// convention with no external enforcement domain.
type Registry struct {
	skills map[string]string
}

// LoadRegistry parses the embedded registry data. It fails only if the
// embedded YAML is malformed, which is a build defect, not a runtime
// condition.
func LoadRegistry() (*Registry, error) {
	skills := make(map[string]string)
	if err := yaml.Unmarshal(registryYAML, &skills); err != nil {
		return nil, fmt.Errorf("parsing embedded rule registry: %w", err)
	}
	return &Registry{skills: skills}, nil
}

// Skill returns the enforcing skill tag for a rule, or "" for
// project-specific rules and unknown ids.
func (r *Registry) Skill(rule string) string {
	return r.skills[rule]
}

// Has reports whether the rule id is registered.
func (r *Registry) Has(rule string) bool {
	_, ok := r.skills[rule]
	return ok
}

// Rules returns all registered rule ids, sorted.
func (r *Registry) Rules() []string {
	rules := make([]string, 0, len(r.skills))
	for rule := range r.skills {
		rules = append(rules, rule)
	}
	sort.Strings(rules)
	return rules
}

// Mismatch describes one direction of drift between the registry and the
// rule ids the scanners declare.
type Mismatch struct {
	Rule   string
	Reason string
}

// Validate asserts set-equality between the registry keys and the rule ids
// declared by the scanners. Both directions are checked: a scanner rule
// missing from the registry and a registry key no scanner emits are each
// reported as a mismatch.
func (r *Registry) Validate(declared []string) []Mismatch {
	var mismatches []Mismatch

	seen := make(map[string]bool, len(declared))
	for _, rule := range declared {
		seen[rule] = true
		if !r.Has(rule) {
			mismatches = append(mismatches, Mismatch{
				Rule:   rule,
				Reason: "emitted by a scanner but missing from the registry",
			})
		}
	}

	for _, rule := range r.Rules() {
		if !seen[rule] {
			mismatches = append(mismatches, Mismatch{
				Rule:   rule,
				Reason: "registered but not emitted by any scanner",
			})
		}
	}

	sort.Slice(mismatches, func(i, j int) bool {
		return mismatches[i].Rule < mismatches[j].Rule
	})
	return mismatches
}
