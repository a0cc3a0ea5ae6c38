// Package project implements the aggregate checks that span all discovered
// files: stylesheet sprawl, canonical naming, and 3-tier architecture
// presence. It runs once per invocation, after the per-file scanners.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/designcheck/designcheck/internal/domain"
	"github.com/designcheck/designcheck/internal/domain/cascade"
	"github.com/designcheck/designcheck/internal/domain/tier"
)

// Rules lists every rule id this scanner can emit.
var Rules = []string{
	"css-file-count",
	"css-naming",
	"tier-architecture",
}

const (
	cssWarnThreshold  = 5
	cssErrorThreshold = 7

	// Minimum combined web file count before the missing-tier check fires.
	tierMinFiles = 5
)

// Files carries the discovered file lists the aggregate checks operate on.
type Files struct {
	CSS  []string
	HTML []string
	JS   []string
}

// Scan runs the project-level checks over the discovered file lists.
// root is the resolved scan root; issues carry line 0 and the "(project)"
// sentinel path is attached by the caller.
func Scan(root string, files Files) []domain.Issue {
	var issues []domain.Issue

	if n := len(files.CSS); n > cssErrorThreshold {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityError,
			Rule:     "css-file-count",
			Message:  fmt.Sprintf("%d CSS files — consolidate into the 5-file architecture (%s)", n, strings.Join(canonicalNames(), ", ")),
		})
	} else if n > cssWarnThreshold {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityWarning,
			Rule:     "css-file-count",
			Message:  fmt.Sprintf("%d CSS files — target is at most %d", n, cssWarnThreshold),
		})
	}

	if len(files.CSS) > 0 && !anyCanonical(files.CSS) {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityWarning,
			Rule:     "css-naming",
			Message:  fmt.Sprintf("no stylesheet uses a canonical name (%s)", strings.Join(canonicalNames(), ", ")),
		})
	}

	issues = append(issues, checkTierArchitecture(root, files)...)
	return issues
}

// checkTierArchitecture verifies the three tier directories exist for web
// projects. Only evaluated when package.json sits at the root and the
// project has web files.
func checkTierArchitecture(root string, files Files) []domain.Issue {
	if !fileExists(filepath.Join(root, "package.json")) {
		return nil
	}
	if !hasWebFiles(files) {
		return nil
	}

	var missing []string
	found := 0
	for _, dir := range tier.Dirs {
		if dirExistsUnder(root, dir) {
			found++
		} else {
			missing = append(missing, dir)
		}
	}

	total := len(files.CSS) + len(files.HTML) + len(files.JS)
	switch {
	case found == len(tier.Dirs):
		return nil
	case found == 0:
		if total <= tierMinFiles {
			return nil
		}
		return []domain.Issue{{
			Severity: domain.SeverityError,
			Rule:     "tier-architecture",
			Message:  fmt.Sprintf("missing 3-tier architecture — create %s", strings.Join(tier.Dirs, ", ")),
		}}
	default:
		return []domain.Issue{{
			Severity: domain.SeverityError,
			Rule:     "tier-architecture",
			Message:  fmt.Sprintf("incomplete 3-tier architecture — missing %s", strings.Join(missing, ", ")),
		}}
	}
}

// hasWebFiles reports whether the project is web-shaped: any CSS, any HTML,
// or any .jsx/.tsx component files.
func hasWebFiles(files Files) bool {
	if len(files.CSS) > 0 || len(files.HTML) > 0 {
		return true
	}
	for _, f := range files.JS {
		switch filepath.Ext(f) {
		case ".jsx", ".tsx":
			return true
		}
	}
	return false
}

// dirExistsUnder looks for the tier directory at the root, under src/, or
// under source/.
func dirExistsUnder(root, dir string) bool {
	for _, base := range []string{"", "src", "source"} {
		if dirExists(filepath.Join(root, base, dir)) {
			return true
		}
	}
	return false
}

func anyCanonical(cssFiles []string) bool {
	for _, f := range cssFiles {
		if cascade.IsCanonical(filepath.Base(f)) {
			return true
		}
	}
	return false
}

func canonicalNames() []string {
	names := make([]string, len(cascade.Roles))
	for i, role := range cascade.Roles {
		names[i] = role + ".css"
	}
	return names
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
