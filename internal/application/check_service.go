package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/designcheck/designcheck/internal/domain"
	"github.com/designcheck/designcheck/internal/domain/css"
	"github.com/designcheck/designcheck/internal/domain/html"
	"github.com/designcheck/designcheck/internal/domain/js"
	"github.com/designcheck/designcheck/internal/domain/project"
)

// Extension sets routed to each scanner.
var (
	cssExts  = []string{".css"}
	htmlExts = []string{".html"}
	jsExts   = []string{".js", ".jsx", ".ts", ".tsx"}
)

// CheckService orchestrates the check pipeline:
// discover -> scan per file -> project-level scan -> tag skills.
type CheckService struct {
	discoverer domain.FileDiscoverer
	registry   *domain.Registry
}

func NewCheckService(discoverer domain.FileDiscoverer, registry *domain.Registry) *CheckService {
	return &CheckService{discoverer: discoverer, registry: registry}
}

// Check runs the scanners over root, or over the explicit file list when
// one is given. The returned results are ordered by file path, with the
// project-level result last. An explicit argument that cannot be read is
// an operator error and fails the run.
func (s *CheckService) Check(root string, files []string) ([]domain.FileResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var groups project.Files
	if len(files) > 0 {
		for _, f := range files {
			abs, err := filepath.Abs(f)
			if err != nil {
				return nil, err
			}
			if _, err := os.Stat(abs); err != nil {
				return nil, fmt.Errorf("cannot read %s: %w", f, err)
			}
			classify(&groups, abs)
		}
		sort.Strings(groups.CSS)
		sort.Strings(groups.HTML)
		sort.Strings(groups.JS)
	} else {
		exts := append(append(append([]string{}, cssExts...), htmlExts...), jsExts...)
		discovered, err := s.discoverer.Discover(absRoot, exts...)
		if err != nil {
			return nil, fmt.Errorf("discovering files: %w", err)
		}
		for _, f := range discovered {
			classify(&groups, f)
		}
	}

	var results []domain.FileResult
	scanOne := func(path string, scan func(string) []domain.Issue) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		issues := scan(string(data))
		if len(issues) == 0 {
			return nil
		}
		s.tagSkills(issues)
		results = append(results, domain.FileResult{File: path, Issues: issues})
		return nil
	}

	for _, f := range groups.CSS {
		name := filepath.Base(f)
		if err := scanOne(f, func(c string) []domain.Issue { return css.Scan(name, c) }); err != nil {
			return nil, err
		}
	}
	for _, f := range groups.HTML {
		if err := scanOne(f, html.Scan); err != nil {
			return nil, err
		}
	}
	for _, f := range groups.JS {
		path := f
		if err := scanOne(f, func(c string) []domain.Issue { return js.Scan(path, c) }); err != nil {
			return nil, err
		}
	}

	if projIssues := project.Scan(absRoot, groups); len(projIssues) > 0 {
		s.tagSkills(projIssues)
		results = append(results, domain.FileResult{File: domain.ProjectFile, Issues: projIssues})
	}

	return results, nil
}

// ValidateRegistry cross-checks the embedded rule registry against the
// rules the scanners declare, in both directions.
func (s *CheckService) ValidateRegistry() []domain.Mismatch {
	return s.registry.Validate(DeclaredRules())
}

// DeclaredRules returns the union of every scanner's rule declarations.
func DeclaredRules() []string {
	var rules []string
	rules = append(rules, css.Rules...)
	rules = append(rules, html.Rules...)
	rules = append(rules, js.Rules...)
	rules = append(rules, project.Rules...)
	sort.Strings(rules)
	return rules
}

func (s *CheckService) tagSkills(issues []domain.Issue) {
	for i := range issues {
		issues[i].Skill = s.registry.Skill(issues[i].Rule)
	}
}

func classify(groups *project.Files, path string) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case hasExt(ext, cssExts):
		groups.CSS = append(groups.CSS, path)
	case hasExt(ext, htmlExts):
		groups.HTML = append(groups.HTML, path)
	case hasExt(ext, jsExts):
		groups.JS = append(groups.JS, path)
	}
}

func hasExt(ext string, exts []string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
