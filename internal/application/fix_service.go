package application

import (
	"fmt"
	"os"
	"strings"

	"github.com/designcheck/designcheck/internal/domain"
	"github.com/designcheck/designcheck/internal/domain/fix"
)

// FileFix records one rewritten file.
type FileFix struct {
	Path  string
	Count int
}

// FixReport is the outcome of one fixer run.
type FixReport struct {
	Files        []FileFix
	FilesChanged int
	FixesApplied int
}

// FixService resolves path arguments and routes file content through one
// fixer at a time.
type FixService struct {
	discoverer domain.FileDiscoverer
}

func NewFixService(discoverer domain.FileDiscoverer) *FixService {
	return &FixService{discoverer: discoverer}
}

// Run applies the fixer to every matching file under the given paths.
// Directories are walked recursively; a path that does not exist is an
// error. In dry-run mode nothing is written but counts are reported as if
// it had been.
func (s *FixService) Run(f fix.Fixer, paths []string, dryRun bool) (*FixReport, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("invalid path %s: %w", p, err)
		}
		if !info.IsDir() {
			if matchesExt(p, f.Extensions()) {
				files = append(files, p)
			}
			continue
		}
		found, err := s.discoverer.Discover(p, f.Extensions()...)
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
		files = append(files, found...)
	}

	report := &FixReport{}
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		fixed, count := f.Apply(file, string(data))
		if count == 0 || fixed == string(data) {
			continue
		}
		if !dryRun {
			if err := os.WriteFile(file, []byte(fixed), info.Mode().Perm()); err != nil {
				return nil, fmt.Errorf("writing %s: %w", file, err)
			}
		}
		report.Files = append(report.Files, FileFix{Path: file, Count: count})
		report.FilesChanged++
		report.FixesApplied += count
	}

	return report, nil
}

// Verb returns the per-file report prefix for a run, e.g. "FIXED" or
// "WOULD FIX" under dry-run.
func Verb(f fix.Fixer, dryRun bool) string {
	if !dryRun {
		return f.Verb()
	}
	switch f.Verb() {
	case "SORTED":
		return "WOULD SORT"
	case "REORDERED":
		return "WOULD REORDER"
	default:
		return "WOULD FIX"
	}
}

func matchesExt(path string, exts []string) bool {
	for _, e := range exts {
		if strings.HasSuffix(path, e) {
			return true
		}
	}
	return false
}
