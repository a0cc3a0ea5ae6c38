package project_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designcheck/designcheck/internal/domain"
	"github.com/designcheck/designcheck/internal/domain/project"
)

func byRule(issues []domain.Issue, rule string) []domain.Issue {
	var out []domain.Issue
	for _, issue := range issues {
		if issue.Rule == rule {
			out = append(out, issue)
		}
	}
	return out
}

func cssFiles(n int) []string {
	files := make([]string, n)
	for i := range files {
		files[i] = fmt.Sprintf("css/sheet-%d.css", i)
	}
	files[0] = "css/reset.css" // keep css-naming quiet
	return files
}

func TestScan_CSSFileCount(t *testing.T) {
	root := t.TempDir()

	t.Run("five files pass", func(t *testing.T) {
		assert.Empty(t, byRule(project.Scan(root, project.Files{CSS: cssFiles(5)}), "css-file-count"))
	})

	t.Run("six files warn", func(t *testing.T) {
		issues := byRule(project.Scan(root, project.Files{CSS: cssFiles(6)}), "css-file-count")
		require.Len(t, issues, 1)
		assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
		assert.Contains(t, issues[0].Message, "6 CSS files")
	})

	t.Run("eight files error", func(t *testing.T) {
		issues := byRule(project.Scan(root, project.Files{CSS: cssFiles(8)}), "css-file-count")
		require.Len(t, issues, 1)
		assert.Equal(t, domain.SeverityError, issues[0].Severity)
		assert.Contains(t, issues[0].Message, "reset.css, global.css, layouts.css, components.css, overrides.css")
	})
}

func TestScan_CSSNaming(t *testing.T) {
	root := t.TempDir()

	issues := byRule(project.Scan(root, project.Files{CSS: []string{"css/main.css", "css/theme.css"}}), "css-naming")
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "no stylesheet uses a canonical name")

	t.Run("one canonical name is enough", func(t *testing.T) {
		files := project.Files{CSS: []string{"css/global.css", "css/theme.css"}}
		assert.Empty(t, byRule(project.Scan(root, files), "css-naming"))
	})

	t.Run("no stylesheets at all", func(t *testing.T) {
		assert.Empty(t, byRule(project.Scan(root, project.Files{}), "css-naming"))
	})
}

func manyWebFiles() project.Files {
	return project.Files{
		CSS:  []string{"css/reset.css", "css/global.css"},
		HTML: []string{"index.html", "about.html"},
		JS:   []string{"js/app.js", "js/nav.js"},
	}
}

func TestScan_TierArchitecture(t *testing.T) {
	t.Run("no package json skips check", func(t *testing.T) {
		root := t.TempDir()
		assert.Empty(t, byRule(project.Scan(root, manyWebFiles()), "tier-architecture"))
	})

	t.Run("missing all tiers", func(t *testing.T) {
		root := t.TempDir()
		writePackageJSON(t, root)
		issues := byRule(project.Scan(root, manyWebFiles()), "tier-architecture")
		require.Len(t, issues, 1)
		assert.Equal(t, domain.SeverityError, issues[0].Severity)
		assert.Contains(t, issues[0].Message, "missing 3-tier architecture")
		assert.Contains(t, issues[0].Message, "01-presentation, 02-logic, 03-data")
	})

	t.Run("small projects exempt", func(t *testing.T) {
		root := t.TempDir()
		writePackageJSON(t, root)
		files := project.Files{HTML: []string{"index.html"}, CSS: []string{"css/global.css"}}
		assert.Empty(t, byRule(project.Scan(root, files), "tier-architecture"))
	})

	t.Run("all tiers under src", func(t *testing.T) {
		root := t.TempDir()
		writePackageJSON(t, root)
		for _, dir := range []string{"01-presentation", "02-logic", "03-data"} {
			require.NoError(t, os.MkdirAll(filepath.Join(root, "src", dir), 0o755))
		}
		assert.Empty(t, byRule(project.Scan(root, manyWebFiles()), "tier-architecture"))
	})

	t.Run("partial tiers", func(t *testing.T) {
		root := t.TempDir()
		writePackageJSON(t, root)
		require.NoError(t, os.MkdirAll(filepath.Join(root, "01-presentation"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "02-logic"), 0o755))
		issues := byRule(project.Scan(root, manyWebFiles()), "tier-architecture")
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Message, "incomplete 3-tier architecture — missing 03-data")
	})

	t.Run("non web project skips check", func(t *testing.T) {
		root := t.TempDir()
		writePackageJSON(t, root)
		files := project.Files{JS: []string{"lib/a.js", "lib/b.js", "lib/c.js", "lib/d.js", "lib/e.js", "lib/f.js"}}
		assert.Empty(t, byRule(project.Scan(root, files), "tier-architecture"))
	})

	t.Run("jsx counts as web", func(t *testing.T) {
		root := t.TempDir()
		writePackageJSON(t, root)
		files := project.Files{JS: []string{
			"src/a.jsx", "src/b.jsx", "src/c.jsx", "src/d.jsx", "src/e.jsx", "src/f.jsx",
		}}
		issues := byRule(project.Scan(root, files), "tier-architecture")
		assert.Len(t, issues, 1)
	})
}

func writePackageJSON(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte("{}\n"), 0o644))
}
