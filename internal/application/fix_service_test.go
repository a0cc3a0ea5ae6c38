package application

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designcheck/designcheck/internal/adapters/outbound/discovery"
	"github.com/designcheck/designcheck/internal/domain/fix"
)

func TestFixRunRewritesFiles(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "css/main.css", ".a {\n  margin: 0px;\n  padding: 0em;\n}\n")
	write(t, dir, "notes.txt", "margin: 0px;")

	svc := NewFixService(discovery.New())
	report, err := svc.Run(fix.UnitZero{}, []string{dir}, false)
	require.NoError(t, err)

	assert.Equal(t, 1, report.FilesChanged)
	assert.Equal(t, 2, report.FixesApplied)
	require.Len(t, report.Files, 1)
	assert.Equal(t, path, report.Files[0].Path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ".a {\n  margin: 0;\n  padding: 0;\n}\n", string(data))
}

func TestFixRunDryRunLeavesFiles(t *testing.T) {
	dir := t.TempDir()
	input := "if (a == b) {}\n"
	path := write(t, dir, "app.js", input)

	svc := NewFixService(discovery.New())
	report, err := svc.Run(fix.Equality{}, []string{path}, true)
	require.NoError(t, err)

	assert.Equal(t, 1, report.FilesChanged)
	assert.Equal(t, 1, report.FixesApplied)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, input, string(data))
}

func TestFixRunInvalidPath(t *testing.T) {
	svc := NewFixService(discovery.New())
	_, err := svc.Run(fix.UnitZero{}, []string{"no/such/path"}, false)
	assert.Error(t, err)
}

func TestFixRunSkipsNonMatchingFileArg(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "app.js", "var a = 1\n")

	svc := NewFixService(discovery.New())
	report, err := svc.Run(fix.UnitZero{}, []string{path}, false)
	require.NoError(t, err)
	assert.Zero(t, report.FilesChanged)
}

func TestVerb(t *testing.T) {
	assert.Equal(t, "FIXED", Verb(fix.UnitZero{}, false))
	assert.Equal(t, "WOULD FIX", Verb(fix.UnitZero{}, true))
	assert.Equal(t, "WOULD SORT", Verb(fix.PropertyOrder{}, true))
	assert.Equal(t, "WOULD REORDER", Verb(fix.ImportOrder{}, true))
}
