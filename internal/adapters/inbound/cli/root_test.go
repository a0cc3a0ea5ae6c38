package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designcheck/designcheck/internal/adapters/inbound/cli"
	"github.com/designcheck/designcheck/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCleanProject(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "css/reset.css", ".a {\n  margin: var(--space-1);\n}\n")

	out, err := run(t, "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found.")
}

func TestRootErrorsFailTheRun(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "css/reset.css", ".a {\n  color: #fff;\n}\n")

	out, err := run(t, "--root", dir)
	require.ErrorIs(t, err, domain.ErrIssuesFound)
	assert.Contains(t, out, "no-hardcoded-color")
	assert.Contains(t, out, "1 error(s)")
}

func TestRootWarningsOnlyExitZero(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "css/reset.css", ".a {\n  margin: 0px;\n}\n")

	out, err := run(t, "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "unit-zero")
	assert.Contains(t, out, "1 warning(s)")
}

func TestRootExplicitFileArgs(t *testing.T) {
	dir := t.TempDir()
	bad := write(t, dir, "app.js", "debugger;\n")
	write(t, dir, "other.js", "console.log(1);\n")

	out, err := run(t, "--root", dir, bad)
	require.ErrorIs(t, err, domain.ErrIssuesFound)
	assert.Contains(t, out, "no-debugger")
	assert.NotContains(t, out, "no-console")
}

func TestRootQuietHidesWarnings(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "css/reset.css", ".a {\n  margin: 0px;\n  color: #fff;\n}\n")

	out, err := run(t, "--root", dir, "--quiet")
	require.ErrorIs(t, err, domain.ErrIssuesFound)
	assert.Contains(t, out, "no-hardcoded-color")
	assert.NotContains(t, out, "unit-zero")
}

func TestRootValidateRegistry(t *testing.T) {
	out, err := run(t, "--validate-registry")
	require.NoError(t, err)
	assert.Contains(t, out, "registry OK")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "designcheck")
}

func TestFixCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "main.css", ".a {\n  margin: 0px;\n}\n")

	out, err := run(t, "fix", "unit-zero", "--dry-run", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "WOULD FIX")
	assert.Contains(t, out, "1 file(s) changed, 1 fix(es) applied")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "margin: 0px;")
}

func TestFixCommandWrites(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "app.js", "if (a == b) {}\n")

	out, err := run(t, "fix", "equality", path)
	require.NoError(t, err)
	assert.Contains(t, out, "FIXED")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "if (a === b) {}\n", string(data))
}

func TestFixCommandInvalidPath(t *testing.T) {
	_, err := run(t, "fix", "unit-zero", "no/such/path")
	assert.Error(t, err)
}
