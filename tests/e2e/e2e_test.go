package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "designcheck-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "designcheck")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/designcheck")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/webproject", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// copyFixture clones a fixture tree into a temp dir so fixer runs never
// touch the committed testdata.
func copyFixture(t *testing.T, name string) string {
	t.Helper()
	src := fixturePath(name)
	dst := t.TempDir()
	err := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(src, path)
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
	require.NoError(t, err)
	return dst
}

// --- Check tests ---

func TestE2E_CheckClean(t *testing.T) {
	out, code := run(t, "--root", fixturePath("clean"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "No issues found.")
}

func TestE2E_CheckDirtyExitsOne(t *testing.T) {
	out, code := run(t, "--root", fixturePath("dirty"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "no-hardcoded-color")
	assert.Contains(t, out, "no-secrets")
	assert.Contains(t, out, "error(s)")
}

func TestE2E_CheckWarningsOnlyExitsZero(t *testing.T) {
	out, code := run(t, "--root", fixturePath("warnings"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "unit-zero")
	assert.Contains(t, out, "warning(s)")
}

func TestE2E_CheckSingleFile(t *testing.T) {
	out, code := run(t, "--root", fixturePath("dirty"), filepath.Join(fixturePath("dirty"), "css", "main.css"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "no-hardcoded-color")
	assert.NotContains(t, out, "no-debugger")
}

func TestE2E_ValidateRegistry(t *testing.T) {
	out, code := run(t, "--validate-registry")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "registry OK")
}

// --- Fix tests ---

func TestE2E_FixUnitZero(t *testing.T) {
	dir := copyFixture(t, "warnings")

	out, code := run(t, "fix", "unit-zero", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "FIXED")
	assert.Contains(t, out, "1 file(s) changed, 1 fix(es) applied")

	data, err := os.ReadFile(filepath.Join(dir, "css", "reset.css"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "margin: 0;")

	// Second run finds nothing left to fix.
	out, code = run(t, "fix", "unit-zero", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "0 file(s) changed, 0 fix(es) applied")
}

func TestE2E_FixDryRun(t *testing.T) {
	dir := copyFixture(t, "dirty")
	before, err := os.ReadFile(filepath.Join(dir, "js", "app.js"))
	require.NoError(t, err)

	out, code := run(t, "fix", "equality", "--dry-run", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "WOULD FIX")

	after, err := os.ReadFile(filepath.Join(dir, "js", "app.js"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestE2E_FixInvalidPath(t *testing.T) {
	_, code := run(t, "fix", "unit-zero", "no/such/path")
	assert.Equal(t, 1, code)
}

// --- Version test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "designcheck")
}
