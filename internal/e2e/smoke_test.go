package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake workiq is a shell script")
	}

	workdir := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeFakeWorkIQ(workdir))

	stdout, stderr, err := runWQ(t, binaryPath, workdir, "ask", "Who owns the Q4 plan?")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "Alex owns it.\n", stdout)

	stdout, stderr, err = runWQ(t, binaryPath, workdir, "cache", "stats")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Entries:   1")

	stdout, stderr, err = runWQ(t, binaryPath, workdir, "briefing", "--format", "md")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Briefing saved:")

	matches, err := filepath.Glob(filepath.Join(workdir, "output", "briefing-*.md"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "wq-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wq")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build wq binary: %s", string(output))
	return binaryPath
}

func runWQ(t *testing.T, binaryPath, workdir string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = workdir
	cmd.Env = append(os.Environ(),
		"HOME="+workdir,
		"XDG_CONFIG_HOME="+filepath.Join(workdir, "config"),
		"XDG_CACHE_HOME="+filepath.Join(workdir, "cache"),
		"WORKIQ_TOOL_PATH="+filepath.Join(workdir, "workiq"),
		"WORKIQ_OUTPUT_DIR="+filepath.Join(workdir, "output"),
		"WORKIQ_CONFIG=",
		"WORKIQ_TENANT_ID=",
		"SMTP_HOST=",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeFakeWorkIQ(dir string) error {
	script := `#!/bin/sh
if [ "$1" = "version" ]; then
  echo "workiq 1.4.0"
  exit 0
fi
case "$3" in
  "Who owns the Q4 plan?") echo "Alex owns it." ;;
  *) echo "Nothing notable." ;;
esac
`

	return os.WriteFile(filepath.Join(dir, "workiq"), []byte(script), 0o755)
}
