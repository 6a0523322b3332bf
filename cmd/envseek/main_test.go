package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmie/x/envseek"
)

func runCmd(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	code = run(args, strings.NewReader(stdin), out, errOut)
	return code, out.String(), errOut.String()
}

func envFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunFromFile(t *testing.T) {
	path := envFile(t, "TOKEN=\"abc123\"\n")

	code, stdout, _ := runCmd(t, "", "-env-file", path, "TOKEN")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "abc123\n", stdout)
}

func TestRunFromEnvironment(t *testing.T) {
	t.Setenv("ENVSEEK_CMD_TOKEN", "from-env")

	code, stdout, _ := runCmd(t, "", "-mode", "system", "ENVSEEK_CMD_TOKEN")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "from-env\n", stdout)
}

func TestRunFallsBackToInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.env")

	code, stdout, _ := runCmd(t, " typed \n", "-env-file", path, "-prompt", "token?", "ENVSEEK_CMD_UNSET")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "token?\ntyped\n", stdout)
}

func TestRunInputModeWithoutKey(t *testing.T) {
	code, stdout, _ := runCmd(t, "typed\n", "-mode", "input")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, envseek.DefaultPrompt+"\ntyped\n", stdout)
}

func TestRunDotenv(t *testing.T) {
	path := envFile(t, "# comment\nOTHER=1\nTOKEN=abc\n")

	code, _, _ := runCmd(t, "", "-mode", "file", "-env-file", path, "TOKEN")
	assert.Equal(t, exitFailure, code)

	code, stdout, _ := runCmd(t, "", "-mode", "file", "-dotenv", "-env-file", path, "TOKEN")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "abc\n", stdout)
}

func TestRunFailures(t *testing.T) {
	code, _, stderr := runCmd(t, "")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage")

	code, _, _ = runCmd(t, "", "-mode", "vault", "TOKEN")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCmd(t, "", "-unknown-flag")
	assert.Equal(t, exitUsage, code)

	code, _, stderr = runCmd(t, "", "-mode", "system", "ENVSEEK_CMD_UNSET")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "value not found")
}

func TestRunLogsFailureOnce(t *testing.T) {
	code, _, stderr := runCmd(t, "", "-mode", "system", "-log-level", "error", "ENVSEEK_CMD_UNSET")
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, 1, strings.Count(stderr, "level=ERROR"))
	assert.Contains(t, stderr, `msg="resolution failed"`)
}
