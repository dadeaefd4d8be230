package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testBinary     string
	testBinaryOnce sync.Once
	testBinaryErr  error
)

// buildTestBinary builds the timon binary once for all tests in this package.
func buildTestBinary() (string, error) {
	testBinaryOnce.Do(func() {
		tmpBinary := filepath.Join(os.TempDir(), "timon-test")
		cmd := exec.Command("go", "build", "-o", tmpBinary, ".")
		if out, err := cmd.CombinedOutput(); err != nil {
			testBinaryErr = err
			testBinary = string(out)
			return
		}
		testBinary = tmpBinary
	})
	if testBinaryErr != nil {
		return "", testBinaryErr
	}
	return testBinary, nil
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.timon")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestExecutionStagePrintsResult(t *testing.T) {
	binary, err := buildTestBinary()
	require.NoError(t, err)

	path := writeSource(t, "print 1+2")
	cmd := exec.Command(binary, path)
	out, err := cmd.Output()
	require.NoError(t, err)
	require.Equal(t, "3\n", string(out))
}

func TestParserStageEmitsSexpr(t *testing.T) {
	binary, err := buildTestBinary()
	require.NoError(t, err)

	path := writeSource(t, "print 1+2")
	cmd := exec.Command(binary, "--stage", "parser", path)
	out, err := cmd.Output()
	require.NoError(t, err)
	require.Contains(t, string(out), "(print")
}

func TestLexerStageEmitsTokens(t *testing.T) {
	binary, err := buildTestBinary()
	require.NoError(t, err)

	path := writeSource(t, "print 1")
	cmd := exec.Command(binary, "--stage", "lexer", path)
	out, err := cmd.Output()
	require.NoError(t, err)
	require.Contains(t, string(out), "EOF")
}

func TestDiagnosticExitsNonZero(t *testing.T) {
	binary, err := buildTestBinary()
	require.NoError(t, err)

	path := writeSource(t, "print 10/0")
	cmd := exec.Command(binary, path)
	_, err = cmd.CombinedOutput()
	require.Error(t, err)

	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok)
	require.Equal(t, 1, exitErr.ExitCode())
}

func TestDiagnosticMessageOnStderr(t *testing.T) {
	binary, err := buildTestBinary()
	require.NoError(t, err)

	path := writeSource(t, "print 10/0")
	cmd := exec.Command(binary, path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	_ = cmd.Run()
	require.Contains(t, stderr.String(), "ArithmeticError")
}

func TestInvalidStageFlagRejected(t *testing.T) {
	binary, err := buildTestBinary()
	require.NoError(t, err)

	path := writeSource(t, "print 1")
	cmd := exec.Command(binary, "--stage", "bogus", path)
	_, err = cmd.CombinedOutput()
	require.Error(t, err)
}

func TestMissingFileArgumentRejected(t *testing.T) {
	binary, err := buildTestBinary()
	require.NoError(t, err)

	cmd := exec.Command(binary, "does-not-exist.timon")
	_, err = cmd.CombinedOutput()
	require.Error(t, err)
}
