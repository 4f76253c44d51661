package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/vbaemu/internal/app"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A profile with a syntax error makes app.NewApp panic while loading it.
	tempDir := t.TempDir()
	profilePath := filepath.Join(tempDir, "profile.hcl")
	require.NoError(t, os.WriteFile(profilePath, []byte("constant \"x\" {\n  value = \n"), 0o600))
	scriptPath := filepath.Join(tempDir, "macro.bas")
	require.NoError(t, os.WriteFile(scriptPath, []byte("Len(\"x\")\n"), 0o600))

	args := []string{"-profile", profilePath, scriptPath}
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, logs, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "failed to parse profile")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Script(t *testing.T) {
	t.Parallel()

	scriptPath := filepath.Join(t.TempDir(), "macro.bas")
	require.NoError(t, os.WriteFile(scriptPath, []byte("Shell(\"calc.exe\")\nMid(\"x\")\n"), 0o600))
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-report-format", "text", scriptPath})

	require.True(t, errors.Is(err, app.ErrLinesFailed))
	require.Contains(t, out.String(), "line 1: 0\n")
	require.Contains(t, out.String(), `line 2: error: Mid("x"): Mid: requires 2 to 3 arguments, got 1 (runtime error 450)`)
	require.Contains(t, out.String(), `[Execute Command] "calc.exe" (Shell)`)
}
