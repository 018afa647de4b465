package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/metaprop/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Default(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, nil)

	// --- Assert ---
	require.NoError(t, err)
	want := "TimeMachine\n" +
		"objectName :  \"\"\n" +
		"name :  \"DeLorean\"\n" +
		"creator :  \"Dr. Emmett Brown\"\n"
	require.Equal(t, want, out.String())
	require.Empty(t, errOut.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_SetProperty(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-set", "name=Flux Capacitor"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "name :  \"Flux Capacitor\"\n")
	assert.Contains(t, out.String(), "creator :  \"Dr. Emmett Brown\"\n")
}

func TestRun_UnknownClass(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-class", "Hoverboard"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "class not found: 'Hoverboard'")
	assert.Empty(t, out.String())

	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr), "runtime failures use the generic exit code")
}

func TestRun_Manifests(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	src := `
class "Almanac" {
  description = "Grays Sports Almanac"
  property "years" {
    type    = string
    default = "1950-2000"
  }
  property "owner" {
    type     = string
    default  = "Biff Tannen"
    readonly = true
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "almanac.hcl"), []byte(src), 0o600), "failed to set up test file")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-manifests", tempDir, "-class", "Almanac"})

	// --- Assert ---
	require.NoError(t, err)
	want := "Almanac\n" +
		"objectName :  \"\"\n" +
		"years :  \"1950-2000\"\n" +
		"owner :  \"Biff Tannen\"\n"
	require.Equal(t, want, out.String())
}

func TestRun_ReadOnlyAssignment(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	src := `
class "Almanac" {
  property "owner" {
    type     = string
    readonly = true
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "almanac.hcl"), []byte(src), 0o600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-manifests", tempDir, "-class", "Almanac", "-set", "owner=Marty"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}
