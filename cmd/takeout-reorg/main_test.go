package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeout-reorg/internal/config"
)

func TestRunMissingArgsReturnsExitMissingArg(t *testing.T) {
	code := run([]string{})
	assert.Equal(t, config.ExitMissingArg, code)
}

func TestRunUnknownFlagReturnsExitCLIParseError(t *testing.T) {
	code := run([]string{"--not-a-real-flag"})
	assert.Equal(t, config.ExitCLIParseError, code)
}

func TestRunMissingInputReturnsExitInputMissing(t *testing.T) {
	out := t.TempDir()
	code := run([]string{
		"--input", filepath.Join(t.TempDir(), "nope"),
		"--output", out,
		"--no-tui",
	})
	assert.Equal(t, config.ExitInputMissing, code)
}

func TestRunNoMediaFoundReturnsExitNoMediaFound(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	code := run([]string{
		"--input", in,
		"--output", out,
		"--no-tui",
	})
	assert.Equal(t, config.ExitNoMediaFound, code)
}

func TestRunEndToEndPlainCLISucceeds(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	path := filepath.Join(in, "Photos from 2022", "a.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte{0xFF, 0xD8, 0xFF, 0xE0}, 0644))

	code := run([]string{
		"--input", in,
		"--output", out,
		"--no-tui",
		"--write-exif=false",
		"--fix-extensions=none",
	})
	assert.Equal(t, config.ExitOK, code)

	_, err := os.Stat(filepath.Join(out, "run-summary.json"))
	assert.NoError(t, err)
}
