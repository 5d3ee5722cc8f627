package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsRequiresInputAndOutput(t *testing.T) {
	_, err := ParseFlags([]string{})
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestParseFlagsAppliesDefaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"--input", "/in", "--output", "/out"})
	require.NoError(t, err)
	assert.Equal(t, AlbumShortcut, cfg.AlbumBehavior)
	assert.Equal(t, DivideNone, cfg.DateDivision)
	assert.Equal(t, ExtFixStandard, cfg.ExtensionFixMode)
	assert.True(t, cfg.WriteExif)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestParseFlagsRecordsExplicitlyPassedFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{"--input", "/in", "--output", "/out", "--albums", "shortcut"})
	require.NoError(t, err)
	assert.True(t, cfg.flagExplicit("albums"), "--albums was passed on the command line, even though its value equals the flag default")
	assert.False(t, cfg.flagExplicit("fix-extensions"), "--fix-extensions was never passed")
}

func TestParseFlagsRejectsUnknownAlbumBehavior(t *testing.T) {
	_, err := ParseFlags([]string{"--input", "/in", "--output", "/out", "--albums", "bogus"})
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestValidateRejectsEmptyPaths(t *testing.T) {
	c := &Config{AlbumBehavior: AlbumShortcut, ExtensionFixMode: ExtFixStandard, Workers: 1}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input path")
}

func TestValidateRejectsBadWorkerCount(t *testing.T) {
	c := &Config{
		InputPath: "/in", OutputPath: "/out",
		AlbumBehavior: AlbumShortcut, ExtensionFixMode: ExtFixStandard,
		Workers: 0,
	}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	c := &Config{
		InputPath: "/in", OutputPath: "/out",
		AlbumBehavior: AlbumNothing, DateDivision: DivideYear,
		ExtensionFixMode: ExtFixSolo, Workers: 4,
	}
	assert.NoError(t, c.Validate())
}

func TestCheckInputExists(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckInputExists(dir))

	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.Error(t, CheckInputExists(file))

	assert.Error(t, CheckInputExists(filepath.Join(dir, "missing")))
}
