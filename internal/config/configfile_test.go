package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadDefaultsRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	fd := &FileDefaults{
		InputPath:        "/takeout",
		OutputPath:       "/library",
		AlbumBehavior:    string(AlbumJSON),
		ExtensionFixMode: string(ExtFixConservative),
		Workers:          6,
	}
	require.NoError(t, SaveDefaults(fd))

	loaded, err := LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, fd, loaded)
}

func TestLoadDefaultsMissingFileIsNotAnError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	loaded, err := LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, &FileDefaults{}, loaded)
}

func TestApplyKeepsSetPathsAndFillsFieldsNotPassedAsFlags(t *testing.T) {
	fd := &FileDefaults{
		InputPath:     "/persisted-in",
		OutputPath:    "/persisted-out",
		AlbumBehavior: string(AlbumJSON),
		Workers:       8,
	}
	c := &Config{
		InputPath:     "/explicit-in",
		AlbumBehavior: AlbumShortcut,
		Workers:       2,
	}

	fd.Apply(c)

	assert.Equal(t, "/explicit-in", c.InputPath)
	assert.Equal(t, "/persisted-out", c.OutputPath)
	assert.Equal(t, AlbumJSON, c.AlbumBehavior)
	assert.Equal(t, 8, c.Workers)
}

func TestApplyIgnoresInvalidPersistedEnumValues(t *testing.T) {
	fd := &FileDefaults{AlbumBehavior: "bogus", ExtensionFixMode: "bogus"}
	c := &Config{AlbumBehavior: AlbumNothing, ExtensionFixMode: ExtFixSolo}

	fd.Apply(c)

	assert.Equal(t, AlbumNothing, c.AlbumBehavior)
	assert.Equal(t, ExtFixSolo, c.ExtensionFixMode)
}

func TestApplyLetsExplicitFlagWinOverPersistedDefault(t *testing.T) {
	fd := &FileDefaults{AlbumBehavior: string(AlbumShortcut), ExtensionFixMode: string(ExtFixStandard)}
	c := &Config{
		AlbumBehavior:    AlbumDuplicateCopy,
		ExtensionFixMode: ExtFixConservative,
		explicitFlags:    map[string]bool{"albums": true, "fix-extensions": true},
	}

	fd.Apply(c)

	assert.Equal(t, AlbumDuplicateCopy, c.AlbumBehavior, "explicit --albums must survive even though the persisted value is a valid, different choice")
	assert.Equal(t, ExtFixConservative, c.ExtensionFixMode)
}

func TestApplyFillsEnumFieldsWhenFlagsWereNotPassed(t *testing.T) {
	fd := &FileDefaults{AlbumBehavior: string(AlbumDuplicateCopy), ExtensionFixMode: string(ExtFixConservative)}
	c := &Config{AlbumBehavior: AlbumShortcut, ExtensionFixMode: ExtFixStandard}

	fd.Apply(c)

	assert.Equal(t, AlbumDuplicateCopy, c.AlbumBehavior)
	assert.Equal(t, ExtFixConservative, c.ExtensionFixMode)
}

func TestDefaultsPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".takeout-reorg.yaml"), DefaultsPath())
}

func TestRunSetupWizardPersistsEnteredValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	_, err = inW.WriteString("/in\n/out\nduplicate-copy\nconservative\n3\n")
	require.NoError(t, err)
	inW.Close()

	outR, outW, err := os.Pipe()
	require.NoError(t, err)

	fd, err := RunSetupWizard(inR, outW)
	outW.Close()
	_ = outR

	require.NoError(t, err)
	assert.Equal(t, "/in", fd.InputPath)
	assert.Equal(t, "/out", fd.OutputPath)
	assert.Equal(t, "duplicate-copy", fd.AlbumBehavior)
	assert.Equal(t, "conservative", fd.ExtensionFixMode)
	assert.Equal(t, 3, fd.Workers)

	loaded, err := LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, fd, loaded)
}
