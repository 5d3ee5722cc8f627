package extfix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeout-reorg/internal/config"
)

// A minimal valid PNG header (8-byte signature) is enough for mimetype to
// sniff image/png from the first bytes without a full valid file.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestFixExtensionsRenamesMismatchedFile(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(oldPath, pngHeader, 0644))
	require.NoError(t, os.WriteFile(oldPath+".json", []byte(`{}`), 0644))

	fixed, err := FixExtensions(dir, config.ExtFixStandard)
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	newPath := oldPath + ".png"
	_, statErr := os.Stat(newPath)
	assert.NoError(t, statErr, "renamed file should exist")

	_, oldStatErr := os.Stat(oldPath)
	assert.Error(t, oldStatErr, "old path should no longer exist")
}

// A minimal ISOBMFF ftyp box with a "heic" major brand is enough for
// mimetype to sniff image/heic without a fully valid HEIC container.
var heicHeader = []byte{
	0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'h', 'e', 'i', 'c',
	0x00, 0x00, 0x00, 0x00, 'm', 'i', 'f', '1', 'h', 'e', 'i', 'c',
}

// TestFixExtensionsReverseDoubleExtensionFindsSidecarFromNewName covers
// spec.md §8's worked example: a file saved with Google's light-extension
// mistake (IMG.jpg holding HEIC content) renames to the double-extension
// IMG.jpg.heic, and its sidecar — named after the reconstructed heavy
// extension, not the original light one — must still be found and
// renamed to match.
func TestFixExtensionsReverseDoubleExtensionFindsSidecarFromNewName(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "IMG.jpg")
	require.NoError(t, os.WriteFile(oldPath, heicHeader, 0644))

	sidecarPath := filepath.Join(dir, "IMG.HEIC.supplemental-metadata.json")
	require.NoError(t, os.WriteFile(sidecarPath, []byte(`{}`), 0644))

	fixed, err := FixExtensions(dir, config.ExtFixStandard)
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	newPath := filepath.Join(dir, "IMG.jpg.heic")
	_, err = os.Stat(newPath)
	assert.NoError(t, err, "file should carry the double extension")

	newSidecarPath := filepath.Join(dir, "IMG.jpg.heic.supplemental-metadata.json")
	_, err = os.Stat(newSidecarPath)
	assert.NoError(t, err, "sidecar should be renamed to follow the new double-extension name")

	_, err = os.Stat(sidecarPath)
	assert.True(t, os.IsNotExist(err), "old sidecar name should no longer exist")
}

func TestFixExtensionsSkipsExtras(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "photo-edited.jpg")
	require.NoError(t, os.WriteFile(p, pngHeader, 0644))

	fixed, err := FixExtensions(dir, config.ExtFixStandard)
	require.NoError(t, err)
	assert.Equal(t, 0, fixed)
	_, err = os.Stat(p)
	assert.NoError(t, err, "extra variants must be left untouched")
}

func TestFixExtensionsNoneModeIsNoOp(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(p, pngHeader, 0644))

	fixed, err := FixExtensions(dir, config.ExtFixNone)
	require.NoError(t, err)
	assert.Equal(t, 0, fixed)
}
