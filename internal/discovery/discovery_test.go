package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeout-reorg/internal/model"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestClassifyFolder(t *testing.T) {
	assert.Equal(t, model.FolderYear, ClassifyFolder("Photos from 2019", true))
	assert.Equal(t, model.FolderSpecial, ClassifyFolder("Archive", true))
	assert.Equal(t, model.FolderAlbum, ClassifyFolder("Birthday Party", true))
	assert.Equal(t, model.FolderOther, ClassifyFolder("Birthday Party", false))
	assert.Equal(t, model.FolderAlbum, ClassifyFolder("Photos from abcd", true))
}

func TestDiscoverLabelsAlbumFolders(t *testing.T) {
	root := t.TempDir()
	yearDir := filepath.Join(root, "Photos from 2020")
	albumDir := filepath.Join(root, "Vacation")
	require.NoError(t, os.MkdirAll(yearDir, 0755))
	require.NoError(t, os.MkdirAll(albumDir, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(yearDir, "a.png"), pngHeader, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(albumDir, "b.png"), pngHeader, 0644))

	collection, _, err := Discover(root)
	require.NoError(t, err)
	require.Equal(t, 2, collection.Len())

	var sawNone, sawAlbum bool
	for _, e := range collection.Entities {
		for _, f := range e.Files {
			if f.Label == model.NoneLabel {
				sawNone = true
			}
			if f.Label == "Vacation" {
				sawAlbum = true
			}
		}
	}
	assert.True(t, sawNone, "year-folder file should get the NONE sentinel")
	assert.True(t, sawAlbum, "album-folder file should be labeled with the folder name")
}

func TestDiscoverSkipsSidecars(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.png"), pngHeader, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.png.json"), []byte(`{}`), 0644))

	collection, _, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, 1, collection.Len())
}
