package dedup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeout-reorg/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestDedupeMergesAlbumLabels(t *testing.T) {
	dir := t.TempDir()
	canonical := writeFile(t, dir, "IMG_0001.jpg", "same-bytes")
	albumCopy := writeFile(t, dir, "IMG_0001_copy.jpg", "same-bytes")

	collection := model.NewMediaCollection()
	e1 := &model.MediaEntity{Files: []model.AlbumFile{{Label: model.NoneLabel, Path: canonical}}}
	e2 := &model.MediaEntity{Files: []model.AlbumFile{{Label: "Vacation", Path: albumCopy}}}
	collection.Add(e1)
	collection.Add(e2)

	removed := Dedupe(collection, 2, 0, nil, nil)

	assert.Equal(t, 1, removed)
	require.Equal(t, 1, collection.Len())
	survivor := collection.Entities[0]
	assert.True(t, survivor.HasLabel("Vacation"))
	assert.Equal(t, canonical, survivor.CanonicalPath())
}

func TestDedupeKeepsLongestFilenameAsSurvivor(t *testing.T) {
	dir := t.TempDir()
	short := writeFile(t, dir, "a.jpg", "payload")
	long := writeFile(t, dir, "a_longer_original_name.jpg", "payload")

	collection := model.NewMediaCollection()
	collection.Add(&model.MediaEntity{Files: []model.AlbumFile{{Label: model.NoneLabel, Path: short}}})
	collection.Add(&model.MediaEntity{Files: []model.AlbumFile{{Label: model.NoneLabel, Path: long}}})

	Dedupe(collection, 1, 0, nil, nil)

	require.Equal(t, 1, collection.Len())
	assert.Equal(t, long, collection.Entities[0].CanonicalPath())
}

func TestDedupeSkipsOversizedFilesWhenLimited(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "big.jpg", "payload")

	collection := model.NewMediaCollection()
	collection.Add(&model.MediaEntity{Files: []model.AlbumFile{{Label: model.NoneLabel, Path: p}}})

	removed := Dedupe(collection, 1, 1, nil, nil) // maxHashSize=1 byte, file is larger
	assert.Equal(t, 0, removed)
	assert.Empty(t, collection.Entities[0].ContentHash())
}

type stubCache struct {
	hash string
}

func (s *stubCache) Get(path string, size int64, modTime time.Time) (string, bool) {
	if s.hash == "" {
		return "", false
	}
	return s.hash, true
}

func (s *stubCache) Put(path string, size int64, modTime time.Time, hash string) {
	s.hash = hash
}

func TestHashAllUsesCache(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "img.jpg", "payload")
	e := &model.MediaEntity{Files: []model.AlbumFile{{Label: model.NoneLabel, Path: p}}}

	cache := &stubCache{hash: "precomputed-hash"}
	hashAll([]*model.MediaEntity{e}, 1, 0, cache, nil)

	assert.Equal(t, "precomputed-hash", e.ContentHash())
}
