package dateextract

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeout-reorg/internal/model"
)

func TestJSONExtractor(t *testing.T) {
	dir := t.TempDir()
	media := filepath.Join(dir, "IMG_0001.jpg")
	require.NoError(t, os.WriteFile(media, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(media+".json", []byte(`{"photoTakenTime":{"timestamp":"1609459200"}}`), 0644))

	ex := jsonExtractor{}
	ts, ok := ex.Extract(media)
	require.True(t, ok)
	assert.Equal(t, int64(1609459200), ts.Unix())
	assert.Equal(t, model.AccuracyJSON, ex.Tier())
}

func TestGuessNameExtractor(t *testing.T) {
	ex := guessNameExtractor{}

	ts, ok := ex.Extract("/x/IMG_20210401_153000.jpg")
	require.True(t, ok)
	assert.Equal(t, 2021, ts.Year())
	assert.Equal(t, time.April, ts.Month())

	_, ok = ex.Extract("/x/random_filename.jpg")
	assert.False(t, ok)
}

func TestFolderYearExtractor(t *testing.T) {
	ex := folderYearExtractor{}

	ts, ok := ex.Extract("/takeout/Google Photos/Photos from 2018/IMG_0001.jpg")
	require.True(t, ok)
	assert.Equal(t, 2018, ts.Year())
	assert.Equal(t, time.January, ts.Month())

	_, ok = ex.Extract("/takeout/Google Photos/Some Album/IMG_0001.jpg")
	assert.False(t, ok)

	_, ok = ex.Extract("/takeout/Google Photos/Photos from 1850/IMG_0001.jpg")
	assert.False(t, ok, "years before 1900 must be rejected")
}

func TestChainStopsAtFirstHit(t *testing.T) {
	dir := t.TempDir()
	media := filepath.Join(dir, "Photos from 2015", "IMG_9999.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(media), 0755))
	require.NoError(t, os.WriteFile(media, []byte("x"), 0644))

	c := NewChain(false)
	ts, tier, ok := c.Extract(media)
	require.True(t, ok, "folder-year fallback should still fire with no sidecar or EXIF")
	assert.Equal(t, model.AccuracyFolderYear, tier)
	assert.Equal(t, 2015, ts.Year())
}
