package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeout-reorg/internal/config"
)

type recordingReporter struct {
	started  []StageName
	finished []StageName
	warnings []string
}

func (r *recordingReporter) StageStarted(stage StageName)  { r.started = append(r.started, stage) }
func (r *recordingReporter) Progress(ProgressEvent)        {}
func (r *recordingReporter) StageFinished(stage StageName) { r.finished = append(r.finished, stage) }
func (r *recordingReporter) Warn(msg string)                { r.warnings = append(r.warnings, msg) }

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestRunFailsOnMissingInput(t *testing.T) {
	cfg := &config.Config{
		InputPath:        filepath.Join(t.TempDir(), "does-not-exist"),
		OutputPath:       t.TempDir(),
		AlbumBehavior:    config.AlbumShortcut,
		ExtensionFixMode: config.ExtFixStandard,
		Workers:          1,
	}
	reporter := &recordingReporter{}

	result, err := Run(cfg, reporter)
	require.Error(t, err)
	var pipeErr *Error
	require.ErrorAs(t, err, &pipeErr)
	assert.Equal(t, KindInput, pipeErr.Kind)
	assert.NotNil(t, result)
	assert.Empty(t, reporter.started)
}

func TestRunFailsOnEmptyInput(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	cfg := &config.Config{
		InputPath:        in,
		OutputPath:       out,
		AlbumBehavior:    config.AlbumShortcut,
		ExtensionFixMode: config.ExtFixStandard,
		Workers:          1,
	}
	reporter := &recordingReporter{}

	result, err := Run(cfg, reporter)
	require.Error(t, err)
	var pipeErr *Error
	require.ErrorAs(t, err, &pipeErr)
	assert.Equal(t, KindInput, pipeErr.Kind)
	assert.Equal(t, "discovery", pipeErr.Stage)
	assert.NotNil(t, result)
}

func TestRunSoloExtensionFixModeExitsAfterStageOne(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "2021", "photo.jpg"), []byte{0xFF, 0xD8, 0xFF, 0xE0})
	cfg := &config.Config{
		InputPath:        in,
		OutputPath:       out,
		AlbumBehavior:    config.AlbumShortcut,
		ExtensionFixMode: config.ExtFixSolo,
		Workers:          1,
	}
	reporter := &recordingReporter{}

	result, err := Run(cfg, reporter)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, []StageName{StageExtensionFix}, reporter.started)
}

func TestRunEndToEndNothingBehaviorDropsArchiveOnlyFiles(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "Archive", "only.jpg"), []byte{0xFF, 0xD8, 0xFF, 0xE0})
	writeFile(t, filepath.Join(in, "Photos from 2021", "kept.jpg"), []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01})

	cfg := &config.Config{
		InputPath:        in,
		OutputPath:       out,
		AlbumBehavior:    config.AlbumNothing,
		ExtensionFixMode: config.ExtFixNone,
		WriteExif:        false,
		Workers:          1,
	}
	reporter := &recordingReporter{}

	result, err := Run(cfg, reporter)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 1, result.MoveStats.Placed)
	assert.Equal(t, 1, result.MoveStats.Dropped)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Archive/Trash")

	_, err = os.Stat(filepath.Join(out, "ALL_PHOTOS", "kept.jpg"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "ALL_PHOTOS", "only.jpg"))
	assert.True(t, os.IsNotExist(err))
}
