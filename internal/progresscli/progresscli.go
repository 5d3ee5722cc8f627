// Package progresscli is the plain-CLI ProgressReporter, selected via
// --no-tui in place of the full Bubble Tea screen. Grounded on the
// retrieved bleemesser-photosort library file's bar.Default/bar.Add usage
// of schollz/progressbar/v3, replacing the teacher's hand-rolled
// text-bar/percent printf loop in main.go with the same library the rest
// of the pack reaches for.
package progresscli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"takeout-reorg/internal/pipeline"
)

var stageLabels = map[pipeline.StageName]string{
	pipeline.StageExtensionFix:  "Fixing extensions",
	pipeline.StageDiscovery:     "Scanning input tree",
	pipeline.StageDedup:         "Deduplicating",
	pipeline.StageDateExtract:   "Extracting dates",
	pipeline.StageMetadataWrite: "Writing metadata",
	pipeline.StageAlbumResolve:  "Resolving albums",
	pipeline.StageMove:          "Moving files",
	pipeline.StageCreationTime:  "Syncing creation times",
}

// Reporter renders one progressbar.ProgressBar per stage, replaced as
// each stage starts.
type Reporter struct {
	bar   *progressbar.ProgressBar
	total int
}

// New returns a fresh CLI reporter.
func New() *Reporter {
	return &Reporter{}
}

func (r *Reporter) StageStarted(stage pipeline.StageName) {
	label := stageLabels[stage]
	if label == "" {
		label = string(stage)
	}
	fmt.Println(label + "...")
	r.bar = nil
	r.total = 0
}

func (r *Reporter) Progress(ev pipeline.ProgressEvent) {
	if ev.Total <= 0 {
		return
	}
	if r.bar == nil || r.total != ev.Total {
		r.bar = progressbar.Default(int64(ev.Total), stageLabels[ev.Stage])
		r.total = ev.Total
	}
	r.bar.Set(ev.Done)
}

func (r *Reporter) StageFinished(stage pipeline.StageName) {
	if r.bar != nil {
		r.bar.Finish()
	}
	fmt.Println()
}

func (r *Reporter) Warn(msg string) {
	fmt.Printf("warning: %s\n", msg)
}
