package pipeline

import (
	"time"

	"takeout-reorg/internal/model"
	"takeout-reorg/internal/mover"
)

// Result is the mutable accumulator the driver threads through all eight
// stages (spec.md §4.8). It is always returned, success or failure: the
// caller never receives a bare error with no statistics.
type Result struct {
	Success       bool
	FailureReason string
	FailedStage   StageName

	StageDurations map[StageName]time.Duration

	TotalMediaFound int
	ExtensionsFixed int
	ExtrasSkipped   int

	DuplicatesRemoved int

	DateTierCounts map[model.AccuracyTier]int

	DateTimesWritten   int
	CoordinatesWritten int

	CreationTimesUpdated int

	MoveStats mover.Stats

	// Warnings collects non-fatal, user-visible notices (e.g. the
	// content-bearing Archive/Trash pre-flight warning under the nothing
	// behavior) surfaced once at the end of the run rather than
	// interleaved with progress output.
	Warnings []string

	// FailedFiles caps diagnostics at the first five per stage, per
	// spec.md's "offending exception captured" requirement — enough to
	// diagnose without flooding the summary.
	FailedFiles map[StageName][]string

	// failedFileOverflow counts failures beyond the first five per stage,
	// so the text summary can print "... and N more" without FailedFiles
	// itself growing unbounded.
	failedFileOverflow map[StageName]int
}

func newResult() *Result {
	return &Result{
		StageDurations:     make(map[StageName]time.Duration),
		DateTierCounts:     make(map[model.AccuracyTier]int),
		FailedFiles:        make(map[StageName][]string),
		failedFileOverflow: make(map[StageName]int),
	}
}

func (r *Result) recordFailedFile(stage StageName, detail string) {
	if len(r.FailedFiles[stage]) >= 5 {
		r.failedFileOverflow[stage]++
		return
	}
	r.FailedFiles[stage] = append(r.FailedFiles[stage], detail)
}
