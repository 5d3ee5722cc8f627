package pipeline

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"takeout-reorg/internal/model"
)

// summaryJSON is the on-disk shape of run-summary.json, the
// machine-readable analogue of the DONE!/Processing failed text summary,
// grounded on the writeMetadataMap/writeAlbumJSON pattern of marshaling a
// plain map straight to the output directory.
type summaryJSON struct {
	Success       bool   `json:"success"`
	FailedStage   string `json:"failed_stage,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`

	TotalMediaFound   int `json:"total_media_found"`
	ExtensionsFixed   int `json:"extensions_fixed"`
	ExtrasSkipped     int `json:"extras_skipped"`
	DuplicatesRemoved int `json:"duplicates_removed"`

	DateTierCounts map[string]int `json:"date_tier_counts"`

	DateTimesWritten     int `json:"datetimes_written"`
	CoordinatesWritten   int `json:"coordinates_written"`
	CreationTimesUpdated int `json:"creation_times_updated"`

	MovedPlaced  int `json:"moved_placed"`
	MovedDropped int `json:"moved_dropped"`
	MovedFailed  int `json:"moved_failed"`

	StageDurationsMS map[string]int64    `json:"stage_durations_ms"`
	Warnings         []string            `json:"warnings,omitempty"`
	FailedFiles      map[string][]string `json:"failed_files,omitempty"`
}

// WriteSummary marshals result to <outputPath>/run-summary.json. A write
// failure is logged, never fatal: the run's actual effects already
// happened, and losing the diagnostic file shouldn't flip the exit code.
func WriteSummary(result *Result, outputPath string) {
	s := summaryJSON{
		Success:               result.Success,
		FailureReason:         result.FailureReason,
		TotalMediaFound:       result.TotalMediaFound,
		ExtensionsFixed:       result.ExtensionsFixed,
		ExtrasSkipped:         result.ExtrasSkipped,
		DuplicatesRemoved:     result.DuplicatesRemoved,
		DateTierCounts:        make(map[string]int),
		DateTimesWritten:      result.DateTimesWritten,
		CoordinatesWritten:    result.CoordinatesWritten,
		CreationTimesUpdated:  result.CreationTimesUpdated,
		MovedPlaced:           result.MoveStats.Placed,
		MovedDropped:          result.MoveStats.Dropped,
		MovedFailed:           result.MoveStats.Failed,
		StageDurationsMS:      make(map[string]int64),
		Warnings:              result.Warnings,
	}
	if result.FailedStage != "" {
		s.FailedStage = string(result.FailedStage)
	}
	for tier, count := range result.DateTierCounts {
		s.DateTierCounts[tier.String()] = count
	}
	for stage, d := range result.StageDurations {
		s.StageDurationsMS[string(stage)] = d.Milliseconds()
	}
	if len(result.FailedFiles) > 0 {
		s.FailedFiles = make(map[string][]string)
		for stage, files := range result.FailedFiles {
			s.FailedFiles[string(stage)] = files
		}
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		log.Printf("failed to marshal run summary: %v", err)
		return
	}
	if err := os.WriteFile(filepath.Join(outputPath, "run-summary.json"), out, 0644); err != nil {
		log.Printf("failed to write run summary: %v", err)
	}
}

// PrintSummary renders the spec.md §7 human-visible text summary:
// "DONE!" when every stage ran (possibly with non-fatal per-file
// failures) or "Processing failed: <reason>" when a stage aborted the
// run, either way followed by the statistics reflecting actual effects.
func PrintSummary(result *Result) {
	if result.Success {
		fmt.Println("DONE!")
	} else {
		fmt.Printf("Processing failed: %s\n", result.FailureReason)
	}
	fmt.Println()
	fmt.Printf("  Media found:        %d\n", result.TotalMediaFound)
	fmt.Printf("  Extensions fixed:   %d\n", result.ExtensionsFixed)
	fmt.Printf("  Extras skipped:     %d\n", result.ExtrasSkipped)
	fmt.Printf("  Duplicates removed: %d\n", result.DuplicatesRemoved)
	fmt.Printf("  Datetimes written:  %d\n", result.DateTimesWritten)
	fmt.Printf("  Coordinates written:%d\n", result.CoordinatesWritten)
	fmt.Printf("  Creation times set: %d\n", result.CreationTimesUpdated)
	fmt.Printf("  Placed / dropped / failed: %d / %d / %d\n",
		result.MoveStats.Placed, result.MoveStats.Dropped, result.MoveStats.Failed)

	for tier := model.AccuracyJSON; tier <= model.AccuracyFolderYear; tier++ {
		if n, ok := result.DateTierCounts[tier]; ok && n > 0 {
			fmt.Printf("    accuracy %-12s %d\n", tier.String()+":", n)
		}
	}
	if n, ok := result.DateTierCounts[model.AccuracyUnknown]; ok && n > 0 {
		fmt.Printf("    accuracy %-12s %d\n", "none:", n)
	}

	if result.MoveStats.BytesPlaced > 0 {
		fmt.Printf("  Data placed:        %s\n", humanize.Bytes(uint64(result.MoveStats.BytesPlaced)))
	}

	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}

	printFailedFiles(result)
}

// printFailedFiles renders spec.md §7's per-stage error enumeration: up to
// five entries, then "... and N more" once a stage's failures were capped
// by recordFailedFile. Stages print in a fixed order so the summary is
// stable across runs rather than following map iteration order.
func printFailedFiles(result *Result) {
	for _, stage := range stageOrder {
		files := result.FailedFiles[stage]
		if len(files) == 0 {
			continue
		}
		fmt.Printf("  %s errors:\n", stage)
		for _, f := range files {
			fmt.Printf("    %s\n", f)
		}
		if extra := result.failedFileOverflow[stage]; extra > 0 {
			fmt.Printf("    ... and %d more\n", extra)
		}
	}
}
