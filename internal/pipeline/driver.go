// Package pipeline implements spec.md §4.8: the driver that invokes the
// eight stages in strict order, threading the immutable Config and a
// mutable Result through each one, exactly as the teacher's runCLI
// threads its Config through ScanMediaFiles -> ProcessMetadata ->
// CalculateHashes -> FindDuplicates -> OrganizeIntoAlbums ->
// ExecuteOrganization, generalized to the real eight stages.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"takeout-reorg/internal/albumresolve"
	"takeout-reorg/internal/cache"
	"takeout-reorg/internal/config"
	"takeout-reorg/internal/creationtime"
	"takeout-reorg/internal/dateextract"
	"takeout-reorg/internal/dedup"
	"takeout-reorg/internal/discovery"
	"takeout-reorg/internal/exifwrite"
	"takeout-reorg/internal/extfix"
	"takeout-reorg/internal/model"
	"takeout-reorg/internal/mover"
	"takeout-reorg/internal/sidecarmatch"
)

// Run drives the full eight-stage pipeline against cfg, reporting progress
// through reporter. It always returns a non-nil Result; a stage-fatal
// error is captured in Result.FailureReason rather than returned bare, per
// spec.md §7's "no exceptions escape the driver" rule. The error return
// is non-nil only for the two conditions the caller must map to a
// specific exit code, both of KindInput: a missing input path (stage
// "input") and no media found (stage "discovery"); every other failure is
// reported solely through the Result.
func Run(cfg *config.Config, reporter ProgressReporter) (*Result, error) {
	if reporter == nil {
		reporter = NullReporter{}
	}
	result := newResult()

	if err := config.CheckInputExists(cfg.InputPath); err != nil {
		return result, newError("input", KindInput, err)
	}

	// Stage 1: Extension Correction.
	if err := runStage(result, reporter, StageExtensionFix, func() error {
		fixed, err := extfix.FixExtensions(cfg.InputPath, cfg.ExtensionFixMode)
		result.ExtensionsFixed = fixed
		return err
	}); err != nil {
		return fail(result, StageExtensionFix, err)
	}

	if cfg.ExtensionFixMode == config.ExtFixSolo {
		result.Success = true
		return result, nil
	}

	// Stage 2: Discovery.
	var collection *model.MediaCollection
	var albumDirs []string
	if err := runStage(result, reporter, StageDiscovery, func() error {
		var err error
		collection, albumDirs, err = discovery.Discover(cfg.InputPath)
		return err
	}); err != nil {
		return fail(result, StageDiscovery, err)
	}

	if cfg.SkipExtras {
		collection, result.ExtrasSkipped = dropExtras(collection)
	}
	result.TotalMediaFound = collection.Len()

	if collection.Len() == 0 {
		return result, newError("discovery", KindInput, fmt.Errorf("no media found under %s", cfg.InputPath))
	}

	hashCache, cacheErr := cache.Open(cfg.OutputPath)
	if cacheErr != nil {
		reporter.Warn(fmt.Sprintf("hash cache disabled: %v", cacheErr))
		hashCache = nil
	}
	if hashCache != nil {
		defer hashCache.Close()
	}

	// Stage 3: Deduplication.
	var maxHashSize int64
	if cfg.LimitFileSize {
		maxHashSize = config.MaxHashedFileSize
	}
	if err := runStage(result, reporter, StageDedup, func() error {
		progress := func(done, total int) {
			reporter.Progress(ProgressEvent{Stage: StageDedup, Done: done, Total: total})
		}
		var c dedup.HashCache
		if hashCache != nil {
			c = hashCache
		}
		result.DuplicatesRemoved = dedup.Dedupe(collection, cfg.Workers, maxHashSize, c, progress)
		return nil
	}); err != nil {
		return fail(result, StageDedup, err)
	}

	// Stage 4: Date Extraction (also recovers GPS/partner-shared, both
	// sourced from the same sidecar the date chain's JSON extractors
	// already locate).
	if err := runStage(result, reporter, StageDateExtract, func() error {
		chain := dateextract.NewChain(cfg.GuessFromName)
		total := collection.Len()
		for i, e := range collection.Entities {
			extractDate(e, chain, result)
			extractSidecarExtras(e)
			reporter.Progress(ProgressEvent{Stage: StageDateExtract, Done: i + 1, Total: total})
		}
		return nil
	}); err != nil {
		return fail(result, StageDateExtract, err)
	}

	// Stage 5: Metadata Write.
	if cfg.WriteExif {
		if err := runStage(result, reporter, StageMetadataWrite, func() error {
			return writeMetadata(collection, maxHashSize, result, reporter)
		}); err != nil {
			reporter.Warn(fmt.Sprintf("metadata write stage degraded: %v", err))
		}
	}

	// Stage 6: Album Detection / Resolution.
	if err := runStage(result, reporter, StageAlbumResolve, func() error {
		return albumresolve.Resolve(collection, albumDirs, cfg.AlbumBehavior)
	}); err != nil {
		return fail(result, StageAlbumResolve, err)
	}

	if cfg.AlbumBehavior == config.AlbumNothing {
		warnContentBearingSpecialFolders(collection, result, reporter)
	}

	// Stage 7: Moving.
	if err := runStage(result, reporter, StageMove, func() error {
		progress := func(done, total int) {
			reporter.Progress(ProgressEvent{Stage: StageMove, Done: done, Total: total})
		}
		onFailure := func(e *model.MediaEntity, placeErr error) {
			result.recordFailedFile(StageMove, fmt.Sprintf("%s: %v", e.CanonicalPath(), placeErr))
		}
		stats, err := mover.Move(collection, cfg.OutputPath, cfg, 0, 0, progress, onFailure)
		result.MoveStats = stats
		return err
	}); err != nil {
		return fail(result, StageMove, err)
	}

	// Stage 8: Creation-Time Sync.
	if cfg.UpdateCreationTime {
		if err := runStage(result, reporter, StageCreationTime, func() error {
			syncCreationTimes(collection, result)
			return nil
		}); err != nil {
			reporter.Warn(fmt.Sprintf("creation-time sync degraded: %v", err))
		}
	}

	result.Success = true
	return result, nil
}

func runStage(result *Result, reporter ProgressReporter, stage StageName, fn func() error) error {
	reporter.StageStarted(stage)
	start := time.Now()
	err := fn()
	result.StageDurations[stage] = time.Since(start)
	reporter.StageFinished(stage)
	return err
}

func fail(result *Result, stage StageName, err error) (*Result, error) {
	result.Success = false
	result.FailedStage = stage
	result.FailureReason = err.Error()
	return result, nil
}

// dropExtras removes entities whose canonical file is an "extra" / edited
// variant when --skip-extras is set, returning the filtered collection and
// the count dropped.
func dropExtras(collection *model.MediaCollection) (*model.MediaCollection, int) {
	kept := model.NewMediaCollection()
	dropped := 0
	for _, e := range collection.Entities {
		if sidecarmatch.IsExtra(filepath.Base(e.CanonicalPath())) {
			dropped++
			continue
		}
		kept.Add(e)
	}
	return kept, dropped
}

func extractDate(e *model.MediaEntity, chain *dateextract.Chain, result *Result) {
	t, tier, ok := chain.Extract(e.CanonicalPath())
	if !ok {
		result.DateTierCounts[model.AccuracyUnknown]++
		return
	}
	e.DateTaken = &t
	e.Accuracy = tier
	result.DateTierCounts[tier]++
}

// extractSidecarExtras recovers GPS coordinates and the partner-shared
// flag from whichever sidecar the try-hard lookup finds — the same
// lookup the date chain's JSON extractors perform, reused here so
// coordinates aren't left behind just because the date chain's JSON step
// wasn't the one that produced the winning date.
func extractSidecarExtras(e *model.MediaEntity) {
	sidecarPath, found := sidecarmatch.FindSidecar(e.CanonicalPath(), true)
	if !found {
		return
	}
	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		return
	}
	rec, err := model.ParseSidecar(data)
	if err != nil {
		return
	}
	if rec.HasCoordinates() {
		e.Coordinates = &model.Coordinates{Latitude: rec.Latitude, Longitude: rec.Longitude}
	}
	if rec.IsPartnerShared {
		e.IsPartnerShared = true
	}
}

func writeMetadata(collection *model.MediaCollection, maxSize int64, result *Result, reporter ProgressReporter) error {
	writer, err := exifwrite.NewWriter()
	if err != nil {
		return err
	}
	defer writer.Close()

	total := collection.Len()
	for i, e := range collection.Entities {
		path := e.CanonicalPath()
		if maxSize > 0 {
			if info, err := os.Stat(path); err == nil && info.Size() > maxSize {
				reporter.Progress(ProgressEvent{Stage: StageMetadataWrite, Done: i + 1, Total: total})
				continue
			}
		}
		if e.DateTaken != nil {
			wrote, err := writer.WriteDateTime(path, *e.DateTaken)
			if err != nil {
				result.recordFailedFile(StageMetadataWrite, fmt.Sprintf("%s: %v", path, err))
			} else if wrote {
				result.DateTimesWritten++
			}
		}
		if e.Coordinates != nil {
			wrote, err := writer.WriteGPS(path, e.Coordinates.Latitude, e.Coordinates.Longitude)
			if err != nil {
				result.recordFailedFile(StageMetadataWrite, fmt.Sprintf("%s: %v", path, err))
			} else if wrote {
				result.CoordinatesWritten++
			}
		}
		reporter.Progress(ProgressEvent{Stage: StageMetadataWrite, Done: i + 1, Total: total})
	}
	return nil
}

// warnContentBearingSpecialFolders surfaces the pre-flight warning
// spec.md §9's open question asks reimplementers to provide: under the
// nothing behavior, an entity that carries no NONE path and has at least
// one Archive or Trash label is about to be silently dropped.
func warnContentBearingSpecialFolders(collection *model.MediaCollection, result *Result, reporter ProgressReporter) {
	var count int
	for _, e := range collection.Entities {
		if _, hasNone := e.PathForLabel(model.NoneLabel); hasNone {
			continue
		}
		for _, label := range e.Labels() {
			if label == "Archive" || label == "Trash" {
				count++
				break
			}
		}
	}
	if count == 0 {
		return
	}
	msg := fmt.Sprintf("%d file(s) under Archive/Trash have no copy elsewhere and will be dropped under --albums nothing", count)
	result.Warnings = append(result.Warnings, msg)
	reporter.Warn(msg)
}

func syncCreationTimes(collection *model.MediaCollection, result *Result) {
	setter := creationtime.NewSetter()
	for _, e := range collection.Entities {
		if e.DateTaken == nil {
			continue
		}
		for _, path := range e.PlacedPaths {
			if err := setter.SetCreationTime(path, *e.DateTaken); err == nil {
				result.CreationTimesUpdated++
			}
		}
	}
}
