package mover

import (
	"errors"
	"os"
	"sort"
	"sync"

	"github.com/facette/natsort"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/model"
)

// ProgressFunc reports placement progress; either argument may be
// ignored by the caller.
type ProgressFunc func(done, total int)

// FailureFunc reports a single entity's failed placement, so the caller
// can log it instead of it only ever being tallied into Stats.Failed.
type FailureFunc func(e *model.MediaEntity, err error)

// Stats tallies the outcome of a move run.
type Stats struct {
	Placed      int
	Dropped     int
	Failed      int
	BytesPlaced int64
}

// Move materializes collection into outputRoot per cfg's album behavior
// and date-division level, using a semaphore-bounded concurrent pool per
// spec.md §4.7. Entities are processed in natural filename order so
// sequences like "img2, img10" land in human-expected order within a
// batch, rather than lexicographic "img10, img2".
func Move(collection *model.MediaCollection, outputRoot string, cfg *config.Config, maxConcurrency, batchSize int, progress ProgressFunc, onFailure FailureFunc) (Stats, error) {
	strategy, err := NewStrategy(cfg.AlbumBehavior)
	if err != nil {
		return Stats{}, err
	}

	entities := append([]*model.MediaEntity(nil), collection.Entities...)
	sort.Slice(entities, func(i, j int) bool {
		return natsort.Compare(entities[i].CanonicalPath(), entities[j].CanonicalPath())
	})

	var stats Stats
	var mu sync.Mutex
	done := 0
	total := len(entities)

	runBatched(entities, maxConcurrency, batchSize, func(e *model.MediaEntity) error {
		placeErr := strategy.Place(e, outputRoot, cfg.DateDivision, cfg.DividePartnerShared)

		mu.Lock()
		done++
		switch {
		case errors.Is(placeErr, ErrDropped):
			stats.Dropped++
		case placeErr != nil:
			stats.Failed++
			if onFailure != nil {
				onFailure(e, placeErr)
			}
		default:
			stats.Placed++
			stats.BytesPlaced += placedSize(e)
		}
		if progress != nil {
			progress(done, total)
		}
		mu.Unlock()
		return placeErr
	})

	if js, ok := strategy.(*JSONStrategy); ok {
		if err := js.Finalize(outputRoot); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// placedSize sums the on-disk size of every path the strategy just
// materialized for e, so the driver's summary can report a human-readable
// total without each strategy tracking byte counts itself.
func placedSize(e *model.MediaEntity) int64 {
	var total int64
	for _, p := range e.PlacedPaths {
		if info, err := os.Stat(p); err == nil {
			total += info.Size()
		}
	}
	return total
}
