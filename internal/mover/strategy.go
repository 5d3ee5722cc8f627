// Package mover implements spec.md §4.7: materializing the output tree
// under one of five album-placement strategies, with collision-safe
// naming and a semaphore-bounded concurrent worker pool.
package mover

import (
	"errors"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/model"
)

// ErrDropped is returned by a Strategy's Place when the entity is
// intentionally excluded from the output tree (only AlbumNothing's
// strategy ever does this). Callers must distinguish it from a real
// failure.
var ErrDropped = errors.New("entity dropped by strategy")

// Strategy places one Media Entity into the output tree.
type Strategy interface {
	Place(e *model.MediaEntity, outputRoot string, division config.DateDivision, dividePartnerShared bool) error
}

// NewStrategy resolves the configured album behavior to its Strategy.
// AlbumJSON returns a *JSONStrategy so the caller can Finalize() it after
// every entity has been placed.
func NewStrategy(behavior config.AlbumBehavior) (Strategy, error) {
	switch behavior {
	case config.AlbumShortcut:
		return &ShortcutStrategy{}, nil
	case config.AlbumReverseShortcut:
		return &ReverseShortcutStrategy{}, nil
	case config.AlbumDuplicateCopy:
		return &DuplicateCopyStrategy{}, nil
	case config.AlbumJSON:
		return NewJSONStrategy(), nil
	case config.AlbumNothing:
		return &NothingStrategy{}, nil
	default:
		return nil, errors.New("unknown album behavior: " + string(behavior))
	}
}
