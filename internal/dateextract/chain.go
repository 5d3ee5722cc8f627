// Package dateextract implements spec.md §4.2's ordered extractor chain:
// each extractor attempts to produce a date for a media file, the pipeline
// stops at the first hit, and the winning extractor's position in the
// chain becomes the entity's accuracy tier.
package dateextract

import (
	"time"

	"takeout-reorg/internal/model"
)

// Extractor attempts to recover a capture date for a media file. A false
// second return means "no opinion", never an error — every extractor
// fails soft per spec.md §4.2.
type Extractor interface {
	Tier() model.AccuracyTier
	Extract(mediaPath string) (time.Time, bool)
}

// Chain runs extractors in priority order and stops at the first hit.
type Chain struct {
	extractors []Extractor
}

// NewChain builds the standard five-extractor chain. guessFromName gates
// the filename-pattern extractor per the --guess-from-name flag; the
// try-hard JSON pass and folder-year fallback always run, matching
// spec.md's ordering (json, exif, [guess-name], json-tryhard, folder-year).
func NewChain(guessFromName bool) *Chain {
	extractors := []Extractor{
		&jsonExtractor{},
		&exifExtractor{},
	}
	if guessFromName {
		extractors = append(extractors, &guessNameExtractor{})
	}
	extractors = append(extractors, &jsonTryHardExtractor{}, &folderYearExtractor{})
	return &Chain{extractors: extractors}
}

// Extract runs the chain against mediaPath, returning the first hit and
// its accuracy tier, or (zero, AccuracyUnknown, false) if nothing matched.
func (c *Chain) Extract(mediaPath string) (time.Time, model.AccuracyTier, bool) {
	for _, ex := range c.extractors {
		if t, ok := ex.Extract(mediaPath); ok {
			return t, ex.Tier(), true
		}
	}
	return time.Time{}, model.AccuracyUnknown, false
}
