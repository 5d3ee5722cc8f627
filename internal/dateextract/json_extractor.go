package dateextract

import (
	"os"
	"time"

	"takeout-reorg/internal/model"
	"takeout-reorg/internal/sidecarmatch"
)

// jsonExtractor is spec.md §4.2 step 1: the reliable sidecar lookup,
// without the aggressive filename-mangling transforms.
type jsonExtractor struct{}

func (jsonExtractor) Tier() model.AccuracyTier { return model.AccuracyJSON }

func (jsonExtractor) Extract(mediaPath string) (time.Time, bool) {
	return extractFromSidecar(mediaPath, false)
}

// jsonTryHardExtractor is step 4: the same sidecar lookup, but with every
// transform in the cascade enabled.
type jsonTryHardExtractor struct{}

func (jsonTryHardExtractor) Tier() model.AccuracyTier { return model.AccuracyJSONTryHard }

func (jsonTryHardExtractor) Extract(mediaPath string) (time.Time, bool) {
	return extractFromSidecar(mediaPath, true)
}

func extractFromSidecar(mediaPath string, tryHard bool) (time.Time, bool) {
	sidecarPath, found := sidecarmatch.FindSidecar(mediaPath, tryHard)
	if !found {
		return time.Time{}, false
	}
	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		return time.Time{}, false
	}
	rec, err := model.ParseSidecar(data)
	if err != nil || rec.PhotoTakenTimeUnix == 0 {
		return time.Time{}, false
	}
	return time.Unix(rec.PhotoTakenTimeUnix, 0).UTC(), true
}
