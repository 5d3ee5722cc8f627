package dateextract

import (
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"takeout-reorg/internal/model"
)

// exifExtractor is spec.md §4.2 step 2, grounded on the goexif usage in
// the pack's standalone copy tools: try DateTimeOriginal first, then fall
// back to DateTime and DateTimeDigitized.
type exifExtractor struct{}

func (exifExtractor) Tier() model.AccuracyTier { return model.AccuracyEXIF }

var exifDateFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTime,
	exif.DateTimeDigitized,
}

func (exifExtractor) Extract(mediaPath string) (time.Time, bool) {
	f, err := os.Open(mediaPath)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	for _, field := range exifDateFields {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		raw, err := tag.StringVal()
		if err != nil {
			continue
		}
		raw = strings.Trim(raw, "\"")
		t, err := time.Parse("2006:01:02 15:04:05", raw)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
