package dateextract

import (
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"takeout-reorg/internal/model"
)

// folderYearExtractor is spec.md §4.2 step 5, the last-resort fallback
// grounded on the "Photos from <year>" top-level Takeout directory naming.
type folderYearExtractor struct{}

func (folderYearExtractor) Tier() model.AccuracyTier { return model.AccuracyFolderYear }

var rePhotosFromYear = regexp.MustCompile(`(?i)Photos\s+from\s+(\d{4})`)

func (folderYearExtractor) Extract(mediaPath string) (time.Time, bool) {
	dir := filepath.Dir(mediaPath)
	for d := dir; d != "" && d != "." && d != string(filepath.Separator); d = filepath.Dir(d) {
		m := rePhotosFromYear.FindStringSubmatch(filepath.Base(d))
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		maxYear := time.Now().Year() + 1
		if year < 1900 || year > maxYear {
			continue
		}
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
