package dateextract

import (
	"path/filepath"
	"strings"
	"time"

	"takeout-reorg/internal/model"
)

// guessNameExtractor is spec.md §4.2 step 3, gated behind --guess-from-name.
// It matches common camera/messenger filename timestamp conventions against
// the trailing characters of the basename.
type guessNameExtractor struct{}

func (guessNameExtractor) Tier() model.AccuracyTier { return model.AccuracyGuessName }

// filenameDatePatterns are layouts per time.Parse, tried in list order
// against the trailing substring of the extensionless basename (as many
// characters as the layout is long); the first layout that parses wins.
var filenameDatePatterns = []string{
	"2006-01-02-15-04-05",
	"20060102_150405",
	"20060102-150405",
	"2006_01_02_15_04_05",
	"20060102150405",
}

func (guessNameExtractor) Extract(mediaPath string) (time.Time, bool) {
	base := filepath.Base(mediaPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	for _, pat := range filenameDatePatterns {
		if len(name) < len(pat) {
			continue
		}
		candidate := name[len(name)-len(pat):]
		if t, err := time.Parse(pat, candidate); err == nil {
			if t.Year() >= 1990 {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
