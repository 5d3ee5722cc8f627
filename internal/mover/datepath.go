package mover

import (
	"path/filepath"
	"time"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/model"
)

// DatePath derives the <date-path> output-tree segment spec.md §4.7
// describes for a given date-division level, substituting the
// UNKNOWN_DATE/UNKNOWN_MONTH/UNKNOWN_DAY sentinels at the appropriate
// depth when t is nil.
func DatePath(t *time.Time, division config.DateDivision) string {
	switch division {
	case config.DivideYear:
		if t == nil {
			return "UNKNOWN_DATE"
		}
		return t.Format("2006")
	case config.DivideMonth:
		if t == nil {
			return filepath.Join("UNKNOWN_DATE", "UNKNOWN_MONTH")
		}
		return filepath.Join(t.Format("2006"), t.Format("01"))
	case config.DivideDay:
		if t == nil {
			return filepath.Join("UNKNOWN_DATE", "UNKNOWN_MONTH", "UNKNOWN_DAY")
		}
		return filepath.Join(t.Format("2006"), t.Format("01"), t.Format("02"))
	default:
		return ""
	}
}

// allPhotosBranch is the output-tree root segment a strategy's primary
// placement lands under: PARTNER_SHARED when --divide-partner-shared is
// set and the entity came from a partner-shared sidecar, ALL_PHOTOS
// otherwise. Placements under ALBUMS/<label>/ are unaffected; everything
// a strategy puts in the ALL_PHOTOS branch, including reverse-shortcut's
// symlinks back into the albums, moves to PARTNER_SHARED instead.
func allPhotosBranch(e *model.MediaEntity, dividePartnerShared bool) string {
	if dividePartnerShared && e.IsPartnerShared {
		return "PARTNER_SHARED"
	}
	return "ALL_PHOTOS"
}
