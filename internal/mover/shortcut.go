package mover

import (
	"path/filepath"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/model"
)

// ShortcutStrategy is spec.md §4.7's default: the canonical file lands
// under ALL_PHOTOS/<date-path>/, and each album label becomes a
// directory under ALBUMS/<label>/ holding a relative symlink back into
// ALL_PHOTOS.
type ShortcutStrategy struct{}

func (ShortcutStrategy) Place(e *model.MediaEntity, outputRoot string, division config.DateDivision, dividePartnerShared bool) error {
	canonical := e.CanonicalPath()
	destDir := filepath.Join(outputRoot, allPhotosBranch(e, dividePartnerShared), DatePath(e.DateTaken, division))

	destPath, err := claimAndPlace(destDir, filepath.Base(canonical), canonical, moveFile)
	if err != nil {
		return err
	}
	e.AddPlaced(destPath)

	for _, label := range e.Labels() {
		albumDir := filepath.Join(outputRoot, "ALBUMS", label)
		if _, err := claimAndPlace(albumDir, filepath.Base(destPath), destPath, makeRelativeSymlink); err != nil {
			return err
		}
	}
	return nil
}
