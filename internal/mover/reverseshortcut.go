package mover

import (
	"path/filepath"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/model"
)

// ReverseShortcutStrategy places the canonical file under its first
// album's directory, physically duplicates it into every additional
// album directory, and leaves a relative symlink back from ALL_PHOTOS.
// An entity with no album labels (a NONE-only file) is placed directly
// under ALL_PHOTOS, since there is no album to be "reverse" of.
type ReverseShortcutStrategy struct{}

func (ReverseShortcutStrategy) Place(e *model.MediaEntity, outputRoot string, division config.DateDivision, dividePartnerShared bool) error {
	canonical := e.CanonicalPath()
	labels := e.Labels()

	if len(labels) == 0 {
		destDir := filepath.Join(outputRoot, allPhotosBranch(e, dividePartnerShared), DatePath(e.DateTaken, division))
		destPath, err := claimAndPlace(destDir, filepath.Base(canonical), canonical, moveFile)
		if err != nil {
			return err
		}
		e.AddPlaced(destPath)
		return nil
	}

	primaryDir := filepath.Join(outputRoot, "ALBUMS", labels[0])
	primaryPath, err := claimAndPlace(primaryDir, filepath.Base(canonical), canonical, moveFile)
	if err != nil {
		return err
	}
	e.AddPlaced(primaryPath)

	for _, label := range labels[1:] {
		dir := filepath.Join(outputRoot, "ALBUMS", label)
		dup, err := claimAndPlace(dir, filepath.Base(primaryPath), primaryPath, copyFile)
		if err != nil {
			return err
		}
		e.AddPlaced(dup)
	}

	allPhotosDir := filepath.Join(outputRoot, allPhotosBranch(e, dividePartnerShared), DatePath(e.DateTaken, division))
	_, err = claimAndPlace(allPhotosDir, filepath.Base(primaryPath), primaryPath, makeRelativeSymlink)
	return err
}
