package mover

import (
	"path/filepath"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/model"
)

// DuplicateCopyStrategy places a physical byte copy of the canonical
// file at every destination it's referenced from: ALL_PHOTOS and each
// album directory.
type DuplicateCopyStrategy struct{}

func (DuplicateCopyStrategy) Place(e *model.MediaEntity, outputRoot string, division config.DateDivision, dividePartnerShared bool) error {
	canonical := e.CanonicalPath()
	name := filepath.Base(canonical)

	allPhotosDir := filepath.Join(outputRoot, allPhotosBranch(e, dividePartnerShared), DatePath(e.DateTaken, division))
	allPhotosPath, err := claimAndPlace(allPhotosDir, name, canonical, moveFile)
	if err != nil {
		return err
	}
	e.AddPlaced(allPhotosPath)

	for _, label := range e.Labels() {
		dir := filepath.Join(outputRoot, "ALBUMS", label)
		dup, err := claimAndPlace(dir, name, allPhotosPath, copyFile)
		if err != nil {
			return err
		}
		e.AddPlaced(dup)
	}
	return nil
}
