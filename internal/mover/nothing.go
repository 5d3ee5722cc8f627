package mover

import (
	"path/filepath"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/model"
)

// NothingStrategy is spec.md §4.7's sole data-loss behavior: only
// entities carrying the NONE sentinel are placed; album-only members are
// dropped entirely, deliberately and with the caller's prior consent via
// the chosen config.
type NothingStrategy struct{}

func (NothingStrategy) Place(e *model.MediaEntity, outputRoot string, division config.DateDivision, dividePartnerShared bool) error {
	path, ok := e.PathForLabel(model.NoneLabel)
	if !ok {
		return ErrDropped
	}

	destDir := filepath.Join(outputRoot, allPhotosBranch(e, dividePartnerShared), DatePath(e.DateTaken, division))
	destPath, err := claimAndPlace(destDir, filepath.Base(path), path, moveFile)
	if err != nil {
		return err
	}
	e.AddPlaced(destPath)
	return nil
}
