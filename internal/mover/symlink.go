package mover

import (
	"os"
	"path/filepath"
)

// makeRelativeSymlink creates linkPath pointing at target via a
// relative path, so the output tree stays portable if moved or copied
// elsewhere as a whole.
func makeRelativeSymlink(target, linkPath string) error {
	if err := os.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return err
	}
	rel, err := filepath.Rel(filepath.Dir(linkPath), target)
	if err != nil {
		rel = target
	}
	return os.Symlink(rel, linkPath)
}
