//go:build !windows

package creationtime

import (
	"os"
	"time"
)

// platformSetter has no portable way to patch a file's true birthtime
// outside Windows without cgo, so it updates mtime/atime as the closest
// best-effort proxy; callers treat this stage as advisory, not a
// correctness requirement.
type platformSetter struct{}

func (platformSetter) SetCreationTime(path string, t time.Time) error {
	return os.Chtimes(path, t, t)
}
