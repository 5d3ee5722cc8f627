package mover

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// moveFile relocates src to dst, trying an atomic rename first and
// falling back to copy-then-remove for cross-device moves, the same
// two-step fallback the teacher's moveFile uses in core_executor.go.
func moveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyFile duplicates src's bytes to dst, writing through a UUID-suffixed
// temp file in the destination directory and renaming into place so a
// crash mid-copy never leaves a half-written file at dst.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := dst + ".tmp-" + uuid.NewString()
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dst)
}
