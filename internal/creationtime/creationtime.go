// Package creationtime implements spec.md §2 stage 8: the optional,
// platform-gated filesystem creation-time sync. True birthtime patching
// is only meaningfully available through a native syscall on Windows;
// elsewhere this falls back to updating mtime/atime via os.Chtimes, the
// closest portable proxy, since most Linux filesystems don't expose a
// settable birthtime at all.
package creationtime

import "time"

// Setter is the CreationTimeSetter capability spec.md §1 treats as an
// out-of-scope, platform-specific collaborator.
type Setter interface {
	SetCreationTime(path string, t time.Time) error
}

// NewSetter returns the Setter appropriate for the running platform.
func NewSetter() Setter {
	return platformSetter{}
}
