// Package sidecarmatch implements spec.md §4.1's sidecar lookup: a pure,
// read-only filesystem probe that pairs a media file with its Takeout JSON
// sidecar through a cascade of filename-mangling strategies, tried in
// strict decreasing-reliability order so a more aggressive transform never
// overrides a hit a more reliable one already found.
package sidecarmatch

import "path/filepath"

// FindSidecar returns the path to mediaPath's JSON sidecar, if any exists
// on disk. The basic six transforms are always tried; the more
// speculative transforms 7-10 are tried only when tryHard is set. tryHard
// is chosen by the caller (the date chain's try-hard JSON extractor, the
// extension corrector and the driver's GPS lookup pass true) and is not
// tied to any CLI flag.
func FindSidecar(mediaPath string, tryHard bool) (string, bool) {
	dir := filepath.Dir(mediaPath)
	base := filepath.Base(mediaPath)

	for _, t := range basicTransforms() {
		candidate, ok := t.fn(base)
		if !ok {
			continue
		}
		if p, found := probe(dir, candidate); found {
			return p, true
		}
	}

	if !tryHard {
		return "", false
	}

	for _, t := range aggressiveTransforms() {
		candidate, ok := t.fn(base)
		if !ok {
			continue
		}
		if p, found := probe(dir, candidate); found {
			return p, true
		}
	}

	return "", false
}
