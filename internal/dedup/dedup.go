// Package dedup implements spec.md §4.3: content-hash deduplication with
// survivor selection and loser-label absorption, deferring the actual
// file consolidation to the mover so a crash before move never loses
// reachability to any input byte stream.
package dedup

import (
	"path/filepath"

	"takeout-reorg/internal/model"
)

// Dedupe hashes every entity's canonical file, groups by content hash,
// and collapses each group down to a single survivor whose Files map
// absorbs every loser's album-label entries. It returns the number of
// entities removed from the collection.
func Dedupe(collection *model.MediaCollection, workers int, maxHashSize int64, cache HashCache, progress ProgressFunc) int {
	hashAll(collection.Entities, workers, maxHashSize, cache, progress)

	groups := make(map[string][]*model.MediaEntity)
	var order []string
	for _, e := range collection.Entities {
		h := e.ContentHash()
		if h == "" {
			continue
		}
		if _, seen := groups[h]; !seen {
			order = append(order, h)
		}
		groups[h] = append(groups[h], e)
	}

	toRemove := make(map[*model.MediaEntity]bool)
	for _, h := range order {
		group := groups[h]
		if len(group) < 2 {
			continue
		}
		survivor := chooseSurvivor(group)
		for _, loser := range group {
			if loser == survivor {
				continue
			}
			absorb(survivor, loser)
			toRemove[loser] = true
		}
	}

	if len(toRemove) == 0 {
		return 0
	}

	indices := make(map[int]bool)
	for i, e := range collection.Entities {
		if toRemove[e] {
			indices[i] = true
		}
	}
	collection.Remove(indices)
	return len(indices)
}

// chooseSurvivor implements spec.md §4.3's three-level tie-break: longest
// filename, then better (smaller) accuracy tier, then lexicographically
// smaller path.
func chooseSurvivor(group []*model.MediaEntity) *model.MediaEntity {
	best := group[0]
	for _, cand := range group[1:] {
		if better(cand, best) {
			best = cand
		}
	}
	return best
}

func better(cand, best *model.MediaEntity) bool {
	cPath, bPath := cand.CanonicalPath(), best.CanonicalPath()
	cLen, bLen := len(filepath.Base(cPath)), len(filepath.Base(bPath))
	if cLen != bLen {
		return cLen > bLen
	}
	if cand.Accuracy != best.Accuracy {
		return cand.Accuracy < best.Accuracy
	}
	return cPath < bPath
}

// absorb merges loser's label/path pairs into survivor, preserving every
// path (no deletion happens here; the mover consolidates physically).
func absorb(survivor, loser *model.MediaEntity) {
	for _, f := range loser.Files {
		survivor.AddFile(f.Label, f.Path)
	}
	if survivor.DateTaken == nil && loser.DateTaken != nil {
		survivor.DateTaken = loser.DateTaken
		survivor.Accuracy = loser.Accuracy
	}
	if survivor.Coordinates == nil && loser.Coordinates != nil {
		survivor.Coordinates = loser.Coordinates
	}
	if loser.IsPartnerShared {
		survivor.IsPartnerShared = true
	}
}
