// Package albumresolve implements spec.md §4.5: stage 6's pass over
// album-folder listings, catching album memberships dedup missed because
// a post-processed copy hashed differently from its canonical sibling.
package albumresolve

import (
	"os"
	"path/filepath"
	"strings"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/model"
)

// Resolve scans every Album Folder under root and, for each file it finds
// there, attaches the folder's name as an album label on the matching
// Media Entity (matched by basename, since dedup may already have
// consolidated the canonical path elsewhere). It then enforces the
// nothing-behavior conflict rule: under AlbumNothing, an entity never
// simultaneously carries NoneLabel and a non-empty album set.
func Resolve(collection *model.MediaCollection, albumDirs []string, behavior config.AlbumBehavior) error {
	byBasename := make(map[string][]*model.MediaEntity)
	for _, e := range collection.Entities {
		base := filepath.Base(e.CanonicalPath())
		byBasename[base] = append(byBasename[base], e)
	}

	for _, dir := range albumDirs {
		label := filepath.Base(dir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.IsDir() || strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			candidates := byBasename[entry.Name()]
			if len(candidates) == 0 {
				continue
			}
			target := candidates[0]
			if !target.HasLabel(label) {
				target.AddFile(label, filepath.Join(dir, entry.Name()))
			}
		}
	}

	if behavior == config.AlbumNothing {
		enforceNothingConflictRule(collection)
	}
	return nil
}

// enforceNothingConflictRule drops an entity's album labels whenever it
// also carries a NoneLabel path, since spec.md §4.5 forbids both
// coexisting under the nothing behavior. NONE is the path the nothing
// behavior keeps; it is the reverse rule — dropping NONE instead — that
// would turn an entity with a legitimate album-independent copy (e.g. one
// placed directly under a Year folder, then also picked up by this same
// resolve pass as an album member) into an album-only entity and have
// NothingStrategy discard it entirely. An entity with no NoneLabel path
// is untouched here: it is genuinely album-only, exactly the case
// spec.md §4.7 describes nothing as designed to drop.
func enforceNothingConflictRule(collection *model.MediaCollection) {
	for _, e := range collection.Entities {
		if _, hasNone := e.PathForLabel(model.NoneLabel); !hasNone {
			continue
		}
		if len(e.Labels()) == 0 {
			continue
		}
		kept := e.Files[:0:0]
		for _, f := range e.Files {
			if f.Label == model.NoneLabel {
				kept = append(kept, f)
			}
		}
		e.Files = kept
	}
}
