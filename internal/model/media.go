// Package model holds the domain types shared by every pipeline stage:
// the Media Entity, its accuracy-tiered date, and the ordered Media
// Collection the driver threads through the eight stages.
package model

import "time"

// NoneLabel is the sentinel album key denoting the canonical,
// album-independent copy of a Media Entity.
const NoneLabel = "\x00NONE\x00"

// AccuracyTier ranks the source that produced a Media Entity's DateTaken.
// Lower is better; AccuracyUnknown means no source yielded a date.
type AccuracyTier int

const (
	AccuracyJSON AccuracyTier = iota
	AccuracyEXIF
	AccuracyGuessName
	AccuracyJSONTryHard
	AccuracyFolderYear
	AccuracyUnknown AccuracyTier = 1<<31 - 1
)

func (t AccuracyTier) String() string {
	switch t {
	case AccuracyJSON:
		return "json"
	case AccuracyEXIF:
		return "exif"
	case AccuracyGuessName:
		return "guess-name"
	case AccuracyJSONTryHard:
		return "json-tryhard"
	case AccuracyFolderYear:
		return "folder-year"
	default:
		return "none"
	}
}

// Coordinates is a decimal-degree GPS fix. The zero value is never a valid
// fix: sidecar coordinates of exactly 0,0 are treated as absent per
// spec.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// MediaEntity is one logical photo or video, possibly referenced from
// several album directories.
//
// Files maps an album label (or NoneLabel) to a concrete path; every path
// in the map is byte-identical content. Losers absorbed during
// deduplication contribute their label/path pairs into the survivor's map
// rather than being deleted, preserving the "a path to every byte stream
// always exists" invariant until the mover physically consolidates them.
type MediaEntity struct {
	Files []AlbumFile

	DateTaken *time.Time
	Accuracy  AccuracyTier

	Coordinates     *Coordinates
	IsPartnerShared bool

	// PlacedPaths records every real (non-symlink) output path the mover
	// materialized for this entity, populated by the mover strategies as
	// they place or duplicate content. Stage 8 (creation-time sync) acts
	// on these rather than on Files, since Files still holds the
	// now-stale input-tree paths once the mover has moved them away.
	PlacedPaths []string

	contentHash string // lazily populated, SHA-256 of canonical file bytes only
}

// AddPlaced records a materialized output path.
func (m *MediaEntity) AddPlaced(path string) {
	m.PlacedPaths = append(m.PlacedPaths, path)
}

// AlbumFile pairs an album label with the path holding that album's copy.
type AlbumFile struct {
	Label string
	Path  string
}

// CanonicalPath returns the NoneLabel path if present, else an arbitrary
// album path (every entity has at least one file per the invariant in
// spec.md §8).
func (m *MediaEntity) CanonicalPath() string {
	for _, f := range m.Files {
		if f.Label == NoneLabel {
			return f.Path
		}
	}
	if len(m.Files) > 0 {
		return m.Files[0].Path
	}
	return ""
}

// Labels returns every non-NoneLabel album name this entity belongs to.
func (m *MediaEntity) Labels() []string {
	var labels []string
	for _, f := range m.Files {
		if f.Label != NoneLabel {
			labels = append(labels, f.Label)
		}
	}
	return labels
}

// HasLabel reports whether the entity already carries the given album
// label, so merges stay idempotent.
func (m *MediaEntity) HasLabel(label string) bool {
	for _, f := range m.Files {
		if f.Label == label {
			return true
		}
	}
	return false
}

// AddFile records a new label/path pair unless that label is already
// present.
func (m *MediaEntity) AddFile(label, path string) {
	if m.HasLabel(label) {
		return
	}
	m.Files = append(m.Files, AlbumFile{Label: label, Path: path})
}

// PathForLabel returns the path stored for a given label, if any.
func (m *MediaEntity) PathForLabel(label string) (string, bool) {
	for _, f := range m.Files {
		if f.Label == label {
			return f.Path, true
		}
	}
	return "", false
}

// ContentHash returns the cached SHA-256 hex digest, if computed.
func (m *MediaEntity) ContentHash() string { return m.contentHash }

// SetContentHash caches the SHA-256 hex digest of the canonical file's
// bytes. Call sites never hash metadata, only the byte stream.
func (m *MediaEntity) SetContentHash(h string) { m.contentHash = h }

// MediaCollection is the ordered, mutable sequence of Media Entities the
// driver owns exclusively; stage 3 shrinks it by removing duplicate
// entries. Stage 6 only attaches album labels to existing entities; it
// does not merge or remove any.
type MediaCollection struct {
	Entities []*MediaEntity
}

// NewMediaCollection returns an empty collection ready for stage 2 to
// populate.
func NewMediaCollection() *MediaCollection {
	return &MediaCollection{}
}

// Add appends a freshly discovered entity.
func (c *MediaCollection) Add(e *MediaEntity) {
	c.Entities = append(c.Entities, e)
}

// Len reports the current entity count.
func (c *MediaCollection) Len() int { return len(c.Entities) }

// Remove drops the entities whose indices are set in indices, keeping the
// remaining entities in their original order.
func (c *MediaCollection) Remove(indices map[int]bool) {
	kept := c.Entities[:0:0]
	for i, e := range c.Entities {
		if !indices[i] {
			kept = append(kept, e)
		}
	}
	c.Entities = kept
}
