package mover

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/facette/natsort"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/model"
)

// jsonRecord is one entry in the top-level metadata.json the json
// strategy emits, per spec.md §6's output-layout note.
type jsonRecord struct {
	Path            string             `json:"path"`
	Albums          []string           `json:"albums"`
	DateTaken       *time.Time         `json:"date_taken,omitempty"`
	Coordinates     *model.Coordinates `json:"coordinates,omitempty"`
	IsPartnerShared bool               `json:"is_partner_shared"`
}

// JSONStrategy places every file flat under ALL_PHOTOS/<date-path>/ and
// accumulates a metadata.json record per entity; Finalize writes the
// aggregate file once every entity has been placed.
type JSONStrategy struct {
	mu      sync.Mutex
	records []jsonRecord
}

func NewJSONStrategy() *JSONStrategy {
	return &JSONStrategy{}
}

func (s *JSONStrategy) Place(e *model.MediaEntity, outputRoot string, division config.DateDivision, dividePartnerShared bool) error {
	canonical := e.CanonicalPath()
	destDir := filepath.Join(outputRoot, allPhotosBranch(e, dividePartnerShared), DatePath(e.DateTaken, division))

	destPath, err := claimAndPlace(destDir, filepath.Base(canonical), canonical, moveFile)
	if err != nil {
		return err
	}
	e.AddPlaced(destPath)

	albums := e.Labels()
	sort.Slice(albums, func(i, j int) bool { return natsort.Compare(albums[i], albums[j]) })

	s.mu.Lock()
	s.records = append(s.records, jsonRecord{
		Path:            destPath,
		Albums:          albums,
		DateTaken:       e.DateTaken,
		Coordinates:     e.Coordinates,
		IsPartnerShared: e.IsPartnerShared,
	})
	s.mu.Unlock()
	return nil
}

// Finalize writes the accumulated metadata.json at the output root.
func (s *JSONStrategy) Finalize(outputRoot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputRoot, "metadata.json"), data, 0644)
}
