// Package discovery implements spec.md §2 stage 2: walking the input
// tree, classifying directories, and building the initial Media
// Collection, generalizing the teacher's ScanMediaFiles walk.
package discovery

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"takeout-reorg/internal/model"
)

// recognizedExtensions are the extension-only fast path spec.md §3's
// photo/video recognition rule allows alongside MIME sniffing.
var recognizedExtensions = map[string]bool{
	".mp": true, ".mv": true, ".dng": true, ".cr2": true,
}

var reYearFolder = regexp.MustCompile(`^Photos from (18|19|20)\d{2}$`)

// ClassifyFolder implements spec.md §3's Folder Classification rule.
// hasMedia reports whether the directory was observed to contain at
// least one media file, required to distinguish an Album Folder from
// Other.
func ClassifyFolder(name string, hasMedia bool) model.FolderKind {
	if reYearFolder.MatchString(name) {
		return model.FolderYear
	}
	if model.SpecialFolderNames[name] {
		return model.FolderSpecial
	}
	if hasMedia {
		return model.FolderAlbum
	}
	return model.FolderOther
}

// IsMedia implements spec.md §3's recognition rule: MIME sniffed from
// content, with a small extension-only allowance for containers
// mimetype's sniffing commonly misses.
func IsMedia(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if recognizedExtensions[ext] {
		return true
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	mimeStr := strings.ToLower(detected.String())
	if strings.HasPrefix(mimeStr, "image/") || strings.HasPrefix(mimeStr, "video/") {
		return true
	}
	return mimeStr == "model/vnd.mts"
}

// Discover walks root, builds a Media Collection of one entity per
// discovered media file (labeled with the folder's name if directly under
// an Album or Special folder, NoneLabel otherwise), and returns the
// list of directories classified as Album Folders, so later stages (the
// album resolver) can re-scan those listings without re-walking the
// whole tree.
func Discover(root string) (*model.MediaCollection, []string, error) {
	collection := model.NewMediaCollection()

	dirKinds := make(map[string]model.FolderKind)
	dirHasMedia := make(map[string]bool)

	// First pass: find which directories contain media, so folder
	// classification (which depends on that) can run in a second pass.
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		if IsMedia(path) {
			dirHasMedia[filepath.Dir(path)] = true
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var albumDirs []string

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			kind := ClassifyFolder(name, dirHasMedia[path])
			dirKinds[path] = kind
			if kind == model.FolderAlbum {
				albumDirs = append(albumDirs, path)
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		if !IsMedia(path) {
			return nil
		}

		dir := filepath.Dir(path)
		label := labelForDir(dir, dirKinds[dir])

		e := &model.MediaEntity{
			Files: []model.AlbumFile{{Label: label, Path: path}},
		}
		collection.Add(e)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return collection, albumDirs, nil
}

// labelForDir decides the initial album label a freshly discovered file
// gets. Year folders are album-independent (NoneLabel, the canonical
// dateful placement); Album and Special folders (Archive, Trash,
// Screenshots, Camera) both take the folder's own name as the label, so
// every other album behavior treats them as regular albums — it is only
// the nothing behavior's "NONE survives, everything else is dropped" rule
// that makes Special-folder content disappear.
func labelForDir(dir string, kind model.FolderKind) string {
	if kind == model.FolderAlbum || kind == model.FolderSpecial {
		return filepath.Base(dir)
	}
	return model.NoneLabel
}
