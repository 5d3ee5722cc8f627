// Package extfix implements spec.md §4.4: stage 1 of the pipeline,
// sniffing each media file's real content type and renaming it (and its
// sidecar) when the extension disagrees.
package extfix

import (
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/sidecarmatch"
)

// preferredExt maps a detected MIME type to the extension the corrector
// renames onto, per spec.md's "fixed table" requirement.
var preferredExt = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"image/webp":      "webp",
	"image/heic":      "heic",
	"image/heif":      "heif",
	"image/bmp":       "bmp",
	"video/mp4":       "mp4",
	"video/quicktime": "mov",
	"video/x-msvideo": "avi",
	"video/webm":      "webm",
	"video/3gpp":      "3gp",
}

// Result reports the outcome of fixing one file.
type Result struct {
	OldPath string
	NewPath string
	Fixed   bool
}

// FixExtensions walks dir, renaming every media file whose extension
// disagrees with its sniffed content type, renaming a matching sidecar
// alongside it. It returns the count of files actually renamed.
func FixExtensions(dir string, mode config.ExtensionFixMode) (int, error) {
	if mode == config.ExtFixNone {
		return 0, nil
	}

	var fixed int
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSidecarName(d.Name()) {
			return nil
		}
		res, err := fixOne(path, mode)
		if err != nil {
			return nil // fail soft: a single unreadable file never aborts the walk
		}
		if res.Fixed {
			fixed++
		}
		return nil
	})
	if walkErr != nil {
		return fixed, walkErr
	}
	return fixed, nil
}

func isSidecarName(name string) bool {
	return strings.HasSuffix(name, ".json")
}

func isExtra(base string) bool {
	return sidecarmatch.IsExtra(base)
}

func fixOne(path string, mode config.ExtensionFixMode) (Result, error) {
	base := filepath.Base(path)
	res := Result{OldPath: path}

	if isExtra(base) {
		return res, nil
	}

	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return res, err
	}
	detectedType := strings.ToLower(strings.SplitN(detected.String(), ";", 2)[0])

	if detectedType == "image/tiff" {
		// camera RAWs are routinely misidentified as TIFF; never touch them
		return res, nil
	}

	currentExt := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	currentMIME := mime.TypeByExtension("." + currentExt)
	currentMIME = strings.ToLower(strings.SplitN(currentMIME, ";", 2)[0])

	if currentMIME == detectedType {
		return res, nil
	}

	preferred, ok := preferredExt[detectedType]
	if !ok {
		return res, nil
	}
	if mode == config.ExtFixConservative && !isLightFormat(currentExt) {
		// conservative mode only touches the common photo formats
		return res, nil
	}
	if currentExt == preferred {
		return res, nil
	}

	newPath := path + "." + preferred
	if err := os.Rename(path, newPath); err != nil {
		return res, err
	}
	res.NewPath = newPath
	res.Fixed = true

	renameSidecar(newPath)

	if err := verifyRename(path, newPath); err != nil {
		return res, err
	}
	return res, nil
}

func isLightFormat(ext string) bool {
	switch ext {
	case "jpg", "jpeg", "png":
		return true
	}
	return false
}

// renameSidecar locates the renamed file's sidecar via the try-hard
// lookup and renames it to match the new media filename, so the pairing
// survives the extension fix. The lookup runs against newPath, not the
// pre-rename path: several of the try-hard transforms (extension-fix-
// reverse in particular) only produce their candidate basename from the
// post-rename double-extension name, so looking up from the old path
// would miss exactly the sidecars this stage most needs to catch.
func renameSidecar(newPath string) {
	sidecarPath, found := sidecarmatch.FindSidecar(newPath, true)
	if !found {
		return
	}
	newSidecarPath := deriveSidecarName(sidecarPath, filepath.Base(newPath))
	if newSidecarPath == sidecarPath {
		return
	}
	_ = os.Rename(sidecarPath, newSidecarPath)
}

var (
	reSidecarSuffixNum = regexp.MustCompile(`(?i)\.supplemental-metadata\((\d+)\)\.json$`)
	reSidecarSuffix    = regexp.MustCompile(`(?i)\.supplemental-metadata\.json$`)
	reSidecarNumJSON   = regexp.MustCompile(`(?i)\((\d+)\)\.json$`)
	reSidecarJSON      = regexp.MustCompile(`(?i)\.json$`)
)

// deriveSidecarName rebuilds the sidecar's filename from newBase plus
// whichever JSON suffix pattern the matched sidecar already carried,
// rather than substring-replacing the old basename into it: the matched
// sidecar's basename is frequently unrelated, by substring, to either the
// old or new media basename (e.g. "IMG.HEIC.supplemental-metadata.json"
// paired with a media file renamed from "IMG.jpg" to "IMG.jpg.heic").
func deriveSidecarName(sidecarPath, newBase string) string {
	dir := filepath.Dir(sidecarPath)
	name := filepath.Base(sidecarPath)

	switch {
	case reSidecarSuffixNum.MatchString(name):
		num := reSidecarSuffixNum.FindStringSubmatch(name)[1]
		return filepath.Join(dir, fmt.Sprintf("%s.supplemental-metadata(%s).json", newBase, num))
	case reSidecarSuffix.MatchString(name):
		return filepath.Join(dir, newBase+".supplemental-metadata.json")
	case reSidecarNumJSON.MatchString(name):
		num := reSidecarNumJSON.FindStringSubmatch(name)[1]
		return filepath.Join(dir, fmt.Sprintf("%s(%s).json", newBase, num))
	case reSidecarJSON.MatchString(name):
		return filepath.Join(dir, newBase+".json")
	default:
		return sidecarPath
	}
}

// verifyRename enforces spec.md §4.4's post-condition: the new path must
// exist and the old one must not; a lingering old path is force-deleted.
func verifyRename(oldPath, newPath string) error {
	if _, err := os.Stat(newPath); err != nil {
		return fmt.Errorf("rename verification failed, %s missing: %w", newPath, err)
	}
	if _, err := os.Stat(oldPath); err == nil {
		if rmErr := os.Remove(oldPath); rmErr != nil {
			return fmt.Errorf("stale path %s survived rename and could not be removed: %w", oldPath, rmErr)
		}
	}
	return nil
}
