// Package exifwrite implements spec.md §4.6's MetadataWriter: writing
// recovered capture dates and GPS fixes back into media files via a
// persistent exiftool subprocess, the external metadata-writer binary
// spec.md §1 names as an out-of-scope collaborator capability.
package exifwrite

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// writableFormats is spec.md §4.6's supported-format set.
var writableFormats = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true,
	"bmp": true, "tiff": true, "tga": true, "pvr": true, "ico": true,
}

// Writer is the concrete MetadataWriter: one persistent exiftool process
// shared across every write in a pipeline run.
type Writer struct {
	proc *exifToolProcess
}

// NewWriter starts the backing exiftool process.
func NewWriter() (*Writer, error) {
	proc, err := newExifToolProcess()
	if err != nil {
		return nil, fmt.Errorf("starting exiftool: %w", err)
	}
	return &Writer{proc: proc}, nil
}

// Close terminates the backing process.
func (w *Writer) Close() error {
	if w == nil || w.proc == nil {
		return nil
	}
	return w.proc.close()
}

func isWritable(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return writableFormats[ext]
}

func (w *Writer) hasTag(path, tag string) (bool, error) {
	out, err := w.proc.execute("-s3", "-"+tag, path)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// WriteDateTime writes t into Image.DateTime, Exif.DateTimeOriginal, and
// Exif.DateTimeDigitized, skipping unsupported formats and files that
// already carry a DateTimeOriginal tag. A decode failure is non-fatal:
// it is reported as (false, nil), matching spec.md §4.6.
func (w *Writer) WriteDateTime(path string, t time.Time) (bool, error) {
	if !isWritable(path) {
		return false, nil
	}
	present, err := w.hasTag(path, "DateTimeOriginal")
	if err != nil {
		return false, nil
	}
	if present {
		return false, nil
	}

	formatted := t.Format("2006:01:02 15:04:05")
	_, err = w.proc.execute(
		"-overwrite_original",
		"-DateTime="+formatted,
		"-DateTimeOriginal="+formatted,
		"-DateTimeDigitized="+formatted,
		path,
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

// WriteGPS writes the decimal-degree fix into the GPS IFD, converting to
// DMS and setting the N/S/E/W hemisphere references. JPEG targets are
// patched in place by exiftool (preserving unrelated image bytes); other
// writable formats are decoded, mutated, and re-encoded internally by the
// same tool, so this adapter does not need to special-case the format.
func (w *Writer) WriteGPS(path string, lat, lon float64) (bool, error) {
	if !isWritable(path) {
		return false, nil
	}
	present, err := w.hasTag(path, "GPSLatitude")
	if err != nil {
		return false, nil
	}
	if present {
		return false, nil
	}

	latRef, latMag := gpsRef(lat, "N", "S")
	lonRef, lonMag := gpsRef(lon, "E", "W")
	latDMS := formatDMS(decimalToDMS(latMag))
	lonDMS := formatDMS(decimalToDMS(lonMag))

	_, err = w.proc.execute(
		"-overwrite_original",
		"-GPSLatitude="+latDMS,
		"-GPSLatitudeRef="+latRef,
		"-GPSLongitude="+lonDMS,
		"-GPSLongitudeRef="+lonRef,
		path,
	)
	if err != nil {
		return false, err
	}
	return true, nil
}
