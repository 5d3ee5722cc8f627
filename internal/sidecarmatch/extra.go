package sidecarmatch

import (
	"path/filepath"
	"strings"
)

// IsExtra reports whether base names an "extra" / edited-variant derivative
// per the GLOSSARY entry: a localized "-edited"-style marker anywhere in
// the extensionless stem. Shared by the extension corrector (which must
// never touch extras) and the pipeline driver (which counts them when
// --skip-extras is set).
func IsExtra(base string) bool {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for _, m := range extraMarkers {
		if strings.Contains(stem, m) {
			return true
		}
	}
	return false
}
