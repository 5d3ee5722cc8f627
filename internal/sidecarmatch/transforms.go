package sidecarmatch

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	reBracketedNum  = regexp.MustCompile(`^(.*)\((\d+)\)\.([A-Za-z0-9]+)$`)
	reTrailingNum   = regexp.MustCompile(`^(.*)\((\d+)\)$`)
	reTrailingNumAt = regexp.MustCompile(`\((\d+)\)$`)
	reSingleDigit   = regexp.MustCompile(`\(\d\)\.`)
)

// transform is one candidate-generating step of the cascade described in
// spec.md §4.1. It returns the candidate basename and whether this step
// had anything meaningful to offer (identity always does).
type transform struct {
	name string
	fn   func(base string) (string, bool)
}

func basicTransforms() []transform {
	return []transform{
		{"identity", identityTransform},
		{"shortening", shorteningTransform},
		{"bracket-swap", bracketSwapTransform},
		{"extension-fix-reverse", extensionFixReverseTransform},
		{"drop-extension", dropExtensionTransform},
		{"extra-suffix-removal", extraSuffixRemovalTransform},
	}
}

func aggressiveTransforms() []transform {
	return []transform{
		{"partial-extra-suffix", partialExtraSuffixTransform},
		{"edge-case-patterns", edgeCasePatternsTransform},
		{"digit-removal", digitRemovalTransform},
	}
}

func identityTransform(base string) (string, bool) {
	return base, true
}

// shorteningTransform mirrors Google Drive's historical 51-character
// sidecar-name ceiling: when basename+".json" would exceed it, the
// basename alone is truncated to leave room.
func shorteningTransform(base string) (string, bool) {
	if utf8.RuneCountInString(base)+len(".json") <= 51 {
		return base, false
	}
	r := []rune(base)
	limit := 51 - len(".json")
	if limit < 0 {
		limit = 0
	}
	if len(r) <= limit {
		return base, false
	}
	return string(r[:limit]), true
}

// bracketSwapTransform moves a trailing "(N)" that precedes the extension
// to after it: "image(11).jpg" -> "image.jpg(11)".
func bracketSwapTransform(base string) (string, bool) {
	m := reBracketedNum.FindStringSubmatch(base)
	if m == nil {
		return base, false
	}
	name, num, ext := m[1], m[2], m[3]
	return fmt.Sprintf("%s.%s(%s)", name, ext, num), true
}

// extensionFixReverseTransform undoes Google's extension-fixing mistakes:
// a basename chaining a light format and a heavy/RAW format, in either
// order, is reconstructed to the single heavy-format extension it almost
// certainly started as.
func extensionFixReverseTransform(base string) (string, bool) {
	ext2 := filepath.Ext(base)
	if ext2 == "" {
		return base, false
	}
	rest := strings.TrimSuffix(base, ext2)
	ext1 := filepath.Ext(rest)
	if ext1 == "" {
		return base, false
	}
	namePart := strings.TrimSuffix(rest, ext1)
	e1 := strings.ToLower(strings.TrimPrefix(ext1, "."))
	e2 := strings.ToLower(strings.TrimPrefix(ext2, "."))

	var heavy string
	switch {
	case lightFormatExts[e1] && heavyFormatExts[e2]:
		heavy = e2
	case heavyFormatExts[e1] && lightFormatExts[e2]:
		heavy = e1
	default:
		return base, false
	}

	num := ""
	if m := reTrailingNumAt.FindStringSubmatch(namePart); m != nil {
		num = m[1]
		namePart = strings.TrimSuffix(namePart, fmt.Sprintf("(%s)", num))
	}

	result := namePart + "." + strings.ToUpper(heavy)
	if num != "" {
		result += fmt.Sprintf("(%s)", num)
	}
	return result, true
}

func dropExtensionTransform(base string) (string, bool) {
	ext := filepath.Ext(base)
	if ext == "" {
		return base, false
	}
	return strings.TrimSuffix(base, ext), true
}

// extraSuffixRemovalTransform strips a localized "edited variant" marker
// immediately before the extension, preserving a trailing "(N)" if one
// follows the marker: "IMG_1-edited(1).jpg" -> "IMG_1(1).jpg".
func extraSuffixRemovalTransform(base string) (string, bool) {
	normalized := norm.NFC.String(base)
	ext := filepath.Ext(normalized)
	stem := strings.TrimSuffix(normalized, ext)

	num := ""
	bare := stem
	if m := reTrailingNumAt.FindStringSubmatch(stem); m != nil {
		num = m[1]
		bare = strings.TrimSuffix(stem, fmt.Sprintf("(%s)", num))
	}

	for _, marker := range extraMarkers {
		if strings.HasSuffix(bare, marker) {
			newStem := strings.TrimSuffix(bare, marker)
			if num != "" {
				newStem += fmt.Sprintf("(%s)", num)
			}
			return newStem + ext, true
		}
	}
	return base, false
}

// partialExtraSuffixTransform handles a basename that was itself truncated
// (by shorteningTransform's Drive ceiling) mid-marker, leaving only a
// leading fragment of e.g. "-edited" at the very end of the stem. Folds in
// step 8's extension restore: if the truncation also ate part of the
// extension, a plausible full extension is substituted.
func partialExtraSuffixTransform(base string) (string, bool) {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	num := ""
	bare := stem
	if m := reTrailingNumAt.FindStringSubmatch(stem); m != nil {
		num = m[1]
		bare = strings.TrimSuffix(stem, fmt.Sprintf("(%s)", num))
	}

	matched := false
	for _, marker := range extraMarkers {
		for n := len(marker); n >= 2; n-- {
			frag := marker[:n]
			if strings.HasSuffix(bare, frag) {
				bare = strings.TrimSuffix(bare, frag)
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}
	if !matched {
		return base, false
	}

	if num != "" {
		bare += fmt.Sprintf("(%s)", num)
	}

	finalExt := ext
	fragment := strings.ToLower(strings.TrimPrefix(ext, "."))
	if full, ok := truncatedExtCandidates[fragment]; ok {
		finalExt = "." + full
	}
	return bare + finalExt, true
}

// edgeCasePatternsTransform is a last-ditch heuristic for stray punctuation
// left behind by a truncation that partialExtraSuffixTransform didn't
// recognize, e.g. a dangling hyphen or underscore right before the
// extension.
func edgeCasePatternsTransform(base string) (string, bool) {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	trimmed := strings.TrimRight(stem, "-_.")
	if trimmed == stem {
		return base, false
	}
	return trimmed + ext, true
}

// digitRemovalTransform strips a single-digit "(N)." duplicate marker,
// leaving multi-digit markers like "(23)." untouched: "image(2).png" ->
// "image.png", but "image(23).png" is unaffected.
func digitRemovalTransform(base string) (string, bool) {
	if !reSingleDigit.MatchString(base) {
		return base, false
	}
	return reSingleDigit.ReplaceAllString(base, "."), true
}
