package sidecarmatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// probe checks whether a sidecar file exists for candidate basename b in
// dir, trying the modern "supplemental-metadata" suffix, the legacy plain
// ".json" suffix, the numbered-duplicate variants of both, and finally a
// case-insensitive directory scan (Takeout archives extracted on
// case-insensitive filesystems sometimes fold case).
func probe(dir, b string) (string, bool) {
	candidates := []string{
		filepath.Join(dir, b+".supplemental-metadata.json"),
		filepath.Join(dir, b+".json"),
	}

	if m := reTrailingNum.FindStringSubmatch(b); m != nil {
		base, num := m[1], m[2]
		candidates = append(candidates,
			filepath.Join(dir, fmt.Sprintf("%s.supplemental-metadata(%s).json", base, num)),
			filepath.Join(dir, fmt.Sprintf("%s(%s).json", base, num)),
		)
	}

	for _, c := range candidates {
		if fileExists(c) {
			return c, true
		}
	}

	want1 := strings.ToLower(b + ".supplemental-metadata.json")
	want2 := strings.ToLower(b + ".json")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lname := strings.ToLower(e.Name())
		if lname == want1 || lname == want2 {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
