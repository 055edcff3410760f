package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Exts are the file extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// Dir returns the font directory under an assets root.
func Dir(assetsDir string) string {
	return filepath.Join(assetsDir, "fonts")
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Find returns the full path of a font under dir whose relative path contains name
// (fuzzy: case, spaces, dashes and underscores ignored). When several match, one containing
// "Regular" wins. Returns os.ErrNotExist when nothing matches.
func Find(dir, name string) (string, error) {
	norm := normalize(name)
	if norm == "" {
		return "", os.ErrNotExist
	}
	list, err := ScanDir(dir)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, rel := range list {
		if strings.Contains(normalize(rel), norm) {
			matches = append(matches, rel)
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	pick := matches[0]
	for _, rel := range matches {
		if strings.Contains(strings.ToLower(rel), "regular") {
			pick = rel
			break
		}
	}
	return filepath.Join(dir, filepath.FromSlash(pick)), nil
}
