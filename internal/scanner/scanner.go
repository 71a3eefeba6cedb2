// Package scanner discovers recording source files under a directory
// tree, keyed by data category.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Category selects which file extensions a scan matches.
type Category string

const (
	Tabular Category = "tabular"
	Log     Category = "log"
	Video   Category = "video"
)

// extensions maps each category to its recognized file suffixes.
// Matching is case-insensitive. The .txt suffix is deliberately claimed
// by both the tabular and log categories; the same file can be picked
// up by either importer depending on which folder it was pointed at.
var extensions = map[Category][]string{
	Tabular: {".csv", ".txt", ".dat"},
	Log:     {".log", ".txt"},
	Video:   {".mp4", ".avi", ".mov", ".mkv"},
}

// Scan walks root recursively and returns the absolute paths of all
// files whose extension matches the category, sorted for determinism.
//
// A missing root yields an empty result, not an error. Unreadable
// subtrees are skipped. Rescanning always re-reads the filesystem.
func Scan(root string, category Category) ([]string, error) {
	exts, ok := extensions[category]
	if !ok {
		return nil, fmt.Errorf("unknown scan category: %q", category)
	}

	if _, err := os.Stat(root); err != nil {
		return []string{}, nil
	}

	found := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: skip it and keep walking.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		for _, ext := range exts {
			if strings.HasSuffix(name, ext) {
				abs, err := filepath.Abs(path)
				if err != nil {
					abs = path
				}
				found = append(found, abs)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(found)
	return found, nil
}
