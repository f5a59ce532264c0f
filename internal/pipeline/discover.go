// Package pipeline orchestrates file discovery, the bounded worker pool, and
// batch summary aggregation.
package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks inputRoot and returns every MP3 file, sorted
// lexicographically for deterministic dispatch order.
func Discover(inputRoot string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".mp3") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
