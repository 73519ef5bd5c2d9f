package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Dataset directory discovery. The dataset source resolves to a local
// directory containing one or more data files; the first CSV file found
// in directory order is the table source, with XLSX and JSON files used
// only when no CSV is present.

// DefaultPattern matches every file format the loader understands,
// including compressed variants.
const DefaultPattern = "*.{csv,xlsx,json,csv.gz,csv.bz2,csv.xz,json.gz,json.bz2,json.xz}"

// IsDirectory checks if the path is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FindDatasetFile locates the file to load from a dataset directory.
// Matching is non-recursive and uses doublestar patterns. Candidates are
// ranked CSV first, then XLSX, then JSON, preserving lexical order within
// a rank so the choice is deterministic.
func FindDatasetFile(dirPath, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve dataset path: %w", err)
	}
	if !IsDirectory(absPath) {
		return "", fmt.Errorf("dataset path is not a directory: %s", absPath)
	}

	matches, err := doublestar.Glob(os.DirFS(absPath), pattern)
	if err != nil {
		return "", fmt.Errorf("invalid dataset pattern %q: %w", pattern, err)
	}

	var candidates []string
	for _, m := range matches {
		full := filepath.Join(absPath, m)
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		ft, _ := DetectFileTypeAndCompression(full)
		if ft == FileTypeUnknown {
			continue
		}
		candidates = append(candidates, full)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no usable dataset file in %s matching %q", absPath, pattern)
	}

	sort.Slice(candidates, func(i, j int) bool {
		ri, rj := formatRank(candidates[i]), formatRank(candidates[j])
		if ri != rj {
			return ri < rj
		}
		return candidates[i] < candidates[j]
	})

	return candidates[0], nil
}

// formatRank orders file formats by preference: CSV beats XLSX beats JSON.
func formatRank(path string) int {
	ft, _ := DetectFileTypeAndCompression(path)
	switch ft {
	case FileTypeCSV:
		return 0
	case FileTypeXLSX:
		return 1
	case FileTypeJSON:
		return 2
	default:
		return 3
	}
}
