package utils

import (
	"path/filepath"
	"strings"
)

// Resolve converts a possibly relative source path to an absolute, cleaned
// one.
func Resolve(relPath string) (string, error) {
	fullPath, err := filepath.Abs(relPath)
	if err != nil {
		return "", err
	}
	return fullPath, nil
}

// OutputName derives the executable path for a source file: the source
// path with its extension removed, or with ".out" appended when removing
// the extension would leave nothing usable. The result never equals
// srcPath, though a derived intermediate still can; callers that write
// intermediates must check against the whole artifact set.
func OutputName(srcPath string) string {
	ext := filepath.Ext(srcPath)
	base := strings.TrimSuffix(srcPath, ext)
	if ext == "" || base == "" || strings.HasSuffix(base, string(filepath.Separator)) {
		return srcPath + ".out"
	}
	return base
}
