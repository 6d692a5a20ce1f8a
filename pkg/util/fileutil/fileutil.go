package fileutil

import (
	"path/filepath"
	"strings"
)

const (
	FILE_TXT  = "txt"
	FILE_CSV  = "csv"
	FILE_JSON = "json"
)

// FileExt returns the lowercased extension of filename without the dot
func FileExt(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
