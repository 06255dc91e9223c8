package platform

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Default values
const (
	// FallbackName replaces an attachment base name that sanitizes to nothing.
	FallbackName = "download"

	// DefaultDirPermissions is used when creating directories.
	DefaultDirPermissions = 0755
)

var (
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	disallowedChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

// SanitizeFilename maps an arbitrary name hint to a filesystem-safe base
// name containing only letters, digits, '.', '_' and '-'. Whitespace runs
// collapse to a single underscore first, everything else unsafe is stripped,
// then leading and trailing '.' and '_' are trimmed. The result is never
// empty.
func SanitizeFilename(name string) string {
	cleaned := whitespaceRuns.ReplaceAllString(strings.TrimSpace(name), "_")
	cleaned = disallowedChars.ReplaceAllString(cleaned, "")
	cleaned = strings.Trim(cleaned, "._")
	if cleaned == "" {
		return FallbackName
	}
	return cleaned
}

// LocateDownload returns the file inside dir whose extension matches ext
// (case-insensitive, leading dot ignored). When nothing matches exactly it
// falls back to the first regular file present; an empty or unreadable
// directory yields ok=false.
func LocateDownload(dir, ext string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	want := strings.ToLower(strings.TrimPrefix(ext, "."))
	var fallback string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if fallback == "" {
			fallback = path
		}
		got := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if got == want {
			return path, true
		}
	}

	if fallback == "" {
		return "", false
	}
	return fallback, true
}

// CreateDirectoryIfNotExists creates dir and any missing parents.
func CreateDirectoryIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, DefaultDirPermissions)
	}
	return nil
}

// RemoveDirectory deletes dir recursively. Removal is best effort: a
// directory that is already gone is not an error and nothing is reported to
// the caller.
func RemoveDirectory(dir string) {
	_ = os.RemoveAll(dir)
}
