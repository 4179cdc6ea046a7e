package util

import (
	"errors"
	"strings"
)

var errBadFileName = errors.New("unusable file name")

var pathSeparators = strings.NewReplacer("/", "_", "\\", "_")

// SanitizeFileName flattens an uploaded file name into a single safe
// path segment. Traversal sequences are rejected outright rather than
// rewritten.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errBadFileName
	}
	cleaned := pathSeparators.Replace(strings.TrimSpace(name))
	if cleaned == "" {
		return "", errBadFileName
	}
	return cleaned, nil
}
