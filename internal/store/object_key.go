package store

import (
	"path"
	"path/filepath"
	"strings"
)

const (
	uploadsPrefix   = "uploads/"
	maxExtensionLen = 8
)

// objectKey builds "uploads/<id><ext>". The extension is taken from the
// original file name, lower-cased, and dropped when it holds anything other
// than ASCII letters and digits.
func objectKey(id, fileName string) string {
	return uploadsPrefix + id + safeExtension(fileName)
}

func safeExtension(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if len(ext) < 2 || len(ext) > maxExtensionLen {
		return ""
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return ext
}

// validateObjectKey rejects keys that are absolute or climb out of the root.
func validateObjectKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return ErrInvalidObjectKey
	}
	if cleaned := path.Clean(key); cleaned != key || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return ErrInvalidObjectKey
	}
	return nil
}
