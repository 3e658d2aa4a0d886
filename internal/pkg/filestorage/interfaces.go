package filestorage

import (
	"mime/multipart"
	"path/filepath"
	"strings"
)

// FileStorage holds uploaded files for the duration of a request
type FileStorage interface {
	// SaveFile stores the upload under a generated name and returns its filesystem path
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a previously saved file. Missing files are not an error.
	DeleteFile(filePath string) error
}

// HasExtension reports whether filename ends with one of exts, ignoring case
func HasExtension(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
