// Package upload defines the file-intake boundary. The core records
// filenames only; byte transfer and storage happen behind the Store
// interface.
package upload

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

type Store interface {
	Folder(documentID string) Folder
	ServeHTTP(writer http.ResponseWriter, req *http.Request) // serves "<documentID>/<filename>"
}

// one Folder for one document
type Folder interface {
	Delete(filename string) error
	DocumentID() string
	Files() ([]string, error)
	HasFile(filename string) (bool, error)
	Upload(filename string, src io.Reader) error
}

func CleanFilename(filename string) (string, error) {
	filename = filepath.Base(filename)
	filename = strings.TrimSpace(filename)
	if strings.Contains(filename, "/") || strings.Contains(filename, `\`) {
		return "", errors.New("filename contains a slash")
	}
	if filename == "" || filename == "." || filename == ".." {
		return "", errors.New("filename is empty")
	}
	return filename, nil
}
