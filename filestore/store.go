// Package filestore is the disk-backed implementation of the upload
// boundary. Files live in one folder per document id.
package filestore

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/storedocs/storedocs/upload"
)

type Store struct {
	UploadDir string
}

func (s *Store) Folder(documentID string) upload.Folder {
	return Folder{store: s, documentID: documentID}
}

// ServeHTTP serves uploaded files at "<documentID>/<filename>".
func (s *Store) ServeHTTP(w http.ResponseWriter, req *http.Request) {

	dir, filename := filepath.Split(req.URL.Path)
	documentID := filepath.Base(dir)

	filename, err := upload.CleanFilename(filename)
	if err != nil || documentID == "" || documentID == "." {
		http.NotFound(w, req)
		return
	}

	http.ServeFile(w, req, filepath.Join(s.UploadDir, documentID, filename))
}

// implements upload.Folder
type Folder struct {
	store      *Store
	documentID string
}

func (f Folder) dir() string {
	return filepath.Join(f.store.UploadDir, f.documentID)
}

func (f Folder) DocumentID() string {
	return f.documentID
}

func (f Folder) Delete(filename string) error {

	filename, err := upload.CleanFilename(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(f.dir(), filename)); err != nil {
		return err
	}

	_ = os.Remove(f.dir()) // try to remove the folder, works only if it is empty
	return nil
}

func (f Folder) Files() ([]string, error) {

	entries, err := os.ReadDir(f.dir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // assuming the folder was deleted because it was empty
		}
		return nil, err
	}

	var names = make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f Folder) HasFile(filename string) (bool, error) {

	filename, err := upload.CleanFilename(filename)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(filepath.Join(f.dir(), filename))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (f Folder) Upload(filename string, src io.Reader) error {

	filename, err := upload.CleanFilename(filename)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir(), 0755); err != nil {
		return err
	}

	dst, err := os.OpenFile(filepath.Join(f.dir(), filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
