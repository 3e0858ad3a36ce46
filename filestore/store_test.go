package filestore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderRoundTrip(t *testing.T) {
	var store = &Store{UploadDir: t.TempDir()}
	var folder = store.Folder("doc-1")

	require.NoError(t, folder.Upload("b.pdf", strings.NewReader("pdf bytes")))
	require.NoError(t, folder.Upload("a.txt", strings.NewReader("text")))

	files, err := folder.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.pdf"}, files)

	has, err := folder.HasFile("a.txt")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = folder.HasFile("missing.txt")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, folder.Delete("a.txt"))
	has, _ = folder.HasFile("a.txt")
	assert.False(t, has)
}

func TestUploadRefusesOverwrite(t *testing.T) {
	var store = &Store{UploadDir: t.TempDir()}
	var folder = store.Folder("doc-1")

	require.NoError(t, folder.Upload("a.txt", strings.NewReader("first")))
	assert.Error(t, folder.Upload("a.txt", strings.NewReader("second")))
}

func TestFilesOfUnknownDocument(t *testing.T) {
	var store = &Store{UploadDir: t.TempDir()}

	files, err := store.Folder("nope").Files()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFoldersAreIsolated(t *testing.T) {
	var store = &Store{UploadDir: t.TempDir()}

	require.NoError(t, store.Folder("doc-1").Upload("a.txt", strings.NewReader("one")))
	require.NoError(t, store.Folder("doc-2").Upload("a.txt", strings.NewReader("two")))

	files, err := store.Folder("doc-1").Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, files)
}
