package backend

import (
	"mime/multipart"
)

type uploadedFile struct {
	name   string
	header *multipart.FileHeader
}

// storeUploads writes collected multipart files into the document's upload
// folder. Existing files of the same name win, the duplicate is skipped with
// a warning.
func storeUploads(ctx *context, documentID string, files []*uploadedFile) error {

	var folder = ctx.db.Uploads.Folder(documentID)

	for _, f := range files {

		src, err := f.header.Open()
		if err != nil {
			return err
		}

		err = folder.Upload(f.name, src)
		src.Close()
		if err != nil {
			ctx.Warning("file %s could not be stored: %v", f.name, err)
		}
	}

	return nil
}
