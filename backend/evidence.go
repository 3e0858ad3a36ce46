package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/storedocs/storedocs/upload"
)

// evidenceUpload stores an evidence PDF and records it on the actor's
// evidence list. The stored filename is prefixed with the username so two
// users uploading the same file never collide.
func evidenceUpload(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var id = params.ByName("id")

	if err := req.ParseMultipartForm(upload.EvidenceMaxBytes + 1024); err != nil {
		return err
	}

	src, header, err := req.FormFile("evidence")
	if err != nil {
		return err
	}
	defer src.Close()

	name, err := upload.CleanFilename(header.Filename)
	if err != nil {
		return err
	}
	if err := upload.ValidateEvidence(name, header.Size); err != nil {
		ctx.Danger(err)
		ctx.SeeOther("/document/%s", id)
		return nil
	}
	name = ctx.Username() + "_" + name

	var folder = ctx.db.Uploads.Folder(id)
	if err := folder.Upload(name, src); err != nil {
		return err
	}

	if err := ctx.db.AddEvidence(ctx.User, id, name); err != nil {
		_ = folder.Delete(name) // roll back the stored file
		return err
	}

	ctx.Success("evidence %s has been uploaded", name)
	ctx.SeeOther("/document/%s", id)
	return nil
}

func evidenceRemove(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var id = params.ByName("id")

	name, err := upload.CleanFilename(req.PostFormValue("filename"))
	if err != nil {
		return err
	}

	if err := ctx.db.RemoveEvidence(ctx.User, id, name); err != nil {
		return err
	}
	_ = ctx.db.Uploads.Folder(id).Delete(name)

	ctx.Success("evidence %s has been removed", name)
	ctx.SeeOther("/document/%s", id)
	return nil
}
