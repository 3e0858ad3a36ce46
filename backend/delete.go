package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func del(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var id = params.ByName("id")

	if err := ctx.db.DeleteDocument(ctx.User, id); err != nil {
		return err
	}

	// best effort, the catalog record is already gone
	var folder = ctx.db.Uploads.Folder(id)
	if files, err := folder.Files(); err == nil {
		for _, f := range files {
			_ = folder.Delete(f)
		}
	}

	ctx.Success("document has been deleted")
	ctx.SeeOther("/")
	return nil
}
