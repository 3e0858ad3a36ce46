package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func favorite(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var id = params.ByName("id")

	if _, err := ctx.db.ToggleFavorite(ctx.User, id); err != nil {
		return err
	}

	// return to where the button was clicked
	if referer := req.Header.Get("Referer"); referer != "" {
		ctx.SeeOther("%s", referer)
	} else {
		ctx.SeeOther("/document/%s", id)
	}
	return nil
}
