package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/storedocs/storedocs/core"
)

func priority(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	doc, err := ctx.db.TogglePriority(ctx.User, params.ByName("id"))
	if err != nil {
		return err
	}

	if doc.Priority == core.PriorityHigh {
		ctx.Success("%s is now high priority", doc.Title)
	} else {
		ctx.Success("%s is now normal priority", doc.Title)
	}
	ctx.SeeOther("/document/%s", doc.ID)
	return nil
}

func evidenceRequired(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	doc, err := ctx.db.ToggleEvidenceRequired(ctx.User, params.ByName("id"))
	if err != nil {
		return err
	}

	if doc.RequiresEvidence {
		ctx.Success("%s now requires evidence", doc.Title)
	} else {
		ctx.Success("%s no longer requires evidence", doc.Title)
	}
	ctx.SeeOther("/document/%s", doc.ID)
	return nil
}
