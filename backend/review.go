package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/storedocs/storedocs/core"
)

var reviewTmpl = tmpl(`<h1>Review Queue</h1>

	<div class="table-responsive">
		<table class="table">
			<thead>
				<tr>
					<th>Title</th>
					<th>Category</th>
					<th>Submitted by</th>
					<th>Assigned to</th>
					<th>Last modified</th>
					<th></th>
				</tr>
			</thead>
			<tbody>
				{{ range .Queue }}
					<tr>
						<td><a href="document/{{ .ID }}">{{ .Title }}</a> {{ PriorityBadge .Priority }}</td>
						<td>{{ .Category }}</td>
						<td>{{ .ReviewedBy }}</td>
						<td>{{ .AssignedSupervisor }}</td>
						<td>{{ $.FormatDateTime .LastModified }}</td>
						<td>
							<form method="post" action="approve/{{ .ID }}" style="display: inline;">
								<button type="submit" class="btn btn-sm btn-success">Approve</button>
							</form>
							<form method="post" action="reject/{{ .ID }}" style="display: inline;">
								<button type="submit" class="btn btn-sm btn-danger">Reject</button>
							</form>
						</td>
					</tr>
				{{ else }}
					<tr>
						<td colspan="6">The review queue is empty.</td>
					</tr>
				{{ end }}
			</tbody>
		</table>
	</div>`)

type reviewData struct {
	*context
	Queue []*core.Document
}

func review(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	queue, err := ctx.db.ReviewQueue(ctx.User)
	if err != nil {
		return err
	}

	return reviewTmpl.Execute(w, &reviewData{
		context: ctx,
		Queue:   queue,
	})
}

func approve(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	doc, err := ctx.db.Approve(ctx.User, params.ByName("id"))
	if err != nil {
		return err
	}

	ctx.Success("%s has been published", doc.Title)
	ctx.SeeOther("/review")
	return nil
}

func reject(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	doc, err := ctx.db.Reject(ctx.User, params.ByName("id"))
	if err != nil {
		return err
	}

	ctx.Success("%s has been returned to draft", doc.Title)
	ctx.SeeOther("/review")
	return nil
}

func submit(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	doc, err := ctx.db.SubmitForReview(ctx.User, params.ByName("id"), req.PostFormValue("supervisor"))
	if err != nil {
		return err
	}

	ctx.Success("%s has been sent to review", doc.Title)
	ctx.SeeOther("/document/%s", doc.ID)
	return nil
}
