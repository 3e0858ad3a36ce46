package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/storedocs/storedocs/core"
)

var viewTmpl = tmpl(`<h1>{{ .Document.Title }} {{ StatusBadge .Document.Status }} {{ PriorityBadge .Document.Priority }}</h1>

	<p class="text-muted">
		{{ .Document.Category }} &middot; {{ .Document.Author }} &middot; {{ .FormatDateTime .Document.LastModified }}
		{{ if .Document.Tags }}
			&middot; {{ Join .Document.Tags }}
		{{ end }}
	</p>

	<form method="post" action="favorite/{{ .Document.ID }}" class="mb-3" style="display: inline;">
		<button type="submit" class="btn btn-sm {{ if .Document.FavoriteOf .Username }}btn-warning{{ else }}btn-outline-warning{{ end }}">&#9733; Favorite</button>
	</form>

	{{ if .CanEdit }}
		<a class="btn btn-sm btn-primary" href="edit/{{ .Document.ID }}">Edit</a>
		<form method="post" action="priority/{{ .Document.ID }}" style="display: inline;">
			<button type="submit" class="btn btn-sm btn-secondary">Toggle priority</button>
		</form>
		<form method="post" action="evidence-required/{{ .Document.ID }}" style="display: inline;">
			<button type="submit" class="btn btn-sm btn-secondary">
				{{ if .Document.RequiresEvidence }}Evidence not required{{ else }}Require evidence{{ end }}
			</button>
		</form>
	{{ end }}

	{{ if .CanDelete }}
		<form method="post" action="delete/{{ .Document.ID }}" style="display: inline;" onsubmit="return confirm('Delete this document?');">
			<button type="submit" class="btn btn-sm btn-danger">Delete</button>
		</form>
	{{ end }}

	{{ if and .CanEdit (eq .Document.Status .StatusDraft) }}
		<form method="post" action="submit/{{ .Document.ID }}" class="form-inline mt-3">
			<select class="form-control mr-2" name="supervisor" required>
				<option value="">Select supervisor&hellip;</option>
				{{ range .Supervisors }}
					<option value="{{ .Name }}">{{ .Name }}</option>
				{{ end }}
			</select>
			<button type="submit" class="btn btn-warning">Send to review</button>
		</form>
	{{ end }}

	{{ if and .CanSuperEdit (eq .Document.Status .StatusReview) }}
		<div class="alert alert-warning mt-3">
			Submitted by {{ .Document.ReviewedBy }}, assigned to {{ .Document.AssignedSupervisor }}.
			<form method="post" action="approve/{{ .Document.ID }}" style="display: inline;">
				<button type="submit" class="btn btn-sm btn-success">Approve</button>
			</form>
			<form method="post" action="reject/{{ .Document.ID }}" style="display: inline;">
				<button type="submit" class="btn btn-sm btn-danger">Reject</button>
			</form>
		</div>
	{{ end }}

	<hr>

	{{ Markdown .Document.Content }}

	{{ if .Document.AttachedFiles }}
		<h2>Attached files</h2>
		<ul>
			{{ range .Document.AttachedFiles }}
				<li>
					<a href="/upload/{{ $.Document.ID }}/{{ . }}">{{ . }}</a>
					<span class="badge badge-light" title="{{ FileDescription (FileType .) }}">{{ FileType . }}</span>
					{{ if not (FileSupported (FileType .)) }}
						<span class="badge badge-warning">unsupported format</span>
					{{ end }}
				</li>
			{{ end }}
		</ul>
	{{ end }}

	{{ if and .Document.RequiresEvidence .CanUploadEvidence }}
		<h2>My evidence</h2>
		<ul>
			{{ range .Evidence }}
				<li>
					<a href="/upload/{{ $.Document.ID }}/{{ . }}">{{ . }}</a>
					<form method="post" action="evidence/{{ $.Document.ID }}/remove" style="display: inline;">
						<input type="hidden" name="filename" value="{{ . }}">
						<button type="submit" class="btn btn-sm btn-outline-danger">Remove</button>
					</form>
				</li>
			{{ else }}
				<li>No evidence uploaded yet.</li>
			{{ end }}
		</ul>
		<form method="post" action="evidence/{{ .Document.ID }}" enctype="multipart/form-data" class="form-inline">
			<input type="file" class="form-control-file mr-2" name="evidence" accept=".pdf" required>
			<button type="submit" class="btn btn-primary">Upload evidence (PDF, max 10 MB)</button>
		</form>
	{{ end }}`)

type viewData struct {
	*context
	Document *core.Document
}

func (data *viewData) StatusDraft() core.Status {
	return core.StatusDraft
}

func (data *viewData) StatusReview() core.Status {
	return core.StatusReview
}

func (data *viewData) Supervisors() ([]core.DBUser, error) {
	return data.db.GetSupervisors()
}

func (data *viewData) Evidence() []string {
	return data.Document.EvidenceOf(data.Username())
}

func view(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	doc, err := ctx.getDocument(params.ByName("id"))
	if err != nil {
		return err
	}

	return viewTmpl.Execute(w, &viewData{
		context:  ctx,
		Document: doc,
	})
}
