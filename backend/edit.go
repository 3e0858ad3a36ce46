package backend

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/storedocs/storedocs/core"
)

var editTmpl = tmpl(`<h1>Edit &raquo;{{ .Document.Title }}&laquo;</h1>

	<form method="post" enctype="multipart/form-data">

		<div class="form-group">
			<label>Title</label>
			<input type="text" class="form-control" name="title" value="{{ .Document.Title }}" required>
		</div>

		<div class="form-group">
			<label>Category</label>
			<input type="text" class="form-control" name="category" value="{{ .Document.Category }}" required>
		</div>

		<div class="form-group">
			<label>Content (Markdown)</label>
			<textarea class="form-control" name="content" rows="12">{{ .Document.Content }}</textarea>
		</div>

		<div class="form-group">
			<label>Tags (comma-separated)</label>
			<input type="text" class="form-control" name="tags" value="{{ .Tags }}">
		</div>

		<div class="form-group">
			<label>Target user groups</label>
			{{ range .AllRoles }}
				<div class="form-check">
					<input type="checkbox" class="form-check-input" name="target" value="{{ . }}" id="target-{{ . }}" {{ if $.Document.Targets . }}checked{{ end }}>
					<label class="form-check-label" for="target-{{ . }}">{{ RoleLabel . }}</label>
				</div>
			{{ end }}
		</div>

		{{ if .Document.AttachedFiles }}
			<div class="form-group">
				<label>Attached files (uncheck to detach)</label>
				{{ range .Document.AttachedFiles }}
					<div class="form-check">
						<input type="checkbox" class="form-check-input" name="keep" value="{{ . }}" id="keep-{{ . }}" checked>
						<label class="form-check-label" for="keep-{{ . }}">{{ . }} <span class="badge badge-light">{{ FileType . }}</span></label>
					</div>
				{{ end }}
			</div>
		{{ end }}

		<div class="form-group">
			<label>Add files</label>
			<input type="file" class="form-control-file" name="files" multiple>
		</div>

		<button type="submit" class="btn btn-primary">Save</button>

	</form>`)

type editData struct {
	*context
	Document *core.Document
}

func (data *editData) AllRoles() []core.Role {
	return core.AllRoles
}

func (data *editData) Tags() string {
	return strings.Join(data.Document.Tags, ", ")
}

func edit(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	doc, err := ctx.getDocument(params.ByName("id"))
	if err != nil {
		return err
	}

	if req.Method == http.MethodPost {

		if err := req.ParseMultipartForm(32 << 20); err != nil {
			return err
		}

		names, files, err := collectUploads(req, ctx)
		if err != nil {
			return err
		}
		names = append(req.PostForm["keep"], names...)

		updated, err := ctx.db.EditDocument(ctx.User, doc.ID, core.EditRequest{
			Title:         req.PostFormValue("title"),
			Content:       req.PostFormValue("content"),
			Category:      req.PostFormValue("category"),
			Tags:          parseTags(req.PostFormValue("tags")),
			AttachedFiles: names,
			TargetGroups:  parseTargetGroups(req.PostForm["target"]),
		})
		if err != nil {
			ctx.Danger(err)
		} else {
			if err := storeUploads(ctx, updated.ID, files); err != nil {
				return err
			}
			ctx.Success("document %s has been saved", updated.Title)
			ctx.SeeOther("/document/%s", updated.ID)
			return nil
		}
	}

	return editTmpl.Execute(w, &editData{
		context:  ctx,
		Document: doc,
	})
}
