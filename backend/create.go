package backend

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/storedocs/storedocs/core"
	"github.com/storedocs/storedocs/upload"
)

var createTmpl = tmpl(`<h1>New Document</h1>

	<form method="post" enctype="multipart/form-data">

		<div class="form-group">
			<label>Title</label>
			<input type="text" class="form-control" name="title" value="{{ .Title }}" required>
		</div>

		<div class="form-group">
			<label>Category</label>
			<input type="text" class="form-control" name="category" value="{{ .Category }}" required>
		</div>

		<div class="form-group">
			<label>Content (Markdown)</label>
			<textarea class="form-control" name="content" rows="12">{{ .Content }}</textarea>
		</div>

		<div class="form-group">
			<label>Tags (comma-separated)</label>
			<input type="text" class="form-control" name="tags" value="{{ .Tags }}">
		</div>

		<div class="form-group">
			<label>Target user groups</label>
			{{ range .AllRoles }}
				<div class="form-check">
					<input type="checkbox" class="form-check-input" name="target" value="{{ . }}" id="target-{{ . }}">
					<label class="form-check-label" for="target-{{ . }}">{{ RoleLabel . }}</label>
				</div>
			{{ end }}
		</div>

		<div class="form-check mb-2">
			<input type="checkbox" class="form-check-input" name="high_priority" value="1" id="high_priority">
			<label class="form-check-label" for="high_priority">High priority</label>
		</div>

		<div class="form-check mb-2">
			<input type="checkbox" class="form-check-input" name="requires_evidence" value="1" id="requires_evidence">
			<label class="form-check-label" for="requires_evidence">Requires evidence</label>
		</div>

		<div class="form-group">
			<label>Attached files</label>
			<input type="file" class="form-control-file" name="files" multiple>
		</div>

		{{ if not .CanSuperEdit }}
			<div class="form-check mb-2">
				<input type="checkbox" class="form-check-input" name="send_to_review" value="1" id="send_to_review">
				<label class="form-check-label" for="send_to_review">Send to review</label>
			</div>
			<div class="form-group">
				<label>Supervisor</label>
				<select class="form-control" name="supervisor">
					<option value="">Select supervisor&hellip;</option>
					{{ range .Supervisors }}
						<option value="{{ .Name }}">{{ .Name }}</option>
					{{ end }}
				</select>
			</div>
		{{ end }}

		<button type="submit" class="btn btn-primary">Create</button>

	</form>`)

type createData struct {
	*context
	Title    string
	Category string
	Content  string
	Tags     string
}

func (data *createData) AllRoles() []core.Role {
	return core.AllRoles
}

func (data *createData) Supervisors() ([]core.DBUser, error) {
	return data.db.GetSupervisors()
}

func parseTags(input string) []string {
	var tags = []string{}
	for _, tag := range strings.Split(input, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func parseTargetGroups(values []string) []core.Role {
	var groups = []core.Role{}
	for _, v := range values {
		groups = append(groups, core.Role(v))
	}
	return groups
}

// collectUploads reads the multipart file headers of the "files" field and
// returns their cleaned filenames. Unsupported formats are accepted with a
// warning.
func collectUploads(req *http.Request, ctx *context) ([]string, []*uploadedFile, error) {

	var names = []string{}
	var files = []*uploadedFile{}

	if req.MultipartForm == nil {
		return names, files, nil
	}

	for _, header := range req.MultipartForm.File["files"] {

		name, err := upload.CleanFilename(header.Filename)
		if err != nil {
			return nil, nil, err
		}

		if label := upload.DetectType(name); !upload.Supported(label) {
			ctx.Warning("%s is a %s, which is not a fully supported format", name, upload.TypeDescription(label))
		}

		names = append(names, name)
		files = append(files, &uploadedFile{name: name, header: header})
	}

	return names, files, nil
}

func create(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if !ctx.CanEdit() {
		return core.ErrUnauthorized
	}

	if req.Method == http.MethodPost {

		if err := req.ParseMultipartForm(32 << 20); err != nil {
			return err
		}

		names, files, err := collectUploads(req, ctx)
		if err != nil {
			return err
		}

		doc, err := ctx.db.CreateDocument(ctx.User, core.CreateRequest{
			Title:              req.PostFormValue("title"),
			Content:            req.PostFormValue("content"),
			Category:           req.PostFormValue("category"),
			Tags:               parseTags(req.PostFormValue("tags")),
			AttachedFiles:      names,
			HighPriority:       req.PostFormValue("high_priority") == "1",
			RequiresEvidence:   req.PostFormValue("requires_evidence") == "1",
			TargetGroups:       parseTargetGroups(req.PostForm["target"]),
			SendToReview:       req.PostFormValue("send_to_review") == "1",
			AssignedSupervisor: req.PostFormValue("supervisor"),
		})
		if err != nil {
			ctx.Danger(err)
		} else {
			if err := storeUploads(ctx, doc.ID, files); err != nil {
				return err
			}
			ctx.Success("document %s has been created", doc.Title)
			ctx.SeeOther("/document/%s", doc.ID)
			return nil
		}
	}

	return createTmpl.Execute(w, &createData{
		context:  ctx,
		Title:    req.PostFormValue("title"),
		Category: req.PostFormValue("category"),
		Content:  req.PostFormValue("content"),
		Tags:     req.PostFormValue("tags"),
	})
}
