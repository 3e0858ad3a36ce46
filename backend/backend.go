package backend

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/storedocs/storedocs/core"
	"github.com/storedocs/storedocs/upload"
	"github.com/storedocs/storedocs/util"
	"gitlab.com/golang-commonmark/markdown"
)

// we need the CoreDB in the backend
type context struct {
	*core.Request
	Prefix string // with trailing slash
	db     *core.CoreDB
}

func (ctx *context) UsersWriteable() bool {
	return ctx.db.UserDB.Writeable()
}

// getDocument loads a document, checks its invariants and requires view
// permission for the logged-in user.
func (ctx *context) getDocument(id string) (*core.Document, error) {
	doc, err := ctx.db.DocumentDB.GetDocument(id)
	if err != nil {
		return nil, err
	}
	if err := doc.CheckInvariants(); err != nil {
		return nil, err
	}
	if err := core.RequireView(ctx.Role(), doc, ctx.Username()); err != nil {
		return nil, err
	}
	return doc, nil
}

func middleware(db *core.CoreDB, prefix string, requireLoggedIn bool, f func(http.ResponseWriter, *http.Request, *context, httprouter.Params) error) func(http.ResponseWriter, *http.Request, httprouter.Params) {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {

		// similar to the code in func main

		var request = db.NewRequest(w, req)

		var ctx = &context{
			Prefix:  prefix + "/",
			Request: request,
			db:      db,
		}
		defer ctx.Cleanup()

		if requireLoggedIn && !ctx.LoggedIn() {
			ctx.SeeOther("/login")
			return
		}

		if err := f(w, req, ctx, params); err != nil {
			// probably no template has been executed, so execute error template
			errorTmpl.Execute(w, struct {
				*context
				Err error
			}{
				context: ctx,
				Err:     err,
			})
		}
	}
}

var errorTmpl = tmpl(`
	<div class="alert alert-danger" role="alert">
		{{ .Err }}
	</div>`)

func NewAppRouter(db *core.CoreDB, prefix string) http.Handler {

	var router = httprouter.New()

	var GETAndPOST = func(path string, handle httprouter.Handle) {
		router.GET(path, handle)
		router.POST(path, handle)
	}

	// public
	GETAndPOST("/login", middleware(db, prefix, false, login))

	// private
	router.GET("/", middleware(db, prefix, true, catalog))
	router.POST("/approve/:id", middleware(db, prefix, true, approve))
	GETAndPOST("/calendar", middleware(db, prefix, true, calendar))
	router.POST("/calendar/delete/:id", middleware(db, prefix, true, calendarDelete))
	GETAndPOST("/create", middleware(db, prefix, true, create))
	router.POST("/delete/:id", middleware(db, prefix, true, del))
	router.GET("/document/:id", middleware(db, prefix, true, view))
	GETAndPOST("/edit/:id", middleware(db, prefix, true, edit))
	router.POST("/evidence/:id", middleware(db, prefix, true, evidenceUpload))
	router.POST("/evidence/:id/remove", middleware(db, prefix, true, evidenceRemove))
	router.POST("/evidence-required/:id", middleware(db, prefix, true, evidenceRequired))
	router.POST("/favorite/:id", middleware(db, prefix, true, favorite))
	router.GET("/logout", middleware(db, prefix, true, logout))
	router.POST("/priority/:id", middleware(db, prefix, true, priority))
	router.POST("/reject/:id", middleware(db, prefix, true, reject))
	router.GET("/review", middleware(db, prefix, true, review))
	router.POST("/submit/:id", middleware(db, prefix, true, submit))
	GETAndPOST("/user/:id", middleware(db, prefix, true, user))
	GETAndPOST("/users", middleware(db, prefix, true, users))

	return router
}

func tmpl(text string) *template.Template {
	t := template.Must(baseTmpl.Clone())
	t = template.Must(t.Parse(`{{ define "content" }}` + text + `{{ end }}`))
	return t
}

var markdownParser = markdown.New(markdown.HTML(false), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

func renderMarkdown(input string) template.HTML {
	var result = &bytes.Buffer{}
	if err := markdownParser.Render(result, []byte(input)); err != nil {
		return template.HTML(template.HTMLEscapeString(input))
	}
	return template.HTML(result.String())
}

// excerpt renders the markdown body and returns the first plain-text words,
// for the catalog cards.
func excerpt(content string) string {
	return util.Trunc(util.ExtractText(string(renderMarkdown(content))), 160)
}

var baseTmpl = template.Must(template.New("base").Funcs(
	template.FuncMap{
		"Excerpt":         excerpt,
		"FileSupported":   upload.Supported,
		"FileType":        upload.DetectType,
		"FileDescription": upload.TypeDescription,
		"Join": func(items []string) string {
			return strings.Join(items, ", ")
		},
		"Markdown": renderMarkdown,
		"PriorityBadge": func(p core.Priority) template.HTML {
			if p == core.PriorityHigh {
				return `<span class="badge badge-danger">High priority</span>`
			}
			return ``
		},
		"RoleLabel": func(r core.Role) string {
			return r.Label()
		},
		"StatusBadge": func(s core.Status) template.HTML {
			switch s {
			case core.StatusPublished:
				return `<span class="badge badge-success">Published</span>`
			case core.StatusReview:
				return `<span class="badge badge-warning">In review</span>`
			default:
				return `<span class="badge badge-secondary">Draft</span>`
			}
		},
		"UserLink": func(u core.DBUser) template.HTML {
			return template.HTML(fmt.Sprintf(`<a href="user/%d">%s</a>`, u.ID(), template.HTMLEscapeString(u.Name())))
		},
	},
).Parse(`
<!DOCTYPE html>
<html>
	<head>
		<base href="{{ .Prefix }}">
		<link rel="stylesheet" type="text/css" href="/assets/bootstrap-4.4.1.min.css">
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>Document Catalog</title>

		<style>

			body {
				padding-bottom: 1rem;
			}

			h1 {
				font-size: 1.5rem !important;
				margin: 1rem 0 0.7rem !important;
			}

			h2 {
				font-size: 1.3rem !important;
				margin: 0.2rem 0 0.5rem !important;
			}

			.card-columns {
				column-count: 3;
			}

			.carousel-card {
				min-height: 8rem;
			}

			.badge {
				vertical-align: middle;
			}

		</style>
	</head>
	<body>

		{{ if .LoggedIn }}

			<nav class="navbar navbar-expand-md bg-light">
				<a class="navbar-brand" href=".">Catalog</a>
				<ul class="navbar-nav">
					<li class="nav-item">
						<a class="nav-link" href="calendar">Calendar</a>
					</li>

					{{ if .CanEdit }}
						<li class="nav-item">
							<a class="nav-link" href="create">New document</a>
						</li>
					{{ end }}

					{{ if .CanSuperEdit }}
						<li class="nav-item">
							<a class="nav-link" href="review">Review queue</a>
						</li>
						{{ if .UsersWriteable }}
							<li class="nav-item">
								<a class="nav-link" href="users">Users</a>
							</li>
						{{ end }}
					{{ end }}

					<li class="nav-item">
						<a class="nav-link" href="user/{{ .User.ID }}">{{ .User.Name }} ({{ RoleLabel .User.Role }})</a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="logout">Logout</a>
					</li>
				</ul>
			</nav>

		{{ end }}

		<div class="container pt-3">
			{{ .RenderNotifications }}
			{{ template "content" . }}
		</div>
	</body>
</html>`))
