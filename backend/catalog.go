package backend

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/storedocs/storedocs/core"
)

var catalogTmpl = tmpl(`<h1>Document Catalog</h1>

	{{ if .Recent }}

		<h2>Recently updated</h2>

		<div class="row">
			{{ range .Slide }}
				<div class="col-md-4">
					<div class="card carousel-card mb-3">
						<div class="card-body">
							<h5 class="card-title"><a href="document/{{ .ID }}">{{ .Title }}</a> {{ PriorityBadge .Priority }}</h5>
							<h6 class="card-subtitle mb-2 text-muted">{{ .Category }} &middot; {{ $.FormatDate .LastModified }}</h6>
							<p class="card-text">{{ Excerpt .Content }}</p>
						</div>
					</div>
				</div>
			{{ end }}
		</div>

		{{ if .HasSlides }}
			<nav class="mb-3">
				<a class="btn btn-sm btn-outline-secondary {{ if eq .SlideIndex 0 }}disabled{{ end }}" href="{{ .SlideLink .PrevSlide }}">&laquo;</a>
				<a class="btn btn-sm btn-outline-secondary {{ if eq .SlideIndex .MaxSlide }}disabled{{ end }}" href="{{ .SlideLink .NextSlide }}">&raquo;</a>
			</nav>
		{{ end }}

	{{ end }}

	<h2>All documents</h2>

	<form method="get" class="form-inline mb-3">
		<input type="text" class="form-control mr-2" name="q" placeholder="Search" value="{{ .Filter.Search }}">
		<select class="form-control mr-2" name="category">
			<option value="all">All categories</option>
			{{ range .Categories }}
				<option value="{{ . }}" {{ if eq . $.Filter.Category }}selected{{ end }}>{{ . }}</option>
			{{ end }}
		</select>
		{{ if .CanEdit }}
			<select class="form-control mr-2" name="status">
				<option value="all">All statuses</option>
				<option value="draft" {{ if eq .Filter.Status "draft" }}selected{{ end }}>Draft</option>
				<option value="review" {{ if eq .Filter.Status "review" }}selected{{ end }}>In review</option>
				<option value="published" {{ if eq .Filter.Status "published" }}selected{{ end }}>Published</option>
			</select>
		{{ end }}
		<select class="form-control mr-2" name="priority">
			<option value="all">Any priority</option>
			<option value="high" {{ if eq .Filter.Priority "high" }}selected{{ end }}>High</option>
			<option value="normal" {{ if eq .Filter.Priority "normal" }}selected{{ end }}>Normal</option>
		</select>
		<div class="form-check mr-2">
			<input type="checkbox" class="form-check-input" name="favorites" value="1" id="favorites" {{ if .Filter.FavoritesOnly }}checked{{ end }}>
			<label class="form-check-label" for="favorites">Favorites only</label>
		</div>
		<button type="submit" class="btn btn-primary">Filter</button>
	</form>

	<div class="card-columns">
		{{ range .Documents }}
			<div class="card mb-3">
				<div class="card-body">
					<h5 class="card-title"><a href="document/{{ .ID }}">{{ .Title }}</a> {{ StatusBadge .Status }} {{ PriorityBadge .Priority }}</h5>
					<h6 class="card-subtitle mb-2 text-muted">{{ .Category }} &middot; {{ .Author }} &middot; {{ $.FormatDate .LastModified }}</h6>
					<p class="card-text">{{ Excerpt .Content }}</p>
					{{ if .Tags }}
						<p class="card-text"><small class="text-muted">{{ Join .Tags }}</small></p>
					{{ end }}
					<form method="post" action="favorite/{{ .ID }}">
						<button type="submit" class="btn btn-sm {{ if .FavoriteOf $.Username }}btn-warning{{ else }}btn-outline-warning{{ end }}">&#9733;</button>
					</form>
				</div>
			</div>
		{{ else }}
			<p>No documents match.</p>
		{{ end }}
	</div>`)

type catalogData struct {
	*context
	Filter     core.Filter
	Documents  []*core.Document
	Recent     []*core.Document
	Categories []string
	SlideIndex int
}

func (data *catalogData) Slide() []*core.Document {
	var end = data.SlideIndex + core.RecentPerPage
	if end > len(data.Recent) {
		end = len(data.Recent)
	}
	return data.Recent[data.SlideIndex:end]
}

func (data *catalogData) HasSlides() bool {
	return len(data.Recent) > core.RecentPerPage
}

func (data *catalogData) MaxSlide() int {
	return core.MaxSlideIndex(len(data.Recent))
}

func (data *catalogData) PrevSlide() int {
	return core.ClampSlideIndex(data.SlideIndex-1, len(data.Recent))
}

func (data *catalogData) NextSlide() int {
	return core.ClampSlideIndex(data.SlideIndex+1, len(data.Recent))
}

// SlideLink keeps the current filter in the carousel links.
func (data *catalogData) SlideLink(slide int) string {
	var values = url.Values{}
	if data.Filter.Search != "" {
		values.Set("q", data.Filter.Search)
	}
	if data.Filter.Category != "" {
		values.Set("category", data.Filter.Category)
	}
	if data.Filter.Status != "" {
		values.Set("status", data.Filter.Status)
	}
	if data.Filter.Priority != "" {
		values.Set("priority", data.Filter.Priority)
	}
	if data.Filter.FavoritesOnly {
		values.Set("favorites", "1")
	}
	values.Set("slide", strconv.Itoa(slide))
	return "?" + values.Encode()
}

func catalog(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var filter = core.Filter{
		Search:        req.URL.Query().Get("q"),
		Category:      req.URL.Query().Get("category"),
		Status:        req.URL.Query().Get("status"),
		Priority:      req.URL.Query().Get("priority"),
		FavoritesOnly: req.URL.Query().Get("favorites") == "1",
	}

	// the carousel and the category choice always cover everything visible
	visible, err := ctx.db.VisibleDocuments(ctx.User, core.Filter{})
	if err != nil {
		return err
	}

	documents, err := core.Query(visible, ctx.Role(), ctx.Username(), filter)
	if err != nil {
		return err
	}

	var recent = core.Recent(visible)

	slide, _ := strconv.Atoi(req.URL.Query().Get("slide")) // 0 on error
	slide = core.ClampSlideIndex(slide, len(recent))

	return catalogTmpl.Execute(w, &catalogData{
		context:    ctx,
		Filter:     filter,
		Documents:  documents,
		Recent:     recent,
		Categories: core.Categories(visible),
		SlideIndex: slide,
	})
}
