package core

import (
	"sort"

	"github.com/storedocs/storedocs/util"
)

// FilterAll matches any value in the category, status and priority filters.
const FilterAll = "all"

// A Filter is the query configuration handed in by the presentation caller.
type Filter struct {
	Search        string
	Category      string // FilterAll or empty matches all
	Status        string
	Priority      string
	FavoritesOnly bool
}

func anyOf(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// Query filters the document collection down to what the given user may see
// and what matches the filter, preserving insertion order. The search term
// matches title, body, author or any tag, ignoring case and accents.
func Query(docs []*Document, role Role, username string, f Filter) ([]*Document, error) {

	var result = []*Document{}

	for _, d := range docs {

		visible, err := CanView(role, d, username)
		if err != nil {
			return nil, err
		}
		if !visible {
			continue
		}

		if !matchesSearch(d, f.Search) {
			continue
		}
		if !anyOf(f.Category, d.Category) {
			continue
		}
		if !anyOf(f.Status, string(d.Status)) {
			continue
		}
		if !anyOf(f.Priority, string(d.Priority)) {
			continue
		}
		if f.FavoritesOnly && !d.FavoriteOf(username) {
			continue
		}

		result = append(result, d)
	}

	return result, nil
}

func matchesSearch(d *Document, term string) bool {
	if term == "" {
		return true
	}
	if util.TextIncludes(d.Title, term) || util.TextIncludes(d.Content, term) || util.TextIncludes(d.Author, term) {
		return true
	}
	for _, tag := range d.Tags {
		if util.TextIncludes(tag, term) {
			return true
		}
	}
	return false
}

// VisibleDocuments applies Query to the whole collection for the actor.
func (c *CoreDB) VisibleDocuments(actor DBUser, f Filter) ([]*Document, error) {
	docs, err := c.DocumentDB.GetAllDocuments()
	if err != nil {
		return nil, err
	}
	return Query(docs, actor.Role(), actor.Name(), f)
}

// Categories returns the distinct categories in first-seen order, for the
// filter choice.
func Categories(docs []*Document) []string {
	var seen = map[string]bool{}
	var categories = []string{}
	for _, d := range docs {
		if !seen[d.Category] {
			seen[d.Category] = true
			categories = append(categories, d.Category)
		}
	}
	return categories
}

// The recent-documents view shows the six most recently modified documents,
// three per slide.
const (
	RecentLimit   = 6
	RecentPerPage = 3
)

// Recent returns up to RecentLimit documents ordered by LastModified
// descending. The input slice is not modified.
func Recent(docs []*Document) []*Document {
	var sorted = append([]*Document(nil), docs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LastModified.After(sorted[j].LastModified)
	})
	if len(sorted) > RecentLimit {
		sorted = sorted[:RecentLimit]
	}
	return sorted
}

// MaxSlideIndex returns the last legal slide index for count documents.
func MaxSlideIndex(count int) int {
	if count <= RecentPerPage {
		return 0
	}
	return count - RecentPerPage
}

// ClampSlideIndex clamps a requested slide index into [0, MaxSlideIndex].
func ClampSlideIndex(index, count int) int {
	if index < 0 {
		return 0
	}
	if max := MaxSlideIndex(count); index > max {
		return max
	}
	return index
}
