package backend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseTags(" a , b ,, "))
	assert.Empty(t, parseTags(""))
	assert.Equal(t, []string{"devoluciones"}, parseTags("devoluciones"))
}

func TestParseDates(t *testing.T) {
	dates, err := parseDates("2026-09-01, 2026-09-02")
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), dates[0])

	_, err = parseDates("01.09.2026")
	assert.Error(t, err)

	dates, err = parseDates("")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Hello world", excerpt("# Hello\n\n*world*"))
	assert.NotContains(t, excerpt("**bold** text"), "*")
}

func TestRenderMarkdownEscapesHTML(t *testing.T) {
	rendered := string(renderMarkdown("<script>alert(1)</script>"))
	assert.NotContains(t, rendered, "<script>")
}
