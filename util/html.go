package util

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractText returns the text content of an HTML fragment, with tags
// removed and runs of whitespace collapsed to single spaces. Used for
// card excerpts of rendered document bodies.
func ExtractText(fragment string) string {

	tokenizer := html.NewTokenizerFragment(strings.NewReader(fragment), "body")

	var b strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break // assuming tokenizer.Err() == io.EOF
		}
		if tt == html.TextToken {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.TrimSpace(tokenizer.Token().Data))
		}
	}

	return strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
}
