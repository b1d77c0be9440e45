package markup

import (
	"html"

	"github.com/mattn/go-runewidth"
	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText strips all markup from an HTML fragment and collapses whitespace.
func PlainText(fragment string) string {
	stripped := strict.Sanitize(fragment)
	return collapse(html.UnescapeString(stripped))
}

// Excerpt returns at most width display cells of the fragment's text.
func Excerpt(fragment string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(PlainText(fragment), width, "…")
}
