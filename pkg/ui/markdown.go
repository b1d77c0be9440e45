package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vanderheijden86/weavetour/pkg/debug"
	"github.com/vanderheijden86/weavetour/pkg/markup"
)

// fallbackGlamourStyle is used when the configured style is unknown.
const fallbackGlamourStyle = "dark"

// MarkdownRenderer renders section content through glamour, caching the
// output per section and width.
type MarkdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
	cache    map[string]string
}

// NewMarkdownRenderer creates a renderer for the given glamour style
// ("dracula", "dark", "light", "notty", "auto") and word-wrap width.
func NewMarkdownRenderer(style string, width int) *MarkdownRenderer {
	mr := &MarkdownRenderer{style: style, width: width}
	mr.rebuild()
	return mr
}

func newTermRenderer(style string, width int) (*glamour.TermRenderer, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	return glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
}

func (mr *MarkdownRenderer) rebuild() {
	mr.cache = make(map[string]string)

	r, err := newTermRenderer(mr.style, mr.width)
	if err != nil {
		debug.Log("markdown: style %q unavailable (%v), using %s", mr.style, err, fallbackGlamourStyle)
		r, err = newTermRenderer(fallbackGlamourStyle, mr.width)
	}
	if err != nil {
		debug.Log("markdown: glamour unavailable: %v", err)
		r = nil
	}
	mr.renderer = r
}

// SetWidth updates the word-wrap width. The cache is dropped on change.
func (mr *MarkdownRenderer) SetWidth(width int) {
	if width == mr.width {
		return
	}
	mr.width = width
	mr.rebuild()
}

// SetStyle switches the glamour style. The cache is dropped on change.
func (mr *MarkdownRenderer) SetStyle(style string) {
	if style == mr.style {
		return
	}
	mr.style = style
	mr.rebuild()
}

// Style returns the configured style name.
func (mr *MarkdownRenderer) Style() string { return mr.style }

// Render renders Markdown. Without a glamour renderer the input is returned.
func (mr *MarkdownRenderer) Render(md string) (string, error) {
	if mr.renderer == nil {
		return md, nil
	}
	out, err := mr.renderer.Render(md)
	if err != nil {
		return md, fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// RenderSection converts an HTML fragment to Markdown and renders it. The
// result is cached under key.
func (mr *MarkdownRenderer) RenderSection(key, fragment string) string {
	if out, ok := mr.cache[key]; ok {
		return out
	}
	defer debug.LogEnterExit("markdown: render " + key)()

	md, err := markup.ToMarkdown(fragment)
	if err != nil {
		debug.Log("markdown: converting %s: %v", key, err)
		md = markup.PlainText(fragment)
	}

	out, err := mr.Render(md)
	if err != nil {
		debug.Log("markdown: %s: %v", key, err)
	}
	out = compressBlankLines(strings.TrimSpace(out))
	mr.cache[key] = out
	return out
}
