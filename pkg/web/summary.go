package web

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

// renderSummaryHTML converts the summary artifact to HTML. The artifact is
// fixed text, so this runs once per server.
func renderSummaryHTML() (template.HTML, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	var buf bytes.Buffer
	if err := md.Convert(tutorial.DownloadSummary().Content, &buf); err != nil {
		return "", fmt.Errorf("rendering summary: %w", err)
	}
	return template.HTML(buf.String()), nil
}
