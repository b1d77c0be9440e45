// Package markup converts the tutorial's HTML fragments into forms that
// non-browser surfaces can show: Markdown for glamour and plain text for
// narrow summaries.
//
// Conversion is deliberately lossy. Only the tags the tutorial content uses
// are mapped; anything else contributes its text.
package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	spaceRun     = regexp.MustCompile(`[ \t\r\n]+`)
	blankLineRun = regexp.MustCompile(`\n{3,}`)
)

// Callout markers for the tutorial's styled boxes.
var calloutPrefix = map[string]string{
	"warning-box": "⚠️ ",
	"example-box": "💡 ",
}

// ToMarkdown converts an HTML fragment to Markdown.
func ToMarkdown(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	var b strings.Builder
	writeBlocks(&b, doc.Find("body"), 0)

	out := blankLineRun.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(out) + "\n", nil
}

// writeBlocks renders the children of sel as block-level Markdown.
func writeBlocks(b *strings.Builder, sel *goquery.Selection, depth int) {
	var para strings.Builder
	flush := func() {
		if text := strings.TrimSpace(para.String()); text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
		para.Reset()
	}

	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch name := goquery.NodeName(s); name {
		case "#text", "strong", "b", "em", "i", "code", "a", "span", "br":
			writeInline(&para, s)
		case "h1", "h2", "h3", "h4", "h5", "h6":
			flush()
			level := int(name[1] - '0')
			b.WriteString(strings.Repeat("#", level) + " " + inlineText(s) + "\n\n")
		case "p":
			flush()
			if text := inlineText(s); text != "" {
				b.WriteString(text + "\n\n")
			}
		case "ul", "ol":
			flush()
			writeList(b, s, name == "ol", depth)
			b.WriteString("\n")
		case "pre":
			flush()
			writeCodeBlock(b, s)
		case "blockquote":
			flush()
			var inner strings.Builder
			writeBlocks(&inner, s, depth)
			for _, line := range strings.Split(strings.TrimSpace(inner.String()), "\n") {
				b.WriteString(strings.TrimRight("> "+line, " ") + "\n")
			}
			b.WriteString("\n")
		case "table":
			flush()
			writeTable(b, s)
		case "#comment":
		default:
			flush()
			class, _ := s.Attr("class")
			if prefix, ok := calloutPrefix[class]; ok {
				var inner strings.Builder
				writeBlocks(&inner, s, depth)
				b.WriteString("> " + prefix)
				lines := strings.Split(strings.TrimSpace(inner.String()), "\n")
				for i, line := range lines {
					if i > 0 {
						b.WriteString(strings.TrimRight("> "+line, " "))
					} else {
						b.WriteString(line)
					}
					b.WriteString("\n")
				}
				b.WriteString("\n")
				return
			}
			writeBlocks(b, s, depth)
		}
	})
	flush()
}

func writeList(b *strings.Builder, list *goquery.Selection, ordered bool, depth int) {
	indent := strings.Repeat("  ", depth)
	n := 0
	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		n++
		marker := "-"
		if ordered {
			marker = fmt.Sprintf("%d.", n)
		}

		var text strings.Builder
		var nested []*goquery.Selection
		li.Contents().Each(func(_ int, s *goquery.Selection) {
			switch goquery.NodeName(s) {
			case "ul", "ol":
				nested = append(nested, s)
			case "pre":
				text.WriteString(" `" + strings.TrimSpace(s.Text()) + "`")
			default:
				writeInline(&text, s)
			}
		})

		b.WriteString(indent + marker + " " + collapse(text.String()) + "\n")
		for _, sub := range nested {
			writeList(b, sub, goquery.NodeName(sub) == "ol", depth+1)
		}
	})
}

func writeCodeBlock(b *strings.Builder, pre *goquery.Selection) {
	lang := ""
	code := pre.Find("code").First()
	if class, ok := code.Attr("class"); ok {
		for _, c := range strings.Fields(class) {
			if strings.HasPrefix(c, "language-") {
				lang = strings.TrimPrefix(c, "language-")
				break
			}
		}
	}

	body := pre.Text()
	fence := "```"
	for strings.Contains(body, fence) {
		fence += "`"
	}
	b.WriteString(fence + lang + "\n")
	b.WriteString(strings.TrimRight(body, "\n"))
	b.WriteString("\n" + fence + "\n\n")
}

func writeTable(b *strings.Builder, table *goquery.Selection) {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Children().Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.ReplaceAll(inlineText(cell), "|", `\|`))
		})
		rows = append(rows, cells)
	})
	if len(rows) == 0 {
		return
	}

	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	writeRow := func(cells []string) {
		for len(cells) < cols {
			cells = append(cells, "")
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	writeRow(rows[0])
	b.WriteString("|" + strings.Repeat("---|", cols) + "\n")
	for _, r := range rows[1:] {
		writeRow(r)
	}
	b.WriteString("\n")
}

// writeInline appends the inline Markdown for a single node.
func writeInline(b *strings.Builder, s *goquery.Selection) {
	switch goquery.NodeName(s) {
	case "#text":
		b.WriteString(spaceRun.ReplaceAllString(s.Text(), " "))
	case "strong", "b":
		wrapInline(b, s, "**")
	case "em", "i":
		wrapInline(b, s, "*")
	case "code":
		text := s.Text()
		tick := "`"
		if strings.Contains(text, "`") {
			tick = "``"
		}
		b.WriteString(tick + text + tick)
	case "a":
		href, _ := s.Attr("href")
		text := inlineText(s)
		if href == "" {
			b.WriteString(text)
		} else {
			b.WriteString("[" + text + "](" + href + ")")
		}
	case "br":
		b.WriteString("  \n")
	default:
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			writeInline(b, c)
		})
	}
}

func wrapInline(b *strings.Builder, s *goquery.Selection, marker string) {
	text := inlineText(s)
	if text == "" {
		return
	}
	b.WriteString(marker + text + marker)
}

// inlineText renders the children of s as a single line of inline Markdown.
func inlineText(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		writeInline(&b, c)
	})
	return collapse(b.String())
}

func collapse(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
