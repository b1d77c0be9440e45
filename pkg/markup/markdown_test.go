package markup

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

func TestToMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "heading and inline",
			in:   `<h3>Title</h3><p>Hello <strong>world</strong> and <code>x</code>.</p>`,
			want: "### Title\n\nHello **world** and `x`.\n",
		},
		{
			name: "unordered list",
			in:   `<ul><li>One</li><li>Two <strong>b</strong></li></ul>`,
			want: "- One\n- Two **b**\n",
		},
		{
			name: "nested ordered list",
			in:   `<ol><li>A<ul><li>x</li></ul></li><li>B</li></ol>`,
			want: "1. A\n  - x\n2. B\n",
		},
		{
			name: "code block keeps language",
			in:   "<pre><code class=\"language-python\">print(\"hi\")\nx = 1</code></pre>",
			want: "```python\nprint(\"hi\")\nx = 1\n```\n",
		},
		{
			name: "entities decoded",
			in:   `<p>a &lt;b&gt; &amp; c</p>`,
			want: "a <b> & c\n",
		},
		{
			name: "warning callout",
			in:   `<div class="warning-box"><p>Careful</p></div>`,
			want: "> ⚠️ Careful\n",
		},
		{
			name: "link",
			in:   `<p>See <a href="https://example.com">docs</a></p>`,
			want: "See [docs](https://example.com)\n",
		},
		{
			name: "table",
			in:   `<table><tr><th>Key</th><th>Value</th></tr><tr><td>a</td><td>1</td></tr></table>`,
			want: "| Key | Value |\n|---|---|\n| a | 1 |\n",
		},
		{
			name: "generic div is transparent",
			in:   `<div class="feature-card"><h4>Card</h4><p>Body</p></div>`,
			want: "#### Card\n\nBody\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMarkdown(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMarkdownFenceAvoidsCollision(t *testing.T) {
	got, err := ToMarkdown("<pre><code>```\ninner\n```</code></pre>")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "````\n"), got)
}

func TestToMarkdownAllSections(t *testing.T) {
	for _, sec := range tutorial.DefaultSections() {
		md, err := ToMarkdown(sec.Content)
		require.NoError(t, err, sec.ID)
		assert.NotEmpty(t, strings.TrimSpace(md), sec.ID)
		assert.NotContains(t, md, "<h3>", sec.ID)
		assert.NotContains(t, md, "\n\n\n", sec.ID)
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText("<p>Hello <strong>W&amp;B</strong></p>\n<p>Bye</p>")
	assert.Equal(t, "Hello W&B Bye", got)
}

func TestExcerpt(t *testing.T) {
	got := Excerpt("<p>abcdefgh</p>", 4)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 4)
	assert.True(t, strings.HasSuffix(got, "…"))

	assert.Equal(t, "", Excerpt("<p>abc</p>", 0))
	assert.Equal(t, "abc", Excerpt("<p>abc</p>", 10))
}
