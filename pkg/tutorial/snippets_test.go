package tutorial

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPanel struct {
	text    string
	visible bool
	calls   int
}

func (p *recordingPanel) ShowSnippet(text string, visible bool) {
	p.text = text
	p.visible = visible
	p.calls++
}

func TestShowSnippetDistinctPerKey(t *testing.T) {
	p := NewPresenter(DefaultSnippets(), nil)

	setup := p.ShowSnippet(SnippetSetup)
	concepts := p.ShowSnippet(SnippetConcepts)

	assert.NotEmpty(t, strings.TrimSpace(setup))
	assert.NotEqual(t, setup, concepts)
}

func TestShowSnippetFallback(t *testing.T) {
	panel := &recordingPanel{}
	p := NewPresenter(DefaultSnippets(), panel)

	var got string
	assert.NotPanics(t, func() { got = p.ShowSnippet("nonexistent-key") })
	assert.Equal(t, FallbackSnippet, got)
	assert.Equal(t, FallbackSnippet, panel.text)
	assert.True(t, panel.visible)
}

func TestShowSnippetWritesPanel(t *testing.T) {
	panel := &recordingPanel{}
	p := NewPresenter(DefaultSnippets(), panel)

	text := p.ShowSnippet(SnippetTemplate)
	assert.Equal(t, text, panel.text)
	assert.True(t, panel.visible)
	assert.True(t, p.Visible())
	assert.Equal(t, text, p.Text())

	p.Hide()
	assert.False(t, panel.visible)
	assert.Equal(t, text, panel.text, "hiding keeps the last text")
	assert.Equal(t, 2, panel.calls)
}

func TestDefaultSnippetKeys(t *testing.T) {
	table := DefaultSnippets()
	want := []string{
		"advanced", "advanced-demo", "concepts", "dataset-structure", "datasets",
		"model-deep-dive", "models", "run-simulation", "running", "scoring",
		"scoring-demo", "setup", "template",
	}
	assert.Equal(t, want, table.Keys())

	seen := make(map[string]string)
	for _, k := range table.Keys() {
		text, ok := table.Lookup(k)
		require.True(t, ok)
		assert.NotEmpty(t, text)
		if other, dup := seen[text]; dup {
			t.Errorf("snippets %q and %q share text", k, other)
		}
		seen[text] = k
	}
}

func TestSnippetTableIsImmutable(t *testing.T) {
	src := map[string]string{"a": "alpha"}
	table := NewSnippetTable(src)
	src["a"] = "changed"
	src["b"] = "beta"

	text, _ := table.Lookup("a")
	assert.Equal(t, "alpha", text)
	assert.Equal(t, 1, table.Len())
}

func TestRunIsSimulated(t *testing.T) {
	p := NewPresenter(DefaultSnippets(), nil)
	p.ShowSnippet(SnippetRunSimulation)
	out := p.Run()
	assert.Equal(t, SimulatedRunOutput, out)
	assert.Contains(t, out, "simulated")
}
