package tutorial

import "sort"

// FallbackSnippet is shown when a snippet key is unknown.
const FallbackSnippet = "# Example code not available"

// SimulatedRunOutput is what the playground prints for "run". Snippets are
// display text only; nothing is ever executed.
const SimulatedRunOutput = "🚀 Code execution simulated!\n\n✅ This would run your evaluation code\n💡 Copy this code to your project to try it for real"

// SnippetPanel is the secondary surface that shows example code.
type SnippetPanel interface {
	ShowSnippet(text string, visible bool)
}

// SnippetPanelFunc adapts a function to SnippetPanel.
type SnippetPanelFunc func(text string, visible bool)

// ShowSnippet calls f.
func (f SnippetPanelFunc) ShowSnippet(text string, visible bool) { f(text, visible) }

// SnippetTable maps snippet keys to literal example text.
type SnippetTable struct {
	entries map[string]string
}

// NewSnippetTable copies entries into an immutable table.
func NewSnippetTable(entries map[string]string) SnippetTable {
	t := SnippetTable{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

// DefaultSnippets returns the built-in example table.
func DefaultSnippets() SnippetTable {
	return NewSnippetTable(map[string]string{
		SnippetSetup:            setupSnippet,
		SnippetConcepts:         conceptsSnippet,
		SnippetDatasets:         datasetsSnippet,
		SnippetModels:           modelsSnippet,
		SnippetScoring:          scoringSnippet,
		SnippetRunning:          runningSnippet,
		SnippetAdvanced:         advancedSnippet,
		SnippetDatasetStructure: datasetStructureSnippet,
		SnippetModelDeepDive:    modelDeepDiveSnippet,
		SnippetScoringDemo:      scoringDemoSnippet,
		SnippetRunSimulation:    runSimulationSnippet,
		SnippetAdvancedDemo:     advancedDemoSnippet,
		SnippetTemplate:         templateSnippet,
	})
}

// Lookup returns the text for key.
func (t SnippetTable) Lookup(key string) (string, bool) {
	text, ok := t.entries[key]
	return text, ok
}

// Keys returns all keys, sorted.
func (t SnippetTable) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries.
func (t SnippetTable) Len() int { return len(t.entries) }

// Presenter copies snippets into a SnippetPanel on request.
type Presenter struct {
	table   SnippetTable
	panel   SnippetPanel
	current string
	visible bool
}

// NewPresenter creates a presenter writing to panel. A nil panel is allowed;
// the presenter still tracks what would be shown.
func NewPresenter(table SnippetTable, panel SnippetPanel) *Presenter {
	if panel == nil {
		panel = SnippetPanelFunc(func(string, bool) {})
	}
	return &Presenter{table: table, panel: panel}
}

// ShowSnippet looks up key, shows the text (or FallbackSnippet) and returns it.
func (p *Presenter) ShowSnippet(key string) string {
	text, ok := p.table.Lookup(key)
	if !ok {
		text = FallbackSnippet
	}
	p.current = text
	p.visible = true
	p.panel.ShowSnippet(text, true)
	return text
}

// Hide makes the panel invisible. The last text is kept.
func (p *Presenter) Hide() {
	p.visible = false
	p.panel.ShowSnippet(p.current, false)
}

// Run returns the simulated playground output.
func (p *Presenter) Run() string {
	return SimulatedRunOutput
}

// Text returns the text most recently shown.
func (p *Presenter) Text() string { return p.current }

// Visible reports whether the panel is showing.
func (p *Presenter) Visible() bool { return p.visible }

// Table returns the underlying table.
func (p *Presenter) Table() SnippetTable { return p.table }
