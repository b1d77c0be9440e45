package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

func newTestTutorialModel() TutorialModel {
	m := NewTutorialModel(tutorial.DefaultStore(), tutorial.DefaultSnippets(), TestTheme(), "notty")
	m.SetSize(100, 40)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// msgOf runs cmd and returns its message, or nil.
func msgOf(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestNewTutorialModel(t *testing.T) {
	m := newTestTutorialModel()

	if m.CurrentIndex() != 0 {
		t.Errorf("Expected initial section 0, got %d", m.CurrentIndex())
	}
	if m.TOCVisible() {
		t.Error("Expected TOC to be hidden initially")
	}
	if m.SnippetVisible() {
		t.Error("Expected snippet panel to be hidden initially")
	}
	f := m.Frame()
	if f.Total != 9 || f.Counter != "1 / 9" {
		t.Errorf("Unexpected initial frame: %+v", f)
	}
	if !m.Visited("intro") {
		t.Error("Expected first section to be marked visited")
	}
}

func TestTutorialNavigation(t *testing.T) {
	m := newTestTutorialModel()
	total := m.Frame().Total

	m, _ = m.Update(runes("n"))
	if m.CurrentIndex() != 1 {
		t.Errorf("Expected section 1 after 'n', got %d", m.CurrentIndex())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.CurrentIndex() != 2 {
		t.Errorf("Expected section 2 after right arrow, got %d", m.CurrentIndex())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.CurrentIndex() != 3 {
		t.Errorf("Expected section 3 after space, got %d", m.CurrentIndex())
	}

	m, _ = m.Update(runes("p"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(runes("h"))
	if m.CurrentIndex() != 0 {
		t.Errorf("Expected section 0, got %d", m.CurrentIndex())
	}

	// Boundary: can't go below 0
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.CurrentIndex() != 0 {
		t.Errorf("Expected section to stay at 0, got %d", m.CurrentIndex())
	}
	if !m.Frame().PrevDisabled {
		t.Error("Expected prev disabled on first section")
	}

	for i := 0; i < total+3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.CurrentIndex() != total-1 {
		t.Errorf("Expected to stop at last section %d, got %d", total-1, m.CurrentIndex())
	}
	f := m.Frame()
	if !f.NextDisabled || f.PrevDisabled {
		t.Errorf("Unexpected disabled flags at end: %+v", f)
	}
	if f.Counter != "9 / 9" || f.Progress != 1 {
		t.Errorf("Unexpected counter/progress at end: %q %v", f.Counter, f.Progress)
	}
}

func TestTutorialSnippetAction(t *testing.T) {
	m := newTestTutorialModel()
	m, _ = m.Update(runes("n")) // setup

	m, cmd := m.Update(runes("1"))
	if cmd != nil {
		t.Error("Showing a snippet should not need a command")
	}
	if !m.SnippetVisible() {
		t.Fatal("Expected snippet panel after action 1")
	}
	want, _ := tutorial.DefaultSnippets().Lookup(tutorial.SnippetSetup)
	if m.SnippetText() != want {
		t.Error("Expected setup snippet in panel")
	}
	if !strings.Contains(m.View(), "Code Example") {
		t.Error("Expected panel in view")
	}

	// Run shows the simulated output, nothing executes.
	m, _ = m.Update(runes("r"))
	if m.RunOutput() != tutorial.SimulatedRunOutput {
		t.Errorf("Expected simulated output, got %q", m.RunOutput())
	}

	// Copy asks the parent.
	m, cmd = m.Update(runes("c"))
	if got, ok := msgOf(cmd).(CopySnippetMsg); !ok || got.Text != want {
		t.Errorf("Expected CopySnippetMsg with snippet, got %#v", msgOf(cmd))
	}

	// Panel survives navigation.
	m, _ = m.Update(runes("n"))
	if !m.SnippetVisible() {
		t.Error("Expected panel to stay open across navigation")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.SnippetVisible() {
		t.Error("Expected esc to hide the panel")
	}
	if m.RunOutput() != "" {
		t.Error("Expected run output cleared on hide")
	}
}

func TestTutorialSnippetKeysInactiveWithoutPanel(t *testing.T) {
	m := newTestTutorialModel()

	m, cmd := m.Update(runes("c"))
	if cmd != nil {
		t.Error("Copy should be inactive without a panel")
	}
	m, _ = m.Update(runes("r"))
	if m.RunOutput() != "" {
		t.Error("Run should be inactive without a panel")
	}
}

func TestTutorialActionOutOfRange(t *testing.T) {
	m := newTestTutorialModel() // intro has no actions

	m, cmd := m.Update(runes("1"))
	if cmd != nil || m.SnippetVisible() {
		t.Error("Expected action key to be a no-op on a section without actions")
	}
	if !strings.Contains(m.View(), "No actions") {
		t.Error("Expected empty actions hint")
	}
}

func TestTutorialConclusionActions(t *testing.T) {
	m := newTestTutorialModel()
	if !m.JumpToSection("conclusion") {
		t.Fatal("JumpToSection(conclusion) failed")
	}

	_, cmd := m.Update(runes("1"))
	link, ok := msgOf(cmd).(OpenLinkMsg)
	if !ok || link.URL != tutorial.LinkOpenUIRepo {
		t.Errorf("Expected OpenLinkMsg for repo, got %#v", msgOf(cmd))
	}

	_, cmd = m.Update(runes("6"))
	if _, ok := msgOf(cmd).(DownloadSummaryMsg); !ok {
		t.Errorf("Expected DownloadSummaryMsg, got %#v", msgOf(cmd))
	}

	m, _ = m.Update(runes("3"))
	if !m.SnippetVisible() {
		t.Error("Expected template snippet")
	}

	m, _ = m.Update(runes("5"))
	if m.CurrentIndex() != 0 {
		t.Errorf("Expected restart to section 0, got %d", m.CurrentIndex())
	}
	if m.SnippetVisible() {
		t.Error("Expected restart to hide the panel")
	}
}

func TestTutorialRestartKey(t *testing.T) {
	m := newTestTutorialModel()
	m, _ = m.Update(runes("n"))
	m, _ = m.Update(runes("n"))

	m, _ = m.Update(runes("R"))
	if m.CurrentIndex() != 0 {
		t.Errorf("Expected R to restart, got %d", m.CurrentIndex())
	}
}

func TestTutorialDownloadKey(t *testing.T) {
	m := newTestTutorialModel()
	_, cmd := m.Update(runes("d"))
	if _, ok := msgOf(cmd).(DownloadSummaryMsg); !ok {
		t.Errorf("Expected DownloadSummaryMsg, got %#v", msgOf(cmd))
	}
}

func TestTutorialTOC(t *testing.T) {
	m := newTestTutorialModel()

	m, _ = m.Update(runes("t"))
	if !m.TOCVisible() {
		t.Fatal("Expected TOC visible after 't'")
	}
	if m.focus != focusTutorialTOC {
		t.Error("Expected TOC focus")
	}
	if !strings.Contains(m.View(), "Contents") {
		t.Error("Expected TOC in view")
	}

	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	if m.CurrentIndex() != 0 {
		t.Error("Moving the TOC cursor must not navigate")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.CurrentIndex() != 2 {
		t.Errorf("Expected enter to jump to section 2, got %d", m.CurrentIndex())
	}
	if m.focus != focusTutorialContent {
		t.Error("Expected focus back on content")
	}

	m, _ = m.Update(runes("t"))
	if m.TOCVisible() {
		t.Error("Expected TOC hidden after second 't'")
	}
}

func TestTutorialTOCCursorBounds(t *testing.T) {
	m := newTestTutorialModel()
	m, _ = m.Update(runes("t"))

	m, _ = m.Update(runes("k"))
	if m.tocCursor != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", m.tocCursor)
	}
	for i := 0; i < 20; i++ {
		m, _ = m.Update(runes("j"))
	}
	if m.tocCursor != 8 {
		t.Errorf("Expected cursor to stop at 8, got %d", m.tocCursor)
	}
}

func TestTutorialHelpToggle(t *testing.T) {
	m := newTestTutorialModel()
	short := m.View()

	m, _ = m.Update(runes("?"))
	full := m.View()
	if !strings.Contains(full, "section action") {
		t.Error("Expected full help to list the action keys")
	}
	if short == full {
		t.Error("Expected view to change with full help")
	}
}

func TestTutorialViewHeader(t *testing.T) {
	m := newTestTutorialModel()
	view := m.View()

	if !strings.Contains(view, "Weave Evaluations Tutorial") {
		t.Error("Expected title in header")
	}
	if !strings.Contains(view, "[1/9]") {
		t.Error("Expected [1/9] counter in header")
	}
	if !strings.Contains(view, "Introduction to Weave Evaluations") {
		t.Error("Expected section title")
	}
	if strings.Contains(view, "<p>") {
		t.Error("HTML must be converted before display")
	}
}

func TestTutorialJumpToSectionUnknown(t *testing.T) {
	m := newTestTutorialModel()
	if m.JumpToSection("nope") {
		t.Error("Expected unknown section to fail")
	}
	if m.CurrentIndex() != 0 {
		t.Error("Unknown section must not move")
	}
}

func TestTutorialScrollResetsOnNavigation(t *testing.T) {
	m := newTestTutorialModel()
	m.SetSize(100, 15)

	for i := 0; i < 5; i++ {
		m, _ = m.Update(runes("j"))
	}
	if m.viewport.YOffset == 0 {
		t.Skip("intro fits on screen; nothing to scroll")
	}

	m, _ = m.Update(runes("n"))
	if m.viewport.YOffset != 0 {
		t.Errorf("Expected scroll reset on navigation, got offset %d", m.viewport.YOffset)
	}
}

func TestTutorialSmallTerminal(t *testing.T) {
	m := newTestTutorialModel()
	m.SetSize(20, 5)
	m, _ = m.Update(runes("n"))
	m, _ = m.Update(runes("1"))

	if m.View() == "" {
		t.Error("Expected a view even on a tiny terminal")
	}
	if m.viewport.Height < 3 {
		t.Errorf("Expected minimum viewport height, got %d", m.viewport.Height)
	}
}
