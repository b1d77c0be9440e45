package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

// Rows outside the viewport: header, divider, section title, actions.
const chromeRows = 4

// TOC sidebar: inner width plus border and padding.
const (
	tocInnerWidth = 22
	tocWidth      = tocInnerWidth + 4
)

// OpenLinkMsg asks the parent model to open an external link.
type OpenLinkMsg struct{ URL string }

// DownloadSummaryMsg asks the parent model to write the summary file.
type DownloadSummaryMsg struct{}

// CopySnippetMsg asks the parent model to copy text to the clipboard.
type CopySnippetMsg struct{ Text string }

// screen receives what the viewer and the snippet presenter display.
// It implements tutorial.Display, tutorial.Scroller and tutorial.SnippetPanel.
type screen struct {
	frame          tutorial.Frame
	frameChanged   bool
	scrollTop      bool
	snippet        string
	snippetVisible bool
}

func (s *screen) ShowFrame(f tutorial.Frame) {
	s.frame = f
	s.frameChanged = true
}

func (s *screen) ScrollToTop() { s.scrollTop = true }

func (s *screen) ShowSnippet(text string, visible bool) {
	s.snippet = text
	s.snippetVisible = visible
}

// tutorialFocus tracks which element has focus
type tutorialFocus int

const (
	focusTutorialContent tutorialFocus = iota
	focusTutorialTOC
)

// TutorialModel is the paginated tour: header with progress, glamour-rendered
// section body, optional contents sidebar and the snippet panel.
type TutorialModel struct {
	store     *tutorial.Store
	viewer    *tutorial.Viewer
	presenter *tutorial.Presenter
	screen    *screen

	viewport viewport.Model
	help     help.Model
	keys     keyMap
	theme    Theme
	markdown *MarkdownRenderer

	tocVisible bool
	focus      tutorialFocus
	tocCursor  int
	runOutput  string
	visited    map[string]bool

	width  int
	height int
}

// NewTutorialModel creates a tour over store, showing snippets from table.
func NewTutorialModel(store *tutorial.Store, table tutorial.SnippetTable, theme Theme, glamourStyle string) TutorialModel {
	s := &screen{}
	presenter := tutorial.NewPresenter(table, s)

	m := TutorialModel{
		store:     store,
		viewer:    tutorial.NewViewer(store, s).WithPanel(presenter),
		presenter: presenter,
		screen:    s,
		viewport:  viewport.New(80, 16),
		help:      help.New(),
		keys:      defaultKeyMap(),
		markdown:  NewMarkdownRenderer(glamourStyle, 76),
		visited:   make(map[string]bool),
		width:     80,
		height:    24,
	}
	m.SetTheme(theme)
	m.viewer.Initialize()
	m.sync()
	return m
}

// Init initializes the tutorial model.
func (m TutorialModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input for the tour.
func (m TutorialModel) Update(msg tea.Msg) (TutorialModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(keyMsg, m.keys.TOC):
		m.tocVisible = !m.tocVisible
		if m.tocVisible {
			m.focus = focusTutorialTOC
			m.tocCursor = m.viewer.Current()
		} else {
			m.focus = focusTutorialContent
		}
		m.layout()
		return m, nil
	}

	if m.focus == focusTutorialTOC && m.tocVisible {
		return m.handleTOCKeys(keyMsg), nil
	}
	return m.handleContentKeys(keyMsg)
}

func (m TutorialModel) handleContentKeys(msg tea.KeyMsg) (TutorialModel, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.viewer.Prev()
	case key.Matches(msg, m.keys.Next):
		m.viewer.Next()
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Action):
		n := int(msg.String()[0] - '0')
		actions := m.screen.frame.Section.Actions
		if n >= 1 && n <= len(actions) {
			m, cmd = m.trigger(actions[n-1])
		}
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	case key.Matches(msg, m.keys.Download):
		cmd = emit(DownloadSummaryMsg{})
	case key.Matches(msg, m.keys.Copy):
		cmd = emit(CopySnippetMsg{Text: m.presenter.Text()})
	case key.Matches(msg, m.keys.Run):
		m.runOutput = m.presenter.Run()
	case key.Matches(msg, m.keys.Hide):
		m.presenter.Hide()
		m.runOutput = ""
	case key.Matches(msg, m.keys.Select) && m.tocVisible:
		m.focus = focusTutorialTOC
	}

	m.sync()
	return m, cmd
}

func (m TutorialModel) handleTOCKeys(msg tea.KeyMsg) TutorialModel {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.tocCursor < m.viewer.Count()-1 {
			m.tocCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.tocCursor > 0 {
			m.tocCursor--
		}
	case key.Matches(msg, m.keys.Select):
		m.viewer.JumpTo(m.tocCursor)
		m.focus = focusTutorialContent
	case key.Matches(msg, m.keys.Prev), msg.String() == "esc":
		m.focus = focusTutorialContent
	}
	m.sync()
	return m
}

// trigger performs a section action. Effects outside the tour are returned
// as messages for the parent model.
func (m TutorialModel) trigger(a tutorial.Action) (TutorialModel, tea.Cmd) {
	switch a.Kind {
	case tutorial.ActionSnippet:
		m.presenter.ShowSnippet(a.Target)
		m.runOutput = ""
	case tutorial.ActionLink:
		return m, emit(OpenLinkMsg{URL: a.Target})
	case tutorial.ActionRestart:
		m.restart()
	case tutorial.ActionDownload:
		return m, emit(DownloadSummaryMsg{})
	}
	return m, nil
}

func (m *TutorialModel) restart() {
	m.viewer.Restart()
	m.runOutput = ""
	m.tocCursor = 0
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// sync pulls pending display updates from the screen into the viewport.
func (m *TutorialModel) sync() {
	if m.screen.frameChanged {
		m.screen.frameChanged = false
		m.visited[m.screen.frame.Section.ID] = true
	}
	m.keys.setSnippetKeys(m.screen.snippetVisible)
	m.layout()
	if m.screen.scrollTop {
		m.screen.scrollTop = false
		m.viewport.GotoTop()
	}
}

func (m TutorialModel) bodyWidth() int {
	w := m.width
	if m.tocVisible {
		w -= tocWidth + 1
	}
	return max(w, 20)
}

// layout sizes the viewport around the other rows and refreshes its content.
func (m *TutorialModel) layout() {
	w := m.bodyWidth()
	m.markdown.SetWidth(max(w-2, 20))
	m.help.Width = m.width

	h := m.height - chromeRows - lipgloss.Height(m.renderFooter())
	if m.screen.snippetVisible {
		h -= lipgloss.Height(m.renderPanel())
	}
	m.viewport.Width = w
	m.viewport.Height = max(h, 3)

	sec := m.screen.frame.Section
	m.viewport.SetContent(m.markdown.RenderSection(sec.ID, sec.Content))
}

// View renders the tour.
func (m TutorialModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(RenderDivider(m.width, m.theme))
	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render(m.screen.frame.Section.Title))
	b.WriteString("\n")

	body := m.viewport.View()
	if m.tocVisible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderTOC(), " ", body)
	}
	b.WriteString(body)
	b.WriteString("\n")

	if m.screen.snippetVisible {
		b.WriteString(m.renderPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.renderActions())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title, [i/n] counter and progress bar.
func (m TutorialModel) renderHeader() string {
	f := m.screen.frame
	title := m.theme.Title.Render("📚 Weave Evaluations Tutorial")
	counter := m.theme.Desc.Render(fmt.Sprintf("[%d/%d]", f.Index+1, f.Total))
	pct := m.theme.Desc.Render(fmt.Sprintf("%3.0f%%", f.Progress*100))
	return title + "  " + counter + " " + RenderProgressBar(f.Index, f.Total, m.theme) + " " + pct
}

// renderTOC renders the contents sidebar with focus indication.
func (m TutorialModel) renderTOC() string {
	r := m.theme.Renderer

	borderColor := m.theme.Border
	if m.focus == focusTutorialTOC {
		borderColor = m.theme.Primary
	}
	tocStyle := r.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(tocInnerWidth)

	itemStyle := r.NewStyle().Foreground(m.theme.Subtext)
	selectedStyle := r.NewStyle().Bold(true).Foreground(m.theme.Primary)
	cursorStyle := r.NewStyle().
		Bold(true).
		Foreground(m.theme.Info).
		Background(m.theme.Highlight)
	viewedStyle := r.NewStyle().Foreground(m.theme.Success)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Contents"))
	if m.focus == focusTutorialTOC {
		b.WriteString(r.NewStyle().Foreground(m.theme.Primary).Render(" ●"))
	}
	b.WriteString("\n")

	current := m.viewer.Current()
	for i := 0; i < m.viewer.Count(); i++ {
		sec := m.store.SectionAt(i)

		prefix := "  "
		style := itemStyle
		switch {
		case m.focus == focusTutorialTOC && i == m.tocCursor:
			prefix = "→ "
			style = cursorStyle
		case i == current:
			prefix = "▶ "
			style = selectedStyle
		}

		title := truncateRunesHelper(sec.Title, tocInnerWidth-4, "…")
		viewed := "  "
		if m.visited[sec.ID] {
			viewed = viewedStyle.Render(" ✓")
		}
		b.WriteString(style.Render(prefix+padRight(title, tocInnerWidth-4)) + viewed)
		b.WriteString("\n")
	}

	return tocStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderPanel renders the snippet box, capped to half the screen.
func (m TutorialModel) renderPanel() string {
	header := m.theme.Title.Render("Code Example") + "  " +
		m.hint(m.keys.Copy, false) + m.sep() + m.hint(m.keys.Run, false) + m.sep() + m.hint(m.keys.Hide, false)

	lines := strings.Split(strings.TrimRight(m.screen.snippet, "\n"), "\n")
	maxLines := max(m.height/2-4, 3)
	if m.runOutput != "" {
		maxLines = max(maxLines-2, 1)
	}
	if len(lines) > maxLines {
		hidden := len(lines) - maxLines
		lines = append(lines[:maxLines:maxLines],
			m.theme.Desc.Render(fmt.Sprintf("… %d more lines (c to copy all)", hidden)))
	}

	body := header + "\n" + strings.Join(lines, "\n")
	if m.runOutput != "" {
		body += "\n\n" + m.theme.RunOutput.Render("▶ "+m.runOutput)
	}

	return m.theme.Panel.Width(max(m.width-2, 20)).Render(body)
}

// renderActions lists the current section's numbered actions.
func (m TutorialModel) renderActions() string {
	actions := m.screen.frame.Section.Actions
	if len(actions) == 0 {
		return m.theme.Desc.Render("No actions on this section")
	}
	parts := make([]string, 0, len(actions))
	for i, a := range actions {
		if i >= 9 {
			break
		}
		parts = append(parts, m.theme.Key.Render(fmt.Sprintf("%d", i+1))+" "+m.theme.Desc.Render(a.Label))
	}
	return m.theme.Renderer.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, m.sep()))
}

// renderFooter renders navigation hints. Prev/next are struck through at
// either end of the tour.
func (m TutorialModel) renderFooter() string {
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}

	f := m.screen.frame
	hints := []string{
		m.hint(m.keys.Prev, f.PrevDisabled),
		m.hint(m.keys.Next, f.NextDisabled),
		m.hint(m.keys.Down, false),
		m.hint(m.keys.TOC, false),
		m.hint(m.keys.Restart, false),
		m.hint(m.keys.Download, false),
		m.hint(m.keys.Help, false),
		m.hint(m.keys.Quit, false),
	}
	return m.theme.Renderer.NewStyle().MaxWidth(m.width).Render(strings.Join(hints, m.sep()))
}

func (m TutorialModel) hint(b key.Binding, disabled bool) string {
	h := b.Help()
	if disabled {
		return m.theme.KeyOff.Render(h.Key + " " + h.Desc)
	}
	return m.theme.Key.Render(h.Key) + m.theme.Desc.Render(" "+h.Desc)
}

func (m TutorialModel) sep() string {
	return m.theme.Sep.Render(" │ ")
}

// SetSize sets the tour dimensions.
func (m *TutorialModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.layout()
}

// SetTheme swaps the lipgloss theme.
func (m *TutorialModel) SetTheme(t Theme) {
	m.theme = t
	m.help.Styles.ShortKey = t.Key
	m.help.Styles.ShortDesc = t.Desc
	m.help.Styles.FullKey = t.Key
	m.help.Styles.FullDesc = t.Desc
	m.help.Styles.ShortSeparator = t.Sep
	m.help.Styles.FullSeparator = t.Sep
}

// SetGlamourStyle switches the markdown style and re-renders the body.
func (m *TutorialModel) SetGlamourStyle(style string) {
	m.markdown.SetStyle(style)
	m.layout()
}

// JumpToSection moves to the section with the given ID.
func (m *TutorialModel) JumpToSection(id string) bool {
	i, ok := m.store.IndexOf(id)
	if !ok {
		return false
	}
	moved := m.viewer.JumpTo(i)
	m.sync()
	return moved
}

// ShowTOC opens or closes the contents sidebar without focusing it.
func (m *TutorialModel) ShowTOC(show bool) {
	m.tocVisible = show
	m.focus = focusTutorialContent
	m.layout()
}

// Frame returns the frame currently shown.
func (m TutorialModel) Frame() tutorial.Frame { return m.screen.frame }

// CurrentIndex returns the index of the section shown.
func (m TutorialModel) CurrentIndex() int { return m.viewer.Current() }

// SnippetVisible reports whether the snippet panel is open.
func (m TutorialModel) SnippetVisible() bool { return m.screen.snippetVisible }

// SnippetText returns the text in the snippet panel.
func (m TutorialModel) SnippetText() string { return m.screen.snippet }

// RunOutput returns the simulated run output shown under the snippet.
func (m TutorialModel) RunOutput() string { return m.runOutput }

// TOCVisible reports whether the contents sidebar is open.
func (m TutorialModel) TOCVisible() bool { return m.tocVisible }

// Visited reports whether the section with id has been shown.
func (m TutorialModel) Visited(id string) bool { return m.visited[id] }
