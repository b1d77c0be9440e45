package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/weavetour/internal/browser"
	"github.com/vanderheijden86/weavetour/pkg/config"
	"github.com/vanderheijden86/weavetour/pkg/debug"
	"github.com/vanderheijden86/weavetour/pkg/export"
	"github.com/vanderheijden86/weavetour/pkg/tutorial"
	"github.com/vanderheijden86/weavetour/pkg/watcher"
)

// ConfigChangedMsg is sent when the config file changes on disk
type ConfigChangedMsg struct{}

// configLoadedMsg carries the result of re-reading the config file.
type configLoadedMsg struct {
	cfg config.Config
	err error
}

// effectDoneMsg reports the outcome of a side effect run outside the loop.
type effectDoneMsg struct {
	status string
	err    error
}

// WatchConfigCmd returns a command that waits for config changes and sends ConfigChangedMsg
func WatchConfigCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		return ConfigChangedMsg{}
	}
}

// Effects are the host operations the tour can request. Tests replace them.
type Effects struct {
	OpenURL     func(url string) error
	SaveSummary func(dir string) (string, error)
	Copy        func(text string) error
}

// DefaultEffects wires the real browser, filesystem and clipboard.
func DefaultEffects() Effects {
	return Effects{
		OpenURL:     browser.Open,
		SaveSummary: export.SaveSummary,
		Copy:        export.CopyToClipboard,
	}
}

// Options configures NewModel.
type Options struct {
	Store      *tutorial.Store
	Snippets   tutorial.SnippetTable
	Config     config.Config
	ConfigPath string
	Watcher    *watcher.Watcher // optional; enables config hot reload
	Effects    Effects
}

// Model is the top-level bubbletea model: the tour plus a status line and
// the host side effects it requests.
type Model struct {
	tour    TutorialModel
	keys    keyMap
	cfg     config.Config
	cfgPath string
	watcher *watcher.Watcher
	effects Effects

	statusMsg     string
	statusIsError bool

	width  int
	height int
}

// NewModel builds the root model. Zero-valued Options fields fall back to
// the built-in tutorial and the default effects.
func NewModel(opts Options) Model {
	if opts.Store == nil {
		opts.Store = tutorial.DefaultStore()
	}
	if opts.Snippets.Len() == 0 {
		opts.Snippets = tutorial.DefaultSnippets()
	}
	if opts.Effects.OpenURL == nil || opts.Effects.SaveSummary == nil || opts.Effects.Copy == nil {
		def := DefaultEffects()
		if opts.Effects.OpenURL == nil {
			opts.Effects.OpenURL = def.OpenURL
		}
		if opts.Effects.SaveSummary == nil {
			opts.Effects.SaveSummary = def.SaveSummary
		}
		if opts.Effects.Copy == nil {
			opts.Effects.Copy = def.Copy
		}
	}

	tour := NewTutorialModel(opts.Store, opts.Snippets, ThemeFor(opts.Config.UI.Theme), opts.Config.UI.GlamourStyle)
	m := Model{
		tour:    tour,
		keys:    defaultKeyMap(),
		cfg:     opts.Config,
		cfgPath: opts.ConfigPath,
		watcher: opts.Watcher,
		effects: opts.Effects,
		width:   80,
		height:  24,
	}

	if id := opts.Config.UI.StartSection; id != "" {
		if !m.tour.JumpToSection(id) {
			m.setStatus(fmt.Sprintf("Unknown section %q", id), true)
		}
	}
	if opts.Config.UI.ShowTOC {
		m.tour.ShowTOC(true)
	}
	m.tour.SetSize(m.width, m.height-1)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return WatchConfigCmd(m.watcher)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tour.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.statusMsg = ""
		m.statusIsError = false
		var cmd tea.Cmd
		m.tour, cmd = m.tour.Update(msg)
		return m, cmd

	case OpenLinkMsg:
		open := m.effects.OpenURL
		return m, func() tea.Msg {
			if err := open(msg.URL); err != nil {
				return effectDoneMsg{err: fmt.Errorf("opening link: %w", err)}
			}
			return effectDoneMsg{status: "🌐 Opened " + msg.URL}
		}

	case DownloadSummaryMsg:
		save, dir := m.effects.SaveSummary, m.cfg.Export.Dir
		return m, func() tea.Msg {
			path, err := save(dir)
			if err != nil {
				return effectDoneMsg{err: err}
			}
			return effectDoneMsg{status: "📄 Saved summary to " + path}
		}

	case CopySnippetMsg:
		cp := m.effects.Copy
		return m, func() tea.Msg {
			if err := cp(msg.Text); err != nil {
				return effectDoneMsg{err: err}
			}
			return effectDoneMsg{status: "📋 Copied snippet to clipboard"}
		}

	case effectDoneMsg:
		if msg.err != nil {
			debug.Log("ui: %v", msg.err)
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus(msg.status, false)
		}
		return m, nil

	case ConfigChangedMsg:
		path := m.cfgPath
		reload := func() tea.Msg {
			cfg, err := config.LoadFrom(path)
			if err == nil {
				err = cfg.Validate()
			}
			return configLoadedMsg{cfg: cfg, err: err}
		}
		if m.watcher == nil {
			return m, reload
		}
		return m, tea.Batch(reload, WatchConfigCmd(m.watcher))

	case configLoadedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Config not reloaded: %v", msg.err), true)
			return m, nil
		}
		m.applyConfig(msg.cfg)
		m.setStatus("Config reloaded", false)
		return m, nil
	}

	return m, nil
}

// applyConfig applies the settings that can change while running.
func (m *Model) applyConfig(cfg config.Config) {
	if cfg.UI.Theme != m.cfg.UI.Theme {
		m.tour.SetTheme(ThemeFor(cfg.UI.Theme))
	}
	m.tour.SetGlamourStyle(cfg.UI.GlamourStyle)
	m.cfg = cfg
	debug.Log("ui: config applied (theme=%s style=%s)", cfg.UI.Theme, cfg.UI.GlamourStyle)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsError = isErr
}

func (m Model) View() string {
	return m.tour.View() + "\n" + m.renderStatus()
}

func (m Model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	style := m.tour.theme.StatusOK
	if m.statusIsError {
		style = m.tour.theme.StatusErr
	}
	return style.Render(truncateRunesHelper(m.statusMsg, max(m.width, 10), "…"))
}

// Tour exposes the tour model, mainly for tests.
func (m Model) Tour() TutorialModel { return m.tour }

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) { return m.statusMsg, m.statusIsError }

// Config returns the active configuration.
func (m Model) Config() config.Config { return m.cfg }
