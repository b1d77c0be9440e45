package tutorial

import "fmt"

// Frame is everything a surface needs to draw the active section.
type Frame struct {
	Index        int     `json:"index"`
	Total        int     `json:"total"`
	Section      Section `json:"section"`
	Progress     float64 `json:"progress"` // (Index+1)/Total, in (0, 1]
	Counter      string  `json:"counter"`  // "<Index+1> / <Total>"
	PrevDisabled bool    `json:"prev_disabled"`
	NextDisabled bool    `json:"next_disabled"`
}

// Display is the primary surface that shows the active section.
type Display interface {
	ShowFrame(Frame)
}

// Scroller is implemented by displays that can jump back to the top.
// Viewer calls it after every render; it is best effort.
type Scroller interface {
	ScrollToTop()
}

// Hider is anything Restart should close, normally a *Presenter.
type Hider interface {
	Hide()
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(Frame)

// ShowFrame calls f.
func (f DisplayFunc) ShowFrame(fr Frame) { f(fr) }

// Viewer owns the pagination state for one surface.
type Viewer struct {
	store   *Store
	display Display
	panel   Hider // optional, hidden on Restart
	current int
	frame   Frame
}

// NewViewer creates a viewer positioned at the first section. It does not
// render until Initialize is called.
func NewViewer(store *Store, display Display) *Viewer {
	if display == nil {
		display = DisplayFunc(func(Frame) {})
	}
	return &Viewer{store: store, display: display}
}

// WithPanel attaches the snippet panel that Restart hides.
func (v *Viewer) WithPanel(p Hider) *Viewer {
	v.panel = p
	return v
}

// Initialize resets to the first section and renders it.
func (v *Viewer) Initialize() {
	v.current = 0
	v.render()
}

// Navigate moves by delta sections. Targets outside the store are ignored
// and Navigate reports false; it never wraps.
func (v *Viewer) Navigate(delta int) bool {
	return v.JumpTo(v.current + delta)
}

// Next is Navigate(1).
func (v *Viewer) Next() bool { return v.Navigate(1) }

// Prev is Navigate(-1).
func (v *Viewer) Prev() bool { return v.Navigate(-1) }

// JumpTo moves to an absolute index with the same bounds policy as Navigate.
func (v *Viewer) JumpTo(index int) bool {
	if index < 0 || index >= v.store.Count() {
		return false
	}
	v.current = index
	v.render()
	return true
}

// Restart returns to the first section and hides the snippet panel.
func (v *Viewer) Restart() {
	v.Initialize()
	if v.panel != nil {
		v.panel.Hide()
	}
}

// Current returns the active index.
func (v *Viewer) Current() int { return v.current }

// Count returns the number of sections.
func (v *Viewer) Count() int { return v.store.Count() }

// Section returns the active section.
func (v *Viewer) Section() Section { return v.store.SectionAt(v.current) }

// Frame returns the most recently rendered frame.
func (v *Viewer) Frame() Frame { return v.frame }

func (v *Viewer) render() {
	total := v.store.Count()
	v.frame = Frame{
		Index:        v.current,
		Total:        total,
		Section:      v.store.SectionAt(v.current),
		Progress:     float64(v.current+1) / float64(total),
		Counter:      fmt.Sprintf("%d / %d", v.current+1, total),
		PrevDisabled: v.current == 0,
		NextDisabled: v.current == total-1,
	}
	v.display.ShowFrame(v.frame)
	if s, ok := v.display.(Scroller); ok {
		s.ScrollToTop()
	}
}
