package tutorial

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type recordingDisplay struct {
	frames   []Frame
	scrolled int
}

func (d *recordingDisplay) ShowFrame(f Frame) { d.frames = append(d.frames, f) }
func (d *recordingDisplay) ScrollToTop()      { d.scrolled++ }

func (d *recordingDisplay) last() Frame { return d.frames[len(d.frames)-1] }

func sevenSectionStore(t testing.TB) *Store {
	var sections []Section
	for i := 0; i < 7; i++ {
		sections = append(sections, Section{
			ID:      fmt.Sprintf("s%d", i),
			Title:   fmt.Sprintf("Section %d", i),
			Content: fmt.Sprintf("<p>body %d</p>", i),
		})
	}
	s, err := NewStore(sections)
	require.NoError(t, err)
	return s
}

func TestViewerInitializeRendersFirstSection(t *testing.T) {
	d := &recordingDisplay{}
	v := NewViewer(sevenSectionStore(t), d)
	v.Initialize()

	require.Len(t, d.frames, 1)
	f := d.last()
	assert.Equal(t, 0, f.Index)
	assert.Equal(t, "s0", f.Section.ID)
	assert.Equal(t, "1 / 7", f.Counter)
	assert.InDelta(t, 1.0/7.0, f.Progress, 1e-9)
	assert.True(t, f.PrevDisabled)
	assert.False(t, f.NextDisabled)
	assert.Equal(t, 1, d.scrolled)
}

func TestViewerThreeStepsForward(t *testing.T) {
	d := &recordingDisplay{}
	v := NewViewer(sevenSectionStore(t), d)
	v.Initialize()

	for i := 0; i < 3; i++ {
		require.True(t, v.Navigate(1))
	}

	assert.Equal(t, 3, v.Current())
	assert.Equal(t, "4 / 7", v.Frame().Counter)
	assert.InDelta(t, 4.0/7.0, v.Frame().Progress, 1e-9)
	assert.Equal(t, v.Frame(), d.last())
}

func TestViewerBoundariesAreNoOps(t *testing.T) {
	d := &recordingDisplay{}
	v := NewViewer(sevenSectionStore(t), d)
	v.Initialize()

	assert.False(t, v.Navigate(-1))
	assert.Equal(t, 0, v.Current())
	assert.Len(t, d.frames, 1, "ignored navigation must not re-render")

	require.True(t, v.JumpTo(6))
	assert.True(t, v.Frame().NextDisabled)
	assert.False(t, v.Frame().PrevDisabled)

	assert.False(t, v.Next())
	assert.Equal(t, 6, v.Current())
	assert.False(t, v.Navigate(100))
	assert.False(t, v.JumpTo(-3))
	assert.Equal(t, 6, v.Current())
}

func TestViewerRestartHidesPanel(t *testing.T) {
	var visible bool
	p := NewPresenter(DefaultSnippets(), SnippetPanelFunc(func(_ string, vis bool) { visible = vis }))
	v := NewViewer(DefaultStore(), nil).WithPanel(p)
	v.Initialize()
	v.JumpTo(4)
	p.ShowSnippet(SnippetModels)
	require.True(t, visible)

	v.Restart()

	assert.Equal(t, 0, v.Current())
	assert.False(t, visible)
	assert.False(t, p.Visible())
}

func TestViewerDoesNotTouchPresenter(t *testing.T) {
	v := NewViewer(DefaultStore(), nil)
	v.Initialize()
	v.Next()
	p := NewPresenter(DefaultSnippets(), nil)
	p.ShowSnippet(SnippetAdvanced)
	p.ShowSnippet("missing")
	assert.Equal(t, 1, v.Current())
}

func TestViewerNavigationProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "sections")
		var sections []Section
		for i := 0; i < n; i++ {
			sections = append(sections, Section{ID: fmt.Sprintf("id-%d", i), Title: "t"})
		}
		store, err := NewStore(sections)
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}

		d := &recordingDisplay{}
		v := NewViewer(store, d)
		v.Initialize()

		moves := rapid.SliceOf(rapid.IntRange(-3, 3)).Draw(t, "moves")
		want := 0
		for _, delta := range moves {
			moved := v.Navigate(delta)
			if target := want + delta; target >= 0 && target < n {
				want = target
				if !moved {
					t.Fatalf("Navigate(%d) from %d should move", delta, target-delta)
				}
			} else if moved {
				t.Fatalf("Navigate(%d) out of range reported a move", delta)
			}
		}

		if v.Current() != want {
			t.Fatalf("current = %d, want %d", v.Current(), want)
		}
		f := d.last()
		if f.Counter != fmt.Sprintf("%d / %d", want+1, n) {
			t.Fatalf("counter = %q", f.Counter)
		}
		if f.Progress != float64(want+1)/float64(n) {
			t.Fatalf("progress = %v", f.Progress)
		}
		if f.Progress <= 0 || f.Progress > 1 {
			t.Fatalf("progress out of (0,1]: %v", f.Progress)
		}
		if f.PrevDisabled != (want == 0) {
			t.Fatalf("prev disabled = %v at %d", f.PrevDisabled, want)
		}
		if f.NextDisabled != (want == n-1) {
			t.Fatalf("next disabled = %v at %d of %d", f.NextDisabled, want, n)
		}
	})
}
