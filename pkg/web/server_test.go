package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Options{})
	require.NoError(t, err)
	return s
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestIndex_FirstSection(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Introduction to Weave Evaluations")
	assert.Contains(t, body, "1 / 9")
	assert.Regexp(t, `id="prev"><button class="btn" type="submit" disabled>`, body)
	assert.NotContains(t, body, `id="playground"`)
}

func TestNavigate(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/navigate?delta=1")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 1, s.State().Frame.Index)

	// Out of range is ignored.
	do(t, s, http.MethodPost, "/navigate?delta=-5")
	assert.Equal(t, 1, s.State().Frame.Index)

	do(t, s, http.MethodPost, "/navigate?delta=-1")
	assert.Equal(t, 0, s.State().Frame.Index)
	assert.True(t, s.State().Frame.PrevDisabled)
}

func TestNavigate_BadDelta(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/navigate?delta=forward")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, s.State().Frame.Index)
}

func TestJump(t *testing.T) {
	s := newTestServer(t)

	do(t, s, http.MethodPost, "/jump/8")
	f := s.State().Frame
	assert.Equal(t, 8, f.Index)
	assert.Equal(t, "conclusion", f.Section.ID)
	assert.True(t, f.NextDisabled)
	assert.Equal(t, 1.0, f.Progress)

	do(t, s, http.MethodPost, "/jump/42")
	assert.Equal(t, 8, s.State().Frame.Index)

	rec := do(t, s, http.MethodPost, "/jump/last")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSnippetLifecycle(t *testing.T) {
	s := newTestServer(t)

	do(t, s, http.MethodPost, "/snippet/"+tutorial.SnippetSetup)
	st := s.State().Snippet
	assert.True(t, st.Visible)
	want, _ := tutorial.DefaultSnippets().Lookup(tutorial.SnippetSetup)
	assert.Equal(t, want, st.Text)

	do(t, s, http.MethodPost, "/snippet/run")
	assert.Equal(t, tutorial.SimulatedRunOutput, s.State().Snippet.RunOutput)

	body := do(t, s, http.MethodGet, "/").Body.String()
	assert.Contains(t, body, `id="playground"`)
	assert.Contains(t, body, "Code execution simulated!")

	do(t, s, http.MethodPost, "/snippet/hide")
	st = s.State().Snippet
	assert.False(t, st.Visible)
	assert.Empty(t, st.RunOutput)
}

func TestSnippet_UnknownKey(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/snippet/nope")
	st := s.State().Snippet
	assert.True(t, st.Visible)
	assert.Equal(t, tutorial.FallbackSnippet, st.Text)
}

func TestRunWithoutSnippet(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/snippet/run")
	assert.Empty(t, s.State().Snippet.RunOutput)
}

func TestSnippetSurvivesNavigation(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/jump/1")
	do(t, s, http.MethodPost, "/snippet/"+tutorial.SnippetSetup)
	do(t, s, http.MethodPost, "/navigate?delta=1")
	assert.True(t, s.State().Snippet.Visible)
}

func TestRestart(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/jump/8")
	do(t, s, http.MethodPost, "/snippet/"+tutorial.SnippetTemplate)

	do(t, s, http.MethodPost, "/restart")
	st := s.State()
	assert.Equal(t, 0, st.Frame.Index)
	assert.False(t, st.Snippet.Visible)
}

func TestMutate_JSONAccept(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/navigate?delta=1", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var st State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 1, st.Frame.Index)
	assert.Equal(t, "2 / 9", st.Frame.Counter)
}

func TestAPIState(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/state")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	frame := raw["frame"].(map[string]any)
	assert.Equal(t, "1 / 9", frame["counter"])
	section := frame["section"].(map[string]any)
	assert.Equal(t, "intro", section["id"])
	assert.NotContains(t, section, "Content")
}

func TestProgressSVG(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/jump/4")
	rec := do(t, s, http.MethodGet, "/progress.svg")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	body := rec.Body.String()
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "5 / 9")
}

func TestSummaryDownload(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/summary.md")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="weave-evaluations-summary.md"`, rec.Header().Get("Content-Disposition"))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, tutorial.DownloadSummary().Content, body)
}

func TestSummaryDownload_IndependentOfPosition(t *testing.T) {
	s := newTestServer(t)
	first := do(t, s, http.MethodGet, "/summary.md").Body.String()
	do(t, s, http.MethodPost, "/jump/5")
	assert.Equal(t, first, do(t, s, http.MethodGet, "/summary.md").Body.String())
}

func TestSummaryPage(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/summary")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<h1 id="weave-evaluations-tutorial-summary">`)
	assert.Contains(t, body, "<li>Start simple, iterate fast</li>")
}

func TestConclusionActions(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/jump/8")
	body := do(t, s, http.MethodGet, "/").Body.String()

	assert.Contains(t, body, `href="https://github.com/wandb/openui" target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, body, `action="/restart"`)
	assert.Contains(t, body, `href="/summary.md" download`)
	assert.Contains(t, body, `action="/snippet/template"`)
	assert.Regexp(t, `id="next"><button class="btn" type="submit" disabled>`, body)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/navigate?delta=1")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestConcurrentRequests(t *testing.T) {
	s := newTestServer(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			delta := "1"
			if i%2 == 0 {
				delta = "-1"
			}
			do(t, s, http.MethodPost, "/navigate?delta="+delta)
			do(t, s, http.MethodGet, "/")
		}(i)
	}
	wg.Wait()

	f := s.State().Frame
	assert.GreaterOrEqual(t, f.Index, 0)
	assert.Less(t, f.Index, f.Total)
	assert.True(t, strings.HasSuffix(f.Counter, "/ 9"))
}
