// Package web serves the tutorial to a browser. One Viewer backs every
// request; a mutex serializes access so each request sees a consistent
// frame.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const shutdownTimeout = 5 * time.Second

// page receives viewer and presenter output for the next GET /.
type page struct {
	frame          tutorial.Frame
	snippet        string
	snippetVisible bool
	runOutput      string
}

func (p *page) ShowFrame(f tutorial.Frame) { p.frame = f }

func (p *page) ShowSnippet(text string, visible bool) {
	p.snippet = text
	p.snippetVisible = visible
	p.runOutput = ""
}

// State is the JSON view of the current page.
type State struct {
	Frame   tutorial.Frame `json:"frame"`
	Snippet SnippetState   `json:"snippet"`
}

// SnippetState describes the playground panel.
type SnippetState struct {
	Visible   bool   `json:"visible"`
	Text      string `json:"text,omitempty"`
	RunOutput string `json:"run_output,omitempty"`
}

// pageData feeds page.html.tmpl.
type pageData struct {
	Frame          tutorial.Frame
	Sections       []tutorial.Section
	Content        template.HTML
	Snippet        string
	SnippetVisible bool
	RunOutput      string
}

// Options configures a Server.
type Options struct {
	Store    *tutorial.Store
	Snippets tutorial.SnippetTable
	Logger   *zap.Logger
}

// Server is the browser surface for the tutorial.
type Server struct {
	mu        sync.Mutex
	store     *tutorial.Store
	viewer    *tutorial.Viewer
	presenter *tutorial.Presenter
	page      *page

	tmpl        *template.Template
	summaryHTML template.HTML
	logger      *zap.Logger
	router      chi.Router
}

// New creates a server positioned on the first section.
func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		opts.Store = tutorial.DefaultStore()
	}
	if opts.Snippets.Len() == 0 {
		opts.Snippets = tutorial.DefaultSnippets()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	summary, err := renderSummaryHTML()
	if err != nil {
		return nil, err
	}

	p := &page{}
	presenter := tutorial.NewPresenter(opts.Snippets, p)
	s := &Server{
		store:       opts.Store,
		viewer:      tutorial.NewViewer(opts.Store, p).WithPanel(presenter),
		presenter:   presenter,
		page:        p,
		tmpl:        tmpl,
		summaryHTML: summary,
		logger:      opts.Logger,
	}
	s.viewer.Initialize()
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  zap.NewStdLog(s.logger),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Get("/progress.svg", s.handleProgress)
	r.Get("/api/state", s.handleState)
	r.Get("/summary", s.handleSummaryPage)
	r.Get("/summary.md", s.handleSummaryDownload)

	r.Post("/navigate", s.handleNavigate)
	r.Post("/jump/{index}", s.handleJump)
	r.Post("/restart", s.handleRestart)
	r.Post("/snippet/hide", s.handleHide)
	r.Post("/snippet/run", s.handleRun)
	r.Post("/snippet/{key}", s.handleSnippet)

	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// State returns the current page state.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Server) stateLocked() State {
	return State{
		Frame: s.page.frame,
		Snippet: SnippetState{
			Visible:   s.page.snippetVisible,
			Text:      s.page.snippet,
			RunOutput: s.page.runOutput,
		},
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data := pageData{
		Frame:          s.page.frame,
		Sections:       s.store.Sections(),
		Content:        template.HTML(s.page.frame.Section.Content),
		Snippet:        s.page.snippet,
		SnippetVisible: s.page.snippetVisible,
		RunOutput:      s.page.runOutput,
	}
	s.mu.Unlock()

	s.render(w, "page.html.tmpl", data)
}

func (s *Server) handleSummaryPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "summary.html.tmpl", s.summaryHTML)
}

// render executes into a buffer first so a template error still yields a 500.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("rendering template", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	f := s.page.frame
	s.mu.Unlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	writeProgressSVG(w, f)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	data, err := json.Marshal(s.State())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}

func (s *Server) handleSummaryDownload(w http.ResponseWriter, r *http.Request) {
	art := tutorial.DownloadSummary()
	w.Header().Set("Content-Type", art.MediaType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(art.Content)))
	w.Write(art.Content)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	delta, err := strconv.Atoi(r.URL.Query().Get("delta"))
	if err != nil {
		http.Error(w, "delta must be an integer", http.StatusBadRequest)
		return
	}
	s.mutate(w, r, func() { s.viewer.Navigate(delta) })
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "index must be an integer", http.StatusBadRequest)
		return
	}
	s.mutate(w, r, func() { s.viewer.JumpTo(index) })
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, s.viewer.Restart)
}

func (s *Server) handleSnippet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	s.mutate(w, r, func() { s.presenter.ShowSnippet(key) })
}

func (s *Server) handleHide(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, s.presenter.Hide)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func() {
		if s.page.snippetVisible {
			s.page.runOutput = s.presenter.Run()
		}
	})
}

// mutate applies fn under the lock, then answers like a form post: a 303
// back to the page, or the new state as JSON when the client asks for it.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func()) {
	s.mu.Lock()
	fn()
	state := s.stateLocked()
	s.mu.Unlock()

	if r.Header.Get("Accept") == "application/json" {
		data, err := json.Marshal(state)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
