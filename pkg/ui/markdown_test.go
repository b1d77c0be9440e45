package ui

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vanderheijden86/weavetour/pkg/debug"
	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

func TestMarkdownRendererRendersSections(t *testing.T) {
	mr := NewMarkdownRenderer("notty", 60)

	for _, sec := range tutorial.DefaultSections() {
		out := mr.RenderSection(sec.ID, sec.Content)
		if strings.TrimSpace(out) == "" {
			t.Errorf("%s: empty render", sec.ID)
		}
		if strings.Contains(out, "<h3>") || strings.Contains(out, "</p>") {
			t.Errorf("%s: HTML leaked into terminal output", sec.ID)
		}
	}
}

func TestMarkdownRendererCache(t *testing.T) {
	mr := NewMarkdownRenderer("notty", 60)

	first := mr.RenderSection("k", "<p>one</p>")
	second := mr.RenderSection("k", "<p>two</p>")
	if first != second {
		t.Error("expected cached output for the same key")
	}

	mr.SetWidth(40)
	if got := mr.RenderSection("k", "<p>two</p>"); !strings.Contains(got, "two") {
		t.Errorf("expected cache dropped on width change, got %q", got)
	}
}

func TestMarkdownRendererTracesCacheMisses(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	debug.SetLogger(zap.New(core))
	t.Cleanup(func() { debug.SetLogger(nil) })

	mr := NewMarkdownRenderer("notty", 60)
	mr.RenderSection("intro", "<p>hello</p>")
	mr.RenderSection("intro", "<p>hello</p>")

	enters := logs.FilterMessage("-> markdown: render intro").Len()
	if enters != 1 {
		t.Errorf("expected one traced render, got %d", enters)
	}
}

func TestMarkdownRendererUnknownStyleFallsBack(t *testing.T) {
	mr := NewMarkdownRenderer("no-such-style", 60)
	if mr.renderer == nil {
		t.Fatal("expected fallback renderer")
	}
	if got := mr.RenderSection("k", "<p>hello</p>"); !strings.Contains(got, "hello") {
		t.Errorf("unexpected output %q", got)
	}
	if mr.Style() != "no-such-style" {
		t.Error("configured style name should be kept")
	}
}
