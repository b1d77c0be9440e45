package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.Theme != ThemeAuto {
		t.Errorf("expected default theme %q, got %q", ThemeAuto, cfg.UI.Theme)
	}
	if cfg.UI.GlamourStyle != "dracula" {
		t.Errorf("expected glamour style 'dracula', got %q", cfg.UI.GlamourStyle)
	}
	if cfg.Export.Dir != "." {
		t.Errorf("expected export dir '.', got %q", cfg.Export.Dir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.UI.GlamourStyle != "dracula" {
		t.Errorf("expected default config, got style %q", cfg.UI.GlamourStyle)
	}
}

func TestLoadFrom_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `ui:
  theme: light
  glamour_style: notty
  start_section: scoring
  show_toc: true
export:
  dir: /tmp/summaries
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != ThemeLight {
		t.Errorf("expected theme light, got %q", cfg.UI.Theme)
	}
	if cfg.UI.GlamourStyle != "notty" {
		t.Errorf("expected style notty, got %q", cfg.UI.GlamourStyle)
	}
	if cfg.UI.StartSection != "scoring" {
		t.Errorf("expected start section scoring, got %q", cfg.UI.StartSection)
	}
	if !cfg.UI.ShowTOC {
		t.Error("expected show_toc true")
	}
	if cfg.Export.Dir != "/tmp/summaries" {
		t.Errorf("expected export dir /tmp/summaries, got %q", cfg.Export.Dir)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Server.Addr != DefaultConfig().Server.Addr {
		t.Errorf("expected default server addr, got %q", cfg.Server.Addr)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("WEAVETOUR_UI_GLAMOUR_STYLE", "light")
	t.Setenv("WEAVETOUR_SERVER_ADDR", ":9999")

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.GlamourStyle != "light" {
		t.Errorf("expected env style override, got %q", cfg.UI.GlamourStyle)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("expected env addr override, got %q", cfg.Server.Addr)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.UI.Theme = ThemeDark
	cfg.UI.StartSection = "datasets"
	cfg.Export.Dir = "/srv/out"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("save error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty theme", func(c *Config) { c.UI.Theme = "" }, false},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, true},
		{"empty export dir", func(c *Config) { c.Export.Dir = "" }, true},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	want := filepath.Join("/custom/config", "weavetour", "config.yaml")
	if got := ConfigPath(); got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandHome("~/exports"); got != filepath.Join(home, "exports") {
		t.Errorf("expandHome(~/exports) = %q", got)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("expandHome should leave absolute paths alone, got %q", got)
	}
}
