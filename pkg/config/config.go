// Package config handles loading and saving weavetour configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/weavetour/config.yaml
//
// Values are layered: defaults, then the YAML file, then WEAVETOUR_*
// environment variables (WEAVETOUR_UI_THEME -> ui.theme,
// WEAVETOUR_EXPORT_DIR -> export.dir).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	appName   = "weavetour"
	envPrefix = "WEAVETOUR_"
)

// Theme selects the terminal color scheme.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	Theme        Theme  `yaml:"theme,omitempty" koanf:"theme"`
	GlamourStyle string `yaml:"glamour_style,omitempty" koanf:"glamour_style"` // dracula, dark, light, notty...
	StartSection string `yaml:"start_section,omitempty" koanf:"start_section"` // section ID to open first
	ShowTOC      bool   `yaml:"show_toc,omitempty" koanf:"show_toc"`
}

// ExportConfig controls where the summary artifact is written.
type ExportConfig struct {
	Dir string `yaml:"dir,omitempty" koanf:"dir"`
}

// ServerConfig holds settings for the browser surface.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty" koanf:"addr"`
}

// Config is the top-level configuration for weavetour.
type Config struct {
	UI     UIConfig     `yaml:"ui,omitempty" koanf:"ui"`
	Export ExportConfig `yaml:"export,omitempty" koanf:"export"`
	Server ServerConfig `yaml:"server,omitempty" koanf:"server"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Theme:        ThemeAuto,
			GlamourStyle: "dracula",
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8420",
		},
	}
}

// ConfigDir returns the XDG config directory for weavetour.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig (plus env overrides) if the file doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from a specific path, then overlays WEAVETOUR_*
// environment variables. A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return cfg, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Export.Dir = expandHome(cfg.Export.Dir)
	return cfg, nil
}

// envKey maps WEAVETOUR_UI_GLAMOUR_STYLE to ui.glamour_style. The first
// underscore separates the section from the field.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, field, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + field
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

var validThemes = map[Theme]bool{
	ThemeAuto:  true,
	ThemeDark:  true,
	ThemeLight: true,
}

// Validate checks that the configuration contains valid values.
func (c Config) Validate() error {
	if c.UI.Theme != "" && !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid ui.theme %q: must be one of auto, dark, light", c.UI.Theme)
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("export.dir is required")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
