// Package config provides unified configuration management for joice.
// Configuration is loaded from multiple sources with the following precedence:
// embedded defaults → global file → env vars → local file → CLI flags
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/alexander-akhmetov/joice/internal/dirs"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// Themes lists the summary rendering styles accepted in config.
var Themes = []string{"dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

// Config holds all configuration settings for joice.
// Fields ending in *Set track whether that field was explicitly set in config.
// This allows distinguishing explicit false from "not set", so a local file
// can turn off something the global file turned on.
type Config struct {
	Catalog         string `yaml:"catalog"`  // catalog file path, empty = built-in menu
	Currency        string `yaml:"currency"` // symbol printed before prices
	StrictSelection bool   `yaml:"strict_selection"`
	Journal         bool   `yaml:"journal"`
	LogsDir         string `yaml:"logs_dir"` // session journals (default: XDG state dir)
	Theme           string `yaml:"theme"`    // glamour style for the summary

	// Set tracking for merge behavior
	StrictSelectionSet bool `yaml:"-"`
	JournalSet         bool `yaml:"-"`

	// Private: track where config was loaded from
	configDir string
	localDir  string
	sources   []string // ordered list of sources that contributed to this config
}

// Sources returns the ordered list of sources that contributed to this config.
func (c *Config) Sources() []string {
	return c.sources
}

// LocalDir returns the local project config directory if one was detected.
func (c *Config) LocalDir() string {
	return c.localDir
}

// ConfigDir returns the global config directory.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// JournalDir returns the directory session journals are written to.
func (c *Config) JournalDir() string {
	if c.LogsDir != "" {
		return c.LogsDir
	}
	return dirs.LogsDir()
}

// Load loads all configuration from the default locations.
// It auto-detects .joice/ in the current working directory for local overrides.
func Load() (*Config, error) {
	var localDir string
	if cwd, err := os.Getwd(); err == nil {
		localDir = dirs.LocalDir(cwd)
	}
	return LoadWithDirs(dirs.ConfigDir(), localDir)
}

// LoadWithDirs loads configuration with explicit global and local directories.
// Local config (.joice/) overrides global config (~/.config/joice/) per-field.
// If localDir is empty, only global config is used.
func LoadWithDirs(globalDir, localDir string) (*Config, error) {
	if err := InstallDefaults(globalDir); err != nil {
		return nil, fmt.Errorf("install defaults: %w", err)
	}

	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	globalPath := filepath.Join(globalDir, "config.yaml")
	if globalCfg, err := loadFile(globalPath); err == nil {
		cfg.mergeFrom(globalCfg)
		cfg.sources = append(cfg.sources, globalPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	cfg.applyEnv()

	if localDir != "" {
		localPath := filepath.Join(localDir, "config.yaml")
		if localCfg, err := loadFile(localPath); err == nil {
			// Relative catalog paths in a local file are relative to the project.
			if localCfg.Catalog != "" && !filepath.IsAbs(localCfg.Catalog) {
				localCfg.Catalog = filepath.Join(filepath.Dir(localDir), localCfg.Catalog)
			}
			cfg.mergeFrom(localCfg)
			cfg.sources = append(cfg.sources, localPath)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load local config: %w", err)
		}
	}

	cfg.configDir = globalDir
	cfg.localDir = localDir

	return cfg, nil
}

// InstallDefaults creates the config directory and installs the default
// config file if it does not exist yet.
func InstallDefaults(configDir string) error {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		data, err := defaultsFS.ReadFile("defaults/config.yaml")
		if err != nil {
			return fmt.Errorf("read embedded config: %w", err)
		}
		if err := os.WriteFile(configPath, data, 0o600); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	}

	return nil
}

func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if err != nil {
		return nil, err
	}
	return parseConfigWithTracking(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// parseConfigWithTracking parses YAML config and tracks which fields were set.
func parseConfigWithTracking(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if _, ok := raw["strict_selection"]; ok {
		cfg.StrictSelectionSet = true
	}
	if _, ok := raw["journal"]; ok {
		cfg.JournalSet = true
	}

	return cfg, nil
}

// applyEnv applies environment variables to the config.
// Env vars sit between global and local config in precedence.
func (c *Config) applyEnv() {
	if v := os.Getenv("JOICE_CATALOG"); v != "" {
		c.Catalog = v
		c.sources = append(c.sources, "env:JOICE_CATALOG")
	}

	if v := os.Getenv("JOICE_CURRENCY"); v != "" {
		c.Currency = v
		c.sources = append(c.sources, "env:JOICE_CURRENCY")
	}

	if v := os.Getenv("JOICE_STRICT_SELECTION"); v != "" {
		c.StrictSelection = v == "true" || v == "1"
		c.StrictSelectionSet = true
		c.sources = append(c.sources, "env:JOICE_STRICT_SELECTION")
	}

	if v := os.Getenv("JOICE_JOURNAL"); v != "" {
		c.Journal = v == "true" || v == "1"
		c.JournalSet = true
		c.sources = append(c.sources, "env:JOICE_JOURNAL")
	}

	if v := os.Getenv("JOICE_LOGS_DIR"); v != "" {
		c.LogsDir = v
		c.sources = append(c.sources, "env:JOICE_LOGS_DIR")
	}

	if v := os.Getenv("JOICE_THEME"); v != "" && validTheme(v) {
		c.Theme = v
		c.sources = append(c.sources, "env:JOICE_THEME")
	}
}

// mergeFrom merges non-empty/set values from src into c.
func (c *Config) mergeFrom(src *Config) {
	if src.Catalog != "" {
		c.Catalog = src.Catalog
	}
	if src.Currency != "" {
		c.Currency = src.Currency
	}
	if src.StrictSelectionSet {
		c.StrictSelection = src.StrictSelection
		c.StrictSelectionSet = true
	}
	if src.JournalSet {
		c.Journal = src.Journal
		c.JournalSet = true
	}
	if src.LogsDir != "" {
		c.LogsDir = src.LogsDir
	}
	if src.Theme != "" && validTheme(src.Theme) {
		c.Theme = src.Theme
	}
}

// ApplyCLIFlags applies CLI flag overrides to the config.
// CLI flags have the highest precedence; an empty catalog or a false strict
// flag leaves the configured value alone.
func (c *Config) ApplyCLIFlags(catalog string, strict bool) {
	if catalog != "" {
		c.Catalog = catalog
		c.sources = append(c.sources, "cli:catalog")
	}
	if strict {
		c.StrictSelection = true
		c.StrictSelectionSet = true
		c.sources = append(c.sources, "cli:strict")
	}
}

func validTheme(theme string) bool {
	return slices.Contains(Themes, theme)
}
