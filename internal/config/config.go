package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/HotpotSnowguy/yeet/internal/apps"
	"github.com/HotpotSnowguy/yeet/internal/search"
)

const fallbackTerminal = "foot"

// General holds result limits and the terminal used for Terminal=true apps.
type General struct {
	MaxResults     int    `yaml:"max_results"`
	InitialResults int    `yaml:"initial_results"`
	Terminal       string `yaml:"terminal"`
}

// Appearance is consumed by front ends only.
type Appearance struct {
	Width     int `yaml:"width"`
	AnchorTop int `yaml:"anchor_top"`
}

// Search tunes fuzzy ranking.
type Search struct {
	MinScore       int     `yaml:"min_score"`
	ScoreThreshold float64 `yaml:"score_threshold"`
	PreferPrefix   bool    `yaml:"prefer_prefix"`
}

// Apps controls which applications end up in the catalog and in what order.
type Apps struct {
	Exclude   []string         `yaml:"exclude,omitempty"`
	ExtraDirs []string         `yaml:"extra_dirs,omitempty"`
	Custom    []apps.CustomApp `yaml:"custom,omitempty"`
	Favorites []string         `yaml:"favorites,omitempty"`
}

// Config is the in-memory representation of config.yaml.
type Config struct {
	General    General    `yaml:"general"`
	Appearance Appearance `yaml:"appearance"`
	Search     Search     `yaml:"search"`
	Apps       Apps       `yaml:"apps"`
}

// ConfigDir returns the absolute path to $XDG_CONFIG_HOME/yeet.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "yeet"), nil
}

// ConfigPath returns the absolute path to the default config.yaml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		General: General{
			MaxResults:     10,
			InitialResults: 8,
			Terminal:       defaultTerminal(),
		},
		Appearance: Appearance{
			Width:     600,
			AnchorTop: 200,
		},
		Search: Search{
			MinScore:       20,
			ScoreThreshold: 0.5,
			PreferPrefix:   true,
		},
	}
}

func defaultTerminal() string {
	if t := strings.TrimSpace(os.Getenv("TERMINAL")); t != "" {
		return t
	}
	return fallbackTerminal
}

// Load reads path, or the default config path when path is empty.
//
// A missing file is not an error: the defaults are returned. Keys absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	if strings.TrimSpace(cfg.General.Terminal) == "" {
		cfg.General.Terminal = defaultTerminal()
	}
	for i, d := range cfg.Apps.ExtraDirs {
		cfg.Apps.ExtraDirs[i], err = ExpandPath(d)
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Save marshals cfg and atomically replaces path (the default path when empty).
func Save(cfg *Config, path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// Validate reports every setting that would make yeet misbehave.
func (c *Config) Validate() error {
	var errs []error
	if c.General.MaxResults < 1 {
		errs = append(errs, fmt.Errorf("general.max_results must be at least 1, got %d", c.General.MaxResults))
	}
	if c.General.InitialResults < 0 {
		errs = append(errs, fmt.Errorf("general.initial_results must not be negative, got %d", c.General.InitialResults))
	}
	if c.Search.ScoreThreshold < 0 || c.Search.ScoreThreshold > 1 {
		errs = append(errs, fmt.Errorf("search.score_threshold must be within [0, 1], got %g", c.Search.ScoreThreshold))
	}
	if c.Appearance.Width < 0 || c.Appearance.AnchorTop < 0 {
		errs = append(errs, fmt.Errorf("appearance values must not be negative"))
	}
	for i, ca := range c.Apps.Custom {
		if strings.TrimSpace(ca.Name) == "" {
			errs = append(errs, fmt.Errorf("apps.custom[%d]: name is required", i))
		}
		if strings.TrimSpace(ca.Exec) == "" {
			errs = append(errs, fmt.Errorf("apps.custom[%d]: exec is required", i))
		}
	}
	return errors.Join(errs...)
}

// SearchConfig returns the ranking settings.
func (c *Config) SearchConfig() search.Config {
	return search.Config{
		InitialResults: c.General.InitialResults,
		MaxResults:     c.General.MaxResults,
		MinScore:       c.Search.MinScore,
		ScoreThreshold: c.Search.ScoreThreshold,
		PreferPrefix:   c.Search.PreferPrefix,
	}
}

// CatalogOptions returns the registry inputs: default directories plus
// extra_dirs, custom entries, exclusions and favorites.
func (c *Config) CatalogOptions(logf func(format string, args ...any)) apps.Options {
	return apps.Options{
		Sources:   apps.Sources(c.Apps.ExtraDirs),
		Custom:    c.Apps.Custom,
		Exclude:   c.Apps.Exclude,
		Favorites: c.Apps.Favorites,
		Logf:      logf,
	}
}
