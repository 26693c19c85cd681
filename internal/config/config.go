// Package config loads mastery settings from ~/.mastery/config.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/balkashynov/mastery/internal/analytics"
)

const (
	// DataDirName is the directory under $HOME holding the database and config.
	DataDirName = ".mastery"

	EnvDatabase = "MASTERY_DB"
	EnvTimezone = "MASTERY_TIMEZONE"
	EnvOrphans  = "MASTERY_ORPHANS"

	OrphansTotals  = "totals"
	OrphansExclude = "exclude"
)

// Config holds user settings.
type Config struct {
	// Database is the SQLite file path.
	Database string `yaml:"database"`
	// Timezone is an IANA zone name; empty or "Local" means the host zone.
	Timezone string `yaml:"timezone"`
	// OrphanSessions is "totals" or "exclude".
	OrphanSessions string `yaml:"orphan_sessions"`
	// JoinedAt is the YYYY-MM-DD date productivity summaries count from.
	JoinedAt string `yaml:"joined_at,omitempty"`

	loc *time.Location
}

// DataDir returns ~/.mastery.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DataDirName
	}
	return filepath.Join(home, DataDirName)
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Database:       filepath.Join(DataDir(), "mastery.db"),
		Timezone:       "Local",
		OrphanSessions: OrphansTotals,
		loc:            time.Local,
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv(EnvDatabase); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv(EnvOrphans); v != "" {
		cfg.OrphanSessions = v
	}

	if err := cfg.resolve(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) resolve() error {
	c.Database = expandHome(c.Database)

	switch c.Timezone {
	case "", "Local", "local":
		c.loc = time.Local
	default:
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return fmt.Errorf("load timezone %q: %w", c.Timezone, err)
		}
		c.loc = loc
	}

	c.OrphanSessions = strings.ToLower(strings.TrimSpace(c.OrphanSessions))
	switch c.OrphanSessions {
	case "":
		c.OrphanSessions = OrphansTotals
	case OrphansTotals, OrphansExclude:
	default:
		return fmt.Errorf("orphan_sessions must be %q or %q, got %q", OrphansTotals, OrphansExclude, c.OrphanSessions)
	}

	if c.JoinedAt != "" {
		if _, err := analytics.ParseDayKey(c.JoinedAt); err != nil {
			return fmt.Errorf("joined_at: %w", err)
		}
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}

// Location returns the resolved calendar location.
func (c Config) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// OrphanPolicy maps OrphanSessions to the analytics policy.
func (c Config) OrphanPolicy() analytics.OrphanPolicy {
	if c.OrphanSessions == OrphansExclude {
		return analytics.OrphansExcluded
	}
	return analytics.OrphansCountInTotals
}

// Engine builds an analytics engine from the settings.
func (c Config) Engine() analytics.Engine {
	return analytics.New(
		analytics.WithLocation(c.Location()),
		analytics.WithOrphanPolicy(c.OrphanPolicy()),
	)
}

// JoinedTime returns midnight of JoinedAt in the configured location, or the
// zero time when unset.
func (c Config) JoinedTime() time.Time {
	if c.JoinedAt == "" {
		return time.Time{}
	}
	day, err := analytics.ParseDayKey(c.JoinedAt)
	if err != nil {
		return time.Time{}
	}
	return day.Time(c.Location())
}

// Save writes the settings as YAML, creating the parent directory.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
