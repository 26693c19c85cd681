package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/balkashynov/mastery/internal/analytics"
)

type ConfigSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("HOME", s.dir)
	s.T().Setenv(EnvDatabase, "")
	s.T().Setenv(EnvTimezone, "")
	s.T().Setenv(EnvOrphans, "")
}

func (s *ConfigSuite) write(body string) string {
	path := filepath.Join(s.dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigSuite) TestMissingFileUsesDefaults() {
	cfg, err := Load(filepath.Join(s.dir, "nope.yaml"))
	s.Require().NoError(err)

	s.Equal(filepath.Join(s.dir, DataDirName, "mastery.db"), cfg.Database)
	s.Equal(time.Local, cfg.Location())
	s.Equal(analytics.OrphansCountInTotals, cfg.OrphanPolicy())
	s.True(cfg.JoinedTime().IsZero())
}

func (s *ConfigSuite) TestFileValues() {
	path := s.write(`
database: ~/data/habits.db
timezone: Europe/Berlin
orphan_sessions: Exclude
joined_at: 2024-01-15
`)
	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Equal(filepath.Join(s.dir, "data", "habits.db"), cfg.Database)
	s.Equal("Europe/Berlin", cfg.Location().String())
	s.Equal(analytics.OrphansExcluded, cfg.OrphanPolicy())

	joined := cfg.JoinedTime()
	s.Equal(2024, joined.Year())
	s.Equal(time.January, joined.Month())
	s.Equal(15, joined.Day())
	s.Equal(0, joined.Hour())

	engine := cfg.Engine()
	s.Equal(analytics.OrphansExcluded, engine.OrphanPolicy())
	s.Equal("Europe/Berlin", engine.Location().String())
}

func (s *ConfigSuite) TestEnvOverrides() {
	path := s.write("timezone: Europe/Berlin\n")
	s.T().Setenv(EnvDatabase, "/tmp/other.db")
	s.T().Setenv(EnvTimezone, "UTC")
	s.T().Setenv(EnvOrphans, "exclude")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("/tmp/other.db", cfg.Database)
	s.Equal(time.UTC.String(), cfg.Location().String())
	s.Equal(analytics.OrphansExcluded, cfg.OrphanPolicy())
}

func (s *ConfigSuite) TestInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad yaml", body: "database: [unclosed\n"},
		{name: "bad timezone", body: "timezone: Mars/Olympus\n"},
		{name: "bad orphan policy", body: "orphan_sessions: sometimes\n"},
		{name: "bad joined_at", body: "joined_at: 15/01/2024\n"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := Load(s.write(tt.body))
			s.Error(err)
		})
	}
}

func (s *ConfigSuite) TestSaveRoundTrip() {
	cfg := Default()
	cfg.Timezone = "UTC"
	cfg.OrphanSessions = OrphansExclude
	cfg.JoinedAt = "2024-02-01"

	path := filepath.Join(s.dir, "nested", "config.yaml")
	s.Require().NoError(cfg.Save(path))

	loaded, err := Load(path)
	s.Require().NoError(err)
	s.Equal(cfg.Database, loaded.Database)
	s.Equal("UTC", loaded.Timezone)
	s.Equal(OrphansExclude, loaded.OrphanSessions)
	s.Equal("2024-02-01", loaded.JoinedAt)
}
