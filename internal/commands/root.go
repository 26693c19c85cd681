package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/analytics"
	"github.com/balkashynov/mastery/internal/config"
	"github.com/balkashynov/mastery/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg        = config.Default()
	configPath string
	debug      bool

	// clock is the source of "now" for every command
	clock = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Track deliberate practice toward your long-term visions",
	Long: `mastery records focus sessions on habits that serve long-term visions and
turns them into streaks, weekly charts, rankings, heatmaps and time-to-mastery figures.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// setup configures logging and loads the config file before any command runs
func setup(cmd *cobra.Command, args []string) error {
	configureLogging(debug)

	path := configPath
	if path == "" {
		path = config.Path()
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	log.Debug().
		Str("config", path).
		Str("database", cfg.Database).
		Str("timezone", cfg.Location().String()).
		Str("orphans", cfg.OrphanPolicy().String()).
		Msg("configuration loaded")
	return nil
}

func configureLogging(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// withDB wraps a command function to open the database first and report
// errors the way every command does
func withDB(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := db.Initialize(cfg.Database); err != nil {
			log.Debug().Err(err).Msg("database init failed")
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
			return
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close database")
			}
		}()

		if err := fn(cmd, args); err != nil {
			log.Debug().Err(err).Str("command", cmd.CommandPath()).Msg("command failed")
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		}
	}
}

// engine builds the analytics engine for the loaded configuration
func engine() analytics.Engine {
	return cfg.Engine()
}

// snapshot loads all records and the visions that still count, active first
func snapshot() (analytics.Snapshot, []analytics.Vision, error) {
	snap, err := db.LoadSnapshot()
	if err != nil {
		return analytics.Snapshot{}, nil, err
	}
	listed, err := db.ListVisions()
	if err != nil {
		return analytics.Snapshot{}, nil, err
	}
	return snap, db.ToVisions(listed), nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mastery %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.mastery/config.yaml)")

	rootCmd.AddCommand(visionCmd)
	rootCmd.AddCommand(habitCmd)
	rootCmd.AddCommand(milestoneCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.SetHelpCommand(helpCmd)
}
