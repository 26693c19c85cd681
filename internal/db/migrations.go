package db

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/balkashynov/mastery/internal/models"
)

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_visions_habits",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&models.Vision{}); err != nil {
					return err
				}
				return tx.AutoMigrate(&models.Habit{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("habits", "visions")
			},
		},
		{
			ID: "002_focus_sessions",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.FocusSession{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("focus_sessions")
			},
		},
		{
			ID: "003_milestones",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Milestone{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("milestones")
			},
		},
		{
			ID: "004_focus_sessions_completed_index",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE INDEX IF NOT EXISTS idx_focus_sessions_vision_completed
					ON focus_sessions(vision_id, completed_at)`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec("DROP INDEX IF EXISTS idx_focus_sessions_vision_completed").Error
			},
		},
	}
}

// runMigrations brings the schema up to date using gormigrate.
func runMigrations(conn *gorm.DB) error {
	m := gormigrate.New(conn, gormigrate.DefaultOptions, migrations())
	if err := m.Migrate(); err != nil {
		return err
	}
	log.Debug().Int("count", len(migrations())).Msg("migrations applied")
	return nil
}
