package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FocusSession is one block of deliberate work on a habit.
// CompletedAt stays nil while the session is running.
type FocusSession struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	HabitID         string     `gorm:"not null;index;size:36" json:"habit_id"`
	VisionID        string     `gorm:"not null;index;size:36" json:"vision_id"`
	Intention       string     `json:"intention"`
	Accomplishment  string     `json:"accomplishment"`
	MajorWin        string     `json:"major_win"`
	DurationMinutes int        `gorm:"not null;default:0" json:"duration_minutes"`
	StartedAt       time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt     *time.Time `gorm:"index" json:"completed_at"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (s *FocusSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Running reports whether the session has not been stopped yet.
func (s FocusSession) Running() bool {
	return s.CompletedAt == nil
}
