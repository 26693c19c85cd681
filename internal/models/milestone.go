package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Milestone states
const (
	MilestoneNotStarted = "not_started"
	MilestoneInProgress = "in_progress"
	MilestoneCompleted  = "completed"
)

// Milestone is a checkpoint on the way to a vision
type Milestone struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VisionID    string     `gorm:"not null;index;size:36" json:"vision_id"`
	Name        string     `gorm:"not null" json:"name"`
	Status      string     `gorm:"default:not_started" json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = MilestoneNotStarted
	}
	return nil
}

// ValidMilestoneStatus reports whether s is a known milestone state.
func ValidMilestoneStatus(s string) bool {
	switch s {
	case MilestoneNotStarted, MilestoneInProgress, MilestoneCompleted:
		return true
	}
	return false
}
