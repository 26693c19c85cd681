package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lifecycle states shared by visions and habits
const (
	StatusActive    = "active"
	StatusGraduated = "graduated"
	StatusDeleted   = "deleted"
)

// Vision is a long-term goal that habits and focus sessions roll up into
type Vision struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Color       string     `gorm:"size:7" json:"color"`
	Status      string     `gorm:"default:active;index" json:"status"` // active, graduated, deleted
	GraduatedAt *time.Time `json:"graduated_at"`

	// Relationships
	Habits     []Habit     `gorm:"foreignKey:VisionID;constraint:OnDelete:CASCADE;" json:"habits,omitempty"`
	Milestones []Milestone `gorm:"foreignKey:VisionID;constraint:OnDelete:CASCADE;" json:"milestones,omitempty"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (v *Vision) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = StatusActive
	}
	return nil
}
