package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Habit is a recurring practice that serves one vision
type Habit struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VisionID    string     `gorm:"not null;index;size:36" json:"vision_id"`
	Name        string     `gorm:"not null" json:"name"`
	Status      string     `gorm:"default:active;index" json:"status"`
	GraduatedAt *time.Time `json:"graduated_at"`

	Vision Vision `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.Status == "" {
		h.Status = StatusActive
	}
	return nil
}
