package db

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/balkashynov/mastery/internal/models"
	"github.com/balkashynov/mastery/internal/parser"
)

// DefaultVisionColor is used when a vision is created without a color
const DefaultVisionColor = "#329BA4"

// CreateVisionRequest holds the data needed to create a new vision
type CreateVisionRequest struct {
	Name        string
	Description string
	Color       string
}

// CreateVision creates a new active vision
func CreateVision(req CreateVisionRequest) (*models.Vision, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("vision name is required")
	}

	color := DefaultVisionColor
	if req.Color != "" {
		normalized, err := parser.NormalizeColor(req.Color)
		if err != nil {
			return nil, err
		}
		color = normalized
	}

	vision := models.Vision{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Color:       color,
		Status:      models.StatusActive,
		CreatedAt:   now(),
	}
	if err := DB.Create(&vision).Error; err != nil {
		return nil, fmt.Errorf("failed to create vision: %w", err)
	}

	log.Debug().Str("vision", vision.ID).Msg("vision created")
	return &vision, nil
}

// GetVision resolves a vision by id, id prefix or name. Deleted visions are not found.
func GetVision(ref string) (*models.Vision, error) {
	return findByRef[models.Vision]("vision", ref, notDeleted)
}

// ListVisions returns visions with the given statuses, active first and then
// the most recently graduated. With no statuses, active and graduated are returned.
func ListVisions(statuses ...string) ([]models.Vision, error) {
	if len(statuses) == 0 {
		statuses = []string{models.StatusActive, models.StatusGraduated}
	}

	var visions []models.Vision
	err := DB.Where("status IN ?", statuses).
		Order("status ASC").
		Order("graduated_at DESC").
		Order("created_at ASC").
		Find(&visions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list visions: %w", err)
	}
	return visions, nil
}

// AllVisions returns every vision regardless of status
func AllVisions() ([]models.Vision, error) {
	return ListVisions(models.StatusActive, models.StatusGraduated, models.StatusDeleted)
}

// GraduateVision marks an active vision and its active habits as graduated
func GraduateVision(ref string) (*models.Vision, error) {
	vision, err := GetVision(ref)
	if err != nil {
		return nil, err
	}
	if vision.Status != models.StatusActive {
		return nil, fmt.Errorf("vision %q is %s: %w", vision.Name, vision.Status, ErrNotActive)
	}

	at := now()
	vision.Status = models.StatusGraduated
	vision.GraduatedAt = &at

	tx := DB.Begin()
	if err := tx.Save(vision).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to graduate vision: %w", err)
	}
	err = tx.Model(&models.Habit{}).
		Where("vision_id = ? AND status = ?", vision.ID, models.StatusActive).
		Updates(map[string]any{"status": models.StatusGraduated, "graduated_at": at}).Error
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to graduate habits: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to graduate vision: %w", err)
	}
	return vision, nil
}

// DeleteVision marks a vision and its habits as deleted. Its focus sessions
// are kept but no longer belong to a known vision.
func DeleteVision(ref string) (*models.Vision, error) {
	vision, err := GetVision(ref)
	if err != nil {
		return nil, err
	}

	if active, err := GetActiveSession(); err == nil && active != nil && active.VisionID == vision.ID {
		return nil, fmt.Errorf("stop the running focus session first: %w", ErrActiveSession)
	}

	vision.Status = models.StatusDeleted
	vision.GraduatedAt = nil

	tx := DB.Begin()
	if err := tx.Save(vision).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to delete vision: %w", err)
	}
	err = tx.Model(&models.Habit{}).
		Where("vision_id = ?", vision.ID).
		Updates(map[string]any{"status": models.StatusDeleted, "graduated_at": nil}).Error
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to delete habits: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to delete vision: %w", err)
	}
	return vision, nil
}
