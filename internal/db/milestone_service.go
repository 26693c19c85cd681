package db

import (
	"fmt"
	"strings"

	"github.com/balkashynov/mastery/internal/models"
)

// CreateMilestone adds a not-started milestone to a vision
func CreateMilestone(visionRef, name string) (*models.Milestone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("milestone name is required")
	}

	vision, err := GetVision(visionRef)
	if err != nil {
		return nil, err
	}

	milestone := models.Milestone{
		VisionID:  vision.ID,
		Name:      name,
		Status:    models.MilestoneNotStarted,
		CreatedAt: now(),
	}
	if err := DB.Create(&milestone).Error; err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}
	return &milestone, nil
}

// ListMilestones returns the milestones of a vision in creation order
func ListMilestones(visionID string) ([]models.Milestone, error) {
	var milestones []models.Milestone
	err := DB.Where("vision_id = ?", visionID).Order("created_at ASC").Find(&milestones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	return milestones, nil
}

// SetMilestoneStatus moves a milestone to status. CompletedAt is set when it
// becomes completed and cleared otherwise.
func SetMilestoneStatus(ref, status string) (*models.Milestone, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !models.ValidMilestoneStatus(status) {
		return nil, fmt.Errorf("invalid milestone status %q (use not_started, in_progress or completed)", status)
	}

	milestone, err := findByRef[models.Milestone]("milestone", ref)
	if err != nil {
		return nil, err
	}

	milestone.Status = status
	if status == models.MilestoneCompleted {
		at := now()
		milestone.CompletedAt = &at
	} else {
		milestone.CompletedAt = nil
	}
	if err := DB.Save(milestone).Error; err != nil {
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}
	return milestone, nil
}
