package db

import (
	"fmt"
	"strings"

	"github.com/balkashynov/mastery/internal/models"
)

// CreateHabit adds an active habit to an active vision
func CreateHabit(visionRef, name string) (*models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("habit name is required")
	}

	vision, err := GetVision(visionRef)
	if err != nil {
		return nil, err
	}
	if vision.Status != models.StatusActive {
		return nil, fmt.Errorf("vision %q is %s: %w", vision.Name, vision.Status, ErrNotActive)
	}

	habit := models.Habit{
		VisionID:  vision.ID,
		Name:      name,
		Status:    models.StatusActive,
		CreatedAt: now(),
	}
	if err := DB.Create(&habit).Error; err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return &habit, nil
}

// GetHabit resolves a habit by id, id prefix or name. Deleted habits are not found.
func GetHabit(ref string) (*models.Habit, error) {
	return findByRef[models.Habit]("habit", ref, notDeleted)
}

// ListHabits returns the habits of a vision, or of all visions when visionID
// is empty, with the given statuses (active and graduated by default).
func ListHabits(visionID string, statuses ...string) ([]models.Habit, error) {
	if len(statuses) == 0 {
		statuses = []string{models.StatusActive, models.StatusGraduated}
	}

	query := DB.Where("status IN ?", statuses)
	if visionID != "" {
		query = query.Where("vision_id = ?", visionID)
	}

	var habits []models.Habit
	err := query.Order("status ASC").Order("created_at ASC").Find(&habits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	return habits, nil
}

// AllHabits returns every habit regardless of status
func AllHabits() ([]models.Habit, error) {
	return ListHabits("", models.StatusActive, models.StatusGraduated, models.StatusDeleted)
}

// GraduateHabit marks an active habit as graduated
func GraduateHabit(ref string) (*models.Habit, error) {
	habit, err := GetHabit(ref)
	if err != nil {
		return nil, err
	}
	if habit.Status != models.StatusActive {
		return nil, fmt.Errorf("habit %q is %s: %w", habit.Name, habit.Status, ErrNotActive)
	}

	at := now()
	habit.Status = models.StatusGraduated
	habit.GraduatedAt = &at
	if err := DB.Save(habit).Error; err != nil {
		return nil, fmt.Errorf("failed to graduate habit: %w", err)
	}
	return habit, nil
}

// DeleteHabit marks a habit as deleted. Its sessions still count for its vision.
func DeleteHabit(ref string) (*models.Habit, error) {
	habit, err := GetHabit(ref)
	if err != nil {
		return nil, err
	}

	if active, err := GetActiveSession(); err == nil && active != nil && active.HabitID == habit.ID {
		return nil, fmt.Errorf("stop the running focus session first: %w", ErrActiveSession)
	}

	habit.Status = models.StatusDeleted
	habit.GraduatedAt = nil
	if err := DB.Save(habit).Error; err != nil {
		return nil, fmt.Errorf("failed to delete habit: %w", err)
	}
	return habit, nil
}
