package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/balkashynov/mastery/internal/models"
)

// StartSession starts a focus session on an active habit
func StartSession(habitRef, intention string) (*models.FocusSession, error) {
	habit, err := GetHabit(habitRef)
	if err != nil {
		return nil, err
	}
	if habit.Status != models.StatusActive {
		return nil, fmt.Errorf("habit %q is %s: %w", habit.Name, habit.Status, ErrNotActive)
	}

	active, err := GetActiveSession()
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("session %s on habit %s: %w", shortID(active.ID), shortID(active.HabitID), ErrActiveSession)
	}

	session := models.FocusSession{
		HabitID:   habit.ID,
		VisionID:  habit.VisionID,
		Intention: strings.TrimSpace(intention),
		StartedAt: now(),
	}
	if err := DB.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	log.Debug().Str("session", session.ID).Str("habit", habit.ID).Msg("focus session started")
	return &session, nil
}

// StopActiveSession completes the running session, recording whole elapsed
// minutes and the reflection notes
func StopActiveSession(accomplishment, majorWin string) (*models.FocusSession, error) {
	session, err := GetActiveSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	finished := now()
	session.CompletedAt = &finished
	session.DurationMinutes = max(0, int(finished.Sub(session.StartedAt)/time.Minute))
	session.Accomplishment = strings.TrimSpace(accomplishment)
	session.MajorWin = strings.TrimSpace(majorWin)

	if err := DB.Save(session).Error; err != nil {
		return nil, fmt.Errorf("failed to stop session: %w", err)
	}
	return session, nil
}

// CancelActiveSession discards the running session without recording it
func CancelActiveSession() error {
	session, err := GetActiveSession()
	if err != nil {
		return err
	}
	if session == nil {
		return ErrNoActiveSession
	}
	if err := DB.Delete(session).Error; err != nil {
		return fmt.Errorf("failed to cancel session: %w", err)
	}
	return nil
}

// GetActiveSession returns the running session, or nil when none is running
func GetActiveSession() (*models.FocusSession, error) {
	var session models.FocusSession
	err := DB.Where("completed_at IS NULL").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query active session: %w", err)
	}
	return &session, nil
}

// LogSessionRequest holds a completed session entered after the fact
type LogSessionRequest struct {
	HabitRef       string
	Minutes        int
	CompletedAt    time.Time
	Intention      string
	Accomplishment string
	MajorWin       string
}

// LogSession records a completed session on an active habit without running
// the timer
func LogSession(req LogSessionRequest) (*models.FocusSession, error) {
	if req.Minutes <= 0 {
		return nil, fmt.Errorf("minutes must be positive, got %d", req.Minutes)
	}

	habit, err := GetHabit(req.HabitRef)
	if err != nil {
		return nil, err
	}
	if habit.Status != models.StatusActive {
		return nil, fmt.Errorf("habit %q is %s: %w", habit.Name, habit.Status, ErrNotActive)
	}

	completed := req.CompletedAt
	if completed.IsZero() {
		completed = now()
	}

	session := models.FocusSession{
		HabitID:         habit.ID,
		VisionID:        habit.VisionID,
		Intention:       strings.TrimSpace(req.Intention),
		Accomplishment:  strings.TrimSpace(req.Accomplishment),
		MajorWin:        strings.TrimSpace(req.MajorWin),
		DurationMinutes: req.Minutes,
		StartedAt:       completed.Add(-time.Duration(req.Minutes) * time.Minute),
		CompletedAt:     &completed,
	}
	if err := DB.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to log session: %w", err)
	}
	return &session, nil
}

// SessionFilter narrows ListSessions; empty fields match everything
type SessionFilter struct {
	VisionID string
	HabitID  string
}

// ListSessions returns completed sessions ordered by completion time
func ListSessions(filter SessionFilter) ([]models.FocusSession, error) {
	query := DB.Where("completed_at IS NOT NULL")
	if filter.VisionID != "" {
		query = query.Where("vision_id = ?", filter.VisionID)
	}
	if filter.HabitID != "" {
		query = query.Where("habit_id = ?", filter.HabitID)
	}

	var sessions []models.FocusSession
	if err := query.Order("completed_at ASC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes a completed session by id or id prefix. A running
// session is not found; use CancelActiveSession for it.
func DeleteSession(ref string) error {
	ref = strings.TrimSpace(ref)
	var matches []models.FocusSession
	err := DB.Where("completed_at IS NOT NULL").
		Where(`id = ? OR id LIKE ? ESCAPE '\'`, ref, likeEscaper.Replace(ref)+"%").
		Limit(2).
		Find(&matches).Error
	if err != nil {
		return fmt.Errorf("failed to look up session: %w", err)
	}
	switch {
	case ref == "" || len(matches) == 0:
		return fmt.Errorf("session %q: %w", ref, ErrNotFound)
	case len(matches) > 1:
		return fmt.Errorf("session %q: %w", ref, ErrAmbiguous)
	}
	if err := DB.Delete(&matches[0]).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ShortID returns the first eight characters of an id for display
func ShortID(id string) string {
	return shortID(id)
}
