package db

import (
	"fmt"

	"github.com/balkashynov/mastery/internal/analytics"
	"github.com/balkashynov/mastery/internal/models"
)

// LoadSnapshot reads every completed session, vision and habit and converts
// them into validated analytics records
func LoadSnapshot() (analytics.Snapshot, error) {
	rows, err := ListSessions(SessionFilter{})
	if err != nil {
		return analytics.Snapshot{}, err
	}
	visions, err := AllVisions()
	if err != nil {
		return analytics.Snapshot{}, err
	}
	habits, err := AllHabits()
	if err != nil {
		return analytics.Snapshot{}, err
	}

	snap, err := analytics.NewSnapshot(ToSessions(rows), ToVisions(visions), ToHabits(habits))
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return snap, nil
}

// ToSessions converts completed focus sessions; running ones are skipped
func ToSessions(rows []models.FocusSession) []analytics.Session {
	out := make([]analytics.Session, 0, len(rows))
	for _, r := range rows {
		if r.CompletedAt == nil {
			continue
		}
		out = append(out, analytics.Session{
			ID:              r.ID,
			HabitID:         r.HabitID,
			VisionID:        r.VisionID,
			CompletedAt:     *r.CompletedAt,
			DurationMinutes: r.DurationMinutes,
			MajorWin:        r.MajorWin,
		})
	}
	return out
}

// ToVisions converts vision rows
func ToVisions(rows []models.Vision) []analytics.Vision {
	out := make([]analytics.Vision, 0, len(rows))
	for _, r := range rows {
		out = append(out, analytics.Vision{
			ID:          r.ID,
			Name:        r.Name,
			Color:       r.Color,
			CreatedAt:   r.CreatedAt,
			Status:      analytics.Status(r.Status),
			GraduatedAt: r.GraduatedAt,
		})
	}
	return out
}

// ToHabits converts habit rows
func ToHabits(rows []models.Habit) []analytics.Habit {
	out := make([]analytics.Habit, 0, len(rows))
	for _, r := range rows {
		out = append(out, analytics.Habit{
			ID:          r.ID,
			VisionID:    r.VisionID,
			CreatedAt:   r.CreatedAt,
			Status:      analytics.Status(r.Status),
			GraduatedAt: r.GraduatedAt,
		})
	}
	return out
}
