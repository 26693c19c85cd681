// Package analytics turns focus-session history into the progress metrics shown by
// mastery: streaks, daily and weekly totals, vision rankings, heatmap levels and
// time-since-start figures.
//
// Every function is a pure transformation over the records it is given. Nothing
// here reads the system clock, touches storage or keeps state between calls, so
// the package is safe to use from any number of goroutines.
package analytics

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRecord is wrapped by every validation failure of an input record.
var ErrInvalidRecord = errors.New("invalid record")

// Status is the lifecycle state shared by visions and habits.
type Status string

const (
	StatusActive    Status = "active"
	StatusGraduated Status = "graduated"
	StatusDeleted   Status = "deleted"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusGraduated, StatusDeleted:
		return true
	}
	return false
}

// Session is a completed focus session.
type Session struct {
	ID              string
	HabitID         string
	VisionID        string
	CompletedAt     time.Time
	DurationMinutes int
	MajorWin        string
}

// Validate checks the fields the analytics functions rely on.
func (s Session) Validate() error {
	switch {
	case s.ID == "":
		return fmt.Errorf("%w: session id is empty", ErrInvalidRecord)
	case s.HabitID == "":
		return fmt.Errorf("%w: session %s has no habit", ErrInvalidRecord, s.ID)
	case s.VisionID == "":
		return fmt.Errorf("%w: session %s has no vision", ErrInvalidRecord, s.ID)
	case s.CompletedAt.IsZero():
		return fmt.Errorf("%w: session %s has no completion time", ErrInvalidRecord, s.ID)
	case s.DurationMinutes < 0:
		return fmt.Errorf("%w: session %s has negative duration %d", ErrInvalidRecord, s.ID, s.DurationMinutes)
	}
	return nil
}

// Vision is a long-term goal that sessions roll up to.
type Vision struct {
	ID          string
	Name        string
	Color       string
	CreatedAt   time.Time
	Status      Status
	GraduatedAt *time.Time
}

// Validate checks required fields and the status/graduation pairing.
func (v Vision) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("%w: vision id is empty", ErrInvalidRecord)
	}
	if v.CreatedAt.IsZero() {
		return fmt.Errorf("%w: vision %s has no creation time", ErrInvalidRecord, v.ID)
	}
	return validateLifecycle("vision", v.ID, v.Status, v.GraduatedAt)
}

// Habit is a recurring behaviour attached to a vision.
type Habit struct {
	ID          string
	VisionID    string
	CreatedAt   time.Time
	Status      Status
	GraduatedAt *time.Time
}

// Validate checks required fields and the status/graduation pairing.
func (h Habit) Validate() error {
	if h.ID == "" {
		return fmt.Errorf("%w: habit id is empty", ErrInvalidRecord)
	}
	if h.VisionID == "" {
		return fmt.Errorf("%w: habit %s has no vision", ErrInvalidRecord, h.ID)
	}
	if h.CreatedAt.IsZero() {
		return fmt.Errorf("%w: habit %s has no creation time", ErrInvalidRecord, h.ID)
	}
	return validateLifecycle("habit", h.ID, h.Status, h.GraduatedAt)
}

func validateLifecycle(kind, id string, status Status, graduatedAt *time.Time) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s %s has unknown status %q", ErrInvalidRecord, kind, id, status)
	}
	if status == StatusGraduated && graduatedAt == nil {
		return fmt.Errorf("%w: graduated %s %s has no graduation time", ErrInvalidRecord, kind, id)
	}
	if status != StatusGraduated && graduatedAt != nil {
		return fmt.Errorf("%w: %s %s has a graduation time but status %q", ErrInvalidRecord, kind, id, status)
	}
	return nil
}

// Snapshot is a validated, immutable view of one user's records.
type Snapshot struct {
	Sessions []Session
	Visions  []Vision
	Habits   []Habit
}

// NewSnapshot validates every record and returns them as a Snapshot.
// The first invalid record aborts construction.
func NewSnapshot(sessions []Session, visions []Vision, habits []Habit) (Snapshot, error) {
	for _, v := range visions {
		if err := v.Validate(); err != nil {
			return Snapshot{}, err
		}
	}
	for _, h := range habits {
		if err := h.Validate(); err != nil {
			return Snapshot{}, err
		}
	}
	for _, s := range sessions {
		if err := s.Validate(); err != nil {
			return Snapshot{}, err
		}
	}
	return Snapshot{Sessions: sessions, Visions: visions, Habits: habits}, nil
}

// Vision returns the vision with the given id.
func (s Snapshot) Vision(id string) (Vision, bool) {
	for _, v := range s.Visions {
		if v.ID == id {
			return v, true
		}
	}
	return Vision{}, false
}

// TotalMinutes sums the duration of the given sessions.
func TotalMinutes(sessions []Session) int {
	total := 0
	for _, s := range sessions {
		total += s.DurationMinutes
	}
	return total
}
