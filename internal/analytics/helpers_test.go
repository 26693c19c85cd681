package analytics

import (
	"fmt"
	"time"
)

var utcEngine = New(WithLocation(time.UTC))

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func day(year int, month time.Month, d int) DayKey {
	return DayKey{Year: year, Month: month, Day: d}
}

var sessionSeq int

func sess(visionID string, completedAt time.Time, minutes int) Session {
	sessionSeq++
	return Session{
		ID:              fmt.Sprintf("s-%d", sessionSeq),
		HabitID:         "h-" + visionID,
		VisionID:        visionID,
		CompletedAt:     completedAt,
		DurationMinutes: minutes,
	}
}

func vision(id string) Vision {
	return Vision{
		ID:        id,
		Name:      "Vision " + id,
		Color:     "#329BA4",
		CreatedAt: at(2024, time.January, 1, 0, 0),
		Status:    StatusActive,
	}
}

// endToEndSessions is the three-session scenario used across tests.
func endToEndSessions() []Session {
	return []Session{
		sess("A", at(2024, time.March, 1, 10, 0), 30),
		sess("A", at(2024, time.March, 2, 10, 0), 45),
		sess("B", at(2024, time.March, 2, 18, 0), 10),
	}
}
