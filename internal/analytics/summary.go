package analytics

import (
	"fmt"
	"time"
)

// ProductivitySummary is the headline block of the productivity view.
type ProductivitySummary struct {
	TotalMinutes     int `json:"total_minutes"`
	TotalHours       int `json:"total_hours"`
	DaysSinceJoining int `json:"days_since_joining"`
	ActiveDays       int `json:"active_days"`
	DailyAverage     int `json:"daily_average"`
}

// Summary totals every session and spreads it over the days since the user
// joined. The start is the earlier of joinedAt and the first session, so
// imported history before sign-up still counts. A zero joinedAt means "use
// the first session".
func (e Engine) Summary(sessions []Session, joinedAt, now time.Time) ProductivitySummary {
	if len(sessions) == 0 {
		return ProductivitySummary{DaysSinceJoining: 1}
	}

	start := joinedAt
	for _, s := range sessions {
		if start.IsZero() || s.CompletedAt.Before(start) {
			start = s.CompletedAt
		}
	}

	total := TotalMinutes(sessions)
	days := ElapsedDays(start, now)
	return ProductivitySummary{
		TotalMinutes:     total,
		TotalHours:       TotalHours(total),
		DaysSinceJoining: days,
		ActiveDays:       len(e.activeDays(sessions)),
		DailyAverage:     DailyAverage(sessions, days),
	}
}

// VisionStats are the per-vision cards: engaged days out of total days, the
// daily average over the vision's lifetime and the current streak.
type VisionStats struct {
	EngagedDays   int `json:"engaged_days"`
	TotalDays     int `json:"total_days"`
	DailyAverage  int `json:"daily_average"`
	CurrentStreak int `json:"current_streak"`
}

// VisionStats computes the cards for sessions of one vision created at
// createdAt. The lifetime ends at end (graduation date or now); the streak is
// always measured against now.
func (e Engine) VisionStats(sessions []Session, createdAt, end, now time.Time) VisionStats {
	days := ElapsedDays(createdAt, end)
	return VisionStats{
		EngagedDays:   len(e.activeDays(sessions)),
		TotalDays:     days,
		DailyAverage:  DailyAverage(sessions, days),
		CurrentStreak: e.Streak(sessions, now).Current,
	}
}

// WeekLabel names a week relative to the current one.
func WeekLabel(offset int) string {
	switch {
	case offset == 0:
		return "This Week"
	case offset == -1:
		return "Last Week"
	case offset == 1:
		return "1 week ahead"
	case offset > 0:
		return fmt.Sprintf("%d weeks ahead", offset)
	default:
		return fmt.Sprintf("%d weeks ago", -offset)
	}
}
