package analytics

import (
	"slices"
	"time"
)

// StreakResult holds the current and longest runs of consecutive active days.
type StreakResult struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Streak computes streaks over the sessions' local calendar days.
//
// The current streak counts back from today. When today has no session but
// yesterday does, counting starts at yesterday: a streak stays alive until the
// user's current day ends.
func (e Engine) Streak(sessions []Session, now time.Time) StreakResult {
	days := e.activeDays(sessions)
	if len(days) == 0 {
		return StreakResult{}
	}
	return StreakResult{
		Current: currentStreak(days, e.Today(now)),
		Longest: longestStreak(days),
	}
}

func currentStreak(days map[DayKey]struct{}, today DayKey) int {
	check := today
	if _, ok := days[today]; !ok {
		check = today.AddDays(-1)
	}

	streak := 0
	for {
		if _, ok := days[check]; !ok {
			return streak
		}
		streak++
		check = check.AddDays(-1)
	}
}

func longestStreak(days map[DayKey]struct{}) int {
	sorted := sortedDays(days)

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if DaysBetween(sorted[i-1], sorted[i]) == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

func sortedDays(days map[DayKey]struct{}) []DayKey {
	sorted := make([]DayKey, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	slices.SortFunc(sorted, func(a, b DayKey) int {
		return DaysBetween(b, a)
	})
	return sorted
}
