package analytics

import (
	"slices"
	"time"
)

// VisionRanking places a vision by the number of distinct days it was worked on.
type VisionRanking struct {
	VisionID       string `json:"vision_id"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	ActiveDayCount int    `json:"active_days"`
	Rank           int    `json:"rank"`
}

// RankVisions orders visions by distinct active days, most active first, and
// assigns dense ranks starting at 1. Visions with equal counts keep the order
// they have in visions. Visions without sessions are left out, as are
// sessions whose vision is not in visions.
func (e Engine) RankVisions(sessions []Session, visions []Vision) []VisionRanking {
	byVision := make(map[string][]Session)
	for _, s := range sessions {
		byVision[s.VisionID] = append(byVision[s.VisionID], s)
	}

	rankings := make([]VisionRanking, 0, len(visions))
	seen := make(map[string]bool, len(visions))
	for _, v := range visions {
		if seen[v.ID] {
			continue
		}
		seen[v.ID] = true

		days := len(e.activeDays(byVision[v.ID]))
		if days == 0 {
			continue
		}
		rankings = append(rankings, VisionRanking{
			VisionID:       v.ID,
			Name:           v.Name,
			Color:          v.Color,
			ActiveDayCount: days,
		})
	}

	slices.SortStableFunc(rankings, func(a, b VisionRanking) int {
		return b.ActiveDayCount - a.ActiveDayCount
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

// Heatmap levels. LevelNone marks a day without activity; LevelMax is reached
// at two hours.
const (
	LevelNone = 0
	LevelMax  = 5
)

// HeatmapLevel maps a day's total minutes to a discrete intensity level.
func HeatmapLevel(minutes int) int {
	switch {
	case minutes <= 0:
		return LevelNone
	case minutes < 15:
		return 1
	case minutes < 30:
		return 2
	case minutes < 60:
		return 3
	case minutes < 120:
		return 4
	default:
		return LevelMax
	}
}

// HeatmapCell is one day of a calendar heatmap. Padding cells have a zero Date.
type HeatmapCell struct {
	Date    DayKey `json:"date"`
	Minutes int    `json:"minutes"`
	Level   int    `json:"level"`
}

// MonthHeatmap lays out the given month as a Sunday-first grid and fills each
// day with its minutes and intensity level. Callers pre-filter sessions to the
// vision or habit being shown.
func (e Engine) MonthHeatmap(sessions []Session, year int, month time.Month) [][7]HeatmapCell {
	minutes := make(map[DayKey]int)
	for _, s := range sessions {
		day := e.DayKey(s.CompletedAt)
		if day.Year == year && day.Month == month {
			minutes[day] += s.DurationMinutes
		}
	}

	grid := MonthGrid(year, month)
	cells := make([][7]HeatmapCell, len(grid))
	for r, row := range grid {
		for c, day := range row {
			if day.IsZero() {
				continue
			}
			m := minutes[day]
			cells[r][c] = HeatmapCell{Date: day, Minutes: m, Level: HeatmapLevel(m)}
		}
	}
	return cells
}

// ActivityMonths lists the months that have sessions, oldest first. Unless the
// entity has graduated, the current month is always included so an active
// vision can be viewed before its first session of the month.
func (e Engine) ActivityMonths(sessions []Session, now time.Time, graduated bool) []YearMonth {
	set := make(map[YearMonth]struct{})
	for _, s := range sessions {
		day := e.DayKey(s.CompletedAt)
		set[YearMonth{Year: day.Year, Month: day.Month}] = struct{}{}
	}
	if !graduated {
		today := e.Today(now)
		set[YearMonth{Year: today.Year, Month: today.Month}] = struct{}{}
	}

	months := make([]YearMonth, 0, len(set))
	for ym := range set {
		months = append(months, ym)
	}
	slices.SortFunc(months, func(a, b YearMonth) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})
	return months
}
