package analytics

import (
	"fmt"
	"math"
	"time"
)

// TimeUnit is the unit a mastery window is displayed in.
type TimeUnit string

const (
	UnitDays   TimeUnit = "days"
	UnitMonths TimeUnit = "months"
)

// monthsThreshold is the elapsed-day count from which windows switch to months.
const monthsThreshold = 60

// MasteryWindow is the "N hours in M days/months" display model.
type MasteryWindow struct {
	TotalHours          int      `json:"total_hours"`
	Unit                TimeUnit `json:"unit"`
	UnitValue           float64  `json:"unit_value"`
	ShowFullDaysCaption bool     `json:"show_full_days_caption"`
	FullDays            int      `json:"full_days,omitempty"`
}

// String renders the window, e.g. "12 hours in 3 days" or "40 hours in 2.5 months".
func (w MasteryWindow) String() string {
	hours := "hours"
	if w.TotalHours == 1 {
		hours = "hour"
	}
	unit := string(w.Unit)
	if w.UnitValue == 1 {
		unit = unit[:len(unit)-1]
	}
	return fmt.Sprintf("%d %s in %s %s", w.TotalHours, hours, formatUnitValue(w.UnitValue), unit)
}

func formatUnitValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// TotalHours converts minutes to whole hours, rounding to nearest.
func TotalHours(totalMinutes int) int {
	return int(math.Round(float64(totalMinutes) / 60))
}

// ElapsedDays counts the days from created to end inclusive of the first day,
// never less than 1.
func ElapsedDays(created, end time.Time) int {
	days := int(math.Floor(end.Sub(created).Hours()/24)) + 1
	return max(1, days)
}

// MasteryFor builds the display model from total minutes and elapsed days.
// Below 60 days the unit is days; from 60 on it is months rounded to the
// nearest half.
func MasteryFor(totalMinutes, elapsedDays int) MasteryWindow {
	elapsedDays = max(1, elapsedDays)
	hours := TotalHours(totalMinutes)

	w := MasteryWindow{
		TotalHours:          hours,
		ShowFullDaysCaption: hours >= 24,
	}
	if w.ShowFullDaysCaption {
		w.FullDays = hours / 24
	}

	if elapsedDays < monthsThreshold {
		w.Unit = UnitDays
		w.UnitValue = float64(elapsedDays)
		return w
	}
	w.Unit = UnitMonths
	w.UnitValue = math.Round(float64(elapsedDays)/30*2) / 2
	return w
}

// Mastery computes the window for an entity created at createdAt. The window
// ends at graduatedAt when set, otherwise at now.
func (e Engine) Mastery(sessions []Session, createdAt time.Time, graduatedAt *time.Time, now time.Time) MasteryWindow {
	end := now
	if graduatedAt != nil {
		end = *graduatedAt
	}
	return MasteryFor(TotalMinutes(sessions), ElapsedDays(createdAt, end))
}
