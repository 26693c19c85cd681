package analytics

import (
	"math"
	"time"
)

// VisionMinutes is one vision's share of a day.
type VisionMinutes struct {
	Minutes int    `json:"minutes"`
	Name    string `json:"name"`
	Color   string `json:"color"`
}

// DayAggregate holds the minutes logged on one calendar day.
type DayAggregate struct {
	Date         DayKey                   `json:"date"`
	TotalMinutes int                      `json:"total_minutes"`
	PerVision    map[string]VisionMinutes `json:"per_vision"`
}

// WeekDay is a DayAggregate labelled with its short weekday name.
type WeekDay struct {
	DayAggregate
	Label string `json:"label"`
}

// WeekWindow is one Sunday-to-Saturday week relative to the current week.
type WeekWindow struct {
	Offset int        `json:"offset"`
	Start  DayKey     `json:"start"`
	Days   [7]WeekDay `json:"days"`
}

// End returns the Saturday closing the window.
func (w WeekWindow) End() DayKey {
	return w.Start.AddDays(6)
}

// TotalMinutes sums every day in the window.
func (w WeekWindow) TotalMinutes() int {
	total := 0
	for _, d := range w.Days {
		total += d.TotalMinutes
	}
	return total
}

// MaxDayMinutes returns the busiest day's total.
func (w WeekWindow) MaxDayMinutes() int {
	peak := 0
	for _, d := range w.Days {
		peak = max(peak, d.TotalMinutes)
	}
	return peak
}

var shortWeekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ShortWeekday returns the three-letter name of a weekday.
func ShortWeekday(d time.Weekday) string {
	return shortWeekdays[d]
}

func newDayAggregate(day DayKey) DayAggregate {
	return DayAggregate{Date: day, PerVision: map[string]VisionMinutes{}}
}

// AggregateByDay groups sessions by local calendar day and sums their minutes,
// overall and per vision. Sessions whose vision is missing from visions are
// never part of PerVision; whether they still count toward TotalMinutes is
// decided by the engine's OrphanPolicy.
func (e Engine) AggregateByDay(sessions []Session, visions []Vision) map[DayKey]DayAggregate {
	index := indexVisions(visions)
	out := make(map[DayKey]DayAggregate)
	for _, s := range sessions {
		vision, known := index[s.VisionID]
		if !known && e.orphans == OrphansExcluded {
			continue
		}

		day := e.DayKey(s.CompletedAt)
		agg, ok := out[day]
		if !ok {
			agg = newDayAggregate(day)
		}
		agg.TotalMinutes += s.DurationMinutes
		if known {
			vm := agg.PerVision[s.VisionID]
			vm.Minutes += s.DurationMinutes
			vm.Name = vision.Name
			vm.Color = vision.Color
			agg.PerVision[s.VisionID] = vm
		}
		out[day] = agg
	}
	return out
}

// WeekWindow returns the seven days of the week weekOffset weeks away from the
// week containing now. Days without sessions are zero-filled.
func (e Engine) WeekWindow(sessions []Session, visions []Vision, now time.Time, weekOffset int) WeekWindow {
	start := StartOfWeek(e.Today(now)).AddDays(weekOffset * 7)
	end := start.AddDays(6)

	inWeek := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		day := e.DayKey(s.CompletedAt)
		if !day.Before(start) && !end.Before(day) {
			inWeek = append(inWeek, s)
		}
	}
	byDay := e.AggregateByDay(inWeek, visions)

	w := WeekWindow{Offset: weekOffset, Start: start}
	for i := range w.Days {
		day := start.AddDays(i)
		agg, ok := byDay[day]
		if !ok {
			agg = newDayAggregate(day)
		}
		w.Days[i] = WeekDay{DayAggregate: agg, Label: ShortWeekday(day.Weekday())}
	}
	return w
}

// WeekOffsetOf returns the offset of day's week relative to the week of now.
func (e Engine) WeekOffsetOf(day DayKey, now time.Time) int {
	diff := DaysBetween(StartOfWeek(e.Today(now)), StartOfWeek(day))
	return int(math.Floor(float64(diff) / 7))
}

// DailyAverage returns total minutes divided by windowDays, rounded to the
// nearest minute. A windowDays below 1 is treated as 1.
func DailyAverage(sessions []Session, windowDays int) int {
	return roundDiv(TotalMinutes(sessions), max(1, windowDays))
}

func roundDiv(a, b int) int {
	return int(math.Round(float64(a) / float64(b)))
}

// SessionsOn returns the sessions completed on day, in input order.
func (e Engine) SessionsOn(sessions []Session, day DayKey) []Session {
	var out []Session
	for _, s := range sessions {
		if e.DayKey(s.CompletedAt) == day {
			out = append(out, s)
		}
	}
	return out
}

// ChartScale returns the y-axis ceiling in minutes for a week chart whose
// busiest day has maxMinutes.
func ChartScale(maxMinutes int) int {
	for _, step := range []int{300, 600, 900, 1200} {
		if maxMinutes <= step {
			return step
		}
	}
	return 1500
}

func indexVisions(visions []Vision) map[string]Vision {
	index := make(map[string]Vision, len(visions))
	for _, v := range visions {
		index[v.ID] = v
	}
	return index
}
