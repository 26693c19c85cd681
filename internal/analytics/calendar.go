package analytics

import (
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey identifies a calendar date with no time component.
// The zero DayKey is used as the empty cell of a month grid.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the calendar date of t in t's own location.
func KeyOf(t time.Time) DayKey {
	y, m, d := t.Date()
	return DayKey{Year: y, Month: m, Day: d}
}

// ParseDayKey parses a YYYY-MM-DD date.
func ParseDayKey(s string) (DayKey, error) {
	t, err := time.Parse(dayKeyLayout, s)
	if err != nil {
		return DayKey{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return KeyOf(t), nil
}

// String formats the key as YYYY-MM-DD.
func (k DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// MarshalText implements encoding.TextMarshaler so keys render as dates in JSON.
func (k DayKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *DayKey) UnmarshalText(b []byte) error {
	parsed, err := ParseDayKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IsZero reports whether k is the empty key.
func (k DayKey) IsZero() bool {
	return k == DayKey{}
}

// utc anchors the date at UTC midnight; UTC has no DST so day arithmetic is exact.
func (k DayKey) utc() time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, time.UTC)
}

// Time returns midnight of the day in loc.
func (k DayKey) Time(loc *time.Location) time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of week with Sunday = 0, independent of host locale.
func (k DayKey) Weekday() time.Weekday {
	return k.utc().Weekday()
}

// AddDays returns the key n days later (earlier for negative n).
func (k DayKey) AddDays(n int) DayKey {
	return KeyOf(k.utc().AddDate(0, 0, n))
}

// Before reports whether k is strictly earlier than other.
func (k DayKey) Before(other DayKey) bool {
	return k.utc().Before(other.utc())
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b DayKey) int {
	return int(b.utc().Sub(a.utc()).Hours() / 24)
}

// StartOfWeek returns the Sunday on or before k.
func StartOfWeek(k DayKey) DayKey {
	return k.AddDays(-int(k.Weekday()))
}

// SameWeek reports whether a and b fall in the same Sunday-start week.
func SameWeek(a, b DayKey) bool {
	return StartOfWeek(a) == StartOfWeek(b)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid lays out a month as rows of seven days, Sunday first. Cells before
// the 1st and after the last day are zero keys.
func MonthGrid(year int, month time.Month) [][7]DayKey {
	first := DayKey{Year: year, Month: month, Day: 1}
	lead := int(first.Weekday())
	days := DaysIn(year, month)

	var rows [][7]DayKey
	var row [7]DayKey
	col := lead
	for d := 1; d <= days; d++ {
		row[col] = DayKey{Year: year, Month: month, Day: d}
		col++
		if col == 7 {
			rows = append(rows, row)
			row = [7]DayKey{}
			col = 0
		}
	}
	if col > 0 {
		rows = append(rows, row)
	}
	return rows
}

// YearMonth names a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// String formats the month as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Before reports whether ym is earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// ParseYearMonth parses a YYYY-MM month.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// activeDays reduces sessions to the set of local calendar days with at least
// one session.
func (e Engine) activeDays(sessions []Session) map[DayKey]struct{} {
	days := make(map[DayKey]struct{}, len(sessions))
	for _, s := range sessions {
		days[e.DayKey(s.CompletedAt)] = struct{}{}
	}
	return days
}
