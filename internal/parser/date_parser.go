package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoDateRegex   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	agoRegex       = regexp.MustCompile(`^(\d+)\s*(day|days|week|weeks)\s+ago$`)
)

// ParseDate parses a calendar date relative to now and returns that day at
// now's time of day in now's location.
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2024")
// - yyyy-mm-dd (e.g., "2024-12-15")
// - "today", "yesterday"
// - "N days ago", "N weeks ago"
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	switch input {
	case "today", "now":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	if m := slashDateRegex.FindStringSubmatch(input); m != nil {
		return buildDate(m[3], m[2], m[1], now)
	}
	if m := isoDateRegex.FindStringSubmatch(input); m != nil {
		return buildDate(m[1], m[2], m[3], now)
	}
	if m := agoRegex.FindStringSubmatch(input); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid number")
		}
		days := amount
		if strings.HasPrefix(m[2], "week") {
			days = amount * 7
		}
		if days > 3660 {
			return time.Time{}, fmt.Errorf("date is too far in the past")
		}
		return now.AddDate(0, 0, -days), nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q. Use: dd/mm/yyyy, yyyy-mm-dd, today, yesterday or N days ago", input)
}

func buildDate(yearStr, monthStr, dayStr string, now time.Time) (time.Time, error) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if year < 1970 || year > 2100 {
		return time.Time{}, fmt.Errorf("year must be between 1970 and 2100")
	}

	t := time.Date(year, time.Month(month), day, now.Hour(), now.Minute(), now.Second(), 0, now.Location())
	// Reject dates that time.Date normalised, such as 31/02.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return t, nil
}

// FormatDate renders t relative to now for listings
func FormatDate(t, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	local := t.In(now.Location())
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, now.Location())
	daysDiff := int(today.Sub(day).Round(time.Hour).Hours() / 24)

	dateStr := local.Format("02/01/2006")
	switch {
	case daysDiff == 0:
		return fmt.Sprintf("today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("yesterday (%s)", dateStr)
	case daysDiff > 1 && daysDiff <= 7:
		return fmt.Sprintf("%s (%d days ago)", dateStr, daysDiff)
	default:
		return dateStr
	}
}
