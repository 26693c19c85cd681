package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParsedEntry represents a focus log entry parsed from natural language
type ParsedEntry struct {
	Accomplishment string
	Minutes        int
	CompletedAt    time.Time
	MajorWin       string
	Errors         []string
}

var (
	durationRegex = regexp.MustCompile(`(?i)^(?:(\d+)h)?(?:(\d+)m(?:in)?)?$`)
	atRegex       = regexp.MustCompile(`(?i)\bat:(\S+)`)
	winRegex      = regexp.MustCompile(`(?i)\bwin:(.*)$`)
)

// ParseEntry extracts session metadata from a log line using natural syntax
// Syntax: "What I did 1h30m at:yesterday win:the thing that went well"
// Everything after win: is the major win; at: accepts the ParseDate formats
// that contain no spaces.
func ParseEntry(input string, now time.Time) ParsedEntry {
	result := ParsedEntry{CompletedAt: now, Errors: []string{}}

	// Extract major win (everything after win:)
	if m := winRegex.FindStringSubmatch(input); m != nil {
		result.MajorWin = strings.TrimSpace(m[1])
		input = winRegex.ReplaceAllString(input, "")
	}

	// Extract completion date (at:yesterday, at:2024-03-01)
	if m := atRegex.FindStringSubmatch(input); m != nil {
		at, err := ParseDate(m[1], now)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid date '"+m[1]+"': "+err.Error())
		} else {
			result.CompletedAt = at
		}
		input = atRegex.ReplaceAllString(input, "")
	}

	// Extract duration (45m, 2h, 1h30m); the first match wins
	words := strings.Fields(input)
	for i, word := range words {
		m := durationRegex.FindStringSubmatch(word)
		if m == nil || (m[1] == "" && m[2] == "") {
			continue
		}
		hours, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		result.Minutes = hours*60 + mins
		words = append(words[:i], words[i+1:]...)
		break
	}
	if result.Minutes <= 0 {
		result.Errors = append(result.Errors, "Missing duration. Use: 45m, 2h or 1h30m")
	}

	result.Accomplishment = strings.Join(words, " ")
	return result
}
