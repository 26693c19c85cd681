package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// StreakSuite covers current and longest streak computation.
type StreakSuite struct {
	suite.Suite
	engine Engine
}

func TestStreakSuite(t *testing.T) {
	suite.Run(t, new(StreakSuite))
}

func (s *StreakSuite) SetupTest() {
	s.engine = New(WithLocation(time.UTC))
}

func (s *StreakSuite) sessionsOn(days ...int) []Session {
	out := make([]Session, 0, len(days))
	for _, d := range days {
		out = append(out, sess("A", at(2024, time.January, d, 9, 0), 25))
	}
	return out
}

func (s *StreakSuite) TestEmpty() {
	s.Equal(StreakResult{}, s.engine.Streak(nil, at(2024, time.January, 1, 12, 0)))
}

func (s *StreakSuite) TestGraceWindow() {
	sessions := s.sessionsOn(1)

	got := s.engine.Streak(sessions, at(2024, time.January, 2, 23, 59))
	s.Equal(1, got.Current, "yesterday still counts")
	s.Equal(1, got.Longest)

	got = s.engine.Streak(sessions, at(2024, time.January, 3, 0, 0))
	s.Equal(0, got.Current, "two days without a session break the streak")
	s.Equal(1, got.Longest)
}

func (s *StreakSuite) TestLongestWithGap() {
	sessions := s.sessionsOn(1, 2, 3, 5, 6)

	tests := []struct {
		name        string
		now         time.Time
		wantCurrent int
	}{
		{name: "today active", now: at(2024, time.January, 6, 20, 0), wantCurrent: 2},
		{name: "grace from yesterday", now: at(2024, time.January, 7, 8, 0), wantCurrent: 2},
		{name: "on the gap day", now: at(2024, time.January, 4, 8, 0), wantCurrent: 3},
		{name: "lapsed", now: at(2024, time.January, 9, 8, 0), wantCurrent: 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got := s.engine.Streak(sessions, tt.now)
			s.Equal(3, got.Longest)
			s.Equal(tt.wantCurrent, got.Current)
			s.LessOrEqual(got.Current, got.Longest)
		})
	}
}

func (s *StreakSuite) TestMultipleSessionsSameDayCountOnce() {
	sessions := append(s.sessionsOn(1, 1, 1), sess("B", at(2024, time.January, 2, 23, 0), 5))

	got := s.engine.Streak(sessions, at(2024, time.January, 2, 23, 30))
	s.Equal(StreakResult{Current: 2, Longest: 2}, got)
}

func (s *StreakSuite) TestUnorderedInput() {
	sessions := s.sessionsOn(6, 2, 5, 1, 3)

	got := s.engine.Streak(sessions, at(2024, time.January, 6, 10, 0))
	s.Equal(StreakResult{Current: 2, Longest: 3}, got)
}

func (s *StreakSuite) TestRunAcrossMonthBoundary() {
	sessions := []Session{
		sess("A", at(2024, time.January, 30, 9, 0), 10),
		sess("A", at(2024, time.January, 31, 9, 0), 10),
		sess("A", at(2024, time.February, 1, 9, 0), 10),
	}

	got := s.engine.Streak(sessions, at(2024, time.February, 1, 10, 0))
	s.Equal(StreakResult{Current: 3, Longest: 3}, got)
}

func (s *StreakSuite) TestLocalDayBoundary() {
	tokyo := time.FixedZone("UTC+9", 9*3600)
	engine := New(WithLocation(tokyo))
	// 20:00 UTC on Jan 1 and Jan 2 are 05:00 on Jan 2 and Jan 3 in Tokyo.
	sessions := []Session{
		sess("A", at(2024, time.January, 1, 20, 0), 10),
		sess("A", at(2024, time.January, 2, 20, 0), 10),
	}

	got := engine.Streak(sessions, time.Date(2024, time.January, 3, 12, 0, 0, 0, tokyo))
	s.Equal(StreakResult{Current: 2, Longest: 2}, got)

	got = s.engine.Streak(sessions, time.Date(2024, time.January, 3, 12, 0, 0, 0, tokyo))
	s.Equal(2, got.Current, "UTC engine sees Jan 1 and Jan 2 with grace from Jan 2")
}

func (s *StreakSuite) TestDeterministic() {
	sessions := s.sessionsOn(1, 2, 3, 5, 6)
	now := at(2024, time.January, 6, 10, 0)

	s.Equal(s.engine.Streak(sessions, now), s.engine.Streak(sessions, now))
}
