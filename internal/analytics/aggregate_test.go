package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateByDay_EndToEnd(t *testing.T) {
	visions := []Vision{vision("A"), vision("B")}

	byDay := utcEngine.AggregateByDay(endToEndSessions(), visions)

	require.Len(t, byDay, 2)
	march2 := byDay[day(2024, time.March, 2)]
	assert.Equal(t, 55, march2.TotalMinutes)
	assert.Equal(t, 45, march2.PerVision["A"].Minutes)
	assert.Equal(t, 10, march2.PerVision["B"].Minutes)
	assert.Equal(t, "Vision A", march2.PerVision["A"].Name)
	assert.Equal(t, "#329BA4", march2.PerVision["B"].Color)

	march1 := byDay[day(2024, time.March, 1)]
	assert.Equal(t, 30, march1.TotalMinutes)
	assert.Len(t, march1.PerVision, 1)
}

func TestAggregateByDay_Empty(t *testing.T) {
	assert.Empty(t, utcEngine.AggregateByDay(nil, nil))
}

func TestAggregateByDay_OrphanPolicy(t *testing.T) {
	visions := []Vision{vision("A")}
	sessions := []Session{
		sess("A", at(2024, time.March, 2, 9, 0), 20),
		sess("gone", at(2024, time.March, 2, 11, 0), 15),
		sess("gone", at(2024, time.March, 3, 11, 0), 40),
	}

	t.Run("count in totals", func(t *testing.T) {
		byDay := utcEngine.AggregateByDay(sessions, visions)

		assert.Equal(t, 35, byDay[day(2024, time.March, 2)].TotalMinutes)
		assert.NotContains(t, byDay[day(2024, time.March, 2)].PerVision, "gone")
		assert.Equal(t, 40, byDay[day(2024, time.March, 3)].TotalMinutes)
		assert.Empty(t, byDay[day(2024, time.March, 3)].PerVision)
	})

	t.Run("excluded", func(t *testing.T) {
		engine := New(WithLocation(time.UTC), WithOrphanPolicy(OrphansExcluded))
		byDay := engine.AggregateByDay(sessions, visions)

		assert.Equal(t, 20, byDay[day(2024, time.March, 2)].TotalMinutes)
		assert.NotContains(t, byDay, day(2024, time.March, 3))
	})
}

func TestAggregateByDay_DoesNotMutateInput(t *testing.T) {
	sessions := endToEndSessions()
	before := append([]Session(nil), sessions...)

	utcEngine.AggregateByDay(sessions, []Vision{vision("A")})

	assert.Equal(t, before, sessions)
}

func TestWeekWindow(t *testing.T) {
	visions := []Vision{vision("A"), vision("B")}
	now := at(2024, time.March, 6, 15, 0) // Wednesday

	t.Run("current week is empty", func(t *testing.T) {
		w := utcEngine.WeekWindow(endToEndSessions(), visions, now, 0)

		assert.Equal(t, day(2024, time.March, 3), w.Start)
		assert.Equal(t, day(2024, time.March, 9), w.End())
		assert.Equal(t, 0, w.TotalMinutes())
		labels := make([]string, 0, 7)
		for _, d := range w.Days {
			labels = append(labels, d.Label)
			assert.NotNil(t, d.PerVision)
		}
		assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, labels)
	})

	t.Run("previous week", func(t *testing.T) {
		w := utcEngine.WeekWindow(endToEndSessions(), visions, now, -1)

		assert.Equal(t, -1, w.Offset)
		assert.Equal(t, day(2024, time.February, 25), w.Start)
		assert.Equal(t, "Fri", w.Days[5].Label)
		assert.Equal(t, 30, w.Days[5].TotalMinutes)
		assert.Equal(t, day(2024, time.March, 2), w.Days[6].Date)
		assert.Equal(t, 55, w.Days[6].TotalMinutes)
		assert.Equal(t, 85, w.TotalMinutes())
		assert.Equal(t, 55, w.MaxDayMinutes())
	})
}

func TestWeekOffsetOf(t *testing.T) {
	now := at(2024, time.March, 6, 15, 0)

	assert.Equal(t, 0, utcEngine.WeekOffsetOf(day(2024, time.March, 9), now))
	assert.Equal(t, -1, utcEngine.WeekOffsetOf(day(2024, time.February, 27), now))
	assert.Equal(t, 2, utcEngine.WeekOffsetOf(day(2024, time.March, 20), now))
	assert.Equal(t, -53, utcEngine.WeekOffsetOf(day(2023, time.March, 1), now))
}

func TestDailyAverage(t *testing.T) {
	sessions := []Session{
		sess("A", at(2024, time.March, 1, 9, 0), 60),
		sess("A", at(2024, time.March, 2, 9, 0), 40),
	}

	tests := []struct {
		name       string
		windowDays int
		want       int
	}{
		{name: "rounds down", windowDays: 3, want: 33},
		{name: "rounds half up", windowDays: 8, want: 13},
		{name: "zero window floored to one", windowDays: 0, want: 100},
		{name: "negative window floored to one", windowDays: -4, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DailyAverage(sessions, tt.windowDays))
		})
	}

	assert.Equal(t, 0, DailyAverage(nil, 10))
}

func TestSessionsOn(t *testing.T) {
	got := utcEngine.SessionsOn(endToEndSessions(), day(2024, time.March, 2))

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].VisionID)
	assert.Equal(t, "B", got[1].VisionID)
	assert.Empty(t, utcEngine.SessionsOn(endToEndSessions(), day(2024, time.March, 5)))
}

func TestChartScale(t *testing.T) {
	tests := map[int]int{0: 300, 300: 300, 301: 600, 600: 600, 899: 900, 1200: 1200, 1201: 1500, 5000: 1500}
	for in, want := range tests {
		assert.Equal(t, want, ChartScale(in), "max minutes %d", in)
	}
}
