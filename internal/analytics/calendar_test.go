package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey_IgnoresTimeOfDay(t *testing.T) {
	morning := utcEngine.DayKey(at(2024, time.May, 4, 0, 1))
	night := utcEngine.DayKey(at(2024, time.May, 4, 23, 59))

	assert.Equal(t, morning, night)
	assert.Equal(t, "2024-05-04", morning.String())
}

func TestDayKey_UsesEngineLocation(t *testing.T) {
	newYork := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2024, time.January, 1, 23, 30, 0, 0, newYork)

	assert.Equal(t, day(2024, time.January, 1), New(WithLocation(newYork)).DayKey(ts))
	assert.Equal(t, day(2024, time.January, 2), utcEngine.DayKey(ts))
}

func TestStartOfWeek_Sunday(t *testing.T) {
	tests := []struct {
		name string
		in   DayKey
		want DayKey
	}{
		{name: "sunday is its own start", in: day(2024, time.March, 3), want: day(2024, time.March, 3)},
		{name: "wednesday", in: day(2024, time.March, 6), want: day(2024, time.March, 3)},
		{name: "saturday", in: day(2024, time.March, 9), want: day(2024, time.March, 3)},
		{name: "crosses month boundary", in: day(2024, time.March, 1), want: day(2024, time.February, 25)},
		{name: "crosses year boundary", in: day(2025, time.January, 2), want: day(2024, time.December, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfWeek(tt.in))
		})
	}
}

func TestSameWeek(t *testing.T) {
	assert.True(t, SameWeek(day(2024, time.March, 3), day(2024, time.March, 9)))
	assert.False(t, SameWeek(day(2024, time.March, 9), day(2024, time.March, 10)))
	assert.True(t, SameWeek(day(2024, time.December, 31), day(2025, time.January, 4)))
}

func TestMonthGrid_February2024(t *testing.T) {
	grid := MonthGrid(2024, time.February)

	require.Len(t, grid, 5)
	for col := 0; col < 4; col++ {
		assert.True(t, grid[0][col].IsZero(), "leading cell %d should be padding", col)
	}
	assert.Equal(t, day(2024, time.February, 1), grid[0][4])
	assert.Equal(t, time.Thursday, grid[0][4].Weekday())

	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if !cell.IsZero() {
				count++
			}
		}
	}
	assert.Equal(t, 29, count)
	assert.Equal(t, day(2024, time.February, 29), grid[4][4])
	assert.True(t, grid[4][5].IsZero())
	assert.True(t, grid[4][6].IsZero())
}

func TestMonthGrid_StartsOnSunday(t *testing.T) {
	grid := MonthGrid(2024, time.September)

	assert.Equal(t, day(2024, time.September, 1), grid[0][0])
	assert.Len(t, grid, 5)
}

func TestDayKey_Arithmetic(t *testing.T) {
	leap := day(2024, time.February, 28)

	assert.Equal(t, day(2024, time.February, 29), leap.AddDays(1))
	assert.Equal(t, day(2024, time.March, 1), leap.AddDays(2))
	assert.Equal(t, 2, DaysBetween(leap, day(2024, time.March, 1)))
	assert.Equal(t, -2, DaysBetween(day(2024, time.March, 1), leap))
	assert.True(t, leap.Before(leap.AddDays(1)))
	assert.False(t, leap.Before(leap))
}

func TestDayKey_JSON(t *testing.T) {
	b, err := json.Marshal(map[string]DayKey{"d": day(2024, time.March, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-03-02"}`, string(b))

	var back DayKey
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-02"`), &back))
	assert.Equal(t, day(2024, time.March, 2), back)

	_, err = ParseDayKey("03/02/2024")
	assert.Error(t, err)
}

func TestParseYearMonth(t *testing.T) {
	ym, err := ParseYearMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, YearMonth{Year: 2024, Month: time.February}, ym)
	assert.Equal(t, "2024-02", ym.String())

	_, err = ParseYearMonth("2024-13")
	assert.Error(t, err)
}
