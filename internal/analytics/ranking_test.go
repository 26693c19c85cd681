package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankVisions_EndToEnd(t *testing.T) {
	for _, order := range [][]Vision{
		{vision("A"), vision("B")},
		{vision("B"), vision("A")},
	} {
		rankings := utcEngine.RankVisions(endToEndSessions(), order)

		require.Len(t, rankings, 2)
		assert.Equal(t, VisionRanking{VisionID: "A", Name: "Vision A", Color: "#329BA4", ActiveDayCount: 2, Rank: 1}, rankings[0])
		assert.Equal(t, "B", rankings[1].VisionID)
		assert.Equal(t, 1, rankings[1].ActiveDayCount)
		assert.Equal(t, 2, rankings[1].Rank)
	}
}

func TestRankVisions_TiesKeepInputOrder(t *testing.T) {
	sessions := []Session{
		sess("Y", at(2024, time.April, 1, 9, 0), 10),
		sess("X", at(2024, time.April, 2, 9, 0), 10),
		sess("Z", at(2024, time.April, 1, 9, 0), 10),
		sess("Z", at(2024, time.April, 3, 9, 0), 10),
	}

	got := utcEngine.RankVisions(sessions, []Vision{vision("X"), vision("Y"), vision("Z")})
	assert.Equal(t, []string{"Z", "X", "Y"}, rankedIDs(got))

	got = utcEngine.RankVisions(sessions, []Vision{vision("Y"), vision("Z"), vision("X")})
	assert.Equal(t, []string{"Z", "Y", "X"}, rankedIDs(got))
}

func TestRankVisions_SkipsIdleAndUnknown(t *testing.T) {
	sessions := []Session{
		sess("A", at(2024, time.April, 1, 9, 0), 10),
		sess("A", at(2024, time.April, 1, 18, 0), 10),
		sess("ghost", at(2024, time.April, 2, 9, 0), 10),
	}

	got := utcEngine.RankVisions(sessions, []Vision{vision("idle"), vision("A"), vision("A")})

	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].VisionID)
	assert.Equal(t, 1, got[0].ActiveDayCount)
	assert.Empty(t, utcEngine.RankVisions(nil, []Vision{vision("A")}))
}

func rankedIDs(rankings []VisionRanking) []string {
	ids := make([]string, 0, len(rankings))
	for i, r := range rankings {
		if r.Rank != i+1 {
			return nil
		}
		ids = append(ids, r.VisionID)
	}
	return ids
}

func TestHeatmapLevel_Boundaries(t *testing.T) {
	minutes := []int{0, 1, 14, 15, 29, 30, 59, 60, 119, 120}
	levels := []int{0, 1, 1, 2, 2, 3, 3, 4, 4, 5}

	for i, m := range minutes {
		assert.Equal(t, levels[i], HeatmapLevel(m), "minutes %d", m)
	}
	assert.Equal(t, LevelMax, HeatmapLevel(600))
	assert.Equal(t, LevelNone, HeatmapLevel(-5))
}

func TestMonthHeatmap(t *testing.T) {
	sessions := []Session{
		sess("A", at(2024, time.February, 1, 9, 0), 10),
		sess("A", at(2024, time.February, 1, 19, 0), 10),
		sess("A", at(2024, time.February, 29, 9, 0), 180),
		sess("A", at(2024, time.March, 1, 9, 0), 45),
	}

	grid := utcEngine.MonthHeatmap(sessions, 2024, time.February)

	require.Len(t, grid, 5)
	assert.True(t, grid[0][0].Date.IsZero())
	assert.Equal(t, HeatmapCell{Date: day(2024, time.February, 1), Minutes: 20, Level: 2}, grid[0][4])
	assert.Equal(t, HeatmapCell{Date: day(2024, time.February, 2)}, grid[0][5])
	assert.Equal(t, 5, grid[4][4].Level)
	assert.True(t, grid[4][5].Date.IsZero())
}

func TestActivityMonths(t *testing.T) {
	sessions := []Session{
		sess("A", at(2023, time.November, 3, 9, 0), 10),
		sess("A", at(2024, time.January, 5, 9, 0), 10),
		sess("A", at(2024, time.January, 9, 9, 0), 10),
	}
	now := at(2024, time.March, 6, 9, 0)

	active := utcEngine.ActivityMonths(sessions, now, false)
	assert.Equal(t, []YearMonth{
		{Year: 2023, Month: time.November},
		{Year: 2024, Month: time.January},
		{Year: 2024, Month: time.March},
	}, active)

	graduated := utcEngine.ActivityMonths(sessions, now, true)
	assert.Len(t, graduated, 2)
	assert.Equal(t, YearMonth{Year: 2024, Month: time.January}, graduated[1])

	assert.Empty(t, utcEngine.ActivityMonths(nil, now, true))
}
