package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/mastery/internal/analytics"
	"github.com/balkashynov/mastery/internal/models"
)

var (
	engine = analytics.New(analytics.WithLocation(time.UTC))
	refNow = time.Date(2024, time.March, 2, 20, 0, 0, 0, time.UTC)
)

func fixture() ([]analytics.Session, []analytics.Vision) {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	visions := []analytics.Vision{
		{ID: "A", Name: "Piano", Color: "#329BA4", CreatedAt: created, Status: analytics.StatusActive},
		{ID: "B", Name: "Running", Color: "#F97316", CreatedAt: created, Status: analytics.StatusActive},
	}
	sessions := []analytics.Session{
		{ID: "1", HabitID: "h", VisionID: "A", CompletedAt: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), DurationMinutes: 30},
		{ID: "2", HabitID: "h", VisionID: "A", CompletedAt: time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC), DurationMinutes: 45},
		{ID: "3", HabitID: "h", VisionID: "B", CompletedAt: time.Date(2024, time.March, 2, 18, 0, 0, 0, time.UTC), DurationMinutes: 10},
		{ID: "4", HabitID: "h", VisionID: "gone", CompletedAt: time.Date(2024, time.March, 2, 19, 0, 0, 0, time.UTC), DurationMinutes: 5},
	}
	return sessions, visions
}

func plain(s string) string {
	return ansi.Strip(s)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h00m", FormatMinutes(60))
	assert.Equal(t, "2h05m", FormatMinutes(125))
}

func TestRenderWeekTable(t *testing.T) {
	sessions, visions := fixture()
	week := engine.WeekWindow(sessions, visions, refNow, 0)

	out := plain(RenderWeekTable(week, visions))

	assert.Contains(t, out, "This Week · Feb 25 – Mar 2, 2024")
	assert.Contains(t, out, "Piano")
	assert.Contains(t, out, "Running")
	assert.Contains(t, out, "Other")
	assert.Contains(t, out, "1h15m")
	assert.Contains(t, out, "1h30m", "grand total includes orphan minutes")

	empty := engine.WeekWindow(sessions, visions, refNow, -4)
	assert.Contains(t, plain(RenderWeekTable(empty, visions)), "No focus time this week.")
}

func TestWeekRows(t *testing.T) {
	sessions, visions := fixture()
	week := engine.WeekWindow(sessions, visions, refNow, 0)

	rows := weekRows(week, visions)
	require.Len(t, rows, 3)
	assert.Equal(t, "Piano", rows[0].label)
	assert.Equal(t, 75, rows[0].total)
	assert.Equal(t, 30, rows[0].minutes[5])
	assert.Equal(t, otherLabel, rows[2].label)
	assert.Equal(t, 5, rows[2].total)
}

func TestRenderWeekChart(t *testing.T) {
	sessions, visions := fixture()
	week := engine.WeekWindow(sessions, visions, refNow, 0)

	out := plain(RenderWeekChart(week, visions, 6))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "5h00m")
	assert.Contains(t, lines[7], "Sun")
	assert.Contains(t, lines[7], "Sat")
	assert.Contains(t, lines[5], "██", "Saturday's 60 minutes fill the bottom row")
}

func TestRenderRankings(t *testing.T) {
	sessions, visions := fixture()
	out := plain(RenderRankings(engine.RankVisions(sessions, visions)))

	assert.Contains(t, out, "1. ● Piano")
	assert.Contains(t, out, "2 days")
	assert.Contains(t, out, "1 day\n")
	assert.Contains(t, plain(RenderRankings(nil)), "No focus sessions yet.")
}

func TestRenderHeatmap(t *testing.T) {
	sessions, _ := fixture()
	grid := engine.MonthHeatmap(sessions, 2024, time.March)

	out := plain(RenderHeatmap(grid, analytics.YearMonth{Year: 2024, Month: time.March}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "March 2024", lines[0])
	assert.Contains(t, lines[1], "Su Mo Tu We Th Fr Sa")
	assert.Equal(t, strings.Repeat("   ", 5)+"▓▓ ██ ", lines[2], "1 Mar 2024 is a Friday")
	assert.Contains(t, lines[len(lines)-1], "Total 1h30m")
}

func TestHeatmapCellClamps(t *testing.T) {
	assert.Equal(t, "··", plain(HeatmapCell(-3)))
	assert.Equal(t, "██", plain(HeatmapCell(99)))
}

func TestBigClock(t *testing.T) {
	short := plain(BigClock(5*time.Minute + 7*time.Second))
	rows := strings.Split(short, "\n")
	require.Len(t, rows, 5)
	assert.Equal(t, 5*6, len([]rune(rows[0])), "MM:SS is five glyphs")

	long := strings.Split(plain(BigClock(time.Hour+time.Second)), "\n")
	assert.Equal(t, 8*6, len([]rune(long[0])))
}

func TestTimerModelKeys(t *testing.T) {
	session := &models.FocusSession{ID: "s", StartedAt: refNow.Add(-10 * time.Minute)}

	tests := []struct {
		key  tea.KeyMsg
		want timerAction
	}{
		{key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, want: timerStop},
		{key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, want: timerCancel},
		{key: tea.KeyMsg{Type: tea.KeyEsc}, want: timerDetach},
	}
	for _, tt := range tests {
		m := NewTimerModel(session, TimerInfo{HabitName: "Scales"})
		next, cmd := m.Update(tt.key)
		assert.Equal(t, tt.want, next.(TimerModel).action, tt.key.String())
		assert.NotNil(t, cmd)
	}

	m := NewTimerModel(session, TimerInfo{HabitName: "Scales"})
	m.now = func() time.Time { return refNow }
	next, _ := m.Update(timerTickMsg(refNow))
	assert.Equal(t, 10*time.Minute, next.(TimerModel).elapsed)
}

func TestReflectionModelFlow(t *testing.T) {
	var m tea.Model = NewReflectionModel("Scales", 25)

	for _, r := range "clean run" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for _, r := range "no mistakes" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got, saved := m.(ReflectionModel).Result()
	assert.True(t, saved)
	assert.Equal(t, Reflection{Accomplishment: "clean run", MajorWin: "no mistakes"}, got)

	skipped, _ := NewReflectionModel("Scales", 25).Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, saved = skipped.(ReflectionModel).Result()
	assert.False(t, saved)
}

func TestDashboardNavigation(t *testing.T) {
	sessions, visions := fixture()
	snap, err := analytics.NewSnapshot(sessions, visions, nil)
	require.NoError(t, err)

	var m tea.Model = NewDashboardModel(engine, snap, time.Time{}, refNow)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	dash := m.(DashboardModel)
	assert.Equal(t, -2, dash.weekOffset)
	assert.Equal(t, analytics.YearMonth{Year: 2024, Month: time.February}, dash.month)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	assert.Equal(t, 0, m.(DashboardModel).weekOffset)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	v, ok := m.(DashboardModel).selected()
	require.True(t, ok)
	assert.Equal(t, "Piano", v.Name)

	view := plain(m.View())
	assert.Contains(t, view, "Rankings")
	assert.Contains(t, view, "March 2024")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, ok = m.(DashboardModel).selected()
	assert.False(t, ok, "tab wraps back to all visions")
}

func TestDashboardCountsLikeStats(t *testing.T) {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	graduated := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	visions := []analytics.Vision{
		{ID: "D", Name: "Dropped", CreatedAt: created, Status: analytics.StatusDeleted},
		{ID: "G", Name: "Done", CreatedAt: created, Status: analytics.StatusGraduated, GraduatedAt: &graduated},
	}
	sessions := []analytics.Session{
		{ID: "1", HabitID: "h", VisionID: "D", CompletedAt: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), DurationMinutes: 30},
		{ID: "2", HabitID: "h", VisionID: "G", CompletedAt: time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC), DurationMinutes: 45},
	}
	snap, err := analytics.NewSnapshot(sessions, visions, nil)
	require.NoError(t, err)

	strict := analytics.New(analytics.WithLocation(time.UTC), analytics.WithOrphanPolicy(analytics.OrphansExcluded))
	var m tea.Model = NewDashboardModel(strict, snap, time.Time{}, refNow)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})

	dash := m.(DashboardModel)
	assert.Empty(t, dash.counted)
	assert.Empty(t, strict.RankVisions(dash.counted, dash.visions))

	view := plain(m.View())
	assert.Contains(t, view, "Streak 0  best 0")
	assert.Contains(t, view, "No focus sessions yet.")
}

func TestDashboardSummaryUsesJoinDate(t *testing.T) {
	sessions, visions := fixture()
	snap, err := analytics.NewSnapshot(sessions, visions, nil)
	require.NoError(t, err)

	joined := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	var m tea.Model = NewDashboardModel(engine, snap, joined, refNow)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})

	view := plain(m.View())
	assert.Contains(t, view, "Active days 2 / 31")
}

func TestShimmerSweep(t *testing.T) {
	s := NewShimmer(DefaultShimmerConfig())
	start := s.Center(20)
	s.Advance()
	assert.Greater(t, s.Center(20), start)

	for i := 0; i < s.Config.Frames-1; i++ {
		s.Advance()
	}
	assert.Equal(t, start, s.Center(20), "sweep restarts after a full cycle")
	assert.Equal(t, "MASTERY", plain(s.Render("MASTERY", ColorAccentMain, ColorAccentBright)))
}
