package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/mastery/internal/analytics"
)

type dashboardKeyMap struct {
	PrevWeek  key.Binding
	NextWeek  key.Binding
	ThisWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Vision    key.Binding
	Quit      key.Binding
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevWeek, k.NextWeek, k.ThisWeek, k.PrevMonth, k.NextMonth, k.Vision, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var dashboardKeys = dashboardKeyMap{
	PrevWeek:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev week")),
	NextWeek:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
	ThisWeek:  key.NewBinding(key.WithKeys("t", "home"), key.WithHelp("t", "this week")),
	PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
	NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
	Vision:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "vision")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// DashboardModel shows the week chart, rankings, streaks and a month heatmap
type DashboardModel struct {
	width  int
	height int

	engine  analytics.Engine
	snap    analytics.Snapshot
	visions []analytics.Vision
	counted []analytics.Session
	joined  time.Time
	now     time.Time

	weekOffset int
	month      analytics.YearMonth
	visionIdx  int // 0 is all visions

	keys    dashboardKeyMap
	help    help.Model
	shimmer Shimmer
}

// NewDashboardModel creates the dashboard for a snapshot as of now. Summaries
// count days from joinedAt; a zero joinedAt means the first session.
func NewDashboardModel(engine analytics.Engine, snap analytics.Snapshot, joinedAt, now time.Time) DashboardModel {
	today := engine.Today(now)
	visions := analytics.VisionsWithStatus(snap.Visions, analytics.StatusActive, analytics.StatusGraduated)
	return DashboardModel{
		engine:  engine,
		snap:    snap,
		visions: visions,
		counted: analytics.Counted(snap.Sessions, visions, engine.OrphanPolicy()),
		joined:  joinedAt,
		now:     now,
		month:   analytics.YearMonth{Year: today.Year, Month: today.Month},
		keys:    dashboardKeys,
		help:    help.New(),
		shimmer: NewShimmer(DefaultShimmerConfig()),
	}
}

// Init starts the title shimmer
func (m DashboardModel) Init() tea.Cmd {
	return m.shimmer.Tick()
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		m.shimmer.Advance()
		return m, m.shimmer.Tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevWeek):
			m = m.shiftWeek(-1)
		case key.Matches(msg, m.keys.NextWeek):
			m = m.shiftWeek(1)
		case key.Matches(msg, m.keys.ThisWeek):
			m = m.shiftWeek(-m.weekOffset)
		case key.Matches(msg, m.keys.PrevMonth):
			m.month = addMonths(m.month, -1)
		case key.Matches(msg, m.keys.NextMonth):
			m.month = addMonths(m.month, 1)
		case key.Matches(msg, m.keys.Vision):
			m.visionIdx = (m.visionIdx + 1) % (len(m.visions) + 1)
		}
	}
	return m, nil
}

// shiftWeek moves the week window and keeps the heatmap on the month the week ends in
func (m DashboardModel) shiftWeek(delta int) DashboardModel {
	m.weekOffset += delta
	end := analytics.StartOfWeek(m.engine.Today(m.now)).AddDays(m.weekOffset*7 + 6)
	m.month = analytics.YearMonth{Year: end.Year, Month: end.Month}
	return m
}

func addMonths(ym analytics.YearMonth, n int) analytics.YearMonth {
	t := time.Date(ym.Year, ym.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return analytics.YearMonth{Year: t.Year(), Month: t.Month()}
}

// selected returns the focused vision, or false when showing all
func (m DashboardModel) selected() (analytics.Vision, bool) {
	if m.visionIdx == 0 || m.visionIdx > len(m.visions) {
		return analytics.Vision{}, false
	}
	return m.visions[m.visionIdx-1], true
}

// scope returns the sessions and visions the panels are computed over
func (m DashboardModel) scope() ([]analytics.Session, []analytics.Vision, string) {
	if v, ok := m.selected(); ok {
		return analytics.ForVision(m.snap.Sessions, v), []analytics.Vision{v}, v.Name
	}
	return m.counted, m.visions, "All visions"
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sessions, visions, scopeName := m.scope()
	week := m.engine.WeekWindow(sessions, visions, m.now, m.weekOffset)

	title := m.shimmer.Render("MASTERY", ColorAccentMain, ColorAccentBright) +
		"  " + labelStyle.Render(scopeName)
	helpBar := m.help.View(m.keys)

	left := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(WeekTitle(week)),
		"",
		RenderWeekChart(week, visions, max(5, m.height-16)),
		labelStyle.Render("Week total ")+valueStyle.Render(FormatMinutes(week.TotalMinutes())),
	)

	streak := m.engine.Streak(sessions, m.now)
	summary := m.engine.Summary(sessions, m.joined, m.now)
	stats := strings.Join([]string{
		fg(ColorFlame).Render("🔥 ") + labelStyle.Render("Streak ") + valueStyle.Render(fmt.Sprintf("%d", streak.Current)) +
			labelStyle.Render(fmt.Sprintf("  best %d", streak.Longest)),
		labelStyle.Render("Daily average ") + valueStyle.Render(FormatMinutes(summary.DailyAverage)),
		labelStyle.Render("Active days ") + valueStyle.Render(fmt.Sprintf("%d / %d", summary.ActiveDays, summary.DaysSinceJoining)),
	}, "\n")

	right := lipgloss.JoinVertical(lipgloss.Left,
		stats,
		"",
		headerStyle.Render("Rankings"),
		RenderRankings(m.engine.RankVisions(m.counted, m.visions)),
		RenderHeatmap(m.engine.MonthHeatmap(sessions, m.month.Year, m.month.Month), m.month),
	)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)

	var body string
	if m.width < 100 {
		body = lipgloss.JoinVertical(lipgloss.Left, panel.Render(left), panel.Render(right))
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel.Render(left), " ", panel.Render(right))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, helpBar)
}
