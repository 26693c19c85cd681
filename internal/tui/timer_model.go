package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/mastery/internal/analytics"
	"github.com/balkashynov/mastery/internal/models"
)

// TimerInfo is the context shown next to the running clock
type TimerInfo struct {
	HabitName    string
	VisionName   string
	VisionColor  string
	Streak       analytics.StreakResult
	TodayMinutes int
}

// timerAction records how the timer screen was left
type timerAction int

const (
	timerRunning timerAction = iota
	timerStop                // stop and reflect
	timerDetach              // leave it running
	timerCancel              // discard the session
)

// TimerModel is the TUI model for a running focus session
type TimerModel struct {
	width   int
	height  int
	session *models.FocusSession
	info    TimerInfo
	now     func() time.Time

	elapsed time.Duration
	frame   int
	action  timerAction
}

// timerTickMsg is sent every second to update the clock
type timerTickMsg time.Time

// NewTimerModel creates a new timer TUI model
func NewTimerModel(session *models.FocusSession, info TimerInfo) TimerModel {
	return TimerModel{
		session: session,
		info:    info,
		now:     time.Now,
		elapsed: time.Since(session.StartedAt),
	}
}

func tickEverySecond() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// Init starts the clock
func (m TimerModel) Init() tea.Cmd {
	return tickEverySecond()
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsed = m.now().Sub(m.session.StartedAt)
		m.frame = (m.frame + 1) % len(timerGlyphs)
		if m.action != timerRunning {
			return m, nil
		}
		return m, tickEverySecond()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S", "enter":
			m.action = timerStop
			return m, tea.Quit
		case "x", "X":
			m.action = timerCancel
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.action = timerDetach
			return m, tea.Quit
		}
	}

	return m, nil
}

var timerGlyphs = []string{"◐", "◓", "◑", "◒"}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("s stop & reflect · x discard · esc/q leave running")

	contentHeight := m.height - 2
	if m.width < 90 {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderClockPanel(m.width, contentHeight), helpBar)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2
	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderClockPanel(leftWidth, contentHeight),
		"  ",
		m.renderDetailsPanel(rightWidth, contentHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

func (m TimerModel) renderClockPanel(width, height int) string {
	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)
	glyph := timerGlyphs[m.frame]

	parts := []string{
		center.Inherit(headerStyle).Render(fmt.Sprintf("%s  FOCUSING  %s", glyph, glyph)),
		center.Inherit(fg(visionColor(m.info.VisionColor)).Bold(true)).Render(truncate(m.info.HabitName, width-4)),
		center.Render(BigClock(m.elapsed)),
		center.Inherit(fg(ColorSecondaryText).Italic(true)).Render("Started at " + m.session.StartedAt.Format("15:04:05")),
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(parts, "\n\n"))
}

func (m TimerModel) renderDetailsPanel(width, height int) string {
	line := func(icon, label, value, color string) string {
		return lipgloss.NewStyle().Align(lipgloss.Center).Width(width - 4).Render(
			fmt.Sprintf("%s %s %s", icon, labelStyle.Render(label+":"), fg(color).Bold(true).Render(value)))
	}

	intention := m.session.Intention
	intentionColor := ColorPrimaryText
	if intention == "" {
		intention = "none"
		intentionColor = ColorDisabledText
	}

	box := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(visionColor(m.info.VisionColor))).
		Width(width-8).
		Padding(0, 1).
		Render(m.info.VisionName)

	parts := []string{
		box,
		line("🎯", "Intention", intention, intentionColor),
		line("🔥", "Streak", fmt.Sprintf("%d days (best %d)", m.info.Streak.Current, m.info.Streak.Longest), ColorFlame),
		line("⏱", "Today", FormatMinutes(m.info.TodayMinutes+int(m.elapsed/time.Minute)), ColorAccentBright),
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(parts, "\n\n"))
}

// clockGlyphs holds 5-row block art for the clock characters
var clockGlyphs = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// BigClock renders d as block digits, MM:SS below an hour and HH:MM:SS after
func BigClock(d time.Duration) string {
	d = max(d, 0)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	text := fmt.Sprintf("%02d:%02d", minutes, seconds)
	if hours > 0 {
		text = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	var rows [5]strings.Builder
	for _, r := range text {
		glyph := clockGlyphs[r]
		for i := range rows {
			rows[i].WriteString(glyph[i])
			rows[i].WriteString(" ")
		}
	}

	style := fg(ColorAccentBright).Bold(true)
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = style.Render(rows[i].String())
	}
	return strings.Join(lines, "\n")
}
