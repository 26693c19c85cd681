package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/mastery/internal/analytics"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	mutedStyle   = fg(ColorDisabledText)
	labelStyle   = fg(ColorSecondaryText)
	valueStyle   = fg(ColorPrimaryText).Bold(true)
	otherLabel   = "Other"
	weekColWidth = 7
)

// FormatMinutes renders minutes as "45m" or "2h05m"
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

// weekRow is one line of the weekly table
type weekRow struct {
	label   string
	color   string
	minutes [7]int
	total   int
}

// weekRows returns one row per vision with minutes in the week, in the order
// of visions, plus an "Other" row for minutes without a known vision
func weekRows(w analytics.WeekWindow, visions []analytics.Vision) []weekRow {
	var rows []weekRow
	for _, v := range visions {
		row := weekRow{label: v.Name, color: v.Color}
		for i, d := range w.Days {
			row.minutes[i] = d.PerVision[v.ID].Minutes
			row.total += row.minutes[i]
		}
		if row.total > 0 {
			rows = append(rows, row)
		}
	}

	other := weekRow{label: otherLabel, color: ColorDisabledText}
	for i, d := range w.Days {
		known := 0
		for _, vm := range d.PerVision {
			known += vm.Minutes
		}
		other.minutes[i] = d.TotalMinutes - known
		other.total += other.minutes[i]
	}
	if other.total > 0 {
		rows = append(rows, other)
	}
	return rows
}

// WeekTitle renders "This Week · Mar 3 – Mar 9, 2024"
func WeekTitle(w analytics.WeekWindow) string {
	start := w.Start.Time(time.UTC)
	end := w.End().Time(time.UTC)
	return fmt.Sprintf("%s · %s – %s", analytics.WeekLabel(w.Offset), start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}

// RenderWeekTable renders minutes per vision and weekday with totals
func RenderWeekTable(w analytics.WeekWindow, visions []analytics.Vision) string {
	rows := weekRows(w, visions)

	nameWidth := 20
	for _, r := range rows {
		nameWidth = max(nameWidth, min(lipgloss.Width(r.label)+2, 32))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(WeekTitle(w)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(padRight("Vision", nameWidth)))
	for _, d := range w.Days {
		b.WriteString(labelStyle.Render(padLeft(d.Label, weekColWidth)))
	}
	b.WriteString(labelStyle.Render(padLeft("Total", weekColWidth+2)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", nameWidth+weekColWidth*8+2)))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("No focus time this week."))
		b.WriteString("\n")
		return b.String()
	}

	for _, r := range rows {
		b.WriteString(fg(visionColor(r.color)).Render("● "))
		b.WriteString(padRight(truncate(r.label, nameWidth-3), nameWidth-2))
		for _, m := range r.minutes {
			b.WriteString(minutesCell(m, weekColWidth))
		}
		b.WriteString(valueStyle.Render(padLeft(FormatMinutes(r.total), weekColWidth+2)))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(strings.Repeat("─", nameWidth+weekColWidth*8+2)))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(padRight("Total", nameWidth)))
	for _, d := range w.Days {
		b.WriteString(minutesCell(d.TotalMinutes, weekColWidth))
	}
	b.WriteString(valueStyle.Render(padLeft(FormatMinutes(w.TotalMinutes()), weekColWidth+2)))
	b.WriteString("\n")
	return b.String()
}

func minutesCell(minutes, width int) string {
	if minutes == 0 {
		return mutedStyle.Render(padLeft("-", width))
	}
	return padLeft(FormatMinutes(minutes), width)
}

// RenderWeekChart renders a stacked bar per day, scaled with ChartScale
func RenderWeekChart(w analytics.WeekWindow, visions []analytics.Vision, height int) string {
	height = max(height, 3)
	scale := analytics.ChartScale(w.MaxDayMinutes())
	rows := weekRows(w, visions)

	var b strings.Builder
	for level := height; level >= 1; level-- {
		threshold := float64(scale) * (float64(level) - 0.5) / float64(height)
		if level == height {
			b.WriteString(mutedStyle.Render(padLeft(FormatMinutes(scale), 7) + " ┤"))
		} else {
			b.WriteString(mutedStyle.Render(strings.Repeat(" ", 7) + " │"))
		}
		for day := range w.Days {
			b.WriteString(" ")
			b.WriteString(chartCell(rows, day, threshold))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(padLeft("0", 7) + " └" + strings.Repeat("─", len(w.Days)*5)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", 9))
	for _, d := range w.Days {
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(padRight(d.Label, 4)))
	}
	b.WriteString("\n")
	return b.String()
}

// chartCell picks the vision whose stacked segment covers threshold
func chartCell(rows []weekRow, day int, threshold float64) string {
	cumulative := 0
	for _, r := range rows {
		cumulative += r.minutes[day]
		if float64(cumulative) >= threshold && r.minutes[day] > 0 {
			return fg(visionColor(r.color)).Render("██")
		}
	}
	return "  "
}

// RenderRankings renders visions ordered by active days
func RenderRankings(rankings []analytics.VisionRanking) string {
	if len(rankings) == 0 {
		return mutedStyle.Render("No focus sessions yet.") + "\n"
	}

	var b strings.Builder
	for _, r := range rankings {
		days := "days"
		if r.ActiveDayCount == 1 {
			days = "day"
		}
		fmt.Fprintf(&b, "%s %s %s %s\n",
			labelStyle.Render(padLeft(fmt.Sprintf("%d.", r.Rank), 3)),
			fg(visionColor(r.Color)).Render("●"),
			padRight(truncate(r.Name, 28), 28),
			valueStyle.Render(fmt.Sprintf("%d %s", r.ActiveDayCount, days)))
	}
	return b.String()
}

// RenderHeatmap renders a month grid, one row per week starting on Sunday
func RenderHeatmap(grid [][7]analytics.HeatmapCell, ym analytics.YearMonth) string {
	var b strings.Builder
	title := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for _, name := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(labelStyle.Render(name))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	total := 0
	for _, week := range grid {
		for _, cell := range week {
			if cell.Date.IsZero() {
				b.WriteString("   ")
				continue
			}
			total += cell.Minutes
			b.WriteString(HeatmapCell(cell.Level))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("Less "))
	for level := analytics.LevelNone; level <= analytics.LevelMax; level++ {
		b.WriteString(HeatmapCell(level))
	}
	b.WriteString(mutedStyle.Render(" More"))
	fmt.Fprintf(&b, "   %s %s\n", labelStyle.Render("Total"), valueStyle.Render(FormatMinutes(total)))
	return b.String()
}

// HeatmapCell renders one two-column cell for a heatmap level
func HeatmapCell(level int) string {
	level = min(max(level, analytics.LevelNone), analytics.LevelMax)
	return fg(heatmapPalette[level]).Render(heatmapGlyphs[level])
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width || width < 4 {
		return s
	}
	return string(r[:width-3]) + "..."
}
