package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/analytics"
	"github.com/balkashynov/mastery/internal/db"
	"github.com/balkashynov/mastery/internal/models"
	"github.com/balkashynov/mastery/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks, totals and per-vision progress",
	Long: `Show the productivity summary: current and longest streak, total time, active days
and the daily average, followed by a card for every vision.

Examples:
  mastery stats                  # Everything
  mastery stats --vision piano   # One vision
  mastery stats --habit scales   # One habit
  mastery stats --json           # Machine-readable output`,
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		visionRef, _ := cmd.Flags().GetString("vision")
		habitRef, _ := cmd.Flags().GetString("habit")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		snap, visions, err := snapshot()
		if err != nil {
			return err
		}
		sc, err := resolveScope(snap, visions, visionRef, habitRef)
		if err != nil {
			return err
		}

		report := buildStatsReport(engine(), snap, sc, clock())
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), report)
		}
		renderStats(cmd.OutOrStdout(), report)
		return nil
	}),
}

// scope is the slice of history a report is computed over
type scope struct {
	Name     string
	Sessions []analytics.Session
	Visions  []analytics.Vision
	Vision   *analytics.Vision
	Habit    *models.Habit
}

// resolveScope narrows the snapshot to a habit, a vision or every counted vision
func resolveScope(snap analytics.Snapshot, visions []analytics.Vision, visionRef, habitRef string) (scope, error) {
	switch {
	case habitRef != "":
		habit, err := db.GetHabit(habitRef)
		if err != nil {
			return scope{}, err
		}
		sessions := analytics.FilterByHabit(snap.Sessions, habit.ID)
		if habit.GraduatedAt != nil {
			sessions = analytics.CompletedBefore(sessions, *habit.GraduatedAt)
		}
		sc := scope{Name: habit.Name, Sessions: sessions, Habit: habit}
		if v, ok := snap.Vision(habit.VisionID); ok {
			sc.Visions = []analytics.Vision{v}
		}
		return sc, nil

	case visionRef != "":
		row, err := db.GetVision(visionRef)
		if err != nil {
			return scope{}, err
		}
		v := db.ToVisions([]models.Vision{*row})[0]
		return scope{
			Name:     v.Name,
			Sessions: analytics.ForVision(snap.Sessions, v),
			Visions:  []analytics.Vision{v},
			Vision:   &v,
		}, nil
	}

	return scope{Name: "All visions", Sessions: counted(snap.Sessions, visions), Visions: visions}, nil
}

// counted applies graduation cut-offs and the orphan policy to the whole history
func counted(sessions []analytics.Session, visions []analytics.Vision) []analytics.Session {
	return analytics.Counted(sessions, visions, engine().OrphanPolicy())
}

type visionCard struct {
	ID      string                  `json:"id"`
	Name    string                  `json:"name"`
	Status  string                  `json:"status"`
	Stats   analytics.VisionStats   `json:"stats"`
	Mastery analytics.MasteryWindow `json:"mastery"`
}

type statsReport struct {
	Scope   string                        `json:"scope"`
	Streak  analytics.StreakResult        `json:"streak"`
	Summary analytics.ProductivitySummary `json:"summary"`
	Habit   *analytics.MasteryWindow      `json:"habit_mastery,omitempty"`
	Visions []visionCard                  `json:"visions"`
}

func buildStatsReport(e analytics.Engine, snap analytics.Snapshot, sc scope, now time.Time) statsReport {
	report := statsReport{
		Scope:   sc.Name,
		Streak:  e.Streak(sc.Sessions, now),
		Summary: e.Summary(sc.Sessions, cfg.JoinedTime(), now),
		Visions: []visionCard{},
	}
	if sc.Habit != nil {
		w := e.Mastery(sc.Sessions, sc.Habit.CreatedAt, sc.Habit.GraduatedAt, now)
		report.Habit = &w
		return report
	}

	for _, v := range sc.Visions {
		sessions := analytics.ForVision(snap.Sessions, v)
		end := now
		if v.GraduatedAt != nil {
			end = *v.GraduatedAt
		}
		report.Visions = append(report.Visions, visionCard{
			ID:      v.ID,
			Name:    v.Name,
			Status:  string(v.Status),
			Stats:   e.VisionStats(sessions, v.CreatedAt, end, now),
			Mastery: e.Mastery(sessions, v.CreatedAt, v.GraduatedAt, now),
		})
	}
	return report
}

func renderStats(out io.Writer, r statsReport) {
	fmt.Fprintf(out, "📊 %s\n\n", r.Scope)
	fmt.Fprintf(out, "🔥 Streak: %s (best %s)\n", pluralDays(r.Streak.Current), pluralDays(r.Streak.Longest))
	fmt.Fprintf(out, "⏱️  Total: %s over %s (%d active)\n",
		tui.FormatMinutes(r.Summary.TotalMinutes), pluralDays(r.Summary.DaysSinceJoining), r.Summary.ActiveDays)
	fmt.Fprintf(out, "📈 Daily average: %s\n", tui.FormatMinutes(r.Summary.DailyAverage))

	if r.Habit != nil {
		fmt.Fprintf(out, "🎯 %s\n", masteryLine(*r.Habit))
		return
	}
	if len(r.Visions) == 0 {
		return
	}

	fmt.Fprintf(out, "\n%-24s %-10s %9s %8s %7s  %s\n", "VISION", "STATUS", "ENGAGED", "AVG/DAY", "STREAK", "MASTERY")
	fmt.Fprintln(out, strings.Repeat("-", 90))
	for _, c := range r.Visions {
		fmt.Fprintf(out, "%-24s %-10s %9s %8s %7d  %s\n",
			truncate(c.Name, 24), c.Status,
			fmt.Sprintf("%d/%d", c.Stats.EngagedDays, c.Stats.TotalDays),
			tui.FormatMinutes(c.Stats.DailyAverage), c.Stats.CurrentStreak, masteryLine(c.Mastery))
	}
}

// masteryLine renders the window with the full-days caption when it applies
func masteryLine(w analytics.MasteryWindow) string {
	if !w.ShowFullDaysCaption {
		return w.String()
	}
	return fmt.Sprintf("%s (%s of focus)", w.String(), pluralDays(w.FullDays))
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func init() {
	statsCmd.Flags().StringP("vision", "v", "", "Only this vision")
	statsCmd.Flags().String("habit", "", "Only this habit")
	statsCmd.Flags().Bool("json", false, "Output as JSON")
}
