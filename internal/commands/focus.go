package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/analytics"
	"github.com/balkashynov/mastery/internal/db"
	"github.com/balkashynov/mastery/internal/models"
	"github.com/balkashynov/mastery/internal/parser"
	"github.com/balkashynov/mastery/internal/tui"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Run, log and review focus sessions",
}

var focusStartCmd = &cobra.Command{
	Use:   "start <habit>",
	Short: "Start a focus session on a habit",
	Long: `Start a focus session on a habit. Opens the interactive timer by default, use --no-ui for a simple start.

Examples:
  mastery focus start scales                 # Start with the timer UI
  mastery focus start scales -i "C major"    # Set an intention
  mastery focus start scales --no-ui         # Start without UI`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		intention, _ := cmd.Flags().GetString("intention")
		noUI, _ := cmd.Flags().GetBool("no-ui")

		session, err := db.StartSession(args[0], intention)
		if err != nil {
			return err
		}
		habit, vision, err := sessionOwners(session)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if noUI {
			fmt.Fprintf(out, "⏱️  Started focusing on %s (%s)\n", habit.Name, vision.Name)
			fmt.Fprintf(out, "Started at: %s\n", session.StartedAt.In(cfg.Location()).Format("15:04:05"))
			return nil
		}

		info, err := timerInfo(habit, vision)
		if err != nil {
			return err
		}
		return tui.RunTimerTUI(session, info)
	}),
}

var focusStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running focus session",
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		note, _ := cmd.Flags().GetString("note")
		win, _ := cmd.Flags().GetString("win")
		noUI, _ := cmd.Flags().GetBool("no-ui")

		active, err := db.GetActiveSession()
		if err != nil {
			return err
		}
		if active == nil {
			return db.ErrNoActiveSession
		}
		habit, _, err := sessionOwners(active)
		if err != nil {
			return err
		}

		if !noUI && note == "" && win == "" {
			minutes := int(clock().Sub(active.StartedAt) / time.Minute)
			reflection, saved, err := tui.RunReflectionTUI(habit.Name, minutes)
			if err != nil {
				return err
			}
			if saved {
				note, win = reflection.Accomplishment, reflection.MajorWin
			}
		}

		session, err := db.StopActiveSession(note, win)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "⏹️  Stopped focusing on %s\n", habit.Name)
		fmt.Fprintf(out, "📊 Session duration: %s\n", tui.FormatMinutes(session.DurationMinutes))
		if session.MajorWin != "" {
			fmt.Fprintf(out, "🏆 Major win: %s\n", session.MajorWin)
		}
		return nil
	}),
}

var focusStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running focus session",
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		session, err := db.GetActiveSession()
		if err != nil {
			return err
		}
		if session == nil {
			fmt.Fprintln(out, "No active focus session")
			return nil
		}
		habit, vision, err := sessionOwners(session)
		if err != nil {
			return err
		}

		elapsed := clock().Sub(session.StartedAt)
		fmt.Fprintf(out, "⏱️  Currently focusing on %s (%s)\n", habit.Name, vision.Name)
		if session.Intention != "" {
			fmt.Fprintf(out, "Intention: %s\n", session.Intention)
		}
		fmt.Fprintf(out, "Started at: %s\n", session.StartedAt.In(cfg.Location()).Format("15:04:05"))
		fmt.Fprintf(out, "Elapsed time: %s\n", tui.FormatMinutes(int(elapsed/time.Minute)))
		return nil
	}),
}

var focusCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the running focus session",
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		if err := db.CancelActiveSession(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "🗑️  Session discarded.")
		return nil
	}),
}

var focusLogCmd = &cobra.Command{
	Use:   "log <habit> [entry]",
	Short: "Record a session that was not timed",
	Long: `Record a completed session after the fact.

The entry uses natural syntax:
  45m, 2h, 1h30m   Duration
  at:yesterday     Completion date (dd/mm/yyyy, yyyy-mm-dd, today, yesterday)
  win:...          Major win; takes the rest of the line

Flags override whatever the entry contains.

Examples:
  mastery focus log scales "Hanon 1-5 45m"
  mastery focus log run "Tempo intervals 1h at:yesterday win:new 5k best"
  mastery focus log scales --minutes 30 --at 2024-03-01`,
	Args: cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		now := clock().In(cfg.Location())

		entry := parser.ParsedEntry{CompletedAt: now}
		if len(args) > 1 {
			entry = parser.ParseEntry(strings.Join(args[1:], " "), now)
		}

		if cmd.Flags().Changed("minutes") {
			entry.Minutes, _ = cmd.Flags().GetInt("minutes")
		} else if len(entry.Errors) > 0 {
			return errors.New(strings.Join(entry.Errors, "; "))
		}
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			parsed, err := parser.ParseDate(at, now)
			if err != nil {
				return err
			}
			entry.CompletedAt = parsed
		}
		if note, _ := cmd.Flags().GetString("note"); note != "" {
			entry.Accomplishment = note
		}
		if win, _ := cmd.Flags().GetString("win"); win != "" {
			entry.MajorWin = win
		}
		if entry.CompletedAt.After(now) {
			return fmt.Errorf("completion time %s is in the future", entry.CompletedAt.Format(time.DateOnly))
		}

		session, err := db.LogSession(db.LogSessionRequest{
			HabitRef:       args[0],
			Minutes:        entry.Minutes,
			CompletedAt:    entry.CompletedAt,
			Accomplishment: entry.Accomplishment,
			MajorWin:       entry.MajorWin,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged %s on %s - ID: %s\n",
			tui.FormatMinutes(session.DurationMinutes), parser.FormatDate(*session.CompletedAt, now), db.ShortID(session.ID))
		return nil
	}),
}

var focusListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list", "history"},
	Short:   "List completed focus sessions",
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		visionRef, _ := cmd.Flags().GetString("vision")
		habitRef, _ := cmd.Flags().GetString("habit")
		limit, _ := cmd.Flags().GetInt("limit")

		filter, err := sessionFilter(visionRef, habitRef)
		if err != nil {
			return err
		}
		sessions, err := db.ListSessions(filter)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No focus sessions yet. Use 'mastery focus start <habit>' to begin.")
			return nil
		}
		if limit > 0 && len(sessions) > limit {
			sessions = sessions[len(sessions)-limit:]
		}

		habits, err := db.AllHabits()
		if err != nil {
			return err
		}
		names := make(map[string]string, len(habits))
		for _, h := range habits {
			names[h.ID] = h.Name
		}

		now := clock().In(cfg.Location())
		fmt.Fprintf(out, "%-9s %-24s %-20s %7s  %s\n", "ID", "DATE", "HABIT", "TIME", "NOTES")
		fmt.Fprintln(out, strings.Repeat("-", 80))
		for i := len(sessions) - 1; i >= 0; i-- {
			s := sessions[i]
			notes := s.Accomplishment
			if s.MajorWin != "" {
				notes = strings.TrimSpace(notes + " 🏆 " + s.MajorWin)
			}
			fmt.Fprintf(out, "%-9s %-24s %-20s %7s  %s\n",
				db.ShortID(s.ID), parser.FormatDate(*s.CompletedAt, now), truncate(names[s.HabitID], 20),
				tui.FormatMinutes(s.DurationMinutes), notes)
		}
		return nil
	}),
}

var focusDeleteCmd = &cobra.Command{
	Use:   "delete <session>",
	Short: "Delete a completed focus session",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		if err := db.DeleteSession(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "🗑️  Session deleted.")
		return nil
	}),
}

// sessionOwners loads the habit and vision a session belongs to
func sessionOwners(session *models.FocusSession) (*models.Habit, *models.Vision, error) {
	habit, err := db.GetHabit(session.HabitID)
	if err != nil {
		return nil, nil, err
	}
	vision, err := db.GetVision(session.VisionID)
	if err != nil {
		return nil, nil, err
	}
	return habit, vision, nil
}

// timerInfo gathers the vision's streak and today's minutes for the timer screen
func timerInfo(habit *models.Habit, vision *models.Vision) (tui.TimerInfo, error) {
	snap, err := db.LoadSnapshot()
	if err != nil {
		return tui.TimerInfo{}, err
	}
	e := engine()
	now := clock()
	sessions := analytics.FilterByVision(snap.Sessions, vision.ID)

	return tui.TimerInfo{
		HabitName:    habit.Name,
		VisionName:   vision.Name,
		VisionColor:  vision.Color,
		Streak:       e.Streak(sessions, now),
		TodayMinutes: analytics.TotalMinutes(e.SessionsOn(sessions, e.Today(now))),
	}, nil
}

// sessionFilter resolves optional vision and habit references into ids
func sessionFilter(visionRef, habitRef string) (db.SessionFilter, error) {
	var filter db.SessionFilter
	if visionRef != "" {
		vision, err := db.GetVision(visionRef)
		if err != nil {
			return filter, err
		}
		filter.VisionID = vision.ID
	}
	if habitRef != "" {
		habit, err := db.GetHabit(habitRef)
		if err != nil {
			return filter, err
		}
		filter.HabitID = habit.ID
	}
	return filter, nil
}

func init() {
	focusStartCmd.Flags().StringP("intention", "i", "", "What you intend to work on")
	focusStartCmd.Flags().Bool("no-ui", false, "Start without the interactive timer")

	focusStopCmd.Flags().StringP("note", "n", "", "What you accomplished")
	focusStopCmd.Flags().StringP("win", "w", "", "A major win worth remembering")
	focusStopCmd.Flags().Bool("no-ui", false, "Skip the reflection form")

	focusLogCmd.Flags().IntP("minutes", "m", 0, "Duration in minutes")
	focusLogCmd.Flags().String("at", "", "Completion date (dd/mm/yyyy, yyyy-mm-dd, yesterday, N days ago)")
	focusLogCmd.Flags().StringP("note", "n", "", "What you accomplished")
	focusLogCmd.Flags().StringP("win", "w", "", "A major win worth remembering")

	focusListCmd.Flags().StringP("vision", "v", "", "Only sessions of this vision")
	focusListCmd.Flags().String("habit", "", "Only sessions of this habit")
	focusListCmd.Flags().IntP("limit", "l", 20, "Show at most this many sessions (0 for all)")

	focusCmd.AddCommand(focusStartCmd, focusStopCmd, focusStatusCmd, focusCancelCmd,
		focusLogCmd, focusListCmd, focusDeleteCmd)
}
