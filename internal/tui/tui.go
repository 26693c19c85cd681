package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/balkashynov/mastery/internal/analytics"
	"github.com/balkashynov/mastery/internal/db"
	"github.com/balkashynov/mastery/internal/models"
)

// RunTimerTUI runs the focus timer and, when the user stops it, the
// reflection form before saving the session
func RunTimerTUI(session *models.FocusSession, info TimerInfo) error {
	p := tea.NewProgram(NewTimerModel(session, info), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	timer, ok := finalModel.(TimerModel)
	if !ok {
		return fmt.Errorf("unexpected timer model %T", finalModel)
	}

	switch timer.action {
	case timerStop:
		minutes := int(time.Since(session.StartedAt) / time.Minute)
		reflection, saved, err := RunReflectionTUI(info.HabitName, minutes)
		if err != nil {
			log.Warn().Err(err).Msg("reflection form failed; saving without notes")
		}
		if !saved {
			reflection = Reflection{}
		}
		stopped, err := db.StopActiveSession(reflection.Accomplishment, reflection.MajorWin)
		if err != nil {
			return fmt.Errorf("failed to stop session: %w", err)
		}
		fmt.Printf("⏹️  Stopped focusing on %s\n", info.HabitName)
		fmt.Printf("📊 Session duration: %s\n", FormatMinutes(stopped.DurationMinutes))

	case timerCancel:
		if err := db.CancelActiveSession(); err != nil {
			return err
		}
		fmt.Println("🗑️  Session discarded.")

	default:
		fmt.Printf("\n💡 Session is still running for %s\n", info.HabitName)
		fmt.Println("   Use 'mastery focus status' to check it or 'mastery focus stop' to finish it.")
	}
	return nil
}

// RunReflectionTUI asks what was accomplished; saved is false when skipped
func RunReflectionTUI(habitName string, minutes int) (Reflection, bool, error) {
	p := tea.NewProgram(NewReflectionModel(habitName, minutes))
	finalModel, err := p.Run()
	if err != nil {
		return Reflection{}, false, err
	}
	m, ok := finalModel.(ReflectionModel)
	if !ok {
		return Reflection{}, false, fmt.Errorf("unexpected reflection model %T", finalModel)
	}
	r, saved := m.Result()
	return r, saved, nil
}

// RunDashboardTUI opens the interactive dashboard
func RunDashboardTUI(engine analytics.Engine, snap analytics.Snapshot, joinedAt, now time.Time) error {
	p := tea.NewProgram(NewDashboardModel(engine, snap, joinedAt, now), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
