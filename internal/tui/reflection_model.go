package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Step represents the current step of the reflection form
type Step int

const (
	StepAccomplishment Step = iota
	StepMajorWin
	StepSave
)

var stepLabels = []string{"What did you get done?", "Any major win?", "Save"}

// Reflection is what the user wrote after a focus session
type Reflection struct {
	Accomplishment string
	MajorWin       string
}

// ReflectionModel is a two-question form shown when a session stops
type ReflectionModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int
	minutes     int
	habitName   string
	shimmer     Shimmer

	completed bool
	skipped   bool
}

// NewReflectionModel creates the form for a session of the given length
func NewReflectionModel(habitName string, minutes int) ReflectionModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].CharLimit = 500
		inputs[i].TextStyle = fg(ColorPrimaryText)
		inputs[i].PlaceholderStyle = fg(ColorPlaceholder)
		inputs[i].Cursor.Style = fg(ColorAccentBright)
	}
	inputs[StepAccomplishment].Placeholder = "Wrote two pages, fixed the chord change... (Enter to skip)"
	inputs[StepAccomplishment].Focus()
	inputs[StepMajorWin].Placeholder = "Something worth remembering (Enter to skip)"

	return ReflectionModel{
		inputs:    inputs,
		minutes:   minutes,
		habitName: habitName,
		shimmer:   NewShimmer(DefaultShimmerConfig()),
	}
}

// Init starts the cursor blink and title shimmer
func (m ReflectionModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.shimmer.Tick())
}

// Update handles messages
func (m ReflectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		m.shimmer.Advance()
		return m, m.shimmer.Tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.inputs {
			m.inputs[i].Width = min(max(msg.Width-16, 30), 80)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.skipped = true
			return m, tea.Quit
		case "enter", "tab", "down":
			if m.currentStep == StepSave {
				m.completed = true
				return m, tea.Quit
			}
			return m.moveTo(m.currentStep + 1), nil
		case "shift+tab", "up":
			if m.currentStep > StepAccomplishment {
				return m.moveTo(m.currentStep - 1), nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}
	return m, cmd
}

func (m ReflectionModel) moveTo(step Step) ReflectionModel {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.currentStep = step
	if step < StepSave {
		m.inputs[step].Focus()
	}
	return m
}

// Result returns the answers and whether the user saved them
func (m ReflectionModel) Result() (Reflection, bool) {
	r := Reflection{
		Accomplishment: strings.TrimSpace(m.inputs[StepAccomplishment].Value()),
		MajorWin:       strings.TrimSpace(m.inputs[StepMajorWin].Value()),
	}
	return r, m.completed && !m.skipped
}

// View renders the form
func (m ReflectionModel) View() string {
	if m.completed || m.skipped {
		return ""
	}

	var b strings.Builder
	title := fmt.Sprintf("✨ %s of %s done", FormatMinutes(m.minutes), m.habitName)
	b.WriteString(m.shimmer.Render(title, ColorSecondaryText, ColorAccentBright))
	b.WriteString("\n\n")

	for i, label := range stepLabels {
		switch {
		case Step(i) == m.currentStep:
			b.WriteString(fg(ColorAccentBright).Render("▶ " + label))
		case Step(i) < m.currentStep && Step(i) < StepSave && m.inputs[i].Value() != "":
			b.WriteString(fg(ColorSuccess).Render("✓ " + label))
		default:
			b.WriteString(fg(ColorDisabledText).Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.currentStep < StepSave {
		b.WriteString(m.inputs[m.currentStep].View())
	} else {
		b.WriteString(labelStyle.Render("Press Enter to save your reflection"))
	}
	b.WriteString("\n\n")
	b.WriteString(fg(ColorHelpText).Italic(true).Render("enter next · shift+tab back · esc skip"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())
}
