package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ShimmerConfig holds configuration for the highlight sweep on titles
type ShimmerConfig struct {
	Enabled    bool
	Interval   time.Duration // time between frames
	WidthRatio float64       // band width relative to the text
	Frames     int           // frames per sweep, pause included
	PauseTicks int           // frames the band rests off-screen
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:    true,
		Interval:   100 * time.Millisecond,
		WidthRatio: 0.25,
		Frames:     24,
		PauseTicks: 6,
	}
}

// Shimmer sweeps a bright band across a line of text. The zero frame count
// is the start of a sweep; Advance moves one frame.
type Shimmer struct {
	Config ShimmerConfig
	frame  int
}

// shimmerTickMsg drives the shimmer animation
type shimmerTickMsg struct{}

// NewShimmer creates a shimmer with the given configuration
func NewShimmer(config ShimmerConfig) Shimmer {
	return Shimmer{Config: config}
}

// Tick schedules the next frame, or returns nil when disabled
func (s Shimmer) Tick() tea.Cmd {
	if !s.Config.Enabled || s.Config.Interval <= 0 {
		return nil
	}
	return tea.Tick(s.Config.Interval, func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Advance moves the band one frame forward
func (s *Shimmer) Advance() {
	if s.Config.Frames <= 0 {
		return
	}
	s.frame = (s.frame + 1) % s.Config.Frames
}

// Center returns the band position in glyphs for text of length n. During the
// pause it sits past the end of the text.
func (s Shimmer) Center(n int) float64 {
	sweep := s.Config.Frames - s.Config.PauseTicks
	if sweep <= 0 || s.frame >= sweep {
		return float64(n) * (1 + s.Config.WidthRatio)
	}
	lead := float64(n) * s.Config.WidthRatio
	return -lead + (float64(n)+2*lead)*float64(s.frame)/float64(sweep)
}

// Render draws text with the band blended from base toward highlight
func (s Shimmer) Render(text, base, highlight string) string {
	runes := []rune(text)
	if !s.Config.Enabled || len(runes) == 0 {
		return fg(base).Render(text)
	}

	center := s.Center(len(runes))
	sigma := math.Max(1, s.Config.WidthRatio*float64(len(runes))/2)
	br, bg, bb := hexRGB(base)
	hr, hg, hb := hexRGB(highlight)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - center
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		color := fmt.Sprintf("#%02X%02X%02X", blend(br, hr, w), blend(bg, hg, w), blend(bb, hb, w))
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(string(r)))
	}
	return b.String()
}

func blend(from, to int, w float64) int {
	return int(math.Round(float64(from)*(1-w) + float64(to)*w))
}

// hexRGB parses #RRGGBB; anything else is treated as mid grey
func hexRGB(color string) (int, int, int) {
	var r, g, b int
	if _, err := fmt.Sscanf(color, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 128, 128, 128
	}
	return r, g, b
}
