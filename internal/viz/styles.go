package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/sorts"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 2)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))

	statusPlaying = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	statusStopped = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	statusDone    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Primary)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Error)
}

func cursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Accent)
}

var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// AnimatedSpinner returns frame n of the spin decoration.
func AnimatedSpinner(n int) string {
	return spinFrames[n%len(spinFrames)]
}

var waveGlyphs = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█', '▇', '▆', '▅', '▄', '▃', '▂'}

// WaveStrip returns a width-cell wave shifted by n.
func WaveStrip(n, width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteRune(waveGlyphs[(i+n)%len(waveGlyphs)])
	}
	return b.String()
}

// DecorationView renders the decorative animation for kind at frame n. The
// neutral pose (frame 0, or DecorationNone) is blank for none and static
// otherwise.
func DecorationView(kind sorts.Decoration, n int) string {
	switch kind {
	case sorts.DecorationSpin:
		return AnimatedSpinner(n)
	case sorts.DecorationWave:
		return WaveStrip(n, 8)
	default:
		return ""
	}
}

// ProgressBar renders a width-cell bar filled to percent.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(CurrentTheme.Bar).Render(bar)
}

// Separator draws a muted rule with a centered diamond.
func Separator(width int) string {
	mid := width / 2
	if mid < 3 {
		return subtleStyle.Render(strings.Repeat("─", width))
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return subtleStyle.Render(left + " ◆ " + right)
}

func metric(label string, v float64) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(fmt.Sprintf("%.0f", v))
}
