package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/trace"
)

// State is how a single bar is highlighted.
type State int

const (
	StateNormal State = iota
	StateActive
	StateEliminated
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateEliminated:
		return "eliminated"
	default:
		return "normal"
	}
}

// fill is the share of the drawable height used by the tallest bar.
const fill = 0.9

// BarState reports the highlight of element i. Elimination wins over
// activity.
func BarState(step trace.Step, i int) State {
	if step.IsEliminated(i) {
		return StateEliminated
	}
	if step.IsActive(i) {
		return StateActive
	}
	return StateNormal
}

// BarHeights scales each value against the step's maximum (at least 1) so
// the tallest bar fills 90% of height cells. Non-positive values get no bar.
func BarHeights(step trace.Step, height int) []int {
	top := float64(step.Max())
	out := make([]int, len(step.Array))
	for i, v := range step.Array {
		if v <= 0 {
			continue
		}
		h := int(float64(v) / top * fill * float64(height))
		if h < 1 {
			h = 1
		}
		out[i] = h
	}
	return out
}

// RenderBars draws step as colored columns of barWidth cells, with the value
// printed under each column.
func RenderBars(step trace.Step, height, barWidth int, theme Theme) string {
	heights := BarHeights(step, height)
	styles := make([]lipgloss.Style, len(heights))
	for i := range heights {
		styles[i] = lipgloss.NewStyle().Foreground(theme.BarColor(BarState(step, i)))
	}

	block := strings.Repeat("█", barWidth)
	blank := strings.Repeat(" ", barWidth)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i, h := range heights {
			if i > 0 {
				b.WriteString(" ")
			}
			if h >= row {
				b.WriteString(styles[i].Render(block))
			} else {
				b.WriteString(blank)
			}
		}
		b.WriteString("\n")
	}
	for i, v := range step.Array {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(styles[i].Render(center(strconv.Itoa(v), barWidth)))
	}
	return b.String()
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}
