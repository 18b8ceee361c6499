package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/viz"
)

const (
	height      = 16
	barWidth    = 4
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var glyphs = map[viz.State]rune{
	viz.StateNormal:     '█',
	viz.StateActive:     '▓',
	viz.StateEliminated: '░',
}

var (
	_ playback.Renderer  = (*LiveRenderer)(nil)
	_ playback.Decorator = (*LiveRenderer)(nil)
)

// LiveRenderer draws frames as plain ANSI text, one full redraw per frame.
// It doubles as the playback decorator: while a decoration runs, the status
// line carries a spinner or wave that moves on every frame.
type LiveRenderer struct {
	out    io.Writer
	width  int
	canvas [][]rune
	clear  bool

	mu        sync.Mutex
	deco      sorts.Decoration
	decoFrame int
}

func NewLiveRenderer(n int) *LiveRenderer {
	return NewLiveRendererTo(os.Stdout, n, true)
}

// NewLiveRendererTo draws n bars to w. With clear unset frames are appended
// instead of redrawn in place.
func NewLiveRendererTo(w io.Writer, n int, clear bool) *LiveRenderer {
	width := n*(barWidth+1) + 1
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{out: w, width: width, canvas: canvas, clear: clear}
}

func (r *LiveRenderer) Render(f playback.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reset()
	r.drawBars(f.Step)
	_, err := io.WriteString(r.out, r.frame(f))
	return err
}

func (r *LiveRenderer) reset() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < r.width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) drawBars(step trace.Step) {
	for i, h := range viz.BarHeights(step, height) {
		c := glyphs[viz.BarState(step, i)]
		x0 := 1 + i*(barWidth+1)
		for y := height - 1; y >= height-h; y-- {
			for dx := 0; dx < barWidth; dx++ {
				r.set(x0+dx, y, c)
			}
		}
	}
}

func (r *LiveRenderer) frame(f playback.Frame) string {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  %s  step %d/%d", f.Algorithm.Title(), f.Index+1, f.Total))
	if r.deco != sorts.DecorationNone {
		b.WriteString("  " + viz.DecorationView(r.deco, r.decoFrame))
		r.decoFrame++
	}
	b.WriteString("\n")
	b.WriteString("  " + strings.Repeat("-", r.width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", r.width) + "\n")
	b.WriteString("   ")
	for _, v := range f.Step.Array {
		b.WriteString(fmt.Sprintf("%-*d ", barWidth, v))
	}
	b.WriteString("\n")
	return b.String()
}

// Start begins the status-line decoration for kind.
func (r *LiveRenderer) Start(kind sorts.Decoration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deco = kind
	r.decoFrame = 0
}

// Reset returns the status line to its neutral pose.
func (r *LiveRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deco = sorts.DecorationNone
	r.decoFrame = 0
}

// Decoration returns the decoration currently running.
func (r *LiveRenderer) Decoration() sorts.Decoration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deco
}

func (r *LiveRenderer) HideCursor() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) ShowCursor() { fmt.Fprint(r.out, showCursor) }
