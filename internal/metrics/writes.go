package metrics

import (
	"slices"

	"github.com/san-kum/sortviz/internal/trace"
)

// Writes counts steps whose array differs from the step before.
type Writes struct {
	prev  []int
	count int
}

func NewWrites() *Writes { return &Writes{} }

func (w *Writes) Name() string { return "writes" }

func (w *Writes) Observe(step trace.Step) {
	if w.prev != nil && !slices.Equal(w.prev, step.Array) {
		w.count++
	}
	w.prev = step.Array
}

func (w *Writes) Value() float64 { return float64(w.count) }

func (w *Writes) Reset() {
	w.prev = nil
	w.count = 0
}
