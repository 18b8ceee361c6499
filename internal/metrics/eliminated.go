package metrics

import "github.com/san-kum/sortviz/internal/trace"

// Eliminated reports the size of the last observed eliminated set.
type Eliminated struct {
	last int
}

func NewEliminated() *Eliminated { return &Eliminated{} }

func (e *Eliminated) Name() string            { return "eliminated" }
func (e *Eliminated) Observe(step trace.Step) { e.last = len(step.Eliminated) }
func (e *Eliminated) Value() float64          { return float64(e.last) }
func (e *Eliminated) Reset()                  { e.last = 0 }
