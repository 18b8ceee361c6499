package metrics

import "github.com/san-kum/sortviz/internal/trace"

// Comparisons counts steps that highlight two or more positions.
type Comparisons struct {
	count int
}

func NewComparisons() *Comparisons { return &Comparisons{} }

func (c *Comparisons) Name() string { return "comparisons" }

func (c *Comparisons) Observe(step trace.Step) {
	if len(step.Active) >= 2 {
		c.count++
	}
}

func (c *Comparisons) Value() float64 { return float64(c.count) }
func (c *Comparisons) Reset()         { c.count = 0 }
