package metrics

import "github.com/san-kum/sortviz/internal/trace"

// Metric accumulates a number over the steps of a trace.
type Metric interface {
	Name() string
	Observe(step trace.Step)
	Value() float64
	Reset()
}

// Defaults returns a fresh instance of every built-in metric.
func Defaults() []Metric {
	return []Metric{
		NewComparisons(),
		NewWrites(),
		NewInversions(),
		NewEliminated(),
	}
}

// Collect runs every metric over tr and returns their values by name.
func Collect(tr trace.Trace, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range tr {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
