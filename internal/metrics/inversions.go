package metrics

import "github.com/san-kum/sortviz/internal/trace"

// Inversions tracks how far each step's array is from ascending order.
// Value is the count for the last observed step.
type Inversions struct {
	history []float64
}

func NewInversions() *Inversions {
	return &Inversions{history: make([]float64, 0, 64)}
}

func (v *Inversions) Name() string { return "inversions" }

func (v *Inversions) Observe(step trace.Step) {
	v.history = append(v.history, float64(Count(step.Array)))
}

func (v *Inversions) Value() float64 {
	if len(v.history) == 0 {
		return 0
	}
	return v.history[len(v.history)-1]
}

// History returns the per-step inversion counts observed so far.
func (v *Inversions) History() []float64 { return v.history }

func (v *Inversions) Reset() { v.history = v.history[:0] }

// Count returns the number of pairs i<j with arr[i] > arr[j].
func Count(arr []int) int {
	n := 0
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if arr[i] > arr[j] {
				n++
			}
		}
	}
	return n
}

// Series returns the inversion count of every step in tr.
func Series(tr trace.Trace) []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = float64(Count(s.Array))
	}
	return out
}
