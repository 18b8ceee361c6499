package trace

import "slices"

// Step is one recorded instant of a run. Array is a private copy of the
// working array; Active and Eliminated are index sets in recording order.
type Step struct {
	Array      []int `json:"array"`
	Active     []int `json:"activeIndices"`
	Eliminated []int `json:"eliminatedIndices"`
}

// NewStep copies arr, active and eliminated into a fresh Step. Nil index
// sets become empty slices.
func NewStep(arr, active, eliminated []int) Step {
	return Step{
		Array:      clone(arr),
		Active:     clone(active),
		Eliminated: clone(eliminated),
	}
}

// Clone returns a deep copy of s.
func (s Step) Clone() Step {
	return NewStep(s.Array, s.Active, s.Eliminated)
}

func (s Step) IsActive(i int) bool     { return slices.Contains(s.Active, i) }
func (s Step) IsEliminated(i int) bool { return slices.Contains(s.Eliminated, i) }

// Max returns the largest value in the step's array, never less than 1.
func (s Step) Max() int {
	m := 1
	for _, v := range s.Array {
		if v > m {
			m = v
		}
	}
	return m
}

// Trace is an ordered sequence of steps; index order is execution order.
type Trace []Step

func (t Trace) Len() int { return len(t) }

// First returns the initial step, or the zero Step for an empty trace.
func (t Trace) First() Step {
	if len(t) == 0 {
		return Step{}
	}
	return t[0]
}

// Last returns the terminal step, or the zero Step for an empty trace.
func (t Trace) Last() Step {
	if len(t) == 0 {
		return Step{}
	}
	return t[len(t)-1]
}

// Validate checks the structural invariants every recorded trace must hold
// for an input of length n.
func (t Trace) Validate(n int) error {
	if len(t) == 0 {
		return ErrEmptyTrace
	}
	if len(t[0].Active) != 0 || len(t[0].Eliminated) != 0 {
		return &StepError{Step: 0, Wrapped: ErrDirtyFirstStep}
	}

	var prev []int
	for i, s := range t {
		if len(s.Array) != n {
			return &StepError{Step: i, Wrapped: ErrLengthMismatch}
		}
		for _, idx := range s.Active {
			if idx < 0 || idx >= n {
				return &StepError{Step: i, Wrapped: ErrIndexOutOfRange}
			}
		}
		for _, idx := range s.Eliminated {
			if idx < 0 || idx >= n {
				return &StepError{Step: i, Wrapped: ErrIndexOutOfRange}
			}
		}
		for _, idx := range prev {
			if !slices.Contains(s.Eliminated, idx) {
				return &StepError{Step: i, Wrapped: ErrEliminatedShrank}
			}
		}
		prev = s.Eliminated
	}
	return nil
}

// IsAscending reports whether arr is non-decreasing.
func IsAscending(arr []int) bool {
	for i := 0; i+1 < len(arr); i++ {
		if arr[i] > arr[i+1] {
			return false
		}
	}
	return true
}

// IsPermutation reports whether a and b hold the same multiset of values.
func IsPermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

func clone(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}
