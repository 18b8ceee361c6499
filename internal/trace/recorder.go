package trace

// Recorder appends snapshots to a trace. The zero value is ready to use.
type Recorder struct {
	steps Trace
}

// NewRecorder returns a recorder with room for capacity steps.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{steps: make(Trace, 0, capacity)}
}

// Record appends a snapshot of arr with the given active indices and no
// eliminated indices. arr may be mutated freely afterwards.
func (r *Recorder) Record(arr []int, active ...int) {
	r.steps = append(r.steps, NewStep(arr, active, nil))
}

// RecordEliminated appends a snapshot carrying both index sets.
func (r *Recorder) RecordEliminated(arr []int, active, eliminated []int) {
	r.steps = append(r.steps, NewStep(arr, active, eliminated))
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Trace returns the recorded steps.
func (r *Recorder) Trace() Trace { return r.steps }
