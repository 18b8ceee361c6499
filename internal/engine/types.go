package engine

import (
	"fmt"
	"time"

	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
)

// Observer is notified of every step of a finished run, in order. Each call
// gets its own copy of the step.
type Observer interface {
	OnStep(i int, step trace.Step)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(i int, step trace.Step)

func (f ObserverFunc) OnStep(i int, step trace.Step) { f(i, step) }

type Config struct {
	// Seed feeds the random source used by bogo sort.
	Seed int64
	// MaxShuffles bounds bogo sort; 0 leaves it unbounded.
	MaxShuffles int
	// Length is the required input length; 0 accepts any length.
	Length int
}

func DefaultConfig() Config {
	return Config{
		Seed:   time.Now().UnixNano(),
		Length: 8,
	}
}

type Result struct {
	Algorithm sorts.Algorithm
	Input     []int
	Output    []int
	Trace     trace.Trace
	Metrics   map[string]float64
	Elapsed   time.Duration
	Seed      int64
}

// Steps returns the number of recorded steps.
func (r *Result) Steps() int { return len(r.Trace) }

type RunError struct {
	Algorithm sorts.Algorithm
	Wrapped   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %v", e.Algorithm, e.Wrapped)
}

func (e *RunError) Unwrap() error { return e.Wrapped }
