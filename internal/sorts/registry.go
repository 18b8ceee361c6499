package sorts

import (
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/trace"
)

// Options tunes a run. The zero value is valid.
type Options struct {
	// Rand drives bogo sort's shuffles. Nil seeds a source from the clock.
	Rand *rand.Rand
	// MaxShuffles caps bogo sort's attempts; 0 means unbounded.
	MaxShuffles int
}

type variant func(arr []int, rec *trace.Recorder, opts Options) error

func pure(f func(arr []int, rec *trace.Recorder)) variant {
	return func(arr []int, rec *trace.Recorder, _ Options) error {
		f(arr, rec)
		return nil
	}
}

var variants = map[Algorithm]variant{
	Bubble:    pure(bubbleSort),
	Selection: pure(selectionSort),
	Insertion: pure(insertionSort),
	Merge:     pure(mergeSort),
	Quick:     pure(quickSort),
	Bogo:      bogoSort,
	Stalin:    pure(stalinSort),
	Wave:      pure(waveRotate),
}

// Run sorts a copy of input with alg and returns the recorded trace and the
// final array. input itself is never modified. With ErrShuffleLimit the
// partial trace is still returned.
func Run(alg Algorithm, input []int, opts Options) (trace.Trace, []int, error) {
	fn, ok := variants[alg]
	if !ok {
		return nil, nil, ErrUnknownAlgorithm
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	arr := make([]int, len(input))
	copy(arr, input)

	n := len(arr)
	rec := trace.NewRecorder(n*n + 2)
	err := fn(arr, rec, opts)
	return rec.Trace(), arr, err
}
