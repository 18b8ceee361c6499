package sorts

import (
	"math/rand"

	"github.com/san-kum/sortviz/internal/trace"
)

// bogoSort shuffles until the array is ascending. Without a limit it has no
// upper bound on attempts.
func bogoSort(arr []int, rec *trace.Recorder, opts Options) error {
	rec.Record(arr)
	all := make([]int, len(arr))
	for i := range all {
		all[i] = i
	}

	for shuffles := 0; !trace.IsAscending(arr); shuffles++ {
		if opts.MaxShuffles > 0 && shuffles >= opts.MaxShuffles {
			rec.Record(arr)
			return ErrShuffleLimit
		}
		shuffle(arr, opts.Rand)
		rec.Record(arr, all...)
	}
	rec.Record(arr)
	return nil
}

// shuffle is a Fisher-Yates pass over the whole slice.
func shuffle(arr []int, r *rand.Rand) {
	for i := len(arr) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
}
