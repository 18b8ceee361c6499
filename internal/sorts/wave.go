package sorts

import "github.com/san-kum/sortviz/internal/trace"

const waveCycles = 5

// waveRotate is not a sort: it left-rotates the array waveCycles*n times,
// which brings it back to where it started.
func waveRotate(arr []int, rec *trace.Recorder) {
	n := len(arr)
	if n == 0 {
		return
	}
	rec.Record(arr)
	for i := 0; i < n*waveCycles; i++ {
		first := arr[0]
		copy(arr, arr[1:])
		arr[n-1] = first
		rec.Record(arr, n-1)
	}
	rec.Record(arr)
}
