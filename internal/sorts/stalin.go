package sorts

import "github.com/san-kum/sortviz/internal/trace"

// stalinSort scans once, eliminating every element below the running
// maximum. The array itself is left untouched.
func stalinSort(arr []int, rec *trace.Recorder) {
	rec.Record(arr)
	if len(arr) == 0 {
		return
	}

	maxVal, maxIdx := arr[0], 0
	eliminated := make([]int, 0, len(arr))
	for i := 1; i < len(arr); i++ {
		rec.RecordEliminated(arr, []int{i, maxIdx}, eliminated)
		if arr[i] < maxVal {
			eliminated = append(eliminated, i)
			rec.RecordEliminated(arr, []int{i, maxIdx}, eliminated)
		} else {
			maxVal, maxIdx = arr[i], i
		}
	}
	rec.RecordEliminated(arr, nil, eliminated)
}

// Survivors returns the values of s that are not eliminated, with their
// positions, in array order.
func Survivors(s trace.Step) (values, positions []int) {
	values = make([]int, 0, len(s.Array))
	positions = make([]int, 0, len(s.Array))
	for i, v := range s.Array {
		if s.IsEliminated(i) {
			continue
		}
		values = append(values, v)
		positions = append(positions, i)
	}
	return values, positions
}
