package sorts

import "github.com/san-kum/sortviz/internal/trace"

func selectionSort(arr []int, rec *trace.Recorder) {
	rec.Record(arr)
	n := len(arr)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			rec.Record(arr, i, j, minIdx)
			if arr[j] < arr[minIdx] {
				minIdx = j
			}
		}
		arr[i], arr[minIdx] = arr[minIdx], arr[i]
		rec.Record(arr, i, minIdx)
	}
	rec.Record(arr)
}
