package sorts

import "github.com/san-kum/sortviz/internal/trace"

func bubbleSort(arr []int, rec *trace.Recorder) {
	rec.Record(arr)
	n := len(arr)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			rec.Record(arr, j, j+1)
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				rec.Record(arr, j, j+1)
			}
		}
	}
	rec.Record(arr)
}
