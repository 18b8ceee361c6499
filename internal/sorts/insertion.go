package sorts

import "github.com/san-kum/sortviz/internal/trace"

func insertionSort(arr []int, rec *trace.Recorder) {
	rec.Record(arr)
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		rec.Record(arr, i, j)
		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			rec.Record(arr, j, j+1)
			j--
		}
		arr[j+1] = key
		rec.Record(arr, j+1)
	}
	rec.Record(arr)
}
