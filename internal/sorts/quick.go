package sorts

import "github.com/san-kum/sortviz/internal/trace"

func quickSort(arr []int, rec *trace.Recorder) {
	rec.Record(arr)
	quickRange(arr, 0, len(arr)-1, rec)
	rec.Record(arr)
}

func quickRange(arr []int, low, high int, rec *trace.Recorder) {
	if low >= high {
		return
	}
	p := partition(arr, low, high, rec)
	quickRange(arr, low, p-1, rec)
	quickRange(arr, p+1, high, rec)
}

// partition is Lomuto's scheme with arr[high] as the pivot.
func partition(arr []int, low, high int, rec *trace.Recorder) int {
	pivot := arr[high]
	i := low - 1
	for j := low; j < high; j++ {
		rec.Record(arr, j, high)
		if arr[j] < pivot {
			i++
			arr[i], arr[j] = arr[j], arr[i]
			rec.Record(arr, i, j)
		}
	}
	arr[i+1], arr[high] = arr[high], arr[i+1]
	rec.Record(arr, i+1, high)
	return i + 1
}
