package sorts

import "github.com/san-kum/sortviz/internal/trace"

func mergeSort(arr []int, rec *trace.Recorder) {
	rec.Record(arr)
	mergeRange(arr, 0, len(arr)-1, rec)
	rec.Record(arr)
}

func mergeRange(arr []int, left, right int, rec *trace.Recorder) {
	if left >= right {
		return
	}
	middle := left + (right-left)/2
	mergeRange(arr, left, middle, rec)
	mergeRange(arr, middle+1, right, rec)
	merge(arr, left, middle, right, rec)
}

// merge combines arr[left..middle] and arr[middle+1..right]. Ties take the
// left element so the sort stays stable.
func merge(arr []int, left, middle, right int, rec *trace.Recorder) {
	lhs := append([]int(nil), arr[left:middle+1]...)
	rhs := append([]int(nil), arr[middle+1:right+1]...)

	i, j, k := 0, 0, left
	for i < len(lhs) && j < len(rhs) {
		rec.Record(arr, left+i, middle+1+j)
		if lhs[i] <= rhs[j] {
			arr[k] = lhs[i]
			i++
		} else {
			arr[k] = rhs[j]
			j++
		}
		k++
		rec.Record(arr)
	}
	for ; i < len(lhs); i++ {
		arr[k] = lhs[i]
		k++
		rec.Record(arr)
	}
	for ; j < len(rhs); j++ {
		arr[k] = rhs[j]
		k++
		rec.Record(arr)
	}
}
