// Package trace provides the step-recording primitives shared by every sort
// variant and every renderer.
//
// The package defines the data model of a recorded run:
//
//   - [Step]: one immutable snapshot of the working array plus the indices
//     highlighted at that instant
//   - [Trace]: the chronological sequence of steps produced by one run
//   - [Recorder]: appends steps while guaranteeing snapshot isolation
//
// # Example
//
//	var rec trace.Recorder
//	rec.Record(arr)
//	arr[0], arr[1] = arr[1], arr[0]
//	rec.Record(arr, 0, 1)
//	tr := rec.Trace()
//
// # Thread Safety
//
// Recorder instances are NOT thread-safe. A recorded Trace is never mutated
// after the run that produced it returns, so it may be shared freely.
package trace
