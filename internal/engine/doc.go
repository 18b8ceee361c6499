// Package engine orchestrates a single recorded run.
//
// A [Runner] validates its [Config], sorts a copy of the input with the
// selected variant, and hands back a [Result] holding the complete trace
// together with metric values:
//
//	r := engine.New(engine.Config{Seed: 42})
//	r.AddMetric(metrics.NewInversions())
//	res, err := r.Run(ctx, sorts.Quick, []int{3, 1, 4, 1, 5, 9, 2, 6})
//
// The whole trace is computed before Run returns; nothing is produced
// lazily. Playback belongs to package playback.
//
// # Thread Safety
//
// Runner instances are NOT thread-safe: the seeded random source is shared
// across runs. Use one Runner per goroutine.
package engine
