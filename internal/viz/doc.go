// Package viz is the interactive terminal front end.
//
// A menu lists every algorithm with its description. Selecting one opens the
// player, where eight digits are typed or randomized, a trace is recorded,
// and the trace is replayed as colored bars with an inversion chart.
//
// # Key Bindings
//
//	j/k     - Move through the menu
//	enter/s - Record and play the current digits
//	r       - Randomize the digits (stops playback)
//	x       - Stop playback
//	t       - Cycle color themes
//	esc     - Back to the menu
//	q       - Quit
//
// Bar sizing and state are exposed through [BarHeights] and [BarState] so
// other renderers draw the same picture.
package viz
