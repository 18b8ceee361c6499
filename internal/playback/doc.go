// Package playback replays a recorded trace onto a rendering surface, one
// step at a time, with a per-algorithm delay between frames.
//
// A Driver owns the surface. Starting a new playback always cancels the one
// in flight first, so at most one Session renders at any moment.
package playback
