package playback

import (
	"time"

	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
)

// Frame is one step handed to a Renderer.
type Frame struct {
	Index     int
	Total     int
	Step      trace.Step
	Algorithm sorts.Algorithm
}

// Last reports whether f is the final frame of its trace.
func (f Frame) Last() bool { return f.Index == f.Total-1 }

type Renderer interface {
	Render(frame Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(frame Frame) error

func (f RendererFunc) Render(frame Frame) error { return f(frame) }

// Decorator drives the looping animation some variants show while they play.
// Reset returns it to its neutral pose.
type Decorator interface {
	Start(d sorts.Decoration)
	Reset()
}

// Clock abstracts the timer between frames.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

type nopDecorator struct{}

func (nopDecorator) Start(sorts.Decoration) {}
func (nopDecorator) Reset()                 {}
