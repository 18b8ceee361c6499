package playback

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
)

type Option func(*Driver)

func WithDecorator(d Decorator) Option {
	return func(dr *Driver) { dr.decorator = d }
}

// WithDelay overrides the pause between frames. The default is
// Algorithm.FrameDelay.
func WithDelay(fn func(sorts.Algorithm) time.Duration) Option {
	return func(dr *Driver) { dr.delay = fn }
}

func WithClock(c Clock) Option {
	return func(dr *Driver) { dr.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(dr *Driver) { dr.logger = l }
}

// Driver serializes playback onto one Renderer.
type Driver struct {
	mu        sync.Mutex
	renderer  Renderer
	decorator Decorator
	delay     func(sorts.Algorithm) time.Duration
	clock     Clock
	logger    *slog.Logger
	current   *Session
}

func NewDriver(r Renderer, opts ...Option) *Driver {
	d := &Driver{
		renderer:  r,
		decorator: nopDecorator{},
		delay:     sorts.Algorithm.FrameDelay,
		clock:     realClock{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Play cancels any running session, resets the decorator, and starts
// rendering tr. The returned Session ends when the last step has been
// rendered, when it is cancelled, or when the renderer fails.
func (d *Driver) Play(ctx context.Context, alg sorts.Algorithm, tr trace.Trace) *Session {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	s, runCtx := newSession(ctx, alg, tr.Len())
	d.current = s
	if dec := alg.Decoration(); dec != sorts.DecorationNone {
		d.decorator.Start(dec)
	}

	delay := d.delay(alg)
	d.logger.Debug("playback started", "algorithm", alg.String(), "steps", tr.Len(), "delay", delay)

	go func() {
		defer close(s.done)
		s.err = s.run(runCtx, tr, d.renderer, d.clock, delay)
		s.cancel()
		d.decorator.Reset()
		if s.err != nil && !errors.Is(s.err, context.Canceled) {
			d.logger.Warn("playback failed", "algorithm", alg.String(), "error", s.err)
		}
	}()
	return s
}

// Stop cancels the running session, if any, and waits for it to end.
// Calling Stop with nothing running is a no-op apart from resetting the
// decorator.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Driver) stopLocked() {
	if d.current != nil {
		d.current.Cancel()
		<-d.current.done
		d.current = nil
	}
	d.decorator.Reset()
}

// Current returns the most recently started session, or nil once stopped.
func (d *Driver) Current() *Session {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}
