package playback

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
)

// Session is a single playback of one trace.
type Session struct {
	algorithm sorts.Algorithm
	total     int
	cancel    context.CancelFunc
	done      chan struct{}
	frames    atomic.Int64
	err       error
}

func newSession(ctx context.Context, alg sorts.Algorithm, total int) (*Session, context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	return &Session{
		algorithm: alg,
		total:     total,
		cancel:    cancel,
		done:      make(chan struct{}),
	}, ctx
}

// Cancel stops the session. It may be called any number of times, and on a
// nil Session.
func (s *Session) Cancel() {
	if s == nil {
		return
	}
	s.cancel()
}

// Done is closed once the session stops rendering.
func (s *Session) Done() <-chan struct{} { return s.done }

// Wait blocks until the session ends and returns its error.
func (s *Session) Wait() error {
	<-s.done
	return s.err
}

// Err is nil while running and after a complete playback. A cancelled session
// reports context.Canceled; a renderer failure reports the renderer's error.
func (s *Session) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Frames returns how many frames have been rendered so far.
func (s *Session) Frames() int { return int(s.frames.Load()) }

func (s *Session) Total() int                 { return s.total }
func (s *Session) Algorithm() sorts.Algorithm { return s.algorithm }

func (s *Session) run(ctx context.Context, tr trace.Trace, r Renderer, clock Clock, delay time.Duration) error {
	for i, step := range tr {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-clock.After(delay):
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		err := r.Render(Frame{
			Index:     i,
			Total:     s.total,
			Step:      step,
			Algorithm: s.algorithm,
		})
		if err != nil {
			return err
		}
		s.frames.Add(1)
	}
	return nil
}
