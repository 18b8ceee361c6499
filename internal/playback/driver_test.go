package playback_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
)

type recorder struct {
	mu     sync.Mutex
	frames []playback.Frame
	failAt int
}

func (r *recorder) Render(f playback.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAt > 0 && f.Index == r.failAt {
		return errBroken
	}
	r.frames = append(r.frames, f)
	return nil
}

func (r *recorder) indices() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.frames))
	for i, f := range r.frames {
		out[i] = f.Index
	}
	return out
}

type decorator struct {
	mu      sync.Mutex
	started []sorts.Decoration
	resets  int
}

func (d *decorator) Start(dec sorts.Decoration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.started = append(d.started, dec)
}

func (d *decorator) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resets++
}

func (d *decorator) resetCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resets
}

// manualClock only advances when tick is called.
type manualClock struct {
	ch chan time.Time
}

func newManualClock() *manualClock { return &manualClock{ch: make(chan time.Time)} }

func (c *manualClock) After(time.Duration) <-chan time.Time { return c.ch }
func (c *manualClock) tick()                                { c.ch <- time.Now() }

var errBroken = errors.New("surface gone")

func noDelay(sorts.Algorithm) time.Duration { return 0 }

func recordTrace(alg sorts.Algorithm, input []int) trace.Trace {
	tr, _, err := sorts.Run(alg, input, sorts.Options{})
	Expect(err).NotTo(HaveOccurred())
	return tr
}

var _ = Describe("Driver", func() {
	var (
		rec *recorder
		dec *decorator
		tr  trace.Trace
	)

	BeforeEach(func() {
		rec = &recorder{}
		dec = &decorator{}
		tr = recordTrace(sorts.Bubble, []int{3, 1, 4, 1, 5, 9, 2, 6})
	})

	It("renders every step in order", func() {
		d := playback.NewDriver(rec, playback.WithDelay(noDelay))
		s := d.Play(context.Background(), sorts.Bubble, tr)

		Eventually(s.Done()).Should(BeClosed())
		Expect(s.Err()).NotTo(HaveOccurred())
		Expect(s.Frames()).To(Equal(len(tr)))

		want := make([]int, len(tr))
		for i := range want {
			want[i] = i
		}
		Expect(rec.indices()).To(Equal(want))
		Expect(rec.frames[len(tr)-1].Last()).To(BeTrue())
		Expect(rec.frames[0].Step.Array).To(Equal(tr[0].Array))
	})

	It("waits on the clock between frames", func() {
		clock := newManualClock()
		d := playback.NewDriver(rec, playback.WithClock(clock))
		s := d.Play(context.Background(), sorts.Bubble, tr)

		Eventually(s.Frames).Should(Equal(1))
		Consistently(s.Frames, 50*time.Millisecond).Should(Equal(1))

		clock.tick()
		Eventually(s.Frames).Should(Equal(2))

		d.Stop()
		Expect(s.Err()).To(MatchError(context.Canceled))
	})

	It("stops mid-trace and resets the decorator", func() {
		clock := newManualClock()
		d := playback.NewDriver(rec, playback.WithClock(clock), playback.WithDecorator(dec))
		s := d.Play(context.Background(), sorts.Bogo, recordTrace(sorts.Bogo, []int{2, 1}))

		Eventually(s.Frames).Should(Equal(1))
		Expect(dec.started).To(Equal([]sorts.Decoration{sorts.DecorationSpin}))

		before := dec.resetCount()
		d.Stop()

		Expect(s.Done()).To(BeClosed())
		Expect(s.Err()).To(MatchError(context.Canceled))
		Expect(s.Frames()).To(Equal(1))
		Expect(dec.resetCount()).To(BeNumerically(">", before))
		Expect(d.Current()).To(BeNil())
	})

	It("treats repeated stops as a no-op", func() {
		d := playback.NewDriver(rec, playback.WithDecorator(dec))
		Expect(func() {
			d.Stop()
			d.Stop()
		}).NotTo(Panic())
		Expect(d.Current()).To(BeNil())

		var s *playback.Session
		Expect(s.Cancel).NotTo(Panic())
	})

	It("cancels the previous session when a new one starts", func() {
		clock := newManualClock()
		d := playback.NewDriver(rec, playback.WithClock(clock))
		first := d.Play(context.Background(), sorts.Bubble, tr)
		Eventually(first.Frames).Should(Equal(1))

		wave := recordTrace(sorts.Wave, []int{1, 2, 3})
		second := d.Play(context.Background(), sorts.Wave, wave)

		Expect(first.Done()).To(BeClosed())
		Expect(first.Err()).To(MatchError(context.Canceled))
		Expect(d.Current()).To(BeIdenticalTo(second))

		Eventually(second.Frames).Should(Equal(1))
		for i := 1; i < len(wave); i++ {
			clock.tick()
		}
		Eventually(second.Done()).Should(BeClosed())
		Expect(second.Err()).NotTo(HaveOccurred())
		Expect(rec.frames[len(rec.frames)-1].Algorithm).To(Equal(sorts.Wave))
	})

	It("ends the session with the renderer's error", func() {
		rec.failAt = 3
		d := playback.NewDriver(rec, playback.WithDelay(noDelay))
		s := d.Play(context.Background(), sorts.Quick, recordTrace(sorts.Quick, []int{8, 7, 6, 5, 4, 3, 2, 1}))

		Expect(s.Wait()).To(MatchError(errBroken))
		Expect(s.Frames()).To(Equal(3))
	})

	It("stops when the parent context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		clock := newManualClock()
		d := playback.NewDriver(rec, playback.WithClock(clock))
		s := d.Play(ctx, sorts.Merge, tr)

		Eventually(s.Frames).Should(Equal(1))
		cancel()
		Eventually(s.Done()).Should(BeClosed())
		Expect(s.Err()).To(MatchError(context.Canceled))
	})
})
