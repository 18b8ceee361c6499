package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorts"
)

type Runner struct {
	cfg        Config
	randSource *rand.Rand
	metrics    []metrics.Metric
	observers  []Observer
	logger     *slog.Logger
}

func New(cfg Config) *Runner {
	return &Runner{
		cfg:        cfg,
		randSource: rand.New(rand.NewSource(cfg.Seed)),
		metrics:    make([]metrics.Metric, 0),
		observers:  make([]Observer, 0),
		logger:     slog.Default(),
	}
}

func (r *Runner) AddMetric(m metrics.Metric)    { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)        { r.observers = append(r.observers, o) }
func (r *Runner) SetLogger(logger *slog.Logger) { r.logger = logger }
func (r *Runner) Config() Config                { return r.cfg }

// Run records alg over a copy of input. The returned Result is non-nil
// whenever a trace was recorded, including when bogo sort hits its limit.
func (r *Runner) Run(ctx context.Context, alg sorts.Algorithm, input []int) (*Result, error) {
	if err := r.validate(input); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	tr, out, runErr := sorts.Run(alg, input, sorts.Options{
		Rand:        r.randSource,
		MaxShuffles: r.cfg.MaxShuffles,
	})
	if tr == nil && runErr != nil {
		return nil, &RunError{Algorithm: alg, Wrapped: runErr}
	}

	result := &Result{
		Algorithm: alg,
		Input:     append([]int(nil), input...),
		Output:    out,
		Trace:     tr,
		Metrics:   metrics.Collect(tr, r.metrics...),
		Elapsed:   time.Since(start),
		Seed:      r.cfg.Seed,
	}

	for i, step := range tr {
		for _, obs := range r.observers {
			obs.OnStep(i, step.Clone())
		}
	}

	r.logger.Debug("run recorded",
		"algorithm", alg.String(),
		"steps", len(tr),
		"elapsed", result.Elapsed)

	if runErr != nil {
		if errors.Is(runErr, sorts.ErrShuffleLimit) {
			r.logger.Warn("bogo sort gave up", "max_shuffles", r.cfg.MaxShuffles)
		}
		return result, &RunError{Algorithm: alg, Wrapped: runErr}
	}
	return result, nil
}

func (r *Runner) validate(input []int) error {
	if r.cfg.MaxShuffles < 0 {
		return fmt.Errorf("max shuffles must be non-negative, got %d", r.cfg.MaxShuffles)
	}
	if r.cfg.Length > 0 && len(input) != r.cfg.Length {
		return fmt.Errorf("input must have %d elements, got %d", r.cfg.Length, len(input))
	}
	return nil
}
