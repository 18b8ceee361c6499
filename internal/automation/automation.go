package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/history"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/storage"
)

// Scenario is a scripted batch of runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Seed        int64  `yaml:"seed"`
	MaxShuffles int    `yaml:"max_shuffles"`
	// Length is the digit count of every step. Zero means input.DefaultLength.
	Length int            `yaml:"length"`
	Steps  []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one run. Exactly one of Input, Preset or Random picks the
// digits.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Input     string `yaml:"input"`
	Preset    string `yaml:"preset"`
	Random    bool   `yaml:"random"`
	Save      bool   `yaml:"save"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// Sinks receive finished runs. Nil sinks are skipped.
type Sinks struct {
	History *history.Store
	Storage *storage.Store
	Logger  *slog.Logger
}

type StepResult struct {
	Index     int
	Result    *engine.Result
	RunID     string
	HistoryID string
	// Err is set when bogo sort gave up; the partial result is still kept.
	Err error
}

// RunScenario executes every step in order. Every run is written to the
// history ledger; steps marked save are also written to the run store.
func RunScenario(ctx context.Context, scenario *Scenario, sinks Sinks) ([]StepResult, error) {
	logger := sinks.Logger
	if logger == nil {
		logger = slog.Default()
	}

	seed := scenario.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	length := scenario.Length
	if length <= 0 {
		length = input.DefaultLength
	}
	rng := rand.New(rand.NewSource(seed))
	runner := engine.New(engine.Config{Seed: seed, MaxShuffles: scenario.MaxShuffles, Length: length})
	runner.SetLogger(logger)
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}

	results := make([]StepResult, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.Info("running step", "step", i+1, "of", len(scenario.Steps), "algorithm", step.Algorithm)

		alg, err := sorts.Parse(step.Algorithm)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		values, err := step.digits(rng, length)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		result, err := runner.Run(ctx, alg, values)
		sr := StepResult{Index: i, Result: result}
		if err != nil {
			if result == nil || !errors.Is(err, sorts.ErrShuffleLimit) {
				return results, fmt.Errorf("step %d run: %w", i+1, err)
			}
			sr.Err = err
		}

		if sinks.History != nil {
			sr.HistoryID, err = sinks.History.Save(ctx, HistoryRecord(result))
			if err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if step.Save && sinks.Storage != nil {
			sr.RunID, err = sinks.Storage.Save(result)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}

		results = append(results, sr)
	}
	return results, nil
}

func (s ScenarioStep) digits(rng *rand.Rand, n int) ([]int, error) {
	switch {
	case s.Random:
		return input.ParseN(input.RandomN(rng, n), n)
	case s.Preset != "":
		digits := config.GetPreset(s.Preset)
		if digits == "" {
			return nil, fmt.Errorf("unknown preset %q", s.Preset)
		}
		return input.ParseN(digits, n)
	default:
		return input.ParseN(s.Input, n)
	}
}

// HistoryRecord converts a finished run into a ledger entry.
func HistoryRecord(r *engine.Result) history.Record {
	return history.Record{
		Algorithm: r.Algorithm.String(),
		Original:  r.Input,
		Sorted:    r.Output,
		Steps:     r.Steps(),
	}
}

// ComparisonRow summarizes one algorithm over a shared input.
type ComparisonRow struct {
	Algorithm sorts.Algorithm
	Steps     int
	Metrics   map[string]float64
	Err       error
}

// RunComparison records every algorithm over the same values, one goroutine
// per algorithm. Rows come back in sorts.All order.
func RunComparison(ctx context.Context, values []int, cfg engine.Config) ([]ComparisonRow, error) {
	algs := sorts.All()
	rows := make([]ComparisonRow, len(algs))
	errs := make([]error, len(algs))

	var wg sync.WaitGroup
	for i, alg := range algs {
		wg.Add(1)
		go func(idx int, alg sorts.Algorithm) {
			defer wg.Done()

			runner := engine.New(cfg)
			for _, m := range metrics.Defaults() {
				runner.AddMetric(m)
			}

			result, err := runner.Run(ctx, alg, values)
			if result == nil {
				errs[idx] = err
				return
			}
			rows[idx] = ComparisonRow{
				Algorithm: alg,
				Steps:     result.Steps(),
				Metrics:   result.Metrics,
				Err:       err,
			}
		}(i, alg)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}
