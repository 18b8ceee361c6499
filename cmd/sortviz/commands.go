package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/history"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

func runStore() *storage.Store {
	return storage.New(filepath.Join(cfg.DataDir, "runs"))
}

func openHistory() (*history.Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, err
	}
	return history.Open(filepath.Join(cfg.DataDir, "history.db"))
}

func newRunner() *engine.Runner {
	runner := engine.New(engine.Config{Seed: cfg.Seed, MaxShuffles: cfg.MaxShuffles, Length: cfg.Length})
	runner.SetLogger(logger.Logger)
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}
	runner.AddObserver(engine.ObserverFunc(func(i int, step trace.Step) {
		logger.Debug("step",
			"index", i,
			"array", input.Format(step.Array),
			"active", step.Active,
			"eliminated", step.Eliminated)
	}))
	return runner
}

// resolveRun picks the algorithm and digits from positional args, then
// --preset, then the config, falling back to a random input.
func resolveRun(args []string) (sorts.Algorithm, []int, error) {
	name := cfg.Algorithm
	if len(args) > 0 {
		name = args[0]
	}
	alg, err := sorts.Parse(name)
	if err != nil {
		return 0, nil, err
	}

	digits, err := resolveDigits(args[min(1, len(args)):])
	if err != nil {
		return 0, nil, err
	}
	values, err := input.ParseN(digits, cfg.Length)
	if err != nil {
		return 0, nil, err
	}
	return alg, values, nil
}

func resolveDigits(args []string) (string, error) {
	switch {
	case len(args) > 0:
		return args[0], nil
	case presetName != "":
		digits := config.GetPreset(presetName)
		if digits == "" {
			return "", fmt.Errorf("unknown preset %q (have %s)", presetName, strings.Join(config.ListPresets(), ", "))
		}
		return digits, nil
	case cfg.Input != "":
		return cfg.Input, nil
	default:
		return input.RandomN(rand.New(rand.NewSource(cfg.Seed)), cfg.Length), nil
	}
}

// record runs alg and writes it to the ledger. A bogo run that hit the
// shuffle limit is still returned together with its error.
func record(ctx context.Context, alg sorts.Algorithm, values []int) (*engine.Result, error) {
	result, err := newRunner().Run(ctx, alg, values)
	if result == nil {
		return nil, err
	}

	ledger, herr := openHistory()
	if herr != nil {
		logger.Warn("history unavailable", "error", herr)
		return result, err
	}
	defer ledger.Close()
	if _, herr := ledger.Save(ctx, automation.HistoryRecord(result)); herr != nil {
		logger.Warn("history save failed", "error", herr)
	}
	return result, err
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runSort(cmd *cobra.Command, args []string) error {
	alg, values, err := resolveRun(args)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	result, runErr := record(ctx, alg, values)
	if result == nil {
		return runErr
	}

	printResult(os.Stdout, result)
	if !noSave {
		store := runStore()
		if err := store.Init(); err != nil {
			return err
		}
		id, err := store.Save(result)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Printf("  saved      %s\n", id)
	}
	return runErr
}

func printResult(w io.Writer, r *engine.Result) {
	fmt.Fprintf(w, "  algorithm  %s\n", r.Algorithm.Title())
	fmt.Fprintf(w, "  input      %s\n", input.Format(r.Input))
	fmt.Fprintf(w, "  output     %s\n", input.Format(r.Output))
	fmt.Fprintf(w, "  steps      %d\n", r.Steps())
	fmt.Fprintf(w, "  elapsed    %v\n", r.Elapsed)
	printMetrics(w, r.Metrics)
}

func printMetrics(w io.Writer, m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %.0f\n", name, m[name])
	}
}

func playSort(cmd *cobra.Command, args []string) error {
	alg, values, err := resolveRun(args)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	result, runErr := record(ctx, alg, values)
	if result == nil {
		return runErr
	}
	if err := animate(ctx, alg, result.Trace); err != nil {
		return err
	}
	printResult(os.Stdout, result)
	return runErr
}

func replayRun(cmd *cobra.Command, args []string) error {
	store := runStore()
	meta, err := store.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	alg, err := sorts.Parse(meta.Algorithm)
	if err != nil {
		return err
	}
	tr, err := store.LoadTrace(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()
	return animate(ctx, alg, tr)
}

// animate plays tr in the terminal until it ends or ctx is canceled.
func animate(ctx context.Context, alg sorts.Algorithm, tr trace.Trace) error {
	renderer := tui.NewLiveRenderer(len(tr.First().Array))
	renderer.HideCursor()
	defer renderer.ShowCursor()

	driver := playback.NewDriver(renderer,
		playback.WithDecorator(renderer),
		playback.WithDelay(cfg.Delay),
		playback.WithLogger(logger.Logger),
	)
	session := driver.Play(ctx, alg, tr)
	err := session.Wait()
	logger.Debug("playback finished",
		"algorithm", session.Algorithm().String(),
		"frames", session.Frames(),
		"total", session.Total())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := runStore().List()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tINPUT\tSTEPS\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.Algorithm, input.Format(r.Input), r.Steps, r.Timestamp.Format(time.DateTime))
	}
	return w.Flush()
}

// showRun prints a saved run directory, or a history ledger entry when no
// run directory has that id.
func showRun(cmd *cobra.Command, args []string) error {
	meta, err := runStore().Load(args[0])
	if errors.Is(err, os.ErrNotExist) {
		return showLedgerEntry(cmd.Context(), args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	fmt.Printf("  id         %s\n", meta.ID)
	fmt.Printf("  algorithm  %s\n", meta.Algorithm)
	fmt.Printf("  timestamp  %s\n", meta.Timestamp.Format(time.RFC3339))
	fmt.Printf("  seed       %d\n", meta.Seed)
	fmt.Printf("  input      %s\n", input.Format(meta.Input))
	fmt.Printf("  output     %s\n", input.Format(meta.Output))
	fmt.Printf("  steps      %d\n", meta.Steps)
	fmt.Printf("  elapsed    %v\n", time.Duration(meta.ElapsedNS))
	printMetrics(os.Stdout, meta.Metrics)
	return nil
}

func showLedgerEntry(ctx context.Context, id string) error {
	ledger, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer ledger.Close()

	rec, err := ledger.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load run %s: %w", id, err)
	}
	fmt.Printf("  id         %s\n", rec.ID)
	fmt.Printf("  algorithm  %s\n", rec.Algorithm)
	fmt.Printf("  executed   %s\n", rec.ExecutedAt.Format(time.RFC3339))
	fmt.Printf("  input      %s\n", input.Format(rec.Original))
	fmt.Printf("  output     %s\n", input.Format(rec.Sorted))
	fmt.Printf("  steps      %d\n", rec.Steps)
	return nil
}

// initConfig writes the effective configuration to --config, or to
// config.yaml in the data directory.
func initConfig(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	out := *cfg
	if !cmd.Flags().Changed("seed") {
		out.Seed = 0
	}
	if err := config.Save(path, &out); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func showHistory(cmd *cobra.Command, args []string) error {
	ledger, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer ledger.Close()

	ctx := cmd.Context()
	records, err := ledger.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no history")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tORIGINAL\tSORTED\tSTEPS\tEXECUTED")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			r.Algorithm, input.Format(r.Original), input.Format(r.Sorted), r.Steps, r.ExecutedAt.Format(time.DateTime))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	counts, err := ledger.CountByAlgorithm(ctx)
	if err != nil {
		return err
	}
	fmt.Println()
	for _, name := range sorts.Names() {
		if n := counts[name]; n > 0 {
			fmt.Printf("  %-10s %d runs\n", name, n)
		}
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	tr, err := runStore().LoadTrace(args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	series := metrics.Series(tr)
	if len(series) == 0 {
		return fmt.Errorf("run %s has no steps", args[0])
	}

	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("inversions per step"),
	))
	return nil
}

func output() (io.Writer, func() error, error) {
	if outPath == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	store := runStore()
	meta, err := store.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	alg, err := sorts.Parse(meta.Algorithm)
	if err != nil {
		return err
	}
	tr, err := store.LoadTrace(args[0])
	if err != nil {
		return err
	}

	if outPath != "" {
		return export.WriteTraceJSON(outPath, alg, tr)
	}
	return export.TraceJSON(os.Stdout, alg, tr)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	tr, err := runStore().LoadTrace(args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	if len(tr) == 0 {
		return fmt.Errorf("run %s has no steps", args[0])
	}

	opts := export.DefaultSVGOptions()
	var svg string
	if inversions {
		svg = export.SeriesSVG(metrics.Series(tr), opts.Width, opts.Height, opts.Active)
	} else {
		idx := stepIndex
		if idx < 0 {
			idx = len(tr) - 1
		}
		if idx >= len(tr) {
			return fmt.Errorf("step %d out of range (run has %d steps)", idx, len(tr))
		}
		svg = export.StepSVG(tr[idx], opts)
	}

	w, closeFn, err := output()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, svg); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tDELAY\tDESCRIPTION")
	for _, alg := range sorts.All() {
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", alg, alg.Title(), cfg.Delay(alg), alg.Description())
	}
	return w.Flush()
}

func printRandom(cmd *cobra.Command, args []string) error {
	fmt.Println(input.RandomN(rand.New(rand.NewSource(cfg.Seed)), cfg.Length))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	if scenario.MaxShuffles == 0 {
		scenario.MaxShuffles = cfg.MaxShuffles
	}
	if scenario.Length == 0 {
		scenario.Length = cfg.Length
	}

	ledger, err := openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer ledger.Close()
	store := runStore()
	if err := store.Init(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := automation.RunScenario(ctx, scenario, automation.Sinks{
		History: ledger,
		Storage: store,
		Logger:  logger.Logger,
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tINPUT\tSTEPS\tRUN\tNOTE")
	for _, sr := range results {
		note := ""
		if sr.Err != nil {
			note = sr.Err.Error()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n", sr.Index+1, sr.Result.Algorithm,
			input.Format(sr.Result.Input), sr.Result.Steps(), sr.RunID, note)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	digits, err := resolveDigits(args)
	if err != nil {
		return err
	}
	values, err := input.ParseN(digits, cfg.Length)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	rows, err := automation.RunComparison(ctx, values, engine.Config{
		Seed:        cfg.Seed,
		MaxShuffles: cfg.MaxShuffles,
		Length:      cfg.Length,
	})
	if err != nil {
		return err
	}

	fmt.Printf("input %s\n\n", input.Format(values))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tWRITES\tINVERSIONS\tNOTE")
	for _, row := range rows {
		note := ""
		if row.Err != nil {
			note = "gave up"
		}
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%.0f\t%s\n", row.Algorithm, row.Steps,
			row.Metrics["comparisons"], row.Metrics["writes"], row.Metrics["inversions"], note)
	}
	return w.Flush()
}

func runInteractive() error {
	alg, err := cfg.AlgorithmValue()
	if err != nil {
		return err
	}

	ledger, err := openHistory()
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		ledger = nil
	} else {
		defer ledger.Close()
	}

	return viz.RunInteractive(viz.Options{
		Algorithm: alg,
		Input:     cfg.Input,
		Length:    cfg.Length,
		Engine:    engine.Config{Seed: cfg.Seed, MaxShuffles: cfg.MaxShuffles},
		Theme:     cfg.Theme,
		Delay:     cfg.Delay,
		Logger:    logger.Logger,
		OnRun: func(r *engine.Result) {
			if ledger == nil {
				return
			}
			if _, err := ledger.Save(context.Background(), automation.HistoryRecord(r)); err != nil {
				logger.Warn("history save failed", "error", err)
			}
		},
	})
}
