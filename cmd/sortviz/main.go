package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
)

var (
	dataDir     string
	configFile  string
	seed        int64
	verbose     bool
	maxShuffles int
	presetName  string
	noSave      bool
	stepIndex   int
	outPath     string
	inversions  bool
	limit       int
	force       bool

	cfg    *config.Config
	logger *logging.Logger
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs root and always releases the log file, including when the
// command fails.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if logger != nil {
		if err != nil {
			logger.Debug("command failed", "error", err)
		}
		logger.Close()
		logger = nil
	}
	return err
}

// newRootCmd registers every command. With no subcommand on a terminal the
// root opens the interactive player.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "sortviz",
		Short:             "step-by-step sorting algorithm playback",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return cmd.Help()
			}
			return runInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&maxShuffles, "max-shuffles", 0, "give up bogo sort after this many shuffles (0 = never)")

	runCmd := &cobra.Command{
		Use:   "run [algorithm] [digits]",
		Short: "record a run and print its summary",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runSort,
	}
	runCmd.Flags().StringVar(&presetName, "preset", "", "use a named input")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not write the run directory")

	playCmd := &cobra.Command{
		Use:   "play [algorithm] [digits]",
		Short: "record a run and animate it in the terminal",
		Args:  cobra.MaximumNArgs(2),
		RunE:  playSort,
	}
	playCmd.Flags().StringVar(&presetName, "preset", "", "use a named input")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "show the run ledger",
		Args:  cobra.NoArgs,
		RunE:  showHistory,
	}
	historyCmd.Flags().IntVar(&limit, "limit", 20, "number of entries (0 = all)")

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "animate a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot inversions per step of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run's steps as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export one step of a saved run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&stepIndex, "step", -1, "step to draw (default last)")
	exportSVGCmd.Flags().BoolVar(&inversions, "inversions", false, "plot inversions per step instead")
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "print a random input",
		Args:  cobra.NoArgs,
		RunE:  printRandom,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Printf("  %-10s %s\n", name, config.GetPreset(name))
			}
			return nil
		},
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted batch of runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [digits]",
		Short: "run every algorithm on the same input",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareAlgorithms,
	}
	compareCmd.Flags().StringVar(&presetName, "preset", "", "use a named input")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the configuration file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "write the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, playCmd, listCmd, historyCmd, showCmd, replayCmd, plotCmd,
		exportJSONCmd, exportSVGCmd, algorithmsCmd, randomCmd, presetsCmd, batchCmd, compareCmd,
		configCmd)
	return rootCmd
}

// setup loads the config, lets explicit flags override it, and builds the
// logger. The interactive root command never logs to the terminal.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := logging.Options{Verbose: verbose}
	if cmd.HasParent() {
		opts.Console = os.Stderr
	}
	if cfg.LogFile != "" {
		opts.File = cfg.LogFile
		if !filepath.IsAbs(opts.File) {
			opts.File = filepath.Join(cfg.DataDir, opts.File)
		}
	}
	logger, err = logging.New(opts)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		c = loaded
	} else if loaded, err := config.Load(filepath.Join(dataDir, "config.yaml")); err == nil {
		c = loaded
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("data") || c.DataDir == "" {
		c.DataDir = dataDir
	}
	if flags.Changed("seed") || c.Seed == 0 {
		c.Seed = seed
	}
	if flags.Changed("max-shuffles") {
		c.MaxShuffles = maxShuffles
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
