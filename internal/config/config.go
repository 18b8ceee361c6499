package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/sorts"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultTheme     = "cyberpunk"
	DefaultDataDir   = ".sortviz"
	DefaultLogFile   = "sortviz.log"
)

type Config struct {
	Algorithm   string `yaml:"algorithm"`
	Input       string `yaml:"input"`
	Length      int    `yaml:"length"`
	Seed        int64  `yaml:"seed"`
	DataDir     string `yaml:"data_dir"`
	LogFile     string `yaml:"log_file"`
	Theme       string `yaml:"theme"`
	MaxShuffles int    `yaml:"max_shuffles"`
	// Delays overrides the frame delay per algorithm, in milliseconds.
	Delays map[string]int `yaml:"delays,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Length:    input.DefaultLength,
		DataDir:   DefaultDataDir,
		LogFile:   DefaultLogFile,
		Theme:     DefaultTheme,
	}
}

// Load reads a YAML file over the defaults. Missing keys keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := sorts.Parse(c.Algorithm); err != nil {
		return fmt.Errorf("config: algorithm: %w", err)
	}
	if c.Length <= 0 || c.Length > input.MaxLength {
		return fmt.Errorf("config: length must be between 1 and %d, got %d", input.MaxLength, c.Length)
	}
	if c.Input != "" {
		if _, err := input.ParseN(c.Input, c.Length); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.MaxShuffles < 0 {
		return fmt.Errorf("config: max_shuffles must be non-negative, got %d", c.MaxShuffles)
	}
	for name, ms := range c.Delays {
		if _, err := sorts.Parse(name); err != nil {
			return fmt.Errorf("config: delays: %w", err)
		}
		if ms < 0 {
			return fmt.Errorf("config: delay for %s must be non-negative, got %d", name, ms)
		}
	}
	return nil
}

// AlgorithmValue parses the configured algorithm name.
func (c *Config) AlgorithmValue() (sorts.Algorithm, error) {
	return sorts.Parse(c.Algorithm)
}

// Delay returns the configured frame delay for alg, or its built-in default.
func (c *Config) Delay(alg sorts.Algorithm) time.Duration {
	if ms, ok := c.Delays[alg.String()]; ok {
		return time.Duration(ms) * time.Millisecond
	}
	return alg.FrameDelay()
}
