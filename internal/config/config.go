// Package config holds the batch runner settings, read from a YAML file and
// overridden by command-line flags.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Log formats accepted by LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the full runner configuration.
type Config struct {
	// InputDir is scanned for *.tsp files when no single file is given.
	InputDir string `yaml:"input_dir"`
	// Output is the results JSON file, rewritten after every instance.
	Output string `yaml:"output"`
	// Optima is the known-optimum table; a missing file only warns.
	Optima string `yaml:"optima"`

	// TimeLimit applies to the approximation solvers (negative: unlimited).
	TimeLimit time.Duration `yaml:"time_limit"`
	// ExactTimeLimit applies to branch-and-bound.
	ExactTimeLimit time.Duration `yaml:"exact_time_limit"`
	// RunExact enables the branch-and-bound run per instance.
	RunExact bool `yaml:"run_exact"`

	// MetricsFile, when set, receives solver metrics in Prometheus text format.
	MetricsFile string `yaml:"metrics_file"`

	LogFormat string `yaml:"log_format"`
	Verbose   bool   `yaml:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		InputDir:       "tsp_instances",
		Output:         "tsp_results.json",
		Optima:         "otimos.json",
		TimeLimit:      30 * time.Minute,
		ExactTimeLimit: time.Second,
		RunExact:       true,
		LogFormat:      LogFormatText,
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, errors.WithMessage(err, path)
	}

	return cfg, cfg.Validate()
}

// Decode overlays the YAML document data onto cfg. Unknown keys are errors.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "failed to parse config")
	}

	return nil
}

// Validate checks the settings that have no usable zero value.
func (c Config) Validate() error {
	if c.Output == "" {
		return errors.New("config: output must not be empty")
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.Errorf("config: unknown log_format %q", c.LogFormat)
	}

	return nil
}
