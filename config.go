package aoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the file based run configuration. Flags set on the command line
// take precedence over it.
type Config struct {
	// Inputs is the directory holding <year>/<day>.input files.
	Inputs   string `yaml:"inputs"`
	Debug    bool   `yaml:"debug"`
	LogLevel string `yaml:"log_level"`
}

// Options are the command line flags.
type Options struct {
	Day        int
	Part       string
	Sample     bool
	SkipSample bool
	Debug      bool
	Inputs     string
	Config     string
}

func defaultConfig() Config {
	return Config{Inputs: ".", LogLevel: "info"}
}

// LoadConfig reads a YAML config file. Unset fields keep their defaults;
// unknown fields and unknown log levels are an error.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("config %s: log_level: %w", path, err)
	}
	if cfg.Inputs == "" {
		cfg.Inputs = "."
	}
	return cfg, nil
}

// resolveConfig merges the optional config file with the flags that were
// explicitly set on cmd.
func resolveConfig(cmd *cobra.Command, opts Options) (Config, error) {
	cfg := defaultConfig()
	if opts.Config != "" {
		c, err := LoadConfig(opts.Config)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}
	flags := cmd.Flags()
	if flags.Changed("inputs") || opts.Config == "" {
		cfg.Inputs = opts.Inputs
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.Debug
	}
	if opts.Sample && opts.SkipSample {
		return cfg, errors.New("--sample and --skip-sample are mutually exclusive")
	}
	return cfg, nil
}
