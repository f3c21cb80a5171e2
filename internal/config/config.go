package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBackend   = "num"
	DefaultRTol      = 1e-5
	DefaultATol      = 1e-8
	DefaultPrecision = 6
	DefaultLogLevel  = "info"
	DefaultSamples   = 64
	DefaultHeight    = 12
	DefaultWidth     = 72
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Backend   string          `yaml:"backend"`
	Precision int             `yaml:"precision"`
	LogLevel  string          `yaml:"log_level"`
	Tolerance ToleranceConfig `yaml:"tolerance"`
	Trace     TraceConfig     `yaml:"trace"`
	// Poses extends the built-in presets; a name here shadows a preset.
	Poses map[string]*Pose `yaml:"poses,omitempty"`
}

// ToleranceConfig is the all-close tolerance of the numeric backend.
type ToleranceConfig struct {
	RTol float64 `yaml:"rtol"`
	ATol float64 `yaml:"atol"`
}

// TraceConfig sizes the plot of the trace command.
type TraceConfig struct {
	Samples int `yaml:"samples"`
	Height  int `yaml:"height"`
	Width   int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend:   DefaultBackend,
		Precision: DefaultPrecision,
		LogLevel:  DefaultLogLevel,
		Tolerance: ToleranceConfig{
			RTol: DefaultRTol,
			ATol: DefaultATol,
		},
		Trace: TraceConfig{
			Samples: DefaultSamples,
			Height:  DefaultHeight,
			Width:   DefaultWidth,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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
	switch c.Backend {
	case "num", "sym":
	default:
		return fmt.Errorf("%w: backend %q (want num or sym)", ErrInvalid, c.Backend)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("%w: precision %d", ErrInvalid, c.Precision)
	}
	if c.Tolerance.RTol < 0 || c.Tolerance.ATol < 0 {
		return fmt.Errorf("%w: negative tolerance", ErrInvalid)
	}
	if c.Trace.Samples < 2 || c.Trace.Height < 1 || c.Trace.Width < 1 {
		return fmt.Errorf("%w: trace %+v", ErrInvalid, c.Trace)
	}
	for name, p := range c.Poses {
		if err := p.validate(); err != nil {
			return fmt.Errorf("%w: pose %s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

// Pose looks a pose up in the file first and in the presets second.
func (c *Config) Pose(name string) *Pose {
	if p, ok := c.Poses[name]; ok {
		return p
	}
	return GetPreset(name)
}
