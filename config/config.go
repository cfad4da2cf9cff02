// Package config reads decoder settings from TOML and wires an instance,
// a logger and an optional route sink into a ready Decoder.
//
// Example file:
//
//	instance  = "instances/r101.txt"
//	policy    = "profit"   # or "distance"
//	alpha     = 0.5
//	threshold = 1000
//	emit      = false
//	workers   = 4
//	log_level = "info"
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/AntonioDantas/RKO/decoder"
	"github.com/AntonioDantas/RKO/instance"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings an external driver needs to build a Decoder.
type Config struct {
	Instance  string  `toml:"instance"`
	Policy    string  `toml:"policy"`
	Alpha     float64 `toml:"alpha"`
	Threshold int     `toml:"threshold"`
	Emit      bool    `toml:"emit"`
	Workers   int     `toml:"workers"` // DecodeBatch parallelism, 0 ⇒ GOMAXPROCS
	LogLevel  string  `toml:"log_level"`
}

// Default returns the profit policy with α=0.5, the standard vehicle
// threshold, no emission, GOMAXPROCS workers and info logging.
func Default() Config {
	return Config{
		Policy:    instance.PolicyProfit.String(),
		Alpha:     decoder.DefaultAlpha,
		Threshold: instance.DefaultThreshold,
		LogLevel:  log.InfoLevel.String(),
	}
}

// Parse decodes TOML data over Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undec[0].String())
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate checks every field that Setup relies on.
func (c Config) Validate() error {
	if _, err := instance.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if math.IsNaN(c.Alpha) || c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("%w: alpha %v outside [0,1]", ErrInvalid, c.Alpha)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalid, c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	return nil
}

// Level returns the parsed log level, InfoLevel when unset or invalid.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// InstanceOptions maps the config onto Builder options.
func (c Config) InstanceOptions(logger *log.Logger) []instance.Option {
	p, _ := instance.ParsePolicy(c.Policy)
	return []instance.Option{
		instance.WithPolicy(p),
		instance.WithThreshold(c.Threshold),
		instance.WithLogger(logger),
	}
}

// DecoderOptions maps the config onto Decoder options. sink receives
// emitted routes when Emit is set; it is ignored otherwise.
func (c Config) DecoderOptions(logger *log.Logger, sink io.Writer) []decoder.Option {
	opts := []decoder.Option{
		decoder.WithAlpha(c.Alpha),
		decoder.WithLogger(logger),
	}
	if c.Emit && sink != nil {
		opts = append(opts, decoder.WithEmitter(decoder.NewWriterEmitter(sink)))
	}
	return opts
}

// NewLogger returns a timestamped logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           c.Level(),
	})
}

// Setup validates cfg, loads its instance and returns the Decoder.
// A nil logger discards diagnostics.
func Setup(cfg Config, logger *log.Logger, sink io.Writer) (*decoder.Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	in, err := instance.Load(cfg.Instance, cfg.InstanceOptions(logger)...)
	if err != nil {
		return nil, err
	}
	return decoder.New(in, cfg.DecoderOptions(logger, sink)...)
}

// DecodeBatch decodes keySets on d with the configured worker bound.
func (c Config) DecodeBatch(ctx context.Context, d *decoder.Decoder, keySets [][]float64) ([]decoder.Result, error) {
	return d.DecodeBatch(ctx, keySets, c.Workers)
}
