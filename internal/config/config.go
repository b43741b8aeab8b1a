// Package config loads the YAML configuration of the search and the pattern
// compiler.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mahdiidarabi/solvanity/internal/keys"
	"github.com/mahdiidarabi/solvanity/internal/pattern"
)

// MaxOccupiedBits bounds a single batch to 2^40 lanes.
const MaxOccupiedBits = 40

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// PrefixConfig is one prefix pattern.
type PrefixConfig struct {
	Text       string `yaml:"text"`
	IgnoreCase bool   `yaml:"ignore_case"`
}

// PatternConfig configures the pattern compiler.
type PatternConfig struct {
	Prefixes []PrefixConfig `yaml:"prefixes"`
	Suffix   string         `yaml:"suffix"`
	// AuditFile receives the accepted prefixes, one per line.
	AuditFile string `yaml:"audit_file"`
	// KernelFile is an external matcher source whose table declarations are
	// rewritten. Empty disables injection.
	KernelFile string `yaml:"kernel_file"`
}

// SearchConfig configures the search loop.
type SearchConfig struct {
	OccupiedBits uint   `yaml:"occupied_bits"`
	LocalSize    int    `yaml:"local_size"`
	Scheme       string `yaml:"scheme"`
	CounterFile  string `yaml:"counter_file"`
	OutputDir    string `yaml:"output_dir"`
	// VerifyMatches re-derives every reported address before it is persisted.
	VerifyMatches bool `yaml:"verify_matches"`
	// MaxBatches stops the loop after that many batches. Zero runs until stopped.
	MaxBatches uint64 `yaml:"max_batches"`
	// ProgressEvery logs a summary every N batches.
	ProgressEvery uint64 `yaml:"progress_every"`
}

// Config is the full file layout.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Pattern  PatternConfig `yaml:"pattern"`
	Search   SearchConfig  `yaml:"search"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "INFO",
		Pattern: PatternConfig{
			Prefixes:  []PrefixConfig{{Text: "SoL", IgnoreCase: true}},
			AuditFile: "validPrefixes.txt",
		},
		Search: SearchConfig{
			OccupiedBits:  24,
			LocalSize:     32,
			Scheme:        "ed25519",
			CounterFile:   ".global_number.dat",
			OutputDir:     "output",
			ProgressEvery: 100,
		},
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg and validates the result. Unknown keys are
// rejected.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks every field for range and consistency.
func (c *Config) Validate() error {
	if len(c.Pattern.Prefixes) == 0 {
		return fmt.Errorf("%w: no prefixes", ErrInvalidConfig)
	}
	if c.Search.OccupiedBits < 1 || c.Search.OccupiedBits > MaxOccupiedBits {
		return fmt.Errorf("%w: occupied_bits %d not in [1, %d]", ErrInvalidConfig, c.Search.OccupiedBits, MaxOccupiedBits)
	}
	if n := c.Search.LocalSize; n < 1 || n&(n-1) != 0 {
		return fmt.Errorf("%w: local_size %d is not a power of two", ErrInvalidConfig, n)
	}
	if _, err := keys.SchemeByName(c.Search.Scheme); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Search.CounterFile == "" {
		return fmt.Errorf("%w: counter_file is empty", ErrInvalidConfig)
	}
	if c.Search.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalidConfig)
	}
	if c.Pattern.AuditFile == "" {
		return fmt.Errorf("%w: audit_file is empty", ErrInvalidConfig)
	}
	return nil
}

// PrefixPatterns converts the configured prefixes.
func (c *Config) PrefixPatterns() []pattern.Prefix {
	out := make([]pattern.Prefix, 0, len(c.Pattern.Prefixes))
	for _, p := range c.Pattern.Prefixes {
		out = append(out, pattern.Prefix{Text: p.Text, IgnoreCase: p.IgnoreCase})
	}
	return out
}
