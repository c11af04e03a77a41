// Package config provides configuration loading and management for floci.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hamhec/FLOCI/export"
	"github.com/hamhec/FLOCI/fuzzydl"
)

// Config represents the complete floci configuration
type Config struct {
	Translation TranslationConfig `yaml:"translation"`
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Watch       WatchConfig       `yaml:"watch"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Log         LogConfig         `yaml:"log"`
}

// TranslationConfig configures numeric encoding and unsupported-construct
// handling
type TranslationConfig struct {
	// Epsilon tightens exclusive real facet bounds (default: 0.001)
	Epsilon float64 `yaml:"epsilon"`
	// IntegerMin and IntegerMax stand in for unbounded integer ranges
	IntegerMin int64 `yaml:"integer_min"`
	IntegerMax int64 `yaml:"integer_max"`
	// RealMin and RealMax stand in for unbounded real ranges
	RealMin float64 `yaml:"real_min"`
	RealMax float64 `yaml:"real_max"`
	// FailOnUnsupported turns any diagnostic into a failed run
	FailOnUnsupported bool `yaml:"fail_on_unsupported"`
}

// InputConfig configures how remote (http/https) ontology documents are
// fetched
type InputConfig struct {
	// Timeout bounds a single fetch (default: 30s)
	Timeout time.Duration `yaml:"timeout"`
	// MaxSize is the largest accepted document in bytes (default: 10 MiB)
	MaxSize int64 `yaml:"max_size"`
	// AllowHTTP permits plain http URLs
	AllowHTTP bool `yaml:"allow_http"`
	// AllowPrivate permits localhost and private network hosts
	AllowPrivate bool `yaml:"allow_private"`
}

// OutputConfig configures where and how clauses are written
type OutputConfig struct {
	// Extension is appended to output files in batch mode (default: .fdl)
	Extension string `yaml:"extension"`
	// Overwrite allows replacing existing output files
	Overwrite bool `yaml:"overwrite"`
	// Format is the output format name (fuzzydl or json)
	Format string `yaml:"format"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Debounce is the quiet period before a changed input is re-translated
	Debounce time.Duration `yaml:"debounce"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	// Enabled starts the /metrics endpoint in watch mode
	Enabled bool `yaml:"enabled"`
	// Addr is the listen address of the endpoint (default: :9090)
	Addr string `yaml:"addr"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	opts := fuzzydl.DefaultOptions()
	return &Config{
		Translation: TranslationConfig{
			Epsilon:    opts.Epsilon,
			IntegerMin: opts.IntegerMin,
			IntegerMax: opts.IntegerMax,
			RealMin:    opts.RealMin,
			RealMax:    opts.RealMax,
		},
		Input: InputConfig{
			Timeout: 30 * time.Second,
			MaxSize: 10 << 20,
		},
		Output: OutputConfig{
			Extension: ".fdl",
			Overwrite: true,
			Format:    string(export.FormatFuzzyDL),
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Options returns the emitter options described by the translation section.
func (t TranslationConfig) Options() fuzzydl.Options {
	return fuzzydl.Options{
		Epsilon:    t.Epsilon,
		IntegerMin: t.IntegerMin,
		IntegerMax: t.IntegerMax,
		RealMin:    t.RealMin,
		RealMax:    t.RealMax,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if err := c.Translation.Options().Validate(); err != nil {
		return fmt.Errorf("translation: %w", err)
	}
	if c.Input.Timeout <= 0 {
		return fmt.Errorf("input.timeout must be positive")
	}
	if c.Input.MaxSize <= 0 {
		return fmt.Errorf("input.max_size must be positive")
	}
	if !strings.HasPrefix(c.Output.Extension, ".") {
		return fmt.Errorf("output.extension must start with a dot, got %q", c.Output.Extension)
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr is required when metrics are enabled")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// ParseLevel converts a level name into a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := applyFile(config, path); err != nil {
		return nil, err
	}
	return config, nil
}

// applyFile decodes the file over config. Keys absent from the file keep
// their current values.
func applyFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal([]byte(ExpandEnv(string(data))), config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// ExpandEnv expands ${VAR} and $VAR references in s. ${VAR:-default} uses
// default when VAR is unset or empty.
func ExpandEnv(s string) string {
	return os.Expand(s, func(name string) string {
		name, def, hasDefault := strings.Cut(name, ":-")
		if v := os.Getenv(name); v != "" || !hasDefault {
			return v
		}
		return def
	})
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Translation
	if other.Translation.Epsilon != 0 {
		c.Translation.Epsilon = other.Translation.Epsilon
	}
	if other.Translation.IntegerMin != 0 {
		c.Translation.IntegerMin = other.Translation.IntegerMin
	}
	if other.Translation.IntegerMax != 0 {
		c.Translation.IntegerMax = other.Translation.IntegerMax
	}
	if other.Translation.RealMin != 0 {
		c.Translation.RealMin = other.Translation.RealMin
	}
	if other.Translation.RealMax != 0 {
		c.Translation.RealMax = other.Translation.RealMax
	}
	if other.Translation.FailOnUnsupported {
		c.Translation.FailOnUnsupported = true
	}

	// Input
	if other.Input.Timeout != 0 {
		c.Input.Timeout = other.Input.Timeout
	}
	if other.Input.MaxSize != 0 {
		c.Input.MaxSize = other.Input.MaxSize
	}
	if other.Input.AllowHTTP {
		c.Input.AllowHTTP = true
	}
	if other.Input.AllowPrivate {
		c.Input.AllowPrivate = true
	}

	// Output
	if other.Output.Extension != "" {
		c.Output.Extension = other.Output.Extension
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}

	// Watch
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}

	// Metrics
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
	if other.Metrics.Enabled {
		c.Metrics.Enabled = true
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
