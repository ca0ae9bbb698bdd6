package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/pasteimg/internal/capture"
	"github.com/Iron-Ham/pasteimg/internal/codec"
	"github.com/Iron-Ham/pasteimg/internal/fingerprint"
	"github.com/Iron-Ham/pasteimg/internal/progress"
)

// Config represents the complete pasteimg configuration
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Progress ProgressConfig `mapstructure:"progress"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// OutputConfig controls the saved file
type OutputConfig struct {
	// Quality is the JPEG quality used when --lossless is not given (1-100)
	Quality int `mapstructure:"quality"`
	// FingerprintLength is the number of hex characters in the file stem (1-64)
	FingerprintLength int `mapstructure:"fingerprint_length"`
}

// ProgressConfig controls the terminal spinner
type ProgressConfig struct {
	// IntervalMs is the delay between spinner frames in milliseconds
	IntervalMs int `mapstructure:"interval_ms"`
	// Label is the text shown next to the spinner
	Label string `mapstructure:"label"`
}

// LoggingConfig controls diagnostic output
type LoggingConfig struct {
	// Level enables JSON logs on stderr at the given level.
	// Empty disables logging.
	Level string `mapstructure:"level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Quality:           codec.DefaultQuality,
			FingerprintLength: fingerprint.Length,
		},
		Progress: ProgressConfig{
			IntervalMs: int(progress.DefaultInterval / time.Millisecond),
			Label:      progress.DefaultLabel,
		},
		Logging: LoggingConfig{
			Level: "",
		},
	}
}

// Interval returns the spinner interval as a time.Duration
func (c *ProgressConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Enabled reports whether diagnostic logging was requested
func (c *LoggingConfig) Enabled() bool {
	return c.Level != ""
}

// PipelineOptions converts the output settings into capture options
func (c *Config) PipelineOptions() []capture.Option {
	return []capture.Option{
		capture.WithQuality(c.Output.Quality),
		capture.WithFingerprintLength(c.Output.FingerprintLength),
	}
}

// ProgressOptions converts the progress settings into indicator options
func (c *Config) ProgressOptions() progress.Options {
	opts := progress.DefaultOptions()
	opts.Label = c.Progress.Label
	opts.Interval = c.Progress.Interval()
	return opts
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Output defaults
	viper.SetDefault("output.quality", defaults.Output.Quality)
	viper.SetDefault("output.fingerprint_length", defaults.Output.FingerprintLength)

	// Progress defaults
	viper.SetDefault("progress.interval_ms", defaults.Progress.IntervalMs)
	viper.SetDefault("progress.label", defaults.Progress.Label)

	// Logging defaults
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}
