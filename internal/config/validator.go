package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/pasteimg/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "output.quality")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	levels := logging.ValidLevels()
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = strings.ToLower(l)
	}
	return out
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateProgress()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateOutput validates the OutputConfig
func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		errors = append(errors, ValidationError{
			Field:   "output.quality",
			Value:   c.Output.Quality,
			Message: "must be between 1 and 100",
		})
	}

	if c.Output.FingerprintLength < 1 || c.Output.FingerprintLength > 64 {
		errors = append(errors, ValidationError{
			Field:   "output.fingerprint_length",
			Value:   c.Output.FingerprintLength,
			Message: "must be between 1 and 64",
		})
	}

	return errors
}

// validateProgress validates the ProgressConfig
func (c *Config) validateProgress() []ValidationError {
	var errors []ValidationError

	if c.Progress.IntervalMs < 10 {
		errors = append(errors, ValidationError{
			Field:   "progress.interval_ms",
			Value:   c.Progress.IntervalMs,
			Message: "must be at least 10",
		})
	}

	if strings.TrimSpace(c.Progress.Label) == "" {
		errors = append(errors, ValidationError{
			Field:   "progress.label",
			Value:   c.Progress.Label,
			Message: "must not be empty",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
