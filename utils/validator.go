package utils

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Validate checks the Config and returns every problem found
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if c.Width <= 0 {
		errs = append(errs, ValidationError{"width", c.Width, "must be positive"})
	}
	if c.Height <= 0 {
		errs = append(errs, ValidationError{"height", c.Height, "must be positive"})
	}
	if c.FrameRate < 0 {
		errs = append(errs, ValidationError{"frame_rate", c.FrameRate, "must not be negative"})
	}
	if c.MaxGenerations < 0 {
		errs = append(errs, ValidationError{"max_generations", c.MaxGenerations, "must not be negative (0 = unlimited)"})
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		errs = append(errs, ValidationError{"random_density", c.RandomDensity, "must be between 0 and 1"})
	}
	if c.Workers < 1 {
		errs = append(errs, ValidationError{"workers", c.Workers, "must be at least 1"})
	}

	return errs
}
