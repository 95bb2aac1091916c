package utils

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 60 || cfg.Height != 30 {
		t.Errorf("size = %dx%d, want 60x30", cfg.Width, cfg.Height)
	}
	if cfg.FrameRate != 150*time.Millisecond {
		t.Errorf("FrameRate = %v, want 150ms", cfg.FrameRate)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("defaults should validate, got %v", errs)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "width: 12\nheight: 8\nframe_rate: 40ms\nworkers: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Width != 12 || cfg.Height != 8 {
		t.Errorf("size = %dx%d, want 12x8", cfg.Width, cfg.Height)
	}
	if cfg.FrameRate != 40*time.Millisecond {
		t.Errorf("FrameRate = %v, want 40ms", cfg.FrameRate)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	// untouched keys keep their defaults
	if cfg.MaxGenerations != 1000 {
		t.Errorf("MaxGenerations = %d, want 1000", cfg.MaxGenerations)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("GOLIFE_WIDTH", "25")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Width != 25 {
		t.Errorf("Width = %d, want 25 from env", cfg.Width)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadConfig() of a missing file should fail")
	}
	if !strings.Contains(err.Error(), "[NewViper]") {
		t.Errorf("error %q should carry the caller tag", err)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 0, "random_density": 2}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("LoadConfig() error = %v, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("got %d validation errors, want 2: %v", len(verrs), verrs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative height", func(c *Config) { c.Height = -1 }, "height"},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }, "frame_rate"},
		{"negative generations", func(c *Config) { c.MaxGenerations = -5 }, "max_generations"},
		{"density below zero", func(c *Config) { c.RandomDensity = -0.1 }, "random_density"},
		{"no workers", func(c *Config) { c.Workers = 0 }, "workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.field)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "width", Value: 0, Message: "must be positive"},
		{Field: "height", Value: 0, Message: "must be positive"},
	}
	msg := errs.Error()
	if !strings.HasPrefix(msg, "2 validation errors:") {
		t.Errorf("Error() = %q", msg)
	}
	if got := errs[:1].Error(); got != "width: must be positive (got: 0)" {
		t.Errorf("single Error() = %q", got)
	}
}

func TestStats_Update(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.GenerationsPerSecond != 10 {
		t.Errorf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 100 {
		t.Errorf("AveragePopulation = %v, want 100", s.AveragePopulation)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Errorf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Errorf("zero duration should keep the previous rate, got %v", s.GenerationsPerSecond)
	}
	if got := s.Density(400); got != 50 {
		t.Errorf("Density(400) = %v, want 50", got)
	}
	if got := s.Density(0); got != 0 {
		t.Errorf("Density(0) = %v, want 0", got)
	}
}
