package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GOLIFE_WIDTH
const EnvPrefix = "GOLIFE"

// Config holds the configuration for the game
type Config struct {
	Width          int           `mapstructure:"width"`
	Height         int           `mapstructure:"height"`
	FrameRate      time.Duration `mapstructure:"frame_rate"`
	MaxGenerations int           `mapstructure:"max_generations"`
	RandomDensity  float64       `mapstructure:"random_density"`
	// Seed for the random fill; 0 picks one from the clock
	Seed int64 `mapstructure:"seed"`
	// Workers splits each generation pass across row bands; 1 runs sequentially
	Workers int `mapstructure:"workers"`
	// PatternFile is an optional plaintext pattern placed at the grid centre
	// instead of a random fill
	PatternFile string `mapstructure:"pattern_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          60,
		Height:         30,
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 1000,
		RandomDensity:  0.15,
		Workers:        1,
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("width", defaults.Width)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("frame_rate", defaults.FrameRate)
	v.SetDefault("max_generations", defaults.MaxGenerations)
	v.SetDefault("random_density", defaults.RandomDensity)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("pattern_file", defaults.PatternFile)
}

// NewViper returns a viper instance with defaults and GOLIFE_* env overrides.
// If filename is set it is read as the config file.
func NewViper(filename string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "[NewViper] failed to read config file: %+v", filename)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v
func Load(v *viper.Viper) (Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return config, errors.Wrap(err, "[Load] failed to unmarshal config")
	}
	if errs := config.Validate(); len(errs) > 0 {
		return config, errs
	}
	return config, nil
}

// LoadConfig loads configuration from a yaml, json or toml file layered over the defaults
func LoadConfig(filename string) (Config, error) {
	v, err := NewViper(filename)
	if err != nil {
		return DefaultConfig(), err
	}
	return Load(v)
}
