package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	vecmath "heightfield/internal/math"
	"heightfield/pkg/heightmap"
	"heightfield/pkg/noise"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the main configuration
type Config struct {
	Noise    NoiseConfig    `yaml:"noise"`
	Sampling SamplingConfig `yaml:"sampling"`
	Output   OutputConfig   `yaml:"output"`
	Upload   UploadConfig   `yaml:"upload"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// NoiseConfig contains noise field configuration
type NoiseConfig struct {
	Seed      int64  `yaml:"seed"`
	Gradients string `yaml:"gradients"` // hash, reseed
	Easing    string `yaml:"easing"`    // cubic, quintic
}

// SamplingConfig contains grid sampling configuration
type SamplingConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Zoom    float64 `yaml:"zoom"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Workers int     `yaml:"workers"` // 0 means one per CPU
}

// OutputConfig contains local output configuration
type OutputConfig struct {
	PNG          string `yaml:"png"`
	JSON         string `yaml:"json"`
	ASCII        bool   `yaml:"ascii"`
	Charset      string `yaml:"charset"` // darkest to lightest
	ASCIIColumns int    `yaml:"ascii_columns"`
}

// UploadConfig contains S3 upload configuration
type UploadConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Region       string `yaml:"region"`
	Bucket       string `yaml:"bucket"`
	Key          string `yaml:"key"`
	CacheSeconds int    `yaml:"cache_seconds"`
}

// LoggingConfig contains logger configuration
type LoggingConfig struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`    // also log to this file when set
	Console bool   `yaml:"console"` // log to stderr
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Noise: NoiseConfig{
			Seed:      1,
			Gradients: "hash",
			Easing:    "cubic",
		},
		Sampling: SamplingConfig{
			Width:  512,
			Height: 512,
			Zoom:   16,
		},
		Output: OutputConfig{
			PNG:          "out.png",
			Charset:      " .:-=+*#%@",
			ASCIIColumns: 80,
		},
		Upload: UploadConfig{
			Region:       "us-east-1",
			CacheSeconds: 3600,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// LoadConfig loads the configuration from a file. When the file cannot be
// read or parsed the defaults are returned together with the error.
func LoadConfig(filePath string) (*Config, error) {
	// Create default config
	config := DefaultConfig()

	// Read file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	// Convert to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	// Write file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks every section and reports the first problem found
func (c *Config) Validate() error {
	if _, err := noise.ParseGradientMode(c.Noise.Gradients); err != nil {
		return fmt.Errorf("%w: noise: %v", ErrInvalidConfig, err)
	}
	if _, err := vecmath.ParseEasing(c.Noise.Easing); err != nil {
		return fmt.Errorf("%w: noise: %v", ErrInvalidConfig, err)
	}
	if err := c.Grid().Validate(); err != nil {
		return fmt.Errorf("%w: sampling: %v", ErrInvalidConfig, err)
	}
	if c.Sampling.Workers < 0 {
		return fmt.Errorf("%w: sampling: workers %d must not be negative", ErrInvalidConfig, c.Sampling.Workers)
	}
	if c.Upload.Enabled && (c.Upload.Bucket == "" || c.Upload.Key == "") {
		return fmt.Errorf("%w: upload: bucket and key are required", ErrInvalidConfig)
	}
	return nil
}

// Grid returns the sampling grid described by the configuration
func (c *Config) Grid() heightmap.Grid {
	return heightmap.Grid{
		Width:   c.Sampling.Width,
		Height:  c.Sampling.Height,
		Zoom:    c.Sampling.Zoom,
		OffsetX: c.Sampling.OffsetX,
		OffsetY: c.Sampling.OffsetY,
	}
}

// Field builds the noise field described by the configuration
func (c *Config) Field() (*noise.Field, error) {
	mode, err := noise.ParseGradientMode(c.Noise.Gradients)
	if err != nil {
		return nil, err
	}
	easing, err := vecmath.ParseEasing(c.Noise.Easing)
	if err != nil {
		return nil, err
	}
	return noise.New(c.Noise.Seed, noise.WithGradients(mode), noise.WithEasing(easing)), nil
}
