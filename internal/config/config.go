package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/forces/internal/core/observability/log"
	"github.com/zeusync/forces/internal/core/physics/force"
	"github.com/zeusync/forces/internal/core/physics/resolver"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the file-level configuration of the forces tooling.
type Config struct {
	LogLevel      log.Level              `yaml:"log_level" json:"log_level"`
	Gravity       float64                `yaml:"gravity" json:"gravity"`
	Normalization force.Normalization    `yaml:"angle_normalization" json:"angle_normalization"`
	FrictionModel resolver.FrictionModel `yaml:"friction_model" json:"friction_model"`
	Compat        resolver.Compatibility `yaml:"compat" json:"compat"`
	DisplayUnit   force.Unit             `yaml:"display_unit" json:"display_unit"`
	Parallelism   int                    `yaml:"parallelism" json:"parallelism"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:      log.LevelWarn,
		Gravity:       resolver.StandardGravity,
		Normalization: force.NormalizeByUnit,
		FrictionModel: resolver.FrictionFixed,
		DisplayUnit:   force.Degrees,
		Parallelism:   4,
	}
}

// Load decodes YAML from r over the defaults. Keys absent from r keep their
// default value; an empty document yields Default().
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads the configuration at path. An empty path returns Default().
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if math.IsNaN(c.Gravity) || math.IsInf(c.Gravity, 0) || c.Gravity < 0 {
		return fmt.Errorf("%w: gravity must be a finite non-negative number, got %v", ErrInvalidConfig, c.Gravity)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism must not be negative, got %d", ErrInvalidConfig, c.Parallelism)
	}
	return nil
}

// BodyOptions translates the configuration into resolver options.
func (c *Config) BodyOptions(logger log.Log) []resolver.BodyOption {
	return []resolver.BodyOption{
		resolver.WithGravity(c.Gravity),
		resolver.WithNormalization(c.Normalization),
		resolver.WithFrictionModel(c.FrictionModel),
		resolver.WithCompatibility(c.Compat),
		resolver.WithLogger(logger),
	}
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
