package resolver

import (
	"fmt"
	"strings"

	"github.com/zeusync/forces/internal/core/observability/log"
	"github.com/zeusync/forces/internal/core/physics/force"
)

// StandardGravity is the gravitational acceleration in m/s² used for weight
// and normal force unless overridden.
const StandardGravity = 9.8

// FrictionModel selects how a set friction coefficient corrects the
// horizontal resultant.
type FrictionModel uint8

const (
	// FrictionFixed always subtracts μ·m·g from the horizontal resultant,
	// i.e. friction is assumed to act towards 180°.
	FrictionFixed FrictionModel = iota
	// FrictionOpposing reduces the horizontal resultant towards zero by at
	// most μ·m·g, never reversing it.
	FrictionOpposing
)

func (m FrictionModel) String() string {
	switch m {
	case FrictionFixed:
		return "fixed"
	case FrictionOpposing:
		return "opposing"
	default:
		return fmt.Sprintf("FrictionModel(%d)", uint8(m))
	}
}

func ParseFrictionModel(s string) (FrictionModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return FrictionFixed, nil
	case "opposing":
		return FrictionOpposing, nil
	}
	return FrictionFixed, fmt.Errorf("%w: %q", ErrUnknownFrictionMode, s)
}

func (m FrictionModel) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *FrictionModel) UnmarshalText(text []byte) error {
	parsed, err := ParseFrictionModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Compatibility toggles reproduce numbers from older tooling. All are off by
// default.
type Compatibility struct {
	// DoubleCountZeroAngle adds the magnitude of every force at exactly 0°
	// to the horizontal resultant a second time.
	DoubleCountZeroAngle bool `yaml:"double_count_zero_angle" json:"double_count_zero_angle"`
	// SingleArgArctangent derives the resultant angle from atan(j/i), which
	// folds second and third quadrant results into the fourth and first.
	SingleArgArctangent bool `yaml:"single_arg_arctangent" json:"single_arg_arctangent"`
	// AccumulateGravity makes SetMass append a new weight/reaction pair on
	// every call instead of replacing the previous pair.
	AccumulateGravity bool `yaml:"accumulate_gravity" json:"accumulate_gravity"`
}

// Config holds the numeric policy of a Body.
type Config struct {
	Gravity       float64             // Gravitational acceleration
	Normalization force.Normalization // Angle normalization for generated vectors
	FrictionModel FrictionModel       // Friction correction strategy
	Compat        Compatibility       // Legacy behaviour toggles
	Logger        log.Log             // Destination for debug output
}

// BodyOption is a function that configures a body.
type BodyOption func(*Config)

// DefaultConfig returns the standard policy: g = 9.8, unit-aware angle
// normalization, fixed friction and no compatibility toggles.
func DefaultConfig() Config {
	return Config{
		Gravity:       StandardGravity,
		Normalization: force.NormalizeByUnit,
		FrictionModel: FrictionFixed,
		Logger:        log.Nop(),
	}
}

// WithConfig replaces the whole configuration. A nil Logger keeps the
// previous one.
func WithConfig(cfg Config) BodyOption {
	return func(c *Config) {
		logger := c.Logger
		*c = cfg
		if c.Logger == nil {
			c.Logger = logger
		}
	}
}

// WithGravity sets the gravitational acceleration.
func WithGravity(g float64) BodyOption {
	return func(c *Config) { c.Gravity = g }
}

// WithNormalization sets the angle normalization for generated vectors.
func WithNormalization(n force.Normalization) BodyOption {
	return func(c *Config) { c.Normalization = n }
}

// WithFrictionModel sets the friction correction strategy.
func WithFrictionModel(m FrictionModel) BodyOption {
	return func(c *Config) { c.FrictionModel = m }
}

// WithCompatibility sets the legacy behaviour toggles.
func WithCompatibility(compat Compatibility) BodyOption {
	return func(c *Config) { c.Compat = compat }
}

// WithLogger sets the logger.
func WithLogger(logger log.Log) BodyOption {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
