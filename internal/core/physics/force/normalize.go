package force

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrUnknownUnit          = errors.New("unknown angle unit")
	ErrUnknownNormalization = errors.New("unknown angle normalization")
)

// Unit tells how a stored angle is interpreted and displayed.
type Unit uint8

const (
	Degrees Unit = iota
	Radians
)

func (u Unit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// Symbol is the suffix used when rendering an angle.
func (u Unit) Symbol() string {
	if u == Radians {
		return "rad"
	}
	return "°"
}

// ParseUnit accepts "deg", "degrees", "°", "rad" and "radians".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deg", "degree", "degrees", "°":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Normalization selects how SetAngle folds an arbitrary value into one turn.
//
// NormalizeByUnit folds degrees into [0, 360) and radians into [0, 2π).
// NormalizeDegrees folds every value into [0, 360) as if it were degrees,
// even when the vector is kept in radians. It exists for compatibility with
// results produced by older tooling.
type Normalization uint8

const (
	NormalizeByUnit Normalization = iota
	NormalizeDegrees
)

func (n Normalization) String() string {
	switch n {
	case NormalizeByUnit:
		return "unit"
	case NormalizeDegrees:
		return "degrees"
	default:
		return fmt.Sprintf("Normalization(%d)", uint8(n))
	}
}

func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unit", "by_unit", "by-unit":
		return NormalizeByUnit, nil
	case "degrees", "legacy":
		return NormalizeDegrees, nil
	}
	return NormalizeByUnit, fmt.Errorf("%w: %q", ErrUnknownNormalization, s)
}

func (n Normalization) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Normalization) UnmarshalText(text []byte) error {
	parsed, err := ParseNormalization(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Period is the length of one full turn for the unit under this policy.
func (n Normalization) Period(unit Unit) float64 {
	if n == NormalizeByUnit && unit == Radians {
		return 2 * math.Pi
	}
	return 360
}

// Apply folds value into [0, Period(unit)).
func (n Normalization) Apply(value float64, unit Unit) float64 {
	return Normalize(value, n.Period(unit))
}

// Normalize folds value into [0, period). Negative values count back from a
// full turn. Non-finite input collapses to 0.
func Normalize(value, period float64) float64 {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	rem := math.Mod(math.Abs(value), period)
	if rem == 0 {
		return 0
	}
	if value < 0 {
		rem = period - rem
	}
	// period-rem rounds up to period for very small remainders
	if rem >= period {
		return 0
	}
	return rem
}

// NormalizeDegreesValue folds value into [0, 360).
func NormalizeDegreesValue(value float64) float64 {
	return Normalize(value, 360)
}
