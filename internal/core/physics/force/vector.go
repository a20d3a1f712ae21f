package force

import (
	"math"

	"github.com/golang/geo/s1"
)

// Vector is a single planar force: a signed magnitude in newtons and a
// direction. 0 points east. The angle is normalized on every write, see
// Normalization for the rule applied.
//
// Vector is a comparable value. Two vectors are equal when magnitude, angle,
// unit and normalization policy all match.
type Vector struct {
	magnitude     float64
	angle         float64
	unit          Unit
	normalization Normalization
}

// Option configures a Vector at construction time.
type Option func(*Vector)

// WithUnit sets the unit the angle is expressed in.
func WithUnit(unit Unit) Option {
	return func(v *Vector) { v.unit = unit }
}

// WithNormalization sets the normalization policy used by SetAngle.
func WithNormalization(n Normalization) Option {
	return func(v *Vector) { v.normalization = n }
}

// New creates a force of the given magnitude and angle. The angle is in
// degrees unless WithUnit(Radians) is passed.
func New(magnitude, angle float64, opts ...Option) Vector {
	v := Vector{magnitude: magnitude}
	for _, opt := range opts {
		opt(&v)
	}
	v.SetAngle(angle)
	return v
}

// East creates a force acting along 0 degrees.
func East(magnitude float64, opts ...Option) Vector {
	return New(magnitude, 0, opts...)
}

func (v Vector) Magnitude() float64 { return v.magnitude }

// Angle returns the normalized angle in the vector's own unit.
func (v Vector) Angle() float64 { return v.angle }

func (v Vector) Unit() Unit { return v.unit }

func (v Vector) Normalization() Normalization { return v.normalization }

// IsZero reports whether the force has no effect.
func (v Vector) IsZero() bool { return v.magnitude == 0 }

// Equal reports whether v and o carry the same magnitude, stored angle and
// unit. The normalization policy only shapes how an angle is stored and is
// not compared.
func (v Vector) Equal(o Vector) bool {
	return v.magnitude == o.magnitude && v.angle == o.angle && v.unit == o.unit
}

// SetMagnitude stores the magnitude verbatim. Negative values reverse the
// force relative to its angle.
func (v *Vector) SetMagnitude(magnitude float64) {
	v.magnitude = magnitude
}

// SetAngle normalizes angle under the vector's policy and stores it.
func (v *Vector) SetAngle(angle float64) {
	v.angle = v.normalization.Apply(angle, v.unit)
}

// SetAngleIn switches the unit and then stores angle under it.
func (v *Vector) SetAngleIn(angle float64, unit Unit) {
	v.unit = unit
	v.SetAngle(angle)
}

// WithMagnitude returns a copy with a different magnitude.
func (v Vector) WithMagnitude(magnitude float64) Vector {
	v.SetMagnitude(magnitude)
	return v
}

// WithAngle returns a copy with a different angle in the same unit.
func (v Vector) WithAngle(angle float64) Vector {
	v.SetAngle(angle)
	return v
}

// Radians returns the stored angle as radians, converting when the vector
// is kept in degrees.
func (v Vector) Radians() float64 {
	if v.unit == Degrees {
		return (s1.Angle(v.angle) * s1.Degree).Radians()
	}
	return v.angle
}

// Degrees returns the stored angle as degrees.
func (v Vector) Degrees() float64 {
	if v.unit == Radians {
		return s1.Angle(v.angle).Degrees()
	}
	return v.angle
}

// Components projects the force onto the horizontal (i) and vertical (j) axes.
func (v Vector) Components() (i, j float64) {
	if v.magnitude == 0 {
		return 0, 0
	}
	sin, cos := math.Sincos(v.Radians())
	return v.magnitude * cos, v.magnitude * sin
}
