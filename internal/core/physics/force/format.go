package force

import (
	"strconv"

	"github.com/golang/geo/s1"
)

// String renders the force in its own unit, e.g. "50N 90°" or "50N 1.5rad".
func (v Vector) String() string {
	return render(v.magnitude, v.angle, v.unit)
}

// Format renders the force with its angle converted to unit. The stored
// angle is not touched.
func (v Vector) Format(unit Unit) string {
	angle := v.angle
	switch {
	case v.unit == Degrees && unit == Radians:
		angle = (s1.Angle(angle) * s1.Degree).Radians()
	case v.unit == Radians && unit == Degrees:
		angle = s1.Angle(angle).Degrees()
	}
	return render(v.magnitude, angle, unit)
}

func render(magnitude, angle float64, unit Unit) string {
	buf := make([]byte, 0, 32)
	buf = strconv.AppendFloat(buf, magnitude, 'f', -1, 64)
	buf = append(buf, 'N', ' ')
	buf = strconv.AppendFloat(buf, angle, 'f', -1, 64)
	buf = append(buf, unit.Symbol()...)
	return string(buf)
}
