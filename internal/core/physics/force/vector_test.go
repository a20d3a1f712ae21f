package force

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestNormalize_Degrees(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{360, 0},
		{720, 0},
		{370, 10},
		{-90, 270},
		{-360, 0},
		{-450, 270},
		{359.5, 359.5},
		{-0.5, 359.5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeDegreesValue(tc.in), "normalize(%v)", tc.in)
	}
}

func TestNormalize_RangeAndPeriodicity(t *testing.T) {
	values := []float64{-1080.25, -721, -359.75, -1, 0, 0.5, 1, 89, 180, 271.125, 359.875, 1000, 123456}
	for _, a := range values {
		n := NormalizeDegreesValue(a)
		assert.GreaterOrEqual(t, n, 0.0)
		assert.Less(t, n, 360.0)
		for k := -3; k <= 3; k++ {
			assert.Equal(t, n, NormalizeDegreesValue(a+360*float64(k)), "a=%v k=%d", a, k)
		}
	}
}

func TestNormalize_TinyNegativeStaysInRange(t *testing.T) {
	n := NormalizeDegreesValue(-1e-14)
	assert.GreaterOrEqual(t, n, 0.0)
	assert.Less(t, n, 360.0)
}

func TestNormalize_NonFinite(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeDegreesValue(math.NaN()))
	assert.Equal(t, 0.0, NormalizeDegreesValue(math.Inf(1)))
	assert.Equal(t, 0.0, NormalizeDegreesValue(math.Inf(-1)))
}

func TestNormalization_Radians(t *testing.T) {
	byUnit := New(10, 7, WithUnit(Radians))
	assert.InDelta(t, 7-2*math.Pi, byUnit.Angle(), eps)

	legacy := New(10, 7, WithUnit(Radians), WithNormalization(NormalizeDegrees))
	assert.Equal(t, 7.0, legacy.Angle())

	legacy = New(10, 400, WithUnit(Radians), WithNormalization(NormalizeDegrees))
	assert.Equal(t, 40.0, legacy.Angle())

	neg := New(1, -math.Pi/2, WithUnit(Radians))
	assert.InDelta(t, 3*math.Pi/2, neg.Angle(), eps)
}

func TestVector_MagnitudeVerbatim(t *testing.T) {
	v := New(-25.5, 90)
	assert.Equal(t, -25.5, v.Magnitude())

	v.SetMagnitude(0)
	assert.True(t, v.IsZero())
}

func TestVector_SetAngleIn(t *testing.T) {
	v := New(5, 30)
	v.SetAngleIn(math.Pi, Radians)
	assert.Equal(t, Radians, v.Unit())
	assert.InDelta(t, math.Pi, v.Angle(), eps)
	assert.InDelta(t, 180, v.Degrees(), eps)
}

func TestVector_CopiesAreIndependent(t *testing.T) {
	a := New(10, 45)
	b := a.WithMagnitude(20).WithAngle(-45)

	assert.Equal(t, 10.0, a.Magnitude())
	assert.Equal(t, 45.0, a.Angle())
	assert.Equal(t, 20.0, b.Magnitude())
	assert.Equal(t, 315.0, b.Angle())
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, New(10, 405))
}

func TestVector_Equal(t *testing.T) {
	legacy := New(98, 270, WithNormalization(NormalizeDegrees))
	assert.True(t, legacy.Equal(New(98, 270)))
	assert.True(t, New(1, -90).Equal(New(1, 270)))
	assert.False(t, New(1, 90).Equal(New(1, 90, WithUnit(Radians))))
	assert.False(t, New(1, 90).Equal(New(-1, 90)))
}

func TestVector_Components(t *testing.T) {
	i, j := East(10).Components()
	assert.InDelta(t, 10, i, eps)
	assert.InDelta(t, 0, j, eps)

	i, j = New(10, 90).Components()
	assert.InDelta(t, 0, i, eps)
	assert.InDelta(t, 10, j, eps)

	i, j = New(10, math.Pi, WithUnit(Radians)).Components()
	assert.InDelta(t, -10, i, eps)
	assert.InDelta(t, 0, j, eps)

	i, j = New(-4, 270).Components()
	assert.InDelta(t, 0, i, eps)
	assert.InDelta(t, 4, j, eps)
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "50N 90°", New(50, 90).String())
	assert.Equal(t, "-2.5N 1.5rad", New(-2.5, 1.5, WithUnit(Radians)).String())
}

func TestVector_Format(t *testing.T) {
	deg := New(50, 180)
	assert.Equal(t, "50N 180°", deg.Format(Degrees))
	assert.Equal(t, "50N 3.141592653589793rad", deg.Format(Radians))
	// display conversion must not mutate the stored angle
	assert.Equal(t, 180.0, deg.Angle())

	rad := New(3, math.Pi/2, WithUnit(Radians))
	assert.Equal(t, "3N 90°", rad.Format(Degrees))
	assert.Equal(t, rad.String(), rad.Format(Radians))
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("RAD")
	require.NoError(t, err)
	assert.Equal(t, Radians, u)

	u, err = ParseUnit("°")
	require.NoError(t, err)
	assert.Equal(t, Degrees, u)

	_, err = ParseUnit("grad")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestParseNormalization(t *testing.T) {
	n, err := ParseNormalization("legacy")
	require.NoError(t, err)
	assert.Equal(t, NormalizeDegrees, n)

	_, err = ParseNormalization("turns")
	assert.ErrorIs(t, err, ErrUnknownNormalization)
}
