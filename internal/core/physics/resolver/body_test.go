package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/forces/internal/core/physics/force"
)

func TestNew_GeneratesGravityPair(t *testing.T) {
	b := New(10, nil)
	require.Equal(t, 2, b.NumForces())

	weight, err := b.Force(0)
	require.NoError(t, err)
	assert.InDelta(t, 98, weight.Magnitude(), eps)
	assert.Equal(t, 270.0, weight.Angle())

	reaction, err := b.Force(1)
	require.NoError(t, err)
	assert.InDelta(t, -98, reaction.Magnitude(), eps)
	assert.Equal(t, 270.0, reaction.Angle())
}

func TestNew_ZeroMassHasNoGravity(t *testing.T) {
	b := New(0, []force.Vector{force.New(5, 30)})
	assert.Equal(t, 1, b.NumForces())
	assert.Equal(t, 0.0, b.Mass())
}

func TestNew_InitialForcesFollowGravity(t *testing.T) {
	a, c := force.New(1, 10), force.New(2, 20)
	b := New(3, []force.Vector{a, c})
	require.Equal(t, 4, b.NumForces())
	assert.Equal(t, []force.Vector{a, c}, b.Forces()[2:])
	assert.NotEmpty(t, b.ID())
	assert.NotEqual(t, b.ID(), New(3, nil).ID())
}

func TestSetMass_ReplacesGravityPair(t *testing.T) {
	extra := force.New(7, 45)
	b := New(10, []force.Vector{extra})

	b.SetMass(5)
	require.Equal(t, 3, b.NumForces())
	assert.Equal(t, 5.0, b.Mass())

	weight, _ := b.Force(0)
	assert.InDelta(t, 49, weight.Magnitude(), eps)
	reaction, _ := b.Force(1)
	assert.InDelta(t, -49, reaction.Magnitude(), eps)
	last, _ := b.Force(2)
	assert.Equal(t, extra, last)

	b.SetMass(0)
	assert.Equal(t, []force.Vector{extra}, b.Forces())
}

func TestSetMass_AccumulateGravity(t *testing.T) {
	b := New(10, nil, WithCompatibility(Compatibility{AccumulateGravity: true}))
	b.SetMass(10)
	assert.Equal(t, 4, b.NumForces())

	b.SetMass(0)
	assert.Equal(t, 6, b.NumForces())

	// the pairs still cancel out
	res := b.Resolve()
	assert.InDelta(t, 0, res.Overall.Magnitude(), eps)
}

func TestSetMass_FromZero(t *testing.T) {
	b := New(0, []force.Vector{force.New(1, 0)})
	b.SetMass(2)
	require.Equal(t, 3, b.NumForces())
	first, _ := b.Force(0)
	assert.InDelta(t, 19.6, first.Magnitude(), eps)
}

func TestClearMass(t *testing.T) {
	extra := force.New(3, 90)
	b := New(10, []force.Vector{extra})
	b.ClearMass()
	assert.Equal(t, 0.0, b.Mass())
	assert.Equal(t, []force.Vector{extra}, b.Forces())
}

func TestAddForces_CopiesValues(t *testing.T) {
	v := force.New(10, 0)
	b := New(0, nil)
	b.AddForces(v)
	v.SetMagnitude(99)

	got, err := b.Force(0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Magnitude())

	b.AddForces(force.New(1, 1), force.New(2, 2))
	assert.Equal(t, 3, b.NumForces())
}

func TestRemoveForce(t *testing.T) {
	a, c := force.New(1, 10), force.New(2, 20)
	b := New(0, []force.Vector{a, c, a})

	require.NoError(t, b.RemoveForce(a))
	assert.Equal(t, []force.Vector{c, a}, b.Forces())

	err := b.RemoveForce(force.New(1, 11))
	assert.ErrorIs(t, err, ErrForceNotFound)
	assert.Equal(t, []force.Vector{c, a}, b.Forces())
}

func TestRemoveForce_IgnoresNormalizationPolicy(t *testing.T) {
	b := New(10, nil, WithNormalization(force.NormalizeDegrees))
	weight, err := b.Force(0)
	require.NoError(t, err)
	assert.Equal(t, "98N 270°", weight.String())

	require.NoError(t, b.RemoveForce(force.New(98, 270)))
	assert.Equal(t, 1, b.NumForces())

	reaction, err := b.Force(0)
	require.NoError(t, err)
	assert.True(t, reaction.Equal(force.New(-98, 270)))
}

func TestRemoveForceAt(t *testing.T) {
	a, c := force.New(1, 10), force.New(2, 20)
	b := New(0, []force.Vector{a, c})

	require.NoError(t, b.RemoveForceAt(0))
	assert.Equal(t, []force.Vector{c}, b.Forces())

	assert.ErrorIs(t, b.RemoveForceAt(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, b.RemoveForceAt(-1), ErrIndexOutOfRange)
	assert.Equal(t, []force.Vector{c}, b.Forces())
}

func TestRemove_EmptyList(t *testing.T) {
	b := New(0, nil)
	assert.ErrorIs(t, b.RemoveForceAt(0), ErrIndexOutOfRange)
	assert.ErrorIs(t, b.RemoveForce(force.New(1, 0)), ErrForceNotFound)
	assert.Equal(t, 0, b.NumForces())
}

func TestForce_OutOfRange(t *testing.T) {
	b := New(0, nil)
	_, err := b.Force(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFriction_Presence(t *testing.T) {
	b := New(10, nil)
	_, ok := b.Friction()
	assert.False(t, ok)

	b.SetFriction(0)
	mu, ok := b.Friction()
	assert.True(t, ok)
	assert.Equal(t, 0.0, mu)

	b.SetFriction(0.3)
	mu, ok = b.Friction()
	assert.True(t, ok)
	assert.Equal(t, 0.3, mu)

	b.ClearFriction()
	_, ok = b.Friction()
	assert.False(t, ok)
}

func TestConfig_Options(t *testing.T) {
	b := New(1, nil,
		WithGravity(10),
		WithNormalization(force.NormalizeDegrees),
		WithFrictionModel(FrictionOpposing),
		WithLogger(nil),
	)
	cfg := b.Config()
	assert.Equal(t, 10.0, cfg.Gravity)
	assert.Equal(t, force.NormalizeDegrees, cfg.Normalization)
	assert.Equal(t, FrictionOpposing, cfg.FrictionModel)
	assert.NotNil(t, cfg.Logger)

	weight, _ := b.Force(0)
	assert.Equal(t, 10.0, weight.Magnitude())
	assert.Equal(t, force.NormalizeDegrees, weight.Normalization())
}

func TestWithConfig_KeepsLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logger = nil
	cfg.Gravity = 1.62
	b := New(1, nil, WithConfig(cfg))
	assert.NotNil(t, b.Config().Logger)
	assert.Equal(t, 1.62, b.Config().Gravity)
}

func TestParseFrictionModel(t *testing.T) {
	m, err := ParseFrictionModel("Opposing")
	require.NoError(t, err)
	assert.Equal(t, FrictionOpposing, m)

	_, err = ParseFrictionModel("viscous")
	assert.ErrorIs(t, err, ErrUnknownFrictionMode)
}
