package resolver

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zeusync/forces/internal/core/observability/log"
	"github.com/zeusync/forces/internal/core/physics/force"
	"github.com/zeusync/forces/pkg/sequence"
)

// weightAngle points straight down.
const weightAngle = 270

type appliedForce struct {
	vector  force.Vector
	gravity bool // generated from mass
}

// Body is a rigid body with the forces acting on it. It owns its force list
// and the three resolved vectors; the latter only change on Resolve.
//
// Body is not safe for concurrent use. Callers sharing a body must hold a
// lock across any mutate-then-Resolve sequence.
type Body struct {
	id  string
	cfg Config
	log log.Log

	mass        float64
	forces      []appliedForce
	friction    float64
	frictionSet bool

	horizontal force.Vector
	vertical   force.Vector
	overall    force.Vector

	resolved      bool
	resolvedState uint64
}

// New creates a body of the given mass in kilograms. A non-zero mass adds
// its weight and the reaction to it at indices 0 and 1, followed by forces
// in order. A zero mass means mass is not considered.
func New(mass float64, forces []force.Vector, opts ...BodyOption) *Body {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := uuid.NewString()
	b := &Body{
		id:   id,
		cfg:  cfg,
		log:  cfg.Logger.With(log.String("body", id)),
		mass: mass,
	}
	b.resetDerived()

	if mass != 0 {
		b.forces = append(b.forces, b.gravityPair(mass)...)
	}
	for _, f := range forces {
		b.forces = append(b.forces, appliedForce{vector: f})
	}

	b.log.Debug("body created",
		log.Float64("mass", mass),
		log.Int("forces", len(b.forces)),
	)
	return b
}

func (b *Body) ID() string { return b.id }

func (b *Body) Config() Config { return b.cfg }

func (b *Body) Mass() float64 { return b.mass }

// SetMass changes the mass and regenerates the weight/reaction pair. By
// default the previous pair is replaced and the new one placed at indices 0
// and 1; with Compatibility.AccumulateGravity a new pair is appended on
// every call.
func (b *Body) SetMass(mass float64) {
	b.mass = mass

	if b.cfg.Compat.AccumulateGravity {
		b.forces = append(b.forces, b.gravityPair(mass)...)
		b.log.Debug("mass set", log.Float64("mass", mass), log.Bool("accumulated", true))
		return
	}

	rest := b.withoutGravity()
	if mass != 0 {
		b.forces = append(b.gravityPair(mass), rest...)
	} else {
		b.forces = rest
	}
	b.log.Debug("mass set", log.Float64("mass", mass), log.Int("forces", len(b.forces)))
}

// ClearMass sets the mass to zero and drops every generated gravity force.
func (b *Body) ClearMass() {
	b.mass = 0
	b.forces = b.withoutGravity()
	b.log.Debug("mass cleared", log.Int("forces", len(b.forces)))
}

// AddForces appends forces to the list.
func (b *Body) AddForces(forces ...force.Vector) {
	for _, f := range forces {
		b.forces = append(b.forces, appliedForce{vector: f})
	}
	b.log.Debug("forces added", log.Int("added", len(forces)), log.Int("forces", len(b.forces)))
}

// RemoveForce removes the first force equal to v, compared with
// force.Vector.Equal.
func (b *Body) RemoveForce(v force.Vector) error {
	idx := sequence.From(b.forces).Index(func(f appliedForce) bool { return f.vector.Equal(v) })
	if idx < 0 {
		return fmt.Errorf("remove %s: %w", v, ErrForceNotFound)
	}
	b.removeAt(idx)
	return nil
}

// RemoveForceAt removes the force at index.
func (b *Body) RemoveForceAt(index int) error {
	if index < 0 || index >= len(b.forces) {
		return fmt.Errorf("remove index %d of %d: %w", index, len(b.forces), ErrIndexOutOfRange)
	}
	b.removeAt(index)
	return nil
}

// ClearAllForces empties the force list and zeroes the resolved vectors.
// Mass and friction are kept, but with no forces left to resist friction
// no longer applies, so a following Resolve yields a null resultant. A later
// SetMass brings the gravity pair and friction back.
func (b *Body) ClearAllForces() {
	b.forces = nil
	b.resetDerived()
	b.resolved = false
	b.log.Debug("forces cleared")
}

// SetFriction sets the friction coefficient μ between body and surface.
func (b *Body) SetFriction(coefficient float64) {
	b.friction = coefficient
	b.frictionSet = true
	b.log.Debug("friction set", log.Float64("coefficient", coefficient))
}

// ClearFriction unsets the friction coefficient.
func (b *Body) ClearFriction() {
	b.frictionSet = false
	b.log.Debug("friction cleared")
}

// Friction returns the coefficient and whether one is set.
func (b *Body) Friction() (float64, bool) {
	if !b.frictionSet {
		return 0, false
	}
	return b.friction, true
}

// NumForces returns the number of applied forces, generated gravity included.
func (b *Body) NumForces() int { return len(b.forces) }

// Force returns the applied force at index.
func (b *Body) Force(index int) (force.Vector, error) {
	if index < 0 || index >= len(b.forces) {
		return force.Vector{}, fmt.Errorf("force index %d of %d: %w", index, len(b.forces), ErrIndexOutOfRange)
	}
	return b.forces[index].vector, nil
}

// Forces returns a copy of the applied forces in order.
func (b *Body) Forces() []force.Vector {
	return sequence.Map(sequence.From(b.forces), func(f appliedForce) force.Vector {
		return f.vector
	}).Collect()
}

func (b *Body) gravityPair(mass float64) []appliedForce {
	weight := mass * b.cfg.Gravity
	norm := force.WithNormalization(b.cfg.Normalization)
	return []appliedForce{
		{vector: force.New(weight, weightAngle, norm), gravity: true},
		{vector: force.New(-weight, weightAngle, norm), gravity: true},
	}
}

func (b *Body) withoutGravity() []appliedForce {
	return sequence.From(b.forces).Reject(func(f appliedForce) bool { return f.gravity }).Collect()
}

func (b *Body) removeAt(index int) {
	removed := b.forces[index].vector
	b.forces = append(b.forces[:index:index], b.forces[index+1:]...)
	b.log.Debug("force removed",
		log.Int("index", index),
		log.Stringer("force", removed),
		log.Int("forces", len(b.forces)),
	)
}

func (b *Body) resetDerived() {
	norm := force.WithNormalization(b.cfg.Normalization)
	b.horizontal = force.New(0, 0, norm)
	b.vertical = force.New(0, 90, norm)
	b.overall = force.New(0, 0, norm)
}
