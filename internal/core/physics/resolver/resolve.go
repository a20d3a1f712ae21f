package resolver

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"

	"github.com/zeusync/forces/internal/core/observability/log"
	"github.com/zeusync/forces/internal/core/physics/force"
	"github.com/zeusync/forces/pkg/sequence"
)

// Result is a snapshot of the resolved vectors. Overall's angle is always in
// degrees.
type Result struct {
	Horizontal force.Vector
	Vertical   force.Vector
	Overall    force.Vector
}

// Resolve recomputes the horizontal, vertical and overall resultant from the
// current forces, mass and friction. It is idempotent.
func (b *Body) Resolve() Result {
	nonZero := sequence.From(b.forces).Reject(func(f appliedForce) bool {
		return f.vector.IsZero()
	})

	sum := sequence.Fold(nonZero, r2.Point{}, func(acc r2.Point, f appliedForce) r2.Point {
		i, j := f.vector.Components()
		if b.cfg.Compat.DoubleCountZeroAngle && f.vector.Angle() == 0 {
			i += f.vector.Magnitude()
		}
		return acc.Add(r2.Point{X: i, Y: j})
	})

	if nonZero.Count() > 0 {
		sum.X = b.applyFriction(sum.X)
	}

	b.horizontal.SetMagnitude(sum.X)
	b.vertical.SetMagnitude(sum.Y)
	b.overall.SetMagnitude(sum.Norm())
	b.overall.SetAngle(b.resultantAngle(sum))

	b.resolvedState = b.fingerprint()
	b.resolved = true

	b.log.Debug("forces resolved",
		log.Int("forces", len(b.forces)),
		log.Float64("horizontal", sum.X),
		log.Float64("vertical", sum.Y),
		log.Stringer("overall", b.overall),
	)

	return b.Result()
}

// Result returns the vectors computed by the last Resolve, or zero vectors
// when Resolve has not run since construction or ClearAllForces.
func (b *Body) Result() Result {
	return Result{
		Horizontal: b.horizontal,
		Vertical:   b.vertical,
		Overall:    b.overall,
	}
}

// Horizontal returns the resolved horizontal magnitude (i).
func (b *Body) Horizontal() float64 { return b.horizontal.Magnitude() }

// Vertical returns the resolved vertical magnitude (j).
func (b *Body) Vertical() float64 { return b.vertical.Magnitude() }

// Overall returns the resolved resultant force.
func (b *Body) Overall() force.Vector { return b.overall }

// applyFriction corrects the horizontal resultant i by μ·m·g. Friction
// needs a coefficient, a non-zero mass and at least one non-zero force.
func (b *Body) applyFriction(i float64) float64 {
	if !b.frictionSet || b.mass == 0 {
		return i
	}
	normal := b.mass * b.cfg.Gravity
	resisting := b.friction * normal

	switch b.cfg.FrictionModel {
	case FrictionOpposing:
		resisting = math.Abs(resisting)
		if math.Abs(i) <= resisting {
			return 0
		}
		return i - math.Copysign(resisting, i)
	default:
		return i - resisting
	}
}

// resultantAngle returns the direction of p in degrees. A vertical
// resultant is 90° or 270° and a null one 0°.
func (b *Body) resultantAngle(p r2.Point) float64 {
	switch {
	case p.X == 0 && p.Y == 0:
		return 0
	case p.X == 0:
		if b.cfg.Compat.SingleArgArctangent {
			b.log.Debug("arctangent undefined for zero horizontal resultant", log.Float64("vertical", p.Y))
		}
		if p.Y > 0 {
			return 90
		}
		return 270
	}

	if b.cfg.Compat.SingleArgArctangent {
		return s1.Angle(math.Atan(p.Y / p.X)).Degrees()
	}
	return s1.Angle(math.Atan2(p.Y, p.X)).Degrees()
}
