package resolver

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Stale reports whether the resolved vectors no longer describe the current
// mass, forces and friction, i.e. whether Resolve must run again.
func (b *Body) Stale() bool {
	return !b.resolved || b.fingerprint() != b.resolvedState
}

// fingerprint hashes every input of Resolve.
func (b *Body) fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	writeByte := func(v byte) {
		_, _ = d.Write([]byte{v})
	}

	writeFloat(b.mass)
	if b.frictionSet {
		writeByte(1)
		writeFloat(b.friction)
	} else {
		writeByte(0)
	}

	binary.LittleEndian.PutUint64(buf[:], uint64(len(b.forces)))
	_, _ = d.Write(buf[:])
	for _, f := range b.forces {
		writeFloat(f.vector.Magnitude())
		writeFloat(f.vector.Angle())
		writeByte(byte(f.vector.Unit()))
	}

	return d.Sum64()
}
