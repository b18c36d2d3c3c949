package keccak

import (
	"encoding/binary"
	"math/bits"
)

// Lane is one 64-bit word of Keccak state.
type Lane uint64

// LaneFromHalves returns the lane whose low and high 32 bits are lo and hi.
func LaneFromHalves(lo, hi uint32) Lane {
	return Lane(hi)<<32 | Lane(lo)
}

// Halves returns the low and high 32 bits of the lane.
func (l Lane) Halves() (lo, hi uint32) {
	return uint32(l), uint32(l >> 32)
}

// Xor returns l ^ m.
func (l Lane) Xor(m Lane) Lane { return l ^ m }

// And returns l & m.
func (l Lane) And(m Lane) Lane { return l & m }

// Not returns ^l.
func (l Lane) Not() Lane { return ^l }

// AndNot returns ^l & m, the chi step's nonlinear term.
func (l Lane) AndNot(m Lane) Lane { return ^l & m }

// Rotl rotates the lane left by n bits. Only n mod 64 is significant.
func (l Lane) Rotl(n int) Lane {
	return Lane(bits.RotateLeft64(uint64(l), n&63))
}

// LoadLanes decodes the serialized state into lanes.
func LoadLanes(a *[25]Lane, state *[StateSize]byte) {
	for i := range a {
		a[i] = Lane(binary.LittleEndian.Uint64(state[8*i:]))
	}
}

// StoreLanes encodes lanes into the serialized state.
func StoreLanes(state *[StateSize]byte, a *[25]Lane) {
	for i, l := range a {
		binary.LittleEndian.PutUint64(state[8*i:], uint64(l))
	}
}
