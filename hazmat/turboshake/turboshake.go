// Package turboshake implements TurboSHAKE128 and TurboSHAKE256 as specified in RFC 9861.
//
// TurboSHAKE is an eXtendable-Output Function (XOF) based on the Keccak-p[1600,12] permutation, with rates of 168
// and 136 bytes. Its domain separation byte D must be in the range [0x01, 0x7F]; 0x1F is the conventional default.
package turboshake

import (
	"github.com/codahale/sakura/hazmat/sponge"
	"github.com/codahale/sakura/internal/mem"
)

const (
	// Rate128 is the TurboSHAKE128 rate in bytes (200 - 32).
	Rate128 = 168

	// Rate256 is the TurboSHAKE256 rate in bytes (200 - 64).
	Rate256 = 136

	// Rounds is the number of Keccak-p rounds.
	Rounds = 12

	// DefaultDS is the domain separation byte used when none is specified.
	DefaultDS = 0x1F
)

// Params128 returns the sponge parameters of TurboSHAKE128 with domain separation byte ds.
func Params128(ds byte) sponge.Params {
	return sponge.Params{Rate: Rate128, Rounds: Rounds, Suffix: sponge.Byte(ds)}
}

// Params256 returns the sponge parameters of TurboSHAKE256 with domain separation byte ds.
func Params256(ds byte) sponge.Params {
	return sponge.Params{Rate: Rate256, Rounds: Rounds, Suffix: sponge.Byte(ds)}
}

// Hasher is an incremental TurboSHAKE instance that implements io.ReadWriter.
// Writes absorb data into the sponge and reads squeeze output from it.
// Once Read is called, further writes fail with sponge.ErrUseAfterFinalize.
type Hasher struct {
	s    sponge.Sponge
	size int
}

// New128 returns a new TurboSHAKE128 hasher with the given domain separation byte.
func New128(ds byte) (*Hasher, error) {
	return newHasher(Params128(ds), 32)
}

// New256 returns a new TurboSHAKE256 hasher with the given domain separation byte.
func New256(ds byte) (*Hasher, error) {
	return newHasher(Params256(ds), 64)
}

func newHasher(p sponge.Params, size int) (*Hasher, error) {
	s, err := sponge.New(p)
	if err != nil {
		return nil, err
	}
	return &Hasher{s: *s, size: size}, nil
}

// Write absorbs p into the sponge state.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.s.Write(p)
}

// Read squeezes output from the sponge state into p. On the first call, it finalizes absorption by applying padding
// and permuting. Subsequent calls continue squeezing.
func (h *Hasher) Read(p []byte) (int, error) {
	return h.s.Read(p)
}

// Sum appends Size bytes of output to b without changing the underlying state. After Read, those are the next bytes
// of the output stream.
func (h *Hasher) Sum(b []byte) []byte {
	s := h.s
	ret, out := mem.SliceForAppend(b, h.size)
	_, _ = s.Read(out)
	return ret
}

// Size returns the default output size: 32 bytes for TurboSHAKE128, 64 for TurboSHAKE256.
func (h *Hasher) Size() int { return h.size }

// BlockSize returns the rate in bytes.
func (h *Hasher) BlockSize() int { return h.s.Rate() }

// Reset zeros the hasher, retaining its domain separation byte.
func (h *Hasher) Reset() { h.s.Reset() }

// Clone returns an independent copy of the hasher.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

// Equal compares the two hashers in constant time, returning 1 if their states are equal, 0 if not.
func (h *Hasher) Equal(other *Hasher) int {
	return h.s.Equal(&other.s)
}

// Sum128 computes TurboSHAKE128(msg, ds, outLen) and returns the result.
func Sum128(msg []byte, ds byte, outLen int) ([]byte, error) {
	return sum(Params128(ds), msg, outLen)
}

// Sum256 computes TurboSHAKE256(msg, ds, outLen) and returns the result.
func Sum256(msg []byte, ds byte, outLen int) ([]byte, error) {
	return sum(Params256(ds), msg, outLen)
}

func sum(p sponge.Params, msg []byte, outLen int) ([]byte, error) {
	s, err := sponge.New(p)
	if err != nil {
		return nil, err
	}
	_, _ = s.Write(msg)
	out := make([]byte, outLen)
	_, _ = s.Read(out)
	return out, nil
}
