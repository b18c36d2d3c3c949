// Package cshake implements cSHAKE128 and cSHAKE256 as specified in NIST SP 800-185.
//
// cSHAKE is SHAKE preceded by a block encoding a function name N and a customization string S. When both are empty,
// cSHAKE is exactly SHAKE.
package cshake

import (
	"github.com/codahale/sakura/hazmat/sp800185"
	"github.com/codahale/sakura/hazmat/sponge"
)

const (
	// Rate128 is the cSHAKE128 rate in bytes (200 - 32).
	Rate128 = 168

	// Rate256 is the cSHAKE256 rate in bytes (200 - 64).
	Rate256 = 136
)

// Hasher is an incremental cSHAKE instance that implements io.ReadWriter.
type Hasher struct {
	s    sponge.Sponge
	init sponge.Sponge // state after the N/S prefix, restored by Reset
}

// New128 returns a cSHAKE128 hasher with function name n and customization string s.
func New128(n, s []byte) *Hasher {
	return newHasher(Rate128, n, s)
}

// New256 returns a cSHAKE256 hasher with function name n and customization string s.
func New256(n, s []byte) *Hasher {
	return newHasher(Rate256, n, s)
}

func newHasher(rate int, n, s []byte) *Hasher {
	if len(n) == 0 && len(s) == 0 {
		sp := sponge.MustNew(sponge.Params{Rate: rate, Rounds: 24, Suffix: sponge.SHAKE})
		return &Hasher{s: *sp, init: *sp}
	}

	sp := sponge.MustNew(sponge.Params{Rate: rate, Rounds: 24, Suffix: sponge.CSHAKE})
	prefix := sp800185.AppendEncodeString(nil, n)
	prefix = sp800185.AppendEncodeString(prefix, s)
	_, _ = sp.Write(sp800185.Bytepad(prefix, rate))
	return &Hasher{s: *sp, init: *sp}
}

// Write absorbs p. It returns sponge.ErrUseAfterFinalize after the first Read.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.s.Write(p)
}

// Read squeezes output into p, finalizing absorption on the first call.
func (h *Hasher) Read(p []byte) (int, error) {
	return h.s.Read(p)
}

// Finalized returns true once output has been read.
func (h *Hasher) Finalized() bool {
	return h.s.Squeezing()
}

// Reset returns the hasher to its state immediately after the N/S prefix.
func (h *Hasher) Reset() {
	h.s = h.init
}

// Clone returns an independent copy of the hasher.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

// Checkpoint makes the current state the one Reset returns to. Constructions layered on cSHAKE use it to retain
// keys or other prefixes across resets.
func (h *Hasher) Checkpoint() {
	h.init = h.s
}

// BlockSize returns the rate in bytes.
func (h *Hasher) BlockSize() int {
	return h.s.Rate()
}

// Sum128 computes cSHAKE128(msg, outLen, n, s).
func Sum128(msg []byte, outLen int, n, s []byte) []byte {
	return sum(New128(n, s), msg, outLen)
}

// Sum256 computes cSHAKE256(msg, outLen, n, s).
func Sum256(msg []byte, outLen int, n, s []byte) []byte {
	return sum(New256(n, s), msg, outLen)
}

func sum(h *Hasher, msg []byte, outLen int) []byte {
	_, _ = h.Write(msg)
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}
