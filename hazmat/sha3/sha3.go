// Package sha3 implements the FIPS 202 SHA-3 hash functions and SHAKE extendable-output functions, plus the legacy
// Keccak-256 hash which predates the FIPS 202 domain separation suffix.
package sha3

import (
	"hash"

	"github.com/codahale/sakura/hazmat/sponge"
	"github.com/codahale/sakura/internal/mem"
)

// Hasher is an incremental SHA-3, SHAKE, or Keccak instance. It implements hash.Hash and io.Reader: Sum is
// non-destructive, while Read finalizes the sponge and squeezes output.
type Hasher struct {
	s    sponge.Sponge
	size int
}

func newHasher(rate int, suffix sponge.Suffix, size int) *Hasher {
	return &Hasher{s: *sponge.MustNew(sponge.Params{Rate: rate, Rounds: 24, Suffix: suffix}), size: size}
}

// New224 returns a new SHA3-224 hasher.
func New224() *Hasher { return newHasher(144, sponge.SHA3, 28) }

// New256 returns a new SHA3-256 hasher.
func New256() *Hasher { return newHasher(136, sponge.SHA3, 32) }

// New384 returns a new SHA3-384 hasher.
func New384() *Hasher { return newHasher(104, sponge.SHA3, 48) }

// New512 returns a new SHA3-512 hasher.
func New512() *Hasher { return newHasher(72, sponge.SHA3, 64) }

// NewLegacyKeccak256 returns a new Keccak-256 hasher, as used by Ethereum.
func NewLegacyKeccak256() *Hasher { return newHasher(136, sponge.Keccak, 32) }

// NewLegacyKeccak512 returns a new Keccak-512 hasher.
func NewLegacyKeccak512() *Hasher { return newHasher(72, sponge.Keccak, 64) }

// NewSHAKE128 returns a new SHAKE128 XOF. Sum returns 32 bytes.
func NewSHAKE128() *Hasher { return newHasher(168, sponge.SHAKE, 32) }

// NewSHAKE256 returns a new SHAKE256 XOF. Sum returns 64 bytes.
func NewSHAKE256() *Hasher { return newHasher(136, sponge.SHAKE, 64) }

// Write absorbs p. It returns sponge.ErrUseAfterFinalize after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.s.Write(p)
}

// Read squeezes output into p, finalizing the sponge on the first call.
func (h *Hasher) Read(p []byte) (int, error) {
	return h.s.Read(p)
}

// Sum appends the digest of the data written so far to b without changing the underlying state. After Read, it
// appends the next Size bytes of the output stream instead.
func (h *Hasher) Sum(b []byte) []byte {
	s := h.s
	ret, out := mem.SliceForAppend(b, h.size)
	_, _ = s.Read(out)
	return ret
}

// Reset resets the hasher to its initial state.
func (h *Hasher) Reset() { h.s.Reset() }

// Clone returns an independent copy of the hasher.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int { return h.size }

// BlockSize returns the rate in bytes.
func (h *Hasher) BlockSize() int { return h.s.Rate() }

var _ hash.Hash = (*Hasher)(nil)

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (digest [28]byte) {
	sum(New224(), data, digest[:])
	return digest
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (digest [32]byte) {
	sum(New256(), data, digest[:])
	return digest
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (digest [48]byte) {
	sum(New384(), data, digest[:])
	return digest
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (digest [64]byte) {
	sum(New512(), data, digest[:])
	return digest
}

// SumSHAKE128 returns outLen bytes of SHAKE128 output for data.
func SumSHAKE128(data []byte, outLen int) []byte {
	out := make([]byte, outLen)
	sum(NewSHAKE128(), data, out)
	return out
}

// SumSHAKE256 returns outLen bytes of SHAKE256 output for data.
func SumSHAKE256(data []byte, outLen int) []byte {
	out := make([]byte, outLen)
	sum(NewSHAKE256(), data, out)
	return out
}

func sum(h *Hasher, data, out []byte) {
	_, _ = h.Write(data)
	_, _ = h.Read(out)
}
