// Package parallelhash implements ParallelHash128 and ParallelHash256, and their XOF variants, as specified in NIST
// SP 800-185.
//
// The message is split into B-byte blocks, each block is hashed with SHAKE into a chaining value, and the chaining
// values are absorbed in order by a cSHAKE instance with the function name "ParallelHash". Blocks are hashed
// concurrently.
package parallelhash

import (
	"github.com/codahale/sakura/hazmat/cshake"
	"github.com/codahale/sakura/hazmat/sp800185"
	"github.com/codahale/sakura/hazmat/sponge"
	"github.com/codahale/sakura/hazmat/tree"
	"github.com/codahale/sakura/internal/mem"
)

var functionName = []byte("ParallelHash")

// Hasher is an incremental ParallelHash instance that implements hash.Hash and io.Reader.
type Hasher struct {
	root   *cshake.Hasher
	leaves *tree.Leaves
	size   int
	xof    bool
	final  bool
}

// New128 returns a ParallelHash128 hasher with block size b, customization string s, and output size size.
func New128(b int, s []byte, size int) (*Hasher, error) {
	return newHasher(cshake.Rate128, b, s, size, false, 0)
}

// New256 returns a ParallelHash256 hasher with block size b, customization string s, and output size size.
func New256(b int, s []byte, size int) (*Hasher, error) {
	return newHasher(cshake.Rate256, b, s, size, false, 0)
}

// NewXOF128 returns a ParallelHashXOF128 hasher with block size b and customization string s. Sum returns 32 bytes.
func NewXOF128(b int, s []byte) (*Hasher, error) {
	return newHasher(cshake.Rate128, b, s, 32, true, 0)
}

// NewXOF256 returns a ParallelHashXOF256 hasher with block size b and customization string s. Sum returns 64 bytes.
func NewXOF256(b int, s []byte) (*Hasher, error) {
	return newHasher(cshake.Rate256, b, s, 64, true, 0)
}

func newHasher(rate, b int, s []byte, size int, xof bool, workers int) (*Hasher, error) {
	if b <= 0 {
		return nil, &sponge.ConfigError{Param: "block size", Value: b}
	}

	if size <= 0 {
		return nil, &sponge.ConfigError{Param: "digest size", Value: size}
	}

	// Each block is hashed to 2c bits with cSHAKE(X_i, 2c, "", ""), which is SHAKE.
	leaf := tree.SpongeLeaf(sponge.Params{Rate: rate, Rounds: 24, Suffix: sponge.SHAKE})
	leaves, err := tree.NewLeaves(b, 200-rate, leaf, workers)
	if err != nil {
		return nil, err
	}

	var root *cshake.Hasher
	if rate == cshake.Rate128 {
		root = cshake.New128(functionName, s)
	} else {
		root = cshake.New256(functionName, s)
	}
	_, _ = root.Write(sp800185.LeftEncode(uint64(b)))
	root.Checkpoint()

	return &Hasher{root: root, leaves: leaves, size: size, xof: xof}, nil
}

// Write absorbs p. It returns sponge.ErrUseAfterFinalize after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.final {
		return 0, sponge.ErrUseAfterFinalize
	}

	h.leaves.Write(p, h.fold)
	return len(p), nil
}

func (h *Hasher) fold(cv []byte) {
	_, _ = h.root.Write(cv)
}

// Read squeezes output into p. On the first call, it hashes the final block and absorbs the trailer. The output of a
// fixed-size hasher is bound to its size; reading past it yields further bytes of the same stream.
func (h *Hasher) Read(p []byte) (int, error) {
	if !h.final {
		h.final = true
		h.leaves.Finish(h.fold, false)

		l := uint64(0)
		if !h.xof {
			l = 8 * uint64(h.size)
		}
		_, _ = h.root.Write(sp800185.RightEncode(h.leaves.Count()))
		_, _ = h.root.Write(sp800185.RightEncode(l))
	}
	return h.root.Read(p)
}

// Sum appends Size bytes of output to b without changing the underlying state. After Read, those are the next bytes
// of the output stream.
func (h *Hasher) Sum(b []byte) []byte {
	c := h.Clone()
	ret, out := mem.SliceForAppend(b, h.size)
	_, _ = c.Read(out)
	return ret
}

// Reset returns the hasher to its initial state, retaining its parameters.
func (h *Hasher) Reset() {
	h.root.Reset()
	h.leaves.Reset()
	h.final = false
}

// Clone returns an independent copy of the hasher.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{root: h.root.Clone(), leaves: h.leaves.Clone(), size: h.size, xof: h.xof, final: h.final}
}

// Size returns the output size in bytes.
func (h *Hasher) Size() int { return h.size }

// BlockSize returns the ParallelHash block size B in bytes.
func (h *Hasher) BlockSize() int { return h.leaves.ChunkSize() }

// Sum128 computes ParallelHash128(msg, b, 8*size, s).
func Sum128(msg []byte, b int, s []byte, size int) ([]byte, error) {
	h, err := New128(b, s, size)
	if err != nil {
		return nil, err
	}
	return h.sum(msg), nil
}

// Sum256 computes ParallelHash256(msg, b, 8*size, s).
func Sum256(msg []byte, b int, s []byte, size int) ([]byte, error) {
	h, err := New256(b, s, size)
	if err != nil {
		return nil, err
	}
	return h.sum(msg), nil
}

func (h *Hasher) sum(msg []byte) []byte {
	_, _ = h.Write(msg)
	out := make([]byte, h.size)
	_, _ = h.Read(out)
	return out
}
