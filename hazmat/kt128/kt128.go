// Package kt128 implements KT128 (KangarooTwelve) as specified in RFC 9861.
//
// KT128 is a tree-hash eXtendable-Output Function (XOF) built on TurboSHAKE128. For messages larger than 8192 bytes,
// it splits input into chunks and computes leaf chain values concurrently.
package kt128

import (
	"github.com/codahale/sakura/hazmat/tree"
	"github.com/codahale/sakura/hazmat/turboshake"
)

const (
	// BlockSize is the KT128 chunk size in bytes.
	BlockSize = 8192

	// Size is the default output size in bytes.
	Size = 32

	cvSize   = 32 // Chain value size.
	leafDS   = 0x0B
	nodeDS   = 0x06
	singleDS = 0x07
)

// Config returns the tree configuration of KT128 with the given number of leaf workers. Zero selects
// tree.DefaultWorkers.
func Config(workers int) *tree.Config {
	return &tree.Config{
		ChunkSize: BlockSize,
		CVSize:    cvSize,
		Leaf:      turboshake.Params128(leafDS),
		Node:      turboshake.Params128(nodeDS),
		Single:    turboshake.Params128(singleDS),
		Workers:   workers,
	}
}

// Hasher is an incremental KT128 instance that implements hash.Hash and io.Reader.
type Hasher struct {
	t *tree.Hasher
}

// New returns a new Hasher with empty customization.
func New() *Hasher {
	return NewCustom(nil)
}

// NewCustom returns a new Hasher with the given customization string.
func NewCustom(c []byte) *Hasher {
	h, err := NewWorkers(c, 0)
	if err != nil {
		panic(err)
	}
	return h
}

// NewWorkers returns a new Hasher with the given customization string which hashes leaves on at most workers
// goroutines.
func NewWorkers(c []byte, workers int) (*Hasher, error) {
	// The message is followed by C || length_encode(|C|).
	suffix := make([]byte, 0, len(c)+9)
	suffix = append(suffix, c...)
	suffix = tree.AppendLengthEncode(suffix, uint64(len(c)))

	t, err := tree.New(Config(workers), suffix)
	if err != nil {
		return nil, err
	}
	return &Hasher{t: t}, nil
}

// Write absorbs message bytes. It returns sponge.ErrUseAfterFinalize after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.t.Write(p)
}

// Read squeezes output from the XOF. On the first call, it finalizes absorption.
func (h *Hasher) Read(p []byte) (int, error) {
	return h.t.Read(p)
}

// Sum appends the current 32-byte hash to b without changing the underlying state. After Read, it appends the next
// 32 bytes of the output stream instead.
func (h *Hasher) Sum(b []byte) []byte {
	return h.t.Sum(b)
}

// Reset resets the Hasher to its initial state, retaining the customization string.
func (h *Hasher) Reset() {
	h.t.Reset()
}

// Clone returns an independent copy of the Hasher.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{t: h.t.Clone()}
}

// Size returns the default output size in bytes.
func (h *Hasher) Size() int { return Size }

// BlockSize returns the KT128 chunk size.
func (h *Hasher) BlockSize() int { return BlockSize }

// Sum computes KT128(msg, c, outLen).
func Sum(msg, c []byte, outLen int) []byte {
	h := NewCustom(c)
	_, _ = h.Write(msg)
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}
