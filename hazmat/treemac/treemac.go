// Package treemac implements TreeMAC, a tree-parallel message authentication code that uses a KangarooTwelve-like
// topology.
//
// Each chunk of the message is absorbed by an independent keyed leaf sponge using Keccak-p[1600,12], and the leaf
// chain values are accumulated into a single authentication tag via TurboSHAKE128. Leaves are hashed concurrently.
//
// Leaf i is TurboSHAKE128(key || LE64(i) || chunk, 0x60, 32). The tag is TurboSHAKE128 with domain separation byte
// 0x61 over cv[0] || marker || cv[1] || ... || cv[n-1] || length_encode(n-1) || 0xFF 0xFF. An empty message is one
// empty chunk.
package treemac

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/codahale/sakura/hazmat/sponge"
	"github.com/codahale/sakura/hazmat/tree"
	"github.com/codahale/sakura/hazmat/turboshake"
	"github.com/codahale/sakura/internal/mem"
)

const (
	// KeySize is the size of the key in bytes.
	KeySize = 32

	// TagSize is the size of the authentication tag in bytes.
	TagSize = 32

	// ChunkSize is the size of each leaf chunk in bytes.
	ChunkSize = 8 * 1024

	cvSize = 32   // Chain value size (= capacity).
	leafDS = 0x60 // Domain separation byte for leaf sponges.
	tagDS  = 0x61 // Domain separation byte for tag computation.
)

// MAC is an incremental TreeMAC instance that implements hash.Hash.
type MAC struct {
	leaves *tree.Leaves
	node   sponge.Sponge
	cvs    uint64 // chain values absorbed by node
}

// New returns a new MAC with the given key.
func New(key *[KeySize]byte) *MAC {
	m, err := NewWorkers(key, 0)
	if err != nil {
		panic(err)
	}
	return m
}

// NewWorkers returns a new MAC with the given key which hashes leaves on at most workers goroutines. Zero selects
// tree.DefaultWorkers.
func NewWorkers(key *[KeySize]byte, workers int) (*MAC, error) {
	leaves, err := tree.NewLeaves(ChunkSize, cvSize, leaf(key), workers)
	if err != nil {
		return nil, err
	}
	return &MAC{leaves: leaves, node: *sponge.MustNew(turboshake.Params128(tagDS))}, nil
}

// leaf returns a LeafFunc which absorbs key || LE64(index) || chunk.
func leaf(key *[KeySize]byte) tree.LeafFunc {
	keyed := *sponge.MustNew(turboshake.Params128(leafDS))
	_, _ = keyed.Write(key[:])

	return func(index uint64, chunk, cv []byte) {
		s := keyed
		var idx [8]byte
		binary.LittleEndian.PutUint64(idx[:], index)
		_, _ = s.Write(idx[:])
		_, _ = s.Write(chunk)
		_, _ = s.Read(cv)
	}
}

// Write absorbs message bytes. It never returns an error.
func (m *MAC) Write(p []byte) (int, error) {
	m.leaves.Write(p, m.fold)
	return len(p), nil
}

// fold writes chain values into the tag sponge with KT12 final-node framing: the marker follows the first one.
func (m *MAC) fold(cv []byte) {
	_, _ = m.node.Write(cv)
	m.cvs++
	if m.cvs == 1 {
		_, _ = m.node.Write(tree.Marker[:])
	}
}

// Sum appends the tag of the data written so far to b without changing the underlying state.
func (m *MAC) Sum(b []byte) []byte {
	c := m.Clone()
	c.leaves.Finish(c.fold, true)
	_, _ = c.node.Write(tree.LengthEncode(c.cvs - 1))
	_, _ = c.node.Write(tree.Terminator[:])

	ret, tag := mem.SliceForAppend(b, TagSize)
	_, _ = c.node.Read(tag)
	return ret
}

// Reset discards all written data, retaining the key.
func (m *MAC) Reset() {
	m.leaves.Reset()
	m.node.Reset()
	m.cvs = 0
}

// Clone returns an independent copy of the MAC.
func (m *MAC) Clone() *MAC {
	return &MAC{leaves: m.leaves.Clone(), node: m.node, cvs: m.cvs}
}

// Size returns TagSize.
func (m *MAC) Size() int { return TagSize }

// BlockSize returns ChunkSize.
func (m *MAC) BlockSize() int { return ChunkSize }

// Sum returns the TreeMAC tag of msg under key.
func Sum(key *[KeySize]byte, msg []byte) (tag [TagSize]byte) {
	m := New(key)
	_, _ = m.Write(msg)
	m.Sum(tag[:0])
	return tag
}

// Verify returns true if tag is the TreeMAC tag of msg under key. The comparison is constant-time.
func Verify(key *[KeySize]byte, msg, tag []byte) bool {
	want := Sum(key, msg)
	return subtle.ConstantTimeCompare(want[:], tag) == 1
}
