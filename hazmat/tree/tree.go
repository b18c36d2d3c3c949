// Package tree implements Sakura-coded tree hashing over Keccak sponges.
//
// A message is split into fixed-size chunks. A message which fits in a single chunk is hashed directly with a
// single-node sponge. Otherwise, the first chunk is absorbed raw into a final-node sponge followed by an 8-byte
// marker, every later chunk is hashed into a chaining value by a leaf sponge, the chaining values are absorbed into
// the final node in chunk order, and the final node is closed with the number of later chunks and two 0xFF bytes.
// Leaf chaining values are computed concurrently; the output never depends on the degree of parallelism.
package tree

import (
	"slices"

	"github.com/codahale/sakura/hazmat/sponge"
	"github.com/codahale/sakura/internal/mem"
)

// Marker is the 8-byte Sakura marker absorbed after the first chunk in tree mode.
var Marker = [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// Terminator is absorbed after the chunk count in tree mode.
var Terminator = [2]byte{0xFF, 0xFF}

// Config is the static configuration of a tree hash.
type Config struct {
	// ChunkSize is the chunk size in bytes.
	ChunkSize int

	// CVSize is the size of each leaf chaining value in bytes. It is also the size of Hasher.Sum output.
	CVSize int

	// Leaf, Node, and Single are the sponge parameters of the leaves, the final node in tree mode, and the final node
	// of a single-chunk message.
	Leaf, Node, Single sponge.Params

	// Workers is the maximum number of goroutines hashing leaves. Zero selects DefaultWorkers.
	Workers int
}

// Validate returns a *sponge.ConfigError if the configuration is not usable.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return &sponge.ConfigError{Param: "chunk size", Value: c.ChunkSize}
	}

	if c.CVSize <= 0 {
		return &sponge.ConfigError{Param: "chaining value size", Value: c.CVSize}
	}

	if c.Workers < 0 {
		return &sponge.ConfigError{Param: "worker count", Value: c.Workers}
	}

	for _, p := range []sponge.Params{c.Leaf, c.Node, c.Single} {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Hasher is an incremental tree hash which implements io.ReadWriter.
type Hasher struct {
	chunkSize int
	cvSize    int
	suffix    []byte        // appended to the message at finalization, immutable
	node      sponge.Sponge // tree-mode final node template
	single    sponge.Sponge // single-chunk final node template
	root      sponge.Sponge // active final node
	leaves    *Leaves
	buf       []byte // first chunk, until tree mode is entered
	tree      bool
	final     bool
}

// New returns a new Hasher with the given configuration. The suffix is appended to the message before
// finalization.
func New(cfg *Config, suffix []byte) (*Hasher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	leaves, err := NewLeaves(cfg.ChunkSize, cfg.CVSize, SpongeLeaf(cfg.Leaf), cfg.Workers)
	if err != nil {
		return nil, err
	}

	return &Hasher{
		chunkSize: cfg.ChunkSize,
		cvSize:    cfg.CVSize,
		suffix:    slices.Clone(suffix),
		node:      *sponge.MustNew(cfg.Node),
		single:    *sponge.MustNew(cfg.Single),
		leaves:    leaves,
	}, nil
}

// Write absorbs message bytes. It returns sponge.ErrUseAfterFinalize after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.final {
		return 0, sponge.ErrUseAfterFinalize
	}

	h.write(p)
	return len(p), nil
}

func (h *Hasher) write(p []byte) {
	if !h.tree {
		// Buffer until there is more than one chunk.
		need := h.chunkSize + 1 - len(h.buf)
		if need > len(p) {
			h.buf = append(h.buf, p...)
			return
		}

		h.buf = append(h.buf, p[:need]...)
		p = p[need:]

		h.root = h.node
		_, _ = h.root.Write(h.buf[:h.chunkSize])
		_, _ = h.root.Write(Marker[:])
		h.leaves.Write(h.buf[h.chunkSize:], h.fold)
		h.buf = h.buf[:0]
		h.tree = true
	}

	h.leaves.Write(p, h.fold)
}

func (h *Hasher) fold(cv []byte) {
	_, _ = h.root.Write(cv)
}

// Read squeezes output into p. On the first call, it finalizes the message.
func (h *Hasher) Read(p []byte) (int, error) {
	h.finalize()
	return h.root.Read(p)
}

// Sum appends CVSize bytes of output to b without changing the underlying state. After Read, those are the next
// bytes of the output stream.
func (h *Hasher) Sum(b []byte) []byte {
	c := h.Clone()
	ret, out := mem.SliceForAppend(b, h.cvSize)
	_, _ = c.Read(out)
	return ret
}

// Size returns the size of Sum output in bytes.
func (h *Hasher) Size() int { return h.cvSize }

// BlockSize returns the chunk size in bytes.
func (h *Hasher) BlockSize() int { return h.chunkSize }

// Reset returns the hasher to its initial state, retaining its configuration and suffix.
func (h *Hasher) Reset() {
	h.buf = h.buf[:0]
	h.leaves.Reset()
	h.root = sponge.Sponge{}
	h.tree = false
	h.final = false
}

// Clone returns an independent copy of the hasher.
func (h *Hasher) Clone() *Hasher {
	c := *h
	c.buf = slices.Clone(h.buf)
	c.leaves = h.leaves.Clone()
	return &c
}

// Chunks returns the number of later chunks hashed into chaining values so far.
func (h *Hasher) Chunks() uint64 { return h.leaves.Count() }

func (h *Hasher) finalize() {
	if h.final {
		return
	}
	h.final = true

	h.write(h.suffix)

	if !h.tree {
		h.root = h.single
		_, _ = h.root.Write(h.buf)
		return
	}

	h.leaves.Finish(h.fold, false)
	_, _ = h.root.Write(LengthEncode(h.leaves.Count()))
	_, _ = h.root.Write(Terminator[:])
}
