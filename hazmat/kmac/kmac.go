// Package kmac implements KMAC128, KMAC256, KMACXOF128, and KMACXOF256 as specified in NIST SP 800-185.
//
// KMAC is cSHAKE with the function name "KMAC", keyed by absorbing bytepad(encode_string(K), rate) before the
// message. The requested output length in bits is absorbed after the message as right_encode(L), with L = 0 for the
// XOF variants.
package kmac

import (
	"github.com/codahale/sakura/hazmat/cshake"
	"github.com/codahale/sakura/hazmat/sp800185"
	"github.com/codahale/sakura/hazmat/sponge"
)

var functionName = []byte("KMAC")

// Hasher is an incremental KMAC instance that implements io.ReadWriter.
type Hasher struct {
	h    cshake.Hasher
	size int  // output length in bytes; the default read size for XOFs
	xof  bool // absorb right_encode(0) instead of right_encode(8*size)
}

// New128 returns a KMAC128 instance with the given key, customization string, and output size in bytes.
func New128(key, s []byte, size int) (*Hasher, error) {
	return newHasher(cshake.New128(functionName, s), key, size, false)
}

// New256 returns a KMAC256 instance with the given key, customization string, and output size in bytes.
func New256(key, s []byte, size int) (*Hasher, error) {
	return newHasher(cshake.New256(functionName, s), key, size, false)
}

// NewXOF128 returns a KMACXOF128 instance with the given key and customization string. Its default size is 32 bytes.
func NewXOF128(key, s []byte) *Hasher {
	h, _ := newHasher(cshake.New128(functionName, s), key, 32, true)
	return h
}

// NewXOF256 returns a KMACXOF256 instance with the given key and customization string. Its default size is 64 bytes.
func NewXOF256(key, s []byte) *Hasher {
	h, _ := newHasher(cshake.New256(functionName, s), key, 64, true)
	return h
}

func newHasher(h *cshake.Hasher, key []byte, size int, xof bool) (*Hasher, error) {
	if size <= 0 {
		return nil, &sponge.ConfigError{Param: "digest size", Value: size}
	}

	_, _ = h.Write(sp800185.Bytepad(sp800185.EncodeString(key), h.BlockSize()))
	h.Checkpoint()
	return &Hasher{h: *h, size: size, xof: xof}, nil
}

// Write absorbs message bytes. It returns sponge.ErrUseAfterFinalize after the first Read.
func (k *Hasher) Write(p []byte) (int, error) {
	return k.h.Write(p)
}

// Read squeezes output into p. The first call absorbs the encoded output length and finalizes.
//
// For the fixed-length variants, reading more or fewer than Size bytes yields a prefix or extension of the output
// for a length of Size, not the KMAC value for a different length.
func (k *Hasher) Read(p []byte) (int, error) {
	if !k.h.Finalized() {
		var l uint64
		if !k.xof {
			l = uint64(k.size) * 8
		}
		_, _ = k.h.Write(sp800185.RightEncode(l))
	}
	return k.h.Read(p)
}

// Reset returns the hasher to its keyed initial state.
func (k *Hasher) Reset() {
	k.h.Reset()
}

// Clone returns an independent copy of the hasher.
func (k *Hasher) Clone() *Hasher {
	c := *k
	return &c
}

// Size returns the output size in bytes.
func (k *Hasher) Size() int {
	return k.size
}

// BlockSize returns the rate in bytes.
func (k *Hasher) BlockSize() int {
	return k.h.BlockSize()
}

// Sum128 computes KMAC128(key, msg, 8*size, s).
func Sum128(key, msg, s []byte, size int) ([]byte, error) {
	k, err := New128(key, s, size)
	if err != nil {
		return nil, err
	}
	return sum(k, msg), nil
}

// Sum256 computes KMAC256(key, msg, 8*size, s).
func Sum256(key, msg, s []byte, size int) ([]byte, error) {
	k, err := New256(key, s, size)
	if err != nil {
		return nil, err
	}
	return sum(k, msg), nil
}

func sum(k *Hasher, msg []byte) []byte {
	_, _ = k.Write(msg)
	out := make([]byte, k.size)
	_, _ = k.Read(out)
	return out
}
