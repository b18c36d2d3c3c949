package sakura

import (
	"github.com/codahale/sakura/hazmat/cshake"
	"github.com/codahale/sakura/hazmat/kmac"
	"github.com/codahale/sakura/hazmat/kt128"
	"github.com/codahale/sakura/hazmat/parallelhash"
	"github.com/codahale/sakura/hazmat/sha3"
	"github.com/codahale/sakura/hazmat/sponge"
	"github.com/codahale/sakura/hazmat/treemac"
	"github.com/codahale/sakura/hazmat/turboshake"
)

// NewSHA3_224 returns a new SHA3-224 hash.
func NewSHA3_224() Hash { return fromSHA3(sha3.New224()) }

// NewSHA3_256 returns a new SHA3-256 hash.
func NewSHA3_256() Hash { return fromSHA3(sha3.New256()) }

// NewSHA3_384 returns a new SHA3-384 hash.
func NewSHA3_384() Hash { return fromSHA3(sha3.New384()) }

// NewSHA3_512 returns a new SHA3-512 hash.
func NewSHA3_512() Hash { return fromSHA3(sha3.New512()) }

// NewLegacyKeccak256 returns a new Keccak-256 hash, which uses the original Keccak padding rather than the SHA-3
// domain separation suffix.
func NewLegacyKeccak256() Hash { return fromSHA3(sha3.NewLegacyKeccak256()) }

// NewSHAKE128 returns a new SHAKE128 XOF. Sum returns 32 bytes.
func NewSHAKE128() XOF { return fromSHA3(sha3.NewSHAKE128()) }

// NewSHAKE256 returns a new SHAKE256 XOF. Sum returns 64 bytes.
func NewSHAKE256() XOF { return fromSHA3(sha3.NewSHAKE256()) }

func fromSHA3(h *sha3.Hasher) *digest[*sha3.Hasher] {
	return newDigest(h, h.Size())
}

// NewCSHAKE128 returns a new cSHAKE128 XOF with function name n and customization string s. Sum returns 32 bytes.
func NewCSHAKE128(n, s []byte) XOF { return newDigest(cshake.New128(n, s), 32) }

// NewCSHAKE256 returns a new cSHAKE256 XOF with function name n and customization string s. Sum returns 64 bytes.
func NewCSHAKE256(n, s []byte) XOF { return newDigest(cshake.New256(n, s), 64) }

// NewKMAC128 returns a new KMAC128 with the given key, customization string, and output size in bytes.
func NewKMAC128(key, s []byte, size int) (Hash, error) {
	k, err := kmac.New128(key, s, size)
	if err != nil {
		return nil, err
	}
	return newDigest(k, size), nil
}

// NewKMAC256 returns a new KMAC256 with the given key, customization string, and output size in bytes.
func NewKMAC256(key, s []byte, size int) (Hash, error) {
	k, err := kmac.New256(key, s, size)
	if err != nil {
		return nil, err
	}
	return newDigest(k, size), nil
}

// NewKMACXOF128 returns a new KMACXOF128 with the given key and customization string. Sum returns 32 bytes.
func NewKMACXOF128(key, s []byte) XOF {
	k := kmac.NewXOF128(key, s)
	return newDigest(k, k.Size())
}

// NewKMACXOF256 returns a new KMACXOF256 with the given key and customization string. Sum returns 64 bytes.
func NewKMACXOF256(key, s []byte) XOF {
	k := kmac.NewXOF256(key, s)
	return newDigest(k, k.Size())
}

// NewTurboSHAKE128 returns a new TurboSHAKE128 XOF with the domain separation byte ds, which must be in the range
// [0x01, 0x7F]. Sum returns 32 bytes.
func NewTurboSHAKE128(ds byte) (XOF, error) {
	h, err := turboshake.New128(ds)
	if err != nil {
		return nil, err
	}
	return newDigest(h, h.Size()), nil
}

// NewTurboSHAKE256 returns a new TurboSHAKE256 XOF with the domain separation byte ds, which must be in the range
// [0x01, 0x7F]. Sum returns 64 bytes.
func NewTurboSHAKE256(ds byte) (XOF, error) {
	h, err := turboshake.New256(ds)
	if err != nil {
		return nil, err
	}
	return newDigest(h, h.Size()), nil
}

// NewKT128 returns a new KangarooTwelve XOF with the customization string c. Sum returns 32 bytes.
func NewKT128(c []byte) XOF { return newDigest(kt128.NewCustom(c), kt128.Size) }

// NewParallelHash128 returns a new ParallelHash128 with block size b, customization string s, and output size in
// bytes.
func NewParallelHash128(b int, s []byte, size int) (Hash, error) {
	return fromParallelHash(parallelhash.New128(b, s, size))
}

// NewParallelHash256 returns a new ParallelHash256 with block size b, customization string s, and output size in
// bytes.
func NewParallelHash256(b int, s []byte, size int) (Hash, error) {
	return fromParallelHash(parallelhash.New256(b, s, size))
}

// NewParallelHashXOF128 returns a new ParallelHashXOF128 with block size b and customization string s. Sum returns 32
// bytes.
func NewParallelHashXOF128(b int, s []byte) (XOF, error) {
	return fromParallelHash(parallelhash.NewXOF128(b, s))
}

// NewParallelHashXOF256 returns a new ParallelHashXOF256 with block size b and customization string s. Sum returns 64
// bytes.
func NewParallelHashXOF256(b int, s []byte) (XOF, error) {
	return fromParallelHash(parallelhash.NewXOF256(b, s))
}

func fromParallelHash(h *parallelhash.Hasher, err error) (XOF, error) {
	if err != nil {
		return nil, err
	}
	return newDigest(h, h.Size()), nil
}

// NewTreeMAC returns a new TreeMAC with the given 32-byte key.
func NewTreeMAC(key []byte) (Hash, error) {
	if len(key) != treemac.KeySize {
		return nil, &sponge.LengthError{What: "TreeMAC key", Got: len(key), Want: treemac.KeySize}
	}
	return &mac{m: treemac.New((*[treemac.KeySize]byte)(key))}, nil
}

var (
	_ XOF = (*digest[*sha3.Hasher])(nil)
	_ XOF = (*digest[*cshake.Hasher])(nil)
	_ XOF = (*digest[*kmac.Hasher])(nil)
	_ XOF = (*digest[*turboshake.Hasher])(nil)
	_ XOF = (*digest[*kt128.Hasher])(nil)
	_ XOF = (*digest[*parallelhash.Hasher])(nil)
)
