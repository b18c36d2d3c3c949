package sakura

import (
	"maps"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Algorithm names a construction in the registry.
type Algorithm string

// The registered algorithms.
const (
	SHA3_224           Algorithm = "sha3-224"
	SHA3_256           Algorithm = "sha3-256"
	SHA3_384           Algorithm = "sha3-384"
	SHA3_512           Algorithm = "sha3-512"
	Keccak256          Algorithm = "keccak-256"
	SHAKE128           Algorithm = "shake128"
	SHAKE256           Algorithm = "shake256"
	CSHAKE128          Algorithm = "cshake128"
	CSHAKE256          Algorithm = "cshake256"
	KMAC128            Algorithm = "kmac128"
	KMAC256            Algorithm = "kmac256"
	KMACXOF128         Algorithm = "kmacxof128"
	KMACXOF256         Algorithm = "kmacxof256"
	TurboSHAKE128      Algorithm = "turboshake128"
	TurboSHAKE256      Algorithm = "turboshake256"
	KT128              Algorithm = "kt128"
	ParallelHash128    Algorithm = "parallelhash128"
	ParallelHash256    Algorithm = "parallelhash256"
	ParallelHashXOF128 Algorithm = "parallelhashxof128"
	ParallelHashXOF256 Algorithm = "parallelhashxof256"
	TreeMAC            Algorithm = "treemac"
)

// ErrUnknownAlgorithm is returned for names which are not in the registry.
var ErrUnknownAlgorithm = errors.New("sakura: unknown algorithm")

// Options are the parameters of a registry construction. Fields which an algorithm does not use are ignored.
type Options struct {
	// Size is the digest size in bytes. Zero selects the algorithm's default. Fixed-size hashes accept only their own
	// size.
	Size int

	// FunctionName is the cSHAKE function name N.
	FunctionName []byte

	// Customization is the customization string of cSHAKE, KMAC, ParallelHash, and KT128.
	Customization []byte

	// Key is the KMAC or TreeMAC key.
	Key []byte

	// BlockSize is the ParallelHash block size B in bytes. Zero selects 8192.
	BlockSize int

	// Domain is the TurboSHAKE domain separation byte. Zero selects 0x1F.
	Domain byte
}

// DefaultBlockSize is the ParallelHash block size used when Options.BlockSize is zero.
const DefaultBlockSize = 8192

type entry struct {
	build func(o *Options) (Hash, error)
	xof   bool
}

var registry = map[Algorithm]entry{
	SHA3_224:      fixed(NewSHA3_224),
	SHA3_256:      fixed(NewSHA3_256),
	SHA3_384:      fixed(NewSHA3_384),
	SHA3_512:      fixed(NewSHA3_512),
	Keccak256:     fixed(NewLegacyKeccak256),
	SHAKE128:      xof(func(*Options) (XOF, error) { return NewSHAKE128(), nil }),
	SHAKE256:      xof(func(*Options) (XOF, error) { return NewSHAKE256(), nil }),
	CSHAKE128:     xof(func(o *Options) (XOF, error) { return NewCSHAKE128(o.FunctionName, o.Customization), nil }),
	CSHAKE256:     xof(func(o *Options) (XOF, error) { return NewCSHAKE256(o.FunctionName, o.Customization), nil }),
	KMACXOF128:    xof(func(o *Options) (XOF, error) { return NewKMACXOF128(o.Key, o.Customization), nil }),
	KMACXOF256:    xof(func(o *Options) (XOF, error) { return NewKMACXOF256(o.Key, o.Customization), nil }),
	TurboSHAKE128: xof(func(o *Options) (XOF, error) { return NewTurboSHAKE128(o.domain()) }),
	TurboSHAKE256: xof(func(o *Options) (XOF, error) { return NewTurboSHAKE256(o.domain()) }),
	KT128:         xof(func(o *Options) (XOF, error) { return NewKT128(o.Customization), nil }),
	ParallelHashXOF128: xof(func(o *Options) (XOF, error) {
		return NewParallelHashXOF128(o.blockSize(), o.Customization)
	}),
	ParallelHashXOF256: xof(func(o *Options) (XOF, error) {
		return NewParallelHashXOF256(o.blockSize(), o.Customization)
	}),
	KMAC128: {build: func(o *Options) (Hash, error) {
		return NewKMAC128(o.Key, o.Customization, o.size(32))
	}},
	KMAC256: {build: func(o *Options) (Hash, error) {
		return NewKMAC256(o.Key, o.Customization, o.size(64))
	}},
	ParallelHash128: {build: func(o *Options) (Hash, error) {
		return NewParallelHash128(o.blockSize(), o.Customization, o.size(32))
	}},
	ParallelHash256: {build: func(o *Options) (Hash, error) {
		return NewParallelHash256(o.blockSize(), o.Customization, o.size(64))
	}},
	TreeMAC: {build: func(o *Options) (Hash, error) {
		h, err := NewTreeMAC(o.Key)
		if err != nil {
			return nil, err
		}
		return checkSize(h, o.Size)
	}},
}

// fixed registers a hash with a fixed digest size.
func fixed(f func() Hash) entry {
	return entry{build: func(o *Options) (Hash, error) {
		return checkSize(f(), o.Size)
	}}
}

// xof registers an XOF whose Sum size may be set with Options.Size.
func xof(f func(o *Options) (XOF, error)) entry {
	return entry{xof: true, build: func(o *Options) (Hash, error) {
		if o.Size < 0 {
			return nil, &ConfigError{Param: "digest size", Value: o.Size}
		}

		x, err := f(o)
		if err != nil {
			return nil, err
		}

		if o.Size != 0 {
			x = WithSize(x, o.Size)
		}
		return x, nil
	}}
}

func checkSize(h Hash, size int) (Hash, error) {
	if size != 0 && size != h.Size() {
		return nil, &ConfigError{Param: "digest size", Value: size}
	}
	return h, nil
}

func (o *Options) size(def int) int {
	if o.Size == 0 {
		return def
	}
	return o.Size
}

func (o *Options) blockSize() int {
	if o.BlockSize == 0 {
		return DefaultBlockSize
	}
	return o.BlockSize
}

func (o *Options) domain() byte {
	if o.Domain == 0 {
		return 0x1F
	}
	return o.Domain
}

// Algorithms returns the names of all registered algorithms in lexical order.
func Algorithms() []Algorithm {
	return slices.Sorted(maps.Keys(registry))
}

// ParseAlgorithm returns the registered algorithm with the given name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := registry[alg]; !ok {
		return "", errors.Wrap(ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// New returns a new instance of the named algorithm with the given options. Errors returned by the construction are
// wrapped with the algorithm name; errors.Is sees through the wrapping.
func New(alg Algorithm, opts Options) (Hash, error) {
	e, ok := registry[alg]
	if !ok {
		return nil, errors.Wrap(ErrUnknownAlgorithm, string(alg))
	}

	h, err := e.build(&opts)
	if err != nil {
		return nil, errors.Wrapf(err, "sakura: %s", alg)
	}
	return h, nil
}

// IsXOF returns true if the named algorithm is a registered extendable-output function. New returns an XOF for
// these algorithms.
func (a Algorithm) IsXOF() bool {
	return registry[a].xof
}
