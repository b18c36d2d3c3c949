// Package sakura provides Keccak-based hash functions, extendable-output functions, and MACs behind a single
// capability interface.
//
// Every construction here (SHA-3, SHAKE, cSHAKE, KMAC, TurboSHAKE, KangarooTwelve, ParallelHash, and TreeMAC) is a
// thin parameterization of the sponge and tree engines in the hazmat packages. The named factories and the
// Algorithm registry return values which satisfy Hash, and XOF where output may be of any length.
package sakura

import (
	"hash"
	"io"

	"github.com/codahale/sakura/hazmat/sponge"
)

// Hash is the capability shared by every construction.
//
// Sum is non-mutating and idempotent: calling it twice returns the same bytes and leaves the instance writable.
// SumIn is the mutating equivalent, which avoids a copy of the state; the instance must not be written to afterward.
// For every instance h, h.Sum(nil) equals h.Clone().SumIn(nil).
type Hash interface {
	hash.Hash

	// SumIn finalizes the instance and appends its digest to b.
	SumIn(b []byte) []byte

	// Clone returns an independent copy of the instance.
	Clone() Hash

	// NewEmpty returns a new instance with the same parameters and no written data.
	NewEmpty() Hash
}

// XOF is a Hash whose output may be read to any length. The first Read finalizes the instance; further Writes fail
// with ErrUseAfterFinalize. Sum and SumIn after Read do not restart the output: they return the next Size bytes of the
// stream without advancing it. Take the digest before the first Read.
type XOF interface {
	Hash
	io.Reader
}

var (
	// ErrConfig matches every *ConfigError via errors.Is.
	ErrConfig = sponge.ErrConfig

	// ErrLength matches every *LengthError via errors.Is.
	ErrLength = sponge.ErrLength

	// ErrUseAfterFinalize is returned when data is written to an instance which has already been finalized.
	ErrUseAfterFinalize = sponge.ErrUseAfterFinalize
)

type (
	// ConfigError reports an invalid static parameter, such as a non-positive digest size.
	ConfigError = sponge.ConfigError

	// LengthError reports an input of the wrong length, such as a TreeMAC key.
	LengthError = sponge.LengthError
)
