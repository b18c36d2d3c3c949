// Package sponge implements the Keccak sponge: absorbing, pad10*1 finalization with domain separation, and
// squeezing of arbitrarily long output.
//
// A Sponge is parameterized by its rate, round count, and domain separation suffix. Every FIPS 202, SP 800-185, and
// RFC 9861 construction in this module is a Sponge with a particular parameter set, optionally preceded by framing.
package sponge

import (
	"crypto/subtle"

	"github.com/codahale/sakura/hazmat/keccak"
	"github.com/codahale/sakura/internal/mem"
)

// Sponge is an incremental Keccak sponge that implements io.ReadWriter. Writes absorb data into the state and reads
// squeeze output from it. Once Read is called, writes fail with ErrUseAfterFinalize.
type Sponge struct {
	s         [keccak.StateSize]byte
	pos       int // fill position while absorbing, read position while squeezing
	rate      int
	rounds    int
	ds        byte
	squeezing bool
}

// New returns a new Sponge with the given parameters, or a *ConfigError if they are invalid.
func New(p Params) (*Sponge, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Sponge{rate: p.Rate, rounds: p.Rounds, ds: p.Suffix.PadByte()}, nil
}

// MustNew is like New but panics if the parameters are invalid. It is intended for fixed parameter sets.
func MustNew(p Params) *Sponge {
	s, err := New(p)
	if err != nil {
		panic(err)
	}
	return s
}

// Rate returns the sponge's rate in bytes.
func (s *Sponge) Rate() int { return s.rate }

// Rounds returns the number of permutation rounds.
func (s *Sponge) Rounds() int { return s.rounds }

// Squeezing returns true once the sponge has been finalized.
func (s *Sponge) Squeezing() bool { return s.squeezing }

// Reset zeros the state and returns the sponge to absorbing, retaining its parameters.
func (s *Sponge) Reset() {
	clear(s.s[:])
	s.pos = 0
	s.squeezing = false
}

// Clone returns an independent copy of the sponge.
func (s *Sponge) Clone() *Sponge {
	c := *s
	return &c
}

// Equal compares the two sponges in constant time, returning 1 if they are equal, 0 if not.
func (s *Sponge) Equal(other *Sponge) int {
	eq := subtle.ConstantTimeCompare(s.s[:], other.s[:])
	eq &= subtle.ConstantTimeEq(int32(s.pos), int32(other.pos))
	eq &= subtle.ConstantTimeEq(int32(s.rate), int32(other.rate))
	eq &= subtle.ConstantTimeEq(int32(s.rounds), int32(other.rounds))
	eq &= subtle.ConstantTimeByteEq(s.ds, other.ds)
	eq &= subtle.ConstantTimeEq(b2i(s.squeezing), b2i(other.squeezing))
	return eq
}

// Write absorbs p into the sponge state. It returns ErrUseAfterFinalize if the sponge is squeezing.
func (s *Sponge) Write(p []byte) (int, error) {
	if s.squeezing {
		return 0, ErrUseAfterFinalize
	}

	n := len(p)
	for len(p) > 0 {
		w := min(s.rate-s.pos, len(p))
		mem.XORInPlace(s.s[s.pos:s.pos+w], p[:w])
		s.pos += w
		p = p[w:]
		if s.pos == s.rate {
			keccak.Permute(&s.s, s.rounds)
			s.pos = 0
		}
	}
	return n, nil
}

// Finalize appends the domain separation suffix and pad10*1 padding, permutes, and switches the sponge to
// squeezing. It has no effect on a sponge which is already squeezing.
func (s *Sponge) Finalize() {
	if s.squeezing {
		return
	}

	s.s[s.pos] ^= s.ds
	s.s[s.rate-1] ^= 0x80
	keccak.Permute(&s.s, s.rounds)
	s.pos = 0
	s.squeezing = true
}

// Read squeezes output from the sponge state into p. On the first call, it finalizes absorption. Subsequent calls
// continue squeezing.
func (s *Sponge) Read(p []byte) (int, error) {
	s.Finalize()

	n := len(p)
	for len(p) > 0 {
		if s.pos == s.rate {
			keccak.Permute(&s.s, s.rounds)
			s.pos = 0
		}
		r := copy(p, s.s[s.pos:s.rate])
		s.pos += r
		p = p[r:]
	}
	return n, nil
}

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
