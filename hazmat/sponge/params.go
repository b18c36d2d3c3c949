package sponge

import "github.com/codahale/sakura/hazmat/keccak"

// Suffix is the domain separation appended to the message before pad10*1 padding.
//
// A suffix is either a string of up to seven bits (FIPS 202, SP 800-185) or a whole domain separation byte which
// already contains the first padding bit (TurboSHAKE, KangarooTwelve). The zero Suffix is the empty bit string.
type Suffix struct {
	value byte
	bits  int
	whole bool
}

var (
	// Keccak is the empty suffix of the original Keccak submission.
	Keccak = Bits(0, 0)

	// SHA3 is the FIPS 202 suffix "01" of the SHA3-d hash functions.
	SHA3 = Bits(0b10, 2)

	// SHAKE is the FIPS 202 suffix "1111" of the SHAKE XOFs.
	SHAKE = Bits(0b1111, 4)

	// CSHAKE is the SP 800-185 suffix "00" of cSHAKE with a non-empty function name or customization string.
	CSHAKE = Bits(0b00, 2)
)

// Bits returns a suffix of the n low-order bits of value, the first bit being the least significant.
func Bits(value byte, n int) Suffix {
	return Suffix{value: value, bits: n}
}

// Byte returns a whole-byte domain separation suffix. Valid values are 0x01 through 0x7F.
func Byte(ds byte) Suffix {
	return Suffix{value: ds, whole: true}
}

// PadByte returns the byte XORed at the end of the message: the suffix followed by the first bit of pad10*1.
func (s Suffix) PadByte() byte {
	if s.whole {
		return s.value
	}
	return s.value | 1<<s.bits
}

func (s Suffix) validate() error {
	if s.whole {
		if s.value < 0x01 || s.value > 0x7F {
			return &ConfigError{Param: "domain separation byte", Value: int(s.value)}
		}
		return nil
	}

	if s.bits < 0 || s.bits > 7 {
		return &ConfigError{Param: "suffix length", Value: s.bits}
	}
	if int(s.value) >= 1<<s.bits {
		return &ConfigError{Param: "suffix value", Value: int(s.value)}
	}
	return nil
}

// Params is the static configuration of a sponge.
type Params struct {
	// Rate is the number of state bytes absorbed or squeezed per permutation. The capacity is 200 - Rate.
	Rate int

	// Rounds is the number of Keccak-p rounds: 24 for Keccak-f[1600], 12 for TurboSHAKE and KangarooTwelve.
	Rounds int

	// Suffix is the domain separation suffix.
	Suffix Suffix
}

// Validate returns a *ConfigError if the parameters are not usable.
func (p Params) Validate() error {
	if p.Rate < 1 || p.Rate > keccak.StateSize {
		return &ConfigError{Param: "rate", Value: p.Rate}
	}

	if p.Rounds != 12 && p.Rounds != keccak.MaxRounds {
		return &ConfigError{Param: "round count", Value: p.Rounds}
	}

	return p.Suffix.validate()
}

// WithSuffix returns a copy of p using suffix s.
func (p Params) WithSuffix(s Suffix) Params {
	p.Suffix = s
	return p
}
