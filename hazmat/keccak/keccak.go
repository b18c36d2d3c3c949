// Package keccak provides the Keccak-p[1600, nr] permutation over a serialized 200-byte state.
//
// The state holds 25 lanes of 64 bits. Lane (x, y) lives at index x+5y and is stored little-endian at byte offset
// 8*(x+5y).
package keccak

// StateSize is the size of the Keccak-p[1600] state in bytes.
const StateSize = 200

// MaxRounds is the number of rounds of Keccak-f[1600].
const MaxRounds = 24

// F1600 applies the Keccak-f[1600] permutation (Keccak-p[1600, 24]) to the state.
func F1600(state *[StateSize]byte) {
	Permute(state, MaxRounds)
}

// P1600 applies the Keccak-p[1600, 12] permutation to the state.
func P1600(state *[StateSize]byte) {
	Permute(state, 12)
}

// Permute applies the last rounds rounds of Keccak-f[1600] to the state. It panics if rounds is not in [1, 24].
func Permute(state *[StateSize]byte, rounds int) {
	if rounds < 1 || rounds > MaxRounds {
		panic("keccak: invalid round count")
	}

	var a [25]Lane
	LoadLanes(&a, state)
	permute(&a, rounds)
	StoreLanes(state, &a)
}
