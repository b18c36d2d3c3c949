// Package mem provides byte-slice helpers shared by the sponge constructions.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i in src. It panics if src is longer than dst.
func XORInPlace(dst, src []byte) {
	dst = dst[:len(src)]
	for i, s := range src {
		dst[i] ^= s
	}
}

// SliceForAppend extends in by n bytes, reusing its capacity when possible, and returns the extended slice and the
// n-byte tail.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return head, tail
}
