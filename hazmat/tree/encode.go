package tree

// LengthEncode encodes x as in KangarooTwelve: its big-endian bytes with no leading zeros, followed by a byte giving
// the number of those bytes. Zero encodes as a single zero byte.
func LengthEncode(x uint64) []byte {
	return AppendLengthEncode(make([]byte, 0, 9), x)
}

// AppendLengthEncode appends the KangarooTwelve length encoding of x to b.
func AppendLengthEncode(b []byte, x uint64) []byte {
	n := 0
	for v := x; v > 0; v >>= 8 {
		n++
	}

	for i := n - 1; i >= 0; i-- {
		b = append(b, byte(x>>(8*i)))
	}
	return append(b, byte(n))
}
