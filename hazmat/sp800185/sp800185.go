// Package sp800185 implements the string encodings of NIST SP 800-185 §2.3: left_encode, right_encode,
// encode_string, and bytepad.
package sp800185

import "encoding/binary"

// LeftEncode returns left_encode(x): the minimal big-endian encoding of x preceded by its length in bytes.
func LeftEncode(x uint64) []byte {
	return AppendLeftEncode(nil, x)
}

// AppendLeftEncode appends left_encode(x) to dst.
func AppendLeftEncode(dst []byte, x uint64) []byte {
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[1:], x)
	n := minimal(x)
	buf[8-n] = byte(n)
	return append(dst, buf[8-n:]...)
}

// RightEncode returns right_encode(x): the minimal big-endian encoding of x followed by its length in bytes.
func RightEncode(x uint64) []byte {
	return AppendRightEncode(nil, x)
}

// AppendRightEncode appends right_encode(x) to dst.
func AppendRightEncode(dst []byte, x uint64) []byte {
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[:8], x)
	n := minimal(x)
	buf[8] = byte(n)
	return append(dst, buf[8-n:]...)
}

// EncodeString returns encode_string(s) = left_encode(bitlen(s)) || s.
func EncodeString(s []byte) []byte {
	return AppendEncodeString(nil, s)
}

// AppendEncodeString appends encode_string(s) to dst.
func AppendEncodeString(dst, s []byte) []byte {
	dst = AppendLeftEncode(dst, uint64(len(s))*8)
	return append(dst, s...)
}

// Bytepad returns bytepad(x, w) = left_encode(w) || x, zero-padded to a multiple of w bytes.
func Bytepad(x []byte, w int) []byte {
	return AppendBytepad(nil, x, w)
}

// AppendBytepad appends bytepad(x, w) to dst. It panics if w is not positive.
func AppendBytepad(dst, x []byte, w int) []byte {
	if w <= 0 {
		panic("sp800185: non-positive bytepad width")
	}

	start := len(dst)
	dst = AppendLeftEncode(dst, uint64(w))
	dst = append(dst, x...)
	if r := (len(dst) - start) % w; r != 0 {
		dst = append(dst, make([]byte, w-r)...)
	}
	return dst
}

// minimal returns the number of bytes in the minimal big-endian encoding of x, which is 1 for x = 0.
func minimal(x uint64) int {
	n := 1
	for x > 0xFF {
		x >>= 8
		n++
	}
	return n
}
