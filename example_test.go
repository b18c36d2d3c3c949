package sakura_test

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/codahale/sakura"
)

func Example() {
	h := sakura.NewSHA3_256()
	_, _ = h.Write([]byte("abc"))
	fmt.Printf("SHA3-256('abc') = %x\n", h.Sum(nil))

	x := sakura.NewKT128(nil)
	fmt.Printf("KT128('', 32) = %x\n", x.Sum(nil))

	// Output:
	// SHA3-256('abc') = 3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532
	// KT128('', 32) = 1ac2d450fc3b4205d19da7bfca1b37513c0803577ac7167f06fe2ce1f0ef39e5
}

func ExampleXOF() {
	x := sakura.NewSHAKE128()

	// The first Read finalizes the XOF; output may be read in pieces of any size.
	out := make([]byte, 32)
	_, _ = io.ReadFull(x, out[:5])
	_, _ = io.ReadFull(x, out[5:])
	fmt.Printf("%x\n", out)

	// Output:
	// 7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26
}

func ExampleNewKMAC128() {
	key, _ := hex.DecodeString("404142434445464748494a4b4c4d4e4f505152535455565758595a5b5c5d5e5f")

	mac, err := sakura.NewKMAC128(key, []byte("My Tagged Application"), 32)
	if err != nil {
		panic(err)
	}
	_, _ = mac.Write([]byte{0x00, 0x01, 0x02, 0x03})
	fmt.Printf("%x\n", mac.Sum(nil))

	// Output:
	// 3b1fba963cd8b0b59e8c1a6d71888b7143651af8ba0a7070c0979e2811324aa5
}

func ExampleNew() {
	msg := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
		0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27,
	}

	h, err := sakura.New(sakura.ParallelHash128, sakura.Options{
		BlockSize:     8,
		Customization: []byte("Parallel Data"),
	})
	if err != nil {
		panic(err)
	}
	_, _ = h.Write(msg)
	fmt.Printf("%x\n", h.Sum(nil))

	// Output:
	// fc484dcb3f84dceedc353438151bee58157d6efed0445a81f165e495795b7206
}

func ExampleNewTurboSHAKE128() {
	x, err := sakura.NewTurboSHAKE128(0x1F)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", x.Sum(nil))

	// Output:
	// 1e415f1c5983aff2169217277d17bb538cd945a397ddec541f1ce41af2c1b74c
}
