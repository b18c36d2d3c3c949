package sakura_test

import (
	"testing"

	"github.com/codahale/sakura"
	"github.com/codahale/sakura/internal/testdata"
)

func BenchmarkAlgorithms(b *testing.B) {
	opts := sakura.Options{Key: make([]byte, 32)}

	for _, alg := range sakura.Algorithms() {
		b.Run(string(alg), func(b *testing.B) {
			for _, size := range testdata.Sizes {
				b.Run(size.Name, func(b *testing.B) {
					h, err := sakura.New(alg, opts)
					if err != nil {
						b.Fatal(err)
					}
					msg := testdata.Ptn(size.N)
					out := make([]byte, 0, h.Size())

					b.SetBytes(int64(size.N))
					b.ReportAllocs()
					for b.Loop() {
						h.Reset()
						_, _ = h.Write(msg)
						out = h.Sum(out[:0])
					}
				})
			}
		})
	}
}
