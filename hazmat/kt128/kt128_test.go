package kt128

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codahale/sakura/hazmat/sponge"
	"github.com/codahale/sakura/internal/testdata"
)

var ptn = testdata.Ptn

func ff(n int) []byte {
	return []byte(strings.Repeat("\xff", n))
}

// RFC 9861 Section 5.
var rfcVectors = []struct {
	name        string
	msg, custom []byte
	outLen      int
	tail        bool // want is the last 32 bytes of the output
	want        string
}{
	{"empty/empty/32", nil, nil, 32, false,
		"1AC2D450FC3B4205D19DA7BFCA1B37513C0803577AC7167F06FE2CE1F0EF39E5"},
	{"empty/empty/64", nil, nil, 64, false,
		"1AC2D450FC3B4205D19DA7BFCA1B37513C0803577AC7167F06FE2CE1F0EF39E5" +
			"4269C056B8C82E48276038B6D292966CC07A3D4645272E31FF38508139EB0A71"},
	{"empty/empty/10032", nil, nil, 10032, true,
		"E8DC563642F7228C84684C898405D3A834799158C079B12880277A1D28E2FF6D"},
	{"ptn(1)", ptn(1), nil, 32, false,
		"2BDA92450E8B147F8A7CB629E784A058EFCA7CF7D8218E02D345DFAA65244A1F"},
	{"ptn(17)", ptn(17), nil, 32, false,
		"6BF75FA2239198DB4772E36478F8E19B0F371205F6A9A93A273F51DF37122888"},
	{"ptn(289)", ptn(289), nil, 32, false,
		"0C315EBCDEDBF61426DE7DCF8FB725D1E74675D7F5327A5067F367B108ECB67C"},
	{"ptn(4913)", ptn(4913), nil, 32, false,
		"CB552E2EC77D9910701D578B457DDF772C12E322E4EE7FE417F92C758F0D59D0"},
	{"ptn(83521)", ptn(83521), nil, 32, false,
		"8701045E22205345FF4DDA05555CBB5C3AF1A771C2B89BAEF37DB43D9998B9FE"},
	{"ptn(1419857)", ptn(1419857), nil, 32, false,
		"844D610933B1B9963CBDEB5AE3B6B05CC7CBD67CEEDF883EB678A0A8E0371682"},
	{"ptn(24137569)", ptn(24137569), nil, 32, false,
		"3C390782A8A4E89FA6367F72FEAAF13255C8D95878481D3CD8CE85F58E880AF8"},
	{"empty/ptn(1)", nil, ptn(1), 32, false,
		"FAB658DB63E94A246188BF7AF69A133045F46EE984C56E3C3328CAAF1AA1A583"},
	{"ff(1)/ptn(41)", ff(1), ptn(41), 32, false,
		"D848C5068CED736F4462159B9867FD4C20B808ACC3D5BC48E0B06BA0A3762EC4"},
	{"ff(3)/ptn(1681)", ff(3), ptn(1681), 32, false,
		"C389E5009AE57120854C2E8C64670AC01358CF4C1BAF89447A724234DC7CED74"},
	{"ff(7)/ptn(68921)", ff(7), ptn(68921), 32, false,
		"75D2F86A2E644566726B4FBCFC5657B9DBCF070C7B0DCA06450AB291D7443BCF"},
	{"ptn(8191)", ptn(8191), nil, 32, false,
		"1B577636F723643E990CC7D6A659837436FD6A103626600EB8301CD1DBE553D6"},
	{"ptn(8192)", ptn(8192), nil, 32, false,
		"48F256F6772F9EDFB6A8B661EC92DC93B95EBD05A08A17B39AE3490870C926C3"},
	{"ptn(8192)/ptn(8189)", ptn(8192), ptn(8189), 32, false,
		"3ED12F70FB05DDB58689510AB3E4D23C6C6033849AA01E1D8C220A297FEDCD0B"},
	{"ptn(8192)/ptn(8190)", ptn(8192), ptn(8190), 32, false,
		"6A7C1B6A5CD0D8C9CA943A4A216CC64604559A2EA45F78570A15253D67BA00AE"},
}

func read(t testing.TB, h *Hasher, n int) []byte {
	t.Helper()
	out := make([]byte, n)
	_, err := io.ReadFull(h, out)
	require.NoError(t, err)
	return out
}

func TestRFCVectors(t *testing.T) {
	for _, tc := range rfcVectors {
		t.Run(tc.name, func(t *testing.T) {
			h := NewCustom(tc.custom)
			_, err := h.Write(tc.msg)
			require.NoError(t, err)

			got := read(t, h, tc.outLen)
			if tc.tail {
				got = got[len(got)-32:]
			}
			assert.Equal(t, strings.ToLower(tc.want), hex.EncodeToString(got))
		})
	}
}

func TestIncrementalWrite(t *testing.T) {
	msg := ptn(83521)
	want := Sum(msg, nil, 64)

	for _, step := range []int{1, 7, 168, 1000, BlockSize, BlockSize + 1, len(msg)} {
		h := New()
		for i := 0; i < len(msg); i += step {
			_, _ = h.Write(msg[i:min(i+step, len(msg))])
		}
		assert.Equal(t, want, read(t, h, 64), "step=%d", step)
	}
}

func TestIncrementalRead(t *testing.T) {
	msg := ptn(4913)
	var got []byte
	h := New()
	_, _ = h.Write(msg)
	for _, n := range []int{1, 7, 16, 32, 64, 100, 168, 200} {
		got = append(got, read(t, h, n)...)
	}

	assert.Equal(t, Sum(msg, nil, len(got)), got)
}

func TestSumNonDestructive(t *testing.T) {
	h := New()
	_, _ = h.Write(ptn(4913))

	assert.Equal(t, Sum(ptn(4913), nil, Size), h.Sum(nil))
	assert.Equal(t, []byte("prefix"), h.Sum([]byte("prefix"))[:6])

	_, err := h.Write(ptn(100))
	require.NoError(t, err)
	assert.Equal(t, Sum(append(ptn(4913), ptn(100)...), nil, Size), read(t, h, Size))
}

func TestClone(t *testing.T) {
	for _, size := range []int{0, 1, BlockSize - 1, BlockSize, BlockSize + 1, 83521} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			h := NewCustom([]byte("test"))
			_, _ = h.Write(ptn(size))
			clone := h.Clone()
			assert.Equal(t, read(t, h, 64), read(t, clone, 64))
		})
	}

	t.Run("independent", func(t *testing.T) {
		h := NewCustom([]byte("test"))
		_, _ = h.Write(ptn(BlockSize + 1))
		clone := h.Clone()
		_, _ = h.Write([]byte("extra"))
		assert.NotEqual(t, read(t, h, 64), read(t, clone, 64))
	})
}

func TestWorkers(t *testing.T) {
	msg := ptn(BlockSize*37 + 11)
	want := Sum(msg, []byte("workers"), 64)

	for _, workers := range []int{1, 2, 5, 64} {
		h, err := NewWorkers([]byte("workers"), workers)
		require.NoError(t, err)
		_, _ = h.Write(msg)
		assert.Equal(t, want, read(t, h, 64), "workers=%d", workers)
	}

	_, err := NewWorkers(nil, -1)
	assert.ErrorIs(t, err, sponge.ErrConfig)
}

func TestWriteAfterRead(t *testing.T) {
	h := New()
	read(t, h, 32)
	_, err := h.Write([]byte{1})
	assert.ErrorIs(t, err, sponge.ErrUseAfterFinalize)

	h.Reset()
	_, err = h.Write(ptn(17))
	require.NoError(t, err)
	assert.Equal(t, Sum(ptn(17), nil, Size), h.Sum(nil))
}

func BenchmarkWrite(b *testing.B) {
	for _, size := range testdata.Sizes {
		b.Run(size.Name, func(b *testing.B) {
			msg := ptn(size.N)
			out := make([]byte, Size)
			b.SetBytes(int64(size.N))
			b.ReportAllocs()
			for b.Loop() {
				h := New()
				_, _ = h.Write(msg)
				_, _ = h.Read(out)
			}
		})
	}
}

func BenchmarkRead(b *testing.B) {
	for _, n := range []int{32, 64, 256, 1024} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			msg := ptn(BlockSize + 1)
			out := make([]byte, n)
			b.SetBytes(int64(n))
			b.ReportAllocs()
			for b.Loop() {
				h := New()
				_, _ = h.Write(msg)
				_, _ = io.ReadFull(h, out)
			}
		})
	}
}
