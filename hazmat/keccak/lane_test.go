package keccak //nolint:testpackage // testing internals

import (
	"encoding/binary"
	"testing"
)

// rotl32 rotates a lane held as two 32-bit halves, splitting on the half boundary.
func rotl32(lo, hi uint32, n int) (uint32, uint32) {
	switch {
	case n == 0:
		return lo, hi
	case n < 32:
		return lo<<n | hi>>(32-n), hi<<n | lo>>(32-n)
	case n == 32:
		return hi, lo
	default:
		m := n - 32
		return hi<<m | lo>>(32-m), lo<<m | hi>>(32-m)
	}
}

func representativeLanes() []Lane {
	lanes := []Lane{0, ^Lane(0), 0x0123456789ABCDEF, 0x8000000000000001}
	for i := range 64 {
		lanes = append(lanes, Lane(1)<<i)
	}
	return lanes
}

func TestLaneRotlInverse(t *testing.T) {
	for _, x := range representativeLanes() {
		for n := range 64 {
			if got := x.Rotl(n).Rotl(64 - n); got != x {
				t.Errorf("rotl(rotl(%016x, %d), %d) = %016x", x, n, 64-n, got)
			}
		}
	}
}

func TestLaneRotlMatchesHalves(t *testing.T) {
	for _, x := range representativeLanes() {
		for n := range 64 {
			lo, hi := x.Halves()
			wantLo, wantHi := rotl32(lo, hi, n)
			if got, want := x.Rotl(n), LaneFromHalves(wantLo, wantHi); got != want {
				t.Errorf("%016x.Rotl(%d) = %016x, want = %016x", x, n, got, want)
			}
		}
	}
}

func TestLaneRotlEdges(t *testing.T) {
	x := Lane(0x0123456789ABCDEF)

	if got := x.Rotl(0); got != x {
		t.Errorf("Rotl(0) = %016x, want = %016x", got, x)
	}

	if got, want := x.Rotl(32), Lane(0x89ABCDEF01234567); got != want {
		t.Errorf("Rotl(32) = %016x, want = %016x", got, want)
	}

	if got, want := Lane(1<<63).Rotl(1), Lane(1); got != want {
		t.Errorf("Rotl(1) = %016x, want = %016x", got, want)
	}
}

func TestLaneBitwise(t *testing.T) {
	a, b := Lane(0xF0F0F0F0F0F0F0F0), Lane(0xFF00FF00FF00FF00)

	if got, want := a.Xor(b), Lane(0x0FF00FF00FF00FF0); got != want {
		t.Errorf("Xor = %016x, want = %016x", got, want)
	}
	if got, want := a.And(b), Lane(0xF000F000F000F000); got != want {
		t.Errorf("And = %016x, want = %016x", got, want)
	}
	if got, want := a.Not(), Lane(0x0F0F0F0F0F0F0F0F); got != want {
		t.Errorf("Not = %016x, want = %016x", got, want)
	}
	if got, want := a.AndNot(b), Lane(0x0F000F000F000F00); got != want {
		t.Errorf("AndNot = %016x, want = %016x", got, want)
	}
}

func TestLoadStoreLanes(t *testing.T) {
	var state [200]byte
	for i := range state {
		state[i] = byte(i)
	}

	var a [25]Lane
	LoadLanes(&a, &state)

	if got, want := a[1], Lane(binary.LittleEndian.Uint64(state[8:])); got != want {
		t.Errorf("lane 1 = %016x, want = %016x", got, want)
	}
	if got, want := a[0], Lane(0x0706050403020100); got != want {
		t.Errorf("lane 0 = %016x, want = %016x", got, want)
	}

	var out [200]byte
	StoreLanes(&out, &a)
	if out != state {
		t.Errorf("StoreLanes(LoadLanes(s)) = %x, want = %x", out, state)
	}
}

// halvesPermute is an independent Keccak-p[1600, nr] over lanes split into 32-bit halves, indexed as A[x][y].
func halvesPermute(state *[200]byte, rounds int) {
	type pair struct{ lo, hi uint32 }

	var a [5][5]pair
	for x := range 5 {
		for y := range 5 {
			off := 8 * (x + 5*y)
			a[x][y] = pair{binary.LittleEndian.Uint32(state[off:]), binary.LittleEndian.Uint32(state[off+4:])}
		}
	}

	xor := func(p, q pair) pair { return pair{p.lo ^ q.lo, p.hi ^ q.hi} }
	rot := func(p pair, n int) pair {
		lo, hi := rotl32(p.lo, p.hi, n)
		return pair{lo, hi}
	}

	offsets := [5][5]int{
		{0, 36, 3, 41, 18},
		{1, 44, 10, 45, 2},
		{62, 6, 43, 15, 61},
		{28, 55, 25, 21, 56},
		{27, 20, 39, 8, 14},
	}

	for r := MaxRounds - rounds; r < MaxRounds; r++ {
		var c, d [5]pair
		for x := range 5 {
			c[x] = xor(xor(xor(xor(a[x][0], a[x][1]), a[x][2]), a[x][3]), a[x][4])
		}
		for x := range 5 {
			d[x] = xor(c[(x+4)%5], rot(c[(x+1)%5], 1))
		}
		for x := range 5 {
			for y := range 5 {
				a[x][y] = xor(a[x][y], d[x])
			}
		}

		var b [5][5]pair
		for x := range 5 {
			for y := range 5 {
				b[y][(2*x+3*y)%5] = rot(a[x][y], offsets[x][y])
			}
		}

		for x := range 5 {
			for y := range 5 {
				n1, n2 := b[(x+1)%5][y], b[(x+2)%5][y]
				a[x][y] = pair{b[x][y].lo ^ (^n1.lo & n2.lo), b[x][y].hi ^ (^n1.hi & n2.hi)}
			}
		}

		lo, hi := rc[r].Halves()
		a[0][0] = xor(a[0][0], pair{lo, hi})
	}

	for x := range 5 {
		for y := range 5 {
			off := 8 * (x + 5*y)
			binary.LittleEndian.PutUint32(state[off:], a[x][y].lo)
			binary.LittleEndian.PutUint32(state[off+4:], a[x][y].hi)
		}
	}
}
