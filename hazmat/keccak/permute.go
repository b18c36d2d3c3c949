package keccak

// rc holds the iota round constants of Keccak-f[1600]. Keccak-p[1600, nr] uses the last nr of them.
var rc = [MaxRounds]Lane{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rho holds the rotation offset of lane x+5y.
var rho = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// pi maps lane x+5y to its destination y+5*((2x+3y) mod 5).
var pi = func() (p [25]int) {
	for y := range 5 {
		for x := range 5 {
			p[x+5*y] = y + 5*((2*x+3*y)%5)
		}
	}
	return p
}()

func permute(a *[25]Lane, rounds int) {
	var b [25]Lane
	var c, d [5]Lane

	for r := MaxRounds - rounds; r < MaxRounds; r++ {
		// θ
		for x := range 5 {
			c[x] = a[x].Xor(a[x+5]).Xor(a[x+10]).Xor(a[x+15]).Xor(a[x+20])
		}
		for x := range 5 {
			d[x] = c[(x+4)%5].Xor(c[(x+1)%5].Rotl(1))
		}
		for i := range a {
			a[i] = a[i].Xor(d[i%5])
		}

		// ρ and π
		for i := range a {
			b[pi[i]] = a[i].Rotl(rho[i])
		}

		// χ
		for y := 0; y < 25; y += 5 {
			for x := range 5 {
				a[y+x] = b[y+x].Xor(b[y+(x+1)%5].AndNot(b[y+(x+2)%5]))
			}
		}

		// ι
		a[0] = a[0].Xor(rc[r])
	}
}
