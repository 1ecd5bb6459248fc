// Package xoodoo implements the Xoodoo permutation: a 384-bit state arranged
// as three planes of four 32-bit lanes, transformed by twelve rounds of five
// bitwise steps (theta, rho-west, iota, chi, rho-east).
//
// The state crosses the package boundary as twelve 32-bit words in y-major,
// x-minor order (word index x + 4*y). Permute operates on that form in place.
// The structured State type defines the same permutation one sub-step at a
// time; the two are cross-checked in the tests.
package xoodoo

import "math/bits"

// Permute applies the twelve-round permutation to a in place. It is total and
// deterministic; every bit pattern is a valid state.
func Permute(a *[Lanes]uint32) {
	for round := range Rounds {
		// Theta
		p0 := a[0] ^ a[4] ^ a[8]
		p1 := a[1] ^ a[5] ^ a[9]
		p2 := a[2] ^ a[6] ^ a[10]
		p3 := a[3] ^ a[7] ^ a[11]

		e0 := bits.RotateLeft32(p3, 5) ^ bits.RotateLeft32(p3, 14)
		e1 := bits.RotateLeft32(p0, 5) ^ bits.RotateLeft32(p0, 14)
		e2 := bits.RotateLeft32(p1, 5) ^ bits.RotateLeft32(p1, 14)
		e3 := bits.RotateLeft32(p2, 5) ^ bits.RotateLeft32(p2, 14)

		a[0] ^= e0
		a[4] ^= e0
		a[8] ^= e0
		a[1] ^= e1
		a[5] ^= e1
		a[9] ^= e1
		a[2] ^= e2
		a[6] ^= e2
		a[10] ^= e2
		a[3] ^= e3
		a[7] ^= e3
		a[11] ^= e3

		// Rho-west
		a[4], a[5], a[6], a[7] = a[7], a[4], a[5], a[6]
		a[8] = bits.RotateLeft32(a[8], 11)
		a[9] = bits.RotateLeft32(a[9], 11)
		a[10] = bits.RotateLeft32(a[10], 11)
		a[11] = bits.RotateLeft32(a[11], 11)

		// Iota
		a[0] ^= roundConstants[round]

		// Chi
		for i := range 4 {
			a0, a1, a2 := a[i], a[i+4], a[i+8]
			a[i] ^= (^a1) & a2
			a[i+4] ^= (^a2) & a0
			a[i+8] ^= (^a0) & a1
		}

		// Rho-east
		a[4] = bits.RotateLeft32(a[4], 1)
		a[5] = bits.RotateLeft32(a[5], 1)
		a[6] = bits.RotateLeft32(a[6], 1)
		a[7] = bits.RotateLeft32(a[7], 1)
		a[8], a[9], a[10], a[11] = bits.RotateLeft32(a[10], 8), bits.RotateLeft32(a[11], 8), bits.RotateLeft32(a[8], 8), bits.RotateLeft32(a[9], 8)
	}
}
