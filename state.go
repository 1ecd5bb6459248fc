package xoodoo

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Rounds is the number of rounds the permutation applies.
	Rounds = 12

	// Lanes is the number of 32-bit lanes in the state.
	Lanes = 12
)

// A Plane is a row of four 32-bit lanes sharing a y coordinate.
type Plane [4]uint32

// A State is the full 384-bit permutation state: three planes of four lanes
// each, indexed by y.
type State [3]Plane

// A FlatState is the state serialized to 48 bytes, lane by lane in y-major,
// x-minor order with little-endian lanes. Bit i of the 384-bit sequence is
// bit i%8 of byte i/8.
type FlatState [48]byte

// Bit returns bit z of lane x, with bit 0 at the lane's low-order end.
func (p Plane) Bit(x, z int) uint32 {
	return (p[x] >> z) & 1
}

// xor returns the lane-wise XOR of p and q.
func (p Plane) xor(q Plane) Plane {
	for x := range 4 {
		p[x] ^= q[x]
	}
	return p
}

// shift cyclically moves lane x, bit z to lane (x+t)%4, bit (z+v)%32, so
// shift(0, 0) is the identity. t must be non-negative.
func (p Plane) shift(t, v int) Plane {
	var q Plane
	for x := range 4 {
		q[(x+t)%4] = bits.RotateLeft32(p[x], v)
	}
	return q
}

// Bit returns bit z of the lane at column x of plane y.
func (s State) Bit(x, y, z int) uint32 {
	return s[y].Bit(x, z)
}

// Words returns the state as twelve words, lane (x, y) at index x + 4*y.
func (s State) Words() [Lanes]uint32 {
	var w [Lanes]uint32
	for y := range 3 {
		for x := range 4 {
			w[x+4*y] = s[y][x]
		}
	}
	return w
}

// StateFromWords is the inverse of Words.
func StateFromWords(w [Lanes]uint32) State {
	var s State
	for y := range 3 {
		for x := range 4 {
			s[y][x] = w[x+4*y]
		}
	}
	return s
}

// Flatten returns the state as a flat 384-bit sequence: bit z of the lane at
// (x, y) lands at index z + 32*(x + 4*y).
func (s State) Flatten() FlatState {
	var f FlatState
	w := s.Words()
	for i := range Lanes {
		binary.LittleEndian.PutUint32(f[i*4:i*4+4], w[i])
	}
	return f
}

// Unflatten is the inverse of Flatten.
func (f FlatState) Unflatten() State {
	var w [Lanes]uint32
	for i := range Lanes {
		w[i] = binary.LittleEndian.Uint32(f[i*4 : i*4+4])
	}
	return StateFromWords(w)
}

// Bit returns bit i of the 384-bit sequence.
func (f FlatState) Bit(i int) uint32 {
	return uint32(f[i/8]>>(i%8)) & 1
}
