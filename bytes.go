package xoodoo

import "encoding/binary"

// PermuteBytes applies the permutation to a 48-byte state with little-endian
// lanes, for callers that exchange the state as a byte buffer.
func PermuteBytes(state *[48]byte) {
	var a [Lanes]uint32
	for i := range Lanes {
		a[i] = binary.LittleEndian.Uint32(state[i*4 : i*4+4])
	}

	Permute(&a)

	for i := range Lanes {
		binary.LittleEndian.PutUint32(state[i*4:i*4+4], a[i])
	}
}
