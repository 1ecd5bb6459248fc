package xoodoo

var roundConstants = [Rounds]uint32{ //nolint:gochecknoglobals // these are constants
	0x058, 0x038, 0x3c0, 0x0d0,
	0x120, 0x014, 0x060, 0x02c,
	0x380, 0x0f0, 0x1a0, 0x012,
}

// theta folds the column parity of the three planes through two shifted
// copies and XORs the result into every plane.
func (s State) theta() State {
	var p Plane
	for x := range 4 {
		p[x] = s[0][x] ^ s[1][x] ^ s[2][x]
	}
	e := p.shift(1, 5).xor(p.shift(1, 14))
	for y := range 3 {
		s[y] = s[y].xor(e)
	}
	return s
}

// rhoWest rotates plane 1 by one lane and plane 2 by eleven bits.
func (s State) rhoWest() State {
	s[1] = s[1].shift(1, 0)
	s[2] = s[2].shift(0, 11)
	return s
}

// iota XORs the round constant for round i into lane 0 of plane 0.
func (s State) iota(i int) State {
	s[0][0] ^= roundConstants[i]
	return s
}

// chi is the only nonlinear step: each plane absorbs the complement-AND of
// the other two, lane-wise and bit-wise.
func (s State) chi() State {
	for x := range 4 {
		a0, a1, a2 := s[0][x], s[1][x], s[2][x]
		s[0][x] ^= ^a1 & a2
		s[1][x] ^= ^a2 & a0
		s[2][x] ^= ^a0 & a1
	}
	return s
}

// rhoEast rotates plane 1 by one bit and plane 2 by two lanes and eight bits.
func (s State) rhoEast() State {
	s[1] = s[1].shift(0, 1)
	s[2] = s[2].shift(2, 8)
	return s
}

// round applies the five sub-steps of round i in their fixed order.
func (s State) round(i int) State {
	return s.theta().rhoWest().iota(i).chi().rhoEast()
}

// permute chains all twelve rounds, one sub-step at a time. Permute computes
// the same function unrolled.
func (s State) permute() State {
	for i := range Rounds {
		s = s.round(i)
	}
	return s
}
