package xoodoo

// StepsPerRound is the number of sub-steps Trace records per round.
const StepsPerRound = 5

// StepNames names the five sub-steps in application order.
var StepNames = [StepsPerRound]string{"theta", "rho-west", "iota", "chi", "rho-east"} //nolint:gochecknoglobals // fixed schedule

// Trace applies the permutation to initial, recording the state after every
// sub-step of every round. The result has Rounds*StepsPerRound entries; the
// last one is Permute's output for the same input.
func Trace(initial [Lanes]uint32) [][Lanes]uint32 {
	out := make([][Lanes]uint32, 0, Rounds*StepsPerRound)
	s := StateFromWords(initial)
	for i := range Rounds {
		s = s.theta()
		out = append(out, s.Words())
		s = s.rhoWest()
		out = append(out, s.Words())
		s = s.iota(i)
		out = append(out, s.Words())
		s = s.chi()
		out = append(out, s.Words())
		s = s.rhoEast()
		out = append(out, s.Words())
	}
	return out
}
