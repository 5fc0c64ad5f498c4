package stack

// Stats are the per-session statistics reported on loss.
type Stats struct {
	Score          int
	Cleared        int // tiles cleared
	Combos         int // clear groups larger than three
	MaxCombo       int
	HighestChain   int
	GarbageSent    int
	GarbageCleared int // garbage cells broken
	Raises         int
	Swaps          int
	Frames         int
}

func (s *Stats) recordClear(n, combo, chain, points int) {
	s.Score += points
	s.Cleared += n
	if combo > 3 {
		s.Combos++
	}
	s.MaxCombo = max(s.MaxCombo, combo)
	s.HighestChain = max(s.HighestChain, chain)
}
