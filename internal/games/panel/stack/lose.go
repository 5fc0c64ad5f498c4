package stack

// LoseCounter counts consecutive frames spent topped out.
type LoseCounter struct {
	Counter int
}

// Step advances the counter and reports whether the board has lost.
// It counts while a resting block sits on the top row and nothing is
// clearing, and starts over otherwise.
func (l *LoseCounter) Step(topBlocks, clears bool, limit int) bool {
	if !topBlocks || clears {
		l.Counter = 0
		return false
	}
	l.Counter++
	if l.Counter > limit {
		l.Counter = 0
		return true
	}
	return false
}
