package stack

import "sort"

// ChainTracker holds the chain and combo counters of a board.
type ChainTracker struct {
	Chain     int // current chain, starts at 1
	LastChain int // highest chain reached this session
	Combo     int // size of the latest clear group
}

func newChainTracker() ChainTracker {
	return ChainTracker{Chain: 1, LastChain: 1}
}

// record updates the chain after a clear group. A group containing any
// chainable cell extends the chain; any other group restarts it.
func (t *ChainTracker) record(hadChainable bool) {
	if !hadChainable {
		t.Chain = 1
		return
	}
	t.Chain++
	if t.Chain > t.LastChain {
		t.LastChain = t.Chain
	}
}

type timing struct {
	flash, face, pop int
}

func (b *Board) timing() timing {
	return timing{
		flash: b.cfg.Flash[b.level],
		face:  b.cfg.Face[b.level],
		pop:   b.cfg.Pop[b.level],
	}
}

// processClears turns this frame's queued matches into staggered clears,
// updates chain and combo, marks touching garbage and reports spawned
// garbage. The queue is emptied afterwards.
func (b *Board) processClears(res *StepResult) {
	if len(b.clearQueue) == 0 {
		return
	}
	sort.Ints(b.clearQueue)

	hadChainable := false
	for _, i := range b.clearQueue {
		if b.grid.Cells[i].Chainable {
			hadChainable = true
			break
		}
	}

	t := b.timing()
	n := len(b.clearQueue)
	b.chain.Combo = 0
	for k, i := range b.clearQueue {
		b.changeState(i, StateClear)
		c := &b.grid.Cells[i]
		c.Counter = t.flash + t.face + t.pop*n
		c.ClearTime = t.flash + t.face + t.pop*k
		c.AnimCounter = 0
		c.Chainable = true
		b.chain.Combo++
	}
	b.chain.record(hadChainable)

	combo, chain := b.chain.Combo, b.chain.Chain
	res.Cleared = n
	res.Combo = combo

	b.stats.GarbageCleared += b.markGarbage(b.clearQueue)
	b.stats.recordClear(n, combo, chain, b.score(n, combo, chain))

	if drop, ok := b.cfg.garbageSize(combo, chain); ok {
		res.Garbage = append(res.Garbage, drop)
		b.stats.GarbageSent++
	}

	b.levelClears += n
	if b.cfg.LevelUpClears > 0 && b.level < Levels-1 && b.levelClears >= b.cfg.LevelUpClears {
		b.level++
		b.levelClears -= b.cfg.LevelUpClears
		res.LevelUp = true
	}

	for _, i := range b.clearQueue {
		b.queued[i] = false
	}
	b.clearQueue = b.clearQueue[:0]
}

// score returns the points for a clear group: 10 per tile plus the combo
// and chain bonuses.
func (b *Board) score(n, combo, chain int) int {
	s := 10 * n
	if combo > 3 {
		s += lookup(b.cfg.ComboBonus, combo-4)
	}
	if chain > 1 {
		s += lookup(b.cfg.ChainBonus, chain-2)
	}
	return s
}
