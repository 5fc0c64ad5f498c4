// Package stack implements the panel puzzle simulation core: the grid of
// cells, the per-cell block state machine, garbage aggregates, match
// detection, chain/combo accounting and the board raise.
//
// The package has no platform dependencies. One call to Board.Step is one
// frame and is fully deterministic for a given seed and input sequence.
package stack

// Kind identifies what occupies a cell.
// Tile kinds are small non-negative integers; KindEmpty and KindGarbage
// are sentinels.
type Kind int

const (
	KindEmpty   Kind = -1
	KindGarbage Kind = -2
)

// IsTile reports whether k is a regular matchable tile kind.
func (k Kind) IsTile() bool {
	return k >= 0
}

// State is the block state machine state of a cell.
type State uint8

const (
	StateIdle State = iota
	StateHang
	StateLand
	StateSwap
	StateClear
	StateFall
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHang:
		return "Hang"
	case StateLand:
		return "Land"
	case StateSwap:
		return "Swap"
	case StateClear:
		return "Clear"
	case StateFall:
		return "Fall"
	default:
		return "Unknown"
	}
}

// GarbageID is a lookup key into a GarbageRegistry. Zero means "not garbage".
type GarbageID uint32

// Cell is one grid slot.
type Cell struct {
	Kind      Kind
	X, Y      int
	State     State
	Counter   int // frames left in the current state
	Chainable bool
	Garbage   GarbageID

	// Presentation only.
	ClearTime   int // frame offset (from clear start) at which this cell pops
	AnimCounter int
	AnimOffset  int
	SwapDir     int // +1 moving right, -1 moving left, 0 when not swapping
}

// emptyCell returns a default empty cell at (x, y).
func emptyCell(x, y int) Cell {
	return Cell{Kind: KindEmpty, X: x, Y: y}
}

// IsEmpty reports whether the cell holds nothing.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// IsGarbage reports whether the cell belongs to a garbage aggregate.
func (c Cell) IsGarbage() bool {
	return c.Garbage != 0
}

// vacant reports whether something may move into this cell:
// empty and not half of a pending swap.
func (c Cell) vacant() bool {
	return c.Kind == KindEmpty && c.State != StateSwap
}
