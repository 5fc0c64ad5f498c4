package stack

import "fmt"

// Levels is the number of difficulty levels every timing table covers.
const Levels = 10

// Config holds the immutable dimensions and timing tables for a board.
// Per-level tables are indexed by difficulty level 0..Levels-1.
type Config struct {
	Columns     int // grid width
	VisibleRows int // staging row 0 plus the playfield
	HiddenRows  int // rows above the playfield where garbage drops in
	StartHeight int // initial stack height
	Kinds       int // number of distinct tile kinds

	LandTime         int // must be a multiple of 3
	SwapTime         int
	RaiseBlockedTime int // cooldown after every full-row raise
	SmoothRaise      int // offset gained per frame while raising manually
	CellHeight       int // offset units per row
	CellWidth        int // swap offset units per column

	Hover [Levels]int
	Flash [Levels]int
	Face  [Levels]int
	Pop   [Levels]int
	Raise [Levels]int // offset gained per frame at rest
	Stop  [Levels]int // frames topped out before the game is lost

	StartLevel    int
	LevelUpClears int // cleared tiles per level; 0 disables level-ups

	ComboWidths  []int // garbage width for combo 4, 5, 6, 7+
	ChainHeights []int // garbage height for chain 2, 3, 4, 5+
	ComboBonus   []int // score bonus for combo 4, 5, ...
	ChainBonus   []int // score bonus for chain 2, 3, ...

	Debug bool // check invariants after every step and panic on violation
}

// DefaultConfig returns the standard 6x12 board timing.
func DefaultConfig() Config {
	return Config{
		Columns:          6,
		VisibleRows:      13,
		HiddenRows:       12,
		StartHeight:      6,
		Kinds:            5,
		LandTime:         12,
		SwapTime:         4,
		RaiseBlockedTime: 16,
		SmoothRaise:      100,
		CellHeight:       1600,
		CellWidth:        8,
		Hover:            [Levels]int{12, 12, 11, 10, 9, 8, 7, 6, 5, 4},
		Flash:            [Levels]int{44, 44, 42, 42, 40, 38, 36, 32, 28, 24},
		Face:             [Levels]int{17, 17, 16, 15, 14, 13, 12, 11, 10, 9},
		Pop:              [Levels]int{9, 9, 9, 8, 8, 8, 8, 7, 7, 6},
		Raise:            [Levels]int{2, 3, 4, 5, 6, 7, 8, 10, 12, 14},
		Stop:             [Levels]int{120, 110, 100, 90, 80, 70, 60, 50, 40, 30},
		StartLevel:       0,
		LevelUpClears:    50,
		ComboWidths:      []int{3, 4, 5, 6},
		ChainHeights:     []int{1, 2, 3, 4},
		ComboBonus:       []int{20, 30, 50, 60, 70, 80, 100, 140, 170},
		ChainBonus:       []int{50, 80, 150, 300, 400, 500, 700, 900, 1100, 1300, 1500, 1800},
	}
}

// Rows returns the total grid height.
func (c Config) Rows() int {
	return c.VisibleRows + c.HiddenRows
}

// TopVisibleRow returns the y of the highest playfield row.
func (c Config) TopVisibleRow() int {
	return c.VisibleRows - 1
}

// Validate checks dimensions and tables for values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Columns < 3 {
		return fmt.Errorf("stack: columns must be at least 3, got %d", c.Columns)
	}
	if c.VisibleRows < 4 {
		return fmt.Errorf("stack: visible rows must be at least 4, got %d", c.VisibleRows)
	}
	if c.HiddenRows < 1 {
		return fmt.Errorf("stack: hidden rows must be at least 1, got %d", c.HiddenRows)
	}
	if c.StartHeight < 0 || c.StartHeight >= c.VisibleRows-1 {
		return fmt.Errorf("stack: start height %d out of range [0, %d)", c.StartHeight, c.VisibleRows-1)
	}
	if c.Kinds < 3 {
		return fmt.Errorf("stack: need at least 3 tile kinds, got %d", c.Kinds)
	}
	if c.LandTime <= 0 || c.LandTime%3 != 0 {
		return fmt.Errorf("stack: land time must be a positive multiple of 3, got %d", c.LandTime)
	}
	if c.SwapTime <= 0 {
		return fmt.Errorf("stack: swap time must be positive, got %d", c.SwapTime)
	}
	if c.CellHeight <= 0 || c.SmoothRaise <= 0 {
		return fmt.Errorf("stack: cell height and smooth raise must be positive")
	}
	if c.StartLevel < 0 || c.StartLevel >= Levels {
		return fmt.Errorf("stack: start level %d out of range [0, %d)", c.StartLevel, Levels)
	}
	if len(c.ComboWidths) == 0 || len(c.ChainHeights) == 0 {
		return fmt.Errorf("stack: garbage size tables must not be empty")
	}
	for lvl := 0; lvl < Levels; lvl++ {
		if c.Hover[lvl] <= 0 || c.Pop[lvl] <= 0 || c.Stop[lvl] <= 0 {
			return fmt.Errorf("stack: level %d: hover, pop and stop times must be positive", lvl)
		}
		if c.Flash[lvl] < 0 || c.Face[lvl] < 0 || c.Raise[lvl] < 0 {
			return fmt.Errorf("stack: level %d: negative timing", lvl)
		}
	}
	return nil
}

// lookup returns table[i] clamped to the table's last entry.
func lookup(table []int, i int) int {
	if len(table) == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= len(table) {
		return table[len(table)-1]
	}
	return table[i]
}
