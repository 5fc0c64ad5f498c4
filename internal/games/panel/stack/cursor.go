package stack

// Cursor selects the horizontal pair (X, Y) and (X+1, Y).
type Cursor struct {
	X, Y int
}

func newCursor(cfg Config) Cursor {
	return Cursor{
		X: (cfg.Columns - 2) / 2,
		Y: max(1, cfg.StartHeight/2),
	}
}

// Move shifts the cursor and clamps it to the playfield.
func (c *Cursor) Move(dx, dy int, cfg Config) {
	c.X = min(max(c.X+dx, 0), cfg.Columns-2)
	c.Y = min(max(c.Y+dy, 1), cfg.TopVisibleRow())
}

// Input is one player's signals for one frame.
type Input struct {
	Left, Right, Up, Down bool
	Swap                  bool
	Raise                 bool // held
}

const (
	bitLeft uint8 = 1 << iota
	bitRight
	bitUp
	bitDown
	bitSwap
	bitRaise
)

// Bits packs the input into one byte for recording.
func (in Input) Bits() uint8 {
	var b uint8
	for _, f := range []struct {
		on  bool
		bit uint8
	}{
		{in.Left, bitLeft},
		{in.Right, bitRight},
		{in.Up, bitUp},
		{in.Down, bitDown},
		{in.Swap, bitSwap},
		{in.Raise, bitRaise},
	} {
		if f.on {
			b |= f.bit
		}
	}
	return b
}

// InputFromBits is the inverse of Input.Bits.
func InputFromBits(b uint8) Input {
	return Input{
		Left:  b&bitLeft != 0,
		Right: b&bitRight != 0,
		Up:    b&bitUp != 0,
		Down:  b&bitDown != 0,
		Swap:  b&bitSwap != 0,
		Raise: b&bitRaise != 0,
	}
}
