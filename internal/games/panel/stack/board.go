package stack

// Board is one playfield: the grid, its garbage, the push and loss
// controllers, the cursor and the session statistics.
type Board struct {
	cfg     Config
	grid    *Grid
	garbage *GarbageRegistry
	gen     Generator

	level       int
	levelClears int
	frame       uint64

	cursor Cursor
	push   PushController
	lose   LoseCounter
	chain  ChainTracker
	stats  Stats

	pending   []GarbageDrop
	dropRight bool

	clearQueue []int
	queued     []bool
	stepped    []bool
}

// StepResult reports what happened during one frame.
type StepResult struct {
	Frame   uint64
	Cleared int // tiles that entered Clear this frame
	Combo   int
	Chain   int
	Garbage []GarbageDrop // garbage spawned by this frame's clears
	Raised  bool
	LevelUp bool
	Loss    *LossEvent // set when the board lost and was reset
}

// LossEvent is emitted when a board tops out for too long.
type LossEvent struct {
	Stats Stats
	Level int
	Frame uint64
}

// NewBoard creates a board filled with a fresh random stack.
func NewBoard(cfg Config, gen Generator) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Columns * cfg.Rows()
	b := &Board{
		cfg:     cfg,
		gen:     gen,
		queued:  make([]bool, n),
		stepped: make([]bool, n),
	}
	b.Reset()
	return b, nil
}

// Reset restores the board to a freshly generated stack at the start level.
// The frame counter keeps running.
func (b *Board) Reset() {
	b.grid = NewGrid(b.cfg.Columns, b.cfg.Rows())
	b.garbage = NewGarbageRegistry()
	b.level = b.cfg.StartLevel
	b.levelClears = 0
	b.cursor = newCursor(b.cfg)
	b.push = PushController{}
	b.lose = LoseCounter{}
	b.chain = newChainTracker()
	b.stats = Stats{}
	b.pending = nil
	b.dropRight = false
	b.clearQueue = b.clearQueue[:0]
	for i := range b.queued {
		b.queued[i] = false
	}
	b.fill()
}

// fill generates the staging row and the starting stack.
func (b *Board) fill() {
	cols := b.cfg.Columns
	heights := make([]int, cols)
	for x := range heights {
		heights[x] = max(0, b.cfg.StartHeight-b.gen.Intn(3))
	}
	for x := 0; x < cols; x++ {
		b.grid.Cells[x].Kind = b.gen.Kind(b.grid, x, 0)
	}
	for y := 1; y <= b.cfg.StartHeight; y++ {
		for x := 0; x < cols; x++ {
			if y <= heights[x] {
				b.grid.At(x, y).Kind = b.gen.Kind(b.grid, x, y)
			}
		}
	}
}

// Step advances the board by one frame. The pipeline order is fixed:
// input, push, cell tick, match detection, clear processing, garbage
// drop, loss check.
func (b *Board) Step(in Input) StepResult {
	b.frame++
	b.stats.Frames++
	res := StepResult{Frame: b.frame}

	b.handleInput(in)

	frozen := b.anyClears() || b.toppedOut() || !b.grid.RowEmpty(b.grid.Rows-1)
	if b.push.Step(in.Raise, frozen, b.cfg, b.level) {
		b.raise()
		b.stats.Raises++
		res.Raised = true
	}

	b.tickCells()
	b.detectMatches()
	b.processClears(&res)
	b.dropPending()

	res.Chain = b.chain.Chain
	if b.lose.Step(b.anyTopBlocks(), b.anyClears(), b.cfg.Stop[b.level]) {
		res.Loss = &LossEvent{Stats: b.stats, Level: b.level, Frame: b.frame}
		b.Reset()
	}

	if b.cfg.Debug {
		if err := b.CheckInvariants(); err != nil {
			panic(err)
		}
	}
	return res
}

func (b *Board) handleInput(in Input) {
	dx, dy := 0, 0
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy++
	}
	if in.Down {
		dy--
	}
	b.cursor.Move(dx, dy, b.cfg)
	if in.Swap {
		i := b.grid.Index(b.cursor.X, b.cursor.Y)
		if b.canSwap(i) {
			b.startSwap(i)
			b.stats.Swaps++
		}
	}
}

// canSwap reports whether the pair at i, i+1 may be exchanged: no garbage,
// not both empty, both at rest, and nothing hanging or falling above an
// empty side.
func (b *Board) canSwap(i int) bool {
	j := i + 1
	l, r := b.grid.Cells[i], b.grid.Cells[j]
	if l.IsGarbage() || r.IsGarbage() {
		return false
	}
	if l.IsEmpty() && r.IsEmpty() {
		return false
	}
	if l.State != StateIdle || r.State != StateIdle {
		return false
	}
	for _, k := range [2]int{i, j} {
		if !b.grid.Cells[k].IsEmpty() {
			continue
		}
		if a := b.grid.above(k); a >= 0 {
			s := b.grid.Cells[a].State
			if s == StateHang || s == StateFall {
				return false
			}
		}
	}
	return true
}

// raise shifts every cell and aggregate up one row, regenerates the
// staging row and moves the cursor with the stack. The caller guarantees
// the top grid row is empty.
func (b *Board) raise() {
	cols := b.cfg.Columns
	for i := len(b.grid.Cells) - cols - 1; i >= 0; i-- {
		b.grid.move(i, i+cols)
	}
	for _, id := range b.garbage.IDs() {
		b.garbage.Get(id).shift(b.grid, 1)
	}
	for x := 0; x < cols; x++ {
		b.grid.Cells[x].Kind = b.gen.Kind(b.grid, x, 0)
	}
	b.cursor.Move(0, 1, b.cfg)
}

// QueueGarbage schedules aggregates to drop into the hidden rows.
func (b *Board) QueueGarbage(drops ...GarbageDrop) {
	b.pending = append(b.pending, drops...)
}

// dropPending places queued garbage at the top of the hidden rows,
// alternating left and right alignment, as long as the target is empty.
func (b *Board) dropPending() {
	for len(b.pending) > 0 {
		d := b.pending[0]
		w := min(max(d.Width, 1), b.cfg.Columns)
		h := min(max(d.Height, 1), b.cfg.HiddenRows)
		x := 0
		if b.dropRight {
			x = b.cfg.Columns - w
		}
		y := b.cfg.Rows() - h
		if !b.rectVacant(x, y, w, h) {
			return
		}
		g := b.garbage.place(b.grid, x, y, w, h)
		for _, i := range g.Members {
			b.stepped[i] = true
		}
		b.dropRight = !b.dropRight
		b.pending = b.pending[1:]
	}
}

func (b *Board) rectVacant(x, y, w, h int) bool {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if !b.grid.At(x+dx, y+dy).vacant() {
				return false
			}
		}
	}
	return true
}

// anyClears reports whether any cell is mid-clear.
func (b *Board) anyClears() bool {
	for i := range b.grid.Cells {
		if b.grid.Cells[i].State == StateClear {
			return true
		}
	}
	return false
}

// toppedOut reports whether any column reaches the top visible row.
func (b *Board) toppedOut() bool {
	return !b.grid.RowEmpty(b.cfg.TopVisibleRow())
}

// anyTopBlocks reports whether a resting block occupies the top visible row.
func (b *Board) anyTopBlocks() bool {
	y := b.cfg.TopVisibleRow()
	for x := 0; x < b.cfg.Columns; x++ {
		c := b.grid.At(x, y)
		if !c.IsEmpty() && c.State == StateIdle {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the board, including its generator.
func (b *Board) Clone() *Board {
	cp := *b
	cp.grid = b.grid.Clone()
	cp.garbage = b.garbage.Clone()
	cp.gen = b.gen.Clone()
	cp.pending = append([]GarbageDrop(nil), b.pending...)
	cp.clearQueue = append([]int(nil), b.clearQueue...)
	cp.queued = append([]bool(nil), b.queued...)
	cp.stepped = append([]bool(nil), b.stepped...)
	return &cp
}

// Config returns the board configuration.
func (b *Board) Config() Config { return b.cfg }

// Level returns the current difficulty level.
func (b *Board) Level() int { return b.level }

// Stats returns the session statistics so far.
func (b *Board) Stats() Stats { return b.stats }

// Frame returns the number of frames stepped.
func (b *Board) Frame() uint64 { return b.frame }

// Cursor returns the cursor position.
func (b *Board) Cursor() Cursor { return b.cursor }

// Pending returns the number of garbage drops waiting for room.
func (b *Board) Pending() int { return len(b.pending) }
