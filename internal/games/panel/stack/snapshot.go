package stack

import (
	"hash/fnv"
	"reflect"
)

// Snapshot is a read-only copy of everything a renderer or a determinism
// check needs from a board.
type Snapshot struct {
	Columns     int
	Rows        int
	VisibleRows int

	Cells   []Cell
	Garbage []Garbage // ascending id order

	Cursor  Cursor
	Push    PushController
	Lose    int
	Chain   ChainTracker
	Stats   Stats
	Level   int
	Frame   uint64
	Pending []GarbageDrop
}

// Snapshot copies the current board state.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Columns:     b.cfg.Columns,
		Rows:        b.cfg.Rows(),
		VisibleRows: b.cfg.VisibleRows,
		Cells:       append([]Cell(nil), b.grid.Cells...),
		Cursor:      b.cursor,
		Push:        b.push,
		Lose:        b.lose.Counter,
		Chain:       b.chain,
		Stats:       b.stats,
		Level:       b.level,
		Frame:       b.frame,
		Pending:     append([]GarbageDrop(nil), b.pending...),
	}
	reg := b.garbage.Clone()
	for _, id := range reg.IDs() {
		s.Garbage = append(s.Garbage, *reg.Get(id))
	}
	return s
}

// At returns the cell at (x, y). The coordinate must be in range.
func (s Snapshot) At(x, y int) Cell {
	return s.Cells[y*s.Columns+x]
}

// Equal reports whether two snapshots are identical.
func (s Snapshot) Equal(o Snapshot) bool {
	return reflect.DeepEqual(s, o)
}

// Checksum hashes the simulation-relevant part of the snapshot: kinds,
// states, counters, cursor, level and score.
func (s Snapshot) Checksum() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int) {
		u := uint64(v)
		for i := range buf {
			buf[i] = byte(u >> (8 * i))
		}
		h.Write(buf[:])
	}
	for _, c := range s.Cells {
		put(int(c.Kind))
		put(int(c.State))
		put(c.Counter)
		put(int(c.Garbage))
	}
	put(s.Cursor.X)
	put(s.Cursor.Y)
	put(s.Push.Offset)
	put(s.Level)
	put(s.Stats.Score)
	put(s.Chain.LastChain)
	return h.Sum64()
}
