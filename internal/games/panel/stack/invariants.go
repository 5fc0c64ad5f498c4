package stack

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every error CheckInvariants returns.
var ErrInvariant = errors.New("stack: invariant violated")

// CheckInvariants verifies the structural consistency of the board:
// cell coordinates match their slots, counters are non-negative, and
// garbage membership agrees in both directions and mirrors the aggregate.
func (b *Board) CheckInvariants() error {
	for i := range b.grid.Cells {
		c := &b.grid.Cells[i]
		x, y := b.grid.Coords(i)
		if c.X != x || c.Y != y {
			return fmt.Errorf("%w: cell %d stores (%d,%d), slot is (%d,%d)", ErrInvariant, i, c.X, c.Y, x, y)
		}
		if c.Counter < 0 {
			return fmt.Errorf("%w: cell %d has negative counter %d", ErrInvariant, i, c.Counter)
		}
		if (c.Kind == KindGarbage) != c.IsGarbage() {
			return fmt.Errorf("%w: cell %d kind %d disagrees with garbage id %d", ErrInvariant, i, c.Kind, c.Garbage)
		}
		if !c.IsGarbage() {
			continue
		}
		g := b.garbage.Get(c.Garbage)
		if g == nil {
			return fmt.Errorf("%w: cell %d references missing aggregate %d", ErrInvariant, i, c.Garbage)
		}
		if !containsIndex(g.Members, i) {
			return fmt.Errorf("%w: cell %d not listed by aggregate %d", ErrInvariant, i, g.ID)
		}
	}

	for _, id := range b.garbage.IDs() {
		g := b.garbage.Get(id)
		if len(g.Members) != g.Width*g.Height {
			return fmt.Errorf("%w: aggregate %d has %d members for %dx%d", ErrInvariant, id, len(g.Members), g.Width, g.Height)
		}
		if g.X < 0 || g.Y < 0 || g.X+g.Width > b.grid.Columns || g.Y+g.Height > b.grid.Rows {
			return fmt.Errorf("%w: aggregate %d out of bounds", ErrInvariant, id)
		}
		k := 0
		for dy := 0; dy < g.Height; dy++ {
			for dx := 0; dx < g.Width; dx++ {
				i := b.grid.Index(g.X+dx, g.Y+dy)
				if g.Members[k] != i {
					return fmt.Errorf("%w: aggregate %d member %d is %d, expected %d", ErrInvariant, id, k, g.Members[k], i)
				}
				k++
				c := &b.grid.Cells[i]
				if c.Garbage != id {
					return fmt.Errorf("%w: aggregate %d member %d points at %d", ErrInvariant, id, i, c.Garbage)
				}
				if c.State != g.State || c.Counter != g.Counter {
					return fmt.Errorf("%w: aggregate %d member %d is %s/%d, aggregate is %s/%d",
						ErrInvariant, id, i, c.State, c.Counter, g.State, g.Counter)
				}
			}
		}
	}
	return nil
}

func containsIndex(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
