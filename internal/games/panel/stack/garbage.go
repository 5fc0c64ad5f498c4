package stack

import "sort"

// Garbage is a rigid rectangle of garbage cells that hangs, falls and
// clears as one unit. It owns the grouping only; the cells live in the Grid.
type Garbage struct {
	ID     GarbageID
	X, Y   int // bottom-left corner
	Width  int
	Height int

	Members []int // cell indices, ascending
	Bottom  []int // members on the bottom edge
	Top     []int // members on the top edge

	State          State // Idle, Hang, Fall or Clear
	Counter        int
	MarkedForClear bool
}

// GarbageRegistry maps ids to aggregates. Iteration is in ascending id order.
type GarbageRegistry struct {
	items  map[GarbageID]*Garbage
	nextID GarbageID
}

// NewGarbageRegistry creates an empty registry.
func NewGarbageRegistry() *GarbageRegistry {
	return &GarbageRegistry{
		items:  make(map[GarbageID]*Garbage),
		nextID: 1,
	}
}

// Get returns the aggregate with the given id, or nil.
func (r *GarbageRegistry) Get(id GarbageID) *Garbage {
	return r.items[id]
}

// Len returns the number of live aggregates.
func (r *GarbageRegistry) Len() int {
	return len(r.items)
}

// IDs returns all live ids in ascending order.
func (r *GarbageRegistry) IDs() []GarbageID {
	ids := make([]GarbageID, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *GarbageRegistry) remove(id GarbageID) {
	delete(r.items, id)
}

// Clone returns a deep copy of the registry.
func (r *GarbageRegistry) Clone() *GarbageRegistry {
	out := &GarbageRegistry{
		items:  make(map[GarbageID]*Garbage, len(r.items)),
		nextID: r.nextID,
	}
	for id, g := range r.items {
		cp := *g
		cp.Members = append([]int(nil), g.Members...)
		cp.Bottom = append([]int(nil), g.Bottom...)
		cp.Top = append([]int(nil), g.Top...)
		out.items[id] = &cp
	}
	return out
}

// place creates an aggregate covering the rectangle and stamps its cells.
// The caller guarantees the rectangle is in bounds and vacant.
func (r *GarbageRegistry) place(grid *Grid, x, y, w, h int) *Garbage {
	g := &Garbage{
		ID:     r.nextID,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		State:  StateIdle,
	}
	r.nextID++
	g.reindex(grid)
	for _, i := range g.Members {
		cx, cy := grid.Coords(i)
		grid.Cells[i] = Cell{Kind: KindGarbage, X: cx, Y: cy, Garbage: g.ID}
	}
	r.items[g.ID] = g
	return g
}

// reindex rebuilds the member and exposed-edge sets from X, Y, Width, Height.
func (g *Garbage) reindex(grid *Grid) {
	g.Members = g.Members[:0]
	g.Bottom = g.Bottom[:0]
	g.Top = g.Top[:0]
	for dy := 0; dy < g.Height; dy++ {
		for dx := 0; dx < g.Width; dx++ {
			i := grid.Index(g.X+dx, g.Y+dy)
			g.Members = append(g.Members, i)
			if dy == 0 {
				g.Bottom = append(g.Bottom, i)
			}
			if dy == g.Height-1 {
				g.Top = append(g.Top, i)
			}
		}
	}
}

// shift moves the aggregate's bookkeeping by dy rows (always ±1).
// Cell contents are moved by the caller.
func (g *Garbage) shift(grid *Grid, dy int) {
	g.Y += dy
	g.reindex(grid)
}

// head returns the lowest member index; the sweep processes the aggregate there.
func (g *Garbage) head() int {
	return g.Members[0]
}

// CanFall reports whether every cell under the bottom edge is vacant.
func (g *Garbage) CanFall(grid *Grid) bool {
	if g.Y <= 1 {
		return false
	}
	for _, i := range g.Bottom {
		if !grid.Cells[i-grid.Columns].vacant() {
			return false
		}
	}
	return true
}

// HangInfo reports whether the aggregate may hang and for how long.
// It may hang iff every cell under the bottom edge is vacant, hanging, or
// part of a hanging aggregate. frames is the maximum hang counter among
// those neighbors (0 when all are vacant).
func (g *Garbage) HangInfo(grid *Grid) (canHang bool, frames int) {
	if g.Y <= 1 {
		return false, 0
	}
	for _, i := range g.Bottom {
		n := grid.Cells[i-grid.Columns]
		switch {
		case n.vacant():
		case n.State == StateHang:
			if n.Counter > frames {
				frames = n.Counter
			}
		default:
			return false, 0
		}
	}
	return true, frames
}

// neighbors returns the distinct aggregate ids 4-adjacent to the aggregate.
func (g *Garbage) neighbors(grid *Grid) []GarbageID {
	var out []GarbageID
	seen := map[GarbageID]bool{g.ID: true}
	visit := func(x, y int) {
		c := grid.At(x, y)
		if c == nil || c.Garbage == 0 || seen[c.Garbage] {
			return
		}
		seen[c.Garbage] = true
		out = append(out, c.Garbage)
	}
	for dx := 0; dx < g.Width; dx++ {
		visit(g.X+dx, g.Y-1)
		visit(g.X+dx, g.Y+g.Height)
	}
	for dy := 0; dy < g.Height; dy++ {
		visit(g.X-1, g.Y+dy)
		visit(g.X+g.Width, g.Y+dy)
	}
	return out
}

// GarbageDrop is a request to drop an aggregate of the given size.
type GarbageDrop struct {
	Width  int
	Height int
}

// garbageSize maps a clear event to the aggregate it sends.
// Chain 1: a single row sized by combo overflow. Otherwise: full width,
// height by chain depth. Both tables clamp at their last entry.
func (c Config) garbageSize(combo, chain int) (GarbageDrop, bool) {
	if combo <= 3 && chain == 1 {
		return GarbageDrop{}, false
	}
	if chain == 1 {
		w := lookup(c.ComboWidths, combo-4)
		if w > c.Columns {
			w = c.Columns
		}
		return GarbageDrop{Width: w, Height: 1}, true
	}
	return GarbageDrop{Width: c.Columns, Height: lookup(c.ChainHeights, chain-2)}, true
}
