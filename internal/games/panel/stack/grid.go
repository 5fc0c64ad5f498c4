package stack

// Grid is the fixed pool of cells addressed in row-major order:
// index = y*Columns + x, with y = 0 at the bottom.
type Grid struct {
	Columns int
	Rows    int
	Cells   []Cell
}

// NewGrid creates a grid with every cell empty.
func NewGrid(columns, rows int) *Grid {
	g := &Grid{
		Columns: columns,
		Rows:    rows,
		Cells:   make([]Cell, columns*rows),
	}
	for i := range g.Cells {
		x, y := g.Coords(i)
		g.Cells[i] = emptyCell(x, y)
	}
	return g
}

// Index converts a coordinate to a flat index.
func (g *Grid) Index(x, y int) int {
	return y*g.Columns + x
}

// Coords converts a flat index back to a coordinate.
func (g *Grid) Coords(i int) (x, y int) {
	return i % g.Columns, i / g.Columns
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Columns && y >= 0 && y < g.Rows
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.Cells)
}

// At returns a pointer to the cell at (x, y), or nil if out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.Cells[g.Index(x, y)]
}

// below returns the index under i, or -1 on the bottom row.
func (g *Grid) below(i int) int {
	if i < g.Columns {
		return -1
	}
	return i - g.Columns
}

// above returns the index over i, or -1 on the top row.
func (g *Grid) above(i int) int {
	if i+g.Columns >= len(g.Cells) {
		return -1
	}
	return i + g.Columns
}

// clear resets the cell at i to empty, keeping its slot coordinates.
func (g *Grid) clear(i int) {
	x, y := g.Coords(i)
	g.Cells[i] = emptyCell(x, y)
}

// move relocates the full contents of cell from into slot to and empties from.
func (g *Grid) move(from, to int) {
	x, y := g.Coords(to)
	c := g.Cells[from]
	c.X, c.Y = x, y
	g.Cells[to] = c
	g.clear(from)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Columns: g.Columns,
		Rows:    g.Rows,
		Cells:   cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Columns != other.Columns || g.Rows != other.Rows {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// RowEmpty reports whether every cell in row y is empty.
func (g *Grid) RowEmpty(y int) bool {
	for x := 0; x < g.Columns; x++ {
		if !g.Cells[g.Index(x, y)].IsEmpty() {
			return false
		}
	}
	return true
}

// ColumnHeight returns the number of occupied rows above the staging row
// in column x, counting up to the first gap.
func (g *Grid) ColumnHeight(x int) int {
	h := 0
	for y := 1; y < g.Rows; y++ {
		if g.Cells[g.Index(x, y)].IsEmpty() {
			break
		}
		h++
	}
	return h
}
