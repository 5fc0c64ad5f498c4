package stack

import "testing"

func TestIndexCoordsBijection(t *testing.T) {
	sizes := []struct{ cols, rows int }{
		{6, 25},
		{3, 4},
		{8, 1},
		{1, 7},
	}
	for _, s := range sizes {
		g := NewGrid(s.cols, s.rows)
		for y := 0; y < s.rows; y++ {
			for x := 0; x < s.cols; x++ {
				gx, gy := g.Coords(g.Index(x, y))
				if gx != x || gy != y {
					t.Errorf("%dx%d: Coords(Index(%d,%d)) = (%d,%d)", s.cols, s.rows, x, y, gx, gy)
				}
			}
		}
		for i := 0; i < g.Len(); i++ {
			x, y := g.Coords(i)
			if got := g.Index(x, y); got != i {
				t.Errorf("%dx%d: Index(Coords(%d)) = %d", s.cols, s.rows, i, got)
			}
		}
	}
}

func TestGridAtOutOfBounds(t *testing.T) {
	g := NewGrid(6, 4)
	for _, p := range [][2]int{{-1, 0}, {6, 0}, {0, -1}, {0, 4}} {
		if c := g.At(p[0], p[1]); c != nil {
			t.Errorf("At(%d,%d) = %+v, expected nil", p[0], p[1], c)
		}
	}
}

func TestGridMove(t *testing.T) {
	g := NewGrid(6, 4)
	from := g.Index(2, 3)
	to := g.Index(2, 2)
	g.Cells[from].Kind = 4
	g.Cells[from].Chainable = true

	g.move(from, to)

	c := g.Cells[to]
	if c.Kind != 4 || !c.Chainable {
		t.Errorf("moved cell = %+v, expected kind 4 chainable", c)
	}
	if c.X != 2 || c.Y != 2 {
		t.Errorf("moved cell at (%d,%d), expected (2,2)", c.X, c.Y)
	}
	if !g.Cells[from].IsEmpty() {
		t.Errorf("source cell not emptied: %+v", g.Cells[from])
	}
	if x, y := g.Cells[from].X, g.Cells[from].Y; x != 2 || y != 3 {
		t.Errorf("source cell coords (%d,%d), expected (2,3)", x, y)
	}
}

func TestColumnHeight(t *testing.T) {
	g := NewGrid(3, 6)
	for y := 0; y < 4; y++ {
		g.At(1, y).Kind = 0
	}
	g.At(1, 5).Kind = 0
	if h := g.ColumnHeight(1); h != 3 {
		t.Errorf("ColumnHeight(1) = %d, expected 3", h)
	}
	if h := g.ColumnHeight(0); h != 0 {
		t.Errorf("ColumnHeight(0) = %d, expected 0", h)
	}
}
