package panel

import (
	"fmt"

	"github.com/vovakirdan/panelpop/internal/core"
	"github.com/vovakirdan/panelpop/internal/games/panel/stack"
)

// Each board cell is three screen columns wide: a pad, the glyph, a pad.
// The cursor brackets sit in the outer pads of its pair.
const cellCols = 3

// hudCols is the width reserved for the score panel next to a board.
const hudCols = 16

var tileGlyphs = []rune{'♥', '●', '▲', '◆', '★', '■', '♣'}

const (
	garbageGlyph = '▒'
	breakGlyph   = '░'
	flashGlyph   = '✱'
	faceGlyph    = '◎'
)

func chainLabel(n int) string { return fmt.Sprintf("%dx CHAIN", n) }
func comboLabel(n int) string { return fmt.Sprintf("%d COMBO", n) }

// boardSize returns the framed board size in screen cells.
func boardSize(cols, visible int) (w, h int) {
	return cols*cellCols + 2, visible + 2
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.match == nil {
		return
	}

	seats := g.match.Seats()
	snap := seats[0].Board.Snapshot()
	bw, bh := boardSize(snap.Columns, snap.VisibleRows)
	need := len(seats) * (bw + hudCols)
	if dst.Width() < need || dst.Height() < bh {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", need, bh), core.ColorGray)
		return
	}

	slot := dst.Width() / len(seats)
	top := (dst.Height() - bh) / 2
	for i, s := range seats {
		if i > 0 {
			snap = s.Board.Snapshot()
		}
		left := i*slot + (slot-bw-hudCols)/2
		area := core.NewRect(left, top, bw, bh)
		g.drawBoard(dst, area, snap, s.Board.Config().Flash[snap.Level])
		g.drawHUD(dst, core.NewRect(area.Right()+1, top, hudCols-1, bh), s, snap, i)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBoard draws the visible rows of a snapshot, top row first.
func (g *Game) drawBoard(dst *core.Screen, area core.Rect, snap stack.Snapshot, flash int) {
	dst.DrawBox(area, core.ColorGray)
	inner := area.Inset(1)
	for y := 0; y < snap.VisibleRows; y++ {
		sy := inner.Bottom() - 1 - y
		for x := 0; x < snap.Columns; x++ {
			r, c := cellGlyph(snap.At(x, y), flash)
			if y == 0 {
				c = c.Dim()
			}
			dst.SetCell(inner.X+x*cellCols+1, sy, r, c)
		}
	}

	cur := snap.Cursor
	sy := inner.Bottom() - 1 - cur.Y
	dst.SetCell(inner.X+cur.X*cellCols, sy, '[', core.ColorBrightWhite)
	dst.SetCell(inner.X+(cur.X+1)*cellCols+2, sy, ']', core.ColorBrightWhite)
}

// cellGlyph picks the rune and color for one cell. A clearing cell flashes
// until flash frames have passed, shows its face until its own ClearTime,
// then stays blank until the whole group finishes.
func cellGlyph(c stack.Cell, flash int) (rune, core.Color) {
	if c.IsEmpty() && !c.IsGarbage() {
		return ' ', core.ColorDefault
	}
	if c.State == stack.StateClear && c.AnimCounter >= c.ClearTime {
		return ' ', core.ColorDefault
	}
	if c.IsGarbage() {
		if c.State == stack.StateClear {
			return breakGlyph, core.ColorWhite
		}
		return garbageGlyph, core.ColorGray
	}

	color := core.TileColor(int(c.Kind))
	glyph := tileGlyphs[int(c.Kind)%len(tileGlyphs)]
	if c.State != stack.StateClear {
		return glyph, color
	}
	switch {
	case c.AnimCounter >= flash:
		return faceGlyph, color
	case (c.AnimCounter/4)%2 == 1:
		return flashGlyph, core.ColorBrightWhite
	}
	return glyph, color
}

func (g *Game) drawHUD(dst *core.Screen, area core.Rect, s *Seat, snap stack.Snapshot, i int) {
	y := area.Y + 1
	line := func(label string, v any) {
		dst.DrawTextColor(area.X, y, label, core.ColorGray)
		dst.DrawTextColor(area.X, y+1, fmt.Sprint(v), core.ColorBrightWhite)
		y += 3
	}

	dst.DrawTextColor(area.X, area.Y, s.ID.String(), core.ColorBrightCyan)
	line("SCORE", snap.Stats.Score)
	line("LEVEL", snap.Level+1)
	line("BEST CHAIN", max(snap.Stats.HighestChain, 1))
	if g.mode == ModeVersus {
		line("WINS", s.Wins)
	}
	if len(snap.Pending) > 0 {
		dst.DrawTextColor(area.X, y, fmt.Sprintf("incoming %d", len(snap.Pending)), core.ColorOrange)
		y += 2
	}
	if snap.Lose > 0 {
		dst.DrawTextColor(area.X, y, "DANGER", core.ColorBrightRed)
	}

	if p := g.popups[i]; p.ticks > 0 {
		dst.DrawTextColor(area.X, area.Bottom()-2, p.text, core.ColorBrightYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}
