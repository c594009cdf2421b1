// Package render draws a furnished floor plan onto a tcell screen.
package render

import (
	"floorplan/internal/generate"
	"floorplan/internal/grid"
	"floorplan/internal/place"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Handle records one room block drawn by Apply so it can be cleared later.
type Handle struct {
	X, Y      int // grid cell
	VariantID string
	sx, sy    int // screen origin of the block
}

// Board materializes placements on a screen. It owns the handles of
// everything it has drawn and clears them before drawing a new layout.
type Board struct {
	screen  tcell.Screen
	camera  *Camera
	theme   Theme
	handles []Handle
}

// NewBoard creates a Board for the given screen.
func NewBoard(screen tcell.Screen, theme Theme) *Board {
	w, h := screen.Size()
	// Reserve bottom 3 rows for the status bar.
	return &Board{
		screen: screen,
		camera: NewCamera(0, 0, w, h-3),
		theme:  theme,
	}
}

// SetTheme switches the glyph set used by the next Apply.
func (b *Board) SetTheme(t Theme) { b.theme = t }

// Theme returns the current glyph set.
func (b *Board) Theme() Theme { return b.theme }

// Handles returns the blocks currently on screen.
func (b *Board) Handles() []Handle { return append([]Handle(nil), b.handles...) }

// RoomAt returns the grid cell drawn at screen (sx, sy). ok is false outside
// every block currently on screen.
func (b *Board) RoomAt(sx, sy int) (grid.Coord, bool) {
	x, y, ok := b.camera.ScreenToRoom(sx, sy)
	if !ok {
		return grid.Coord{}, false
	}
	for _, h := range b.handles {
		if h.X == x && h.Y == y {
			return grid.Coord{X: x, Y: y}, true
		}
	}
	return grid.Coord{}, false
}

// Release clears every block drawn by the previous Apply.
func (b *Board) Release() {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for _, h := range b.handles {
		for dy := 0; dy < RoomSpan; dy++ {
			for dx := 0; dx < RoomSpan*2; dx++ {
				b.screen.SetContent(h.sx+dx, h.sy+dy, ' ', nil, style)
			}
		}
	}
	b.handles = nil
}

// Apply releases the previous layout and draws one block per placement.
// It returns the handles of the new blocks.
func (b *Board) Apply(g *grid.Grid, placements []place.Placement) []Handle {
	b.Release()

	w, h := b.screen.Size()
	b.camera.ViewWidth, b.camera.ViewHeight = w, h-3
	b.camera.Fit(g.Width, g.Height)

	for _, p := range placements {
		sx, sy, onScreen := b.camera.RoomToScreen(p.X, p.Y)
		if !onScreen {
			continue
		}
		b.drawRoom(sx, sy, g.At(p.X, p.Y), p)
		b.handles = append(b.handles, Handle{X: p.X, Y: p.Y, VariantID: p.VariantID, sx: sx, sy: sy})
	}
	return b.Handles()
}

// drawRoom renders a 3x3 block: walls in the corners, a door or wall on each
// side, and the room glyph in the middle.
func (b *Board) drawRoom(sx, sy int, m grid.Marker, p place.Placement) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	put := func(col, row int, glyph string) {
		b.putGlyph(sx+col*2, sy+row, glyph, style)
	}

	if p.Err == nil && p.Category == generate.Empty {
		put(1, 1, p.Glyph)
		return
	}

	side := func(d grid.Direction) string {
		if p.Err == nil && p.Doors.Has(d) {
			return b.theme.Door
		}
		return b.theme.Wall
	}
	put(0, 0, b.theme.Wall)
	put(1, 0, side(grid.Up))
	put(2, 0, b.theme.Wall)
	put(0, 1, side(grid.Left))
	put(1, 1, b.centreGlyph(m, p))
	put(2, 1, side(grid.Right))
	put(0, 2, b.theme.Wall)
	put(1, 2, side(grid.Down))
	put(2, 2, b.theme.Wall)
}

func (b *Board) centreGlyph(m grid.Marker, p place.Placement) string {
	switch {
	case p.Err != nil:
		return b.theme.Broken
	case m == grid.PathStart:
		return b.theme.Start
	case m == grid.PathEnd:
		return b.theme.Ladder
	case p.Glyph != "" && b.theme.Name != "ascii":
		return p.Glyph
	}
	return b.theme.Floor
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y), always covering two columns.
func (b *Board) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	b.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Pad narrow glyphs so every block stays aligned.
		b.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
