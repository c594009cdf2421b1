package render

import "github.com/gdamore/tcell/v2"

// DrawStatus renders a separator and up to two status lines at the bottom of
// the screen, then shows the frame.
func (b *Board) DrawStatus(lines ...string) {
	_, screenH := b.screen.Size()
	hudY := screenH - 3

	b.drawHLine(hudY, tcell.ColorGray)
	for i := 0; i < 2; i++ {
		b.clearLine(hudY + 1 + i)
		if i < len(lines) {
			b.drawText(0, hudY+1+i, lines[i], tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
	}

	b.screen.Show()
}

func (b *Board) drawHLine(y int, color tcell.Color) {
	w, _ := b.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		b.screen.SetContent(x, y, '─', nil, style)
	}
}

func (b *Board) clearLine(y int) {
	w, _ := b.screen.Size()
	for x := 0; x < w; x++ {
		b.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

func (b *Board) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		b.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
