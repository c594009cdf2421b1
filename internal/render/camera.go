package render

// RoomSpan is the side of the glyph block one room is drawn as.
const RoomSpan = 3

// Camera translates between grid coordinates and screen coordinates.
// Each glyph is 2 terminal columns wide, and grid Y grows upward while
// screen Y grows downward.
type Camera struct {
	OriginX    int // screen column of the top-left room block
	OriginY    int // screen row of the top-left room block
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	GridWidth  int
	GridHeight int
}

// NewCamera creates a camera that centres a gridW x gridH plan in the view.
func NewCamera(gridW, gridH, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Fit(gridW, gridH)
	return c
}

// Fit recentres the camera on a gridW x gridH plan. Plans larger than the
// view are anchored at the top-left instead.
func (c *Camera) Fit(gridW, gridH int) {
	c.GridWidth, c.GridHeight = gridW, gridH
	c.OriginX = max(0, (c.ViewWidth-gridW*RoomSpan*2)/2)
	c.OriginY = max(0, (c.ViewHeight-gridH*RoomSpan)/2)
}

// RoomToScreen returns the top-left screen cell of room (x, y)'s block.
// visible is false when any part of the block falls outside the view.
func (c *Camera) RoomToScreen(x, y int) (sx, sy int, visible bool) {
	sx = c.OriginX + x*RoomSpan*2
	sy = c.OriginY + (c.GridHeight-1-y)*RoomSpan
	visible = sx >= 0 && sx+RoomSpan*2 <= c.ViewWidth && sy >= 0 && sy+RoomSpan <= c.ViewHeight
	return
}

// ScreenToRoom converts screen (sx, sy) to the room whose block contains it.
// ok is false when that room lies outside the plan.
func (c *Camera) ScreenToRoom(sx, sy int) (x, y int, ok bool) {
	x = floorDiv(sx-c.OriginX, RoomSpan*2)
	y = c.GridHeight - 1 - floorDiv(sy-c.OriginY, RoomSpan)
	ok = x >= 0 && x < c.GridWidth && y >= 0 && y < c.GridHeight
	return
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
