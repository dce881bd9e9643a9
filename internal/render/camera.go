package render

// Camera translates between world coordinates and screen coordinates.
// Every glyph in the tile set is one column wide, so one tile maps to one
// terminal cell.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera with the given viewport size.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Center repositions the camera on (cx, cy) without scrolling past the
// edges of a mapW x mapH map. Maps smaller than the view stay at the origin.
func (c *Camera) Center(cx, cy, mapW, mapH int) {
	c.OffsetX = clampOffset(cx-c.ViewWidth/2, mapW-c.ViewWidth)
	c.OffsetY = clampOffset(cy-c.ViewHeight/2, mapH-c.ViewHeight)
}

func clampOffset(off, limit int) int {
	return max(0, min(off, limit))
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}
