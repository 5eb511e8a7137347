package video

// Viewport is the scroll position of the background
type Viewport struct {
	hw   Hardware
	x, y uint8

	// the index of the map cell at the top left of the screen
	base uint16
}

// SetScroll sets the scroll registers and recalculates the tile base
func (v *Viewport) SetScroll(x uint8, y uint8) {
	v.x = x
	v.y = y
	v.hw.Write(RegScrollX, x)
	v.hw.Write(RegScrollY, y)
	v.base = uint16(x/8) + MapWidth*uint16(y/8)
}

// ShiftScroll moves the scroll position relative to the current position. The
// position wraps in both directions
func (v *Viewport) ShiftScroll(dx int8, dy int8) {
	v.SetScroll(v.x+uint8(dx), v.y+uint8(dy))
}

// Scroll returns the current scroll position
func (v *Viewport) Scroll() (uint8, uint8) {
	return v.x, v.y
}

// TileBase returns the index of the map cell at the top left of the screen
func (v *Viewport) TileBase() uint16 {
	return v.base
}
