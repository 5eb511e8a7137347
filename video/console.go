package video

// control codes understood by Console.Write()
const (
	backspace      = '\b'
	newline        = '\n'
	carriageReturn = '\r'
	verticalTab    = '\v'
)

// Console is a cursor addressed text console. Characters are written as tiles
// to the tile map at the position of the cursor relative to the viewport
type Console struct {
	hw   Hardware
	gate *VBlankGate
	view *Viewport

	x, y           uint8
	xLimit, yLimit uint8

	// added to every character before it is written as a tile
	codePage uint8

	// the tile map written to
	tileMap uint16
}

// SetCursor moves the cursor. The position must be inside the cursor limits
func (c *Console) SetCursor(x uint8, y uint8) {
	c.x = x
	c.y = y
}

func (c *Console) Cursor() (uint8, uint8) {
	return c.x, c.y
}

// Home moves the cursor to the top left
func (c *Console) Home() {
	c.x = 0
	c.y = 0
}

// SetLimits sets the size of the console in cells. The cursor is not moved
func (c *Console) SetLimits(xLimit uint8, yLimit uint8) {
	c.xLimit = xLimit
	c.yLimit = yLimit
}

func (c *Console) Limits() (uint8, uint8) {
	return c.xLimit, c.yLimit
}

// SetCodePage sets the value added to characters by Write()
func (c *Console) SetCodePage(base uint8) {
	c.codePage = base
}

func (c *Console) CodePage() uint8 {
	return c.codePage
}

// SetTileMap selects the tile map that the console writes to. Should be one of
// TileMap0 or TileMap1
func (c *Console) SetTileMap(address uint16) {
	c.tileMap = address
}

// Cell returns the map cell that the next PutTile() will write to
func (c *Console) Cell() uint16 {
	base := c.view.TileBase()
	cell := base + MapWidth*uint16(c.y) + uint16(c.x)

	// keep the line on the same map row when the viewport and the cursor
	// together cross the right edge of the map
	if base%MapWidth+uint16(c.x) >= MapWidth {
		cell -= MapWidth
	}

	return cell % MapCells
}

// PutTile writes the tile at the cursor and advances the cursor. The cursor
// wraps to the top left when it passes the bottom right
func (c *Console) PutTile(tile uint8) {
	cell := c.Cell()
	if c.gate.Scanning() {
		c.gate.Wait()
	}
	c.hw.Write(c.tileMap+cell, tile)
	c.IncCursor()
}

// IncCursor advances the cursor by one cell
func (c *Console) IncCursor() {
	c.x++
	if c.x >= c.xLimit {
		c.x = 0
		c.y++
		if c.y >= c.yLimit {
			c.y = 0
		}
	}
}

// DecCursor moves the cursor back by one cell. It is the inverse of
// IncCursor()
func (c *Console) DecCursor() {
	if c.x > 0 {
		c.x--
		return
	}
	c.x = c.xLimit - 1
	if c.y > 0 {
		c.y--
	} else {
		c.y = c.yLimit - 1
	}
}

// Write implements the io.Writer interface. Control codes move the cursor and
// bytes of 0x80 and above are ignored. All other bytes are written as tiles
// with the code page added.
//
// Write never fails and always returns len(p)
func (c *Console) Write(p []byte) (int, error) {
	for _, b := range p {
		switch b {
		case backspace:
			c.DecCursor()
		case newline:
			c.x = 0
			c.nextRow()
		case carriageReturn:
			c.x = 0
		case verticalTab:
			c.nextRow()
		default:
			if b < 0x80 {
				c.PutTile(b + c.codePage)
			}
		}
	}
	return len(p), nil
}

func (c *Console) nextRow() {
	c.y++
	if c.y >= c.yLimit {
		c.y = 0
	}
}
