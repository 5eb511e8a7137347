package lcd

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/jetsetilly/testdmg/gui"
	"github.com/jetsetilly/testdmg/hardware/spec"
	"golang.org/x/image/draw"
)

type frame struct {
	debug   bool
	top     int
	bottom  int
	left    int
	right   int
	main    *image.RGBA
	overlay *image.RGBA
}

func (l *LCD) newFrame() {
	l.prevFrame = l.currentFrame

	l.currentFrame.debug = l.ctx.UseOverlay()
	if l.currentFrame.debug {
		// the debugging frame shows every dot of every scanline
		l.currentFrame.left = 0
		l.currentFrame.right = spec.ClksScanline
		l.currentFrame.top = 0
		l.currentFrame.bottom = spec.ScanlinesTotal
	} else {
		l.currentFrame.left = spec.ClksOAMScan
		l.currentFrame.right = spec.ClksOAMScan + spec.PixelsVisible
		l.currentFrame.top = 0
		l.currentFrame.bottom = spec.ScanlinesVisible
	}

	r := image.Rect(0, 0,
		l.currentFrame.right-l.currentFrame.left,
		l.currentFrame.bottom-l.currentFrame.top,
	)

	l.currentFrame.main = image.NewRGBA(r)
	draw.Draw(l.currentFrame.main, r, &image.Uniform{l.Spec.Off}, image.Point{}, draw.Src)

	if l.currentFrame.debug {
		l.currentFrame.overlay = image.NewRGBA(r)
	} else {
		l.currentFrame.overlay = nil
	}
}

func (l *LCD) endFrame() {
	l.Coords.Frame++
	if l.limit != nil {
		l.limit.Wait()
	}
	l.PushRender()

	// it's no longer safe to use that frame in this context. create a new
	// image to use for current frame
	l.newFrame()
}

// PushRender sends the current frame to the user interface. The send does not
// block and the frame is dropped if the user interface is busy
func (l *LCD) PushRender() {
	if l.g == nil {
		return
	}

	var cursor = [2]int{
		l.Coords.Clk - l.currentFrame.left,
		l.Coords.Scanline - l.currentFrame.top,
	}

	select {
	case l.g.SetImage <- gui.Image{
		Main:    l.currentFrame.main,
		Overlay: l.currentFrame.overlay,
		Prev:    l.prevFrame.main,
		ID:      l.Coords.ShortString(),
		Cursor:  cursor,
	}:
	default:
	}
}

// LastFrame returns the most recently completed frame
func (l *LCD) LastFrame() *image.RGBA {
	return l.prevFrame.main
}

// CurrentFrame returns the frame currently being drawn
func (l *LCD) CurrentFrame() *image.RGBA {
	return l.currentFrame.main
}

func (l *LCD) peek(address uint16) uint8 {
	v, err := l.mem.Peek(address)
	if err != nil {
		l.ctx.Break(fmt.Errorf("%w: %w", ContextError, err))
	}
	return v
}

// the colour index of a single pixel of a tile. the address is that of the
// first byte of the tile
func (l *LCD) tilePixel(address uint16, x uint8, y uint8) uint8 {
	lo := l.peek(address + uint16(y)*2)
	hi := l.peek(address + uint16(y)*2 + 1)
	b := 7 - x
	return (lo>>b)&0x01 | ((hi>>b)&0x01)<<1
}

// the address of the tile for background and window tiles
func (l *LCD) bgTileAddress(tile uint8) uint16 {
	if l.lcdc&lcdcTileData == lcdcTileData {
		return 0x8000 + uint16(tile)*16
	}
	return uint16(0x9000 + int(int8(tile))*16)
}

func (l *LCD) shade(palette uint8, c uint8) color.RGBA {
	return l.Spec.Palette[(palette>>(c*2))&0x03]
}

type object struct {
	idx   int
	y     int
	x     int
	tile  uint8
	flags uint8
}

// bits of the object attribute byte
const (
	objPriority = 0x80
	objYFlip    = 0x40
	objXFlip    = 0x20
	objPalette  = 0x10
)

// the maximum number of objects on a single scanline
const maxObjectsPerLine = 10

// the objects that appear on the scanline in priority order
func (l *LCD) selectObjects(scanline int, height int) []object {
	var objs []object
	for i := 0; i < 40 && len(objs) < maxObjectsPerLine; i++ {
		a := uint16(0xfe00 + i*4)
		y := int(l.peek(a)) - 16
		if scanline >= y && scanline < y+height {
			objs = append(objs, object{
				idx:   i,
				y:     y,
				x:     int(l.peek(a+1)) - 8,
				tile:  l.peek(a + 2),
				flags: l.peek(a + 3),
			})
		}
	}

	// objects with a lower x coordinate have priority. the sort is stable so
	// objects with the same x coordinate remain in OAM order
	slices.SortStableFunc(objs, func(a, b object) int {
		return a.x - b.x
	})

	return objs
}

func (l *LCD) renderScanline() {
	y := l.Coords.Scanline
	if y >= spec.ScanlinesVisible {
		return
	}

	// colour indexes of the background and window before the palette is
	// applied. the object priority bit depends on these values
	var bg [spec.PixelsVisible]uint8

	if l.lcdc&lcdcBGEnable == lcdcBGEnable {
		var m uint16 = 0x9800
		if l.lcdc&lcdcBGMap == lcdcBGMap {
			m = 0x9c00
		}
		py := uint8(y) + l.scy
		for x := range spec.PixelsVisible {
			px := uint8(x) + l.scx
			tile := l.peek(m + uint16(py/8)*32 + uint16(px/8))
			bg[x] = l.tilePixel(l.bgTileAddress(tile), px%8, py%8)
		}

		if l.lcdc&lcdcWinEnable == lcdcWinEnable && y >= int(l.wy) && l.wx < 167 {
			var m uint16 = 0x9800
			if l.lcdc&lcdcWinMap == lcdcWinMap {
				m = 0x9c00
			}
			wx := int(l.wx) - 7
			py := l.windowLine
			for x := max(wx, 0); x < spec.PixelsVisible; x++ {
				px := x - wx
				tile := l.peek(m + uint16(py/8)*32 + uint16(px/8))
				bg[x] = l.tilePixel(l.bgTileAddress(tile), uint8(px%8), uint8(py%8))
			}
			l.windowLine++
		}
	}

	var objs []object
	height := 8
	if l.lcdc&lcdcObjEnable == lcdcObjEnable {
		if l.lcdc&lcdcObjSize == lcdcObjSize {
			height = 16
		}
		objs = l.selectObjects(y, height)
	}

	fx := spec.ClksOAMScan - l.currentFrame.left
	fy := y - l.currentFrame.top

	for x := range spec.PixelsVisible {
		col := l.shade(l.bgp, bg[x])

		for _, o := range objs {
			if x < o.x || x >= o.x+8 {
				continue
			}

			row := y - o.y
			if o.flags&objYFlip == objYFlip {
				row = height - 1 - row
			}
			column := x - o.x
			if o.flags&objXFlip == objXFlip {
				column = 7 - column
			}

			tile := o.tile
			if height == 16 {
				tile &= 0xfe
			}

			c := l.tilePixel(0x8000+uint16(tile)*16, uint8(column), uint8(row))
			if c == 0 {
				// transparent. an object with lower priority may be visible
				continue
			}

			if o.flags&objPriority == 0 || bg[x] == 0 {
				if o.flags&objPalette == objPalette {
					col = l.shade(l.obp1, c)
				} else {
					col = l.shade(l.obp0, c)
				}
			}
			break // for range objs
		}

		l.currentFrame.main.Set(fx+x, fy, col)
	}
}
