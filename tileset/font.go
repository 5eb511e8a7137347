package tileset

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jetsetilly/testdmg/video"
)

// the printable ASCII characters
const (
	FontFirst = 0x20
	FontLen   = 0x60
)

// the part of the basicfont glyph cell that is scaled to the tile. the cell is
// as wide as the advance so the rightmost column is the gap between glyphs. the
// top row and the lower part of the descender are dropped
var glyphCrop = image.Rect(0, 1, basicfont.Face7x13.Advance, 12)

// Font returns a pattern for every printable ASCII character, starting with
// the space character. Character c is pattern c-FontFirst
func Font() []video.Pattern {
	face := basicfont.Face7x13

	// the glyph mask is face.Width wide which is narrower than the advance
	cell := image.NewGray(image.Rect(0, 0, face.Advance, face.Height))
	tile := image.NewGray(image.Rect(0, 0, tileSize, tileSize))

	d := font.Drawer{
		Dst:  cell,
		Src:  image.NewUniform(color.Gray{Y: levels[3]}),
		Face: face,
	}

	paper := image.NewUniform(color.Gray{Y: levels[0]})

	ps := make([]video.Pattern, FontLen)
	for i := range ps {
		draw.Draw(cell, cell.Bounds(), paper, image.Point{}, draw.Src)
		draw.Draw(tile, tile.Bounds(), paper, image.Point{}, draw.Src)
		d.Dot = fixed.P(0, face.Ascent)
		d.DrawString(string(rune(FontFirst + i)))

		draw.NearestNeighbor.Scale(tile, tile.Bounds(), cell, glyphCrop, draw.Src, nil)

		// the glyph is drawn with the font's alpha mask, so intermediate
		// levels are rounded to ink or paper
		for j, y := range tile.Pix {
			if y < 128 {
				tile.Pix[j] = levels[3]
			} else {
				tile.Pix[j] = levels[0]
			}
		}

		// the tile only contains valid levels so Encode() can not fail
		ps[i], _ = Encode(tile, 0, 0)
	}

	return ps
}
