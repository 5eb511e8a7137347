// Package tileset converts images into tile patterns. Images must be made up
// of the four grey levels 0, 85, 170 and 255, which are colours 3, 2, 1 and 0
// respectively. Both dimensions of the image must be a multiple of eight.
// Tiles are read left to right and then top to bottom.
package tileset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/jetsetilly/testdmg/video"
)

// Sentinel errors returned by the package
var (
	ErrLevel = errors.New("invalid grey level")
	ErrSize  = errors.New("invalid image size")
)

// the size of a tile in pixels
const tileSize = 8

// the grey level for each colour
var levels = [4]uint8{255, 170, 85, 0}

func colour(c color.Color) (uint8, error) {
	g := color.GrayModel.Convert(c).(color.Gray)
	for i, l := range levels {
		if g.Y == l {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrLevel, g.Y)
}

// Encode the 8x8 block of the image with the top left corner at x, y
func Encode(img image.Image, x int, y int) (video.Pattern, error) {
	var p video.Pattern
	for row := range tileSize {
		bit := uint8(0x80)
		for col := range tileSize {
			c, err := colour(img.At(x+col, y+row))
			if err != nil {
				return p, fmt.Errorf("tileset: pixel %d,%d: %w", x+col, y+row, err)
			}
			if c&0x01 == 0x01 {
				p[row*2] |= bit
			}
			if c&0x02 == 0x02 {
				p[row*2+1] |= bit
			}
			bit >>= 1
		}
	}
	return p, nil
}

// Decode the pattern into an 8x8 image
func Decode(p video.Pattern) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, tileSize, tileSize))
	for row := range tileSize {
		lo := p[row*2]
		hi := p[row*2+1]
		for col := range tileSize {
			bit := uint8(0x80) >> col
			var c uint8
			if lo&bit == bit {
				c |= 0x01
			}
			if hi&bit == bit {
				c |= 0x02
			}
			img.SetGray(col, row, color.Gray{Y: levels[c]})
		}
	}
	return img
}

// FromImage converts every tile in the image
func FromImage(img image.Image) ([]video.Pattern, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || b.Dx()%tileSize != 0 || b.Dy()%tileSize != 0 {
		return nil, fmt.Errorf("tileset: %w: %dx%d", ErrSize, b.Dx(), b.Dy())
	}

	var ps []video.Pattern
	for y := b.Min.Y; y < b.Max.Y; y += tileSize {
		for x := b.Min.X; x < b.Max.X; x += tileSize {
			p, err := Encode(img, x, y)
			if err != nil {
				return nil, err
			}
			ps = append(ps, p)
		}
	}
	return ps, nil
}

// Load the image file and convert it. PNG and BMP files are supported
func Load(filename string) ([]video.Pattern, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("tileset: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("tileset: %s: %w", filename, err)
	}

	return FromImage(img)
}

// Image arranges the patterns in a grid with the number of columns
func Image(ps []video.Pattern, columns int) *image.Gray {
	columns = max(columns, 1)
	rows := (len(ps) + columns - 1) / columns
	img := image.NewGray(image.Rect(0, 0, columns*tileSize, rows*tileSize))
	for i := range img.Pix {
		img.Pix[i] = levels[0]
	}
	for i, p := range ps {
		t := Decode(p)
		x := (i % columns) * tileSize
		y := (i / columns) * tileSize
		for row := range tileSize {
			copy(img.Pix[img.PixOffset(x, y+row):], t.Pix[t.PixOffset(0, row):t.PixOffset(tileSize, row)])
		}
	}
	return img
}
