package tileset_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/jetsetilly/testdmg/test"
	"github.com/jetsetilly/testdmg/tileset"
	"github.com/jetsetilly/testdmg/video"
)

// two tiles. the first is made up of vertical stripes of colours 0 to 3. the
// second is solid colour 3
func stripes() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 16, 8))
	grey := []uint8{255, 170, 85, 0}
	for y := range 8 {
		for x := range 8 {
			img.SetGray(x, y, color.Gray{Y: grey[x/2]})
		}
		for x := 8; x < 16; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	ps, err := tileset.FromImage(stripes())
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(ps), 2)

	// colour 1 in columns 2 and 3, colour 2 in columns 4 and 5, colour 3 in
	// columns 6 and 7
	for row := range 8 {
		test.ExpectEquality(t, ps[0][row*2], 0b00110011, row)
		test.ExpectEquality(t, ps[0][row*2+1], 0b00001111, row)
		test.ExpectEquality(t, ps[1][row*2], 0xff, row)
		test.ExpectEquality(t, ps[1][row*2+1], 0xff, row)
	}

	// decoding the pattern gives the original block
	img := tileset.Decode(ps[0])
	src := stripes()
	for y := range 8 {
		for x := range 8 {
			test.ExpectEquality(t, img.GrayAt(x, y), src.GrayAt(x, y), x, y)
		}
	}
}

func TestRowMajor(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	// mark the third tile
	img.SetGray(0, 8, color.Gray{Y: 0})

	ps, err := tileset.FromImage(img)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(ps), 4)
	test.ExpectEquality(t, ps[0], video.Pattern{})
	test.ExpectEquality(t, ps[2][0], 0x80)
	test.ExpectEquality(t, ps[2][1], 0x80)
}

func TestInvalidImage(t *testing.T) {
	img := stripes()
	img.SetGray(3, 3, color.Gray{Y: 100})
	_, err := tileset.FromImage(img)
	test.ExpectSuccess(t, errors.Is(err, tileset.ErrLevel))

	_, err = tileset.FromImage(image.NewGray(image.Rect(0, 0, 12, 8)))
	test.ExpectSuccess(t, errors.Is(err, tileset.ErrSize))

	_, err = tileset.FromImage(image.NewGray(image.Rect(0, 0, 8, 0)))
	test.ExpectSuccess(t, errors.Is(err, tileset.ErrSize))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	for _, ext := range []string{"png", "bmp"} {
		fn := filepath.Join(dir, "tiles."+ext)
		f, err := os.Create(fn)
		test.DemandSuccess(t, err)
		if ext == "png" {
			err = png.Encode(f, stripes())
		} else {
			err = bmp.Encode(f, stripes())
		}
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, f.Close())

		ps, err := tileset.Load(fn)
		test.DemandSuccess(t, err, ext)
		test.DemandEquality(t, len(ps), 2, ext)
		test.ExpectEquality(t, ps[0][0], 0b00110011, ext)
	}

	_, err := tileset.Load(filepath.Join(dir, "missing.png"))
	test.ExpectFailure(t, err)
}

func TestImage(t *testing.T) {
	ps, err := tileset.FromImage(stripes())
	test.DemandSuccess(t, err)

	img := tileset.Image(ps, 1)
	test.ExpectEquality(t, img.Bounds().Dx(), 8)
	test.ExpectEquality(t, img.Bounds().Dy(), 16)
	test.ExpectEquality(t, img.GrayAt(2, 0).Y, 170)
	test.ExpectEquality(t, img.GrayAt(0, 8).Y, 0)
}

func TestFont(t *testing.T) {
	ps := tileset.Font()
	test.DemandEquality(t, len(ps), tileset.FontLen)

	// space is empty
	test.ExpectEquality(t, ps[0], video.Pattern{})

	// the font is two colour so the bit planes are the same
	for c, p := range ps {
		for row := range 8 {
			test.ExpectEquality(t, p[row*2], p[row*2+1], string(rune(tileset.FontFirst+c)), row)
		}
	}

	for _, c := range "AZ09#" {
		test.ExpectInequality(t, ps[c-tileset.FontFirst], video.Pattern{}, string(c))
	}

	// different characters have different glyphs
	test.ExpectInequality(t, ps['O'-tileset.FontFirst], ps['X'-tileset.FontFirst])

	// the rightmost column of every glyph is the gap between characters
	for c, p := range ps {
		for i, b := range p {
			test.ExpectEquality(t, b&0x01, 0, string(rune(tileset.FontFirst+c)), i)
		}
	}

	// the full stop is a small block of ink at the bottom of the tile
	dot := tileset.Decode(ps['.'-tileset.FontFirst])
	for x := range 8 {
		test.ExpectEquality(t, dot.GrayAt(x, 0).Y, 255, x)
	}
	test.ExpectEquality(t, dot.GrayAt(7, 7).Y, 255)
}
