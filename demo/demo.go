// Package demo is a device program that exercises the video layer. It prints
// a banner with the normal and inverse fonts, counts frames and moves a
// sprite with the d-pad. Holding the A button scrolls the background instead.
// Start toggles the inverse font for the frame counter.
package demo

import (
	"fmt"

	"github.com/jetsetilly/testdmg/pad"
	"github.com/jetsetilly/testdmg/tileset"
	"github.com/jetsetilly/testdmg/version"
	"github.com/jetsetilly/testdmg/video"
)

// tile slots. the font occupies 0x20 to 0x7f and the inverse font occupies
// 0xa0 to 0xff
const (
	spriteTile   = 0x01
	inverseFont  = 0x80
	customTiles  = 0x80
	customLength = 0x20
)

// the row of the screen where custom tiles are shown
const customRow = 12

// the row of the screen where the frame counter is printed
const counterRow = 17

var ball = video.Pattern{
	0x3c, 0x3c,
	0x7e, 0x42,
	0xff, 0x81,
	0xff, 0x81,
	0xff, 0x81,
	0xff, 0x81,
	0x7e, 0x42,
	0x3c, 0x3c,
}

// Demo is the state of the program between frames
type Demo struct {
	Video *video.Context
	Pad   *pad.Pad

	// number of calls to Frame()
	Frames int

	// position of the sprite in screen coordinates
	X, Y uint8

	inverse bool
}

func New(hw video.Hardware) *Demo {
	return &Demo{
		Video: video.NewContext(hw, nil),
		Pad:   pad.New(hw),
		X:     76,
		Y:     68,
	}
}

// Init sets up the display and enables the vblank interrupt. The LCD is
// switched on when Init() returns
func (d *Demo) Init() {
	v := d.Video

	v.Gate.Enable()
	v.WithDisplayOff(func() {
		v.Tiles.SetAll(0x00)

		font := tileset.Font()
		v.Tiles.DefineSet(tileset.FontFirst, font)
		for i, p := range font {
			v.Tiles.DefineReverse(tileset.FontFirst+inverseFont+uint8(i), p)
		}
		v.Tiles.Define(spriteTile, ball)

		v.SetAllTileMaps(' ')
		v.View.SetScroll(0, 0)
		v.SetBGPalette(0xe4)
		v.SetObjectPalette(0, 0xe4)
		v.SetObjectPalette(1, 0x1b)

		v.Objects.Init()
		v.Objects.Set(0, video.Object{Tile: spriteTile})
		v.Objects.SetPosition(0, d.X, d.Y)

		v.Console.Home()
		fmt.Fprintf(v.Console, "%s\n\n", version.ApplicationName)
		v.Console.SetCodePage(inverseFont)
		fmt.Fprint(v.Console, "VIDEO LAYER DEMO")
		v.Console.SetCodePage(0)
		fmt.Fprint(v.Console, "\n\nD-PAD MOVES SPRITE\nA+D-PAD SCROLLS\nSTART INVERTS")
	})

	v.SetLCDMode(video.LCDOn | video.BG8000 | video.OBJOn | video.BGOn)
}

// Frame waits for vblank and then updates the display for the next frame
func (d *Demo) Frame() {
	v := d.Video

	v.Gate.Wait()
	v.Objects.Transfer()

	d.Pad.Poll()

	var dx, dy int8
	if d.Pad.DPadDown(pad.Left) {
		dx--
	}
	if d.Pad.DPadDown(pad.Right) {
		dx++
	}
	if d.Pad.DPadDown(pad.Up) {
		dy--
	}
	if d.Pad.DPadDown(pad.Down) {
		dy++
	}

	if d.Pad.ButtonDown(pad.A) {
		v.View.ShiftScroll(dx, dy)
	} else {
		d.X += uint8(dx)
		d.Y += uint8(dy)
		v.Objects.SetPosition(0, d.X, d.Y)
	}

	if d.Pad.Pressed(pad.Start) {
		d.inverse = !d.inverse
	}

	d.Frames++

	x, y := v.Console.Cursor()
	v.Console.SetCursor(0, counterRow)
	if d.inverse {
		v.Console.SetCodePage(inverseFont)
	}
	fmt.Fprintf(v.Console, "FRAME %05d", d.Frames%100000)
	v.Console.SetCodePage(0)
	v.Console.SetCursor(x, y)
}

// Tileset defines the patterns in the custom tile slots and shows them on the
// screen. No more than 32 patterns are used
func (d *Demo) Tileset(ps []video.Pattern) {
	v := d.Video
	ps = ps[:min(len(ps), customLength)]

	v.WithDisplayOff(func() {
		v.Tiles.DefineSet(customTiles, ps)

		x, y := v.Console.Cursor()
		v.Console.SetCursor(0, customRow)
		for i := range ps {
			v.Console.PutTile(customTiles + uint8(i))
		}
		v.Console.SetCursor(x, y)
	})
}
