package demo_test

import (
	"testing"

	"github.com/jetsetilly/testdmg/demo"
	"github.com/jetsetilly/testdmg/gui"
	"github.com/jetsetilly/testdmg/hardware"
	"github.com/jetsetilly/testdmg/hardware/spec"
	"github.com/jetsetilly/testdmg/test"
	"github.com/jetsetilly/testdmg/tileset"
	"github.com/jetsetilly/testdmg/video"
)

type context struct {
	breaks []error
}

func (ctx *context) Break(err error) {
	ctx.breaks = append(ctx.breaks, err)
}

func (ctx *context) Spec() spec.Spec {
	return spec.DMG
}

func (ctx *context) UseOverlay() bool {
	return false
}

func (ctx *context) Rand8Bit() uint8 {
	return 0
}

func peek(t *testing.T, con *hardware.Console, address uint16) uint8 {
	t.Helper()
	v, err := con.Mem.Peek(address)
	test.DemandSuccess(t, err)
	return v
}

func TestDemo(t *testing.T) {
	ctx := &context{}
	con := hardware.Create(ctx, nil)
	d := demo.New(con)

	err := con.Run(func() {
		d.Init()
		for range 5 {
			d.Frame()
		}
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ctx.breaks), 0)
	test.ExpectEquality(t, con.LCD.Conflicts.Total(), 0)
	test.ExpectSuccess(t, con.LCD.Enabled())
	test.ExpectEquality(t, d.Frames, 5)

	// banner
	test.ExpectEquality(t, peek(t, con, video.TileMap0), 'T')

	// inverse text
	test.ExpectEquality(t, peek(t, con, video.TileMap0+64), 'V'+0x80)

	// frame counter
	test.ExpectEquality(t, peek(t, con, video.TileMap0+17*32+10), '5')

	// the inverse font is the complement of the font
	for i := range 16 {
		a := peek(t, con, video.TileData+uint16('A')*16+uint16(i))
		b := peek(t, con, video.TileData+uint16('A'+0x80)*16+uint16(i))
		test.ExpectEquality(t, a, ^b, i)
	}

	// the sprite is in object memory
	test.ExpectEquality(t, peek(t, con, video.ObjectMemory), d.Y+16)
	test.ExpectEquality(t, peek(t, con, video.ObjectMemory+1), d.X+8)
	test.ExpectEquality(t, peek(t, con, video.ObjectMemory+2), 0x01)
}

func TestDemoInput(t *testing.T) {
	ctx := &context{}
	con := hardware.Create(ctx, nil)
	d := demo.New(con)
	test.DemandSuccess(t, con.Run(d.Init))

	x, y := d.X, d.Y

	con.Joypad.Update(gui.Input{Action: gui.DPadRight, Data: true})
	con.Joypad.Update(gui.Input{Action: gui.DPadUp, Data: true})
	test.DemandSuccess(t, con.Run(func() {
		for range 3 {
			d.Frame()
		}
	}))
	test.ExpectEquality(t, d.X, x+3)
	test.ExpectEquality(t, d.Y, y-3)

	// scroll
	con.Joypad.Update(gui.Input{Action: gui.ButtonA, Data: true})
	test.DemandSuccess(t, con.Run(d.Frame))
	test.ExpectEquality(t, d.X, x+3)
	sx, sy := d.Video.View.Scroll()
	test.ExpectEquality(t, sx, 1)
	test.ExpectEquality(t, sy, 255)

	test.ExpectEquality(t, con.LCD.Conflicts.Total(), 0)
}

func TestDemoTileset(t *testing.T) {
	ctx := &context{}
	con := hardware.Create(ctx, nil)
	d := demo.New(con)

	ps := tileset.Font()
	test.DemandSuccess(t, con.Run(func() {
		d.Init()
		d.Tileset(ps)
		d.Frame()
	}))
	test.ExpectEquality(t, con.LCD.Conflicts.Total(), 0)
	test.ExpectSuccess(t, con.LCD.Enabled())

	// only 32 tiles are used
	test.ExpectEquality(t, peek(t, con, video.TileMap0+12*32), 0x80)
	test.ExpectEquality(t, peek(t, con, video.TileMap0+13*32+11), 0x9f)
	test.ExpectEquality(t, peek(t, con, video.TileMap0+13*32+12), ' ')

	// the custom tiles are a copy of the first 32 font tiles
	for i := range 16 {
		a := peek(t, con, video.TileData+0x20*16+uint16(i))
		b := peek(t, con, video.TileData+0x80*16+uint16(i))
		test.ExpectEquality(t, a, b, i)
	}
}
