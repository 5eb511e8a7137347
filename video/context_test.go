package video_test

import (
	"testing"

	"github.com/jetsetilly/testdmg/test"
	"github.com/jetsetilly/testdmg/video"
)

func TestGateEnable(t *testing.T) {
	hw := newFakeHardware()
	ctx := video.NewContext(hw, nil)

	hw.mem[video.RegInterruptEnable] = 0x04
	ctx.Gate.Enable()
	test.ExpectEquality(t, hw.mem[video.RegInterruptEnable], 0x05)
	test.ExpectSuccess(t, hw.ime)

	ctx.Gate.Enable()
	test.ExpectEquality(t, hw.mem[video.RegInterruptEnable], 0x05)
}

func TestGateWait(t *testing.T) {
	hw := newFakeHardware()
	ctx := video.NewContext(hw, nil)
	ctx.Gate.Enable()

	// a vblank before the call to Wait() does not count
	ctx.Gate.Signal()
	ctx.Gate.Wait()
	test.ExpectEquality(t, hw.halts, 1)

	hw.spurious = 3
	ctx.Gate.Wait()
	test.ExpectEquality(t, hw.halts, 5)
}

func TestScroll(t *testing.T) {
	hw := newFakeHardware()
	ctx := video.NewContext(hw, nil)

	ctx.View.SetScroll(17, 40)
	test.ExpectEquality(t, hw.mem[video.RegScrollX], 17)
	test.ExpectEquality(t, hw.mem[video.RegScrollY], 40)
	test.ExpectEquality(t, ctx.View.TileBase(), 2+5*32)

	ctx.View.SetScroll(250, 3)
	ctx.View.ShiftScroll(10, -5)
	x, y := ctx.View.Scroll()
	test.ExpectEquality(t, x, 4)
	test.ExpectEquality(t, y, 254)
	test.ExpectEquality(t, ctx.View.TileBase(), 31*32)
}

func TestSetAllTileMaps(t *testing.T) {
	hw := newFakeHardware()
	ctx := video.NewContext(hw, nil)

	ctx.SetAllTileMaps(0x20)
	test.ExpectEquality(t, hw.mem[video.TileMap0-1], 0x00)
	test.ExpectEquality(t, hw.mem[video.TileMap0], 0x20)
	test.ExpectEquality(t, hw.mem[video.TileMap1+video.MapCells-1], 0x20)
	test.ExpectEquality(t, hw.mem[video.TileMap1+video.MapCells], 0x00)
}

func TestPalettes(t *testing.T) {
	hw := newFakeHardware()
	ctx := video.NewContext(hw, nil)

	ctx.SetBGPalette(0xe4)
	ctx.SetObjectPalette(0, 0xd2)
	ctx.SetObjectPalette(1, 0x1b)
	test.ExpectEquality(t, hw.mem[video.RegBGPalette], 0xe4)
	test.ExpectEquality(t, hw.mem[video.RegObjPalette0], 0xd2)
	test.ExpectEquality(t, hw.mem[video.RegObjPalette1], 0x1b)
}

func TestWithDisplayOff(t *testing.T) {
	hw := newFakeHardware()
	ctx := video.NewContext(hw, nil)

	// with the LCD off there is no wait
	ctx.WithDisplayOff(func() {})
	test.ExpectEquality(t, hw.halts, 0)

	ctx.Gate.Enable()
	ctx.SetLCDMode(video.LCDOn | video.BGOn)
	hw.scanning()

	var mode uint8
	ctx.WithDisplayOff(func() {
		mode = ctx.LCDMode()
	})
	test.ExpectEquality(t, hw.halts, 1)
	test.ExpectEquality(t, mode, video.BGOn)
	test.ExpectEquality(t, ctx.LCDMode(), video.LCDOn|video.BGOn)
}
