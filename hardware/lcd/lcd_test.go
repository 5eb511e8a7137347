package lcd_test

import (
	"testing"

	"github.com/jetsetilly/testdmg/hardware/interrupts"
	"github.com/jetsetilly/testdmg/hardware/lcd"
	"github.com/jetsetilly/testdmg/hardware/memory"
	"github.com/jetsetilly/testdmg/hardware/spec"
	"github.com/jetsetilly/testdmg/test"
)

type context struct {
	breaks  []error
	overlay bool
}

func (ctx *context) Break(err error) {
	ctx.breaks = append(ctx.breaks, err)
}

func (ctx *context) Spec() spec.Spec {
	return spec.DMG
}

func (ctx *context) UseOverlay() bool {
	return ctx.overlay
}

func (ctx *context) Rand8Bit() uint8 {
	return 0
}

type device struct {
	ctx  *context
	mem  *memory.Memory
	ints *interrupts.Interrupts
	lcd  *lcd.LCD
}

func create(t *testing.T) *device {
	t.Helper()
	d := &device{
		ctx:  &context{},
		ints: &interrupts.Interrupts{},
	}
	var addChips memory.AddChips
	d.mem, addChips = memory.Create(d.ctx)
	d.lcd = lcd.Create(d.ctx, nil, d.ints, d.mem, nil, nil)
	addChips(d.lcd, nil, d.ints, d.lcd)
	d.mem.Reset(false)
	return d
}

func (d *device) write(t *testing.T, address uint16, data uint8) {
	t.Helper()
	test.DemandSuccess(t, d.mem.Write(address, data))
}

// tick the LCD until the coordinates are reached
func (d *device) tickTo(scanline int, clk int) {
	for d.lcd.Coords.Scanline != scanline || d.lcd.Coords.Clk != clk {
		d.lcd.Tick()
	}
}

func TestModes(t *testing.T) {
	d := create(t)
	test.ExpectEquality(t, d.lcd.Mode(), lcd.ModeHBlank)
	test.ExpectSuccess(t, !d.lcd.VRAMLocked())

	d.write(t, lcd.AddrLCDC, 0x91)
	test.ExpectEquality(t, d.lcd.Mode(), lcd.ModeOAMScan)
	test.ExpectSuccess(t, d.lcd.OAMLocked())

	d.tickTo(0, spec.ClksOAMScan)
	test.ExpectEquality(t, d.lcd.Mode(), lcd.ModePixels)
	test.ExpectSuccess(t, d.lcd.VRAMLocked())

	d.tickTo(0, spec.ClksHBLANK)
	test.ExpectEquality(t, d.lcd.Mode(), lcd.ModeHBlank)
	test.ExpectSuccess(t, !d.lcd.VRAMLocked())
	test.ExpectSuccess(t, !d.lcd.OAMLocked())

	_, ok := d.ints.Pending()
	test.ExpectFailure(t, ok)

	test.DemandSuccess(t, d.ints.Write(interrupts.AddrIE, uint8(interrupts.VBlank)))
	d.tickTo(spec.ScanlinesVisible, 0)
	test.ExpectEquality(t, d.lcd.Mode(), lcd.ModeVBlank)
	i, ok := d.ints.Pending()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, interrupts.VBlank)

	ly, err := d.mem.Read(lcd.AddrLY)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ly, spec.ScanlinesVisible)

	stat, err := d.mem.Read(lcd.AddrSTAT)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, stat&0x03, lcd.ModeVBlank)

	d.tickTo(0, 0)
	test.ExpectEquality(t, d.lcd.Coords.Frame, 1)
	test.ExpectEquality(t, d.lcd.Mode(), lcd.ModeOAMScan)

	// switching off the display outside of vblank is recorded
	d.write(t, lcd.AddrLCDC, 0x00)
	test.ExpectEquality(t, d.lcd.Conflicts.Disable, 1)
	ly, _ = d.mem.Read(lcd.AddrLY)
	test.ExpectEquality(t, ly, 0)

	// frames continue while the display is off
	for range spec.ClksFrame {
		d.lcd.Tick()
	}
	test.ExpectEquality(t, d.lcd.Coords.Frame, 2)
}

func TestLYC(t *testing.T) {
	d := create(t)
	d.write(t, lcd.AddrLYC, 10)
	d.write(t, lcd.AddrSTAT, 0x40)
	test.DemandSuccess(t, d.ints.Write(interrupts.AddrIE, uint8(interrupts.STAT)))
	d.write(t, lcd.AddrLCDC, 0x80)

	d.tickTo(9, 455)
	_, ok := d.ints.Pending()
	test.ExpectFailure(t, ok)

	d.lcd.Tick()
	i, ok := d.ints.Pending()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, interrupts.STAT)

	stat, _ := d.mem.Read(lcd.AddrSTAT)
	test.ExpectEquality(t, stat&0x04, 0x04)
}

func TestBackground(t *testing.T) {
	d := create(t)

	// tile 1 is solid colour 3
	for i := range 16 {
		d.write(t, uint16(0x8010+i), 0xff)
	}

	// top left of the map and one cell to the right when scrolled
	d.write(t, 0x9800, 0x01)
	d.write(t, 0x9802, 0x01)
	d.write(t, lcd.AddrBGP, 0xe4)
	d.write(t, lcd.AddrSCX, 8)
	d.write(t, lcd.AddrLCDC, 0x91)

	d.tickTo(1, 0)
	f := d.lcd.CurrentFrame()
	test.ExpectEquality(t, f.RGBAAt(0, 0), spec.DMG.Palette[0])
	test.ExpectEquality(t, f.RGBAAt(8, 0), spec.DMG.Palette[3])
	test.ExpectEquality(t, f.RGBAAt(15, 0), spec.DMG.Palette[3])
	test.ExpectEquality(t, f.RGBAAt(16, 0), spec.DMG.Palette[0])

	// line 1 has not been drawn yet
	test.ExpectEquality(t, f.RGBAAt(8, 1), spec.DMG.Off)
	test.ExpectEquality(t, len(d.ctx.breaks), 0)
}

func TestObjects(t *testing.T) {
	d := create(t)

	// tile 2 is colour 1 in the left column only
	for i := 0; i < 16; i += 2 {
		d.write(t, uint16(0x8020+i), 0x80)
	}

	// object 0 at the top left of the screen
	d.write(t, 0xfe00, 16)
	d.write(t, 0xfe01, 8)
	d.write(t, 0xfe02, 2)
	d.write(t, 0xfe03, 0x00)

	// object 1 with the same tile flipped horizontally and using palette 1
	d.write(t, 0xfe04, 16)
	d.write(t, 0xfe05, 20)
	d.write(t, 0xfe06, 2)
	d.write(t, 0xfe07, 0x30)

	d.write(t, lcd.AddrOBP0, 0xe4)
	d.write(t, lcd.AddrOBP1, 0x1b)
	d.write(t, lcd.AddrLCDC, 0x83)

	d.tickTo(1, 0)
	f := d.lcd.CurrentFrame()
	test.ExpectEquality(t, f.RGBAAt(0, 0), spec.DMG.Palette[1])
	test.ExpectEquality(t, f.RGBAAt(1, 0), spec.DMG.Palette[0])
	test.ExpectEquality(t, f.RGBAAt(12, 0), spec.DMG.Palette[0])
	test.ExpectEquality(t, f.RGBAAt(19, 0), spec.DMG.Palette[2])
}

func TestDMA(t *testing.T) {
	d := create(t)
	for i := range 160 {
		d.write(t, uint16(0xdf00+i), uint8(i))
	}

	d.write(t, lcd.AddrDMA, 0xdf)
	test.ExpectSuccess(t, d.lcd.DMAActive())

	// the CPU can not see work RAM during DMA
	_, err := d.mem.Read(0xdf00)
	test.ExpectFailure(t, err)

	for range 159 {
		d.lcd.StepDMA()
	}
	test.ExpectSuccess(t, d.lcd.DMAActive())
	d.lcd.StepDMA()
	test.ExpectSuccess(t, !d.lcd.DMAActive())

	for i := range 160 {
		v, err := d.mem.Read(uint16(0xfe00 + i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(i))
	}
	test.ExpectEquality(t, len(d.ctx.breaks), 0)

	// page 0xe0 and above can not be used
	d.write(t, lcd.AddrDMA, 0xfe)
	test.ExpectSuccess(t, !d.lcd.DMAActive())
	test.ExpectEquality(t, len(d.ctx.breaks), 1)
}

func TestConflict(t *testing.T) {
	d := create(t)
	d.lcd.Conflict(memory.Conflict{Kind: memory.ConflictVRAM, Address: 0x9800, Write: true})
	d.lcd.Conflict(memory.Conflict{Kind: memory.ConflictOAM, Address: 0xfe00})
	test.ExpectEquality(t, d.lcd.Conflicts.VRAM, 1)
	test.ExpectEquality(t, d.lcd.Conflicts.OAM, 1)
	test.ExpectEquality(t, d.lcd.Conflicts.Total(), 2)
}

func TestOverlay(t *testing.T) {
	d := create(t)
	d.ctx.overlay = true
	d.lcd.Reset()
	d.write(t, lcd.AddrLCDC, 0x91)
	d.tickTo(1, 0)

	f := d.lcd.CurrentFrame()
	test.ExpectEquality(t, f.Bounds().Dx(), spec.ClksScanline)
	test.ExpectEquality(t, f.Bounds().Dy(), spec.ScanlinesTotal)
}
