// Package lcd implements the LCD controller of the device. The controller
// owns the LCD registers, the mode state machine, the OAM DMA engine and the
// access locks on video RAM and object memory.
//
// A scanline is rendered in its entirety at the start of pixel transfer
// (mode 3) using the register values at that moment.
package lcd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/testdmg/gui"
	"github.com/jetsetilly/testdmg/hardware/interrupts"
	"github.com/jetsetilly/testdmg/hardware/spec"
)

// Context allows the LCD to signal a break
type Context interface {
	Break(error)
	Spec() spec.Spec
	UseOverlay() bool
}

// the wrapping error for any errors passed to Context.Break()
var ContextError = errors.New("lcd")

type limiter interface {
	Wait()
}

type Interrupts interface {
	Request(interrupts.Interrupt)
}

// Memory is the LCD's view of memory. Accesses by the LCD are never subject to
// the bus locks
type Memory interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}

type CPU interface {
	InInterrupt() bool
}

// addresses of the LCD registers
const (
	AddrLCDC = 0xff40
	AddrSTAT = 0xff41
	AddrSCY  = 0xff42
	AddrSCX  = 0xff43
	AddrLY   = 0xff44
	AddrLYC  = 0xff45
	AddrDMA  = 0xff46
	AddrBGP  = 0xff47
	AddrOBP0 = 0xff48
	AddrOBP1 = 0xff49
	AddrWY   = 0xff4a
	AddrWX   = 0xff4b
)

// bits of the LCDC register
const (
	lcdcEnable    = 0x80
	lcdcWinMap    = 0x40
	lcdcWinEnable = 0x20
	lcdcTileData  = 0x10
	lcdcBGMap     = 0x08
	lcdcObjSize   = 0x04
	lcdcObjEnable = 0x02
	lcdcBGEnable  = 0x01
)

// bits of the STAT register
const (
	statLYCInt    = 0x40
	statOAMInt    = 0x20
	statVBlankInt = 0x10
	statHBlankInt = 0x08
	statLYCFlag   = 0x04
	statModeMask  = 0x03
	statWriteMask = statLYCInt | statOAMInt | statVBlankInt | statHBlankInt
)

// the four modes of the LCD controller
const (
	ModeHBlank  = 0
	ModeVBlank  = 1
	ModeOAMScan = 2
	ModePixels  = 3
)

type LCD struct {
	ctx  Context
	g    *gui.GUI
	ints Interrupts
	mem  Memory
	cpu  CPU

	// frame limiter. can be nil
	limit limiter

	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	lyc  uint8
	dma  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	mode uint8

	// the state of the combined STAT interrupt line. the interrupt is
	// requested on the rising edge
	statLine bool

	// the window has its own line counter which only advances on scanlines
	// where the window is drawn
	windowLine int

	// the number of dots elapsed since the start of the "frame" while the LCD
	// is disabled. the emulation continues to produce frames at the normal
	// rate while the LCD is off
	offClk int

	// OAM DMA
	dmaActive bool
	dmaSource uint16
	dmaIdx    int

	// the current coordinates of the LCD beam
	Coords Coords

	// the current specification (DMG, POCKET)
	Spec spec.Spec

	// count of bus conflicts
	Conflicts Conflicts

	// the image that is sent to the user interface
	currentFrame frame
	prevFrame    frame
}

// Create a new LCD. The gui and limit arguments can be nil
func Create(ctx Context, g *gui.GUI, ints Interrupts, mem Memory, cpu CPU, limit limiter) *LCD {
	l := &LCD{
		ctx:   ctx,
		g:     g,
		ints:  ints,
		mem:   mem,
		cpu:   cpu,
		limit: limit,
		Spec:  ctx.Spec(),
	}
	l.Reset()
	return l
}

func (l *LCD) Reset() {
	l.Coords.Reset()
	l.lcdc = 0
	l.stat = 0
	l.scy = 0
	l.scx = 0
	l.lyc = 0
	l.dma = 0
	l.bgp = 0xfc
	l.obp0 = 0xff
	l.obp1 = 0xff
	l.wy = 0
	l.wx = 0
	l.mode = ModeHBlank
	l.statLine = false
	l.windowLine = 0
	l.offClk = 0
	l.dmaActive = false
	l.dmaSource = 0
	l.dmaIdx = 0
	l.Conflicts = Conflicts{}
	l.newFrame()
}

func (l *LCD) Label() string {
	return "LCD"
}

func (l *LCD) Status() string {
	return l.String()
}

func (l *LCD) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s: enabled=%v mode=%d ly=%d lyc=%d\n", l.Label(), l.Enabled(), l.Mode(), l.ly(), l.lyc))
	s.WriteString(fmt.Sprintf("lcdc=0x%02x stat=0x%02x scx=0x%02x scy=0x%02x wx=0x%02x wy=0x%02x\n",
		l.lcdc, l.readSTAT(), l.scx, l.scy, l.wx, l.wy))
	s.WriteString(fmt.Sprintf("bgp=0x%02x obp0=0x%02x obp1=0x%02x dma=0x%02x", l.bgp, l.obp0, l.obp1, l.dma))
	if l.dmaActive {
		s.WriteString(fmt.Sprintf(" (active %d/%d)", l.dmaIdx, dmaLength))
	}
	return s.String()
}

// Enabled returns true if the LCD is switched on
func (l *LCD) Enabled() bool {
	return l.lcdc&lcdcEnable == lcdcEnable
}

// Mode returns the current mode of the LCD controller. The mode is always
// HBlank when the LCD is disabled
func (l *LCD) Mode() uint8 {
	if !l.Enabled() {
		return ModeHBlank
	}
	return l.mode
}

func (l *LCD) ly() uint8 {
	if !l.Enabled() {
		return 0
	}
	return uint8(l.Coords.Scanline)
}

func (l *LCD) readSTAT() uint8 {
	v := 0x80 | l.stat | l.Mode()
	if l.ly() == l.lyc {
		v |= statLYCFlag
	}
	return v
}

// VRAMLocked implements the memory.Bus interface
func (l *LCD) VRAMLocked() bool {
	return l.Enabled() && l.mode == ModePixels
}

// OAMLocked implements the memory.Bus interface
func (l *LCD) OAMLocked() bool {
	return l.Enabled() && (l.mode == ModeOAMScan || l.mode == ModePixels)
}

// DMAActive implements the memory.Bus interface
func (l *LCD) DMAActive() bool {
	return l.dmaActive
}

func (l *LCD) Read(idx uint16) (uint8, error) {
	switch idx {
	case AddrLCDC:
		return l.lcdc, nil
	case AddrSTAT:
		return l.readSTAT(), nil
	case AddrSCY:
		return l.scy, nil
	case AddrSCX:
		return l.scx, nil
	case AddrLY:
		return l.ly(), nil
	case AddrLYC:
		return l.lyc, nil
	case AddrDMA:
		return l.dma, nil
	case AddrBGP:
		return l.bgp, nil
	case AddrOBP0:
		return l.obp0, nil
	case AddrOBP1:
		return l.obp1, nil
	case AddrWY:
		return l.wy, nil
	case AddrWX:
		return l.wx, nil
	}
	return 0, fmt.Errorf("not an lcd address (0x%04x)", idx)
}

func (l *LCD) Write(idx uint16, data uint8) error {
	switch idx {
	case AddrLCDC:
		l.writeLCDC(data)
	case AddrSTAT:
		l.stat = data & statWriteMask
	case AddrSCY:
		l.scy = data
	case AddrSCX:
		l.scx = data
	case AddrLY:
		// read only
	case AddrLYC:
		l.lyc = data
	case AddrDMA:
		l.dma = data
		l.startDMA(data)
	case AddrBGP:
		l.bgp = data
	case AddrOBP0:
		l.obp0 = data
	case AddrOBP1:
		l.obp1 = data
	case AddrWY:
		l.wy = data
	case AddrWX:
		l.wx = data
	default:
		return fmt.Errorf("not an lcd address (0x%04x)", idx)
	}
	return nil
}

func (l *LCD) writeLCDC(data uint8) {
	was := l.Enabled()
	l.lcdc = data

	switch {
	case was && !l.Enabled():
		// switching off the display outside of vblank can damage a real unit
		if l.mode != ModeVBlank {
			l.Conflicts.Disable++
			l.conflictf("display disabled outside of vblank at %s", l.Coords.ShortString())
		}
		l.Coords.Scanline = 0
		l.Coords.Clk = 0
		l.mode = ModeHBlank
		l.offClk = 0
		l.statLine = false

	case !was && l.Enabled():
		l.Coords.Scanline = 0
		l.Coords.Clk = 0
		l.mode = ModeOAMScan
		l.windowLine = 0
		l.statLine = false
	}
}
