package lcd

import (
	"image/color"

	"github.com/jetsetilly/testdmg/hardware/interrupts"
	"github.com/jetsetilly/testdmg/hardware/spec"
)

// the mode of the LCD controller at the coordinates
func modeAt(scanline int, clk int) uint8 {
	if scanline >= spec.ScanlinesVisible {
		return ModeVBlank
	}
	if clk < spec.ClksOAMScan {
		return ModeOAMScan
	}
	if clk < spec.ClksHBLANK {
		return ModePixels
	}
	return ModeHBlank
}

// Tick advances the LCD by one dot
func (l *LCD) Tick() {
	if !l.Enabled() {
		l.offClk++
		if l.offClk >= spec.ClksFrame {
			l.offClk = 0
			l.endFrame()
		}
		return
	}

	l.Coords.Clk++
	if l.Coords.Clk >= spec.ClksScanline {
		l.Coords.Clk = 0
		l.Coords.Scanline++

		if l.Coords.Scanline >= spec.ScanlinesTotal {
			l.Coords.Scanline = 0
			l.windowLine = 0
			l.endFrame()
		} else if l.Coords.Scanline == spec.ScanlinesVisible {
			l.ints.Request(interrupts.VBlank)
		}
	}

	mode := modeAt(l.Coords.Scanline, l.Coords.Clk)
	if mode != l.mode {
		l.mode = mode
		if l.mode == ModePixels {
			l.renderScanline()
		}
	}

	l.updateSTAT()
	l.plotOverlay()
}

// the STAT interrupt is requested on the rising edge of the combination of all
// enabled STAT conditions
func (l *LCD) updateSTAT() {
	var line bool
	switch l.mode {
	case ModeHBlank:
		line = l.stat&statHBlankInt == statHBlankInt
	case ModeVBlank:
		line = l.stat&statVBlankInt == statVBlankInt
	case ModeOAMScan:
		line = l.stat&statOAMInt == statOAMInt
	}
	if l.stat&statLYCInt == statLYCInt && l.ly() == l.lyc {
		line = true
	}

	if line && !l.statLine {
		l.ints.Request(interrupts.STAT)
	}
	l.statLine = line
}

// plot debugging information for the current dot
func (l *LCD) plotOverlay() {
	if !l.currentFrame.debug {
		return
	}

	x := l.Coords.Clk - l.currentFrame.left
	y := l.Coords.Scanline - l.currentFrame.top

	if l.dmaActive {
		// OAM DMA is green
		l.currentFrame.overlay.Set(x, y, color.RGBA{G: 255, A: 255})
	} else if l.cpu != nil && l.cpu.InInterrupt() {
		// yellow for the duration that an interrupt is being serviced
		l.currentFrame.overlay.Set(x, y, color.RGBA{R: 200, G: 200, A: 255})
	} else {
		switch l.mode {
		case ModeOAMScan:
			l.currentFrame.overlay.Set(x, y, color.RGBA{B: 150, A: 255})
		case ModePixels:
			l.currentFrame.overlay.Set(x, y, color.RGBA{R: 150, A: 255})
		}
	}

	// vblank is indicated by grey stripes
	if l.mode == ModeVBlank && l.Coords.Clk&0x07 == l.Coords.Scanline&0x07 {
		l.currentFrame.overlay.Set(x, y, color.RGBA{R: 100, G: 100, B: 100, A: 100})
	}
}
