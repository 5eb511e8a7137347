package lcd

import (
	"fmt"
	"image/color"

	"github.com/jetsetilly/testdmg/hardware/memory"
	"github.com/jetsetilly/testdmg/logger"
)

// Conflicts counts the accesses by the CPU that collided with the LCD
type Conflicts struct {
	VRAM int
	OAM  int
	DMA  int

	// the display was switched off outside of vblank
	Disable int
}

func (c Conflicts) Total() int {
	return c.VRAM + c.OAM + c.DMA + c.Disable
}

func (c Conflicts) String() string {
	return fmt.Sprintf("VRAM=%d OAM=%d DMA=%d disable=%d", c.VRAM, c.OAM, c.DMA, c.Disable)
}

// Conflict records a bus conflict reported by memory
func (l *LCD) Conflict(c memory.Conflict) {
	switch c.Kind {
	case memory.ConflictVRAM:
		l.Conflicts.VRAM++
	case memory.ConflictOAM:
		l.Conflicts.OAM++
	case memory.ConflictDMA:
		l.Conflicts.DMA++
	}
	l.conflictf("%s", c.Error())
}

func (l *LCD) conflictf(format string, args ...any) {
	logger.Logf(logger.Allow, "lcd", format, args...)

	// conflicts are white in the debugging overlay
	if l.currentFrame.debug {
		x := l.Coords.Clk - l.currentFrame.left
		y := l.Coords.Scanline - l.currentFrame.top
		l.currentFrame.overlay.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
}
