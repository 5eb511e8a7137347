package video

import "sync/atomic"

// VBlankGate synchronises the program with the start of vblank
type VBlankGate struct {
	hw Hardware

	// set by the interrupt handler and cleared by Wait()
	flag atomic.Bool
}

// Enable the vblank interrupt and enable interrupts globally. It is safe to
// call Enable() more than once
func (g *VBlankGate) Enable() {
	g.hw.Write(RegInterruptEnable, g.hw.Read(RegInterruptEnable)|IntVBlank)
	g.hw.EnableInterrupts()
}

// Wait until the next vblank. The flag is cleared before halting so that a
// vblank that happened before the call is not mistaken for the next one.
//
// Interrupts must be enabled. If they are not, Wait() never returns
func (g *VBlankGate) Wait() {
	g.flag.Store(false)
	for !g.flag.Load() {
		// any interrupt will end the halt
		g.hw.Halt()
	}
}

// Signal is the vblank interrupt handler
func (g *VBlankGate) Signal() {
	g.flag.Store(true)
}

// InVBlank returns true if the LCD is currently in vblank
func (g *VBlankGate) InVBlank() bool {
	return g.hw.Read(RegLCDStatus)&0x03 == statusVBlank
}

// Scanning returns true if the LCD is switched on and is not in vblank. Tile
// map and object memory should not be written while the LCD is scanning
func (g *VBlankGate) Scanning() bool {
	if g.hw.Read(RegLCDControl)&LCDOn == 0 {
		return false
	}
	return !g.InVBlank()
}
