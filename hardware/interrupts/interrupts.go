// Package interrupts implements the interrupt enable and interrupt flag
// registers of the device, and the interrupt master enable (IME) latch.
//
// Interrupts are prioritised by bit position. VBlank (bit 0) has the highest
// priority and Joypad (bit 4) the lowest.
package interrupts

import (
	"fmt"
	"strings"
)

// Interrupt is a single interrupt source. The value is the bit in the IE and
// IF registers
type Interrupt uint8

const (
	VBlank Interrupt = 0x01
	STAT   Interrupt = 0x02
	Timer  Interrupt = 0x04
	Serial Interrupt = 0x08
	Joypad Interrupt = 0x10
)

// the bits of IE and IF that correspond to an interrupt source
const mask = 0x1f

// addresses of the registers
const (
	AddrIF = 0xff0f
	AddrIE = 0xffff
)

func (i Interrupt) String() string {
	switch i {
	case VBlank:
		return "VBlank"
	case STAT:
		return "STAT"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return fmt.Sprintf("unknown (0x%02x)", uint8(i))
}

// Vector returns the address of the service routine for the interrupt
func (i Interrupt) Vector() uint16 {
	switch i {
	case VBlank:
		return 0x40
	case STAT:
		return 0x48
	case Timer:
		return 0x50
	case Serial:
		return 0x58
	case Joypad:
		return 0x60
	}
	return 0x00
}

type Interrupts struct {
	ie  uint8
	iff uint8

	// interrupt master enable
	ime bool
}

func (in *Interrupts) Reset() {
	in.ie = 0
	in.iff = 0
	in.ime = false
}

func (in *Interrupts) Label() string {
	return "Interrupts"
}

func (in *Interrupts) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("IME=%v IE=0x%02x IF=0x%02x", in.ime, in.ie, in.iff))
	for _, i := range []Interrupt{VBlank, STAT, Timer, Serial, Joypad} {
		var e, r string
		if in.ie&uint8(i) != 0 {
			e = "enabled"
		} else {
			e = "disabled"
		}
		if in.iff&uint8(i) != 0 {
			r = " requested"
		}
		s.WriteString(fmt.Sprintf("\n%-6s %s%s", i, e, r))
	}
	return s.String()
}

func (in *Interrupts) Read(idx uint16) (uint8, error) {
	switch idx {
	case AddrIF:
		// unused bits read as one
		return in.iff | ^uint8(mask), nil
	case AddrIE:
		return in.ie, nil
	}
	return 0, fmt.Errorf("not an interrupt register (0x%04x)", idx)
}

func (in *Interrupts) Write(idx uint16, data uint8) error {
	switch idx {
	case AddrIF:
		in.iff = data & mask
	case AddrIE:
		in.ie = data
	default:
		return fmt.Errorf("not an interrupt register (0x%04x)", idx)
	}
	return nil
}

// Request sets the bit in IF for the interrupt
func (in *Interrupts) Request(i Interrupt) {
	in.iff |= uint8(i)
}

// Pending returns the highest priority interrupt that is both requested and
// enabled. The IME latch is not considered
func (in *Interrupts) Pending() (Interrupt, bool) {
	p := in.ie & in.iff & mask
	if p == 0 {
		return 0, false
	}
	return Interrupt(p & -p), true
}

// Acknowledge clears the request bit for the interrupt
func (in *Interrupts) Acknowledge(i Interrupt) {
	in.iff &^= uint8(i)
}

// Enabled returns true if interrupt is enabled in IE
func (in *Interrupts) Enabled(i Interrupt) bool {
	return in.ie&uint8(i) != 0
}

func (in *Interrupts) SetIME(ime bool) {
	in.ime = ime
}

func (in *Interrupts) IME() bool {
	return in.ime
}
