// Package joypad implements the P1 register. The register has two select
// lines, one for the direction keys and one for the buttons. The state of the
// selected keys is presented in the lower four bits of the register. All bits
// are active low.
//
// The select lines take time to settle. A read of the register shortly after
// the select lines have changed returns the state of the lines before the
// change. Programs must read the register several times before the value can
// be relied upon.
package joypad

import (
	"fmt"

	"github.com/jetsetilly/testdmg/gui"
	"github.com/jetsetilly/testdmg/hardware/interrupts"
)

// Addr is the address of the P1 register
const Addr = 0xff00

// bits of the P1 register
const (
	selectButtons = 0x20
	selectDPad    = 0x10
	selectMask    = selectButtons | selectDPad
)

// bits of the lower nibble, the meaning of which depends on the select lines
const (
	Right  = 0x01
	Left   = 0x02
	Up     = 0x04
	Down   = 0x08
	A      = 0x01
	B      = 0x02
	Select = 0x04
	Start  = 0x08
)

// DefaultSettle is the number of machine cycles required for the select lines
// to settle
const DefaultSettle = 2

type Interrupts interface {
	Request(interrupts.Interrupt)
}

type Joypad struct {
	ints Interrupts

	// the selection written to the register
	sel uint8

	// the lower nibble as seen by the CPU. this lags behind the true state of
	// the keys while the select lines are settling
	latched uint8

	// keys that are currently pressed. a set bit means the key is down. the
	// polarity is the opposite of the register
	dpad    uint8
	buttons uint8

	// number of machine cycles remaining before the lines settle
	settling int

	// number of machine cycles the lines take to settle
	Settle int
}

func Create(ints Interrupts) *Joypad {
	return &Joypad{
		ints:    ints,
		sel:     selectMask,
		latched: 0x0f,
		Settle:  DefaultSettle,
	}
}

func (j *Joypad) Reset() {
	j.sel = selectMask
	j.latched = 0x0f
	j.dpad = 0
	j.buttons = 0
	j.settling = 0
}

func (j *Joypad) Label() string {
	return "Joypad"
}

func (j *Joypad) String() string {
	return fmt.Sprintf("P1=0x%02x dpad=%04b buttons=%04b settling=%d", j.register(), j.dpad, j.buttons, j.settling)
}

// the lower nibble for the current selection with no settling delay
func (j *Joypad) lines() uint8 {
	var v uint8
	if j.sel&selectDPad == 0 {
		v |= j.dpad
	}
	if j.sel&selectButtons == 0 {
		v |= j.buttons
	}
	return ^v & 0x0f
}

func (j *Joypad) register() uint8 {
	return 0xc0 | j.sel | j.latched
}

func (j *Joypad) Read(idx uint16) (uint8, error) {
	if idx != Addr {
		return 0, fmt.Errorf("not a joypad register (0x%04x)", idx)
	}
	return j.register(), nil
}

func (j *Joypad) Write(idx uint16, data uint8) error {
	if idx != Addr {
		return fmt.Errorf("not a joypad register (0x%04x)", idx)
	}
	sel := data & selectMask
	if sel != j.sel {
		j.sel = sel
		j.settling = j.Settle
		if j.settling <= 0 {
			j.latched = j.lines()
		}
	}
	return nil
}

// Step advances the joypad by one machine cycle
func (j *Joypad) Step() {
	if j.settling > 0 {
		j.settling--
		if j.settling > 0 {
			return
		}
	}
	j.latched = j.lines()
}

// Update the state of the keys from user input. Returns true if the input was
// used
func (j *Joypad) Update(inp gui.Input) bool {
	var keys *uint8
	var bit uint8

	switch inp.Action {
	case gui.DPadRight:
		keys, bit = &j.dpad, Right
	case gui.DPadLeft:
		keys, bit = &j.dpad, Left
	case gui.DPadUp:
		keys, bit = &j.dpad, Up
	case gui.DPadDown:
		keys, bit = &j.dpad, Down
	case gui.ButtonA:
		keys, bit = &j.buttons, A
	case gui.ButtonB:
		keys, bit = &j.buttons, B
	case gui.Select:
		keys, bit = &j.buttons, Select
	case gui.Start:
		keys, bit = &j.buttons, Start
	default:
		return false
	}

	before := j.lines()
	if inp.Pressed() {
		*keys |= bit
	} else {
		*keys &^= bit
	}
	if j.settling == 0 {
		j.latched = j.lines()
	}

	// a high to low transition on any selected line requests an interrupt
	if before&^j.lines() != 0 {
		j.ints.Request(interrupts.Joypad)
	}

	return true
}
