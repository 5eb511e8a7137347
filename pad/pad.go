// Package pad polls the joypad register of the device. The select lines of the
// register take time to settle so every poll reads the register a number of
// times and keeps only the final value.
package pad

import "github.com/jetsetilly/testdmg/video"

// Directions of the d-pad
const (
	Right = 0x01
	Left  = 0x02
	Up    = 0x04
	Down  = 0x08
)

// Buttons
const (
	A      = 0x01
	B      = 0x02
	Select = 0x04
	Start  = 0x08
)

// values written to the joypad register to select a group of keys
const (
	selectDPad    = 0x20
	selectButtons = 0x10
	selectNone    = 0x30
)

// The number of times the register is read after selecting the d-pad and the
// buttons. The button lines take longer to settle
const (
	DefaultDPadSettle   = 2
	DefaultButtonSettle = 6
)

// Pad is the state of the keys as of the most recent call to Poll()
type Pad struct {
	hw video.Hardware

	DPadSettle   int
	ButtonSettle int

	// a set bit means the key is down
	dpad    uint8
	buttons uint8

	// the state at the previous poll. used for edge detection
	prevDPad    uint8
	prevButtons uint8
}

func New(hw video.Hardware) *Pad {
	return &Pad{
		hw:           hw,
		DPadSettle:   DefaultDPadSettle,
		ButtonSettle: DefaultButtonSettle,
	}
}

func (p *Pad) read(settle int) uint8 {
	var v uint8
	for range max(settle, 1) {
		v = p.hw.Read(video.RegJoypad)
	}
	return ^v & 0x0f
}

// Poll the joypad register. The register is left with neither group of keys
// selected
func (p *Pad) Poll() {
	p.prevDPad = p.dpad
	p.prevButtons = p.buttons

	p.hw.Write(video.RegJoypad, selectDPad)
	p.dpad = p.read(p.DPadSettle)

	p.hw.Write(video.RegJoypad, selectButtons)
	p.buttons = p.read(p.ButtonSettle)

	p.hw.Write(video.RegJoypad, selectNone)
}

// Direction returns the direction of the d-pad if exactly one direction is
// held. Otherwise it returns zero
func (p *Pad) Direction() uint8 {
	switch p.dpad {
	case Right, Left, Up, Down:
		return p.dpad
	}
	return 0
}

// DPadDown returns true if the direction is held
func (p *Pad) DPadDown(direction uint8) bool {
	return p.dpad&direction != 0
}

// ButtonDown returns true if the button is held
func (p *Pad) ButtonDown(button uint8) bool {
	return p.buttons&button != 0
}

// Pressed returns true if the button was pressed between the two most recent
// polls
func (p *Pad) Pressed(button uint8) bool {
	return p.buttons&^p.prevButtons&button != 0
}

// DPadPressed is the same as Pressed() but for the d-pad
func (p *Pad) DPadPressed(direction uint8) bool {
	return p.dpad&^p.prevDPad&direction != 0
}

// State returns the raw key state. A set bit means the key is down
func (p *Pad) State() (dpad uint8, buttons uint8) {
	return p.dpad, p.buttons
}
