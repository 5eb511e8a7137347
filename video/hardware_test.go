package video_test

import "github.com/jetsetilly/testdmg/video"

// fakeHardware is a flat 64K address space with just enough behaviour to
// exercise the video layer
type fakeHardware struct {
	mem     [0x10000]uint8
	vectors map[uint8]func()
	ime     bool

	// the order of writes
	writes []uint16

	halts  int
	delays int

	// the number of halts that will be ended by an interrupt other than vblank
	spurious int
}

func newFakeHardware() *fakeHardware {
	return &fakeHardware{
		vectors: make(map[uint8]func()),
	}
}

func (hw *fakeHardware) Read(address uint16) uint8 {
	return hw.mem[address]
}

func (hw *fakeHardware) Write(address uint16, data uint8) {
	hw.mem[address] = data
	hw.writes = append(hw.writes, address)
}

// scanning puts the LCD into the pixel transfer mode
func (hw *fakeHardware) scanning() {
	hw.mem[video.RegLCDControl] |= video.LCDOn
	hw.mem[video.RegLCDStatus] = 0x83
}

func (hw *fakeHardware) Halt() {
	hw.halts++
	hw.writes = append(hw.writes, 0)

	if hw.spurious > 0 {
		hw.spurious--
		return
	}

	// the LCD is now in vblank
	hw.mem[video.RegLCDStatus] = 0x81
	if hw.ime && hw.mem[video.RegInterruptEnable]&video.IntVBlank == video.IntVBlank {
		if h, ok := hw.vectors[video.IntVBlank]; ok {
			h()
		}
	}
}

func (hw *fakeHardware) Delay(cycles int) {
	hw.delays += cycles
}

func (hw *fakeHardware) EnableInterrupts() {
	hw.ime = true
}

func (hw *fakeHardware) DisableInterrupts() {
	hw.ime = false
}

func (hw *fakeHardware) Vector(interrupt uint8, handler func()) {
	hw.vectors[interrupt] = handler
}
