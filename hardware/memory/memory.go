package memory

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/testdmg/hardware/memory/ram"
)

// ErrUnmapped is wrapped by the error returned for accesses to addresses that
// have nothing attached to them
var ErrUnmapped = errors.New("unmapped address")

// origins of the memory areas
const (
	OriginVRAM = 0x8000
	OriginWRAM = 0xc000
	OriginEcho = 0xe000
	OriginOAM  = 0xfe00
	OriginIO   = 0xff00
	OriginHRAM = 0xff80
)

// sizes of the RAM areas
const (
	SizeVRAM = 0x2000
	SizeWRAM = 0x2000
	SizeOAM  = 0xa0
	SizeHRAM = 0x7f
)

type Memory struct {
	VRAM *ram.RAM
	WRAM *ram.RAM
	OAM  *ram.RAM
	HRAM *ram.RAM

	// register areas. index values for these areas are the full address
	LCD        Area
	Joypad     Area
	Interrupts Area

	// the state of the bus
	bus Bus

	// the most recent area written to by the CPU
	Last Area
}

type Context interface {
	ram.Context
}

// Bus is implemented by the chip that controls access to VRAM and OAM
type Bus interface {
	// video RAM is locked during pixel transfer
	VRAMLocked() bool

	// object memory is locked during the OAM scan and pixel transfer
	OAMLocked() bool

	// only IO and high RAM are accessible to the CPU during OAM DMA
	DMAActive() bool
}

func Create(ctx Context) (*Memory, AddChips) {
	mem := &Memory{
		VRAM: ram.Create(ctx, "VRAM", OriginVRAM, SizeVRAM),
		WRAM: ram.Create(ctx, "WRAM", OriginWRAM, SizeWRAM),
		OAM:  ram.Create(ctx, "OAM", OriginOAM, SizeOAM),
		HRAM: ram.Create(ctx, "HRAM", OriginHRAM, SizeHRAM),
	}
	return mem, func(lcd Area, joypad Area, ints Area, bus Bus) {
		mem.LCD = lcd
		mem.Joypad = joypad
		mem.Interrupts = ints
		mem.bus = bus
	}
}

// AddChips is returned by the Create() function and should be called to
// finalise the memory creation process
type AddChips func(lcd Area, joypad Area, ints Area, bus Bus)

func (mem *Memory) Reset(random bool) {
	mem.VRAM.Reset(random)
	mem.WRAM.Reset(random)
	mem.OAM.Reset(random)
	mem.HRAM.Reset(random)
	mem.Last = nil
}

type Area interface {
	// read and write both take an index value. for RAM areas this is the
	// address with the area origin removed. for register areas it is the
	// address itself
	Read(idx uint16) (uint8, error)
	Write(idx uint16, data uint8) error
	Label() string
}

// MapAddress returns the memory "area" and index into the area corresponding
// to the address.
//
// It is possible for a nil Area to be returned. In which case, the index value
// will be zero.
func (mem *Memory) MapAddress(address uint16) (uint16, Area) {
	// 0000 to 7FFF	cartridge ROM (not present)
	// 8000 to 9FFF	video RAM
	// A000 to BFFF	cartridge RAM (not present)
	// C000 to DFFF	work RAM
	// E000 to FDFF	echo of work RAM
	// FE00 to FE9F	object memory
	// FEA0 to FEFF	unusable
	// FF00 to FF7F	IO registers
	// FF80 to FFFE	high RAM
	// FFFF		interrupt enable

	switch {
	case address >= OriginVRAM && address < OriginVRAM+SizeVRAM:
		return address - OriginVRAM, mem.VRAM
	case address >= OriginWRAM && address < OriginWRAM+SizeWRAM:
		return address - OriginWRAM, mem.WRAM
	case address >= OriginEcho && address < OriginOAM:
		return address - OriginEcho, mem.WRAM
	case address >= OriginOAM && address < OriginOAM+SizeOAM:
		return address - OriginOAM, mem.OAM
	case address == 0xff00:
		return address, mem.Joypad
	case address == 0xff0f:
		return address, mem.Interrupts
	case address >= 0xff40 && address <= 0xff4b:
		return address, mem.LCD
	case address >= OriginHRAM && address < OriginHRAM+SizeHRAM:
		return address - OriginHRAM, mem.HRAM
	case address == 0xffff:
		return address, mem.Interrupts
	}

	return 0, nil
}

// conflict returns a non-nil error if the address can not be accessed by the
// CPU in the current state of the bus
func (mem *Memory) conflict(address uint16, write bool) error {
	if mem.bus == nil {
		return nil
	}
	if mem.bus.DMAActive() && address < OriginIO {
		return Conflict{Kind: ConflictDMA, Address: address, Write: write}
	}
	if address >= OriginVRAM && address < OriginVRAM+SizeVRAM && mem.bus.VRAMLocked() {
		return Conflict{Kind: ConflictVRAM, Address: address, Write: write}
	}
	if address >= OriginOAM && address < OriginOAM+SizeOAM && mem.bus.OAMLocked() {
		return Conflict{Kind: ConflictOAM, Address: address, Write: write}
	}
	return nil
}

// Read is the CPU's view of memory. Reads that conflict with the video
// hardware return 0xff and an error of type Conflict
func (mem *Memory) Read(address uint16) (uint8, error) {
	if err := mem.conflict(address, false); err != nil {
		return 0xff, err
	}
	return mem.Peek(address)
}

// Write is the CPU's view of memory. Writes that conflict with the video
// hardware have no effect and return an error of type Conflict
func (mem *Memory) Write(address uint16, data uint8) error {
	if err := mem.conflict(address, true); err != nil {
		return err
	}
	idx, area := mem.MapAddress(address)
	if area == nil {
		return fmt.Errorf("write %04x: %w", address, ErrUnmapped)
	}
	mem.Last = area
	err := area.Write(idx, data)
	if err != nil {
		return fmt.Errorf("write %04x: %w", address, err)
	}
	return nil
}

// Peek reads memory without regard to the state of the bus. Used by the OAM
// DMA engine and by the debugger
func (mem *Memory) Peek(address uint16) (uint8, error) {
	idx, area := mem.MapAddress(address)
	if area == nil {
		return 0xff, fmt.Errorf("read %04x: %w", address, ErrUnmapped)
	}
	v, err := area.Read(idx)
	if err != nil {
		return 0xff, fmt.Errorf("read %04x: %w", address, err)
	}
	return v, nil
}

// Poke writes memory without regard to the state of the bus
func (mem *Memory) Poke(address uint16, data uint8) error {
	idx, area := mem.MapAddress(address)
	if area == nil {
		return fmt.Errorf("write %04x: %w", address, ErrUnmapped)
	}
	err := area.Write(idx, data)
	if err != nil {
		return fmt.Errorf("write %04x: %w", address, err)
	}
	return nil
}
