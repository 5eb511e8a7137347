package video

// Hardware is the hardware access layer
type Hardware interface {
	// byte access to the device's address space
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// halt until any enabled interrupt is requested
	Halt()

	// fixed delay measured in machine cycles
	Delay(cycles int)

	EnableInterrupts()
	DisableInterrupts()

	// install the service routine for an interrupt. the interrupt value is the
	// bit in the interrupt enable register
	Vector(interrupt uint8, handler func())
}

// Copy the data to memory starting at the destination address
func Copy(hw Hardware, dest uint16, data []uint8) {
	for i, d := range data {
		hw.Write(dest+uint16(i), d)
	}
}

// Fill n bytes of memory with value starting at the destination address
func Fill(hw Hardware, dest uint16, value uint8, n int) {
	for i := range n {
		hw.Write(dest+uint16(i), value)
	}
}

// Addresses of memory areas and registers used by the video layer
const (
	TileData      = 0x8000
	TileMap0      = 0x9800
	TileMap1      = 0x9c00
	ShadowObjects = 0xdf00
	ObjectMemory  = 0xfe00
	HighRAM       = 0xff80

	RegJoypad          = 0xff00
	RegInterruptFlag   = 0xff0f
	RegLCDControl      = 0xff40
	RegLCDStatus       = 0xff41
	RegScrollY         = 0xff42
	RegScrollX         = 0xff43
	RegDMA             = 0xff46
	RegBGPalette       = 0xff47
	RegObjPalette0     = 0xff48
	RegObjPalette1     = 0xff49
	RegInterruptEnable = 0xffff
)

// IntVBlank is the vblank bit of the interrupt enable and interrupt flag
// registers
const IntVBlank = 0x01

// Flags for the LCD control register
const (
	LCDOff     = 0x00
	LCDOn      = 0x80
	WinMap9C00 = 0x40
	WinOn      = 0x20
	BG8000     = 0x10
	BGMap9C00  = 0x08
	OBJ16      = 0x04
	OBJOn      = 0x02
	BGOn       = 0x01
)

// Dimensions of the tile map and the visible screen, in cells
const (
	MapWidth      = 32
	MapCells      = MapWidth * MapWidth
	ScreenColumns = 20
	ScreenRows    = 18
)

// the LCD status mode value for vblank
const statusVBlank = 0x01
