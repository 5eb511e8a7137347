package video

// NumObjects is the number of objects in the object table
const NumObjects = 40

// BytesPerObject is the size of one entry in the object table
const BytesPerObject = 4

// Flags for the Object.Flags field
const (
	ObjPriority = 0x80
	ObjYFlip    = 0x40
	ObjXFlip    = 0x20
	ObjPalette1 = 0x10
)

// Object is an entry in the object table. The X and Y fields are the position
// of the object plus 8 and 16 respectively
type Object struct {
	Y     uint8
	X     uint8
	Tile  uint8
	Flags uint8
}

// TransferRoutine copies the shadow object table to object memory
type TransferRoutine interface {
	// the machine code for the routine, for the shadow table at the page. the
	// code is copied to high RAM by ObjectPipeline.Init()
	Code(page uint8) []uint8

	// run the routine. the device can only execute code in high RAM while the
	// transfer is taking place
	Run(hw Hardware, page uint8)
}

// DMARoutine triggers OAM DMA and waits for it to complete
type DMARoutine struct{}

// the number of machine cycles the routine waits for the DMA to complete. the
// DMA takes 160 cycles
const dmaWait = 160

func (_ DMARoutine) Code(page uint8) []uint8 {
	return []uint8{
		0x3e, page, // ld a, page
		0xe0, 0x46, // ldh (0x46), a
		0x3e, 0x28, // ld a, 40
		0x3d,       // dec a
		0x20, 0xfd, // jr nz, -3
		0xc9,       // ret
	}
}

func (_ DMARoutine) Run(hw Hardware, page uint8) {
	hw.Write(RegDMA, page)
	hw.Delay(dmaWait)
}

// ObjectPipeline maintains the shadow object table and transfers it to object
// memory
type ObjectPipeline struct {
	hw      Hardware
	routine TransferRoutine

	// the page in work RAM that holds the shadow table
	page uint8

	installed bool
}

func objectAddress(page uint8, index int) uint16 {
	return uint16(page)<<8 + uint16(index*BytesPerObject)
}

// Init installs the transfer routine in high RAM, clears the shadow table and
// transfers the cleared table to object memory. The routine is installed
// only once no matter how many times Init() is called
func (o *ObjectPipeline) Init() {
	if !o.installed {
		Copy(o.hw, HighRAM, o.routine.Code(o.page))
		o.installed = true
	}
	Fill(o.hw, objectAddress(o.page, 0), 0x00, NumObjects*BytesPerObject)
	o.Transfer()
}

// Transfer the shadow table to object memory. Should be called during vblank
func (o *ObjectPipeline) Transfer() {
	o.routine.Run(o.hw, o.page)
}

// Set the object in the shadow table. The index must be less than NumObjects
func (o *ObjectPipeline) Set(index int, obj Object) {
	Copy(o.hw, objectAddress(o.page, index), []uint8{obj.Y, obj.X, obj.Tile, obj.Flags})
}

// Get the object from the shadow table. The index must be less than NumObjects
func (o *ObjectPipeline) Get(index int) Object {
	a := objectAddress(o.page, index)
	return Object{
		Y:     o.hw.Read(a),
		X:     o.hw.Read(a + 1),
		Tile:  o.hw.Read(a + 2),
		Flags: o.hw.Read(a + 3),
	}
}

// SetPosition changes the position of the object in the shadow table. The
// position is in screen coordinates
func (o *ObjectPipeline) SetPosition(index int, x uint8, y uint8) {
	a := objectAddress(o.page, index)
	o.hw.Write(a, y+16)
	o.hw.Write(a+1, x+8)
}

// Page returns the page of the shadow table
func (o *ObjectPipeline) Page() uint8 {
	return o.page
}
