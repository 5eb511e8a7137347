package video

// Context is the video layer for a single device
type Context struct {
	hw Hardware

	Gate    *VBlankGate
	Tiles   *TileBank
	View    *Viewport
	Console *Console
	Objects *ObjectPipeline
}

// NewContext creates the video layer for the hardware and installs the vblank
// interrupt handler. If routine is nil the DMARoutine is used
func NewContext(hw Hardware, routine TransferRoutine) *Context {
	if routine == nil {
		routine = DMARoutine{}
	}

	ctx := &Context{
		hw:    hw,
		Gate:  &VBlankGate{hw: hw},
		Tiles: &TileBank{hw: hw},
		View:  &Viewport{hw: hw},
		Objects: &ObjectPipeline{
			hw:      hw,
			routine: routine,
			page:    ShadowObjects >> 8,
		},
	}

	ctx.Console = &Console{
		hw:      hw,
		gate:    ctx.Gate,
		view:    ctx.View,
		xLimit:  ScreenColumns,
		yLimit:  ScreenRows,
		tileMap: TileMap0,
	}

	hw.Vector(IntVBlank, ctx.Gate.Signal)

	return ctx
}

// SetLCDMode writes the LCD control register. The value is a combination of
// the LCD flags
func (ctx *Context) SetLCDMode(mode uint8) {
	ctx.hw.Write(RegLCDControl, mode)
}

func (ctx *Context) LCDMode() uint8 {
	return ctx.hw.Read(RegLCDControl)
}

func (ctx *Context) SetBGPalette(palette uint8) {
	ctx.hw.Write(RegBGPalette, palette)
}

// SetObjectPalette sets object palette 0 or 1
func (ctx *Context) SetObjectPalette(i int, palette uint8) {
	if i == 0 {
		ctx.hw.Write(RegObjPalette0, palette)
	} else {
		ctx.hw.Write(RegObjPalette1, palette)
	}
}

// SetAllTileMaps fills both tile maps with the tile
func (ctx *Context) SetAllTileMaps(tile uint8) {
	Fill(ctx.hw, TileMap0, tile, MapCells*2)
}

// WithDisplayOff switches the LCD off at the next vblank, runs the function
// and then restores the LCD mode. The tile maps and pattern memory can be
// written freely while the LCD is off.
//
// The vblank gate must be enabled if the LCD is on
func (ctx *Context) WithDisplayOff(f func()) {
	mode := ctx.LCDMode()
	if mode&LCDOn == LCDOn {
		ctx.Gate.Wait()
		ctx.SetLCDMode(mode &^ LCDOn)
	}
	f()
	ctx.SetLCDMode(mode)
}
