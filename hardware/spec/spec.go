package spec

import (
	"image/color"

	"github.com/jetsetilly/testdmg/hardware/clocks"
)

// Timing of the LCD in dots. There are four dots in every machine cycle
const (
	ClksScanline = 456
	ClksOAMScan  = 80
	ClksPixels   = 172

	// the first dot of horizontal blank
	ClksHBLANK = ClksOAMScan + ClksPixels
)

// Dimensions of the LCD in scanlines
const (
	ScanlinesVisible = 144
	ScanlinesTotal   = 154
)

// Width of the LCD in pixels
const PixelsVisible = 160

// ClksFrame is the number of dots in a complete frame
const ClksFrame = ClksScanline * ScanlinesTotal

type Spec struct {
	ID string

	// the four shades of the LCD from lightest (colour 0) to darkest (colour 3)
	Palette [4]color.RGBA

	// the colour of the LCD when it is switched off. slightly lighter than
	// colour zero on a real unit
	Off color.RGBA

	// dot clock of the LCD
	Clock float64
}

// RefreshRate returns the number of frames per second for the specification
func (s Spec) RefreshRate() float64 {
	return s.Clock / ClksFrame
}

var DMG = Spec{
	ID: "DMG",
	Palette: [4]color.RGBA{
		{R: 0x9b, G: 0xbc, B: 0x0f, A: 255},
		{R: 0x8b, G: 0xac, B: 0x0f, A: 255},
		{R: 0x30, G: 0x62, B: 0x30, A: 255},
		{R: 0x0f, G: 0x38, B: 0x0f, A: 255},
	},
	Off:   color.RGBA{R: 0xa5, G: 0xc6, B: 0x1a, A: 255},
	Clock: clocks.DMG,
}

var Pocket = Spec{
	ID: "POCKET",
	Palette: [4]color.RGBA{
		{R: 0xc4, G: 0xcf, B: 0xa1, A: 255},
		{R: 0x8b, G: 0x95, B: 0x6d, A: 255},
		{R: 0x4d, G: 0x53, B: 0x3c, A: 255},
		{R: 0x1f, G: 0x1f, B: 0x1f, A: 255},
	},
	Off:   color.RGBA{R: 0xd0, G: 0xd8, B: 0xb0, A: 255},
	Clock: clocks.DMG,
}

// Lookup returns the specification with the ID. The ID is case sensitive
func Lookup(id string) (Spec, bool) {
	switch id {
	case DMG.ID:
		return DMG, true
	case Pocket.ID:
		return Pocket, true
	}
	return Spec{}, false
}
