package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/jetsetilly/testdmg/gui"
)

var statusFace = text.NewGoXFace(basicfont.Face7x13)

// draw the emulation state in the bottom left corner of the screen. nothing is
// drawn while the emulation is running
func (eg *guiEbiten) drawStatus(screen *ebiten.Image) {
	if eg.state == gui.StateRunning {
		return
	}

	s := eg.state.String()
	_, h := text.Measure(s, statusFace, 0)

	b := screen.Bounds()
	x := float64(b.Min.X) + 2
	y := float64(b.Max.Y) - h - 2

	// drop shadow
	var op text.DrawOptions
	op.GeoM.Translate(x+1, y+1)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, s, statusFace, &op)

	op = text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, statusFace, &op)
}
