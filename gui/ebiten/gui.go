// Package ebiten presents the emulation in a window. Frames arrive on the
// gui.GUI SetImage channel and user input is sent on the UserInput channel.
package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/jetsetilly/testdmg/gui"
	"github.com/jetsetilly/testdmg/logger"
	"github.com/jetsetilly/testdmg/version"
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	endGui chan bool

	state gui.State

	main    *ebiten.Image
	overlay *ebiten.Image
	prev    *ebiten.Image
	prevID  string
	cursor  [2]int

	// width/height of incoming image from emulation. not to be confused with window dimensions
	width  int
	height int

	// a simple counter used to implement a fade-in/fade-out effect for the
	// debugging cursor
	cursorFrame int

	inputSystem  input.System
	inputHandler *input.Handler

	// actions held at the previous update
	held map[input.Action]bool

	// the most recent tileset file selected with the file dialog
	lastTileset string

	// result of the file dialog, which runs in its own goroutine
	dialogResult chan dialogResult
}

func (eg *guiEbiten) Update() error {
	// deal with quit condition
	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	// handle user input
	err := eg.input()
	if err != nil {
		return err
	}

	// drag and drop of files is a special type of input
	err = eg.inputDragAndDrop()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	eg.checkDialog()

	// change state if necessary
	select {
	case eg.state = <-eg.g.State:
	default:
	}

	// run option update function
	if eg.g.UpdateGUI != nil {
		err := eg.g.UpdateGUI()
		if err != nil {
			return err
		}
	}

	// retrieve any pending images
	select {
	case img := <-eg.g.SetImage:
		eg.cursor = img.Cursor

		if img.Main != nil {
			if eg.main == nil || eg.main.Bounds() != img.Main.Bounds() {
				eg.width = img.Main.Bounds().Dx()
				eg.height = img.Main.Bounds().Dy()
				eg.main = ebiten.NewImage(eg.width, eg.height)
			}
			eg.main.WritePixels(img.Main.Pix)
		}

		if img.Prev != nil {
			if eg.prev == nil || eg.prev.Bounds() != img.Prev.Bounds() {
				eg.prev = ebiten.NewImage(eg.width, eg.height)
				eg.prevID = ""
			}
			if img.ID != eg.prevID {
				eg.prev.WritePixels(img.Prev.Pix)
				eg.prevID = img.ID
			}
		} else {
			eg.prev = nil
		}

		if img.Overlay != nil {
			if eg.overlay == nil || eg.overlay.Bounds() != img.Overlay.Bounds() {
				eg.overlay = ebiten.NewImage(eg.width, eg.height)
			}
			eg.overlay.WritePixels(img.Overlay.Pix)
		} else {
			eg.overlay = nil
		}

	default:
	}

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	eg.cursorFrame++

	if eg.main != nil {
		if eg.prev != nil && eg.state == gui.StatePaused {
			var op ebiten.DrawImageOptions
			op.ColorScale.SetR(0.2)
			op.ColorScale.SetG(0.2)
			op.ColorScale.SetB(0.2)
			op.ColorScale.SetA(1.0)
			screen.DrawImage(eg.prev, &op)
		}

		var op ebiten.DrawImageOptions
		op.Blend = ebiten.BlendSourceOver
		screen.DrawImage(eg.main, &op)

		if eg.overlay != nil {
			var op ebiten.DrawImageOptions
			op.Blend = ebiten.BlendLighter
			screen.DrawImage(eg.overlay, &op)
		}

		// draw cursor if emulation is paused
		if eg.state == gui.StatePaused {
			v := uint8((math.Sin(float64(eg.cursorFrame/10))*0.5 + 0.5) * 255)
			c := color.RGBA{R: v, G: v, B: v, A: 255}
			screen.Set(eg.cursor[0], eg.cursor[1], c)
			screen.Set(eg.cursor[0]+1, eg.cursor[1], c)
			screen.Set(eg.cursor[0], eg.cursor[1]+1, c)
			screen.Set(eg.cursor[0]+1, eg.cursor[1]+1, c)
		}
	}

	eg.drawStatus(screen)

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	if eg.main != nil {
		return eg.width, eg.height
	}
	return width, height
}

// the size of the window when there is no saved geometry
const (
	defaultScale  = 4
	defaultWidth  = 160 * defaultScale
	defaultHeight = 144 * defaultScale
)

func Launch(endGui chan bool, g *gui.GUI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg := &guiEbiten{
		endGui:       endGui,
		g:            g,
		state:        gui.StateRunning,
		dialogResult: make(chan dialogResult, 1),
	}
	eg.initInput()

	// wait for the first state change and a possible quit request
	select {
	case eg.state = <-g.State:
	case <-endGui:
		return nil
	}

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
			return
		}
	}()

	return ebiten.RunGame(eg)
}
