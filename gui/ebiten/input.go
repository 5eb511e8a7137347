package ebiten

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/jetsetilly/testdmg/gui"
)

// the emulation inputs. the action values are the same as the gui values
const (
	ActionLeft    = input.Action(gui.DPadLeft)
	ActionUp      = input.Action(gui.DPadUp)
	ActionRight   = input.Action(gui.DPadRight)
	ActionDown    = input.Action(gui.DPadDown)
	ActionButtonA = input.Action(gui.ButtonA)
	ActionButtonB = input.Action(gui.ButtonB)
	ActionSelect  = input.Action(gui.Select)
	ActionStart   = input.Action(gui.Start)
	ActionPause   = input.Action(gui.Pause)
)

var actions = []input.Action{
	ActionLeft, ActionUp, ActionRight, ActionDown,
	ActionButtonA, ActionButtonB, ActionSelect, ActionStart,
	ActionPause,
}

func (eg *guiEbiten) initInput() {
	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	keymap := input.Keymap{
		ActionLeft:    {input.KeyGamepadLeft, input.KeyLeft},
		ActionUp:      {input.KeyGamepadUp, input.KeyUp},
		ActionRight:   {input.KeyGamepadRight, input.KeyRight},
		ActionDown:    {input.KeyGamepadDown, input.KeyDown},
		ActionButtonA: {input.KeyGamepadA, input.KeyX, input.KeySpace},
		ActionButtonB: {input.KeyGamepadB, input.KeyZ},
		ActionSelect:  {input.KeyGamepadBack, input.KeyBackspace},
		ActionStart:   {input.KeyGamepadStart, input.KeyEnter},
		ActionPause:   {input.KeyF3},
	}
	eg.inputHandler = eg.inputSystem.NewHandler(0, keymap)
	eg.held = make(map[input.Action]bool)
}

func (eg *guiEbiten) input() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		eg.openTilesetDialog()
	}

	eg.inputSystem.Update()

	for _, a := range actions {
		pressed := eg.inputHandler.ActionIsPressed(a)
		if pressed == eg.held[a] {
			continue // for loop
		}
		inp := gui.Input{Action: gui.Action(a), Data: pressed}

		// the change is sent again next update if the channel is full
		select {
		case eg.g.UserInput <- inp:
			eg.held[a] = pressed
		default:
			return nil
		}
	}

	return nil
}

func (eg *guiEbiten) command(cmd ...string) {
	select {
	case eg.g.Commands <- cmd:
	default:
	}
}

// a dropped file is treated as a tileset. the dropped file system does not
// expose the path of the file so it is taken from the formatted value
func (eg *guiEbiten) inputDragAndDrop() error {
	df := ebiten.DroppedFiles()
	if df == nil {
		return nil
	}

	f := fmt.Sprintf("%#v", df)
	s := strings.Split(f, "\"")
	if len(s) > 1 {
		eg.command("TILES", s[1])
	}
	return nil
}
