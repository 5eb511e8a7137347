package hardware

import (
	"github.com/jetsetilly/testdmg/gui"
	"github.com/jetsetilly/testdmg/logger"
)

// drain the user input channel and forward the inputs to the joypad
func (con *Console) handleInput() {
	if con.g == nil {
		return
	}

	var drained bool
	for !drained {
		select {
		default:
			drained = true
		case inp := <-con.g.UserInput:
			if inp.Action == gui.Pause {
				if inp.Pressed() {
					con.pause = true
				}
			} else if !con.Joypad.Update(inp) {
				if inp.Action != gui.Nothing {
					logger.Logf(logger.Allow, "input", "%s not used by joypad", inp.Action)
				}
			}
		}
	}
}
