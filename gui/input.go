package gui

// Action is a single user input
type Action int

const (
	Nothing Action = iota

	DPadLeft
	DPadUp
	DPadRight
	DPadDown
	ButtonA
	ButtonB
	Select
	Start
	Pause
)

func (a Action) String() string {
	switch a {
	case DPadLeft:
		return "left"
	case DPadUp:
		return "up"
	case DPadRight:
		return "right"
	case DPadDown:
		return "down"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case Select:
		return "select"
	case Start:
		return "start"
	case Pause:
		return "pause"
	}
	return "nothing"
}

// Input is sent over the UserInput channel. For the d-pad and buttons the Data
// field is a bool indicating whether the input is pressed (true) or released
// (false)
type Input struct {
	Action Action
	Data   any
}

// Pressed returns the Data field as a bool. Data that is not a bool is
// treated as a press
func (inp Input) Pressed() bool {
	if b, ok := inp.Data.(bool); ok {
		return b
	}
	return true
}
