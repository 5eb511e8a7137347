// Package gui is the bridge between the emulation and whatever is presenting
// the emulation to the user. The emulation and the presentation run in
// different goroutines and communicate only through the channels in the GUI
// type.
package gui

import (
	"image"
)

// State of the emulation as seen by the presentation layer
type State int

const (
	StateRunning State = iota
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// Image is a single frame sent from the emulation
type Image struct {
	// the LCD image
	Main *image.RGBA

	// debugging information drawn over the LCD image. can be nil
	Overlay *image.RGBA

	// the previous frame. used to show what has been drawn so far when the
	// emulation is paused part way through a frame
	Prev *image.RGBA

	// unique identifier for the image
	ID string

	// position of the beam in the image
	Cursor [2]int
}

type GUI struct {
	// frames from the emulation
	SetImage chan Image

	// input from the user to the emulation
	UserInput chan Input

	// changes of emulation state
	State chan State

	// commands from the presentation to the debugger. the first entry in the
	// slice is the command and any remaining entries are arguments
	Commands chan []string

	// optional function run by the presentation layer once per update
	UpdateGUI func() error
}

func NewGUI() *GUI {
	return &GUI{
		SetImage:  make(chan Image, 1),
		UserInput: make(chan Input, 10),
		State:     make(chan State, 1),
		Commands:  make(chan []string, 1),
	}
}
