package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/testdmg/debugger"
	"github.com/jetsetilly/testdmg/gui"
	"github.com/jetsetilly/testdmg/gui/ebiten"
)

func main() {
	opts, err := debugger.ParseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Printf("*** %s\n", err)
		os.Exit(10)
	}

	if opts.Headless {
		if err := debugger.Headless(opts, os.Stdout); err != nil {
			fmt.Printf("*** %s\n", err)
			os.Exit(20)
		}
		return
	}

	var endGui chan bool
	var endDebugger chan bool
	var resultGui chan error
	var resultDebugger chan error

	// buffered channels. this means we don't have to worry about the gui closing
	// before the debugger and vice versa
	endGui = make(chan bool, 1)
	endDebugger = make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and debugger will end
	resultGui = make(chan error, 1)
	resultDebugger = make(chan error, 1)

	g := gui.NewGUI()

	go func() {
		resultGui <- ebiten.Launch(endGui, g)
		endDebugger <- true
	}()

	go func() {
		resultDebugger <- debugger.Launch(endDebugger, g, opts)
		endGui <- true
	}()

	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
	}
	if err := <-resultDebugger; err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
