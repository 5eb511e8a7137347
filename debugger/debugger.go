// Package debugger is the terminal monitor for the emulation. It owns the
// simulated device and the device program, and runs the program on request.
package debugger

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetilly/testdmg/demo"
	"github.com/jetsetilly/testdmg/gui"
	"github.com/jetsetilly/testdmg/hardware"
	"github.com/jetsetilly/testdmg/hardware/lcd"
	"github.com/jetsetilly/testdmg/logger"
	"github.com/jetsetilly/testdmg/tileset"
)

type input struct {
	s   string
	err error
}

type debugger struct {
	ctx  context
	opts Options

	// the gui is nil when running headless
	g       *gui.GUI
	guiQuit chan bool
	sig     chan os.Signal
	input   chan input

	console *hardware.Console
	program *demo.Demo

	// the program has been initialised since the last reset
	started bool

	// command received from the gui while the emulation was running
	pending []string

	// the error that ended the most recent run
	runErr error

	// printing styles
	out    io.Writer
	styles styles
}

func newDebugger(opts Options, g *gui.GUI, guiQuit chan bool, out io.Writer) *debugger {
	m := &debugger{
		ctx: context{
			requestedSpec: opts.Spec,
			useOverlay:    opts.Overlay,
		},
		opts:    opts,
		g:       g,
		guiQuit: guiQuit,
		sig:     make(chan os.Signal, 1),
		input:   make(chan input, 1),
		out:     out,
		styles:  newStyles(out),
	}
	m.ctx.Reset()
	m.console = hardware.Create(&m.ctx, g)
	m.console.Joypad.Settle = opts.Settle
	return m
}

func (m *debugger) print(style lipgloss.Style, s string) {
	fmt.Fprintln(m.out, style.Render(s))
}

func (m *debugger) printf(style lipgloss.Style, format string, args ...any) {
	m.print(style, fmt.Sprintf(format, args...))
}

func (m *debugger) reset() {
	m.ctx.Reset()
	m.console.Reset(m.opts.Random)
	m.program = demo.New(m.console)
	m.started = false
	m.pending = nil
	m.print(m.styles.debugger, "console reset")
}

// start the program if it hasn't been started since the last reset. must be
// called from inside console.Run()
func (m *debugger) start() {
	if m.started {
		return
	}
	m.started = true
	m.program.Init()

	if m.opts.Tiles != "" {
		m.loadTileset(m.opts.Tiles)
	}
}

// load the tileset into the program. must be called from inside console.Run()
func (m *debugger) loadTileset(filename string) {
	ps, err := tileset.Load(filename)
	if err != nil {
		m.print(m.styles.err, err.Error())
		return
	}
	m.program.Tileset(ps)
	m.printf(m.styles.debugger, "%d tiles loaded from %s", min(len(ps), 32), filename)
}

// exec runs the function inside the program. the program is started first if
// necessary
func (m *debugger) exec(f func()) error {
	err := m.console.Run(func() {
		m.start()
		if f != nil {
			f()
		}
	})
	if err != nil {
		return err
	}
	return m.contextBreaks()
}

func (m *debugger) contextBreaks() error {
	if len(m.ctx.breaks) == 0 {
		return nil
	}

	// breaks have been processed and so are now cleared
	defer func() {
		m.ctx.breaks = m.ctx.breaks[:0]
	}()

	return errors.Join(m.ctx.breaks...)
}

func (m *debugger) setState(s gui.State) {
	if m.g == nil {
		return
	}

	// the most recent state is the only one that matters
	select {
	case <-m.g.State:
	default:
	}
	select {
	case m.g.State <- s:
	default:
	}
}

// run the program for the number of frames. a negative number runs the program
// until it is interrupted. returns true if quit signal has been received
func (m *debugger) run(frames int) bool {
	var (
		endRunErr  = errors.New("end run")
		quitErr    = errors.New("quit")
		contextErr = errors.New("context")
		commandErr = errors.New("command")
	)

	// hook is called after every frame
	hook := func() error {
		select {
		case <-m.sig:
			return endRunErr
		case <-m.guiQuit:
			return quitErr
		default:
		}

		if m.console.PauseRequested() {
			return endRunErr
		}

		err := m.contextBreaks()
		if err != nil {
			return fmt.Errorf("%w%w", contextErr, err)
		}

		if m.g != nil {
			select {
			case cmd := <-m.g.Commands:
				// tilesets can be loaded without stopping the emulation
				if len(cmd) == 2 && strings.ToUpper(cmd[0]) == "TILES" {
					m.loadTileset(cmd[1])
					return nil
				}
				m.pending = cmd
				return commandErr
			default:
			}
		}

		return nil
	}

	if frames < 0 {
		m.print(m.styles.debugger, "emulation running")
	}

	var ct int
	var hookErr error
	startTime := time.Now()

	m.setState(gui.StateRunning)
	err := m.console.Run(func() {
		m.start()
		for frames < 0 || ct < frames {
			m.program.Frame()
			ct++
			hookErr = hook()
			if hookErr != nil {
				return
			}
		}
	})
	m.setState(gui.StatePaused)

	if errors.Is(hookErr, quitErr) {
		return true
	}

	m.console.LCD.PushRender()

	m.runErr = err
	if err != nil {
		m.print(m.styles.err, err.Error())
	} else if errors.Is(hookErr, contextErr) {
		s := strings.TrimPrefix(hookErr.Error(), contextErr.Error())
		m.print(m.styles.err, s)
		m.runErr = errors.New(s)
	}

	if frames < 0 || ct > 1 {
		m.printf(m.styles.debugger, "%d frames in %.02f seconds", ct, time.Since(startTime).Seconds())
	}

	if m.console.LCD.Conflicts.Total() > 0 {
		m.print(m.styles.conflict, m.console.LCD.Conflicts.String())
	}

	// it's useful to see the state of the LCD at the end of the run
	m.print(m.styles.video, m.console.LCD.Coords.String())

	return false
}

func (m *debugger) loop() {
	for {
		fmt.Fprintf(m.out, "%s> ", m.console.LCD.Coords.ShortString())

		var cmd []string

		if m.pending != nil {
			cmd = m.pending
			m.pending = nil
			fmt.Fprintln(m.out, strings.Join(cmd, " "))
		} else {
			select {
			case input := <-m.input:
				if input.err != nil {
					m.print(m.styles.err, input.err.Error())
					return
				}
				cmd = strings.Fields(input.s)
				if len(cmd) == 0 {
					cmd = []string{"STEP"}
				}
			case cmd = <-m.guiCommands():
				fmt.Fprintln(m.out, strings.Join(cmd, " "))
			case <-m.sig:
				fmt.Fprint(m.out, "\r")
				return
			case <-m.guiQuit:
				fmt.Fprint(m.out, "\n")
				return
			}
		}

		if m.commands(cmd) {
			return
		}
	}
}

// the gui command channel. a nil channel if there is no gui
func (m *debugger) guiCommands() chan []string {
	if m.g == nil {
		return nil
	}
	return m.g.Commands
}

func startProfile() (func(), error) {
	f, err := os.Create("cpu.profile")
	if err != nil {
		return nil, fmt.Errorf("performance: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("performance: %w", err)
	}

	return func() {
		pprof.StopCPUProfile()
		err := f.Close()
		if err != nil {
			logger.Log(logger.Allow, "performance", err)
		}
	}, nil
}

// Launch the interactive debugger. The function returns when the user quits
// or when the gui is closed
func Launch(guiQuit chan bool, g *gui.GUI, opts Options) error {
	m := newDebugger(opts, g, guiQuit, os.Stdout)

	signal.Notify(m.sig, syscall.SIGINT)

	go func() {
		r := bufio.NewReader(os.Stdin)
		for {
			s, err := r.ReadString('\n')
			m.input <- input{
				s:   strings.TrimSpace(s),
				err: err,
			}
			if err != nil {
				return
			}
		}
	}()

	if opts.Profile {
		stop, err := startProfile()
		if err != nil {
			return err
		}
		defer stop()
	}

	m.reset()

	if opts.Frames > 0 {
		if m.run(opts.Frames) {
			return nil
		}
	} else {
		m.setState(gui.StatePaused)
	}

	m.loop()

	return nil
}

// Headless runs the program for the number of frames in the options without a
// gui or a prompt. The final frame is saved if a PNG file is specified
func Headless(opts Options, out io.Writer) error {
	m := newDebugger(opts, nil, nil, out)

	if opts.Profile {
		stop, err := startProfile()
		if err != nil {
			return err
		}
		defer stop()
	}

	m.reset()
	m.run(opts.Frames)
	if m.runErr != nil {
		return m.runErr
	}

	if opts.PNG != "" {
		err := writePNG(opts.PNG, m.console.LCD)
		if err != nil {
			return err
		}
		m.printf(m.styles.debugger, "frame saved to %s", opts.PNG)
	}

	if m.console.LCD.Conflicts.Total() > 0 {
		return fmt.Errorf("%d bus conflicts", m.console.LCD.Conflicts.Total())
	}

	return nil
}

func writePNG(filename string, l *lcd.LCD) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	defer f.Close()

	err = png.Encode(f, l.LastFrame())
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}

	return nil
}
