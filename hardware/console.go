package hardware

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/testdmg/gui"
	"github.com/jetsetilly/testdmg/hardware/clocks"
	"github.com/jetsetilly/testdmg/hardware/interrupts"
	"github.com/jetsetilly/testdmg/hardware/joypad"
	"github.com/jetsetilly/testdmg/hardware/lcd"
	"github.com/jetsetilly/testdmg/hardware/memory"
	"github.com/jetsetilly/testdmg/hardware/spec"
)

// Context allows the console to signal a break and to query the environment
type Context interface {
	Break(error)
	Spec() spec.Spec
	UseOverlay() bool
	Rand8Bit() uint8
}

// the wrapping error for any errors passed to Context.Break()
var ContextError = errors.New("hardware")

// ErrHung is returned by Run() when the program halts in a state from which the
// device can never wake
var ErrHung = errors.New("device hung")

// hung is the value used to unwind the program when the device has hung
type hung struct {
	reason string
}

// machine cycles taken by the dispatch of an interrupt and the return from the
// service routine
const (
	dispatchCycles = 5
	returnCycles   = 4
)

// the number of machine cycles in one frame. used to detect a hung device
const cyclesPerFrame = spec.ClksFrame / clocks.MachineCycle

// Console is the simulated device. The device program drives the console by
// accessing memory and by calling the Halt() and Delay() functions. Each
// memory access takes one machine cycle. Interrupts are serviced at machine
// cycle boundaries.
type Console struct {
	ctx Context
	g   *gui.GUI

	Mem        *memory.Memory
	LCD        *lcd.LCD
	Interrupts *interrupts.Interrupts
	Joypad     *joypad.Joypad

	// the frame limiter is only used when there is a gui
	limit *limiter

	vectors     map[interrupts.Interrupt]func()
	inInterrupt bool

	// number of machine cycles since reset
	Cycles uint64

	// the number of consecutive halts that were woken by an interrupt that
	// could not be serviced because IME was disabled
	unserviced int

	// user input is handled once per frame
	inputFrame int

	// the user has requested that the emulation pause
	pause bool
}

// Create a new console. The gui argument can be nil
func Create(ctx Context, g *gui.GUI) *Console {
	con := &Console{
		ctx:        ctx,
		g:          g,
		Interrupts: &interrupts.Interrupts{},
		vectors:    make(map[interrupts.Interrupt]func()),
	}

	var addChips memory.AddChips
	con.Mem, addChips = memory.Create(ctx)
	con.Joypad = joypad.Create(con.Interrupts)

	if g != nil {
		con.limit = newLimiter(ctx.Spec())
		con.LCD = lcd.Create(ctx, g, con.Interrupts, con.Mem, con, con.limit)
	} else {
		con.LCD = lcd.Create(ctx, nil, con.Interrupts, con.Mem, con, nil)
	}

	addChips(con.LCD, con.Joypad, con.Interrupts, con.LCD)
	con.Reset(false)

	return con
}

func (con *Console) Reset(random bool) {
	con.Mem.Reset(random)
	con.LCD.Reset()
	con.Interrupts.Reset()
	con.Joypad.Reset()
	clear(con.vectors)
	con.inInterrupt = false
	con.Cycles = 0
	con.unserviced = 0
	con.inputFrame = 0
	con.pause = false
}

func (con *Console) String() string {
	return fmt.Sprintf("cycles=%d %s", con.Cycles, con.LCD.Coords.String())
}

// Run the program. The function returns when the program returns or when the
// device has hung
func (con *Console) Run(program func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if h, ok := r.(hung); ok {
				err = fmt.Errorf("%w: %s", ErrHung, h.reason)
				return
			}
			panic(r)
		}
	}()
	program()
	return nil
}

// InInterrupt returns true if an interrupt service routine is running
func (con *Console) InInterrupt() bool {
	return con.inInterrupt
}

// PauseRequested returns true if the user has asked for the emulation to
// pause since the last call to the function
func (con *Console) PauseRequested() bool {
	p := con.pause
	con.pause = false
	return p
}

// Nudge the frame limiter so that the next frame is not delayed
func (con *Console) Nudge() {
	if con.limit != nil {
		con.limit.Nudge()
	}
}

// cycle advances the hardware by one machine cycle
func (con *Console) cycle() {
	con.Cycles++
	for range clocks.MachineCycle {
		con.LCD.Tick()
	}
	con.LCD.StepDMA()
	con.Joypad.Step()

	if con.LCD.Coords.Frame != con.inputFrame {
		con.inputFrame = con.LCD.Coords.Frame
		con.handleInput()
	}
}

// step is a machine cycle followed by an interrupt check
func (con *Console) step() {
	con.cycle()
	con.serviceInterrupts()
}

func (con *Console) serviceInterrupts() {
	if con.inInterrupt || !con.Interrupts.IME() {
		return
	}
	i, ok := con.Interrupts.Pending()
	if !ok {
		return
	}

	con.Interrupts.SetIME(false)
	con.Interrupts.Acknowledge(i)
	con.inInterrupt = true

	for range dispatchCycles {
		con.cycle()
	}
	if h, ok := con.vectors[i]; ok {
		h()
	}
	for range returnCycles {
		con.cycle()
	}

	con.inInterrupt = false
	con.Interrupts.SetIME(true)
}

// access deals with the error from a memory access
func (con *Console) access(err error) {
	if err == nil {
		return
	}
	var c memory.Conflict
	if errors.As(err, &c) {
		con.LCD.Conflict(c)
		return
	}
	con.ctx.Break(fmt.Errorf("%w: %w", ContextError, err))
}

// Read memory. The access takes one machine cycle
func (con *Console) Read(address uint16) uint8 {
	v, err := con.Mem.Read(address)
	con.access(err)
	con.step()
	return v
}

// Write memory. The access takes one machine cycle
func (con *Console) Write(address uint16, data uint8) {
	con.access(con.Mem.Write(address, data))
	con.step()
}

// Halt the device until an enabled interrupt is requested. If IME is set the
// interrupt is serviced before the function returns
func (con *Console) Halt() {
	con.cycle()

	var ct int
	for {
		if _, ok := con.Interrupts.Pending(); ok {
			break // for loop
		}
		con.cycle()
		ct++
		if ct > cyclesPerFrame*2 {
			panic(hung{reason: "halted with no interrupt source"})
		}
	}

	if con.Interrupts.IME() {
		con.unserviced = 0
	} else {
		con.unserviced++
		if con.unserviced > cyclesPerFrame {
			panic(hung{reason: "halted repeatedly with interrupts disabled"})
		}
	}

	con.serviceInterrupts()
}

// Delay the device for a number of machine cycles
func (con *Console) Delay(cycles int) {
	for range cycles {
		con.step()
	}
}

// EnableInterrupts sets IME. The instruction takes one machine cycle
func (con *Console) EnableInterrupts() {
	con.Interrupts.SetIME(true)
	con.step()
}

// DisableInterrupts clears IME. The instruction takes one machine cycle
func (con *Console) DisableInterrupts() {
	con.Interrupts.SetIME(false)
	con.cycle()
}

// Vector installs the service routine for the interrupt
func (con *Console) Vector(interrupt uint8, handler func()) {
	con.vectors[interrupts.Interrupt(interrupt)] = handler
}
