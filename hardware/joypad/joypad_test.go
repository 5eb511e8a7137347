package joypad_test

import (
	"regexp"
	"testing"

	"github.com/jetsetilly/testdmg/gui"
	"github.com/jetsetilly/testdmg/hardware/interrupts"
	"github.com/jetsetilly/testdmg/hardware/joypad"
	"github.com/jetsetilly/testdmg/test"
)

type requests struct {
	ct int
}

func (r *requests) Request(i interrupts.Interrupt) {
	if i == interrupts.Joypad {
		r.ct++
	}
}

func read(t *testing.T, j *joypad.Joypad) uint8 {
	t.Helper()
	v, err := j.Read(joypad.Addr)
	test.DemandSuccess(t, err)
	j.Step()
	return v & 0x0f
}

func TestSettle(t *testing.T) {
	var r requests
	j := joypad.Create(&r)
	j.Settle = 3

	test.DemandSuccess(t, j.Write(joypad.Addr, 0x30))
	j.Step()

	j.Update(gui.Input{Action: gui.DPadLeft, Data: true})
	j.Update(gui.Input{Action: gui.ButtonA, Data: true})

	// nothing is selected so there is no interrupt
	test.ExpectEquality(t, r.ct, 0)

	// select d-pad
	test.DemandSuccess(t, j.Write(joypad.Addr, 0x20))
	j.Step()

	// the first reads see the lines before the selection changed
	test.ExpectEquality(t, read(t, j), 0x0f)
	test.ExpectEquality(t, read(t, j), 0x0f)
	test.ExpectEquality(t, read(t, j), 0x0f^joypad.Left)
	test.ExpectEquality(t, read(t, j), 0x0f^joypad.Left)

	// select buttons
	test.DemandSuccess(t, j.Write(joypad.Addr, 0x10))
	for range 3 {
		j.Step()
	}
	test.ExpectEquality(t, read(t, j), 0x0f^joypad.A)

	// releasing a key does not cause an interrupt
	j.Update(gui.Input{Action: gui.ButtonA, Data: false})
	test.ExpectEquality(t, r.ct, 0)
	test.ExpectEquality(t, read(t, j), 0x0f)

	// pressing a selected key does
	j.Update(gui.Input{Action: gui.Start, Data: true})
	test.ExpectEquality(t, r.ct, 1)
}

func TestNoSettle(t *testing.T) {
	var r requests
	j := joypad.Create(&r)
	j.Settle = 0

	j.Update(gui.Input{Action: gui.DPadDown, Data: true})
	test.DemandSuccess(t, j.Write(joypad.Addr, 0x20))
	test.ExpectEquality(t, read(t, j), 0x0f^joypad.Down)

	test.ExpectFailure(t, j.Update(gui.Input{Action: gui.Pause}))
}

func TestString(t *testing.T) {
	var r requests
	j := joypad.Create(&r)
	test.DemandSuccess(t, j.Write(joypad.Addr, 0x00))
	test.ExpectSuccess(t, regexp.MustCompile(`^P1=0x[0-9a-f]{2} `).MatchString(j.String()), j.String())
}
