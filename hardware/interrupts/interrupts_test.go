package interrupts_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/testdmg/hardware/interrupts"
	"github.com/jetsetilly/testdmg/test"
)

func TestPriority(t *testing.T) {
	var in interrupts.Interrupts

	_, ok := in.Pending()
	test.ExpectFailure(t, ok)

	in.Request(interrupts.Joypad)
	in.Request(interrupts.STAT)

	// requested but not enabled
	_, ok = in.Pending()
	test.ExpectFailure(t, ok)

	test.DemandSuccess(t, in.Write(interrupts.AddrIE, 0xff))

	i, ok := in.Pending()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, interrupts.STAT)

	in.Request(interrupts.VBlank)
	i, _ = in.Pending()
	test.ExpectEquality(t, i, interrupts.VBlank)
	test.ExpectEquality(t, i.Vector(), 0x40)

	in.Acknowledge(interrupts.VBlank)
	in.Acknowledge(interrupts.STAT)
	i, _ = in.Pending()
	test.ExpectEquality(t, i, interrupts.Joypad)
}

func TestRegisters(t *testing.T) {
	var in interrupts.Interrupts

	test.DemandSuccess(t, in.Write(interrupts.AddrIF, 0xff))
	v, err := in.Read(interrupts.AddrIF)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)

	test.DemandSuccess(t, in.Write(interrupts.AddrIF, 0x01))
	v, _ = in.Read(interrupts.AddrIF)
	test.ExpectEquality(t, v, 0xe1)

	test.ExpectFailure(t, in.Write(0xff10, 0x00))
}

func TestString(t *testing.T) {
	var in interrupts.Interrupts
	test.DemandSuccess(t, in.Write(interrupts.AddrIE, 0x01))
	test.DemandSuccess(t, in.Write(interrupts.AddrIF, 0x04))
	test.ExpectSuccess(t, strings.HasPrefix(in.String(), "IME=false IE=0x01 IF=0x04"))
}
