package video_test

import (
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/testdmg/test"
	"github.com/jetsetilly/testdmg/video"
)

func TestDefine(t *testing.T) {
	hw := newFakeHardware()
	ctx := video.NewContext(hw, nil)

	var p video.Pattern
	for i := range p {
		p[i] = uint8(i)
	}

	ctx.Tiles.Define(2, p)
	test.ExpectEquality(t, ctx.Tiles.Pattern(2), p)
	test.ExpectEquality(t, hw.mem[video.TileData+32], 0)
	test.ExpectEquality(t, hw.mem[video.TileData+47], 15)

	// the last slot
	ctx.Tiles.Define(255, p)
	test.ExpectEquality(t, hw.mem[0x8fff], 15)
}

func TestDefineReverse(t *testing.T) {
	hw := newFakeHardware()
	ctx := video.NewContext(hw, nil)

	rnd := rand.New(rand.NewPCG(1, 2))
	for n := range 256 {
		var p video.Pattern
		for i := range p {
			p[i] = uint8(rnd.UintN(256))
		}

		ctx.Tiles.DefineReverse(uint8(n), p)
		r := ctx.Tiles.Pattern(uint8(n))
		for i := range p {
			test.ExpectEquality(t, r[i], ^p[i], n, i)
		}
	}
}

func TestDefineSet(t *testing.T) {
	hw := newFakeHardware()
	ctx := video.NewContext(hw, nil)

	ps := make([]video.Pattern, 3)
	for i := range ps {
		ps[i][0] = uint8(i + 1)
	}

	// the slot index wraps
	ctx.Tiles.DefineSet(254, ps)
	test.ExpectEquality(t, ctx.Tiles.Pattern(254)[0], 1)
	test.ExpectEquality(t, ctx.Tiles.Pattern(255)[0], 2)
	test.ExpectEquality(t, ctx.Tiles.Pattern(0)[0], 3)
}

func TestSetAll(t *testing.T) {
	hw := newFakeHardware()
	ctx := video.NewContext(hw, nil)

	ctx.Tiles.SetAll(0xaa)
	test.ExpectEquality(t, hw.mem[0x7fff], 0x00)
	test.ExpectEquality(t, hw.mem[0x8000], 0xaa)
	test.ExpectEquality(t, hw.mem[0x8fff], 0xaa)
	test.ExpectEquality(t, hw.mem[0x9000], 0x00)
}
