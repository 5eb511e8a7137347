package debugger

import (
	"math/rand/v2"

	"github.com/jetsetilly/testdmg/hardware/spec"
)

type context struct {
	requestedSpec string
	rand          *rand.Rand
	breaks        []error
	useOverlay    bool
}

func (ctx *context) Spec() spec.Spec {
	if s, ok := spec.Lookup(ctx.requestedSpec); ok {
		return s
	}
	panic("currently unsupported specification")
}

func (ctx *context) Reset() {
	ctx.breaks = ctx.breaks[:0]
	ctx.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (ctx *context) Rand8Bit() uint8 {
	return uint8(ctx.rand.IntN(256))
}

func (ctx *context) Break(e error) {
	ctx.breaks = append(ctx.breaks, e)
}

func (ctx *context) UseOverlay() bool {
	return ctx.useOverlay
}
