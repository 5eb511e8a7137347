package lcd

import (
	"fmt"

	"github.com/jetsetilly/testdmg/hardware/memory"
)

// the number of bytes copied by OAM DMA. one byte is copied every machine
// cycle
const dmaLength = 160

// the highest page that can be used as the source for OAM DMA
const dmaMaxPage = 0xdf

func (l *LCD) startDMA(page uint8) {
	if page > dmaMaxPage {
		l.ctx.Break(fmt.Errorf("%w: OAM DMA from page 0x%02x is not supported", ContextError, page))
		return
	}
	l.dmaActive = true
	l.dmaSource = uint16(page) << 8
	l.dmaIdx = 0
}

// StepDMA advances the OAM DMA by one machine cycle
func (l *LCD) StepDMA() {
	if !l.dmaActive {
		return
	}

	v, err := l.mem.Peek(l.dmaSource + uint16(l.dmaIdx))
	if err != nil {
		l.ctx.Break(fmt.Errorf("%w: OAM DMA: %w", ContextError, err))
	}
	err = l.mem.Poke(memory.OriginOAM+uint16(l.dmaIdx), v)
	if err != nil {
		l.ctx.Break(fmt.Errorf("%w: OAM DMA: %w", ContextError, err))
	}

	l.dmaIdx++
	if l.dmaIdx >= dmaLength {
		l.dmaActive = false
	}
}
