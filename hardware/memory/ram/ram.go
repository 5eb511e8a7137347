package ram

import (
	"fmt"
	"strings"
)

// RAM is a labelled block of memory. It is used for all the volatile areas of
// the device: video RAM, work RAM, object memory and high RAM
type RAM struct {
	ctx    Context
	label  string
	origin uint16
	data   []uint8
}

type Context interface {
	Rand8Bit() uint8
}

// Create a new RAM area. The origin is the address of the first byte in the
// area and is used only for presentation
func Create(ctx Context, label string, origin uint16, size int) *RAM {
	return &RAM{
		ctx:    ctx,
		label:  label,
		origin: origin,
		data:   make([]uint8, size),
	}
}

// Reset clears the RAM. If random is true the content is filled with random
// values, as it would be on power-on
func (r *RAM) Reset(random bool) {
	if random {
		for i := range len(r.data) {
			r.data[i] = r.ctx.Rand8Bit()
		}
	} else {
		clear(r.data)
	}
}

func (r *RAM) String() string {
	var s strings.Builder
	for i := 0; i < len(r.data); i += 16 {
		j := min(i+16, len(r.data))
		s.WriteString(fmt.Sprintf("%04x : % 02x\n", int(r.origin)+i, r.data[i:j]))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (r *RAM) Label() string {
	return r.label
}

func (r *RAM) Origin() uint16 {
	return r.origin
}

func (r *RAM) Size() int {
	return len(r.data)
}

func (r *RAM) Read(idx uint16) (uint8, error) {
	if int(idx) >= len(r.data) {
		return 0, fmt.Errorf("%s: index out of range (0x%04x)", r.label, idx)
	}
	return r.data[idx], nil
}

func (r *RAM) Write(idx uint16, data uint8) error {
	if int(idx) >= len(r.data) {
		return fmt.Errorf("%s: index out of range (0x%04x)", r.label, idx)
	}
	r.data[idx] = data
	return nil
}
