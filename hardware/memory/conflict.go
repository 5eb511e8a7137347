package memory

import "fmt"

// ConflictKind is the reason for a bus conflict
type ConflictKind int

const (
	ConflictVRAM ConflictKind = iota
	ConflictOAM
	ConflictDMA
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictVRAM:
		return "VRAM during pixel transfer"
	case ConflictOAM:
		return "OAM during scan"
	case ConflictDMA:
		return "bus during OAM DMA"
	}
	return "unknown"
}

// Conflict is returned by the CPU path of Memory when an access collides with
// the video hardware. A conflicting write is lost and a conflicting read
// returns 0xff
type Conflict struct {
	Kind    ConflictKind
	Address uint16
	Write   bool
}

func (c Conflict) Error() string {
	if c.Write {
		return fmt.Sprintf("write %04x conflicts with %s", c.Address, c.Kind)
	}
	return fmt.Sprintf("read %04x conflicts with %s", c.Address, c.Kind)
}
