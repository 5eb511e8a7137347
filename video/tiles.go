package video

// Pattern is a single 8x8 tile in the device's 2bpp format. Each row is two
// bytes: the low bit plane followed by the high bit plane
type Pattern [16]uint8

// the size of the pattern area in bytes
const tileDataSize = 0x1000

// TileBank writes tile patterns to pattern memory
type TileBank struct {
	hw Hardware
}

func patternAddress(index uint8) uint16 {
	return TileData + uint16(index)*uint16(len(Pattern{}))
}

// Define copies the pattern to the slot
func (b *TileBank) Define(index uint8, p Pattern) {
	Copy(b.hw, patternAddress(index), p[:])
}

// DefineReverse copies the complement of the pattern to the slot. Useful for
// creating an inverse version of a font without duplicating the font
func (b *TileBank) DefineReverse(index uint8, p Pattern) {
	for i := range p {
		p[i] = ^p[i]
	}
	b.Define(index, p)
}

// DefineSet copies the patterns to consecutive slots starting at the start
// index. The slot index wraps after 255
func (b *TileBank) DefineSet(start uint8, ps []Pattern) {
	for i, p := range ps {
		b.Define(start+uint8(i), p)
	}
}

// Pattern reads back the pattern in the slot
func (b *TileBank) Pattern(index uint8) Pattern {
	var p Pattern
	a := patternAddress(index)
	for i := range p {
		p[i] = b.hw.Read(a + uint16(i))
	}
	return p
}

// SetAll fills the entire pattern area with value
func (b *TileBank) SetAll(value uint8) {
	Fill(b.hw, TileData, value, tileDataSize)
}
