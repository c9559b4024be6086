package ppu

// Shade is one of the four DMG greys, 0 (white) to 3 (black).
type Shade = uint8

// Palette maps 2-bit colour indices to shades via one of the
// palette registers (types.BGP, types.OBP0, types.OBP1). Each
// index occupies two bits, index 0 in the low bits.
type Palette struct {
	Value uint8
}

// Shade returns the shade for the given colour index.
func (p Palette) Shade(index uint8) Shade {
	return p.Value >> (index * 2) & 0x03
}
