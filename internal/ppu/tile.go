package ppu

// Tile is a decoded 8x8 tile: 64 colour indices from 0 to 3.
// The PPU keeps a cache of all 384 decoded tiles so scanline
// rendering never re-decodes the 2bpp planes.
type Tile [64]uint8

// Pixel returns the colour index at the given tile-local
// coordinates.
func (t *Tile) Pixel(x, y uint8) uint8 {
	return t[uint16(x)+8*uint16(y)]
}

// updateTileCache re-decodes the tile row containing the given
// VRAM offset (relative to 0x8000). Each tile occupies 16
// bytes, two bytes per row: the first byte holds the low bits
// of the row's colour indices, the second the high bits.
func (p *PPU) updateTileCache(offset uint16) {
	tileIndex := offset / 16
	rowIndex := offset % 16 / 2

	// align to the first byte of the row
	base := offset &^ 1
	byte1 := p.tileData[base]
	byte2 := p.tileData[base+1]

	row := p.tileCache[tileIndex][rowIndex*8 : rowIndex*8+8]
	for i := 0; i < 8; i++ {
		bit1 := byte1 >> i & 1
		bit2 := byte2 >> i & 1
		row[7-i] = bit2<<1 | bit1
	}
}

// adjustTileIndex maps a tile map entry to a tile cache index
// using the controller's addressing method: with the 0x8800
// method, indices 0-127 are signed offsets from tile 256.
func (p *PPU) adjustTileIndex(tileIndex uint8) uint16 {
	if p.Controller.TileDataAddress == 0x8800 && tileIndex <= 127 {
		return uint16(tileIndex) + 256
	}
	return uint16(tileIndex)
}
