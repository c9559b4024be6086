package ppu

import "github.com/dotmatrix-emulator/dotmatrix/internal/types"

// Sprite is one 4-byte entry of the sprite attribute table
// (OAM):
//
//	Byte 0 - Y position (minus 16)
//	Byte 1 - X position (minus 8)
//	Byte 2 - tile index
//	Byte 3 - attributes (palette, flips, priority)
type Sprite [4]uint8

// Y returns the sprite's screen Y position.
func (s Sprite) Y() int {
	return int(s[0]) - 16
}

// X returns the sprite's screen X position.
func (s Sprite) X() int {
	return int(s[1]) - 8
}

// TileIndex returns the sprite's tile index (8x8 mode).
func (s Sprite) TileIndex() uint8 {
	return s[2]
}

// TileIndex16 returns the sprite's tile indices in 8x16 mode,
// top then bottom. The hardware ignores bit 0 of the index.
func (s Sprite) TileIndex16() (uint8, uint8) {
	return s[2] &^ 0x01, s[2] | 0x01
}

// PaletteNumber returns 0 for types.OBP0, 1 for types.OBP1.
func (s Sprite) PaletteNumber() uint8 {
	return s[3] >> 4 & 1
}

// XFlip reports whether the sprite is horizontally mirrored.
func (s Sprite) XFlip() bool {
	return s[3]&types.Bit5 != 0
}

// YFlip reports whether the sprite is vertically mirrored.
func (s Sprite) YFlip() bool {
	return s[3]&types.Bit6 != 0
}

// BehindBackground reports whether BG and window colours 1-3
// draw over this sprite.
func (s Sprite) BehindBackground() bool {
	return s[3]&types.Bit7 != 0
}
