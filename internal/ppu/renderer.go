package ppu

import "sort"

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

// updateScanlineSprites selects the sprites visible on line y,
// in OAM order, capped at the hardware limit of 10 per line,
// then ordered by X so the leftmost sprite wins ties during
// composition.
func (p *PPU) updateScanlineSprites(y uint8) {
	p.scanlineSprites = p.scanlineSprites[:0]

	for i := 0; i < len(p.oam); i += 4 {
		var s Sprite
		copy(s[:], p.oam[i:i+4])

		top := s.Y()
		bottom := top + int(p.Controller.SpriteSize)
		if top <= int(y) && int(y) < bottom {
			p.scanlineSprites = append(p.scanlineSprites, s)
		}
		if len(p.scanlineSprites) == 10 {
			break
		}
	}

	sort.SliceStable(p.scanlineSprites, func(i, j int) bool {
		return p.scanlineSprites[i].X() < p.scanlineSprites[j].X()
	})
}

// backgroundPixel returns the palette-mapped shade and raw
// colour index of the background at the given background-space
// coordinates.
func (p *PPU) backgroundPixel(bgX, bgY uint8) (Shade, uint8) {
	return p.mapPixel(p.Controller.BackgroundTileMapAddress, bgX, bgY)
}

// windowPixel returns the palette-mapped shade and raw colour
// index of the window at the given window-space coordinates.
func (p *PPU) windowPixel(winX, winY uint8) (Shade, uint8) {
	return p.mapPixel(p.Controller.WindowTileMapAddress, winX, winY)
}

// mapPixel looks a pixel up in one of the two 32x32 tile maps.
func (p *PPU) mapPixel(mapAddress uint16, x, y uint8) (Shade, uint8) {
	tileMap := p.tileMap(mapAddress)
	tileIndex := tileMap[uint16(x/8)+32*uint16(y/8)]

	tile := &p.tileCache[p.adjustTileIndex(tileIndex)]
	index := tile.Pixel(x%8, y%8)
	return p.BackgroundPalette.Shade(index), index
}

// tileMap returns the backing slice for the tile map starting
// at the given address.
func (p *PPU) tileMap(mapAddress uint16) []uint8 {
	if mapAddress == 0x9C00 {
		return p.windowMap[:]
	}
	return p.backgroundMap[:]
}

// windowContains reports whether the window covers the given
// screen coordinates.
func (p *PPU) windowContains(x, y uint8) bool {
	return int(x)+7 >= int(p.WX) && y >= p.WY
}

// backgroundOrWindowPixel composes the background layer pixel
// for the given screen coordinates, picking the window when it
// is enabled and covers them.
func (p *PPU) backgroundOrWindowPixel(x, y uint8) (Shade, uint8) {
	if p.Controller.WindowEnabled && p.windowContains(x, y) {
		winX := x + 7 - p.WX
		winY := p.windowLineCounter
		return p.windowPixel(winX, winY)
	}
	return p.backgroundPixel(p.SCX+x, p.SCY+y)
}

// spritePixel returns the shade of the topmost opaque sprite
// pixel at the given screen coordinates, or ok=false if every
// sprite there is transparent or absent.
func (p *PPU) spritePixel(x, y uint8) (shade Shade, behindBackground bool, ok bool) {
	for _, s := range p.scanlineSprites {
		left := s.X()
		if int(x) < left || int(x) >= left+8 {
			continue
		}

		top := s.Y()
		rowInSprite := int(y) - top

		var tileIndex uint8
		if p.Controller.SpriteSize == 8 {
			tileIndex = s.TileIndex()
		} else {
			topIndex, bottomIndex := s.TileIndex16()
			if (rowInSprite < 8) != s.YFlip() {
				tileIndex = topIndex
			} else {
				tileIndex = bottomIndex
			}
		}

		subX := uint8(int(x) - left)
		if s.XFlip() {
			subX = 7 - subX
		}
		subY := uint8(rowInSprite % 8)
		if s.YFlip() {
			subY = 7 - subY
		}

		index := p.tileCache[tileIndex].Pixel(subX, subY)
		if index == 0 {
			continue // transparent
		}

		palette := p.ObjectPalette0
		if s.PaletteNumber() == 1 {
			palette = p.ObjectPalette1
		}
		return palette.Shade(index), s.BehindBackground(), true
	}
	return 0, false, false
}

// placePixel composes and stores the pixel at the given screen
// coordinates, then reports it to the attached engine. Sprite
// selection for the line is refreshed when x is 0.
func (p *PPU) placePixel(x, y uint8) {
	if x == 0 {
		p.updateScanlineSprites(y)
	}

	pixel := p.composePixel(x, y)
	p.frame[ScreenWidth*uint16(y)+uint16(x)] = pixel
	p.engine.PlacePixel(x, y, pixel)
}

func (p *PPU) composePixel(x, y uint8) Shade {
	if p.Controller.SpriteEnabled {
		if shade, behindBackground, ok := p.spritePixel(x, y); ok {
			bgShade, bgIndex := p.backgroundOrWindowPixel(x, y)
			if behindBackground && bgIndex != 0 {
				return bgShade
			}
			return shade
		}
	}

	if !p.Controller.BackgroundEnabled {
		return 0 // white
	}

	shade, _ := p.backgroundOrWindowPixel(x, y)
	return shade
}
