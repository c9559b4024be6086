package ppu

import (
	"testing"

	"github.com/dotmatrix-emulator/dotmatrix/internal/types"
)

// fillTile writes 2bpp rows for a tile whose every pixel has
// the given colour index.
func fillTile(p *PPU, tile uint16, index uint8) {
	var lo, hi uint8
	if index&1 != 0 {
		lo = 0xFF
	}
	if index&2 != 0 {
		hi = 0xFF
	}
	for row := uint16(0); row < 8; row++ {
		_ = p.Write(0x8000+tile*16+row*2, lo)
		_ = p.Write(0x8000+tile*16+row*2+1, hi)
	}
}

func TestRenderer_BackgroundPixel(t *testing.T) {
	p, _ := newTestPPU()
	_ = p.Write(types.BGP, 0xE4) // identity palette

	fillTile(p, 1, 3)
	_ = p.Write(0x9800, 1) // map slot (0,0) -> tile 1

	p.placePixel(0, 0)
	if got := p.frame[0]; got != 3 {
		t.Errorf("expected shade 3, got %d", got)
	}

	// scrolling by 8 pixels moves past the tile into empty map
	p.SCX = 8
	p.placePixel(0, 0)
	if got := p.frame[0]; got != 0 {
		t.Errorf("expected shade 0 after scroll, got %d", got)
	}
}

func TestRenderer_BackgroundDisabled(t *testing.T) {
	p, _ := newTestPPU()
	_ = p.Write(types.BGP, 0xE4)
	fillTile(p, 1, 3)
	_ = p.Write(0x9800, 1)

	_ = p.Write(types.LCDC, 0x90) // bg/window off
	p.placePixel(0, 0)
	if got := p.frame[0]; got != 0 {
		t.Errorf("expected white with the background disabled, got %d", got)
	}
}

func TestRenderer_SignedTileIndexing(t *testing.T) {
	p, _ := newTestPPU()
	_ = p.Write(types.BGP, 0xE4)
	_ = p.Write(types.LCDC, 0x81) // 0x8800 addressing method

	// with the 0x8800 method, map entry 0 addresses tile 256
	fillTile(p, 256, 2)
	p.placePixel(0, 0)
	if got := p.frame[0]; got != 2 {
		t.Errorf("expected shade 2 via signed indexing, got %d", got)
	}
}

func TestRenderer_WindowOverBackground(t *testing.T) {
	p, _ := newTestPPU()
	_ = p.Write(types.BGP, 0xE4)

	fillTile(p, 1, 1)
	fillTile(p, 2, 3)
	_ = p.Write(0x9800, 1) // background shows tile 1
	_ = p.Write(0x9C00, 2) // window map shows tile 2

	// window enabled, mapped at 0x9C00, covering the origin
	_ = p.Write(types.LCDC, 0xF1)
	p.WX = 7
	p.WY = 0

	p.placePixel(0, 0)
	if got := p.frame[0]; got != 3 {
		t.Errorf("expected the window pixel, got %d", got)
	}

	// beyond the window's left edge the background shows
	_ = p.Write(types.WX, 100)
	p.placePixel(0, 0)
	if got := p.frame[0]; got != 1 {
		t.Errorf("expected the background pixel, got %d", got)
	}
}

func TestRenderer_SpriteOverBackground(t *testing.T) {
	p, _ := newTestPPU()
	_ = p.Write(types.BGP, 0xE4)
	_ = p.Write(types.OBP0, 0xE4)

	fillTile(p, 1, 1)
	_ = p.Write(0x9800, 1)

	fillTile(p, 4, 2)
	// sprite at screen origin using tile 4
	p.WriteOAMDirect(0, 16) // y
	p.WriteOAMDirect(1, 8)  // x
	p.WriteOAMDirect(2, 4)  // tile
	p.WriteOAMDirect(3, 0)  // attributes

	p.placePixel(0, 0)
	if got := p.frame[0]; got != 2 {
		t.Errorf("expected the sprite pixel, got %d", got)
	}
}

func TestRenderer_SpriteBehindBackground(t *testing.T) {
	p, _ := newTestPPU()
	_ = p.Write(types.BGP, 0xE4)
	_ = p.Write(types.OBP0, 0xE4)

	fillTile(p, 1, 1)
	_ = p.Write(0x9800, 1)

	fillTile(p, 4, 2)
	p.WriteOAMDirect(0, 16)
	p.WriteOAMDirect(1, 8)
	p.WriteOAMDirect(2, 4)
	p.WriteOAMDirect(3, types.Bit7) // bg over obj

	// background colour is nonzero, so it wins
	p.placePixel(0, 0)
	if got := p.frame[0]; got != 1 {
		t.Errorf("expected the background pixel over the sprite, got %d", got)
	}

	// over background colour 0 the sprite still shows
	_ = p.Write(0x9800, 0)
	p.placePixel(0, 0)
	if got := p.frame[0]; got != 2 {
		t.Errorf("expected the sprite pixel over colour 0, got %d", got)
	}
}

func TestRenderer_SpriteLimitPerLine(t *testing.T) {
	p, _ := newTestPPU()
	_ = p.Write(types.OBP0, 0xE4)
	fillTile(p, 4, 2)

	// 11 sprites on line 0; only the first 10 in OAM order are
	// selected
	for i := uint8(0); i < 11; i++ {
		p.WriteOAMDirect(i*4+0, 16)
		p.WriteOAMDirect(i*4+1, 8+i*8)
		p.WriteOAMDirect(i*4+2, 4)
		p.WriteOAMDirect(i*4+3, 0)
	}

	p.updateScanlineSprites(0)
	if len(p.scanlineSprites) != 10 {
		t.Fatalf("expected 10 sprites selected, got %d", len(p.scanlineSprites))
	}

	// the 11th sprite's column renders background only
	p.placePixel(80, 0) // x of the 11th sprite
	if got := p.frame[80]; got != 0 {
		t.Errorf("expected no sprite pixel for the 11th sprite, got %d", got)
	}
}

func TestRenderer_SpriteXPriority(t *testing.T) {
	p, _ := newTestPPU()
	_ = p.Write(types.OBP0, 0xE4)
	_ = p.Write(types.OBP1, 0x00)

	fillTile(p, 4, 2)
	// two overlapping sprites; the one with smaller X wins
	p.WriteOAMDirect(0, 16)
	p.WriteOAMDirect(1, 12)         // x=4
	p.WriteOAMDirect(2, 4)
	p.WriteOAMDirect(3, types.Bit4) // obp1: shade 0
	p.WriteOAMDirect(4, 16)
	p.WriteOAMDirect(5, 8) // x=0, leftmost
	p.WriteOAMDirect(6, 4)
	p.WriteOAMDirect(7, 0) // obp0: shade 2

	p.updateScanlineSprites(0)
	p.placePixel(4, 0)
	if got := p.frame[4]; got != 2 {
		t.Errorf("expected the leftmost sprite to win, got %d", got)
	}
}

func TestRenderer_TallSpriteFlip(t *testing.T) {
	p, _ := newTestPPU()
	_ = p.Write(types.OBP0, 0xE4)
	_ = p.Write(types.LCDC, 0x95) // 8x16 sprites

	fillTile(p, 4, 1) // top tile
	fillTile(p, 5, 3) // bottom tile

	p.WriteOAMDirect(0, 16)
	p.WriteOAMDirect(1, 8)
	p.WriteOAMDirect(2, 4)
	p.WriteOAMDirect(3, 0)

	p.placePixel(0, 0) // top half
	if got := p.frame[0]; got != 1 {
		t.Errorf("expected the top tile, got %d", got)
	}
	p.placePixel(0, 8) // bottom half
	if got := p.frame[ScreenWidth*8]; got != 3 {
		t.Errorf("expected the bottom tile, got %d", got)
	}

	// y-flip swaps the halves
	p.WriteOAMDirect(3, types.Bit6)
	p.placePixel(0, 0)
	if got := p.frame[0]; got != 3 {
		t.Errorf("expected the bottom tile when y-flipped, got %d", got)
	}
}

type recordingEngine struct {
	pixels    int
	tileAddrs []uint16
	frames    int
}

func (r *recordingEngine) PlacePixel(x, y uint8, shade Shade) { r.pixels++ }
func (r *recordingEngine) TileDataWritten(address uint16) {
	r.tileAddrs = append(r.tileAddrs, address)
}
func (r *recordingEngine) FrameComplete(frame []Shade) { r.frames++ }

func TestPPU_EngineCallbacks(t *testing.T) {
	p, _ := newTestPPU()
	e := &recordingEngine{}
	p.AttachEngine(e)

	_ = p.Write(0x8000, 0xFF)
	if len(e.tileAddrs) != 1 || e.tileAddrs[0] != 0x8000 {
		t.Errorf("expected a tile data notification for 8000, got %v", e.tileAddrs)
	}

	d := newDriver(p)
	d.run(144 * dotsPerLine)
	if e.frames != 1 {
		t.Errorf("expected 1 frame completion, got %d", e.frames)
	}
	if e.pixels != 144*ScreenWidth {
		t.Errorf("expected %d pixel events, got %d", 144*ScreenWidth, e.pixels)
	}
}
