// Package ppu provides an implementation of the Game Boy PPU:
// the scanline/dot display timing state machine, the VRAM and
// OAM it owns, and a per-scanline renderer. A full scanline is
// composed atomically during pixel transfer rather than via a
// hardware-exact pixel FIFO.
package ppu

import (
	"github.com/dotmatrix-emulator/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emulator/dotmatrix/internal/types"
)

// Mode is one of the four PPU modes, in STAT encoding.
type Mode = uint8

const (
	// ModeHBlank is the horizontal blanking period at the end
	// of every visible line.
	ModeHBlank Mode = 0
	// ModeVBlank is the vertical blanking period, lines 144 to
	// 153.
	ModeVBlank Mode = 1
	// ModeOamSearch is the sprite evaluation period at the
	// start of every visible line (80 dots).
	ModeOamSearch Mode = 2
	// ModePixelTransfer is the period during which pixels are
	// pushed to the screen (172 dots).
	ModePixelTransfer Mode = 3
)

const (
	// dotsPerLine is the dot budget of every scanline.
	dotsPerLine = 456
	// oamSearchDots is the fixed length of OAM search.
	oamSearchDots = 80
	// transferDots is the length of pixel transfer, including
	// the initial fetch penalty.
	transferDots = 172
	// fetchPenalty is the number of pixel-transfer dots spent
	// fetching before the first pixel is pushed.
	fetchPenalty = 12
)

// indices into the STAT interrupt line latches
const (
	lineHBlank = iota
	lineVBlank
	lineOamSearch
	lineLYC
)

// PPU is the display timing state machine together with the
// video memory it owns. Step drives it one dot at a time; the
// returned sleep hint lets the caller skip dots on which
// nothing can happen.
type PPU struct {
	// Controller is the decoded LCD control register
	// (types.LCDC).
	Controller *Controller

	mode Mode
	// dots is the dot counter within the current line
	dots uint32
	ly   uint8
	lyc  uint8

	// statEnable holds the writable STAT bits 3-6
	statEnable uint8
	// statLine holds the four STAT interrupt line latches. The
	// LCD interrupt fires only on a false to true edge of
	// their OR.
	statLine [4]bool

	windowLineCounter uint8
	frameCount        uint64

	// scroll and window position registers
	SCY, SCX, WY, WX uint8

	BackgroundPalette Palette // types.BGP
	ObjectPalette0    Palette // types.OBP0
	ObjectPalette1    Palette // types.OBP1

	// tileData backs 0x8000-0x97FF, the two maps back
	// 0x9800-0x9BFF and 0x9C00-0x9FFF
	tileData      [0x1800]uint8
	backgroundMap [0x400]uint8
	windowMap     [0x400]uint8
	oam           [0xA0]uint8

	tileCache       [384]Tile
	scanlineSprites []Sprite
	frame           [ScreenWidth * ScreenHeight]Shade

	irq    *interrupts.Service
	engine Engine
}

// New returns a new PPU in the documented post-boot state.
func New(irq *interrupts.Service) *PPU {
	return &PPU{
		Controller:        newController(),
		mode:              ModeOamSearch,
		BackgroundPalette: Palette{Value: 0xFC},
		scanlineSprites:   make([]Sprite, 0, 10),
		irq:               irq,
		engine:            nullEngine{},
	}
}

// AttachEngine attaches a rendering backend.
func (p *PPU) AttachEngine(e Engine) {
	p.engine = e
}

// Mode returns the current PPU mode.
func (p *PPU) Mode() Mode {
	return p.mode
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// FrameCount returns the number of completed frames.
func (p *PPU) FrameCount() uint64 {
	return p.frameCount
}

// Frame returns the current 160x144 shade buffer, row-major.
func (p *PPU) Frame() []Shade {
	return p.frame[:]
}

// Step advances the state machine after elapsed dots and
// returns how many dots may pass before the next call is
// needed. The caller must call again after exactly that many
// dots; every line's budget sums to 456 regardless of the path
// taken through the modes.
func (p *PPU) Step(elapsed uint32) uint32 {
	p.dots += elapsed

	switch p.mode {
	case ModeOamSearch:
		if p.dots >= oamSearchDots {
			p.changeMode(ModePixelTransfer)
			// fetch penalty before the first pixel is pushed
			return fetchPenalty + 1
		}
		return oamSearchDots - p.dots

	case ModePixelTransfer:
		offset := p.dots - oamSearchDots
		p.placePixel(uint8(offset-fetchPenalty-1), p.ly)
		if offset >= transferDots {
			p.changeMode(ModeHBlank)
			return dotsPerLine - p.dots
		}
		return 1

	case ModeHBlank:
		if p.dots < dotsPerLine {
			return dotsPerLine - p.dots
		}
		p.dots = 0
		p.incrementLY()
		if p.ly == 144 {
			p.changeMode(ModeVBlank)
			// the VBlank interrupt is raised regardless of the
			// STAT enable bits
			p.irq.Request(interrupts.VBlankFlag)
			p.frameCount++
			p.engine.FrameComplete(p.frame[:])
			return dotsPerLine
		}
		p.changeMode(ModeOamSearch)
		return oamSearchDots

	case ModeVBlank:
		if p.dots < dotsPerLine {
			return dotsPerLine - p.dots
		}
		p.dots = 0
		p.incrementLY()
		if p.ly == 0 {
			p.changeMode(ModeOamSearch)
			return oamSearchDots
		}
		return dotsPerLine
	}

	panic("ppu: impossible mode")
}

// incrementLY advances to the next scanline, wrapping 153 to 0
// and resetting the window line counter on wrap. The window
// line counter advances only on lines the window covered.
func (p *PPU) incrementLY() {
	if p.Controller.WindowEnabled && p.ly >= p.WY && p.WX <= 166 {
		p.windowLineCounter++
	}

	p.ly++
	if p.ly == 154 {
		p.ly = 0
		p.windowLineCounter = 0
	}

	p.checkLYC()
}

// checkLYC re-evaluates the LYC interrupt line latch. Called
// on every LY change and on writes to types.LYC, never on
// writes to types.STAT.
func (p *PPU) checkLYC() {
	p.updateStatLine(lineLYC, p.statEnable&types.Bit6 != 0 && p.ly == p.lyc)
}

// changeMode transitions the state machine and re-evaluates
// the mode-select interrupt line latches.
func (p *PPU) changeMode(mode Mode) {
	p.mode = mode

	p.updateStatLine(lineHBlank, p.statEnable&types.Bit3 != 0 && mode == ModeHBlank)
	p.updateStatLine(lineVBlank, p.statEnable&types.Bit4 != 0 && mode == ModeVBlank)
	p.updateStatLine(lineOamSearch, p.statEnable&types.Bit5 != 0 && mode == ModeOamSearch)
}

// updateStatLine sets one of the four interrupt line latches,
// requesting the LCD interrupt only when the change takes the
// OR of all latches from low to high.
func (p *PPU) updateStatLine(index int, value bool) {
	if p.statLine[index] == value {
		return
	}
	if !value {
		p.statLine[index] = false
		return
	}

	old := p.statLine[lineHBlank] || p.statLine[lineVBlank] ||
		p.statLine[lineOamSearch] || p.statLine[lineLYC]
	p.statLine[index] = true

	if !old {
		p.irq.Request(interrupts.LCDFlag)
	}
}

// vramBlocked reports whether the CPU is locked out of VRAM.
func (p *PPU) vramBlocked() bool {
	return p.Controller.Enabled && p.mode == ModePixelTransfer
}

// oamBlocked reports whether the CPU is locked out of OAM.
func (p *PPU) oamBlocked() bool {
	return p.Controller.Enabled &&
		(p.mode == ModeOamSearch || p.mode == ModePixelTransfer)
}

// Read returns the value at the given address, covering VRAM,
// OAM and the display registers. Blocked reads return 0xFF per
// hardware convention.
func (p *PPU) Read(address uint16) (uint8, error) {
	switch {
	case address >= 0x8000 && address < 0xA000:
		if p.vramBlocked() {
			return 0xFF, nil
		}
		return p.vramRead(address), nil
	case address >= 0xFE00 && address < 0xFEA0:
		if p.oamBlocked() {
			return 0xFF, nil
		}
		return p.oam[address-0xFE00], nil
	}

	switch address {
	case types.LCDC:
		return p.Controller.Read(), nil
	case types.STAT:
		return p.readSTAT(), nil
	case types.SCY:
		return p.SCY, nil
	case types.SCX:
		return p.SCX, nil
	case types.LY:
		return p.ly, nil
	case types.LYC:
		return p.lyc, nil
	case types.BGP:
		return p.BackgroundPalette.Value, nil
	case types.OBP0:
		return p.ObjectPalette0.Value, nil
	case types.OBP1:
		return p.ObjectPalette1.Value, nil
	case types.WY:
		return p.WY, nil
	case types.WX:
		return p.WX, nil
	}

	return 0, types.AddressingError{Address: address, Component: "ppu"}
}

// Write writes the value at the given address. Blocked VRAM
// and OAM writes are dropped.
func (p *PPU) Write(address uint16, value uint8) error {
	switch {
	case address >= 0x8000 && address < 0xA000:
		if !p.vramBlocked() {
			p.vramWrite(address, value)
		}
		return nil
	case address >= 0xFE00 && address < 0xFEA0:
		if !p.oamBlocked() {
			p.oam[address-0xFE00] = value
		}
		return nil
	}

	switch address {
	case types.LCDC:
		p.Controller.Write(value)
	case types.STAT:
		// only the enable bits are writable; the interrupt
		// line latches are deliberately left alone so that
		// toggling an enable bit cannot refire an interrupt
		p.statEnable = value & 0x78
	case types.SCY:
		p.SCY = value
	case types.SCX:
		p.SCX = value
	case types.LY:
		// read only
	case types.LYC:
		p.lyc = value
		p.checkLYC()
	case types.BGP:
		p.BackgroundPalette.Value = value
	case types.OBP0:
		p.ObjectPalette0.Value = value
	case types.OBP1:
		p.ObjectPalette1.Value = value
	case types.WY:
		p.WY = value
	case types.WX:
		p.WX = value
	default:
		return types.AddressingError{Address: address, Component: "ppu"}
	}
	return nil
}

func (p *PPU) readSTAT() uint8 {
	v := 0x80 | p.statEnable | p.mode
	if p.ly == p.lyc {
		v |= types.Bit2
	}
	return v
}

func (p *PPU) vramRead(address uint16) uint8 {
	switch {
	case address < 0x9800:
		return p.tileData[address-0x8000]
	case address < 0x9C00:
		return p.backgroundMap[address-0x9800]
	default:
		return p.windowMap[address-0x9C00]
	}
}

func (p *PPU) vramWrite(address uint16, value uint8) {
	switch {
	case address < 0x9800:
		p.tileData[address-0x8000] = value
		p.updateTileCache(address - 0x8000)
		p.engine.TileDataWritten(address)
	case address < 0x9C00:
		p.backgroundMap[address-0x9800] = value
	default:
		p.windowMap[address-0x9C00] = value
	}
}

// WriteOAMDirect writes one OAM byte bypassing mode blocking,
// used by the bus during OAM DMA.
func (p *PPU) WriteOAMDirect(index uint8, value uint8) {
	p.oam[index] = value
}
