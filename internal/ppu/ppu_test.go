package ppu

import (
	"testing"

	"github.com/dotmatrix-emulator/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emulator/dotmatrix/internal/types"
)

func newTestPPU() (*PPU, *interrupts.Service) {
	irq := interrupts.NewService()
	irq.Enable = 0x1F
	return New(irq), irq
}

// driver advances a PPU dot by dot, honouring its sleep hints
// the same way the orchestrator does.
type driver struct {
	p       *PPU
	pending uint32
	next    uint32
}

func newDriver(p *PPU) *driver {
	return &driver{p: p, next: 1}
}

func (d *driver) run(n uint32) {
	for i := uint32(0); i < n; i++ {
		d.pending++
		if d.pending == d.next {
			d.next = d.p.Step(d.pending)
			d.pending = 0
		}
	}
}

func TestPPU_LineBudgetIs456(t *testing.T) {
	p, _ := newTestPPU()
	d := newDriver(p)

	// every line of a full frame, visible or blanking, must
	// consume exactly 456 dots
	lastLY := p.LY()
	var dots uint32
	for line := 0; line < 154; line++ {
		dots = 0
		for p.LY() == lastLY {
			d.run(1)
			dots++
		}
		if dots != dotsPerLine {
			t.Fatalf("line %d consumed %d dots, expected 456", line, dots)
		}
		lastLY = p.LY()
	}
	if p.FrameCount() != 1 {
		t.Errorf("expected 1 completed frame, got %d", p.FrameCount())
	}
}

func TestPPU_ModeSequence(t *testing.T) {
	p, _ := newTestPPU()
	d := newDriver(p)

	if p.Mode() != ModeOamSearch {
		t.Fatalf("expected initial mode OAM search, got %d", p.Mode())
	}
	d.run(80)
	if p.Mode() != ModePixelTransfer {
		t.Fatalf("expected pixel transfer after 80 dots, got %d", p.Mode())
	}
	d.run(172)
	if p.Mode() != ModeHBlank {
		t.Fatalf("expected hblank after 252 dots, got %d", p.Mode())
	}
	d.run(204)
	if p.Mode() != ModeOamSearch || p.LY() != 1 {
		t.Fatalf("expected OAM search on line 1, got mode %d LY %d", p.Mode(), p.LY())
	}
}

func TestPPU_VBlankInterruptUnconditional(t *testing.T) {
	p, irq := newTestPPU()
	d := newDriver(p)

	// no STAT sources enabled; VBlank must still fire at LY=144
	d.run(144 * dotsPerLine)
	if p.LY() != 144 || p.Mode() != ModeVBlank {
		t.Fatalf("expected vblank at LY 144, got mode %d LY %d", p.Mode(), p.LY())
	}
	if irq.Flag&interrupts.VBlankFlag == 0 {
		t.Error("expected a VBlank interrupt")
	}
	if irq.Flag&interrupts.LCDFlag != 0 {
		t.Error("expected no LCD interrupt with no STAT sources enabled")
	}
}

func TestPPU_LYWraps(t *testing.T) {
	p, _ := newTestPPU()
	d := newDriver(p)

	d.run(153 * dotsPerLine)
	if p.LY() != 153 {
		t.Fatalf("expected LY 153, got %d", p.LY())
	}
	d.run(dotsPerLine)
	if p.LY() != 0 || p.Mode() != ModeOamSearch {
		t.Fatalf("expected wrap to LY 0 in OAM search, got mode %d LY %d", p.Mode(), p.LY())
	}
}

func TestPPU_STATNoSpuriousEdge(t *testing.T) {
	p, irq := newTestPPU()

	// enable the LYC source and match line 0: the condition
	// becomes true, so the latch update must fire once
	_ = p.Write(types.STAT, types.Bit6)
	_ = p.Write(types.LYC, 0)
	if irq.Flag&interrupts.LCDFlag == 0 {
		t.Fatal("expected an LCD interrupt on the first LYC match")
	}
	irq.Flag = 0

	// toggling the enable bit off and on while the condition
	// stays true must not produce a second edge
	_ = p.Write(types.STAT, 0)
	_ = p.Write(types.STAT, types.Bit6)
	if irq.Flag&interrupts.LCDFlag != 0 {
		t.Error("expected no interrupt from toggling the enable bit")
	}
}

func TestPPU_STATCombinedLine(t *testing.T) {
	p, irq := newTestPPU()
	d := newDriver(p)

	// LYC match on line 0 raises the combined line high
	_ = p.Write(types.STAT, types.Bit6|types.Bit3)
	_ = p.Write(types.LYC, 0)
	irq.Flag = 0

	// entering HBlank while the LYC latch is still high must
	// not fire: the combined line never went low
	d.run(252)
	if p.Mode() != ModeHBlank {
		t.Fatalf("expected hblank, got mode %d", p.Mode())
	}
	if irq.Flag&interrupts.LCDFlag != 0 {
		t.Error("expected no interrupt while the combined line stays high")
	}
}

func TestPPU_STATReadComposition(t *testing.T) {
	p, _ := newTestPPU()

	_ = p.Write(types.STAT, 0xFF)
	got, _ := p.Read(types.STAT)
	// bit 7 set, enable bits 3-6 as written, LYC match
	// (LY=LYC=0), mode 2
	if got != 0xFE {
		t.Errorf("expected STAT to read FE, got %02X", got)
	}
}

func TestPPU_VRAMContention(t *testing.T) {
	p, _ := newTestPPU()
	d := newDriver(p)

	_ = p.Write(0x8000, 0x12)
	if v, _ := p.Read(0x8000); v != 0x12 {
		t.Fatalf("expected 12 from vram, got %02X", v)
	}

	d.run(80) // into pixel transfer
	if p.Mode() != ModePixelTransfer {
		t.Fatalf("expected pixel transfer, got mode %d", p.Mode())
	}
	if v, _ := p.Read(0x8000); v != 0xFF {
		t.Errorf("expected blocked vram read to return FF, got %02X", v)
	}
	_ = p.Write(0x8000, 0x34) // dropped
	d.run(172)                // into hblank
	if v, _ := p.Read(0x8000); v != 0x12 {
		t.Errorf("expected the blocked write to be dropped, got %02X", v)
	}
}

func TestPPU_OAMContention(t *testing.T) {
	p, _ := newTestPPU()
	d := newDriver(p)

	// OAM is blocked during OAM search
	if v, _ := p.Read(0xFE00); v != 0xFF {
		t.Errorf("expected blocked oam read to return FF, got %02X", v)
	}
	_ = p.Write(0xFE00, 0x55) // dropped

	d.run(252) // into hblank
	if p.Mode() != ModeHBlank {
		t.Fatalf("expected hblank, got mode %d", p.Mode())
	}
	if v, _ := p.Read(0xFE00); v != 0x00 {
		t.Errorf("expected the blocked write to be dropped, got %02X", v)
	}
	_ = p.Write(0xFE00, 0x55)
	if v, _ := p.Read(0xFE00); v != 0x55 {
		t.Errorf("expected 55 from oam in hblank, got %02X", v)
	}
}

func TestPPU_DisabledLCDRemovesContention(t *testing.T) {
	p, _ := newTestPPU()
	d := newDriver(p)
	_ = p.Write(types.LCDC, 0x11) // LCD off

	d.run(80)
	_ = p.Write(0x8000, 0x12)
	if v, _ := p.Read(0x8000); v != 0x12 {
		t.Errorf("expected vram access with the LCD off, got %02X", v)
	}
}

func TestPPU_AddressingError(t *testing.T) {
	p, _ := newTestPPU()
	if _, err := p.Read(0xFF50); err == nil {
		t.Error("expected an addressing error for an unowned register")
	}
	if err := p.Write(0xC000, 0x00); err == nil {
		t.Error("expected an addressing error for an unowned address")
	}
}
