// Package bus provides the memory bus, routing every address
// of the 16-bit space to the component that owns it.
package bus

import (
	"github.com/dotmatrix-emulator/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emulator/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emulator/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emulator/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emulator/dotmatrix/internal/serial"
	"github.com/dotmatrix-emulator/dotmatrix/internal/timer"
	"github.com/dotmatrix-emulator/dotmatrix/internal/types"
)

// Bus is the memory bus. It owns WRAM and HRAM directly and
// delegates every other address to the owning component.
// Reads of unmapped non-core addresses return 0xFF per
// hardware convention; violations of core-owned windows
// surface as a types.AddressingError from the component.
type Bus struct {
	Cartridge cartridge.Cartridge
	PPU       *ppu.PPU
	Timer     *timer.Controller
	Joypad    *joypad.State
	Serial    *serial.Controller

	irq *interrupts.Service

	wram [0x2000]uint8
	hram [0x7F]uint8
	dma  uint8
}

// New returns a new Bus wired to the given components.
func New(cart cartridge.Cartridge, p *ppu.PPU, t *timer.Controller, j *joypad.State, s *serial.Controller, irq *interrupts.Service) *Bus {
	return &Bus{
		Cartridge: cart,
		PPU:       p,
		Timer:     t,
		Joypad:    j,
		Serial:    s,
		irq:       irq,
	}
}

// Interrupt requests the given interrupt, the single entry
// point peripherals outside the core use to set pending bits.
func (b *Bus) Interrupt(flag uint8) {
	b.irq.Request(flag)
}

// Read returns the byte at the given address.
func (b *Bus) Read(address uint16) (uint8, error) {
	switch {
	case address < 0x8000:
		return b.Cartridge.Read(address)
	case address < 0xA000:
		return b.PPU.Read(address)
	case address < 0xC000:
		return b.Cartridge.Read(address)
	case address < 0xE000:
		return b.wram[address-0xC000], nil
	case address < 0xFE00:
		// echo of 0xC000-0xDDFF
		return b.wram[address-0xE000], nil
	case address < 0xFEA0:
		return b.PPU.Read(address)
	case address < 0xFF00:
		// unusable region
		return 0xFF, nil
	case address >= 0xFF80 && address < 0xFFFF:
		return b.hram[address-0xFF80], nil
	}

	switch address {
	case types.P1:
		return b.Joypad.Read(), nil
	case types.SB:
		return b.Serial.ReadSB(), nil
	case types.SC:
		return b.Serial.ReadSC(), nil
	case types.DIV:
		return b.Timer.ReadDIV(), nil
	case types.TIMA:
		return b.Timer.ReadTIMA(), nil
	case types.TMA:
		return b.Timer.ReadTMA(), nil
	case types.TAC:
		return b.Timer.ReadTAC(), nil
	case types.IF:
		return b.irq.ReadFlag(), nil
	case types.DMA:
		return b.dma, nil
	case types.IE:
		return b.irq.Enable, nil
	}

	switch {
	case address >= 0xFF10 && address < 0xFF40:
		// audio registers are an unwired stub
		return 0xFF, nil
	case address >= 0xFF40 && address <= 0xFF4B:
		return b.PPU.Read(address)
	}

	// unmapped I/O
	return 0xFF, nil
}

// Write writes the byte at the given address.
func (b *Bus) Write(address uint16, value uint8) error {
	switch {
	case address < 0x8000:
		return b.Cartridge.Write(address, value)
	case address < 0xA000:
		return b.PPU.Write(address, value)
	case address < 0xC000:
		return b.Cartridge.Write(address, value)
	case address < 0xE000:
		b.wram[address-0xC000] = value
		return nil
	case address < 0xFE00:
		b.wram[address-0xE000] = value
		return nil
	case address < 0xFEA0:
		return b.PPU.Write(address, value)
	case address < 0xFF00:
		// unusable region, writes are dropped
		return nil
	case address >= 0xFF80 && address < 0xFFFF:
		b.hram[address-0xFF80] = value
		return nil
	}

	switch address {
	case types.P1:
		b.Joypad.Write(value)
		return nil
	case types.SB:
		b.Serial.WriteSB(value)
		return nil
	case types.SC:
		b.Serial.WriteSC(value)
		return nil
	case types.DIV:
		b.Timer.WriteDIV(value)
		return nil
	case types.TIMA:
		b.Timer.WriteTIMA(value)
		return nil
	case types.TMA:
		b.Timer.WriteTMA(value)
		return nil
	case types.TAC:
		b.Timer.WriteTAC(value)
		return nil
	case types.IF:
		b.irq.WriteFlag(value)
		return nil
	case types.DMA:
		return b.oamDMA(value)
	case types.IE:
		b.irq.Enable = value
		return nil
	}

	switch {
	case address >= 0xFF10 && address < 0xFF40:
		// audio registers are an unwired stub
		return nil
	case address >= 0xFF40 && address <= 0xFF4B:
		return b.PPU.Write(address, value)
	}

	// unmapped I/O, writes are dropped
	return nil
}

// oamDMA copies 0xA0 bytes from value<<8 into OAM, bypassing
// the PPU's mode blocking the way the hardware DMA engine
// does.
func (b *Bus) oamDMA(value uint8) error {
	b.dma = value
	source := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		v, err := b.Read(source + i)
		if err != nil {
			return err
		}
		b.PPU.WriteOAMDirect(uint8(i), v)
	}
	return nil
}
