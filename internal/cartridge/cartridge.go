// Package cartridge provides a Cartridge interface for the DMG.
// The cartridge holds the game ROM and any external RAM, and
// maps them into the 0x0000-0x7FFF and 0xA000-0xBFFF address
// windows via a memory bank controller.
package cartridge

import (
	"fmt"

	"github.com/dotmatrix-emulator/dotmatrix/internal/types"
)

// Cartridge represents a basic game cartridge. Reads and writes
// outside the cartridge's owned address windows (0x0000-0x7FFF
// and 0xA000-0xBFFF) fail with a types.AddressingError.
type Cartridge interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error

	Header() Header
	Title() string
}

// inWindow reports whether the address falls inside the
// cartridge's owned windows.
func inWindow(address uint16) bool {
	return address < 0x8000 || (address >= 0xA000 && address < 0xC000)
}

func addressingError(address uint16) error {
	return types.AddressingError{Address: address, Component: "cartridge"}
}

// NewCartridge returns a Cartridge for the given ROM image,
// selecting the memory bank controller from the header's
// cartridge type.
func NewCartridge(rom []byte) (Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, fmt.Errorf("rom too small for a cartridge header: %d bytes", len(rom))
	}

	// parse the cartridge header (0x0100 - 0x014F)
	header, err := parseHeader(rom[0x100:0x150])
	if err != nil {
		return nil, err
	}

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return newROMCartridge(rom, header), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return newMemoryBankedCartridge1(rom, header), nil
	case MBC3, MBC3RAM, MBC3RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT:
		return newMemoryBankedCartridge3(rom, header), nil
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return newMemoryBankedCartridge5(rom, header), nil
	}

	return nil, fmt.Errorf("unhandled cartridge type: %02X", uint8(header.CartridgeType))
}
