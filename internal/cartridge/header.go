package cartridge

import "fmt"

var ramSizes = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
)

// Header represents the header of a cartridge, located at the
// address space 0x0100-0x014F. The header contains information
// about the cartridge itself, and the hardware it expects to
// run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0147 - CartridgeType determines the memory bank
	// controller the cartridge uses.
	CartridgeType Type

	// 0x0148 - ROMSize in bytes (32kB x (1 << n))
	ROMSize uint

	// 0x0149 - RAMSize in bytes
	RAMSize uint

	MaskROMVersion uint8
	HeaderChecksum uint8
	GlobalChecksum uint16
}

// parseHeader parses the header of the given ROM and returns a
// Header.
func parseHeader(header []byte) (Header, error) {
	h := Header{}

	if len(header) != 0x50 {
		return h, fmt.Errorf("invalid header length: %d", len(header))
	}

	// parse the title, trimming trailing padding
	title := header[0x34:0x44]
	for len(title) > 0 && (title[len(title)-1] == 0x00 || title[len(title)-1] == 0xFF) {
		title = title[:len(title)-1]
	}
	h.Title = string(title)

	h.CartridgeType = Type(header[0x47])
	h.ROMSize = (32 * 1024) * (1 << header[0x48])
	h.RAMSize = ramSizes[header[0x49]]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E]) | uint16(header[0x4F])<<8

	// verify the header checksum (sum over 0x0134-0x014C)
	var checksum uint8
	for _, b := range header[0x34:0x4D] {
		checksum = checksum - b - 1
	}
	if checksum != h.HeaderChecksum {
		return h, fmt.Errorf("header checksum mismatch: computed %02X, header says %02X", checksum, h.HeaderChecksum)
	}

	return h, nil
}

func (h Header) String() string {
	return fmt.Sprintf("%s | Type: %02X | ROM Size: %dkB | RAM Size: %dkB", h.Title, uint8(h.CartridgeType), h.ROMSize/1024, h.RAMSize/1024)
}
