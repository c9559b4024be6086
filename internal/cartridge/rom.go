package cartridge

// romCartridge represents a ROM-only cartridge. This is the
// simplest cartridge type: no bank switching, optionally a
// single fixed RAM bank.
type romCartridge struct {
	rom    []byte
	ram    []byte
	header Header
}

// newROMCartridge returns a new ROM-only cartridge.
func newROMCartridge(rom []byte, header Header) *romCartridge {
	return &romCartridge{
		rom:    rom,
		ram:    make([]byte, header.RAMSize),
		header: header,
	}
}

func (r *romCartridge) Header() Header {
	return r.header
}

func (r *romCartridge) Title() string {
	return r.header.Title
}

// Read returns the value at the given address.
func (r *romCartridge) Read(address uint16) (uint8, error) {
	switch {
	case address < 0x8000:
		if int(address) >= len(r.rom) {
			return 0xFF, nil
		}
		return r.rom[address], nil
	case address >= 0xA000 && address < 0xC000:
		offset := int(address - 0xA000)
		if offset >= len(r.ram) {
			return 0xFF, nil
		}
		return r.ram[offset], nil
	}
	return 0, addressingError(address)
}

// Write writes the value to the given address. Writes to the
// ROM area are ignored.
func (r *romCartridge) Write(address uint16, value uint8) error {
	switch {
	case address < 0x8000:
		return nil
	case address >= 0xA000 && address < 0xC000:
		offset := int(address - 0xA000)
		if offset < len(r.ram) {
			r.ram[offset] = value
		}
		return nil
	}
	return addressingError(address)
}
