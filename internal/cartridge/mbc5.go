package cartridge

// MemoryBankedCartridge5 represents a MBC5 cartridge. This
// cartridge type supports a 9-bit ROM bank number (up to 512
// banks) and 16 RAM banks. Bank 0 is a legal switchable bank.
type MemoryBankedCartridge5 struct {
	rom     []byte
	romBank int

	ram        []byte
	ramBank    int
	ramEnabled bool

	header Header
}

// newMemoryBankedCartridge5 returns a new MBC5 cartridge.
func newMemoryBankedCartridge5(rom []byte, header Header) *MemoryBankedCartridge5 {
	return &MemoryBankedCartridge5{
		rom:     rom,
		romBank: 1,
		ram:     make([]byte, header.RAMSize),
		header:  header,
	}
}

func (m *MemoryBankedCartridge5) Header() Header {
	return m.header
}

func (m *MemoryBankedCartridge5) Title() string {
	return m.header.Title
}

// Read returns the value from the cartridges ROM or RAM,
// depending on the bank selected.
func (m *MemoryBankedCartridge5) Read(address uint16) (uint8, error) {
	switch {
	case address < 0x4000:
		return m.rom[address], nil // bank 0 is always fixed
	case address < 0x8000:
		return m.rom[m.romBank*0x4000+int(address&0x3FFF)], nil // switchable bank
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF, nil
		}
		return m.ram[m.ramBank*0x2000+int(address&0x1FFF)], nil
	}
	return 0, addressingError(address)
}

// Write attempts to switch the ROM or RAM bank, or writes to
// the selected RAM bank.
func (m *MemoryBankedCartridge5) Write(address uint16, value uint8) error {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x3000:
		// ROM bank number (lower 8 bits)
		m.romBank = (m.romBank & 0x100) | int(value)
		m.clampROMBank()
	case address < 0x4000:
		// ROM bank number (upper 1 bit)
		m.romBank = (m.romBank & 0x0FF) | int(value&0x01)<<8
		m.clampROMBank()
	case address < 0x6000:
		// RAM bank number
		m.ramBank = int(value & 0x0F)
		if len(m.ram) == 0 {
			m.ramBank = 0
		} else if m.ramBank*0x2000 >= len(m.ram) {
			m.ramBank %= len(m.ram) / 0x2000
		}
	case address < 0x8000:
		// unmapped on MBC5
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled && len(m.ram) > 0 {
			m.ram[m.ramBank*0x2000+int(address&0x1FFF)] = value
		}
	default:
		return addressingError(address)
	}
	return nil
}

func (m *MemoryBankedCartridge5) clampROMBank() {
	if m.romBank*0x4000 >= len(m.rom) {
		m.romBank %= len(m.rom) / 0x4000
	}
}
