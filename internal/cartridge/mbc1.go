package cartridge

// MemoryBankedCartridge1 represents a MBC1 cartridge. This
// cartridge type supports up to 125 switchable ROM banks and 4
// RAM banks, with a mode select bit deciding whether the upper
// 2 bank bits address ROM or RAM.
type MemoryBankedCartridge1 struct {
	rom     []byte
	romBank uint32

	ram        []byte
	ramBank    uint32
	ramEnabled bool

	// romBanking selects ROM banking mode (true) or RAM
	// banking mode (false) for the 0x4000-0x5FFF writes
	romBanking bool

	header Header
}

// newMemoryBankedCartridge1 returns a new MBC1 cartridge.
func newMemoryBankedCartridge1(rom []byte, header Header) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		rom:        rom,
		romBank:    1,
		ram:        make([]byte, header.RAMSize),
		romBanking: true,
		header:     header,
	}
}

func (m *MemoryBankedCartridge1) Header() Header {
	return m.header
}

func (m *MemoryBankedCartridge1) Title() string {
	return m.header.Title
}

// Read returns the value from the cartridges ROM or RAM,
// depending on the bank selected.
func (m *MemoryBankedCartridge1) Read(address uint16) (uint8, error) {
	switch {
	case address < 0x4000:
		return m.rom[address], nil // bank 0 is always fixed
	case address < 0x8000:
		return m.rom[uint32(address-0x4000)+m.romBank*0x4000], nil // switchable bank
	case address >= 0xA000 && address < 0xC000:
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF, nil
		}
		return m.ram[uint32(address-0xA000)+m.ramBank*0x2000], nil
	}
	return 0, addressingError(address)
}

// Write attempts to switch the ROM or RAM bank, or writes to
// the selected RAM bank.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) error {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		// ROM bank number (lower 5 bits)
		m.romBank = (m.romBank & 0x60) | uint32(value&0x1F)
		m.updateROMBank()
	case address < 0x6000:
		if m.romBanking {
			m.romBank = (m.romBank & 0x1F) | uint32(value&0x03)<<5
			m.updateROMBank()
		} else {
			m.ramBank = uint32(value & 0x03)
			if len(m.ram) == 0 {
				m.ramBank = 0
			} else if m.ramBank*0x2000 >= uint32(len(m.ram)) {
				m.ramBank %= uint32(len(m.ram) / 0x2000)
			}
		}
	case address < 0x8000:
		// ROM/RAM mode select
		m.romBanking = value&0x01 == 0x00
		if m.romBanking {
			m.ramBank = 0
		}
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled && len(m.ram) > 0 {
			m.ram[uint32(address-0xA000)+m.ramBank*0x2000] = value
		}
	default:
		return addressingError(address)
	}
	return nil
}

// updateROMBank clamps the ROM bank to the cartridge size and
// skips the unmappable banks (0x00, 0x20, 0x40, 0x60 map to the
// next bank up).
func (m *MemoryBankedCartridge1) updateROMBank() {
	switch m.romBank {
	case 0x00, 0x20, 0x40, 0x60:
		m.romBank++
	}
	if m.romBank*0x4000 >= uint32(len(m.rom)) {
		m.romBank %= uint32(len(m.rom) / 0x4000)
	}
}
