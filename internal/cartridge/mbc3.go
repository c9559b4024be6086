package cartridge

// MemoryBankedCartridge3 represents a MBC3 cartridge. This
// cartridge type supports up to 128 ROM banks and 4 RAM banks.
// The real time clock present on some MBC3 boards is not
// simulated; selecting an RTC register maps reads to 0xFF and
// discards writes, and latch requests are ignored.
type MemoryBankedCartridge3 struct {
	rom     []byte
	romBank uint32

	ram        []byte
	ramBank    int32 // -1 when an RTC register is selected
	ramEnabled bool

	header Header
}

// newMemoryBankedCartridge3 returns a new MBC3 cartridge.
func newMemoryBankedCartridge3(rom []byte, header Header) *MemoryBankedCartridge3 {
	return &MemoryBankedCartridge3{
		rom:     rom,
		romBank: 1,
		ram:     make([]byte, header.RAMSize),
		header:  header,
	}
}

func (m *MemoryBankedCartridge3) Header() Header {
	return m.header
}

func (m *MemoryBankedCartridge3) Title() string {
	return m.header.Title
}

// Read returns the value from the cartridges ROM or RAM,
// depending on the bank selected.
func (m *MemoryBankedCartridge3) Read(address uint16) (uint8, error) {
	switch {
	case address < 0x4000:
		return m.rom[address], nil
	case address < 0x8000:
		return m.rom[uint32(address-0x4000)+m.romBank*0x4000], nil
	case address >= 0xA000 && address < 0xC000:
		if m.ramBank < 0 || !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF, nil
		}
		return m.ram[uint32(m.ramBank)*0x2000+uint32(address&0x1FFF)], nil
	}
	return 0, addressingError(address)
}

// Write attempts to switch the ROM or RAM bank, or writes to
// the selected RAM bank.
func (m *MemoryBankedCartridge3) Write(address uint16, value uint8) error {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		// the full 7-bit bank number, bank 0 maps to 1
		m.romBank = uint32(value & 0x7F)
		if m.romBank == 0 {
			m.romBank = 1
		}
		if m.romBank*0x4000 >= uint32(len(m.rom)) {
			m.romBank %= uint32(len(m.rom) / 0x4000)
		}
	case address < 0x6000:
		if value >= 0x08 && value <= 0x0C {
			// RTC register select; reads will return 0xFF
			m.ramBank = -1
		} else if value <= 0x03 {
			m.ramBank = int32(value & 0x03)
			if len(m.ram) == 0 {
				m.ramBank = 0
			} else if int(m.ramBank)*0x2000 >= len(m.ram) {
				m.ramBank = int32(int(m.ramBank) % (len(m.ram) / 0x2000))
			}
		}
	case address < 0x8000:
		// RTC latch, ignored
	case address >= 0xA000 && address < 0xC000:
		if m.ramBank >= 0 && m.ramEnabled && len(m.ram) > 0 {
			m.ram[uint32(m.ramBank)*0x2000+uint32(address&0x1FFF)] = value
		}
	default:
		return addressingError(address)
	}
	return nil
}
