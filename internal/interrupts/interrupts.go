package interrupts

import (
	"github.com/dotmatrix-emulator/dotmatrix/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register (types.STAT),
	// on a rising edge of the combined STAT line.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows,
	// (types.TIMA > 0xFF).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4),
	// which is requested when any of types.P1 bits 0-3
	// go from high to low, if the corresponding select
	// bit (types.P1 bit 4 or 5) is set to 0.
	JoypadFlag = types.Bit4
)

// Service is the interrupt service, used to request
// interrupts and to get the current interrupt vector.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. When an interrupt is requested and enabled,
// and the IME is set, the CPU will jump to the interrupt
// vector, and the corresponding bit in the Flag register
// will be cleared.
//
// The IME is set by the DI, EI and RETI instructions,
// and it is used to disable and enable interrupts.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// ReadFlag returns the Flag register as seen on the bus;
// the upper 3 bits always read as set.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | 0xE0
}

// WriteFlag writes the Flag register. Only the first 5
// bits are used.
func (s *Service) WriteFlag(v uint8) {
	s.Flag = v & 0x1F
}

// Vector returns the vector of the highest priority
// requested and enabled interrupt, or 0 if there is none.
// This function will also clear the corresponding bit in
// the Flag register. Priority runs from bit 0 (VBlank)
// to bit 4 (Joypad).
func (s *Service) Vector() uint16 {
	if s.Enable&s.Flag&0x1F == 0 {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		// get the flag for the current interrupt
		flag := uint8(1 << i)

		// check if the interrupt is requested and enabled
		if s.Flag&(flag) != 0 && s.Enable&(flag) != 0 {
			// clear the interrupt flag and return the vector
			s.Flag = s.Flag ^ flag
			return uint16(0x0040 + uint16(i)*8)
		}
	}

	return 0
}
