package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO registers are
// mapped to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the joypad register. The upper select bits choose
	// which half of the button matrix is visible in the lower
	// 4 bits.
	P1 HardwareAddress = 0xFF00
	// SB is the serial transfer data register. It holds the next
	// byte to be shifted out of the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the serial transfer control register. Writing 0x81
	// starts a transfer with the internal clock.
	SC HardwareAddress = 0xFF02
	// DIV is the divider register. It increments at a rate of
	// 16384Hz; writing any value resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the timer counter register. It is incremented at the
	// rate selected by TAC, and reloaded from TMA on overflow.
	TIMA HardwareAddress = 0xFF05
	// TMA is the timer modulo register, loaded into TIMA when it
	// overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the timer control register.
	//
	//	Bit 2   - Timer Enable
	//	Bit 1-0 - Input Clock Select (4096/262144/65536/16384 Hz)
	TAC HardwareAddress = 0xFF07
	// IF is the interrupt flag register. A set bit marks a pending
	// interrupt; the upper 3 bits always read as 1.
	//
	//	Bit 0: V-Blank  (INT 40h)
	//	Bit 1: LCD STAT (INT 48h)
	//	Bit 2: Timer    (INT 50h)
	//	Bit 3: Serial   (INT 58h)
	//	Bit 4: Joypad   (INT 60h)
	IF HardwareAddress = 0xFF0F
	// LCDC is the LCD control register.
	LCDC HardwareAddress = 0xFF40
	// STAT is the LCD status register. Bits 3-6 select the STAT
	// interrupt sources, bit 2 is the LYC=LY coincidence flag and
	// bits 0-1 report the current PPU mode.
	STAT HardwareAddress = 0xFF41
	// SCY is the background vertical scroll register.
	SCY HardwareAddress = 0xFF42
	// SCX is the background horizontal scroll register.
	SCX HardwareAddress = 0xFF43
	// LY is the current scanline, read only. Values 144-153
	// indicate V-Blank.
	LY HardwareAddress = 0xFF44
	// LYC is the LY compare register, used for the programmable
	// scanline interrupt.
	LYC HardwareAddress = 0xFF45
	// DMA is the OAM DMA transfer register. Writing a value XX
	// copies 0xXX00-0xXX9F into OAM.
	DMA HardwareAddress = 0xFF46
	// BGP is the background palette register.
	BGP HardwareAddress = 0xFF47
	// OBP0 is the first object palette register.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the second object palette register.
	OBP1 HardwareAddress = 0xFF49
	// WY is the window Y position register.
	WY HardwareAddress = 0xFF4A
	// WX is the window X position register (plus 7).
	WX HardwareAddress = 0xFF4B
	// IE is the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)
