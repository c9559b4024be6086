package gameboy

import (
	"github.com/dotmatrix-emulator/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emulator/dotmatrix/internal/serial"
	"github.com/dotmatrix-emulator/dotmatrix/internal/serial/accessories"
	"github.com/dotmatrix-emulator/dotmatrix/pkg/log"
)

// Opt is a function that modifies a GameBoy instance.
type Opt func(gb *GameBoy)

// Debug logs every serial byte as it is drained.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// SerialDebugger accumulates serial output into output. Test
// ROMs report through the link port, so once the output
// contains "Passed" or "Failed" the DebugBreakpoint is raised.
func SerialDebugger(output *string) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = output
	}
}

// WithLogger replaces the default null logger.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = l
	}
}

// WithEngine attaches a display engine to the PPU.
func WithEngine(e ppu.Engine) Opt {
	return func(gb *GameBoy) {
		gb.PPU.AttachEngine(e)
	}
}

// WithSerialDevice attaches a device to the link port.
func WithSerialDevice(d serial.Device) Opt {
	return func(gb *GameBoy) {
		gb.Serial.Attach(d)
	}
}

// WithPrinter attaches a printer to the link port.
func WithPrinter(p *accessories.Printer) Opt {
	return func(gb *GameBoy) {
		gb.Serial.Attach(p)
	}
}
