// Package gameboy wires the SM83 core to its peripherals and
// drives them in lockstep: one CPU instruction, then the timer
// and the display catch up dot by dot.
package gameboy

import (
	"strings"

	"github.com/dotmatrix-emulator/dotmatrix/internal/bus"
	"github.com/dotmatrix-emulator/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emulator/dotmatrix/internal/cpu"
	"github.com/dotmatrix-emulator/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emulator/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emulator/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emulator/dotmatrix/internal/serial"
	"github.com/dotmatrix-emulator/dotmatrix/internal/timer"
	"github.com/dotmatrix-emulator/dotmatrix/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = 4194304 // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224
)

// Frontend is what a GameBoy needs from a display backend to
// run interactively.
type Frontend interface {
	// Closed reports whether the frontend has been shut down.
	Closed() bool
	// PollButtons returns the buttons pressed and released
	// since the last poll.
	PollButtons() (pressed, released []joypad.Button)
	// Render displays a completed 160x144 frame.
	Render(frame []ppu.Shade)
}

// GameBoy owns all the components of a DMG and is the main
// entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	Bus        *bus.Bus
	PPU        *ppu.PPU
	Joypad     *joypad.State
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller

	log.Logger

	// DebugBreakpoint is raised by the serial debugger when a
	// test ROM reports a verdict.
	DebugBreakpoint bool

	// the display runs on a sleep hint protocol: ppuPending
	// dots are owed, ppuNext is how many it asked for.
	ppuPending uint32
	ppuNext    uint32

	debug     bool
	serialOut *string
}

// New builds a GameBoy around the given ROM image.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return nil, err
	}

	irq := interrupts.NewService()
	pad := joypad.New(irq)
	ser := serial.NewController(irq)
	tim := timer.NewController(irq)
	video := ppu.New(irq)
	memBus := bus.New(cart, video, tim, pad, ser, irq)

	g := &GameBoy{
		CPU:        cpu.New(memBus, irq),
		Bus:        memBus,
		PPU:        video,
		Joypad:     pad,
		Interrupts: irq,
		Timer:      tim,
		Serial:     ser,

		Logger:  log.NewNullLogger(),
		ppuNext: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Tick executes one CPU instruction and catches the
// peripherals up to it. The order is fixed: CPU first, then the
// timer and display per elapsed clock cycle, then the serial
// drain.
func (g *GameBoy) Tick() error {
	mCycles, err := g.CPU.Step()
	if err != nil {
		g.Errorf("tick failed: %v", err)
		return err
	}

	dots := uint32(mCycles) * 4
	for i := uint32(0); i < dots; i++ {
		g.Timer.Tick()
	}

	g.ppuPending += dots
	for g.ppuPending >= g.ppuNext {
		g.ppuPending -= g.ppuNext
		g.ppuNext = g.PPU.Step(g.ppuNext)
	}

	for _, b := range g.Serial.Drain() {
		g.onSerialByte(b)
	}
	return nil
}

// Frame ticks the emulation until the display finishes the
// current frame, then returns it.
func (g *GameBoy) Frame() ([]ppu.Shade, error) {
	frame := g.PPU.FrameCount()
	for g.PPU.FrameCount() == frame {
		if err := g.Tick(); err != nil {
			return nil, err
		}
	}
	return g.PPU.Frame(), nil
}

// Run drives the frontend until it closes, the serial debugger
// trips, or the emulation fails.
func (g *GameBoy) Run(f Frontend) error {
	for !f.Closed() {
		pressed, released := f.PollButtons()
		for _, b := range pressed {
			g.Joypad.Press(b)
		}
		for _, b := range released {
			g.Joypad.Release(b)
		}

		frame, err := g.Frame()
		if err != nil {
			return err
		}
		f.Render(frame)

		if g.DebugBreakpoint {
			g.Infof("breakpoint reached, stopping")
			return nil
		}
	}
	return nil
}

func (g *GameBoy) onSerialByte(b uint8) {
	if g.debug {
		g.Debugf("serial: %02X %q", b, string(rune(b)))
	}
	if g.serialOut == nil {
		return
	}
	*g.serialOut += string(rune(b))
	if strings.Contains(*g.serialOut, "Passed") || strings.Contains(*g.serialOut, "Failed") {
		g.DebugBreakpoint = true
	}
}
