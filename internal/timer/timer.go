// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a configurable
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"github.com/dotmatrix-emulator/dotmatrix/internal/interrupts"
)

// frequencies holds the selectable timer frequencies in Hz,
// indexed by the lower 2 bits of types.TAC.
var frequencies = [4]uint32{4096, 262144, 65536, 16384}

// ClockSpeed is the base clock speed of the Game Boy in Hz.
const ClockSpeed = 4194304

// Controller is a timer controller. It is used to generate
// interrupts at a specific frequency. The frequency can be
// configured using the types.TAC register.
type Controller struct {
	divAcc uint16 // divider accumulator, wraps at 256
	div    uint8  // divider register (types.DIV)

	counterAcc uint32 // counter accumulator, wraps at ClockSpeed / frequency
	tima       uint8  // counter register (types.TIMA)
	tma        uint8  // modulo register (types.TMA)
	tac        uint8  // control register (types.TAC)

	irq *interrupts.Service
}

// NewController returns a new timer controller.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		irq: irq,
	}
}

// Tick ticks the timer controller by 1 T-Cycle.
func (c *Controller) Tick() {
	// the divider runs regardless of the enable bit
	c.divAcc++
	if c.divAcc >= 256 {
		c.divAcc = 0
		c.div++
	}

	if !c.enabled() {
		return
	}

	c.counterAcc++
	if c.counterAcc >= ClockSpeed/c.frequency() {
		c.counterAcc = 0
		c.tima++

		// on overflow, reload from TMA and raise the interrupt
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.TimerFlag)
		}
	}
}

// enabled returns true if the counter is enabled (types.TAC
// bit 2).
func (c *Controller) enabled() bool {
	return c.tac&0x04 != 0
}

// frequency returns the currently selected counter frequency
// in Hz.
func (c *Controller) frequency() uint32 {
	return frequencies[c.tac&0x03]
}

// ReadDIV returns the divider register.
func (c *Controller) ReadDIV() uint8 {
	return c.div
}

// WriteDIV resets the divider register and its accumulator.
// The written value is discarded.
func (c *Controller) WriteDIV(uint8) {
	c.div = 0
	c.divAcc = 0
}

// ReadTIMA returns the counter register.
func (c *Controller) ReadTIMA() uint8 {
	return c.tima
}

// WriteTIMA writes the counter register.
func (c *Controller) WriteTIMA(v uint8) {
	c.tima = v
}

// ReadTMA returns the modulo register.
func (c *Controller) ReadTMA() uint8 {
	return c.tma
}

// WriteTMA writes the modulo register.
func (c *Controller) WriteTMA(v uint8) {
	c.tma = v
}

// ReadTAC returns the control register; the upper 5 bits
// always read as set.
func (c *Controller) ReadTAC() uint8 {
	return c.tac | 0xF8
}

// WriteTAC writes the control register. Only the lower 3
// bits are stored.
func (c *Controller) WriteTAC(v uint8) {
	c.tac = v & 0x07
}
