// Package serial provides an implementation of the Game Boy
// serial port. Transfers complete instantly at the byte level
// rather than bit-by-bit; the outgoing byte is captured in an
// output buffer that the orchestrator drains once per tick.
package serial

import (
	"github.com/dotmatrix-emulator/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emulator/dotmatrix/internal/types"
)

// Controller is the serial controller. It is responsible for
// sending and receiving data to and from an attached Device.
//
// Writing a value with bit 7 and bit 0 set to types.SC starts
// a transfer as the master: the types.SB byte is exchanged
// with the attached device, appended to the output buffer, and
// a serial interrupt is requested. Transfers requested with an
// external clock (bit 0 clear) never complete, as there is no
// external master driving the line.
type Controller struct {
	sb uint8 // data register (types.SB)
	sc uint8 // control register (types.SC)

	// output collects every byte sent out the port, drained
	// via Drain
	output []byte

	AttachedDevice Device
	irq            *interrupts.Service
}

// NewController creates a new Controller.
//
// By default, the Controller is attached to a nullDevice,
// which acts as if no link cable is plugged in. Use Attach to
// connect a device.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		sc:             0x7E, // bits 1-6 are unused
		AttachedDevice: nullDevice{},
		irq:            irq,
	}
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// ReadSB returns the data register.
func (c *Controller) ReadSB() uint8 {
	return c.sb
}

// WriteSB writes the data register.
func (c *Controller) WriteSB(v uint8) {
	c.sb = v
}

// ReadSC returns the control register; bits 1-6 always read as
// set.
func (c *Controller) ReadSC() uint8 {
	return c.sc | 0x7E
}

// WriteSC writes the control register, starting a transfer
// when bit 7 (request) and bit 0 (internal clock) are both
// set.
func (c *Controller) WriteSC(v uint8) {
	c.sc = v

	if v&types.Bit7 != 0 && v&types.Bit0 != 0 {
		c.transfer()
	}
}

// transfer exchanges one byte with the attached device and
// completes the transfer.
func (c *Controller) transfer() {
	c.output = append(c.output, c.sb)
	c.AttachedDevice.Receive(c.sb)
	c.sb = c.AttachedDevice.Send()

	// transfer complete
	c.sc &^= types.Bit7
	c.irq.Request(interrupts.SerialFlag)
}

// Drain returns the bytes sent out the port since the last
// call, or nil if there are none.
func (c *Controller) Drain() []byte {
	if len(c.output) == 0 {
		return nil
	}
	out := c.output
	c.output = nil
	return out
}
