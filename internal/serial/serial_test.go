package serial

import (
	"bytes"
	"testing"

	"github.com/dotmatrix-emulator/dotmatrix/internal/interrupts"
)

func TestController_Transfer(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)

	c.WriteSB('P')
	c.WriteSC(0x81)

	if got := c.Drain(); !bytes.Equal(got, []byte{'P'}) {
		t.Errorf("expected drained output [P], got %v", got)
	}
	if irq.Flag&interrupts.SerialFlag == 0 {
		t.Error("expected a serial interrupt")
	}
	if c.ReadSC()&0x80 != 0 {
		t.Error("expected the transfer request bit to clear")
	}
	// no device attached: the incoming line reads high
	if c.ReadSB() != 0xFF {
		t.Errorf("expected SB to read FF after transfer, got %02X", c.ReadSB())
	}
}

func TestController_ExternalClockDoesNotTransfer(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)

	c.WriteSB(0x42)
	c.WriteSC(0x80) // request with external clock

	if got := c.Drain(); got != nil {
		t.Errorf("expected no output, got %v", got)
	}
	if irq.Flag&interrupts.SerialFlag != 0 {
		t.Error("expected no serial interrupt")
	}
	if c.ReadSB() != 0x42 {
		t.Errorf("expected SB to be untouched, got %02X", c.ReadSB())
	}
}

func TestController_Loopback(t *testing.T) {
	c := NewController(interrupts.NewService())
	c.Attach(&Loopback{})

	c.WriteSB(0x3C)
	c.WriteSC(0x81)
	if c.ReadSB() != 0x3C {
		t.Errorf("expected loopback to echo 3C, got %02X", c.ReadSB())
	}
}

func TestController_DrainAccumulates(t *testing.T) {
	c := NewController(interrupts.NewService())

	for _, b := range []byte("Passed") {
		c.WriteSB(b)
		c.WriteSC(0x81)
	}
	if got := c.Drain(); !bytes.Equal(got, []byte("Passed")) {
		t.Errorf("expected Passed, got %q", got)
	}
	if got := c.Drain(); got != nil {
		t.Errorf("expected an empty second drain, got %v", got)
	}
}

func TestController_SCUnusedBits(t *testing.T) {
	c := NewController(interrupts.NewService())
	c.WriteSC(0x00)
	if got := c.ReadSC(); got != 0x7E {
		t.Errorf("expected bits 1-6 to read as set, got %02X", got)
	}
}
