// Package cpu implements the SM83 core: the complete base and
// CB-prefixed instruction sets, interrupt dispatch, and the HALT
// wake-up rules, all costed in machine cycles.
package cpu

import (
	"github.com/dotmatrix-emulator/dotmatrix/internal/interrupts"
)

// Bus is the CPU's view of the address space.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
}

// CPU executes one instruction per Step and reports its cost in
// machine cycles. One machine cycle is four clock cycles.
type CPU struct {
	Registers Registers
	PC        uint16
	SP        uint16

	bus Bus
	irq *interrupts.Service

	ime          bool
	imeScheduled bool
	halted       bool
	haltBug      bool
}

// New returns a CPU in the state the boot ROM leaves it in:
// execution starts at 0x0100 with the stack at 0xFFFE.
func New(bus Bus, irq *interrupts.Service) *CPU {
	c := &CPU{
		bus: bus,
		irq: irq,
		PC:  0x0100,
		SP:  0xFFFE,
	}
	c.Registers.A = 0x01
	c.Registers.F.SetByte(0xB0)
	c.Registers.SetBC(0x0013)
	c.Registers.SetDE(0x00D8)
	c.Registers.SetHL(0x014D)
	return c
}

// Halted reports whether the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step executes a single instruction, or burns one machine
// cycle if the CPU is halted, and returns the number of machine
// cycles consumed.
func (c *CPU) Step() (uint8, error) {
	if c.halted {
		// Any pending enabled interrupt ends the halt, even
		// with interrupts disabled. The wake-up cycle executes
		// nothing: with IME set the handler is entered before
		// the instruction after HALT.
		if !c.irq.HasInterrupts() {
			return 1, nil
		}
		c.halted = false
		cycles := uint8(1)
		if c.ime {
			extra, err := c.serviceInterrupt()
			if err != nil {
				return 0, err
			}
			cycles += extra
		}
		return cycles, nil
	}

	opcode, err := c.fetch()
	if err != nil {
		return 0, err
	}
	instruction := InstructionSet[opcode]
	if instruction.Op == OpPrefix {
		cb, err := c.fetch()
		if err != nil {
			return 0, err
		}
		instruction = InstructionSetCB[cb]
	}

	// EI takes effect during the instruction that follows it,
	// so a DI immediately after an EI wins.
	if c.imeScheduled {
		c.imeScheduled = false
		c.ime = true
	}

	branched, err := c.execute(instruction)
	if err != nil {
		return 0, err
	}
	cycles := instruction.Cycles
	if branched {
		cycles = instruction.BranchCycles
	}

	if c.ime && c.irq.HasInterrupts() {
		extra, err := c.serviceInterrupt()
		if err != nil {
			return 0, err
		}
		cycles += extra
	}
	return cycles, nil
}

// fetch reads the byte at PC. The HALT bug suppresses the PC
// increment for exactly one fetch, so the byte is executed
// twice.
func (c *CPU) fetch() (uint8, error) {
	value, err := c.bus.Read(c.PC)
	if err != nil {
		return 0, err
	}
	if c.haltBug {
		c.haltBug = false
	} else {
		c.PC++
	}
	return value, nil
}

// fetchWord reads the little-endian word at PC.
func (c *CPU) fetchWord() (uint16, error) {
	low, err := c.fetch()
	if err != nil {
		return 0, err
	}
	high, err := c.fetch()
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

// pushWord pushes value onto the stack, high byte first.
func (c *CPU) pushWord(value uint16) error {
	c.SP--
	if err := c.bus.Write(c.SP, uint8(value>>8)); err != nil {
		return err
	}
	c.SP--
	return c.bus.Write(c.SP, uint8(value))
}

// popWord pops a little-endian word from the stack.
func (c *CPU) popWord() (uint16, error) {
	low, err := c.bus.Read(c.SP)
	if err != nil {
		return 0, err
	}
	c.SP++
	high, err := c.bus.Read(c.SP)
	if err != nil {
		return 0, err
	}
	c.SP++
	return uint16(high)<<8 | uint16(low), nil
}

// serviceInterrupt jumps to the vector of the highest priority
// pending interrupt, which costs 5 machine cycles.
func (c *CPU) serviceInterrupt() (uint8, error) {
	c.ime = false
	c.halted = false
	vector := c.irq.Vector()
	if err := c.pushWord(c.PC); err != nil {
		return 0, err
	}
	c.PC = vector
	return 5, nil
}
