package cpu

import "fmt"

// read8 resolves an 8-bit source operand. Reading through
// (HL+) and (HL-) adjusts HL afterwards.
func (c *CPU) read8(op Operand) (uint8, error) {
	switch op {
	case RegA:
		return c.Registers.A, nil
	case RegB:
		return c.Registers.B, nil
	case RegC:
		return c.Registers.C, nil
	case RegD:
		return c.Registers.D, nil
	case RegE:
		return c.Registers.E, nil
	case RegH:
		return c.Registers.H, nil
	case RegL:
		return c.Registers.L, nil
	case Immediate, ImmediateSigned:
		return c.fetch()
	case MemBC:
		return c.bus.Read(c.Registers.BC())
	case MemDE:
		return c.bus.Read(c.Registers.DE())
	case MemHL:
		return c.bus.Read(c.Registers.HL())
	case MemHLInc:
		hl := c.Registers.HL()
		c.Registers.SetHL(hl + 1)
		return c.bus.Read(hl)
	case MemHLDec:
		hl := c.Registers.HL()
		c.Registers.SetHL(hl - 1)
		return c.bus.Read(hl)
	case MemImmediate:
		address, err := c.fetchWord()
		if err != nil {
			return 0, err
		}
		return c.bus.Read(address)
	case MemHighC:
		return c.bus.Read(0xFF00 | uint16(c.Registers.C))
	case MemHighImmediate:
		offset, err := c.fetch()
		if err != nil {
			return 0, err
		}
		return c.bus.Read(0xFF00 | uint16(offset))
	}
	panic(fmt.Sprintf("cpu: unreadable operand %d", op))
}

// write8 resolves an 8-bit destination operand.
func (c *CPU) write8(op Operand, value uint8) error {
	switch op {
	case RegA:
		c.Registers.A = value
	case RegB:
		c.Registers.B = value
	case RegC:
		c.Registers.C = value
	case RegD:
		c.Registers.D = value
	case RegE:
		c.Registers.E = value
	case RegH:
		c.Registers.H = value
	case RegL:
		c.Registers.L = value
	case MemBC:
		return c.bus.Write(c.Registers.BC(), value)
	case MemDE:
		return c.bus.Write(c.Registers.DE(), value)
	case MemHL:
		return c.bus.Write(c.Registers.HL(), value)
	case MemHLInc:
		hl := c.Registers.HL()
		c.Registers.SetHL(hl + 1)
		return c.bus.Write(hl, value)
	case MemHLDec:
		hl := c.Registers.HL()
		c.Registers.SetHL(hl - 1)
		return c.bus.Write(hl, value)
	case MemImmediate:
		address, err := c.fetchWord()
		if err != nil {
			return err
		}
		return c.bus.Write(address, value)
	case MemHighC:
		return c.bus.Write(0xFF00|uint16(c.Registers.C), value)
	case MemHighImmediate:
		offset, err := c.fetch()
		if err != nil {
			return err
		}
		return c.bus.Write(0xFF00|uint16(offset), value)
	default:
		panic(fmt.Sprintf("cpu: unwritable operand %d", op))
	}
	return nil
}

// read16 resolves a 16-bit source operand.
func (c *CPU) read16(op Operand) (uint16, error) {
	switch op {
	case RegAF:
		return c.Registers.AF(), nil
	case RegBC:
		return c.Registers.BC(), nil
	case RegDE:
		return c.Registers.DE(), nil
	case RegHL:
		return c.Registers.HL(), nil
	case RegSP:
		return c.SP, nil
	case ImmediateWord:
		return c.fetchWord()
	}
	panic(fmt.Sprintf("cpu: unreadable word operand %d", op))
}

// write16 resolves a 16-bit destination operand. Writes to AF
// discard the low nibble of F.
func (c *CPU) write16(op Operand, value uint16) {
	switch op {
	case RegAF:
		c.Registers.SetAF(value)
	case RegBC:
		c.Registers.SetBC(value)
	case RegDE:
		c.Registers.SetDE(value)
	case RegHL:
		c.Registers.SetHL(value)
	case RegSP:
		c.SP = value
	default:
		panic(fmt.Sprintf("cpu: unwritable word operand %d", op))
	}
}

func (c *CPU) condition(cond Condition) bool {
	switch cond {
	case CondZ:
		return c.Registers.F.Zero
	case CondNZ:
		return !c.Registers.F.Zero
	case CondC:
		return c.Registers.F.Carry
	case CondNC:
		return !c.Registers.F.Carry
	}
	return true
}

// execute runs one decoded instruction. It reports whether a
// conditional branch was taken, which switches the cycle cost
// to BranchCycles.
func (c *CPU) execute(in Instruction) (bool, error) {
	switch in.Op {
	case OpNop:

	case OpLoad:
		value, err := c.read8(in.Src)
		if err != nil {
			return false, err
		}
		return false, c.write8(in.Dst, value)

	case OpLoadWord:
		value, err := c.read16(in.Src)
		if err != nil {
			return false, err
		}
		c.write16(in.Dst, value)

	case OpLoadHLSP:
		offset, err := c.fetch()
		if err != nil {
			return false, err
		}
		c.Registers.SetHL(c.addSPSigned(offset))

	case OpLoadSPHL:
		c.SP = c.Registers.HL()

	case OpStoreSP:
		address, err := c.fetchWord()
		if err != nil {
			return false, err
		}
		if err := c.bus.Write(address, uint8(c.SP)); err != nil {
			return false, err
		}
		return false, c.bus.Write(address+1, uint8(c.SP>>8))

	case OpPush:
		value, err := c.read16(in.Src)
		if err != nil {
			return false, err
		}
		return false, c.pushWord(value)

	case OpPop:
		value, err := c.popWord()
		if err != nil {
			return false, err
		}
		c.write16(in.Dst, value)

	case OpAdd, OpAdc:
		value, err := c.read8(in.Src)
		if err != nil {
			return false, err
		}
		c.add(value, in.Op == OpAdc)

	case OpSub, OpSbc:
		value, err := c.read8(in.Src)
		if err != nil {
			return false, err
		}
		c.sub(value, in.Op == OpSbc)

	case OpAnd:
		value, err := c.read8(in.Src)
		if err != nil {
			return false, err
		}
		c.and(value)

	case OpXor:
		value, err := c.read8(in.Src)
		if err != nil {
			return false, err
		}
		c.xor(value)

	case OpOr:
		value, err := c.read8(in.Src)
		if err != nil {
			return false, err
		}
		c.or(value)

	case OpCompare:
		value, err := c.read8(in.Src)
		if err != nil {
			return false, err
		}
		c.compare(value)

	case OpIncrement:
		value, err := c.read8(in.Dst)
		if err != nil {
			return false, err
		}
		return false, c.write8(in.Dst, c.increment(value))

	case OpDecrement:
		value, err := c.read8(in.Dst)
		if err != nil {
			return false, err
		}
		return false, c.write8(in.Dst, c.decrement(value))

	case OpIncrementWord:
		value, _ := c.read16(in.Dst)
		c.write16(in.Dst, value+1)

	case OpDecrementWord:
		value, _ := c.read16(in.Dst)
		c.write16(in.Dst, value-1)

	case OpAddHL:
		value, _ := c.read16(in.Src)
		c.addHL(value)

	case OpAddSP:
		offset, err := c.fetch()
		if err != nil {
			return false, err
		}
		c.SP = c.addSPSigned(offset)

	case OpDAA:
		c.decimalAdjust()

	case OpComplement:
		c.Registers.A = ^c.Registers.A
		c.Registers.F.Subtract = true
		c.Registers.F.HalfCarry = true

	case OpSetCarryFlag:
		c.Registers.F.Subtract = false
		c.Registers.F.HalfCarry = false
		c.Registers.F.Carry = true

	case OpFlipCarryFlag:
		c.Registers.F.Subtract = false
		c.Registers.F.HalfCarry = false
		c.Registers.F.Carry = !c.Registers.F.Carry

	// The accumulator rotates always clear the zero flag,
	// unlike their CB counterparts.
	case OpRotateLeftCircularA:
		c.Registers.A = c.rotateLeftCircular(c.Registers.A)
		c.Registers.F.Zero = false

	case OpRotateLeftA:
		c.Registers.A = c.rotateLeft(c.Registers.A)
		c.Registers.F.Zero = false

	case OpRotateRightCircularA:
		c.Registers.A = c.rotateRightCircular(c.Registers.A)
		c.Registers.F.Zero = false

	case OpRotateRightA:
		c.Registers.A = c.rotateRight(c.Registers.A)
		c.Registers.F.Zero = false

	case OpJump:
		address, err := c.fetchWord()
		if err != nil {
			return false, err
		}
		if !c.condition(in.Cond) {
			return false, nil
		}
		c.PC = address
		return in.Cond != CondNone, nil

	case OpJumpHL:
		c.PC = c.Registers.HL()

	case OpJumpRelative:
		offset, err := c.fetch()
		if err != nil {
			return false, err
		}
		if !c.condition(in.Cond) {
			return false, nil
		}
		c.PC += uint16(int8(offset))
		return in.Cond != CondNone, nil

	case OpCall:
		address, err := c.fetchWord()
		if err != nil {
			return false, err
		}
		if !c.condition(in.Cond) {
			return false, nil
		}
		if err := c.pushWord(c.PC); err != nil {
			return false, err
		}
		c.PC = address
		return in.Cond != CondNone, nil

	case OpReturn:
		if !c.condition(in.Cond) {
			return false, nil
		}
		address, err := c.popWord()
		if err != nil {
			return false, err
		}
		c.PC = address
		return in.Cond != CondNone, nil

	case OpReturnInterrupt:
		address, err := c.popWord()
		if err != nil {
			return false, err
		}
		c.PC = address
		c.ime = true

	case OpRestart:
		if err := c.pushWord(c.PC); err != nil {
			return false, err
		}
		c.PC = uint16(in.Bit)

	case OpHalt:
		// Halting with interrupts disabled while one is
		// already pending triggers the HALT bug: the next
		// fetch does not advance PC.
		if !c.ime && c.irq.HasInterrupts() {
			c.haltBug = true
		} else {
			c.halted = true
		}

	case OpStop:
		c.halted = true

	case OpDisableInterrupts:
		c.ime = false
		c.imeScheduled = false

	case OpEnableInterrupts:
		c.imeScheduled = true

	case OpIllegal:
		panic(fmt.Sprintf("cpu: executed %s", in.Mnemonic))

	case OpRotateLeftCircular:
		return false, c.readModifyWrite(in.Dst, c.rotateLeftCircular)

	case OpRotateRightCircular:
		return false, c.readModifyWrite(in.Dst, c.rotateRightCircular)

	case OpRotateLeft:
		return false, c.readModifyWrite(in.Dst, c.rotateLeft)

	case OpRotateRight:
		return false, c.readModifyWrite(in.Dst, c.rotateRight)

	case OpShiftLeftArithmetic:
		return false, c.readModifyWrite(in.Dst, c.shiftLeftArithmetic)

	case OpShiftRightArithmetic:
		return false, c.readModifyWrite(in.Dst, c.shiftRightArithmetic)

	case OpShiftRightLogical:
		return false, c.readModifyWrite(in.Dst, c.shiftRightLogical)

	case OpSwap:
		return false, c.readModifyWrite(in.Dst, c.swap)

	case OpBit:
		value, err := c.read8(in.Dst)
		if err != nil {
			return false, err
		}
		c.testBit(value, in.Bit)

	case OpReset:
		return false, c.readModifyWrite(in.Dst, func(v uint8) uint8 {
			return v &^ (1 << in.Bit)
		})

	case OpSet:
		return false, c.readModifyWrite(in.Dst, func(v uint8) uint8 {
			return v | 1<<in.Bit
		})

	default:
		panic(fmt.Sprintf("cpu: unhandled operation %d (%s)", in.Op, in.Mnemonic))
	}
	return false, nil
}

// readModifyWrite applies fn to an 8-bit operand in place.
func (c *CPU) readModifyWrite(op Operand, fn func(uint8) uint8) error {
	value, err := c.read8(op)
	if err != nil {
		return err
	}
	return c.write8(op, fn(value))
}
