package cpu

// setFlags sets all four flags at once.
func (c *CPU) setFlags(z, n, h, carry bool) {
	c.Registers.F = Flags{Zero: z, Subtract: n, HalfCarry: h, Carry: carry}
}

// add adds value to the accumulator, with the carry flag when
// withCarry is set.
//
//	ADD A, n / ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(value uint8, withCarry bool) {
	carry := uint16(0)
	if withCarry && c.Registers.F.Carry {
		carry = 1
	}
	sum := uint16(c.Registers.A) + uint16(value) + carry
	halfSum := c.Registers.A&0x0F + value&0x0F + uint8(carry)
	c.setFlags(uint8(sum) == 0, false, halfSum > 0x0F, sum > 0xFF)
	c.Registers.A = uint8(sum)
}

// sub subtracts value from the accumulator, with the carry flag
// when withCarry is set.
//
//	SUB n / SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(value uint8, withCarry bool) {
	carry := int16(0)
	if withCarry && c.Registers.F.Carry {
		carry = 1
	}
	diff := int16(c.Registers.A) - int16(value) - carry
	halfDiff := int16(c.Registers.A&0x0F) - int16(value&0x0F) - carry
	c.setFlags(uint8(diff) == 0, true, halfDiff < 0, diff < 0)
	c.Registers.A = uint8(diff)
}

// and performs a bitwise AND against the accumulator.
//
//	AND n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(value uint8) {
	c.Registers.A &= value
	c.setFlags(c.Registers.A == 0, false, true, false)
}

// or performs a bitwise OR against the accumulator.
//
//	OR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(value uint8) {
	c.Registers.A |= value
	c.setFlags(c.Registers.A == 0, false, false, false)
}

// xor performs a bitwise XOR against the accumulator.
//
//	XOR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(value uint8) {
	c.Registers.A ^= value
	c.setFlags(c.Registers.A == 0, false, false, false)
}

// compare subtracts value from the accumulator for the flags
// alone, discarding the result.
//
//	CP n
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(value uint8) {
	a := c.Registers.A
	c.sub(value, false)
	c.Registers.A = a
}

// increment returns value+1.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.Registers.F.Zero = result == 0
	c.Registers.F.Subtract = false
	c.Registers.F.HalfCarry = value&0x0F == 0x0F
	return result
}

// decrement returns value-1.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.Registers.F.Zero = result == 0
	c.Registers.F.Subtract = true
	c.Registers.F.HalfCarry = value&0x0F == 0
	return result
}

// addHL adds value to the HL register pair.
//
//	ADD HL, rr
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(value uint16) {
	hl := c.Registers.HL()
	sum := uint32(hl) + uint32(value)
	c.Registers.F.Subtract = false
	c.Registers.F.HalfCarry = hl&0x0FFF+value&0x0FFF > 0x0FFF
	c.Registers.F.Carry = sum > 0xFFFF
	c.Registers.SetHL(uint16(sum))
}

// addSPSigned returns SP plus the signed offset, shared by
// ADD SP, e8 and LD HL, SP+e8.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(offset uint8) uint16 {
	// The flags come from the unsigned addition of the low
	// byte, regardless of the offset's sign.
	carries := c.SP ^ uint16(offset) ^ (c.SP + uint16(offset))
	c.setFlags(false, false, carries&0x10 != 0, carries&0x100 != 0)
	return c.SP + uint16(int8(offset))
}

// decimalAdjust adjusts the accumulator into binary-coded
// decimal after an addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or unchanged, see below.
func (c *CPU) decimalAdjust() {
	a := c.Registers.A
	if !c.Registers.F.Subtract {
		if c.Registers.F.Carry || a > 0x99 {
			a += 0x60
			c.Registers.F.Carry = true
		}
		if c.Registers.F.HalfCarry || c.Registers.A&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if c.Registers.F.Carry {
			a -= 0x60
		}
		if c.Registers.F.HalfCarry {
			a -= 0x06
		}
	}
	c.Registers.A = a
	c.Registers.F.Zero = a == 0
	c.Registers.F.HalfCarry = false
}

// rotateLeftCircular rotates value left, bit 7 into both the
// carry flag and bit 0.
//
//	RLC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 7.
func (c *CPU) rotateLeftCircular(value uint8) uint8 {
	result := value<<1 | value>>7
	c.setFlags(result == 0, false, false, value&0x80 != 0)
	return result
}

// rotateLeft rotates value left through the carry flag.
//
//	RL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 7.
func (c *CPU) rotateLeft(value uint8) uint8 {
	result := value << 1
	if c.Registers.F.Carry {
		result |= 1
	}
	c.setFlags(result == 0, false, false, value&0x80 != 0)
	return result
}

// rotateRightCircular rotates value right, bit 0 into both the
// carry flag and bit 7.
//
//	RRC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 0.
func (c *CPU) rotateRightCircular(value uint8) uint8 {
	result := value>>1 | value<<7
	c.setFlags(result == 0, false, false, value&0x01 != 0)
	return result
}

// rotateRight rotates value right through the carry flag.
//
//	RR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 0.
func (c *CPU) rotateRight(value uint8) uint8 {
	result := value >> 1
	if c.Registers.F.Carry {
		result |= 0x80
	}
	c.setFlags(result == 0, false, false, value&0x01 != 0)
	return result
}

// shiftLeftArithmetic shifts value left into the carry flag,
// bit 0 reset.
//
//	SLA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 7.
func (c *CPU) shiftLeftArithmetic(value uint8) uint8 {
	result := value << 1
	c.setFlags(result == 0, false, false, value&0x80 != 0)
	return result
}

// shiftRightArithmetic shifts value right into the carry flag,
// bit 7 unchanged.
//
//	SRA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 0.
func (c *CPU) shiftRightArithmetic(value uint8) uint8 {
	result := value>>1 | value&0x80
	c.setFlags(result == 0, false, false, value&0x01 != 0)
	return result
}

// shiftRightLogical shifts value right into the carry flag,
// bit 7 reset.
//
//	SRL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 0.
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	result := value >> 1
	c.setFlags(result == 0, false, false, value&0x01 != 0)
	return result
}

// swap exchanges the high and low nibbles of value.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.setFlags(result == 0, false, false, false)
	return result
}

// testBit tests bit number of value.
//
//	BIT b, n
//
// Flags affected:
//
//	Z - Set if bit b of n is zero.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value, bit uint8) {
	c.Registers.F.Zero = value&(1<<bit) == 0
	c.Registers.F.Subtract = false
	c.Registers.F.HalfCarry = true
}
