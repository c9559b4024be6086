package cpu

// Flags holds the four CPU flags. They live in the high nibble
// of the F register; the low nibble is hard-wired to zero.
type Flags struct {
	// Zero is set when the result of an operation is zero.
	Zero bool
	// Subtract is set when the last operation was a
	// subtraction.
	Subtract bool
	// HalfCarry is set on a carry out of (or borrow into) bit
	// 3, or bit 11 for 16-bit additions.
	HalfCarry bool
	// Carry is set on a carry out of (or borrow into) bit 7,
	// or bit 15 for 16-bit additions.
	Carry bool
}

// Byte composes the flags into the F register layout:
//
//	Bit 7 - Zero
//	Bit 6 - Subtract
//	Bit 5 - Half Carry
//	Bit 4 - Carry
//	Bits 0-3 - always zero
func (f *Flags) Byte() uint8 {
	var v uint8
	if f.Zero {
		v |= 1 << 7
	}
	if f.Subtract {
		v |= 1 << 6
	}
	if f.HalfCarry {
		v |= 1 << 5
	}
	if f.Carry {
		v |= 1 << 4
	}
	return v
}

// SetByte decomposes the value into the flags, discarding the
// low nibble.
func (f *Flags) SetByte(v uint8) {
	f.Zero = v&(1<<7) != 0
	f.Subtract = v&(1<<6) != 0
	f.HalfCarry = v&(1<<5) != 0
	f.Carry = v&(1<<4) != 0
}

// Registers contains the eight 8-bit registers. The 16-bit
// pairs AF, BC, DE and HL are exposed through accessors, high
// register first.
type Registers struct {
	A uint8
	F Flags
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
}

// AF returns the AF register pair. The low nibble of F always
// reads as zero.
func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F.Byte())
}

// SetAF sets the AF register pair, discarding F's low nibble.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F.SetByte(uint8(v))
}

// BC returns the BC register pair.
func (r *Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC sets the BC register pair.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the DE register pair.
func (r *Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE sets the DE register pair.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the HL register pair.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL sets the HL register pair.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}
