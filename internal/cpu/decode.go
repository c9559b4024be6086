package cpu

import "fmt"

// InstructionSet holds the 256 base opcodes and
// InstructionSetCB the 256 CB-prefixed opcodes. Both tables are
// populated at init time.
var (
	InstructionSet   [256]Instruction
	InstructionSetCB [256]Instruction
)

// register operands in the order of the regular opcode
// encoding: B, C, D, E, H, L, (HL), A.
var (
	r8Operands = [8]Operand{RegB, RegC, RegD, RegE, RegH, RegL, MemHL, RegA}
	r8Names    = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

	r16Operands = [4]Operand{RegBC, RegDE, RegHL, RegSP}
	r16Names    = [4]string{"BC", "DE", "HL", "SP"}

	stackOperands = [4]Operand{RegBC, RegDE, RegHL, RegAF}
	stackNames    = [4]string{"BC", "DE", "HL", "AF"}
)

// illegalOpcodes do not exist on the SM83. Executing one locks
// up the hardware, so the interpreter panics on them.
var illegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func define(opcode uint8, in Instruction) {
	InstructionSet[opcode] = in
}

func defineCB(opcode uint8, in Instruction) {
	InstructionSetCB[opcode] = in
}

func init() {
	// LD r, r' occupies 0x40-0x7F with 0x76 carved out for
	// HALT.
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			opcode := uint8(0x40 | dst<<3 | src)
			if opcode == 0x76 {
				continue
			}
			cycles := uint8(1)
			if r8Operands[dst] == MemHL || r8Operands[src] == MemHL {
				cycles = 2
			}
			define(opcode, Instruction{
				Mnemonic: fmt.Sprintf("LD %s, %s", r8Names[dst], r8Names[src]),
				Op:       OpLoad,
				Dst:      r8Operands[dst],
				Src:      r8Operands[src],
				Cycles:   cycles,
			})
		}
	}

	// The eight accumulator operations occupy 0x80-0xBF in
	// register order, with their immediate forms at
	// 0xC6 + n*8.
	aluOps := [8]Operation{OpAdd, OpAdc, OpSub, OpSbc, OpAnd, OpXor, OpOr, OpCompare}
	aluNames := [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}
	for op := 0; op < 8; op++ {
		for src := 0; src < 8; src++ {
			cycles := uint8(1)
			if r8Operands[src] == MemHL {
				cycles = 2
			}
			define(uint8(0x80|op<<3|src), Instruction{
				Mnemonic: fmt.Sprintf("%s %s", aluNames[op], r8Names[src]),
				Op:       aluOps[op],
				Dst:      RegA,
				Src:      r8Operands[src],
				Cycles:   cycles,
			})
		}
		define(uint8(0xC6+op*8), Instruction{
			Mnemonic: fmt.Sprintf("%s d8", aluNames[op]),
			Op:       aluOps[op],
			Dst:      RegA,
			Src:      Immediate,
			Cycles:   2,
		})
	}

	// INC r, DEC r and LD r, d8 stride every 8 opcodes
	// starting at 0x04, 0x05 and 0x06.
	for i := 0; i < 8; i++ {
		incCycles, ldCycles := uint8(1), uint8(2)
		if r8Operands[i] == MemHL {
			incCycles, ldCycles = 3, 3
		}
		define(uint8(0x04+i*8), Instruction{
			Mnemonic: fmt.Sprintf("INC %s", r8Names[i]),
			Op:       OpIncrement,
			Dst:      r8Operands[i],
			Cycles:   incCycles,
		})
		define(uint8(0x05+i*8), Instruction{
			Mnemonic: fmt.Sprintf("DEC %s", r8Names[i]),
			Op:       OpDecrement,
			Dst:      r8Operands[i],
			Cycles:   incCycles,
		})
		define(uint8(0x06+i*8), Instruction{
			Mnemonic: fmt.Sprintf("LD %s, d8", r8Names[i]),
			Op:       OpLoad,
			Dst:      r8Operands[i],
			Src:      Immediate,
			Cycles:   ldCycles,
		})
	}

	// 16-bit register pair operations.
	for i := 0; i < 4; i++ {
		define(uint8(0x01+i*16), Instruction{
			Mnemonic: fmt.Sprintf("LD %s, d16", r16Names[i]),
			Op:       OpLoadWord,
			Dst:      r16Operands[i],
			Src:      ImmediateWord,
			Cycles:   3,
		})
		define(uint8(0x03+i*16), Instruction{
			Mnemonic: fmt.Sprintf("INC %s", r16Names[i]),
			Op:       OpIncrementWord,
			Dst:      r16Operands[i],
			Cycles:   2,
		})
		define(uint8(0x09+i*16), Instruction{
			Mnemonic: fmt.Sprintf("ADD HL, %s", r16Names[i]),
			Op:       OpAddHL,
			Dst:      RegHL,
			Src:      r16Operands[i],
			Cycles:   2,
		})
		define(uint8(0x0B+i*16), Instruction{
			Mnemonic: fmt.Sprintf("DEC %s", r16Names[i]),
			Op:       OpDecrementWord,
			Dst:      r16Operands[i],
			Cycles:   2,
		})
		define(uint8(0xC5+i*16), Instruction{
			Mnemonic: fmt.Sprintf("PUSH %s", stackNames[i]),
			Op:       OpPush,
			Src:      stackOperands[i],
			Cycles:   4,
		})
		define(uint8(0xC1+i*16), Instruction{
			Mnemonic: fmt.Sprintf("POP %s", stackNames[i]),
			Op:       OpPop,
			Dst:      stackOperands[i],
			Cycles:   3,
		})
	}

	// Accumulator loads through register pair pointers.
	indirect := [4]Operand{MemBC, MemDE, MemHLInc, MemHLDec}
	indirectNames := [4]string{"(BC)", "(DE)", "(HL+)", "(HL-)"}
	for i := 0; i < 4; i++ {
		define(uint8(0x02+i*16), Instruction{
			Mnemonic: fmt.Sprintf("LD %s, A", indirectNames[i]),
			Op:       OpLoad,
			Dst:      indirect[i],
			Src:      RegA,
			Cycles:   2,
		})
		define(uint8(0x0A+i*16), Instruction{
			Mnemonic: fmt.Sprintf("LD A, %s", indirectNames[i]),
			Op:       OpLoad,
			Dst:      RegA,
			Src:      indirect[i],
			Cycles:   2,
		})
	}

	define(0x08, Instruction{Mnemonic: "LD (a16), SP", Op: OpStoreSP, Cycles: 5})
	define(0xE0, Instruction{Mnemonic: "LDH (a8), A", Op: OpLoad, Dst: MemHighImmediate, Src: RegA, Cycles: 3})
	define(0xF0, Instruction{Mnemonic: "LDH A, (a8)", Op: OpLoad, Dst: RegA, Src: MemHighImmediate, Cycles: 3})
	define(0xE2, Instruction{Mnemonic: "LD (C), A", Op: OpLoad, Dst: MemHighC, Src: RegA, Cycles: 2})
	define(0xF2, Instruction{Mnemonic: "LD A, (C)", Op: OpLoad, Dst: RegA, Src: MemHighC, Cycles: 2})
	define(0xEA, Instruction{Mnemonic: "LD (a16), A", Op: OpLoad, Dst: MemImmediate, Src: RegA, Cycles: 4})
	define(0xFA, Instruction{Mnemonic: "LD A, (a16)", Op: OpLoad, Dst: RegA, Src: MemImmediate, Cycles: 4})
	define(0xE8, Instruction{Mnemonic: "ADD SP, e8", Op: OpAddSP, Dst: RegSP, Src: ImmediateSigned, Cycles: 4})
	define(0xF8, Instruction{Mnemonic: "LD HL, SP+e8", Op: OpLoadHLSP, Dst: RegHL, Src: ImmediateSigned, Cycles: 3})
	define(0xF9, Instruction{Mnemonic: "LD SP, HL", Op: OpLoadSPHL, Dst: RegSP, Src: RegHL, Cycles: 2})

	// Jumps, calls and returns. Cycles is the not-taken cost,
	// BranchCycles the taken cost.
	conds := [4]Condition{CondNZ, CondZ, CondNC, CondC}
	condNames := [4]string{"NZ", "Z", "NC", "C"}
	define(0x18, Instruction{Mnemonic: "JR e8", Op: OpJumpRelative, Src: ImmediateSigned, Cycles: 3})
	define(0xC3, Instruction{Mnemonic: "JP a16", Op: OpJump, Src: ImmediateWord, Cycles: 4})
	define(0xE9, Instruction{Mnemonic: "JP HL", Op: OpJumpHL, Cycles: 1})
	define(0xCD, Instruction{Mnemonic: "CALL a16", Op: OpCall, Src: ImmediateWord, Cycles: 6})
	define(0xC9, Instruction{Mnemonic: "RET", Op: OpReturn, Cycles: 4})
	define(0xD9, Instruction{Mnemonic: "RETI", Op: OpReturnInterrupt, Cycles: 4})
	for i := 0; i < 4; i++ {
		define(uint8(0x20+i*8), Instruction{
			Mnemonic:     fmt.Sprintf("JR %s, e8", condNames[i]),
			Op:           OpJumpRelative,
			Src:          ImmediateSigned,
			Cond:         conds[i],
			Cycles:       2,
			BranchCycles: 3,
		})
		define(uint8(0xC2+i*8), Instruction{
			Mnemonic:     fmt.Sprintf("JP %s, a16", condNames[i]),
			Op:           OpJump,
			Src:          ImmediateWord,
			Cond:         conds[i],
			Cycles:       3,
			BranchCycles: 4,
		})
		define(uint8(0xC4+i*8), Instruction{
			Mnemonic:     fmt.Sprintf("CALL %s, a16", condNames[i]),
			Op:           OpCall,
			Src:          ImmediateWord,
			Cond:         conds[i],
			Cycles:       3,
			BranchCycles: 6,
		})
		define(uint8(0xC0+i*8), Instruction{
			Mnemonic:     fmt.Sprintf("RET %s", condNames[i]),
			Op:           OpReturn,
			Cond:         conds[i],
			Cycles:       2,
			BranchCycles: 5,
		})
	}
	for i := 0; i < 8; i++ {
		vector := uint8(i * 8)
		define(uint8(0xC7+i*8), Instruction{
			Mnemonic: fmt.Sprintf("RST %02XH", vector),
			Op:       OpRestart,
			Bit:      vector,
			Cycles:   4,
		})
	}

	// Everything else.
	define(0x00, Instruction{Mnemonic: "NOP", Op: OpNop, Cycles: 1})
	define(0x10, Instruction{Mnemonic: "STOP", Op: OpStop, Cycles: 1})
	define(0x76, Instruction{Mnemonic: "HALT", Op: OpHalt, Cycles: 1})
	define(0xF3, Instruction{Mnemonic: "DI", Op: OpDisableInterrupts, Cycles: 1})
	define(0xFB, Instruction{Mnemonic: "EI", Op: OpEnableInterrupts, Cycles: 1})
	define(0xCB, Instruction{Mnemonic: "PREFIX CB", Op: OpPrefix, Cycles: 1})
	define(0x07, Instruction{Mnemonic: "RLCA", Op: OpRotateLeftCircularA, Cycles: 1})
	define(0x0F, Instruction{Mnemonic: "RRCA", Op: OpRotateRightCircularA, Cycles: 1})
	define(0x17, Instruction{Mnemonic: "RLA", Op: OpRotateLeftA, Cycles: 1})
	define(0x1F, Instruction{Mnemonic: "RRA", Op: OpRotateRightA, Cycles: 1})
	define(0x27, Instruction{Mnemonic: "DAA", Op: OpDAA, Cycles: 1})
	define(0x2F, Instruction{Mnemonic: "CPL", Op: OpComplement, Cycles: 1})
	define(0x37, Instruction{Mnemonic: "SCF", Op: OpSetCarryFlag, Cycles: 1})
	define(0x3F, Instruction{Mnemonic: "CCF", Op: OpFlipCarryFlag, Cycles: 1})

	for _, opcode := range illegalOpcodes {
		define(opcode, Instruction{
			Mnemonic: fmt.Sprintf("ILLEGAL %02X", opcode),
			Op:       OpIllegal,
			Cycles:   1,
		})
	}

	// CB-prefixed table. Rows 0-7 are the rotate and shift
	// group, then BIT, RES and SET with the bit number encoded
	// in bits 3-5.
	cbOps := [8]Operation{
		OpRotateLeftCircular, OpRotateRightCircular,
		OpRotateLeft, OpRotateRight,
		OpShiftLeftArithmetic, OpShiftRightArithmetic,
		OpSwap, OpShiftRightLogical,
	}
	cbNames := [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}
	for row := 0; row < 8; row++ {
		for src := 0; src < 8; src++ {
			cycles := uint8(2)
			if r8Operands[src] == MemHL {
				cycles = 4
			}
			defineCB(uint8(row<<3|src), Instruction{
				Mnemonic: fmt.Sprintf("%s %s", cbNames[row], r8Names[src]),
				Op:       cbOps[row],
				Dst:      r8Operands[src],
				Cycles:   cycles,
			})
		}
	}
	bitOps := [3]Operation{OpBit, OpReset, OpSet}
	bitNames := [3]string{"BIT", "RES", "SET"}
	for group := 0; group < 3; group++ {
		for bit := 0; bit < 8; bit++ {
			for src := 0; src < 8; src++ {
				cycles := uint8(2)
				if r8Operands[src] == MemHL {
					// BIT only reads (HL), so it is a cycle
					// cheaper than RES and SET.
					if bitOps[group] == OpBit {
						cycles = 3
					} else {
						cycles = 4
					}
				}
				defineCB(uint8(0x40+group*0x40+bit<<3+src), Instruction{
					Mnemonic: fmt.Sprintf("%s %d, %s", bitNames[group], bit, r8Names[src]),
					Op:       bitOps[group],
					Dst:      r8Operands[src],
					Bit:      uint8(bit),
					Cycles:   cycles,
				})
			}
		}
	}
}
