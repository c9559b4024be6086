package cpu

// Operation identifies what an instruction does, independent of
// where its operands come from.
type Operation uint8

const (
	OpNop Operation = iota
	OpLoad
	OpLoadWord
	OpLoadHLSP  // LD HL,SP+e
	OpLoadSPHL  // LD SP,HL
	OpStoreSP   // LD (a16),SP
	OpPush
	OpPop
	OpAdd
	OpAdc
	OpSub
	OpSbc
	OpAnd
	OpXor
	OpOr
	OpCompare
	OpIncrement
	OpDecrement
	OpIncrementWord
	OpDecrementWord
	OpAddHL
	OpAddSP
	OpDAA
	OpComplement
	OpSetCarryFlag
	OpFlipCarryFlag
	OpRotateLeftCircularA
	OpRotateLeftA
	OpRotateRightCircularA
	OpRotateRightA
	OpJump
	OpJumpHL
	OpJumpRelative
	OpCall
	OpReturn
	OpReturnInterrupt
	OpRestart
	OpHalt
	OpStop
	OpDisableInterrupts
	OpEnableInterrupts
	OpPrefix
	OpIllegal

	// CB-prefixed operations.
	OpRotateLeftCircular
	OpRotateRightCircular
	OpRotateLeft
	OpRotateRight
	OpShiftLeftArithmetic
	OpShiftRightArithmetic
	OpShiftRightLogical
	OpSwap
	OpBit
	OpReset
	OpSet
)

// Operand names a source or destination for an instruction.
type Operand uint8

const (
	OperandNone Operand = iota
	RegA
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP
	Immediate          // d8
	ImmediateSigned    // e8
	ImmediateWord      // d16 / a16
	MemBC              // (BC)
	MemDE              // (DE)
	MemHL              // (HL)
	MemHLInc           // (HL+)
	MemHLDec           // (HL-)
	MemImmediate       // (a16)
	MemHighC           // (FF00+C)
	MemHighImmediate   // (FF00+a8)
)

// Condition gates conditional jumps, calls and returns.
type Condition uint8

const (
	CondNone Condition = iota
	CondZ
	CondNZ
	CondC
	CondNC
)

// Instruction describes one opcode: its mnemonic, the operation
// it performs, its operands and its cost in machine cycles.
// BranchCycles, when non-zero, is the cost when a conditional
// branch is taken.
type Instruction struct {
	Mnemonic     string
	Op           Operation
	Dst          Operand
	Src          Operand
	Cond         Condition
	Bit          uint8 // bit number for CB ops, vector for RST
	Cycles       uint8
	BranchCycles uint8
}
