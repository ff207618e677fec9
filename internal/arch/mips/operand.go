package mips

// Operand is a bit set of the operand fields an instruction encodes.
type Operand uint32

// Operand kinds.
const (
	OperandRs Operand = 1 << iota
	OperandRt
	OperandRd
	OperandSa
	OperandFs
	OperandFt
	OperandFd
	OperandCop0Rd
	OperandCop1Cs
	OperandCop2Cs
	OperandImmediate
	OperandImmediateBase
	OperandBranchTarget
	OperandJumpTarget
	OperandCode
	OperandTrapCode
	OperandCacheOp
	OperandHint
	OperandVd
	OperandVs
	OperandVt
	OperandVectorElement
	OperandVectorIndex
	OperandVectorOffset
)

// operandFields maps every operand kind to the instruction bits it occupies.
var operandFields = [...]struct {
	operand Operand
	mask    uint32
}{
	{OperandRs, 0x03E00000},
	{OperandRt, 0x001F0000},
	{OperandRd, 0x0000F800},
	{OperandSa, 0x000007C0},
	{OperandFs, 0x0000F800},
	{OperandFt, 0x001F0000},
	{OperandFd, 0x000007C0},
	{OperandCop0Rd, 0x0000F800},
	{OperandCop1Cs, 0x0000F800},
	{OperandCop2Cs, 0x0000F800},
	{OperandImmediate, 0x0000FFFF},
	{OperandImmediateBase, 0x03E0FFFF},
	{OperandBranchTarget, 0x0000FFFF},
	{OperandJumpTarget, 0x03FFFFFF},
	{OperandCode, 0x03FFFFC0},
	{OperandTrapCode, 0x0000FFC0},
	{OperandCacheOp, 0x001F0000},
	{OperandHint, 0x001F0000},
	{OperandVd, 0x000007C0},
	{OperandVs, 0x0000F800},
	{OperandVt, 0x001F0000},
	{OperandVectorElement, 0x01E00000},
	{OperandVectorIndex, 0x00000780},
	{OperandVectorOffset, 0x03E0007F},
}

// mask returns the union of the instruction bits of all operands in the set.
func (o Operand) mask() uint32 {
	var m uint32
	for _, field := range operandFields {
		if o&field.operand != 0 {
			m |= field.mask
		}
	}
	return m
}

// flag is a bit set of semantic instruction properties.
type flag uint32

const (
	flagModifiesRd flag = 1 << iota
	flagModifiesRt
	flagReadsRs
	flagReadsRt
	flagReadsRd
	flagReadsFs
	flagReadsFt
	flagReadsFd
	flagLoad
	flagStore
	flagLink
	flagTrap
	flagUnconditional
)

// descriptor describes one entry of a decoding table.
type descriptor struct {
	id       ID
	operands Operand
	flags    flag
}

// Commonly shared operand and flag combinations.
const (
	opsRdRsRt   = OperandRd | OperandRs | OperandRt
	opsRdRtSa   = OperandRd | OperandRt | OperandSa
	opsRdRtRs   = OperandRd | OperandRt | OperandRs
	opsRsRt     = OperandRs | OperandRt
	opsRtRsImm  = OperandRt | OperandRs | OperandImmediate
	opsRtBase   = OperandRt | OperandImmediateBase
	opsFtBase   = OperandFt | OperandImmediateBase
	opsRsBranch = OperandRs | OperandBranchTarget
	opsFdFsFt   = OperandFd | OperandFs | OperandFt
	opsFdFs     = OperandFd | OperandFs

	flagsArith    = flagModifiesRd | flagReadsRs | flagReadsRt
	flagsShift    = flagModifiesRd | flagReadsRt
	flagsShiftV   = flagModifiesRd | flagReadsRt | flagReadsRs
	flagsMulDiv   = flagReadsRs | flagReadsRt
	flagsImm      = flagModifiesRt | flagReadsRs
	flagsLoad     = flagModifiesRt | flagReadsRs | flagLoad
	flagsStore    = flagReadsRt | flagReadsRs | flagStore
	flagsTrap     = flagReadsRs | flagReadsRt | flagTrap
	flagsTrapImm  = flagReadsRs | flagTrap
	flagsBranchRs = flagReadsRs
	flagsFloatBin = flagReadsFs | flagReadsFt
	flagsFloatUn  = flagReadsFs
)
