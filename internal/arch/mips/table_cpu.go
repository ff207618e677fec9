package mips

// Identification masks of the instruction groups. The bits of a mask select
// the table entry, all other bits belong to operands or must be zero.
const (
	maskNormal  = 0xFC000000
	maskSpecial = 0xFC00003F
	maskRegimm  = 0xFC1F0000
	maskCopMove = 0xFFE00000
	maskCopBC   = 0xFFFF0000
	maskCopCO   = 0xFE00003F
	maskCopFmt  = 0xFFE0003F
	maskVecLS   = 0xFC00F800
	maskWord    = 0xFFFFFFFF
)

// Primary opcode values that dispatch into sub tables.
const (
	opSpecial = 0x00
	opRegimm  = 0x01
	opCop0    = 0x10
	opCop1    = 0x11
	opCop2    = 0x12
	opLwc2    = 0x32
	opSwc2    = 0x3A
)

// Coprocessor rs field values.
const (
	copRsBC = 0x08
	fmtS    = 0x10
	fmtD    = 0x11
	fmtW    = 0x14
	fmtL    = 0x15
)

var cpuNormal = [64]descriptor{
	0x02: {J, OperandJumpTarget, flagUnconditional},
	0x03: {Jal, OperandJumpTarget, flagLink},
	0x04: {Beq, opsRsRt | OperandBranchTarget, flagsBranchRs | flagReadsRt},
	0x05: {Bne, opsRsRt | OperandBranchTarget, flagsBranchRs | flagReadsRt},
	0x06: {Blez, opsRsBranch, flagsBranchRs},
	0x07: {Bgtz, opsRsBranch, flagsBranchRs},
	0x08: {Addi, opsRtRsImm, flagsImm},
	0x09: {Addiu, opsRtRsImm, flagsImm},
	0x0A: {Slti, opsRtRsImm, flagsImm},
	0x0B: {Sltiu, opsRtRsImm, flagsImm},
	0x0C: {Andi, opsRtRsImm, flagsImm},
	0x0D: {Ori, opsRtRsImm, flagsImm},
	0x0E: {Xori, opsRtRsImm, flagsImm},
	0x0F: {Lui, OperandRt | OperandImmediate, flagModifiesRt},
	0x14: {Beql, opsRsRt | OperandBranchTarget, flagsBranchRs | flagReadsRt},
	0x15: {Bnel, opsRsRt | OperandBranchTarget, flagsBranchRs | flagReadsRt},
	0x16: {Blezl, opsRsBranch, flagsBranchRs},
	0x17: {Bgtzl, opsRsBranch, flagsBranchRs},
	0x18: {Daddi, opsRtRsImm, flagsImm},
	0x19: {Daddiu, opsRtRsImm, flagsImm},
	0x1A: {Ldl, opsRtBase, flagsLoad},
	0x1B: {Ldr, opsRtBase, flagsLoad},
	0x20: {Lb, opsRtBase, flagsLoad},
	0x21: {Lh, opsRtBase, flagsLoad},
	0x22: {Lwl, opsRtBase, flagsLoad},
	0x23: {Lw, opsRtBase, flagsLoad},
	0x24: {Lbu, opsRtBase, flagsLoad},
	0x25: {Lhu, opsRtBase, flagsLoad},
	0x26: {Lwr, opsRtBase, flagsLoad},
	0x27: {Lwu, opsRtBase, flagsLoad},
	0x28: {Sb, opsRtBase, flagsStore},
	0x29: {Sh, opsRtBase, flagsStore},
	0x2A: {Swl, opsRtBase, flagsStore},
	0x2B: {Sw, opsRtBase, flagsStore},
	0x2C: {Sdl, opsRtBase, flagsStore},
	0x2D: {Sdr, opsRtBase, flagsStore},
	0x2E: {Swr, opsRtBase, flagsStore},
	0x2F: {Cache, OperandCacheOp | OperandImmediateBase, flagReadsRs},
	0x30: {Ll, opsRtBase, flagsLoad},
	0x31: {Lwc1, opsFtBase, flagReadsRs | flagLoad},
	0x32: {Lwc2, opsRtBase, flagReadsRs | flagLoad},
	0x33: {Pref, OperandHint | OperandImmediateBase, flagReadsRs},
	0x34: {Lld, opsRtBase, flagsLoad},
	0x35: {Ldc1, opsFtBase, flagReadsRs | flagLoad},
	0x36: {Ldc2, opsRtBase, flagReadsRs | flagLoad},
	0x37: {Ld, opsRtBase, flagsLoad},
	0x38: {Sc, opsRtBase, flagsStore | flagModifiesRt},
	0x39: {Swc1, opsFtBase, flagReadsFt | flagReadsRs | flagStore},
	0x3A: {Swc2, opsRtBase, flagReadsRs | flagStore},
	0x3C: {Scd, opsRtBase, flagsStore | flagModifiesRt},
	0x3D: {Sdc1, opsFtBase, flagReadsFt | flagReadsRs | flagStore},
	0x3E: {Sdc2, opsRtBase, flagReadsRs | flagStore},
	0x3F: {Sd, opsRtBase, flagsStore},
}

var cpuSpecial = [64]descriptor{
	0x00: {Sll, opsRdRtSa, flagsShift},
	0x02: {Srl, opsRdRtSa, flagsShift},
	0x03: {Sra, opsRdRtSa, flagsShift},
	0x04: {Sllv, opsRdRtRs, flagsShiftV},
	0x06: {Srlv, opsRdRtRs, flagsShiftV},
	0x07: {Srav, opsRdRtRs, flagsShiftV},
	0x08: {Jr, OperandRs, flagReadsRs | flagUnconditional},
	0x09: {Jalr, OperandRd | OperandRs, flagModifiesRd | flagReadsRs | flagLink},
	0x0C: {Syscall, OperandCode, 0},
	0x0D: {Break, OperandCode, 0},
	0x0F: {Sync, 0, 0},
	0x10: {Mfhi, OperandRd, flagModifiesRd},
	0x11: {Mthi, OperandRs, flagReadsRs},
	0x12: {Mflo, OperandRd, flagModifiesRd},
	0x13: {Mtlo, OperandRs, flagReadsRs},
	0x14: {Dsllv, opsRdRtRs, flagsShiftV},
	0x16: {Dsrlv, opsRdRtRs, flagsShiftV},
	0x17: {Dsrav, opsRdRtRs, flagsShiftV},
	0x18: {Mult, opsRsRt, flagsMulDiv},
	0x19: {Multu, opsRsRt, flagsMulDiv},
	0x1A: {Div, opsRsRt, flagsMulDiv},
	0x1B: {Divu, opsRsRt, flagsMulDiv},
	0x1C: {Dmult, opsRsRt, flagsMulDiv},
	0x1D: {Dmultu, opsRsRt, flagsMulDiv},
	0x1E: {Ddiv, opsRsRt, flagsMulDiv},
	0x1F: {Ddivu, opsRsRt, flagsMulDiv},
	0x20: {Add, opsRdRsRt, flagsArith},
	0x21: {Addu, opsRdRsRt, flagsArith},
	0x22: {Sub, opsRdRsRt, flagsArith},
	0x23: {Subu, opsRdRsRt, flagsArith},
	0x24: {And, opsRdRsRt, flagsArith},
	0x25: {Or, opsRdRsRt, flagsArith},
	0x26: {Xor, opsRdRsRt, flagsArith},
	0x27: {Nor, opsRdRsRt, flagsArith},
	0x2A: {Slt, opsRdRsRt, flagsArith},
	0x2B: {Sltu, opsRdRsRt, flagsArith},
	0x2C: {Dadd, opsRdRsRt, flagsArith},
	0x2D: {Daddu, opsRdRsRt, flagsArith},
	0x2E: {Dsub, opsRdRsRt, flagsArith},
	0x2F: {Dsubu, opsRdRsRt, flagsArith},
	0x30: {Tge, opsRsRt | OperandTrapCode, flagsTrap},
	0x31: {Tgeu, opsRsRt | OperandTrapCode, flagsTrap},
	0x32: {Tlt, opsRsRt | OperandTrapCode, flagsTrap},
	0x33: {Tltu, opsRsRt | OperandTrapCode, flagsTrap},
	0x34: {Teq, opsRsRt | OperandTrapCode, flagsTrap},
	0x36: {Tne, opsRsRt | OperandTrapCode, flagsTrap},
	0x38: {Dsll, opsRdRtSa, flagsShift},
	0x3A: {Dsrl, opsRdRtSa, flagsShift},
	0x3B: {Dsra, opsRdRtSa, flagsShift},
	0x3C: {Dsll32, opsRdRtSa, flagsShift},
	0x3E: {Dsrl32, opsRdRtSa, flagsShift},
	0x3F: {Dsra32, opsRdRtSa, flagsShift},
}

var cpuRegimm = [32]descriptor{
	0x00: {Bltz, opsRsBranch, flagsBranchRs},
	0x01: {Bgez, opsRsBranch, flagsBranchRs},
	0x02: {Bltzl, opsRsBranch, flagsBranchRs},
	0x03: {Bgezl, opsRsBranch, flagsBranchRs},
	0x08: {Tgei, OperandRs | OperandImmediate, flagsTrapImm},
	0x09: {Tgeiu, OperandRs | OperandImmediate, flagsTrapImm},
	0x0A: {Tlti, OperandRs | OperandImmediate, flagsTrapImm},
	0x0B: {Tltiu, OperandRs | OperandImmediate, flagsTrapImm},
	0x0C: {Teqi, OperandRs | OperandImmediate, flagsTrapImm},
	0x0E: {Tnei, OperandRs | OperandImmediate, flagsTrapImm},
	0x10: {Bltzal, opsRsBranch, flagsBranchRs | flagLink},
	0x11: {Bgezal, opsRsBranch, flagsBranchRs | flagLink},
	0x12: {Bltzall, opsRsBranch, flagsBranchRs | flagLink},
	0x13: {Bgezall, opsRsBranch, flagsBranchRs | flagLink},
}

var cpuCop0Move = [32]descriptor{
	0x00: {Mfc0, OperandRt | OperandCop0Rd, flagModifiesRt},
	0x01: {Dmfc0, OperandRt | OperandCop0Rd, flagModifiesRt},
	0x02: {Cfc0, OperandRt | OperandCop0Rd, flagModifiesRt},
	0x04: {Mtc0, OperandRt | OperandCop0Rd, flagReadsRt},
	0x05: {Dmtc0, OperandRt | OperandCop0Rd, flagReadsRt},
	0x06: {Ctc0, OperandRt | OperandCop0Rd, flagReadsRt},
}

var cpuCop0BC = [32]descriptor{
	0x00: {id: Bc0f, operands: OperandBranchTarget},
	0x01: {id: Bc0t, operands: OperandBranchTarget},
	0x02: {id: Bc0fl, operands: OperandBranchTarget},
	0x03: {id: Bc0tl, operands: OperandBranchTarget},
}

var cpuCop0CO = [64]descriptor{
	0x01: {Tlbr, 0, 0},
	0x02: {Tlbwi, 0, 0},
	0x06: {Tlbwr, 0, 0},
	0x08: {Tlbp, 0, 0},
	0x18: {id: Eret},
}

var cpuCop1Move = [32]descriptor{
	0x00: {Mfc1, OperandRt | OperandFs, flagModifiesRt | flagReadsFs},
	0x01: {Dmfc1, OperandRt | OperandFs, flagModifiesRt | flagReadsFs},
	0x02: {Cfc1, OperandRt | OperandCop1Cs, flagModifiesRt},
	0x04: {Mtc1, OperandRt | OperandFs, flagReadsRt},
	0x05: {Dmtc1, OperandRt | OperandFs, flagReadsRt},
	0x06: {Ctc1, OperandRt | OperandCop1Cs, flagReadsRt},
}

var cpuCop1BC = [32]descriptor{
	0x00: {id: Bc1f, operands: OperandBranchTarget},
	0x01: {id: Bc1t, operands: OperandBranchTarget},
	0x02: {id: Bc1fl, operands: OperandBranchTarget},
	0x03: {id: Bc1tl, operands: OperandBranchTarget},
}

var cpuCop1S = [64]descriptor{
	0x00: {AddS, opsFdFsFt, flagsFloatBin},
	0x01: {SubS, opsFdFsFt, flagsFloatBin},
	0x02: {MulS, opsFdFsFt, flagsFloatBin},
	0x03: {DivS, opsFdFsFt, flagsFloatBin},
	0x04: {SqrtS, opsFdFs, flagsFloatUn},
	0x05: {AbsS, opsFdFs, flagsFloatUn},
	0x06: {MovS, opsFdFs, flagsFloatUn},
	0x07: {NegS, opsFdFs, flagsFloatUn},
	0x08: {RoundLS, opsFdFs, flagsFloatUn},
	0x09: {TruncLS, opsFdFs, flagsFloatUn},
	0x0A: {CeilLS, opsFdFs, flagsFloatUn},
	0x0B: {FloorLS, opsFdFs, flagsFloatUn},
	0x0C: {RoundWS, opsFdFs, flagsFloatUn},
	0x0D: {TruncWS, opsFdFs, flagsFloatUn},
	0x0E: {CeilWS, opsFdFs, flagsFloatUn},
	0x0F: {FloorWS, opsFdFs, flagsFloatUn},
	0x21: {CvtDS, opsFdFs, flagsFloatUn},
	0x24: {CvtWS, opsFdFs, flagsFloatUn},
	0x25: {CvtLS, opsFdFs, flagsFloatUn},
}

var cpuCop1D = [64]descriptor{
	0x00: {AddD, opsFdFsFt, flagsFloatBin},
	0x01: {SubD, opsFdFsFt, flagsFloatBin},
	0x02: {MulD, opsFdFsFt, flagsFloatBin},
	0x03: {DivD, opsFdFsFt, flagsFloatBin},
	0x04: {SqrtD, opsFdFs, flagsFloatUn},
	0x05: {AbsD, opsFdFs, flagsFloatUn},
	0x06: {MovD, opsFdFs, flagsFloatUn},
	0x07: {NegD, opsFdFs, flagsFloatUn},
	0x08: {RoundLD, opsFdFs, flagsFloatUn},
	0x09: {TruncLD, opsFdFs, flagsFloatUn},
	0x0A: {CeilLD, opsFdFs, flagsFloatUn},
	0x0B: {FloorLD, opsFdFs, flagsFloatUn},
	0x0C: {RoundWD, opsFdFs, flagsFloatUn},
	0x0D: {TruncWD, opsFdFs, flagsFloatUn},
	0x0E: {CeilWD, opsFdFs, flagsFloatUn},
	0x0F: {FloorWD, opsFdFs, flagsFloatUn},
	0x20: {CvtSD, opsFdFs, flagsFloatUn},
	0x24: {CvtWD, opsFdFs, flagsFloatUn},
	0x25: {CvtLD, opsFdFs, flagsFloatUn},
}

var cpuCop1W = [64]descriptor{
	0x20: {CvtSW, opsFdFs, flagsFloatUn},
	0x21: {CvtDW, opsFdFs, flagsFloatUn},
}

var cpuCop1L = [64]descriptor{
	0x20: {CvtSL, opsFdFs, flagsFloatUn},
	0x21: {CvtDL, opsFdFs, flagsFloatUn},
}

// firstCompareFunction is the function field of c.f, the 16 compare
// conditions occupy the function values up to 0x3F.
const firstCompareFunction = 0x30

func init() {
	for fn := firstCompareFunction; fn < len(cpuCop1S); fn++ {
		cpuCop1S[fn] = descriptor{CCondS, OperandFs | OperandFt, flagReadsFs | flagReadsFt}
		cpuCop1D[fn] = descriptor{CCondD, OperandFs | OperandFt, flagReadsFs | flagReadsFt}
	}
}

// decodeCPU looks up the table entry of a main processor instruction word.
func decodeCPU(word uint32) (descriptor, uint32) {
	op := word >> 26
	switch op {
	case opSpecial:
		return cpuSpecial[word&0x3F], maskSpecial
	case opRegimm:
		return cpuRegimm[(word>>16)&0x1F], maskRegimm
	case opCop0:
		return decodeCPUCop0(word)
	case opCop1:
		return decodeCPUCop1(word)
	}
	return cpuNormal[op], maskNormal
}

func decodeCPUCop0(word uint32) (descriptor, uint32) {
	if word&(1<<25) != 0 {
		return cpuCop0CO[word&0x3F], maskCopCO
	}
	rs := (word >> 21) & 0x1F
	if rs == copRsBC {
		return cpuCop0BC[(word>>16)&0x1F], maskCopBC
	}
	return cpuCop0Move[rs], maskCopMove
}

func decodeCPUCop1(word uint32) (descriptor, uint32) {
	rs := (word >> 21) & 0x1F
	fn := word & 0x3F
	switch rs {
	case copRsBC:
		return cpuCop1BC[(word>>16)&0x1F], maskCopBC
	case fmtS:
		return cpuCop1S[fn], maskCopFmt
	case fmtD:
		return cpuCop1D[fn], maskCopFmt
	case fmtW:
		return cpuCop1W[fn], maskCopFmt
	case fmtL:
		return cpuCop1L[fn], maskCopFmt
	}
	return cpuCop1Move[rs], maskCopMove
}
