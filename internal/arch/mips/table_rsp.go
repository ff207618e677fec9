package mips

// The RSP tables contain lwc1, swc1, cache, cfc0 and ctc0 although the
// processor does not implement them. Decoding them separately from invalid
// words allows callers to reject them explicitly.

var rspNormal = [64]descriptor{
	0x02: cpuNormal[0x02],
	0x03: cpuNormal[0x03],
	0x04: cpuNormal[0x04],
	0x05: cpuNormal[0x05],
	0x06: cpuNormal[0x06],
	0x07: cpuNormal[0x07],
	0x08: cpuNormal[0x08],
	0x09: cpuNormal[0x09],
	0x0A: cpuNormal[0x0A],
	0x0B: cpuNormal[0x0B],
	0x0C: cpuNormal[0x0C],
	0x0D: cpuNormal[0x0D],
	0x0E: cpuNormal[0x0E],
	0x0F: cpuNormal[0x0F],
	0x20: cpuNormal[0x20],
	0x21: cpuNormal[0x21],
	0x23: cpuNormal[0x23],
	0x24: cpuNormal[0x24],
	0x25: cpuNormal[0x25],
	0x27: cpuNormal[0x27],
	0x28: cpuNormal[0x28],
	0x29: cpuNormal[0x29],
	0x2B: cpuNormal[0x2B],
	0x2F: cpuNormal[0x2F],
	0x31: cpuNormal[0x31],
	0x39: cpuNormal[0x39],
}

var rspSpecial = [64]descriptor{
	0x00: cpuSpecial[0x00],
	0x02: cpuSpecial[0x02],
	0x03: cpuSpecial[0x03],
	0x04: cpuSpecial[0x04],
	0x06: cpuSpecial[0x06],
	0x07: cpuSpecial[0x07],
	0x08: cpuSpecial[0x08],
	0x09: cpuSpecial[0x09],
	0x0D: cpuSpecial[0x0D],
	0x20: cpuSpecial[0x20],
	0x21: cpuSpecial[0x21],
	0x22: cpuSpecial[0x22],
	0x23: cpuSpecial[0x23],
	0x24: cpuSpecial[0x24],
	0x25: cpuSpecial[0x25],
	0x26: cpuSpecial[0x26],
	0x27: cpuSpecial[0x27],
	0x2A: cpuSpecial[0x2A],
	0x2B: cpuSpecial[0x2B],
}

var rspRegimm = [32]descriptor{
	0x00: cpuRegimm[0x00],
	0x01: cpuRegimm[0x01],
	0x10: cpuRegimm[0x10],
	0x11: cpuRegimm[0x11],
}

var rspCop0Move = [32]descriptor{
	0x00: cpuCop0Move[0x00],
	0x02: cpuCop0Move[0x02],
	0x04: cpuCop0Move[0x04],
	0x06: cpuCop0Move[0x06],
}

var rspCop2Move = [32]descriptor{
	0x00: {Mfc2, OperandRt | OperandVs | OperandVectorIndex, flagModifiesRt},
	0x02: {Cfc2, OperandRt | OperandCop2Cs, flagModifiesRt},
	0x04: {Mtc2, OperandRt | OperandVs | OperandVectorIndex, flagReadsRt},
	0x06: {Ctc2, OperandRt | OperandCop2Cs, flagReadsRt},
}

const opsVector = OperandVd | OperandVs | OperandVt | OperandVectorElement

var rspVector = [64]descriptor{
	0x00: {id: Vmulf, operands: opsVector},
	0x01: {id: Vmulu, operands: opsVector},
	0x02: {id: Vrndp, operands: opsVector},
	0x03: {id: Vmulq, operands: opsVector},
	0x04: {id: Vmudl, operands: opsVector},
	0x05: {id: Vmudm, operands: opsVector},
	0x06: {id: Vmudn, operands: opsVector},
	0x07: {id: Vmudh, operands: opsVector},
	0x08: {id: Vmacf, operands: opsVector},
	0x09: {id: Vmacu, operands: opsVector},
	0x0A: {id: Vrndn, operands: opsVector},
	0x0B: {id: Vmacq, operands: opsVector},
	0x0C: {id: Vmadl, operands: opsVector},
	0x0D: {id: Vmadm, operands: opsVector},
	0x0E: {id: Vmadn, operands: opsVector},
	0x0F: {id: Vmadh, operands: opsVector},
	0x10: {id: Vadd, operands: opsVector},
	0x11: {id: Vsub, operands: opsVector},
	0x13: {id: Vabs, operands: opsVector},
	0x14: {id: Vaddc, operands: opsVector},
	0x15: {id: Vsubc, operands: opsVector},
	0x1D: {id: Vsar, operands: opsVector},
	0x20: {id: Vlt, operands: opsVector},
	0x21: {id: Veq, operands: opsVector},
	0x22: {id: Vne, operands: opsVector},
	0x23: {id: Vge, operands: opsVector},
	0x24: {id: Vcl, operands: opsVector},
	0x25: {id: Vch, operands: opsVector},
	0x26: {id: Vcr, operands: opsVector},
	0x27: {id: Vmrg, operands: opsVector},
	0x28: {id: Vand, operands: opsVector},
	0x29: {id: Vnand, operands: opsVector},
	0x2A: {id: Vor, operands: opsVector},
	0x2B: {id: Vnor, operands: opsVector},
	0x2C: {id: Vxor, operands: opsVector},
	0x2D: {id: Vnxor, operands: opsVector},
	0x30: {id: Vrcp, operands: opsVector},
	0x31: {id: Vrcpl, operands: opsVector},
	0x32: {id: Vrcph, operands: opsVector},
	0x33: {id: Vmov, operands: opsVector},
	0x34: {id: Vrsq, operands: opsVector},
	0x35: {id: Vrsql, operands: opsVector},
	0x36: {id: Vrsqh, operands: opsVector},
	0x37: {id: Vnop, operands: opsVector},
}

const opsVectorMemory = OperandVt | OperandVectorIndex | OperandVectorOffset

var rspLwc2 = [32]descriptor{
	0x00: {Lbv, opsVectorMemory, flagReadsRs | flagLoad},
	0x01: {Lsv, opsVectorMemory, flagReadsRs | flagLoad},
	0x02: {Llv, opsVectorMemory, flagReadsRs | flagLoad},
	0x03: {Ldv, opsVectorMemory, flagReadsRs | flagLoad},
	0x04: {Lqv, opsVectorMemory, flagReadsRs | flagLoad},
	0x05: {Lrv, opsVectorMemory, flagReadsRs | flagLoad},
	0x06: {Lpv, opsVectorMemory, flagReadsRs | flagLoad},
	0x07: {Luv, opsVectorMemory, flagReadsRs | flagLoad},
	0x08: {Lhv, opsVectorMemory, flagReadsRs | flagLoad},
	0x09: {Lfv, opsVectorMemory, flagReadsRs | flagLoad},
	0x0A: {Lwv, opsVectorMemory, flagReadsRs | flagLoad},
	0x0B: {Ltv, opsVectorMemory, flagReadsRs | flagLoad},
}

var rspSwc2 = [32]descriptor{
	0x00: {Sbv, opsVectorMemory, flagReadsRs | flagStore},
	0x01: {Ssv, opsVectorMemory, flagReadsRs | flagStore},
	0x02: {Slv, opsVectorMemory, flagReadsRs | flagStore},
	0x03: {Sdv, opsVectorMemory, flagReadsRs | flagStore},
	0x04: {Sqv, opsVectorMemory, flagReadsRs | flagStore},
	0x05: {Srv, opsVectorMemory, flagReadsRs | flagStore},
	0x06: {Spv, opsVectorMemory, flagReadsRs | flagStore},
	0x07: {Suv, opsVectorMemory, flagReadsRs | flagStore},
	0x08: {Shv, opsVectorMemory, flagReadsRs | flagStore},
	0x09: {Sfv, opsVectorMemory, flagReadsRs | flagStore},
	0x0A: {Swv, opsVectorMemory, flagReadsRs | flagStore},
	0x0B: {Stv, opsVectorMemory, flagReadsRs | flagStore},
}

// decodeRSP looks up the table entry of a signal processor instruction word.
func decodeRSP(word uint32) (descriptor, uint32) {
	op := word >> 26
	switch op {
	case opSpecial:
		return rspSpecial[word&0x3F], maskSpecial
	case opRegimm:
		return rspRegimm[(word>>16)&0x1F], maskRegimm
	case opCop0:
		if word&(1<<25) != 0 {
			return descriptor{}, maskCopCO
		}
		return rspCop0Move[(word>>21)&0x1F], maskCopMove
	case opCop2:
		if word&(1<<25) != 0 {
			return rspVector[word&0x3F], maskCopCO
		}
		return rspCop2Move[(word>>21)&0x1F], maskCopMove
	case opLwc2:
		return rspLwc2[(word>>11)&0x1F], maskVecLS
	case opSwc2:
		return rspSwc2[(word>>11)&0x1F], maskVecLS
	}
	return rspNormal[op], maskNormal
}
