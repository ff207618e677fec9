package mips

import "fmt"

// Variant selects the processor an instruction word is decoded for.
type Variant uint8

// Processor variants.
const (
	CPU Variant = iota // VR4300 main processor
	RSP                // Reality Signal Processor
)

func (v Variant) String() string {
	switch v {
	case CPU:
		return "cpu"
	case RSP:
		return "rsp"
	default:
		return fmt.Sprintf("Variant(%d)", v)
	}
}

// Instruction is a decoded instruction word.
type Instruction struct {
	word    uint32
	variant Variant
	desc    descriptor
	mask    uint32
}

// Pseudo instruction table entries.
var (
	nopDescriptor = descriptor{id: Nop}
	bDescriptor   = descriptor{B, OperandBranchTarget, flagUnconditional}
	balDescriptor = descriptor{Bal, OperandBranchTarget, flagLink}
)

// Decode decodes a big endian instruction word for the given variant.
// Decoding never fails, words without a matching instruction have the
// Invalid ID.
func Decode(word uint32, variant Variant) Instruction {
	var desc descriptor
	var mask uint32
	if variant == RSP {
		desc, mask = decodeRSP(word)
	} else {
		desc, mask = decodeCPU(word)
	}

	ins := Instruction{
		word:    word,
		variant: variant,
		desc:    desc,
		mask:    mask,
	}
	ins.resolvePseudo()
	return ins
}

func (i *Instruction) resolvePseudo() {
	switch {
	case i.word == 0:
		i.desc, i.mask = nopDescriptor, maskWord
	case i.desc.id == Beq && i.Rs() == Zero && i.Rt() == Zero:
		i.desc, i.mask = bDescriptor, maskCopBC
	case i.desc.id == Bgezal && i.Rs() == Zero:
		i.desc, i.mask = balDescriptor, maskCopBC
	}
}

// Word returns the raw instruction word.
func (i Instruction) Word() uint32 { return i.word }

// Variant returns the processor variant the word was decoded for.
func (i Instruction) Variant() Variant { return i.variant }

// ID returns the instruction ID.
func (i Instruction) ID() ID { return i.desc.id }

// Name returns the mnemonic of the instruction. Floating point compares
// include their condition.
func (i Instruction) Name() string {
	switch i.desc.id {
	case CCondS:
		return "c." + compareConditions[i.word&0xF] + ".s"
	case CCondD:
		return "c." + compareConditions[i.word&0xF] + ".d"
	default:
		return i.desc.id.String()
	}
}

var compareConditions = [16]string{
	"f", "un", "eq", "ueq", "olt", "ult", "ole", "ule",
	"sf", "ngle", "seq", "ngl", "lt", "nge", "le", "ngt",
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s (0x%08X)", i.Name(), i.word)
}

// IsValid returns whether the word decoded to an instruction and all bits
// that are neither part of the opcode nor of an operand are zero.
func (i Instruction) IsValid() bool {
	if i.desc.id == Invalid {
		return false
	}
	used := i.mask | i.desc.operands.mask()
	return i.word&^used == 0
}

// HasOperand returns whether the instruction encodes the given operand kind.
func (i Instruction) HasOperand(operand Operand) bool {
	return i.desc.operands&operand != 0
}

// Rs returns the register of the rs field, also used as the base register
// of memory accesses.
func (i Instruction) Rs() GPR { return GPR((i.word >> 21) & 0x1F) }

// Rt returns the register of the rt field.
func (i Instruction) Rt() GPR { return GPR((i.word >> 16) & 0x1F) }

// Rd returns the register of the rd field.
func (i Instruction) Rd() GPR { return GPR((i.word >> 11) & 0x1F) }

// Fs returns the floating point register of the fs field.
func (i Instruction) Fs() FPR { return FPR((i.word >> 11) & 0x1F) }

// Ft returns the floating point register of the ft field.
func (i Instruction) Ft() FPR { return FPR((i.word >> 16) & 0x1F) }

// Fd returns the floating point register of the fd field.
func (i Instruction) Fd() FPR { return FPR((i.word >> 6) & 0x1F) }

// Sa returns the shift amount.
func (i Instruction) Sa() uint32 { return (i.word >> 6) & 0x1F }

// Cop0Rd returns the system control register number of a coprocessor 0 move.
func (i Instruction) Cop0Rd() uint32 { return (i.word >> 11) & 0x1F }

// Immediate returns the zero extended 16 bit immediate.
func (i Instruction) Immediate() uint16 { return uint16(i.word) }

// CacheOperation returns the 3 bit operation of a cache instruction.
func (i Instruction) CacheOperation() uint32 { return (i.word >> 18) & 0x7 }

// CacheType returns the 2 bit cache selector of a cache instruction.
func (i Instruction) CacheType() uint32 { return (i.word >> 16) & 0x3 }

// DoesLoad returns whether the instruction reads memory.
func (i Instruction) DoesLoad() bool { return i.desc.flags&flagLoad != 0 }

// DoesStore returns whether the instruction writes memory.
func (i Instruction) DoesStore() bool { return i.desc.flags&flagStore != 0 }

// DoesDereference returns whether the instruction accesses memory.
func (i Instruction) DoesDereference() bool { return i.desc.flags&(flagLoad|flagStore) != 0 }

// DoesLink returns whether the instruction writes a return address.
func (i Instruction) DoesLink() bool { return i.desc.flags&flagLink != 0 }

// ModifiesRd returns whether the instruction writes the rd register.
func (i Instruction) ModifiesRd() bool { return i.desc.flags&flagModifiesRd != 0 }

// ModifiesRt returns whether the instruction writes the rt register.
func (i Instruction) ModifiesRt() bool { return i.desc.flags&flagModifiesRt != 0 }

// ReadsRs returns whether the instruction reads the rs register.
func (i Instruction) ReadsRs() bool { return i.desc.flags&flagReadsRs != 0 }

// ReadsRt returns whether the instruction reads the rt register.
func (i Instruction) ReadsRt() bool { return i.desc.flags&flagReadsRt != 0 }

// ReadsRd returns whether the instruction reads the rd register.
func (i Instruction) ReadsRd() bool { return i.desc.flags&flagReadsRd != 0 }

// ReadsFs returns whether the instruction reads the fs register.
func (i Instruction) ReadsFs() bool { return i.desc.flags&flagReadsFs != 0 }

// ReadsFt returns whether the instruction reads the ft register.
func (i Instruction) ReadsFt() bool { return i.desc.flags&flagReadsFt != 0 }

// ReadsFd returns whether the instruction reads the fd register.
func (i Instruction) ReadsFd() bool { return i.desc.flags&flagReadsFd != 0 }

// IsUnconditionalBranch returns whether the instruction always transfers
// control without linking: b, j and jr.
func (i Instruction) IsUnconditionalBranch() bool {
	return i.desc.flags&flagUnconditional != 0
}

// IsTrap returns whether the instruction is a conditional trap.
func (i Instruction) IsTrap() bool { return i.desc.flags&flagTrap != 0 }

