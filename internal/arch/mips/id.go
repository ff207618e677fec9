package mips

import "fmt"

// ID identifies a decoded instruction. IDs are shared between the variants
// where both processors implement the same instruction.
type ID uint16

// Instruction IDs.
const (
	Invalid ID = iota

	// pseudo instructions
	Nop
	B
	Bal

	// special
	Sll
	Srl
	Sra
	Sllv
	Srlv
	Srav
	Jr
	Jalr
	Syscall
	Break
	Sync
	Mfhi
	Mthi
	Mflo
	Mtlo
	Dsllv
	Dsrlv
	Dsrav
	Mult
	Multu
	Div
	Divu
	Dmult
	Dmultu
	Ddiv
	Ddivu
	Add
	Addu
	Sub
	Subu
	And
	Or
	Xor
	Nor
	Slt
	Sltu
	Dadd
	Daddu
	Dsub
	Dsubu
	Tge
	Tgeu
	Tlt
	Tltu
	Teq
	Tne
	Dsll
	Dsrl
	Dsra
	Dsll32
	Dsrl32
	Dsra32

	// regimm
	Bltz
	Bgez
	Bltzl
	Bgezl
	Tgei
	Tgeiu
	Tlti
	Tltiu
	Teqi
	Tnei
	Bltzal
	Bgezal
	Bltzall
	Bgezall

	// normal
	J
	Jal
	Beq
	Bne
	Blez
	Bgtz
	Addi
	Addiu
	Slti
	Sltiu
	Andi
	Ori
	Xori
	Lui
	Beql
	Bnel
	Blezl
	Bgtzl
	Daddi
	Daddiu
	Ldl
	Ldr
	Lb
	Lh
	Lwl
	Lw
	Lbu
	Lhu
	Lwr
	Lwu
	Sb
	Sh
	Swl
	Sw
	Sdl
	Sdr
	Swr
	Cache
	Ll
	Lwc1
	Lwc2
	Pref
	Lld
	Ldc1
	Ldc2
	Ld
	Sc
	Swc1
	Swc2
	Scd
	Sdc1
	Sdc2
	Sd

	// cop0
	Mfc0
	Dmfc0
	Cfc0
	Mtc0
	Dmtc0
	Ctc0
	Bc0f
	Bc0t
	Bc0fl
	Bc0tl
	Tlbr
	Tlbwi
	Tlbwr
	Tlbp
	Eret

	// cop1
	Mfc1
	Dmfc1
	Cfc1
	Mtc1
	Dmtc1
	Ctc1
	Bc1f
	Bc1t
	Bc1fl
	Bc1tl
	AddS
	SubS
	MulS
	DivS
	SqrtS
	AbsS
	MovS
	NegS
	RoundLS
	TruncLS
	CeilLS
	FloorLS
	RoundWS
	TruncWS
	CeilWS
	FloorWS
	CvtDS
	CvtWS
	CvtLS
	CCondS
	AddD
	SubD
	MulD
	DivD
	SqrtD
	AbsD
	MovD
	NegD
	RoundLD
	TruncLD
	CeilLD
	FloorLD
	RoundWD
	TruncWD
	CeilWD
	FloorWD
	CvtSD
	CvtWD
	CvtLD
	CCondD
	CvtSW
	CvtDW
	CvtSL
	CvtDL

	// rsp cop2
	Mfc2
	Cfc2
	Mtc2
	Ctc2
	Vmulf
	Vmulu
	Vrndp
	Vmulq
	Vmudl
	Vmudm
	Vmudn
	Vmudh
	Vmacf
	Vmacu
	Vrndn
	Vmacq
	Vmadl
	Vmadm
	Vmadn
	Vmadh
	Vadd
	Vsub
	Vabs
	Vaddc
	Vsubc
	Vsar
	Vlt
	Veq
	Vne
	Vge
	Vcl
	Vch
	Vcr
	Vmrg
	Vand
	Vnand
	Vor
	Vnor
	Vxor
	Vnxor
	Vrcp
	Vrcpl
	Vrcph
	Vmov
	Vrsq
	Vrsql
	Vrsqh
	Vnop

	// rsp lwc2
	Lbv
	Lsv
	Llv
	Ldv
	Lqv
	Lrv
	Lpv
	Luv
	Lhv
	Lfv
	Lwv
	Ltv

	// rsp swc2
	Sbv
	Ssv
	Slv
	Sdv
	Sqv
	Srv
	Spv
	Suv
	Shv
	Sfv
	Swv
	Stv

	idCount
)

var idNames = [idCount]string{
	Invalid: "invalid",
	Nop:     "nop",
	B:       "b",
	Bal:     "bal",

	Sll:     "sll",
	Srl:     "srl",
	Sra:     "sra",
	Sllv:    "sllv",
	Srlv:    "srlv",
	Srav:    "srav",
	Jr:      "jr",
	Jalr:    "jalr",
	Syscall: "syscall",
	Break:   "break",
	Sync:    "sync",
	Mfhi:    "mfhi",
	Mthi:    "mthi",
	Mflo:    "mflo",
	Mtlo:    "mtlo",
	Dsllv:   "dsllv",
	Dsrlv:   "dsrlv",
	Dsrav:   "dsrav",
	Mult:    "mult",
	Multu:   "multu",
	Div:     "div",
	Divu:    "divu",
	Dmult:   "dmult",
	Dmultu:  "dmultu",
	Ddiv:    "ddiv",
	Ddivu:   "ddivu",
	Add:     "add",
	Addu:    "addu",
	Sub:     "sub",
	Subu:    "subu",
	And:     "and",
	Or:      "or",
	Xor:     "xor",
	Nor:     "nor",
	Slt:     "slt",
	Sltu:    "sltu",
	Dadd:    "dadd",
	Daddu:   "daddu",
	Dsub:    "dsub",
	Dsubu:   "dsubu",
	Tge:     "tge",
	Tgeu:    "tgeu",
	Tlt:     "tlt",
	Tltu:    "tltu",
	Teq:     "teq",
	Tne:     "tne",
	Dsll:    "dsll",
	Dsrl:    "dsrl",
	Dsra:    "dsra",
	Dsll32:  "dsll32",
	Dsrl32:  "dsrl32",
	Dsra32:  "dsra32",

	Bltz:    "bltz",
	Bgez:    "bgez",
	Bltzl:   "bltzl",
	Bgezl:   "bgezl",
	Tgei:    "tgei",
	Tgeiu:   "tgeiu",
	Tlti:    "tlti",
	Tltiu:   "tltiu",
	Teqi:    "teqi",
	Tnei:    "tnei",
	Bltzal:  "bltzal",
	Bgezal:  "bgezal",
	Bltzall: "bltzall",
	Bgezall: "bgezall",

	J:      "j",
	Jal:    "jal",
	Beq:    "beq",
	Bne:    "bne",
	Blez:   "blez",
	Bgtz:   "bgtz",
	Addi:   "addi",
	Addiu:  "addiu",
	Slti:   "slti",
	Sltiu:  "sltiu",
	Andi:   "andi",
	Ori:    "ori",
	Xori:   "xori",
	Lui:    "lui",
	Beql:   "beql",
	Bnel:   "bnel",
	Blezl:  "blezl",
	Bgtzl:  "bgtzl",
	Daddi:  "daddi",
	Daddiu: "daddiu",
	Ldl:    "ldl",
	Ldr:    "ldr",
	Lb:     "lb",
	Lh:     "lh",
	Lwl:    "lwl",
	Lw:     "lw",
	Lbu:    "lbu",
	Lhu:    "lhu",
	Lwr:    "lwr",
	Lwu:    "lwu",
	Sb:     "sb",
	Sh:     "sh",
	Swl:    "swl",
	Sw:     "sw",
	Sdl:    "sdl",
	Sdr:    "sdr",
	Swr:    "swr",
	Cache:  "cache",
	Ll:     "ll",
	Lwc1:   "lwc1",
	Lwc2:   "lwc2",
	Pref:   "pref",
	Lld:    "lld",
	Ldc1:   "ldc1",
	Ldc2:   "ldc2",
	Ld:     "ld",
	Sc:     "sc",
	Swc1:   "swc1",
	Swc2:   "swc2",
	Scd:    "scd",
	Sdc1:   "sdc1",
	Sdc2:   "sdc2",
	Sd:     "sd",

	Mfc0:  "mfc0",
	Dmfc0: "dmfc0",
	Cfc0:  "cfc0",
	Mtc0:  "mtc0",
	Dmtc0: "dmtc0",
	Ctc0:  "ctc0",
	Bc0f:  "bc0f",
	Bc0t:  "bc0t",
	Bc0fl: "bc0fl",
	Bc0tl: "bc0tl",
	Tlbr:  "tlbr",
	Tlbwi: "tlbwi",
	Tlbwr: "tlbwr",
	Tlbp:  "tlbp",
	Eret:  "eret",

	Mfc1:    "mfc1",
	Dmfc1:   "dmfc1",
	Cfc1:    "cfc1",
	Mtc1:    "mtc1",
	Dmtc1:   "dmtc1",
	Ctc1:    "ctc1",
	Bc1f:    "bc1f",
	Bc1t:    "bc1t",
	Bc1fl:   "bc1fl",
	Bc1tl:   "bc1tl",
	AddS:    "add.s",
	SubS:    "sub.s",
	MulS:    "mul.s",
	DivS:    "div.s",
	SqrtS:   "sqrt.s",
	AbsS:    "abs.s",
	MovS:    "mov.s",
	NegS:    "neg.s",
	RoundLS: "round.l.s",
	TruncLS: "trunc.l.s",
	CeilLS:  "ceil.l.s",
	FloorLS: "floor.l.s",
	RoundWS: "round.w.s",
	TruncWS: "trunc.w.s",
	CeilWS:  "ceil.w.s",
	FloorWS: "floor.w.s",
	CvtDS:   "cvt.d.s",
	CvtWS:   "cvt.w.s",
	CvtLS:   "cvt.l.s",
	CCondS:  "c.cond.s",
	AddD:    "add.d",
	SubD:    "sub.d",
	MulD:    "mul.d",
	DivD:    "div.d",
	SqrtD:   "sqrt.d",
	AbsD:    "abs.d",
	MovD:    "mov.d",
	NegD:    "neg.d",
	RoundLD: "round.l.d",
	TruncLD: "trunc.l.d",
	CeilLD:  "ceil.l.d",
	FloorLD: "floor.l.d",
	RoundWD: "round.w.d",
	TruncWD: "trunc.w.d",
	CeilWD:  "ceil.w.d",
	FloorWD: "floor.w.d",
	CvtSD:   "cvt.s.d",
	CvtWD:   "cvt.w.d",
	CvtLD:   "cvt.l.d",
	CCondD:  "c.cond.d",
	CvtSW:   "cvt.s.w",
	CvtDW:   "cvt.d.w",
	CvtSL:   "cvt.s.l",
	CvtDL:   "cvt.d.l",

	Mfc2:  "mfc2",
	Cfc2:  "cfc2",
	Mtc2:  "mtc2",
	Ctc2:  "ctc2",
	Vmulf: "vmulf",
	Vmulu: "vmulu",
	Vrndp: "vrndp",
	Vmulq: "vmulq",
	Vmudl: "vmudl",
	Vmudm: "vmudm",
	Vmudn: "vmudn",
	Vmudh: "vmudh",
	Vmacf: "vmacf",
	Vmacu: "vmacu",
	Vrndn: "vrndn",
	Vmacq: "vmacq",
	Vmadl: "vmadl",
	Vmadm: "vmadm",
	Vmadn: "vmadn",
	Vmadh: "vmadh",
	Vadd:  "vadd",
	Vsub:  "vsub",
	Vabs:  "vabs",
	Vaddc: "vaddc",
	Vsubc: "vsubc",
	Vsar:  "vsar",
	Vlt:   "vlt",
	Veq:   "veq",
	Vne:   "vne",
	Vge:   "vge",
	Vcl:   "vcl",
	Vch:   "vch",
	Vcr:   "vcr",
	Vmrg:  "vmrg",
	Vand:  "vand",
	Vnand: "vnand",
	Vor:   "vor",
	Vnor:  "vnor",
	Vxor:  "vxor",
	Vnxor: "vnxor",
	Vrcp:  "vrcp",
	Vrcpl: "vrcpl",
	Vrcph: "vrcph",
	Vmov:  "vmov",
	Vrsq:  "vrsq",
	Vrsql: "vrsql",
	Vrsqh: "vrsqh",
	Vnop:  "vnop",

	Lbv: "lbv",
	Lsv: "lsv",
	Llv: "llv",
	Ldv: "ldv",
	Lqv: "lqv",
	Lrv: "lrv",
	Lpv: "lpv",
	Luv: "luv",
	Lhv: "lhv",
	Lfv: "lfv",
	Lwv: "lwv",
	Ltv: "ltv",

	Sbv: "sbv",
	Ssv: "ssv",
	Slv: "slv",
	Sdv: "sdv",
	Sqv: "sqv",
	Srv: "srv",
	Spv: "spv",
	Suv: "suv",
	Shv: "shv",
	Sfv: "sfv",
	Swv: "swv",
	Stv: "stv",
}

// String returns the mnemonic of the instruction ID.
func (id ID) String() string {
	if id >= idCount {
		return fmt.Sprintf("ID(%d)", id)
	}
	return idNames[id]
}
