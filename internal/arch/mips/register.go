package mips

import "fmt"

// GPR is a general purpose register number.
type GPR uint8

// General purpose registers.
const (
	Zero GPR = iota
	At
	V0
	V1
	A0
	A1
	A2
	A3
	T0
	T1
	T2
	T3
	T4
	T5
	T6
	T7
	S0
	S1
	S2
	S3
	S4
	S5
	S6
	S7
	T8
	T9
	K0
	K1
	GP
	SP
	FP
	RA
)

var gprNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

func (r GPR) String() string {
	if int(r) >= len(gprNames) {
		return fmt.Sprintf("$%d", r)
	}
	return "$" + gprNames[r]
}

// FPR is a floating point register number, named using the o32 ABI.
type FPR uint8

// Floating point registers.
const (
	Fv0 FPR = iota
	Fv0f
	Fv1
	Fv1f
	Ft0
	Ft0f
	Ft1
	Ft1f
	Ft2
	Ft2f
	Ft3
	Ft3f
	Fa0
	Fa0f
	Fa1
	Fa1f
	Ft4
	Ft4f
	Ft5
	Ft5f
	Fs0
	Fs0f
	Fs1
	Fs1f
	Fs2
	Fs2f
	Fs3
	Fs3f
	Fs4
	Fs4f
	Fs5
	Fs5f
)

var fprNames = [32]string{
	"fv0", "fv0f", "fv1", "fv1f", "ft0", "ft0f", "ft1", "ft1f",
	"ft2", "ft2f", "ft3", "ft3f", "fa0", "fa0f", "fa1", "fa1f",
	"ft4", "ft4f", "ft5", "ft5f", "fs0", "fs0f", "fs1", "fs1f",
	"fs2", "fs2f", "fs3", "fs3f", "fs4", "fs4f", "fs5", "fs5f",
}

func (r FPR) String() string {
	if int(r) >= len(fprNames) {
		return fmt.Sprintf("$f%d", r)
	}
	return "$" + fprNames[r]
}

// cpuCop0Names contains the VR4300 system control registers. Empty entries
// are reserved register numbers.
var cpuCop0Names = [32]string{
	0:  "Index",
	1:  "Random",
	2:  "EntryLo0",
	3:  "EntryLo1",
	4:  "Context",
	5:  "PageMask",
	6:  "Wired",
	8:  "BadVAddr",
	9:  "Count",
	10: "EntryHi",
	11: "Compare",
	12: "Status",
	13: "Cause",
	14: "EPC",
	15: "PRId",
	16: "Config",
	17: "LLAddr",
	18: "WatchLo",
	19: "WatchHi",
	20: "XContext",
	26: "PErr",
	27: "CacheErr",
	28: "TagLo",
	29: "TagHi",
	30: "ErrorEPC",
}

// rspCop0Names contains the RSP DMA and RDP command registers.
var rspCop0Names = [16]string{
	"SP_MEM_ADDR", "SP_DRAM_ADDR", "SP_RD_LEN", "SP_WR_LEN",
	"SP_STATUS", "SP_DMA_FULL", "SP_DMA_BUSY", "SP_SEMAPHORE",
	"DPC_START", "DPC_END", "DPC_CURRENT", "DPC_STATUS",
	"DPC_CLOCK", "DPC_BUFBUSY", "DPC_PIPEBUSY", "DPC_TMEM",
}

// Cop0RegisterName returns the name of the system control register with the
// given number for the variant. The boolean result is false for reserved or
// out of range register numbers.
func Cop0RegisterName(variant Variant, number uint32) (string, bool) {
	var name string
	switch variant {
	case CPU:
		if number < uint32(len(cpuCop0Names)) {
			name = cpuCop0Names[number]
		}
	case RSP:
		if number < uint32(len(rspCop0Names)) {
			name = rspCop0Names[number]
		}
	}
	return name, name != ""
}
