// Package mips provides a table driven decoder for the two MIPS instruction
// set variants found in Nintendo 64 ROMs.
//
// # Variants
//
// The main processor (VR4300) executes the MIPS III instruction set including
// the COP0 system control and COP1 floating point coprocessors. The Reality
// Signal Processor (RSP) executes a reduced MIPS I subset without multiply,
// divide, 64 bit or floating point instructions, extended by the COP2 vector
// unit and the lwc2/swc2 vector load and store groups.
//
// # Decoding
//
// Decode is total: every 32 bit word produces an Instruction. Words that do
// not correspond to an instruction of the selected variant decode to the
// Invalid ID. An Instruction additionally reports through IsValid whether all
// bits outside of the opcode identification and the operand fields are zero.
//
// The pseudo instructions nop (the zero word), b (beq $zero, $zero) and
// bal (bgezal $zero) are resolved during decoding.
//
// # Queries
//
// Instructions expose their register operands, operand presence through
// HasOperand and predicates for general purpose register reads and writes,
// memory access, linking and unconditional control transfer.
package mips
