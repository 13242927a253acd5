// Package insts provides RISC-V RV32I instruction definitions and decoding.
//
// This package implements decoding of RV32I machine code into structured
// instruction representations. It covers the full base integer set plus the
// system instructions (ECALL, EBREAK, MRET and the CSR register/immediate
// forms). Each mnemonic is its own operation type, so consumers dispatch on
// the decoded value with a type switch and never re-derive encoding fields.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst, err := decoder.Decode(0x00A28293) // ADDI t0, t0, 10
//	if err != nil {
//		// word does not encode an RV32I instruction
//	}
//	op := inst.Operation.(insts.ADDI)
//	fmt.Printf("rd: %v, rs1: %v, imm: %d\n", op.Rd, op.Rs1, op.Imm)
package insts

// Width is the encoded size of an instruction in bits.
type Width uint8

// Instruction widths. RV32I is fixed-width; the compressed extension would
// add a 16-bit width here.
const (
	Width32 Width = 32
)

// Instruction represents a decoded RISC-V instruction.
//
// An Instruction is a plain value: once returned by the decoder it is never
// mutated, and copying it copies the full decode result.
type Instruction struct {
	Width     Width     // Encoded size
	Operation Operation // Operation with its decoded operands
}

// Is32Bit reports whether the instruction occupies a full 32-bit word.
func (i Instruction) Is32Bit() bool {
	return i.Width == Width32
}
