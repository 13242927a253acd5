package insts

import "fmt"

// UnrecognizedOpcodeError reports a word whose major opcode, bits [6:0],
// names no recognized instruction class.
type UnrecognizedOpcodeError struct {
	Opcode uint8
}

func (e UnrecognizedOpcodeError) Error() string {
	return fmt.Sprintf("unrecognized opcode 0b%07b", e.Opcode)
}

// InvalidFunct3Error reports a funct3 value with no instruction assigned to
// it within a recognized opcode class.
type InvalidFunct3Error struct {
	Opcode uint8
	Funct3 uint8
}

func (e InvalidFunct3Error) Error() string {
	return fmt.Sprintf("invalid funct3 0b%03b for opcode 0b%07b", e.Funct3, e.Opcode)
}

// InvalidFunct7Error reports a funct7 value with no instruction assigned to
// it for the funct3 already selected.
type InvalidFunct7Error struct {
	Funct3 uint8
	Funct7 uint8
}

func (e InvalidFunct7Error) Error() string {
	return fmt.Sprintf("invalid funct7 0b%07b for funct3 0b%03b", e.Funct7, e.Funct3)
}

// InvalidRegisterError reports a register field value outside 0-31.
type InvalidRegisterError struct {
	Value uint8
}

func (e InvalidRegisterError) Error() string {
	return fmt.Sprintf("invalid register index %d", e.Value)
}

// TruncatedWordError reports a byte slice too short to hold one 32-bit
// instruction word. It marks a violated caller contract, not a property of
// the encoded bits.
type TruncatedWordError struct {
	Len int
}

func (e TruncatedWordError) Error() string {
	return fmt.Sprintf("instruction word requires 4 bytes, got %d", e.Len)
}
