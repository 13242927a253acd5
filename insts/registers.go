package insts

import "fmt"

// Register identifies one of the 32 RV32I integer registers.
type Register uint8

// RV32I integer registers in index order, named by ABI mnemonic.
const (
	RegZero Register = iota // x0: hardwired zero
	RegRA                   // x1: return address
	RegSP                   // x2: stack pointer
	RegGP                   // x3: global pointer
	RegTP                   // x4: thread pointer
	RegT0                   // x5: temporary
	RegT1                   // x6: temporary
	RegT2                   // x7: temporary
	RegS0                   // x8: saved register / frame pointer
	RegS1                   // x9: saved register
	RegA0                   // x10: argument / return value
	RegA1                   // x11: argument / return value
	RegA2                   // x12: argument
	RegA3                   // x13: argument
	RegA4                   // x14: argument
	RegA5                   // x15: argument
	RegA6                   // x16: argument
	RegA7                   // x17: argument
	RegS2                   // x18: saved register
	RegS3                   // x19: saved register
	RegS4                   // x20: saved register
	RegS5                   // x21: saved register
	RegS6                   // x22: saved register
	RegS7                   // x23: saved register
	RegS8                   // x24: saved register
	RegS9                   // x25: saved register
	RegS10                  // x26: saved register
	RegS11                  // x27: saved register
	RegT3                   // x28: temporary
	RegT4                   // x29: temporary
	RegT5                   // x30: temporary
	RegT6                   // x31: temporary
)

var registerNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// String returns the ABI name of the register.
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("reg(%d)", uint8(r))
}

// Index returns the 5-bit encoding index of the register. It is the inverse
// of RegisterFromIndex and is total: every Register value maps back to the
// index it was resolved from.
func (r Register) Index() uint8 {
	return uint8(r)
}

// RegisterFromIndex resolves a register field value to a Register. Values
// above 31 yield InvalidRegisterError. Fields masked to 5 bits always
// resolve; the check guards callers that hand in wider values.
func RegisterFromIndex(value uint8) (Register, error) {
	if value > 31 {
		return 0, InvalidRegisterError{Value: value}
	}
	return Register(value), nil
}

// RegistersFromBitmask lists the registers whose bits are set in mask, bit 0
// through bit 31, lowest index first. A zero mask yields an empty list.
func RegistersFromBitmask(mask uint32) []Register {
	var regs []Register
	for i := 0; i < 32; i++ {
		if mask&(1<<i) != 0 {
			regs = append(regs, Register(i))
		}
	}
	return regs
}
