package insts

// Operation is one decoded RV32I operation together with its operands.
//
// Operation is a closed set: the only implementations are the instruction
// structs in this package, one per mnemonic. Operand fields hold final
// architectural values; signed immediates are fully sign-extended, so
// consumers never re-extend. Dispatch with a type switch:
//
//	switch op := inst.Operation.(type) {
//	case insts.ADDI:
//		regs[op.Rd] = regs[op.Rs1] + uint32(op.Imm)
//	case insts.JAL:
//		pc = pc + uint32(op.Imm)
//	}
type Operation interface {
	// isOperation restricts implementations to this package.
	isOperation()
}

// LUI places a 20-bit constant in the upper bits of rd.
type LUI struct {
	Rd  Register
	Imm uint32 // bits [31:12] of the constant, low 12 bits zero
}

// AUIPC adds a 20-bit upper constant to the PC and stores the sum in rd.
type AUIPC struct {
	Rd  Register
	Imm uint32 // bits [31:12] of the addend, low 12 bits zero
}

// JAL jumps to PC+Imm and links the return address in rd.
type JAL struct {
	Rd  Register
	Imm int32 // 21-bit signed byte offset, always even
}

// JALR jumps to (rs1+Imm)&^1 and links the return address in rd.
type JALR struct {
	Rd  Register
	Rs1 Register
	Imm int32 // 12-bit signed byte offset
}

// BEQ branches to PC+Imm if rs1 == rs2.
type BEQ struct {
	Rs1 Register
	Rs2 Register
	Imm int32 // 13-bit signed byte offset, always even
}

// BNE branches to PC+Imm if rs1 != rs2.
type BNE struct {
	Rs1 Register
	Rs2 Register
	Imm int32
}

// BLT branches to PC+Imm if rs1 < rs2, signed.
type BLT struct {
	Rs1 Register
	Rs2 Register
	Imm int32
}

// BGE branches to PC+Imm if rs1 >= rs2, signed.
type BGE struct {
	Rs1 Register
	Rs2 Register
	Imm int32
}

// BLTU branches to PC+Imm if rs1 < rs2, unsigned.
type BLTU struct {
	Rs1 Register
	Rs2 Register
	Imm int32
}

// BGEU branches to PC+Imm if rs1 >= rs2, unsigned.
type BGEU struct {
	Rs1 Register
	Rs2 Register
	Imm int32
}

// LB loads a sign-extended byte from rs1+Imm into rd.
type LB struct {
	Rd  Register
	Rs1 Register
	Imm int32 // 12-bit signed byte offset
}

// LH loads a sign-extended halfword from rs1+Imm into rd.
type LH struct {
	Rd  Register
	Rs1 Register
	Imm int32
}

// LW loads a word from rs1+Imm into rd.
type LW struct {
	Rd  Register
	Rs1 Register
	Imm int32
}

// LBU loads a zero-extended byte from rs1+Imm into rd.
type LBU struct {
	Rd  Register
	Rs1 Register
	Imm int32
}

// LHU loads a zero-extended halfword from rs1+Imm into rd.
type LHU struct {
	Rd  Register
	Rs1 Register
	Imm int32
}

// SB stores the low byte of rs2 at rs1+Imm.
type SB struct {
	Rs1 Register
	Rs2 Register
	Imm int32 // 12-bit signed byte offset
}

// SH stores the low halfword of rs2 at rs1+Imm.
type SH struct {
	Rs1 Register
	Rs2 Register
	Imm int32
}

// SW stores rs2 at rs1+Imm.
type SW struct {
	Rs1 Register
	Rs2 Register
	Imm int32
}

// ADDI computes rd = rs1 + Imm.
type ADDI struct {
	Rd  Register
	Rs1 Register
	Imm int32 // 12-bit signed
}

// SLTI sets rd to 1 if rs1 < Imm, signed, else 0.
type SLTI struct {
	Rd  Register
	Rs1 Register
	Imm int32
}

// SLTIU sets rd to 1 if rs1 < Imm, unsigned, else 0. The immediate is
// sign-extended first and only then compared unsigned.
type SLTIU struct {
	Rd  Register
	Rs1 Register
	Imm int32
}

// XORI computes rd = rs1 ^ Imm.
type XORI struct {
	Rd  Register
	Rs1 Register
	Imm int32
}

// ORI computes rd = rs1 | Imm.
type ORI struct {
	Rd  Register
	Rs1 Register
	Imm int32
}

// ANDI computes rd = rs1 & Imm.
type ANDI struct {
	Rd  Register
	Rs1 Register
	Imm int32
}

// SLLI computes rd = rs1 << Shamt.
type SLLI struct {
	Rd    Register
	Rs1   Register
	Shamt uint8 // 5-bit shift amount
}

// SRLI computes rd = rs1 >> Shamt, logical.
type SRLI struct {
	Rd    Register
	Rs1   Register
	Shamt uint8
}

// SRAI computes rd = rs1 >> Shamt, arithmetic.
type SRAI struct {
	Rd    Register
	Rs1   Register
	Shamt uint8
}

// ADD computes rd = rs1 + rs2.
type ADD struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

// SUB computes rd = rs1 - rs2.
type SUB struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

// SLL computes rd = rs1 << rs2, shift amount from the low 5 bits of rs2.
type SLL struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

// SLT sets rd to 1 if rs1 < rs2, signed, else 0.
type SLT struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

// SLTU sets rd to 1 if rs1 < rs2, unsigned, else 0.
type SLTU struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

// XOR computes rd = rs1 ^ rs2.
type XOR struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

// SRL computes rd = rs1 >> rs2, logical, shift amount from the low 5 bits.
type SRL struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

// SRA computes rd = rs1 >> rs2, arithmetic, shift amount from the low 5 bits.
type SRA struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

// OR computes rd = rs1 | rs2.
type OR struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

// AND computes rd = rs1 & rs2.
type AND struct {
	Rd  Register
	Rs1 Register
	Rs2 Register
}

// FENCE orders memory accesses. The decoder does not produce it; hosts may
// construct it when modeling MISC-MEM themselves.
type FENCE struct{}

// FENCEI orders instruction fetches after preceding stores. Like FENCE it is
// represented but not produced by the decoder.
type FENCEI struct{}

// ECALL requests a service from the execution environment.
type ECALL struct{}

// EBREAK transfers control to a debugger.
type EBREAK struct{}

// MRET returns from a machine-mode trap.
type MRET struct{}

// CSRRW atomically swaps a CSR with rs1, placing the old CSR value in rd.
type CSRRW struct {
	Rd  Register
	Rs1 Register
	CSR uint16 // 12-bit CSR index, not validated against any CSR map
}

// CSRRS atomically sets the CSR bits given in rs1, old value to rd.
type CSRRS struct {
	Rd  Register
	Rs1 Register
	CSR uint16
}

// CSRRC atomically clears the CSR bits given in rs1, old value to rd.
type CSRRC struct {
	Rd  Register
	Rs1 Register
	CSR uint16
}

// CSRRWI is CSRRW with a 5-bit zero-extended immediate instead of rs1.
type CSRRWI struct {
	Rd   Register
	Zimm uint8 // 5-bit immediate from the rs1 field position
	CSR  uint16
}

// CSRRSI is CSRRS with a 5-bit zero-extended immediate instead of rs1.
type CSRRSI struct {
	Rd   Register
	Zimm uint8
	CSR  uint16
}

// CSRRCI is CSRRC with a 5-bit zero-extended immediate instead of rs1.
type CSRRCI struct {
	Rd   Register
	Zimm uint8
	CSR  uint16
}

func (LUI) isOperation()    {}
func (AUIPC) isOperation()  {}
func (JAL) isOperation()    {}
func (JALR) isOperation()   {}
func (BEQ) isOperation()    {}
func (BNE) isOperation()    {}
func (BLT) isOperation()    {}
func (BGE) isOperation()    {}
func (BLTU) isOperation()   {}
func (BGEU) isOperation()   {}
func (LB) isOperation()     {}
func (LH) isOperation()     {}
func (LW) isOperation()     {}
func (LBU) isOperation()    {}
func (LHU) isOperation()    {}
func (SB) isOperation()     {}
func (SH) isOperation()     {}
func (SW) isOperation()     {}
func (ADDI) isOperation()   {}
func (SLTI) isOperation()   {}
func (SLTIU) isOperation()  {}
func (XORI) isOperation()   {}
func (ORI) isOperation()    {}
func (ANDI) isOperation()   {}
func (SLLI) isOperation()   {}
func (SRLI) isOperation()   {}
func (SRAI) isOperation()   {}
func (ADD) isOperation()    {}
func (SUB) isOperation()    {}
func (SLL) isOperation()    {}
func (SLT) isOperation()    {}
func (SLTU) isOperation()   {}
func (XOR) isOperation()    {}
func (SRL) isOperation()    {}
func (SRA) isOperation()    {}
func (OR) isOperation()     {}
func (AND) isOperation()    {}
func (FENCE) isOperation()  {}
func (FENCEI) isOperation() {}
func (ECALL) isOperation()  {}
func (EBREAK) isOperation() {}
func (MRET) isOperation()   {}
func (CSRRW) isOperation()  {}
func (CSRRS) isOperation()  {}
func (CSRRC) isOperation()  {}
func (CSRRWI) isOperation() {}
func (CSRRSI) isOperation() {}
func (CSRRCI) isOperation() {}
