package insts

import "encoding/binary"

// RV32I major opcodes, bits [6:0] of every instruction word.
const (
	opcodeLUI    uint8 = 0b0110111 // U-type upper immediate
	opcodeAUIPC  uint8 = 0b0010111 // U-type PC-relative upper immediate
	opcodeJAL    uint8 = 0b1101111 // J-type jump and link
	opcodeJALR   uint8 = 0b1100111 // I-type indirect jump
	opcodeBranch uint8 = 0b1100011 // B-type conditional branches
	opcodeLoad   uint8 = 0b0000011 // I-type loads
	opcodeStore  uint8 = 0b0100011 // S-type stores
	opcodeOpImm  uint8 = 0b0010011 // I-type register-immediate arithmetic
	opcodeOp     uint8 = 0b0110011 // R-type register-register arithmetic
	opcodeSystem uint8 = 0b1110011 // environment and CSR instructions
)

// SYSTEM instructions with fixed whole-word encodings.
const (
	wordECALL  uint32 = 0x00000073
	wordEBREAK uint32 = 0x00100073
	wordMRET   uint32 = 0x30200073
)

// Decoder decodes RV32I machine code into instructions.
//
// A Decoder holds no state: decoding is pure arithmetic on the word, so one
// Decoder may be shared freely across goroutines.
type Decoder struct{}

// NewDecoder creates a new RV32I instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a single 32-bit instruction word.
//
// Decode is total: every word either yields an Instruction or one of the
// error types in this package, never a panic. The returned error is nil
// exactly when the Instruction is valid.
func (d *Decoder) Decode(word uint32) (Instruction, error) {
	op, err := d.decodeOperation(word)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Width: Width32, Operation: op}, nil
}

// DecodeBytes decodes the instruction word formed by the first four bytes
// of b, assembled little-endian. Fewer than four bytes violates the word
// boundary contract and yields TruncatedWordError; extra bytes are ignored.
func (d *Decoder) DecodeBytes(b []byte) (Instruction, error) {
	if len(b) < 4 {
		return Instruction{}, TruncatedWordError{Len: len(b)}
	}
	return d.Decode(binary.LittleEndian.Uint32(b))
}

func (d *Decoder) decodeOperation(word uint32) (Operation, error) {
	switch opcode := ParseOpcode(word); opcode {
	case opcodeLUI:
		return d.decodeLUI(word)
	case opcodeAUIPC:
		return d.decodeAUIPC(word)
	case opcodeJAL:
		return d.decodeJAL(word)
	case opcodeJALR:
		return d.decodeJALR(word)
	case opcodeBranch:
		return d.decodeBranch(word)
	case opcodeLoad:
		return d.decodeLoad(word)
	case opcodeStore:
		return d.decodeStore(word)
	case opcodeOpImm:
		return d.decodeOpImm(word)
	case opcodeOp:
		return d.decodeOp(word)
	case opcodeSystem:
		return d.decodeSystem(word)
	default:
		return nil, UnrecognizedOpcodeError{Opcode: opcode}
	}
}

// regRd resolves the rd field of word through the register table.
func regRd(word uint32) (Register, error) {
	return RegisterFromIndex(ParseRd(word))
}

// regRs1 resolves the rs1 field of word through the register table.
func regRs1(word uint32) (Register, error) {
	return RegisterFromIndex(ParseRs1(word))
}

// regRs2 resolves the rs2 field of word through the register table.
func regRs2(word uint32) (Register, error) {
	return RegisterFromIndex(ParseRs2(word))
}

// decodeLUI decodes the load-upper-immediate instruction.
// Encoding: imm[31:12] rd 0110111
func (d *Decoder) decodeLUI(word uint32) (Operation, error) {
	rd, err := regRd(word)
	if err != nil {
		return nil, err
	}
	return LUI{Rd: rd, Imm: ParseImmTypeU(word)}, nil
}

// decodeAUIPC decodes the add-upper-immediate-to-PC instruction.
// Encoding: imm[31:12] rd 0010111
func (d *Decoder) decodeAUIPC(word uint32) (Operation, error) {
	rd, err := regRd(word)
	if err != nil {
		return nil, err
	}
	return AUIPC{Rd: rd, Imm: ParseImmTypeU(word)}, nil
}

// decodeJAL decodes the jump-and-link instruction.
// Encoding: imm[20|10:1|11|19:12] rd 1101111
func (d *Decoder) decodeJAL(word uint32) (Operation, error) {
	rd, err := regRd(word)
	if err != nil {
		return nil, err
	}
	return JAL{Rd: rd, Imm: ParseImmTypeJ(word)}, nil
}

// decodeJALR decodes the indirect jump-and-link instruction.
// Encoding: imm[11:0] rs1 000 rd 1100111
func (d *Decoder) decodeJALR(word uint32) (Operation, error) {
	rd, err := regRd(word)
	if err != nil {
		return nil, err
	}
	rs1, err := regRs1(word)
	if err != nil {
		return nil, err
	}
	return JALR{Rd: rd, Rs1: rs1, Imm: ParseImmTypeI(word)}, nil
}

// decodeBranch decodes the conditional branches.
// Encoding: imm[12|10:5] rs2 rs1 funct3 imm[4:1|11] 1100011
func (d *Decoder) decodeBranch(word uint32) (Operation, error) {
	rs1, err := regRs1(word)
	if err != nil {
		return nil, err
	}
	rs2, err := regRs2(word)
	if err != nil {
		return nil, err
	}
	imm := ParseImmTypeB(word)

	funct3 := ParseFunct3(word)
	switch funct3 {
	case 0b000:
		return BEQ{Rs1: rs1, Rs2: rs2, Imm: imm}, nil
	case 0b001:
		return BNE{Rs1: rs1, Rs2: rs2, Imm: imm}, nil
	case 0b100:
		return BLT{Rs1: rs1, Rs2: rs2, Imm: imm}, nil
	case 0b101:
		return BGE{Rs1: rs1, Rs2: rs2, Imm: imm}, nil
	case 0b110:
		return BLTU{Rs1: rs1, Rs2: rs2, Imm: imm}, nil
	case 0b111:
		return BGEU{Rs1: rs1, Rs2: rs2, Imm: imm}, nil
	default:
		// 0b010 and 0b011 carry no branch instruction.
		return nil, InvalidFunct3Error{Opcode: opcodeBranch, Funct3: funct3}
	}
}

// decodeLoad decodes the loads.
// Encoding: imm[11:0] rs1 funct3 rd 0000011
func (d *Decoder) decodeLoad(word uint32) (Operation, error) {
	rd, err := regRd(word)
	if err != nil {
		return nil, err
	}
	rs1, err := regRs1(word)
	if err != nil {
		return nil, err
	}
	imm := ParseImmTypeI(word)

	funct3 := ParseFunct3(word)
	switch funct3 {
	case 0b000:
		return LB{Rd: rd, Rs1: rs1, Imm: imm}, nil
	case 0b001:
		return LH{Rd: rd, Rs1: rs1, Imm: imm}, nil
	case 0b010:
		return LW{Rd: rd, Rs1: rs1, Imm: imm}, nil
	case 0b100:
		return LBU{Rd: rd, Rs1: rs1, Imm: imm}, nil
	case 0b101:
		return LHU{Rd: rd, Rs1: rs1, Imm: imm}, nil
	default:
		return nil, InvalidFunct3Error{Opcode: opcodeLoad, Funct3: funct3}
	}
}

// decodeStore decodes the stores.
// Encoding: imm[11:5] rs2 rs1 funct3 imm[4:0] 0100011
func (d *Decoder) decodeStore(word uint32) (Operation, error) {
	rs1, err := regRs1(word)
	if err != nil {
		return nil, err
	}
	rs2, err := regRs2(word)
	if err != nil {
		return nil, err
	}
	imm := ParseImmTypeS(word)

	funct3 := ParseFunct3(word)
	switch funct3 {
	case 0b000:
		return SB{Rs1: rs1, Rs2: rs2, Imm: imm}, nil
	case 0b001:
		return SH{Rs1: rs1, Rs2: rs2, Imm: imm}, nil
	case 0b010:
		return SW{Rs1: rs1, Rs2: rs2, Imm: imm}, nil
	default:
		return nil, InvalidFunct3Error{Opcode: opcodeStore, Funct3: funct3}
	}
}

// decodeOpImm decodes the register-immediate arithmetic instructions.
// Encoding: imm[11:0] rs1 funct3 rd 0010011
// Shifts reuse the layout with shamt in the rs2 position:
// 0000000 shamt rs1 001 rd 0010011 (SLLI)
// 0x00000 shamt rs1 101 rd 0010011 (SRLI/SRAI, x selects arithmetic)
func (d *Decoder) decodeOpImm(word uint32) (Operation, error) {
	rd, err := regRd(word)
	if err != nil {
		return nil, err
	}
	rs1, err := regRs1(word)
	if err != nil {
		return nil, err
	}

	funct3 := ParseFunct3(word)
	switch funct3 {
	case 0b000:
		return ADDI{Rd: rd, Rs1: rs1, Imm: ParseImmTypeI(word)}, nil
	case 0b010:
		return SLTI{Rd: rd, Rs1: rs1, Imm: ParseImmTypeI(word)}, nil
	case 0b011:
		return SLTIU{Rd: rd, Rs1: rs1, Imm: ParseImmTypeI(word)}, nil
	case 0b100:
		return XORI{Rd: rd, Rs1: rs1, Imm: ParseImmTypeI(word)}, nil
	case 0b110:
		return ORI{Rd: rd, Rs1: rs1, Imm: ParseImmTypeI(word)}, nil
	case 0b111:
		return ANDI{Rd: rd, Rs1: rs1, Imm: ParseImmTypeI(word)}, nil
	case 0b001:
		return SLLI{Rd: rd, Rs1: rs1, Shamt: ParseShamt(word)}, nil
	default: // 0b101
		switch funct7 := ParseFunct7(word); funct7 {
		case 0b0000000:
			return SRLI{Rd: rd, Rs1: rs1, Shamt: ParseShamt(word)}, nil
		case 0b0100000:
			return SRAI{Rd: rd, Rs1: rs1, Shamt: ParseShamt(word)}, nil
		default:
			return nil, InvalidFunct7Error{Funct3: funct3, Funct7: funct7}
		}
	}
}

// decodeOp decodes the register-register arithmetic instructions. Every
// funct3 names an instruction; funct7 must be 0000000, except for the
// ADD/SUB and SRL/SRA pairs where 0100000 selects the second member.
// Encoding: funct7 rs2 rs1 funct3 rd 0110011
func (d *Decoder) decodeOp(word uint32) (Operation, error) {
	rd, err := regRd(word)
	if err != nil {
		return nil, err
	}
	rs1, err := regRs1(word)
	if err != nil {
		return nil, err
	}
	rs2, err := regRs2(word)
	if err != nil {
		return nil, err
	}

	funct3 := ParseFunct3(word)
	funct7 := ParseFunct7(word)
	switch funct3 {
	case 0b000:
		switch funct7 {
		case 0b0000000:
			return ADD{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
		case 0b0100000:
			return SUB{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
		}
	case 0b001:
		if funct7 == 0b0000000 {
			return SLL{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
		}
	case 0b010:
		if funct7 == 0b0000000 {
			return SLT{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
		}
	case 0b011:
		if funct7 == 0b0000000 {
			return SLTU{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
		}
	case 0b100:
		if funct7 == 0b0000000 {
			return XOR{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
		}
	case 0b101:
		switch funct7 {
		case 0b0000000:
			return SRL{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
		case 0b0100000:
			return SRA{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
		}
	case 0b110:
		if funct7 == 0b0000000 {
			return OR{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
		}
	case 0b111:
		if funct7 == 0b0000000 {
			return AND{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
		}
	}
	return nil, InvalidFunct7Error{Funct3: funct3, Funct7: funct7}
}

// decodeSystem decodes the environment and CSR instructions.
// Encoding: csr rs1 funct3 rd 1110011
func (d *Decoder) decodeSystem(word uint32) (Operation, error) {
	// ECALL, EBREAK and MRET carry no operand fields and are matched as
	// whole words before funct3 dispatch.
	switch word {
	case wordECALL:
		return ECALL{}, nil
	case wordEBREAK:
		return EBREAK{}, nil
	case wordMRET:
		return MRET{}, nil
	}

	rd, err := regRd(word)
	if err != nil {
		return nil, err
	}
	csr := ParseCSR(word)

	funct3 := ParseFunct3(word)
	switch funct3 {
	case 0b001, 0b010, 0b011:
		rs1, err := regRs1(word)
		if err != nil {
			return nil, err
		}
		switch funct3 {
		case 0b001:
			return CSRRW{Rd: rd, Rs1: rs1, CSR: csr}, nil
		case 0b010:
			return CSRRS{Rd: rd, Rs1: rs1, CSR: csr}, nil
		default:
			return CSRRC{Rd: rd, Rs1: rs1, CSR: csr}, nil
		}
	case 0b101:
		return CSRRWI{Rd: rd, Zimm: ParseZimm(word), CSR: csr}, nil
	case 0b110:
		return CSRRSI{Rd: rd, Zimm: ParseZimm(word), CSR: csr}, nil
	case 0b111:
		return CSRRCI{Rd: rd, Zimm: ParseZimm(word), CSR: csr}, nil
	default:
		// 0b000 covers ECALL/EBREAK only, already matched above; 0b100
		// is unassigned.
		return nil, InvalidFunct3Error{Opcode: opcodeSystem, Funct3: funct3}
	}
}
