package insts

// Field extraction and immediate reconstruction for the RV32I encoding
// formats. All formats share the field grid below; the immediates differ in
// how their bits are scattered across it.
//
//	 31      25 24   20 19   15 14    12 11     7 6      0
//	| funct7   |  rs2  |  rs1  | funct3 |   rd   | opcode |

// ParseOpcode extracts the major opcode, bits [6:0].
func ParseOpcode(word uint32) uint8 {
	return uint8(word & 0x7F)
}

// ParseRd extracts the destination register field, bits [11:7].
func ParseRd(word uint32) uint8 {
	return uint8((word >> 7) & 0x1F)
}

// ParseRs1 extracts the first source register field, bits [19:15].
func ParseRs1(word uint32) uint8 {
	return uint8((word >> 15) & 0x1F)
}

// ParseRs2 extracts the second source register field, bits [24:20].
func ParseRs2(word uint32) uint8 {
	return uint8((word >> 20) & 0x1F)
}

// ParseFunct3 extracts the minor opcode, bits [14:12].
func ParseFunct3(word uint32) uint8 {
	return uint8((word >> 12) & 0x7)
}

// ParseFunct7 extracts the funct7 discriminator, bits [31:25].
func ParseFunct7(word uint32) uint8 {
	return uint8(word >> 25)
}

// ParseShamt extracts the shift amount of the shift-immediate instructions,
// bits [24:20] (the rs2 position).
func ParseShamt(word uint32) uint8 {
	return uint8((word >> 20) & 0x1F)
}

// ParseCSR extracts the CSR index of SYSTEM instructions, bits [31:20]. The
// value is unsigned and not checked against any CSR address map.
func ParseCSR(word uint32) uint16 {
	return uint16(word >> 20)
}

// ParseZimm extracts the zero-extended immediate of the CSR immediate
// instructions, bits [19:15] (the rs1 position).
func ParseZimm(word uint32) uint8 {
	return uint8((word >> 15) & 0x1F)
}

// SignExtend interprets the low bits of value as a two's-complement number
// and extends it to 32 bits.
func SignExtend(value uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(value<<shift) >> shift
}

// ParseImmTypeI reconstructs the I-type immediate:
// imm[11:0] = word[31:20], sign-extended.
func ParseImmTypeI(word uint32) int32 {
	return SignExtend(word>>20, 12)
}

// ParseImmTypeS reconstructs the S-type immediate:
// imm[11:5] = word[31:25], imm[4:0] = word[11:7], sign-extended.
func ParseImmTypeS(word uint32) int32 {
	imm := (word >> 25) << 5
	imm |= (word >> 7) & 0x1F
	return SignExtend(imm, 12)
}

// ParseImmTypeB reconstructs the B-type immediate:
// imm[12] = word[31], imm[11] = word[7], imm[10:5] = word[30:25],
// imm[4:1] = word[11:8], imm[0] = 0, sign-extended.
func ParseImmTypeB(word uint32) int32 {
	imm := (word >> 31) << 12
	imm |= ((word >> 7) & 0x1) << 11
	imm |= ((word >> 25) & 0x3F) << 5
	imm |= ((word >> 8) & 0xF) << 1
	return SignExtend(imm, 13)
}

// ParseImmTypeU reconstructs the U-type immediate: bits [31:12] of the word
// kept in place, low 12 bits zero. No sign extension applies.
func ParseImmTypeU(word uint32) uint32 {
	return word & 0xFFFFF000
}

// ParseImmTypeJ reconstructs the J-type immediate:
// imm[20] = word[31], imm[19:12] = word[19:12], imm[11] = word[20],
// imm[10:1] = word[30:21], imm[0] = 0, sign-extended.
func ParseImmTypeJ(word uint32) int32 {
	imm := (word >> 31) << 20
	imm |= word & 0xFF000 // imm[19:12] sit in place
	imm |= ((word >> 20) & 0x1) << 11
	imm |= ((word >> 21) & 0x3FF) << 1
	return SignExtend(imm, 21)
}
