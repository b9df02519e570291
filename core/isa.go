package core

import "github.com/sarchlab/chism/instr"

// Opcode identifies one of the 35 instructions of the ISA.
type Opcode int

// OpUnknown marks an encoding the decode table does not define.
const (
	OpUnknown Opcode = iota
	OpCLS
	OpRET
	OpSYS
	OpJP
	OpCALL
	OpSEImm
	OpSNEImm
	OpSEReg
	OpLDImm
	OpADDImm
	OpLDReg
	OpOR
	OpAND
	OpXOR
	OpADDReg
	OpSUB
	OpSHR
	OpSUBN
	OpSHL
	OpSNEReg
	OpLDI
	OpJPV0
	OpRND
	OpDRW
	OpSKP
	OpSKNP
	OpLDVxDT
	OpLDVxK
	OpLDDTVx
	OpLDSTVx
	OpADDIVx
	OpLDFVx
	OpLDBVx
	OpLDIMemVx
	OpLDVxIMem
	numOpcodes
)

// OpcodeInfo describes how an opcode is written.
type OpcodeInfo struct {
	// Name is the mnemonic as rendered.
	Name string
	// Pattern is the encoding, e.g. "8xy4".
	Pattern string
	// Quirk is non-empty when the rendered form departs from the
	// instruction set documentation.
	Quirk string
}

var isa = [numOpcodes]OpcodeInfo{
	OpUnknown:  {Unknown, "????", ""},
	OpCLS:      {"CLS", "00E0", ""},
	OpRET:      {"RET", "00EE", ""},
	OpSYS:      {"SYS", "0nnn", ""},
	OpJP:       {"JP", "1nnn", ""},
	OpCALL:     {"CALL", "2nnn", ""},
	OpSEImm:    {"SE", "3xkk", ""},
	OpSNEImm:   {"SNE", "4xkk", ""},
	OpSEReg:    {"SNE", "5xy0", "rendered as SNE, documented as SE"},
	OpLDImm:    {"LD", "6xkk", ""},
	OpADDImm:   {"ADD", "7xkk", ""},
	OpLDReg:    {"LD", "8xy0", ""},
	OpOR:       {"OR", "8xy1", ""},
	OpAND:      {"AND", "8xy2", ""},
	OpXOR:      {"XOR", "8xy3", ""},
	OpADDReg:   {"ADD", "8xy4", ""},
	OpSUB:      {"SUB", "8xy5", ""},
	OpSHR:      {"SHR", "8xy6", ""},
	OpSUBN:     {"SUBN", "8xy7", ""},
	OpSHL:      {"SHL", "8xyE", ""},
	OpSNEReg:   {"SNE", "9xy0", ""},
	OpLDI:      {"LD", "Annn", ""},
	OpJPV0:     {"JP", "Bnnn", ""},
	OpRND:      {"RND", "Cxkk", "register index printed in hex"},
	OpDRW:      {"DRW", "Dxyn", ""},
	OpSKP:      {"SKP", "Ex9E", ""},
	OpSKNP:     {"SKNP", "ExA1", ""},
	OpLDVxDT:   {"LD", "Fx07", ""},
	OpLDVxK:    {"LD", "Fx0A", ""},
	OpLDDTVx:   {"LD", "Fx15", ""},
	OpLDSTVx:   {"LD", "Fx18", ""},
	OpADDIVx:   {"ADD", "Fx1E", ""},
	OpLDFVx:    {"LD", "Fx29", ""},
	OpLDBVx:    {"LD", "Fx33", ""},
	OpLDIMemVx: {"LD", "Fx55", ""},
	OpLDVxIMem: {"LD", "Fx65", ""},
}

// Info returns the table entry for op.
func (op Opcode) Info() OpcodeInfo {
	if op < 0 || op >= numOpcodes {
		return isa[OpUnknown]
	}
	return isa[op]
}

func (op Opcode) String() string {
	return op.Info().Pattern
}

// Opcodes lists every defined opcode in encoding order.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, numOpcodes-1)
	for op := OpCLS; op < numOpcodes; op++ {
		ops = append(ops, op)
	}
	return ops
}

var aluOps = map[uint8]Opcode{
	0x0: OpLDReg,
	0x1: OpOR,
	0x2: OpAND,
	0x3: OpXOR,
	0x4: OpADDReg,
	0x5: OpSUB,
	0x6: OpSHR,
	0x7: OpSUBN,
	0xE: OpSHL,
}

var keyOps = map[uint8]Opcode{
	0x9E: OpSKP,
	0xA1: OpSKNP,
}

var miscOps = map[uint8]Opcode{
	0x07: OpLDVxDT,
	0x0A: OpLDVxK,
	0x15: OpLDDTVx,
	0x18: OpLDSTVx,
	0x1E: OpADDIVx,
	0x29: OpLDFVx,
	0x33: OpLDBVx,
	0x55: OpLDIMemVx,
	0x65: OpLDVxIMem,
}

// Identify finds the opcode of a decoded instruction. Classes 0, 8, E and F
// need a second lookup on the low nibble or low byte.
func Identify(in instr.Inst) Opcode {
	switch in.Class {
	case instr.ClassSys:
		switch in.Raw {
		case 0x00E0:
			return OpCLS
		case 0x00EE:
			return OpRET
		}
		return OpSYS
	case instr.ClassJump:
		return OpJP
	case instr.ClassCall:
		return OpCALL
	case instr.ClassSkipEqImm:
		return OpSEImm
	case instr.ClassSkipNeImm:
		return OpSNEImm
	case instr.ClassSkipEqReg:
		return OpSEReg
	case instr.ClassLoadImm:
		return OpLDImm
	case instr.ClassAddImm:
		return OpADDImm
	case instr.ClassALU:
		return lookup(aluOps, in.N)
	case instr.ClassSkipNeReg:
		return OpSNEReg
	case instr.ClassLoadIndex:
		return OpLDI
	case instr.ClassJumpOffset:
		return OpJPV0
	case instr.ClassRandom:
		return OpRND
	case instr.ClassDraw:
		return OpDRW
	case instr.ClassKey:
		return lookup(keyOps, in.Low)
	case instr.ClassMisc:
		return lookup(miscOps, in.Low)
	}

	return OpUnknown
}

func lookup(table map[uint8]Opcode, key uint8) Opcode {
	if op, ok := table[key]; ok {
		return op
	}
	return OpUnknown
}
