package core

import (
	"fmt"
	"strings"

	"github.com/sarchlab/chism/instr"
)

// Unknown is the text of an encoding with no mnemonic.
const Unknown = "??"

// mnemonicWidth is the column width of the mnemonic name, so that operands
// line up.
const mnemonicWidth = 6

// Render returns the mnemonic line of a decoded instruction. It never fails;
// undefined encodings render as Unknown.
func Render(in instr.Inst) string {
	op := Identify(in)
	if op == OpUnknown {
		return Unknown
	}

	return format(op.Info().Name, Operands(op, in)...)
}

// Operands returns the operands op takes from in, in written order.
func Operands(op Opcode, in instr.Inst) []instr.Operand {
	x := instr.Reg(in.X)
	y := instr.Reg(in.Y)
	kk := instr.Byte(in.KK)
	nnn := instr.Addr(in.NNN)

	switch op {
	case OpCLS, OpRET, OpUnknown:
		return nil
	case OpSYS, OpJP, OpCALL:
		return []instr.Operand{nnn}
	case OpSEImm, OpSNEImm, OpLDImm, OpADDImm:
		return []instr.Operand{x, kk}
	case OpSEReg, OpSNEReg,
		OpLDReg, OpOR, OpAND, OpXOR, OpADDReg, OpSUB, OpSUBN:
		return []instr.Operand{x, y}
	case OpSHR, OpSHL:
		return []instr.Operand{x, instr.Optional{Operand: y}}
	case OpLDI:
		return []instr.Operand{instr.Index, nnn}
	case OpJPV0:
		return []instr.Operand{instr.V0, nnn}
	case OpRND:
		return []instr.Operand{instr.HexReg(in.X), kk}
	case OpDRW:
		return []instr.Operand{x, y, instr.Nibble(in.N)}
	case OpSKP, OpSKNP:
		return []instr.Operand{x}
	case OpLDVxDT:
		return []instr.Operand{x, instr.DelayTimer}
	case OpLDVxK:
		return []instr.Operand{x, instr.Key}
	case OpLDDTVx:
		return []instr.Operand{instr.DelayTimer, x}
	case OpLDSTVx:
		return []instr.Operand{instr.SoundTimer, x}
	case OpADDIVx:
		return []instr.Operand{instr.Index, x}
	case OpLDFVx:
		return []instr.Operand{instr.Font, x}
	case OpLDBVx:
		return []instr.Operand{instr.BCD, x}
	case OpLDIMemVx:
		return []instr.Operand{instr.IndexMem, x}
	case OpLDVxIMem:
		return []instr.Operand{x, instr.IndexMem}
	}

	panic(fmt.Sprintf("no operand layout for opcode %d", int(op)))
}

func format(name string, ops ...instr.Operand) string {
	if len(ops) == 0 {
		return name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", mnemonicWidth, name)

	for i, op := range ops {
		if _, attached := op.(instr.Optional); i > 0 && !attached {
			b.WriteString(", ")
		}
		b.WriteString(op.String())
	}

	return b.String()
}
