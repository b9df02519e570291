// Package instr describes the structure of a CHIP-8 instruction word.
package instr

import "fmt"

// Class is the top nibble of an instruction word. It selects the
// instruction family.
type Class uint8

// The sixteen instruction families, named after the canonical instruction
// (or group) each one encodes.
const (
	ClassSys        Class = iota // 0nnn, 00E0, 00EE
	ClassJump                    // 1nnn
	ClassCall                    // 2nnn
	ClassSkipEqImm               // 3xkk
	ClassSkipNeImm               // 4xkk
	ClassSkipEqReg               // 5xy0
	ClassLoadImm                 // 6xkk
	ClassAddImm                  // 7xkk
	ClassALU                     // 8xyn
	ClassSkipNeReg               // 9xy0
	ClassLoadIndex               // Annn
	ClassJumpOffset              // Bnnn
	ClassRandom                  // Cxkk
	ClassDraw                    // Dxyn
	ClassKey                     // Ex9E, ExA1
	ClassMisc                    // Fxkk
)

// NumClasses is the number of instruction families.
const NumClasses = 16

func (c Class) String() string {
	return fmt.Sprintf("%X", uint8(c))
}

// Inst is a decoded instruction word. Every field is a fixed view of the
// same 16 bits.
type Inst struct {
	Raw   uint16
	Class Class
	X     uint8  // bits 11-8, register operand 1
	Y     uint8  // bits 7-4, register operand 2
	N     uint8  // bits 3-0, nibble immediate or sub-opcode
	KK    uint8  // bits 7-0, byte immediate
	NNN   uint16 // bits 11-0, address
	Low   uint8  // bits 7-0, sub-opcode selector for classes 0, 8, E and F
}

// Decode splits a word into its fields. It accepts every 16-bit value.
func Decode(word uint16) Inst {
	return Inst{
		Raw:   word,
		Class: Class(word >> 12),
		X:     uint8(word>>8) & 0xF,
		Y:     uint8(word>>4) & 0xF,
		N:     uint8(word) & 0xF,
		KK:    uint8(word),
		NNN:   word & 0x0FFF,
		Low:   uint8(word),
	}
}

// FromBytes decodes the big-endian word made of high and low.
func FromBytes(high, low byte) Inst {
	return Decode(uint16(high)<<8 | uint16(low))
}

func (i Inst) String() string {
	return fmt.Sprintf("Inst{%04X}", i.Raw)
}
