package instr

import (
	"fmt"
	"strconv"
)

// Operand is one formatted argument of a mnemonic.
type Operand interface {
	String() string
}

// Reg is a V register, printed with a decimal index.
type Reg uint8

func (r Reg) String() string {
	return "V" + strconv.Itoa(int(r))
}

// HexReg is a V register printed with a two-digit hex index. Only RND uses
// it.
type HexReg uint8

func (r HexReg) String() string {
	return fmt.Sprintf("V%02X", uint8(r))
}

// Byte is an 8-bit immediate.
type Byte uint8

func (b Byte) String() string {
	return fmt.Sprintf("#%02X", uint8(b))
}

// Nibble is the 4-bit DRW height. It is padded like a byte.
type Nibble uint8

func (n Nibble) String() string {
	return fmt.Sprintf("#%02X", uint8(n)&0xF)
}

// Addr is a 12-bit address, printed with four hex digits.
type Addr uint16

func (a Addr) String() string {
	return fmt.Sprintf("#%04X", uint16(a))
}

// Name is a fixed operand such as I, DT, K or [I].
type Name string

func (n Name) String() string {
	return string(n)
}

// Common fixed operands.
const (
	Index      Name = "I"
	IndexMem   Name = "[I]"
	DelayTimer Name = "DT"
	SoundTimer Name = "ST"
	Key        Name = "K"
	Font       Name = "F"
	BCD        Name = "B"
	V0         Name = "V0"
)

// Optional is an operand the instruction may ignore, as in SHR Vx{, Vy}.
// It attaches to the previous operand without a separator.
type Optional struct {
	Operand
}

func (o Optional) String() string {
	return "{, " + o.Operand.String() + "}"
}
