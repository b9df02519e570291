package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/chism/instr"
)

// DefaultOrigin is the address CHIP-8 programs are loaded at.
const DefaultOrigin = 0x200

// ErrOddLength is returned when a program image ends with a byte that does
// not complete a word.
var ErrOddLength = errors.New("program length is odd")

// Line is one disassembled word.
type Line struct {
	Addr int
	Inst instr.Inst
	Text string
}

// Program is a disassembled image, one line per word in image order.
type Program struct {
	Origin int
	Lines  []Line
}

// Listing returns the rendered text of every line.
func (p Program) Listing() []string {
	listing := make([]string, len(p.Lines))
	for i, l := range p.Lines {
		listing[i] = l.Text
	}

	return listing
}

// Words splits a program image into big-endian words.
func Words(data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes, last byte 0x%02X at offset %d",
			ErrOddLength, len(data), data[len(data)-1], len(data)-1)
	}

	words := make([]uint16, len(data)/2)
	for i := range words {
		words[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}

	return words, nil
}

// Disassemble renders every word of data sequentially.
func Disassemble(data []byte) ([]string, error) {
	words, err := Words(data)
	if err != nil {
		return nil, err
	}

	listing := make([]string, 0, len(words))
	for _, w := range words {
		listing = append(listing, Render(instr.Decode(w)))
	}

	return listing, nil
}
