// Maze disassembles the classic random maze program, code and sprite data
// alike, and prints it as an addressed table with a verification report.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/chism/core"
	"github.com/sarchlab/chism/verify"
)

var maze = []byte{
	0xA2, 0x1E, 0xC2, 0x01, 0x32, 0x01, 0xA2, 0x1A,
	0xD0, 0x14, 0x70, 0x04, 0x30, 0x40, 0x12, 0x00,
	0x60, 0x00, 0x71, 0x04, 0x31, 0x20, 0x12, 0x00,
	0x12, 0x18, 0x80, 0x40, 0x20, 0x10, 0x20, 0x40,
	0x80, 0x10,
}

func disassemble() (core.Program, error) {
	return core.NewBuilder().
		WithWorkers(2).
		Build("Maze").
		Run(context.Background(), maze)
}

func main() {
	prog, err := disassemble()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(core.FormatTable(prog, table.StyleLight))
	verify.GenerateReport(prog).WriteReport(os.Stdout)
}
