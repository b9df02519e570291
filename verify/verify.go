// Package verify checks disassembled CHIP-8 programs and summarises them.
//
// It has two stages:
//
// 1. Lint (lint.go): walks the lines of a core.Program and reports
//   - UNDEFINED: words whose class and sub-opcode have no mnemonic. They
//     render as "??"; in a real image they are usually sprite data or
//     padding rather than code.
//   - QUIRK: words whose rendered text departs from the instruction set
//     documentation. Class 5 (5xy0) renders as SNE although the
//     documentation says SE, and class C (Cxkk) prints its register index
//     in hex.
//
// 2. Report (report.go): counts words per class and per opcode, and
//     writes a human-readable summary including the lint issues.
//
// Neither stage changes the listing. A word that lints as UNDEFINED is
// still a valid line of output.
//
// # Usage Example
//
//	prog, err := core.NewBuilder().Build("Dis").Run(ctx, data)
//	if err != nil {
//	    return err
//	}
//	report := verify.GenerateReport(prog)
//	report.WriteReport(os.Stderr)
package verify

// IssueType classifies lint findings.
type IssueType string

const (
	// IssueUndefined marks a word with no mnemonic.
	IssueUndefined IssueType = "UNDEFINED"
	// IssueQuirk marks a word rendered differently from the documentation.
	IssueQuirk IssueType = "QUIRK"
)

// Issue is one lint finding.
type Issue struct {
	Type    IssueType
	Addr    int
	Word    uint16
	Message string
	Details map[string]interface{}
}
