package verify

import (
	"fmt"

	"github.com/sarchlab/chism/core"
	"github.com/sarchlab/chism/instr"
)

// RunLint performs the static checks on a disassembled program.
// Issues come back in address order; an empty list means every word has a
// documented rendering.
func RunLint(prog core.Program) []Issue {
	var issues []Issue

	for idx, line := range prog.Lines {
		op := core.Identify(line.Inst)

		if op == core.OpUnknown {
			issues = append(issues, Issue{
				Type: IssueUndefined,
				Addr: line.Addr,
				Word: line.Inst.Raw,
				Message: fmt.Sprintf(
					"Undefined encoding %04X at %04X (class %s, selector %s)",
					line.Inst.Raw, line.Addr, line.Inst.Class, selector(line),
				),
				Details: map[string]interface{}{
					"index": idx,
					"class": line.Inst.Class.String(),
				},
			})
			continue
		}

		if info := op.Info(); info.Quirk != "" {
			issues = append(issues, Issue{
				Type: IssueQuirk,
				Addr: line.Addr,
				Word: line.Inst.Raw,
				Message: fmt.Sprintf("%s at %04X: %s",
					info.Pattern, line.Addr, info.Quirk),
				Details: map[string]interface{}{
					"index":   idx,
					"pattern": info.Pattern,
					"text":    line.Text,
				},
			})
		}
	}

	return issues
}

// selector prints the sub-opcode key that failed to match.
func selector(line core.Line) string {
	if line.Inst.Class == instr.ClassALU {
		return fmt.Sprintf("n=%X", line.Inst.N)
	}
	return fmt.Sprintf("low=%02X", line.Inst.Low)
}
