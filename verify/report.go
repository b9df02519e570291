package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/chism/core"
	"github.com/sarchlab/chism/instr"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	WordCount    int
	ClassCounts  [instr.NumClasses]int
	OpcodeCounts map[core.Opcode]int
	Issues       []Issue
	Undefined    []Issue
	Quirks       []Issue
	Program      core.Program
}

// GenerateReport runs lint and counts the program's opcodes.
func GenerateReport(prog core.Program) *VerificationReport {
	report := &VerificationReport{
		WordCount:    len(prog.Lines),
		OpcodeCounts: make(map[core.Opcode]int),
		Program:      prog,
	}

	for _, line := range prog.Lines {
		report.ClassCounts[line.Inst.Class]++
		report.OpcodeCounts[core.Identify(line.Inst)]++
	}

	report.Issues = RunLint(prog)

	for _, issue := range report.Issues {
		if issue.Type == IssueUndefined {
			report.Undefined = append(report.Undefined, issue)
		} else {
			report.Quirks = append(report.Quirks, issue)
		}
	}

	return report
}

// Coverage returns how many of the defined opcodes appear at least once.
func (r *VerificationReport) Coverage() int {
	n := 0
	for _, op := range core.Opcodes() {
		if r.OpcodeCounts[op] > 0 {
			n++
		}
	}
	return n
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "DISASSEMBLY REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nWords: %d (origin %04X)\n", r.WordCount, r.Program.Origin)
	fmt.Fprintf(w, "Opcodes used: %d of %d\n", r.Coverage(), len(core.Opcodes()))

	classes := table.NewWriter()
	classes.SetStyle(table.StyleLight)
	classes.AppendHeader(table.Row{"Class", "Words"})
	for c, count := range r.ClassCounts {
		if count == 0 {
			continue
		}
		classes.AppendRow(table.Row{instr.Class(c).String(), count})
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, classes.Render())

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "LINT")
	fmt.Fprintln(w, separator)

	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "No issues found")
		return
	}

	if len(r.Undefined) > 0 {
		fmt.Fprintf(w, "\nUNDEFINED (%d):\n", len(r.Undefined))
		fmt.Fprintln(w, dash)
		for _, issue := range r.Undefined {
			fmt.Fprintf(w, "  %s\n", issue.Message)
		}
	}

	if len(r.Quirks) > 0 {
		fmt.Fprintf(w, "\nQUIRK (%d):\n", len(r.Quirks))
		fmt.Fprintln(w, dash)
		for _, issue := range r.Quirks {
			fmt.Fprintf(w, "  %s\n", issue.Message)
		}
	}
}
