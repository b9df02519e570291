package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// FormatListing joins the rendered lines, each followed by a newline.
func FormatListing(p Program) string {
	var b strings.Builder
	for _, l := range p.Lines {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}

	return b.String()
}

// WriteListing writes the plain listing of p to w.
func WriteListing(w io.Writer, p Program) error {
	_, err := io.WriteString(w, FormatListing(p))
	return err
}

// FormatTable renders p as an addressed table with one row per word.
func FormatTable(p Program, style table.Style) string {
	t := table.NewWriter()
	t.SetStyle(style)
	t.AppendHeader(table.Row{"Addr", "Word", "Instruction"})

	for _, l := range p.Lines {
		t.AppendRow(table.Row{
			fmt.Sprintf("%04X", l.Addr),
			fmt.Sprintf("%04X", l.Inst.Raw),
			l.Text,
		})
	}

	t.AppendFooter(table.Row{"", "Words", len(p.Lines)})

	return t.Render() + "\n"
}
