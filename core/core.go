// Package core turns CHIP-8 program images into mnemonic listings.
package core

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/chism/instr"
)

// Disassembler decodes and renders program images. It holds no state
// between runs and may be shared.
type Disassembler struct {
	name    string
	workers int
	origin  int
}

// Name returns the name given at build time.
func (d *Disassembler) Name() string {
	return d.name
}

// Run disassembles data. Lines come back in image order whatever the
// number of workers.
func (d *Disassembler) Run(ctx context.Context, data []byte) (Program, error) {
	words, err := Words(data)
	if err != nil {
		return Program{}, err
	}

	prog := Program{
		Origin: d.origin,
		Lines:  make([]Line, len(words)),
	}

	if d.workers <= 1 || len(words) < 2*d.workers {
		if err := ctx.Err(); err != nil {
			return Program{}, err
		}
		d.renderRange(ctx, prog.Lines, words, 0)
		return prog, nil
	}

	chunk := (len(words) + d.workers - 1) / d.workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for start := 0; start < len(words); start += chunk {
		start := start // per-iteration copy; go.mod targets go 1.21 loop semantics
		end := min(start+chunk, len(words))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d.renderRange(gctx, prog.Lines[start:end], words[start:end], start)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Program{}, fmt.Errorf("%s: %w", d.name, err)
	}

	return prog, nil
}

// renderRange fills lines from words. first is the index of words[0] in
// the whole image.
func (d *Disassembler) renderRange(
	ctx context.Context,
	lines []Line,
	words []uint16,
	first int,
) {
	trace := slog.Default().Enabled(ctx, LevelTrace)

	for i, w := range words {
		in := instr.Decode(w)
		addr := d.origin + 2*(first+i)
		lines[i] = Line{
			Addr: addr,
			Inst: in,
			Text: Render(in),
		}

		if !trace {
			continue
		}

		Trace("Render",
			slog.String("Disassembler", d.name),
			slog.String("Addr", fmt.Sprintf("%04X", addr)),
			slog.String("Word", fmt.Sprintf("%04X", w)),
			slog.String("Text", lines[i].Text),
		)
	}
}
