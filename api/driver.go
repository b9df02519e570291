// Package api defines the driver that moves a program image from a source,
// through the disassembler, into a sink.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/chism/core"
)

// ErrIO marks failures to read the image or to write the listing.
var ErrIO = errors.New("i/o error")

// Format selects how the listing is written.
type Format int

const (
	// FormatPlain writes one mnemonic per line.
	FormatPlain Format = iota
	// FormatTable writes an addressed table.
	FormatTable
)

// ParseFormat converts a format name, "plain" or "table".
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "plain":
		return FormatPlain, nil
	case "table":
		return FormatTable, nil
	}

	return FormatPlain, fmt.Errorf("unknown format %q", name)
}

func (f Format) String() string {
	if f == FormatTable {
		return "table"
	}
	return "plain"
}

// Source provides a whole program image.
type Source interface {
	// Name identifies the source in errors and logs.
	Name() string

	// Load returns every byte of the image.
	Load() ([]byte, error)
}

// Sink receives the finished listing in one piece.
type Sink interface {
	// Name identifies the sink in errors and logs.
	Name() string

	// Store writes the listing.
	Store(listing []byte) error
}

// Driver runs one disassembly from a source to a sink.
type Driver interface {
	// Run loads the image, disassembles it and stores the listing. Nothing
	// reaches the sink unless every word rendered.
	Run(ctx context.Context) (core.Program, error)
}

type driverImpl struct {
	source       Source
	sink         Sink
	disassembler *core.Disassembler
	format       Format
	style        table.Style
}

func (d *driverImpl) Run(ctx context.Context) (core.Program, error) {
	data, err := d.source.Load()
	if err != nil {
		return core.Program{}, fmt.Errorf("%w: reading %s: %w",
			ErrIO, d.source.Name(), err)
	}

	slog.Debug("Loaded",
		slog.String("Source", d.source.Name()),
		slog.Int("Bytes", len(data)),
	)

	prog, err := d.disassembler.Run(ctx, data)
	if err != nil {
		return core.Program{}, fmt.Errorf("%s: %w", d.source.Name(), err)
	}

	if err := d.sink.Store([]byte(d.listing(prog))); err != nil {
		return core.Program{}, fmt.Errorf("%w: writing %s: %w",
			ErrIO, d.sink.Name(), err)
	}

	slog.Debug("Stored",
		slog.String("Sink", d.sink.Name()),
		slog.Int("Lines", len(prog.Lines)),
		slog.String("Format", d.format.String()),
	)

	return prog, nil
}

func (d *driverImpl) listing(prog core.Program) string {
	if d.format == FormatTable {
		return core.FormatTable(prog, d.style)
	}

	return core.FormatListing(prog)
}
