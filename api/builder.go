package api

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/chism/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	source       Source
	sink         Sink
	disassembler *core.Disassembler
	format       Format
	style        *table.Style
}

// WithSource sets where the image comes from.
func (b DriverBuilder) WithSource(source Source) DriverBuilder {
	b.source = source
	return b
}

// WithSink sets where the listing goes.
func (b DriverBuilder) WithSink(sink Sink) DriverBuilder {
	b.sink = sink
	return b
}

// WithDisassembler sets the disassembler. A sequential one is used if none
// is given.
func (b DriverBuilder) WithDisassembler(d *core.Disassembler) DriverBuilder {
	b.disassembler = d
	return b
}

// WithFormat sets the listing format.
func (b DriverBuilder) WithFormat(format Format) DriverBuilder {
	b.format = format
	return b
}

// WithTableStyle sets the go-pretty style of FormatTable listings.
func (b DriverBuilder) WithTableStyle(style table.Style) DriverBuilder {
	b.style = &style
	return b
}

// Build create a driver.
func (b DriverBuilder) Build() Driver {
	if b.source == nil || b.sink == nil {
		panic("Driver needs a source and a sink")
	}

	d := &driverImpl{
		source:       b.source,
		sink:         b.sink,
		disassembler: b.disassembler,
		format:       b.format,
		style:        table.StyleDefault,
	}

	if d.disassembler == nil {
		d.disassembler = core.NewBuilder().Build("Disassembler")
	}

	if b.style != nil {
		d.style = *b.style
	}

	return d
}
