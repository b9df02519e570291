// Command chism disassembles a CHIP-8 program image into a text listing.
//
//	chism [flags] <input-path> [output-path]
//
// Without an output path the listing is written next to the input, with
// the last three characters of the name replaced by "asm". The output path
// "-" writes to standard output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/sarchlab/chism/api"
	"github.com/sarchlab/chism/config"
	"github.com/sarchlab/chism/core"
	"github.com/sarchlab/chism/verify"
)

const (
	exitOK = iota
	exitFailure
)

type options struct {
	configPath string
	format     string
	workers    int
	origin     int
	logLevel   string
	report     bool
}

func newFlagSet(opts *options, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("chism", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.format, "format", "", "listing format: plain or table")
	fs.IntVar(&opts.workers, "workers", 0, "goroutines used to render words")
	fs.IntVar(&opts.origin, "origin", -1, "address of the first word (table format)")
	fs.StringVar(&opts.logLevel, "log-level", "", "trace, debug, info, warn or error")
	fs.BoolVar(&opts.report, "report", false, "print a verification report to stderr")

	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: chism [flags] <input-path> [output-path]")
		fs.PrintDefaults()
	}

	return fs
}

// resolve merges the config file, flags and positional arguments.
func resolve(opts options, set map[string]bool, args []string) (config.Config, string, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, "", err
		}
		cfg = loaded
	}

	if set["format"] {
		cfg.Format = opts.format
	}
	if set["workers"] {
		cfg.Workers = opts.workers
	}
	if set["origin"] {
		cfg.Origin = opts.origin
	}
	if set["log-level"] {
		cfg.LogLevel = opts.logLevel
	}
	if set["report"] {
		cfg.Report = opts.report
	}

	if len(args) > 2 {
		return cfg, "", fmt.Errorf("too many arguments: %v", args[2:])
	}

	input := args[0]
	if len(args) == 2 {
		cfg.Output = args[1]
	}

	return cfg, input, cfg.Validate()
}

func tableStyle(output string) table.Style {
	if output == api.StdStream && term.IsTerminal(int(os.Stdout.Fd())) {
		return table.StyleColoredBright
	}
	return table.StyleDefault
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return exitOK
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, input, err := resolve(opts, set, fs.Args())
	if err != nil {
		slog.Error("Invalid configuration", slog.Any("Error", err))
		return exitFailure
	}

	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr,
		&slog.HandlerOptions{Level: level})))

	format, _ := api.ParseFormat(cfg.Format)
	output := cfg.OutputPath(input)

	driver := api.DriverBuilder{}.
		WithSource(api.FileSource{Path: input}).
		WithSink(api.FileSink{Path: output}).
		WithDisassembler(cfg.Builder().Build("Disassembler")).
		WithFormat(format).
		WithTableStyle(tableStyle(output)).
		Build()

	prog, err := driver.Run(ctx)
	switch {
	case errors.Is(err, api.ErrIO):
		slog.Error("I/O failure", slog.Any("Error", err))
		return exitFailure
	case errors.Is(err, core.ErrOddLength):
		slog.Error("Malformed program image", slog.Any("Error", err))
		return exitFailure
	case err != nil:
		slog.Error("Disassembly failed", slog.Any("Error", err))
		return exitFailure
	}

	slog.Info("Disassembled",
		slog.String("Input", input),
		slog.String("Output", output),
		slog.Int("Words", len(prog.Lines)),
	)

	if cfg.Report {
		verify.GenerateReport(prog).WriteReport(stderr)
	}

	return exitOK
}

func main() {
	start := time.Now()
	atexit.Register(func() {
		slog.Debug("Exit", slog.Duration("Elapsed", time.Since(start)))
	})

	atexit.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}
