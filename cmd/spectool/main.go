// Command spectool inspects, converts and synthesizes spectrum records.
//
// Usage:
//
//	spectool [-v] <command> [flags] [args]
//
// Commands:
//
//	show     print the filtered, frequency-sorted entries of a record
//	convert  re-encode a record in another format
//	synth    estimate a record from a seeded synthetic ensemble
//
// Examples:
//
//	spectool show -fmin 10 -imin 0.01 run.spec
//	spectool convert run.spec run.json
//	spectool synth -seed 42 -tones 50,120 -noise 0.2 run.spec
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type command struct {
	name  string
	usage string
	run   func(args []string, stdout io.Writer, log *zap.Logger) error
}

var commands = []command{
	{"show", "print the filtered, frequency-sorted entries of a record", runShow},
	{"convert", "re-encode a record in another format", runConvert},
	{"synth", "estimate a record from a seeded synthetic ensemble", runSynth},
}

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("spectool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() { printUsage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := newLogger(stderr, *verbose)
	defer func() { _ = log.Sync() }()

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	name := fs.Arg(0)
	for _, c := range commands {
		if c.name != name {
			continue
		}
		err := c.run(fs.Args()[1:], stdout, log)
		switch {
		case err == nil:
			return 0
		case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
			return 2
		default:
			log.Error("command failed", zap.String("command", name), zap.Error(err))
			return 1
		}
	}

	log.Error("unknown command", zap.String("command", name))
	fs.Usage()
	return 2
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: spectool [-v] <command> [flags] [args]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(w, "\nFlags:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nRun 'spectool <command> -h' for command flags.\n")
}
