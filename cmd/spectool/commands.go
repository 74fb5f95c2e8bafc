package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-notebook/estimate"
	"github.com/cwbudde/algo-notebook/random"
	"github.com/cwbudde/algo-notebook/spectrum"
	"github.com/cwbudde/algo-notebook/window"
)

func newFlagSet(name, args string, stdout io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: spectool %s [flags] %s\n\nFlags:\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

// loadRecord reads path with an explicit format name, or by extension when
// name is empty.
func loadRecord(path, name string) (spectrum.Record, error) {
	if name == "" {
		return spectrum.Load(path)
	}
	format, err := spectrum.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return spectrum.LoadFormat(path, format)
}

func runShow(args []string, stdout io.Writer, log *zap.Logger) error {
	fs := newFlagSet("show", "file", stdout)
	fMin := fs.Float64("fmin", 0, "minimum frequency value")
	iMin := fs.Float64("imin", 0, "minimum integral contribution value")
	format := fs.String("format", "", "input format (native, json, yaml, toml); default from extension")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	path := fs.Arg(0)

	rec, err := loadRecord(path, *format)
	if err != nil {
		return err
	}
	res, err := spectrum.Sorted(rec, *fMin, *iMin)
	if err != nil {
		return err
	}
	log.Debug("filtered spectrum",
		zap.String("path", path),
		zap.Int("entries", rec.Len()),
		zap.Int("kept", res.Len()),
		zap.Float64("fmin", *fMin),
		zap.Float64("imin", *iMin))

	return printResult(stdout, res)
}

func printResult(w io.Writer, res spectrum.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency\tStd\tCI\tContribution\tStd\tCI\n")
	fmt.Fprintf(tw, "---------\t---\t--\t------------\t---\t--\n")

	f, fStd, fCI, i, iStd, iCI := res.Values()
	for k := range f {
		fmt.Fprintf(tw, "%.6g\t%.3g\t%.3g\t%.6g\t%.3g\t%.3g\n", f[k], fStd[k], fCI[k], i[k], iStd[k], iCI[k])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	s := spectrum.Summarize(res)
	_, err := fmt.Fprintf(w, "\nentries=%d total=%.6g dominant=%.6g centroid=%.6g spread=%.6g\n",
		s.Count, s.TotalContribution, s.DominantFrequency, s.Centroid, s.Spread)
	return err
}

func runConvert(args []string, stdout io.Writer, log *zap.Logger) error {
	fs := newFlagSet("convert", "in out", stdout)
	from := fs.String("from", "", "input format; default from extension")
	to := fs.String("to", "", "output format; default from extension")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return errUsage
	}
	in, out := fs.Arg(0), fs.Arg(1)

	rec, err := loadRecord(in, *from)
	if err != nil {
		return err
	}

	format := spectrum.FormatFromPath(out)
	if *to != "" {
		if format, err = spectrum.ParseFormat(*to); err != nil {
			return err
		}
	}
	if err := spectrum.SaveFormat(out, rec, format); err != nil {
		return err
	}

	log.Info("converted spectrum",
		zap.String("in", in),
		zap.String("out", out),
		zap.Stringer("format", format),
		zap.Int("entries", rec.Len()))
	return nil
}

func runSynth(args []string, stdout io.Writer, log *zap.Logger) error {
	fs := newFlagSet("synth", "out", stdout)
	seed := fs.Int64("seed", 0, "seed for signal, noise and bootstrap generators")
	trials := fs.Int("trials", 16, "ensemble size")
	n := fs.Int("n", 1024, "samples per trial")
	rate := fs.Float64("rate", 1000, "sample rate in Hz")
	noise := fs.Float64("noise", 0.1, "noise standard deviation")
	tones := fs.String("tones", "50,120", "comma-separated tone frequencies in Hz")
	resamples := fs.Int("resamples", 1000, "bootstrap resamples")
	win := fs.String("window", "hann", "taper window (rectangular, hann, hamming, blackman)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	out := fs.Arg(0)

	freqs, err := parseTones(*tones)
	if err != nil {
		return err
	}
	winType, err := window.ParseType(*win)
	if err != nil {
		return fmt.Errorf("synth: %w", err)
	}
	if *trials < 1 || *n < 2 {
		return fmt.Errorf("synth: need trials >= 1 and n >= 2, got %d and %d", *trials, *n)
	}

	random.SetSeed(*seed)
	ensemble := synthesize(freqs, *trials, *n, *rate, *noise)

	rec, err := estimate.FromEnsemble(ensemble, *rate,
		estimate.WithSeed(*seed),
		estimate.WithResamples(*resamples),
		estimate.WithWindow(winType))
	if err != nil {
		return err
	}
	if err := spectrum.Save(out, rec); err != nil {
		return err
	}

	log.Info("synthesized spectrum",
		zap.String("out", out),
		zap.Int64("seed", *seed),
		zap.Int("trials", *trials),
		zap.Int("bins", rec.Len()),
		zap.Stringer("window", winType),
		zap.Float64s("tones", freqs))
	return nil
}

// synthesize draws a random phase and amplitude per tone and trial from the
// general generator and additive noise from the numeric one.
func synthesize(freqs []float64, trials, n int, rate, noiseStd float64) [][]float64 {
	out := make([][]float64, trials)
	for t := range out {
		trial := random.Normal(n, 0, noiseStd)
		for _, f := range freqs {
			phase := 2 * math.Pi * random.Float64()
			amp := 1 + 0.1*random.NormFloat64()
			step := 2 * math.Pi * f / rate
			for i := range trial {
				trial[i] += amp * math.Sin(step*float64(i)+phase)
			}
		}
		out[t] = trial
	}
	return out
}

func parseTones(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("synth: invalid tone %q: %w", part, err)
		}
		if f < 0 {
			return nil, fmt.Errorf("synth: tone must be >= 0: %v", f)
		}
		out = append(out, f)
	}
	return out, nil
}
