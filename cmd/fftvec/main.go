// Command fftvec prints fixed-point input vectors for the tail-stage FFT
// block, optionally preceded by the expected FFT output.
//
// Usage:
//
//	fftvec [flags]
//
// Without flags it reproduces the 8-point, 16 MHz / 128 MHz bring-up
// vectors in signed 16-bit words with 8 fractional bits.
//
// Examples:
//
//	fftvec
//	fftvec -emit c
//	fftvec -count 16 -freq 3 -width 12 -frac 10 -overflow saturate
//	fftvec -readback 0,0,0,0,0,0,0,05A8FA58
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/cwbudde/fftvec/dsp/fixedpoint"
	"github.com/cwbudde/fftvec/dsp/spectrum"
	"github.com/cwbudde/fftvec/testvec"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		logger := newLogger(os.Stderr)
		logger.Fatal().Err(err).Msg("fftvec failed")
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fftvec", flag.ContinueOnError)
	fs.SetOutput(stderr)

	count := fs.Int("count", testvec.DefaultSampleCount, "number of sample points")
	freq := fs.Float64("freq", testvec.DefaultInputFreq, "input tone frequency")
	fsamp := fs.Float64("fs", testvec.DefaultSampleFreq, "sampling frequency")
	width := fs.Int("width", fixedpoint.Signed16Q8.Width, "fixed-point total width in bits")
	frac := fs.Int("frac", fixedpoint.Signed16Q8.Frac, "fixed-point fractional bits")
	unsigned := fs.Bool("unsigned", false, "use an unsigned fixed-point format")
	round := fs.String("round", "away", "rounding mode: away or even")
	overflow := fs.String("overflow", "error", "overflow policy: error or saturate")
	reference := fs.Bool("reference", true, "print the expected FFT output")
	backend := fs.String("backend", spectrum.BackendAlgoFFT.String(), "reference FFT backend: algofft, gonum or direct")
	emit := fs.String("emit", "bin", "output format: bin or c")
	readback := fs.String("readback", "", "hardware output words (hex, comma-separated) to check against the reference")
	tolerance := fs.Int64("tolerance", 1, "allowed readback difference in LSBs")
	debug := fs.Bool("debug", false, "log per-sample float and fixed-point values")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fftvec [flags]\n\n")
		fmt.Fprintf(stderr, "Prints fixed-point test vectors for the tail-stage FFT block.\n")
		fmt.Fprintf(stderr, "Without flags, prints the default 8-point vectors and expected output.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fftvec -emit c\n")
		fmt.Fprintf(stderr, "  fftvec -width 12 -frac 10 -overflow saturate\n")
		fmt.Fprintf(stderr, "  fftvec -readback 0,0,0,0,0,0,0,05A8FA58\n")
	}

	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := newLogger(stderr)

	rounding, err := fixedpoint.ParseRounding(*round)
	if err != nil {
		return err
	}
	policy, err := fixedpoint.ParseOverflow(*overflow)
	if err != nil {
		return err
	}
	fftBackend, err := spectrum.ParseBackend(*backend)
	if err != nil {
		return err
	}
	if *emit != "bin" && *emit != "c" {
		return fmt.Errorf("unknown output format %q", *emit)
	}
	if *readback != "" && !*reference {
		return errors.New("-readback needs the reference output; drop -reference=false")
	}

	cfg, err := testvec.NewConfig(
		testvec.WithSampleCount(*count),
		testvec.WithInputFreq(*freq),
		testvec.WithSampleFreq(*fsamp),
		testvec.WithFormat(fixedpoint.Format{Signed: !*unsigned, Width: *width, Frac: *frac}),
		testvec.WithRounding(rounding),
		testvec.WithOverflow(policy),
		testvec.WithBackend(fftBackend),
		testvec.WithReference(*reference),
		testvec.WithDebug(*debug),
	)
	if err != nil {
		return err
	}

	res, err := testvec.Generate(cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("vectors", len(res.Vectors)).
		Str("format", cfg.Format().String()).
		Msg("generated")

	var mismatches []testvec.Mismatch
	if *readback != "" {
		mismatches, err = compareReadback(cfg, res, *readback, *tolerance)
		if err != nil {
			return err
		}
	}

	if *emit == "c" {
		err = testvec.WriteC(stdout, res, "points")
	} else {
		err = testvec.WriteBinary(stdout, res)
	}
	if err != nil {
		return err
	}

	if *readback == "" {
		return nil
	}

	for _, m := range mismatches {
		logger.Warn().
			Int("bin", m.Index).
			Str("part", m.Part).
			Int64("got", m.Got).
			Int64("want", m.Want).
			Msg("readback mismatch")
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d readback component(s) outside ±%d LSB", len(mismatches), *tolerance)
	}

	logger.Info().Int("bins", len(res.Reference)).Msg("readback matches reference")
	return nil
}

// compareReadback runs before any output is written so malformed readback
// input fails the whole run.
func compareReadback(cfg testvec.Config, res *testvec.Result, raw string, tolerance int64) ([]testvec.Mismatch, error) {
	words, err := testvec.ParseWords(raw, cfg.Format())
	if err != nil {
		return nil, err
	}

	q, err := cfg.Quantizer()
	if err != nil {
		return nil, err
	}

	return testvec.CheckReadback(q, res.Reference, words, tolerance)
}
