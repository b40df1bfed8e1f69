// Command vecadd adds two 4-element float32 vectors and prints the result,
// one element per line in index order.
//
// Usage:
//
//	vecadd [flags]
//
// Examples:
//
//	vecadd
//	vecadd -a 0.5,1,1.5,2 -b 1,1,1,1
//	vecadd -impl generic
//	vecadd -aligned -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-simdvec/vec"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vecadd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	a := fs.String("a", "1,2,3,4", "first operand, four comma-separated numbers")
	b := fs.String("b", "5,6,7,8", "second operand, four comma-separated numbers")
	impl := fs.String("impl", "simd", "vector implementation: simd or generic")
	aligned := fs.Bool("aligned", false, "use the 16-byte aligned load/store forms (simd only)")
	verbose := fs.Bool("v", false, "log the selected backend to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vecadd [flags]\n\n")
		fmt.Fprintf(stderr, "Adds two 4-element float32 vectors and prints the sum, one element per line.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	lhs, err := parseOperand(*a)
	if err != nil {
		logger.Error().Err(err).Str("flag", "a").Msg("invalid operand")
		return exitError
	}
	rhs, err := parseOperand(*b)
	if err != nil {
		logger.Error().Err(err).Str("flag", "b").Msg("invalid operand")
		return exitError
	}

	if *impl != "simd" && *impl != "generic" {
		logger.Error().Str("impl", *impl).Msg("unknown implementation (want simd or generic)")
		return exitError
	}
	if *impl == "generic" && *aligned {
		logger.Warn().Msg("-aligned has no effect with -impl generic")
	}

	info := vec.Backend()
	logger.Debug().
		Str("impl", *impl).
		Bool("aligned", *aligned).
		Str("kernel", info.Kernel).
		Str("simd_level", info.SIMDLevel.String()).
		Str("arch", info.Features.Architecture).
		Bool("supported", info.Supported).
		Msg("backend")

	var sum []float32
	switch *impl {
	case "simd":
		sum, err = addSIMD(lhs, rhs, *aligned)
	case "generic":
		sum, err = addGeneric(lhs, rhs)
	}
	if err != nil {
		logger.Error().Err(err).Msg("add failed")
		return exitError
	}

	for _, c := range sum {
		if _, err := fmt.Fprintln(stdout, c); err != nil {
			logger.Error().Err(err).Msg("write failed")
			return exitError
		}
	}
	return exitOK
}

func parseOperand(s string) ([]float32, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return nil, fmt.Errorf("want 4 elements, got %d in %q", len(fields), s)
	}
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func addSIMD(lhs, rhs []float32, aligned bool) ([]float32, error) {
	load := vec.LoadFloat32x4
	out := make([]float32, 4)
	if aligned {
		load = vec.LoadFloat32x4Aligned
		lhs = copyAligned(lhs)
		rhs = copyAligned(rhs)
		out = vec.AlignedFloat32s(4)
	}

	a, err := load(lhs)
	if err != nil {
		return nil, err
	}
	b, err := load(rhs)
	if err != nil {
		return nil, err
	}
	a.Add(b)

	if aligned {
		err = a.StoreAligned(out)
	} else {
		err = a.Store(out)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func addGeneric(lhs, rhs []float32) ([]float32, error) {
	a, err := vec.Load[[4]float32](lhs)
	if err != nil {
		return nil, err
	}
	b, err := vec.Load[[4]float32](rhs)
	if err != nil {
		return nil, err
	}
	a.Add(b)

	out := make([]float32, 4)
	if err := a.Store(out); err != nil {
		return nil, err
	}
	return out, nil
}

func copyAligned(src []float32) []float32 {
	dst := vec.AlignedFloat32s(len(src))
	copy(dst, src)
	return dst
}
