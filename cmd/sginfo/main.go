// Command sginfo prints 2D Savitzky-Golay kernels and their frequency
// response.
//
// Usage:
//
//	sginfo [flags]
//
// Examples:
//
//	sginfo -size 5x5 -hdeg 2 -vdeg 2
//	sginfo -size 7x5 -origin 0,0 -analyze
//	sginfo -size 5x1 -hdeg 2 -vdeg 0 -dx 1
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-scan/imgproc/savgol"
)

const component = "sginfo"

type options struct {
	size       image.Point
	origin     image.Point
	hasOrigin  bool
	horDegree  int
	vertDegree int
	dx, dy     int
	analyze    bool
	precision  int
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()

	origin := opts.origin
	if !opts.hasOrigin {
		origin = image.Pt(opts.size.X/2, opts.size.Y/2)
	}

	k, err := savgol.NewKernel(opts.size, origin, opts.horDegree, opts.vertDegree)
	if err != nil {
		log.Error().Err(err).Msg("building kernel")
		return 1
	}
	if opts.dx != 0 || opts.dy != 0 {
		k.RecalcDerivative(origin, opts.dx, opts.dy)
	}

	log.Debug().
		Int("terms", k.NumTerms()).
		Int("data_points", k.NumDataPoints()).
		Int("rotations", k.NumRotations()).
		Msg("kernel factorized")

	if err := printKernel(stdout, k, opts); err != nil {
		log.Error().Err(err).Msg("writing kernel")
		return 1
	}

	if opts.analyze {
		a, err := savgol.Analyze(k)
		if err != nil {
			log.Error().Err(err).Msg("analyzing kernel")
			return 1
		}
		if err := printAnalysis(stdout, a); err != nil {
			log.Error().Err(err).Msg("writing analysis")
			return 1
		}
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("sginfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	size := fs.String("size", "5x5", "kernel grid as WIDTHxHEIGHT")
	origin := fs.String("origin", "", "origin cell as X,Y (default: grid center)")
	fs.IntVar(&opts.horDegree, "hdeg", 2, "polynomial degree in x")
	fs.IntVar(&opts.vertDegree, "vdeg", 2, "polynomial degree in y")
	fs.IntVar(&opts.dx, "dx", 0, "derivative order in x")
	fs.IntVar(&opts.dy, "dy", 0, "derivative order in y")
	fs.BoolVar(&opts.analyze, "analyze", false, "print DC gain, noise gain and -3 dB bandwidths")
	fs.IntVar(&opts.precision, "precision", 4, "decimal places for weights")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: sginfo [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Prints the weights of a 2D Savitzky-Golay kernel.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  sginfo -size 5x5 -hdeg 2 -vdeg 2\n")
		_, _ = fmt.Fprintf(stderr, "  sginfo -size 7x5 -origin 0,0 -analyze\n")
		_, _ = fmt.Fprintf(stderr, "  sginfo -size 5x1 -hdeg 2 -vdeg 0 -dx 1\n")
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	var err error
	if opts.size, err = parsePair(*size, "x"); err != nil {
		return opts, fmt.Errorf("-size: %w", err)
	}
	if *origin != "" {
		if opts.origin, err = parsePair(*origin, ","); err != nil {
			return opts, fmt.Errorf("-origin: %w", err)
		}
		opts.hasOrigin = true
	}
	if opts.dx < 0 || opts.dy < 0 {
		return opts, fmt.Errorf("negative derivative order (%d, %d)", opts.dx, opts.dy)
	}
	if opts.precision < 0 {
		return opts, fmt.Errorf("negative precision %d", opts.precision)
	}
	return opts, nil
}

// parsePair parses "AsepB" into a point.
func parsePair(s, sep string) (image.Point, error) {
	a, b, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), sep)
	if !ok {
		return image.Point{}, fmt.Errorf("%q: want two integers separated by %q", s, sep)
	}
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return image.Point{}, fmt.Errorf("%q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return image.Point{}, fmt.Errorf("%q: %w", s, err)
	}
	return image.Pt(x, y), nil
}

func printKernel(w io.Writer, k *savgol.Kernel, opts options) error {
	size := k.Size()
	_, err := fmt.Fprintf(w, "%dx%d kernel, degree (%d, %d), origin %v",
		size.X, size.Y, k.HorDegree(), k.VertDegree(), k.Origin())
	if err != nil {
		return err
	}
	if opts.dx != 0 || opts.dy != 0 {
		if _, err := fmt.Fprintf(w, ", derivative (%d, %d)", opts.dx, opts.dy); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if _, err := fmt.Fprintf(tw, "%.*f\t", opts.precision, k.AtXY(x, y)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printAnalysis(w io.Writer, a savgol.Analysis) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value float64
	}{
		{"DC gain", a.DCGain},
		{"Noise gain", a.NoiseGain},
		{"Peak gain", a.PeakGain},
		{"BW 3dB x [cyc/px]", a.Bandwidth3dBX},
		{"BW 3dB y [cyc/px]", a.Bandwidth3dBY},
	}
	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%.6f\n", r.name, r.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}
