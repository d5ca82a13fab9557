// Command splinetool inspects and transforms spline files.
//
// Splines are read and written in the text format of [gcurve.Spline.Save],
// or as YAML when the file name ends in .yaml or .yml.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/gcurve"
)

var errEmptySpline = errors.New("spline has no segments")

type options struct {
	verbose  bool
	manifold string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "splinetool",
		Short: "Inspect and transform cubic spline files",
		Long: `splinetool evaluates, bounds, subdivides and converts splines of cubic
Bézier segments.

Files ending in .yaml or .yml are read and written as YAML; all other files
use the line-based text format.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			gcurve.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.manifold, "manifold", "m", "none", "Configuration space of the spline: none, cartesian or torus")

	root.AddCommand(newEvalCmd(opts))
	root.AddCommand(newBoundsCmd(opts))
	root.AddCommand(newBisectCmd(opts))
	root.AddCommand(newConvertCmd(opts))
	return root
}

func newEvalCmd(opts *options) *cobra.Command {
	var samples int
	var at float64
	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Print position and velocity along a spline",
		Long: `Prints one line per sample: the time, the position and the velocity with
respect to time, separated by tabs.

By default the spline's domain is sampled evenly; --at evaluates a single
time instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSpline(args[0])
			if err != nil {
				return err
			}
			if len(s.Segments) == 0 {
				return fmt.Errorf("%s: %w", args[0], errEmptySpline)
			}
			if err := checkDurations(args[0], s); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("at") {
				if math.IsNaN(at) {
					return errors.New("--at must be a number")
				}
				fmt.Fprintf(out, "%g\t%v\t%v\n", at, s.Eval(at), s.Deriv(at))
				return nil
			}
			if samples < 1 {
				return fmt.Errorf("--samples must be positive, got %d", samples)
			}
			for t, p := range s.Samples(samples) {
				fmt.Fprintf(out, "%g\t%v\t%v\n", t, p, s.Deriv(t))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&samples, "samples", "n", 10, "Number of intervals to sample")
	cmd.Flags().Float64Var(&at, "at", 0, "Evaluate at a single time")
	cmd.MarkFlagsMutuallyExclusive("samples", "at")
	return cmd
}

func newBoundsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds FILE",
		Short: "Print per-segment bounds on position, velocity and acceleration",
		Long: `Prints, for every segment, the bounding box of its control points and
bounds on its velocity and acceleration with respect to time, followed by the
spline's duration and the length of its control polygons.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSpline(args[0])
			if err != nil {
				return err
			}
			if err := checkDurations(args[0], s); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var length float64
			for i, c := range s.Segments {
				// Curve derivatives are with respect to the segment parameter.
				k := float64(len(s.Segments))
				if len(s.Durations) != 0 {
					k = 1 / s.Durations[i]
				}
				vel, acc := c.DerivBounds()
				fmt.Fprintf(out, "segment %d\tposition %v\tvelocity %v\tacceleration %v\n",
					i, c.BoundingBox(), scaleBox(vel, k), scaleBox(acc, k*k))
				length += c.OuterLength()
			}
			_, end := s.Domain()
			fmt.Fprintf(out, "duration %g\n", end)
			fmt.Fprintf(out, "outer length %g\n", length)
			return nil
		},
	}
}

func scaleBox(b gcurve.Box, k float64) gcurve.Box {
	return gcurve.Box{Min: b.Min.Mul(k), Max: b.Max.Mul(k)}
}

func newBisectCmd(opts *options) *cobra.Command {
	var output string
	var times int
	cmd := &cobra.Command{
		Use:   "bisect FILE",
		Short: "Split every segment in two, keeping the path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if times < 0 {
				return fmt.Errorf("--times must not be negative, got %d", times)
			}
			s, err := opts.loadSpline(args[0])
			if err != nil {
				return err
			}
			for range times {
				s.Bisect()
			}
			opts.logger.Info("bisected spline",
				zap.String("input", args[0]),
				zap.Int("times", times),
				zap.Int("segments", len(s.Segments)))
			return opts.saveSpline(output, s)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (required)")
	cmd.Flags().IntVarP(&times, "times", "k", 1, "Number of times to bisect")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newConvertCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert between the text and YAML formats",
		Long: `Reads a spline and writes it to the output file. The formats of both
files are chosen by their extensions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSpline(args[0])
			if err != nil {
				return err
			}
			return opts.saveSpline(output, s)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (required)")
	cmd.MarkFlagRequired("output")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
