package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/heistp/ministats/geom"
	"github.com/heistp/ministats/hexcolor"
	"github.com/heistp/ministats/level"
	"github.com/heistp/ministats/pretty"
	"github.com/heistp/ministats/rate"
	"github.com/heistp/ministats/unit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
)

func newSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size BYTES...",
		Short: "Print byte quantities as readable sizes",
		Example: `  ministats size 1536 1073741824
  ministats size "1.5 MB"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				b, err := unit.Parse(arg)
				if err != nil {
					return err
				}
				a.log.Debug("size", zap.Int64("bytes", int64(b)))
				fmt.Fprintln(a.out, b.Size())
			}
			return nil
		},
	}
}

func newRateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rate BYTES...",
		Short: "Print bytes per second as readable rates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				b, err := unit.Parse(arg)
				if err != nil {
					return err
				}
				r := rate.Rate(b)
				a.log.Debug("rate", zap.Int64("bytes", int64(b)))
				fmt.Fprintln(a.out, r)
			}
			return nil
		},
	}
}

func newLevelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "level",
		Short: "Classify a ratio into a display level",
	}

	usage := &cobra.Command{
		Use:   "usage RATIO",
		Short: "Level for a usage ratio, e.g. 0.75 or 75%",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := level.ParseRatio(args[0])
			if err != nil {
				return err
			}
			return a.printLevel(level.Usage(r, a.v.GetBool("reversed"),
				a.v.GetBool("color")))
		},
	}
	usage.Flags().Bool("reversed", false, "high ratios are good")

	battery := &cobra.Command{
		Use:   "battery RATIO",
		Short: "Level for a battery charge ratio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := level.ParseRatio(args[0])
			if err != nil {
				return err
			}
			return a.printLevel(level.Battery(r, a.v.GetBool("color")))
		},
	}

	cmd.AddCommand(usage, battery)
	return cmd
}

func (a *app) printLevel(l level.Level) error {
	style, err := a.style()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, style(l, l.String()))
	return nil
}

func newHexCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex COLOR",
		Short: "Normalize a hex color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := hexcolor.Parse(args[0], a.v.GetFloat64("alpha"))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s\t%s %s %s %s\n", c.Hex(),
				pretty.Float64(c.R, 3), pretty.Float64(c.G, 3),
				pretty.Float64(c.B, 3), pretty.Float64(c.Alpha, 3))
			return nil
		},
	}
	cmd.Flags().Float64("alpha", 1, "alpha channel")
	return cmd
}

func newArrowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arrow X1 Y1 X2 Y2",
		Short: "Print the path of an arrow from (X1, Y1) to (X2, Y2)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p [4]float64
			for i, s := range args {
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return errors.Wrapf(err, "coordinate %q", s)
				}
				p[i] = f
			}
			angle := a.v.GetFloat64("angle") * math.Pi / 180
			path := geom.Arrow(r2.Vec{X: p[0], Y: p[1]}, r2.Vec{X: p[2], Y: p[3]},
				a.v.GetFloat64("length"), angle)
			for _, op := range path {
				fmt.Fprintf(a.out, "%s %s %s\n", op.Kind,
					pretty.Float64(op.To.X, 3), pretty.Float64(op.To.Y, 3))
			}
			return nil
		},
	}
	cmd.Flags().Float64("length", 4, "length of the head strokes")
	cmd.Flags().Float64("angle", 30, "angle of the head strokes in degrees")
	return cmd
}

func newCondenseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "condense [TEXT...]",
		Short: "Collapse whitespace in text, read from stdin if no args",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprintln(a.out, pretty.CondenseWhitespace(
					strings.Join(args, " ")))
				return nil
			}
			return condenseLines(a.in, a.out)
		},
	}
}

// condenseLines condenses each line of r.
func condenseLines(r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		fmt.Fprintln(w, pretty.CondenseWhitespace(s.Text()))
	}
	return errors.Wrap(s.Err(), "reading input")
}
