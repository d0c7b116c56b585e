// seehuhn.de/go/streamlines - evenly-spaced streamlines for 2D vector fields
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"seehuhn.de/go/streamlines"
	"seehuhn.de/go/streamlines/internal/draw"
	"seehuhn.de/go/streamlines/testcases"
)

type renderOpts struct {
	runFile  string  // TOML run file, used instead of a scenario name
	output   string  // output file, .png or .pdf
	maskOut  string  // optional PNG file for the final start mask
	seed     uint64  // seed for the random source
	width    float64 // line width in pixels
	gray     float64 // line colour
	stepSize float64 // integration step length
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		seed:     1,
		width:    draw.DefaultStyle().LineWidth,
		stepSize: streamlines.DefaultConfig().StepLength,
	}

	cmd := &cobra.Command{
		Use:   "render [scenario]",
		Short: "Generate streamlines for one scenario and write them to a file",
		Long: `Generate streamlines for a built-in scenario, or for the scenario
described by a TOML run file given with --config, and write them as a
PNG or PDF image. Use "streamlines list" to see the built-in scenarios.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tc testcases.TestCase
			var name string
			switch {
			case opts.runFile != "" && len(args) > 0:
				return errors.New("cannot use both a scenario and --config")
			case opts.runFile != "":
				var err error
				tc, err = loadRunFile(opts.runFile)
				if err != nil {
					return err
				}
				name = tc.Name
			case len(args) == 1:
				var ok bool
				tc, ok = testcases.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown scenario %q", args[0])
				}
				name = args[0]
			default:
				return errors.New("need a scenario name or --config")
			}

			if opts.output == "" {
				opts.output = name + ".png"
			}
			if _, err := outputFormat(opts.output); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runRender(ctx, tc, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.runFile, "config", "c", "", "TOML run file describing the scenario")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, .png or .pdf (default <scenario>.png)")
	cmd.Flags().StringVar(&opts.maskOut, "mask-out", "", "also write the final start mask to this PNG file")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "seed for the random number generator")
	cmd.Flags().Float64Var(&opts.width, "line-width", opts.width, "line width in pixels")
	cmd.Flags().Float64Var(&opts.gray, "gray", 0, "line colour, from 0 (black) to 1 (white)")
	cmd.Flags().Float64Var(&opts.stepSize, "step", opts.stepSize, "integration step length in pixels")

	return cmd
}

func runRender(ctx context.Context, tc testcases.TestCase, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg := tc.Config(opts.seed)
	cfg.StepLength = opts.stepSize

	lines, g, err := generate(ctx, cfg)
	if err != nil {
		logger.Warn("generation failed", "streamlines", len(lines))
		return err
	}
	prog.done("generated streamlines", "count", len(lines))

	style := draw.Style{LineWidth: opts.width, Gray: opts.gray}
	if err := writeLines(opts.output, g.Bounds(), lines, style); err != nil {
		return err
	}
	logger.Info("wrote image", "file", opts.output)

	if opts.maskOut != "" {
		if err := writeMask(opts.maskOut, g.StartMask()); err != nil {
			return err
		}
		logger.Info("wrote mask", "file", opts.maskOut)
	}
	return nil
}
