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
	"fmt"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/streamlines"
	"seehuhn.de/go/streamlines/internal/draw"
	"seehuhn.de/go/streamlines/testcases"
)

type batchOpts struct {
	outDir string
	format string
	jobs   int
	seed   uint64
	width  float64
	masks  bool
}

func newBatchCmd() *cobra.Command {
	opts := batchOpts{
		outDir: "out",
		format: "png",
		jobs:   runtime.NumCPU(),
		seed:   1,
		width:  draw.DefaultStyle().LineWidth,
	}

	cmd := &cobra.Command{
		Use:   "batch [category...]",
		Short: "Render all built-in scenarios concurrently",
		Long: `Render all built-in scenarios, or all scenarios in the given
categories, into an output directory. One file is written per scenario,
named after the scenario.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := outputFormat("x." + opts.format); err != nil {
				return err
			}
			names, err := selectScenarios(args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runBatch(ctx, names, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "output-dir", "o", opts.outDir, "output directory")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png or pdf")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "number of scenarios rendered in parallel")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "seed for the random number generator")
	cmd.Flags().Float64Var(&opts.width, "line-width", opts.width, "line width in pixels")
	cmd.Flags().BoolVar(&opts.masks, "masks", false, "also write the final start masks")

	return cmd
}

// selectScenarios returns the full names of all scenarios in the given
// categories, or of all scenarios if no category is given.
func selectScenarios(categories []string) ([]string, error) {
	if len(categories) == 0 {
		return testcases.Names(), nil
	}
	var names []string
	for _, category := range categories {
		cases, ok := testcases.All[category]
		if !ok {
			known := slices.Sorted(maps.Keys(testcases.All))
			return nil, fmt.Errorf("unknown category %q (known: %v)", category, known)
		}
		for _, tc := range cases {
			names = append(names, category+"_"+tc.Name)
		}
	}
	return names, nil
}

func runBatch(ctx context.Context, names []string, opts *batchOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	style := draw.Style{LineWidth: opts.width}
	eg, ctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		eg.SetLimit(opts.jobs)
	}
	for _, name := range names {
		eg.Go(func() error {
			tc, _ := testcases.Lookup(name)
			lines, g, err := generate(ctx, tc.Config(opts.seed))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			fname := filepath.Join(opts.outDir, name+"."+opts.format)
			if err := writeLines(fname, g.Bounds(), lines, style); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if opts.masks {
				mname := filepath.Join(opts.outDir, name+"_mask.png")
				if err := writeMask(mname, g.StartMask()); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			logger.Debug("rendered scenario", "name", name, "streamlines", len(lines))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	prog.done("rendered scenarios", "count", len(names), "dir", opts.outDir)
	return nil
}

// generate runs a generator for cfg to completion. The generator is
// returned as well, so that the caller can inspect its masks.
func generate(ctx context.Context, cfg streamlines.Config) ([][]streamlines.Point, *streamlines.Generator, error) {
	var lines [][]streamlines.Point
	cfg.OnStreamlineAdded = func(points []streamlines.Point) {
		lines = append(lines, points)
	}
	g, err := streamlines.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := g.Run(ctx); err != nil {
		return lines, g, err
	}
	return lines, g, nil
}
