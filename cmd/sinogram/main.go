// seehuhn.de/go/xray - exact ray projections through pixel grids
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

// Command sinogram simulates a parallel-beam scan of the Shepp–Logan
// phantom and writes the phantom and its sinogram as images.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/xray"
	"seehuhn.de/go/xray/phantom"
	"seehuhn.de/go/xray/plot"
	"seehuhn.de/go/xray/scan"
)

type options struct {
	size      int
	angles    int
	detectors int
	scale     float64
	phantom   string
	verbose   bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sinogram [output]",
		Short: "scan the Shepp–Logan phantom",
		Long: `
  Rasterises the Shepp–Logan phantom on a square grid, projects it along
  the beams of a parallel-beam scan and writes the sinogram as a PNG or
  PDF file. Angles run along the x axis of the image, detector bins
  along the y axis.
`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := "sinogram.png"
			if len(args) > 0 {
				out = args[0]
			}
			return run(opts, out)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.size, "size", 256, "number of grid cells along each axis")
	flags.IntVar(&opts.angles, "angles", 180, "number of projection angles")
	flags.IntVar(&opts.detectors, "detectors", 0, "number of detector bins (default: grid diagonal)")
	flags.Float64Var(&opts.scale, "scale", 2, "pixels per grid cell in the output")
	flags.StringVar(&opts.phantom, "phantom", "", "also write the phantom to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress details")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options, out string) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	xray.SetLogger(logger)

	if opts.size <= 0 {
		return errors.New("--size must be positive")
	}
	if !(opts.scale > 0) {
		return errors.New("--scale must be positive")
	}
	detectors := opts.detectors
	if detectors <= 0 {
		detectors = int(math.Ceil(math.Sqrt2 * float64(opts.size)))
	}

	start := time.Now()
	g, err := phantom.SheppLogan(opts.size)
	if err != nil {
		return err
	}
	logger.Info("phantom rasterised", "size", opts.size, "elapsed", time.Since(start))

	if opts.phantom != "" {
		if err := write(plot.ForGrid(g, opts.scale), opts.phantom); err != nil {
			return err
		}
	}

	start = time.Now()
	s := scan.Parallel{
		Rows:      opts.size,
		Cols:      opts.size,
		Angles:    opts.angles,
		Detectors: detectors,
	}
	sino, err := s.Sinogram(g)
	if err != nil {
		return err
	}
	logger.Info("sinogram computed",
		"angles", s.Angles, "detectors", s.Detectors, "elapsed", time.Since(start))

	return write(plot.ForGrid(sino, opts.scale), out)
}

// write stores the figure as PDF or PNG, depending on the file name.
func write(fig *plot.Figure, fname string) error {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".pdf":
		return fig.WritePDF(fname)
	case ".png":
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		if err := fig.WritePNG(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("%s: unsupported output format", fname)
	}
}
