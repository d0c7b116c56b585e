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
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	// additional formats for density images
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/streamlines"
	"seehuhn.de/go/streamlines/field"
	"seehuhn.de/go/streamlines/testcases"
)

// runFile is the contents of a TOML run file.
//
// Example:
//
//	name = "swirl"
//	width = 400
//	height = 300
//	min_start_dist = 6
//
//	[field]
//	kind = "noise_angle"
//	scale = 2.2
//	turns = 6
//
//	[density]
//	kind = "image"
//	image = "photo.jpg"
//	power = 1.5
type runFile struct {
	Name             string      `toml:"name"`
	Width            int         `toml:"width"`
	Height           int         `toml:"height"`
	MinStartDist     float64     `toml:"min_start_dist"`
	MaxStartDist     float64     `toml:"max_start_dist"`
	EndRatio         float64     `toml:"end_ratio"`
	MinPointsPerLine int         `toml:"min_points_per_line"`
	Start            *startSpec  `toml:"start"`
	Field            fieldSpec   `toml:"field"`
	Density          densitySpec `toml:"density"`
}

type startSpec struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

type fieldSpec struct {
	Kind string `toml:"kind"` // uniform, vortex, saddle, noise_angle, noise_vector

	DX float64 `toml:"dx"`
	DY float64 `toml:"dy"`

	// Centre for vortex and saddle fields. Defaults to the domain centre.
	CX *float64 `toml:"cx"`
	CY *float64 `toml:"cy"`

	Scale     float64 `toml:"scale"`
	Turns     float64 `toml:"turns"`
	NoiseSeed uint64  `toml:"noise_seed"`
}

type densitySpec struct {
	Kind  string  `toml:"kind"` // constant, radial, image
	Value float64 `toml:"value"`
	Image string  `toml:"image"`
	Power float64 `toml:"power"`
}

var errRunFile = errors.New("invalid run file")

// loadRunFile reads a TOML run file and converts it into a scenario.
// Image paths are interpreted relative to the directory of the run file.
func loadRunFile(fname string) (testcases.TestCase, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return testcases.TestCase{}, err
	}
	rf, err := parseRunFile(data)
	if err != nil {
		return testcases.TestCase{}, fmt.Errorf("%s: %w", fname, err)
	}
	tc, err := rf.testCase(filepath.Dir(fname))
	if err != nil {
		return testcases.TestCase{}, fmt.Errorf("%s: %w", fname, err)
	}
	return tc, nil
}

func parseRunFile(data []byte) (*runFile, error) {
	rf := &runFile{
		Name:   "custom",
		Width:  400,
		Height: 300,
	}
	md, err := toml.Decode(string(data), rf)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", errRunFile, undecoded[0].String())
	}
	return rf, nil
}

func (rf *runFile) testCase(dir string) (testcases.TestCase, error) {
	if rf.Width <= 0 || rf.Height <= 0 {
		return testcases.TestCase{}, fmt.Errorf("%w: size %dx%d", errRunFile, rf.Width, rf.Height)
	}
	tc := testcases.TestCase{
		Name:             rf.Name,
		Width:            rf.Width,
		Height:           rf.Height,
		MinStartDist:     rf.MinStartDist,
		MaxStartDist:     rf.MaxStartDist,
		EndRatio:         rf.EndRatio,
		MinPointsPerLine: rf.MinPointsPerLine,
	}
	if rf.Start != nil {
		p := streamlines.Pt(rf.Start.X, rf.Start.Y)
		tc.Seed = &p
	}

	var err error
	tc.Field, err = rf.Field.build(float64(rf.Width), float64(rf.Height))
	if err != nil {
		return testcases.TestCase{}, err
	}
	tc.Density, err = rf.Density.build(float64(rf.Width), float64(rf.Height), dir)
	if err != nil {
		return testcases.TestCase{}, err
	}
	return tc, nil
}

func (fs *fieldSpec) build(width, height float64) (streamlines.Field, error) {
	cx, cy := width/2, height/2
	if fs.CX != nil {
		cx = *fs.CX
	}
	if fs.CY != nil {
		cy = *fs.CY
	}
	scale := fs.Scale
	if scale == 0 {
		scale = 2.2
	}
	turns := fs.Turns
	if turns == 0 {
		turns = 1
	}

	switch fs.Kind {
	case "uniform":
		if fs.DX == 0 && fs.DY == 0 {
			return field.Uniform(1, 0), nil
		}
		return field.Uniform(fs.DX, fs.DY), nil
	case "vortex":
		return field.Vortex(cx, cy), nil
	case "saddle":
		return field.Saddle(cx, cy), nil
	case "noise_angle", "":
		return field.NoiseAngle(field.NewPerlin(fs.NoiseSeed), width, height, scale, turns), nil
	case "noise_vector":
		return field.NoiseVector(field.NewPerlin(fs.NoiseSeed), width, height, scale), nil
	default:
		return nil, fmt.Errorf("%w: unknown field kind %q", errRunFile, fs.Kind)
	}
}

func (ds *densitySpec) build(width, height float64, dir string) (streamlines.Density, error) {
	switch ds.Kind {
	case "constant", "":
		if ds.Value < 0 || ds.Value > 1 {
			return nil, fmt.Errorf("%w: density value %g not in [0, 1]", errRunFile, ds.Value)
		}
		return field.Constant(ds.Value), nil
	case "radial":
		return field.Radial(width, height), nil
	case "image":
		if ds.Image == "" {
			return nil, fmt.Errorf("%w: image density without image file", errRunFile)
		}
		fname := ds.Image
		if !filepath.IsAbs(fname) {
			fname = filepath.Join(dir, fname)
		}
		img, err := loadImage(fname)
		if err != nil {
			return nil, err
		}
		power := ds.Power
		if power == 0 {
			power = 1
		}
		// stretch the image over the whole domain
		d := field.Image(img, power)
		b := img.Bounds()
		sx, sy := float64(b.Dx())/width, float64(b.Dy())/height
		return func(p streamlines.Point) float64 {
			return d(streamlines.Pt(p.X*sx, p.Y*sy))
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown density kind %q", errRunFile, ds.Kind)
	}
}

func loadImage(fname string) (image.Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}
