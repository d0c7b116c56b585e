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
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/streamlines"
	"seehuhn.de/go/streamlines/internal/draw"
	"seehuhn.de/go/streamlines/mask"
)

var errFormat = errors.New("unsupported output format")

// outputFormat returns the image format implied by the file name.
func outputFormat(fname string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	switch ext {
	case ".png", ".pdf":
		return ext[1:], nil
	default:
		return "", fmt.Errorf("%w: %q", errFormat, ext)
	}
}

// writeLines writes the streamlines to a PNG or PDF file, depending on the
// file name extension.
func writeLines(fname string, domain rect.Rect, lines [][]streamlines.Point, style draw.Style) (err error) {
	format, err := outputFormat(fname)
	if err != nil {
		return err
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case "pdf":
		return draw.PDF(fd, domain, lines, style)
	default:
		return draw.PNG(fd, domain, lines, style)
	}
}

// writeMask writes an exclusion mask as a PNG file.
func writeMask(fname string, m *mask.Mask) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return draw.MaskPNG(fd, m)
}
