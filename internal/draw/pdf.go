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

package draw

import (
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/streamlines"
)

// PDF writes the streamlines as a single-page PDF file. The page covers
// the domain, and one unit of the domain corresponds to one PDF point.
func PDF(w io.Writer, domain rect.Rect, lines [][]streamlines.Point, style Style) error {
	paper := &pdf.Rectangle{
		LLx: domain.LLx,
		LLy: domain.LLy,
		URx: domain.URx,
		URy: domain.URy,
	}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("PDF: %w", err)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(domain.LLx, domain.LLy, domain.URx-domain.LLx, domain.URy-domain.LLy)
	page.Fill()

	// Streamline coordinates grow downwards.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, domain.LLy + domain.URy})

	p := Polylines(lines)
	if len(p.Cmds) > 0 {
		page.SetStrokeColor(color.DeviceGray(min(max(style.Gray, 0), 1)))
		page.SetLineWidth(style.LineWidth)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)

		coordIdx := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				q := p.Coords[coordIdx]
				page.MoveTo(q.X, q.Y)
				coordIdx++
			case path.CmdLineTo:
				q := p.Coords[coordIdx]
				page.LineTo(q.X, q.Y)
				coordIdx++
			}
		}
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("PDF: %w", err)
	}
	return nil
}
