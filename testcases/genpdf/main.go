// seehuhn.de/go/implicit - contour lines of implicit equations
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

// Command genpdf draws the contours of all test scenarios into PDF files,
// for visual inspection.  The PDFs are rendered to PNGs using Ghostscript.
package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/implicit"
	"seehuhn.de/go/implicit/testcases"
)

const (
	refDir   = "testdata/reference"
	pageSize = 512
)

func main() {
	modeName := flag.String("mode", "dual", "contouring mode, \"dual\" or \"ms\"")
	noPNG := flag.Bool("nopng", false, "skip the Ghostscript rendering step")
	flag.Parse()

	mode := implicit.ModeDual
	switch *modeName {
	case "dual":
	case "ms":
		mode = implicit.ModeMarchingSquares
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *modeName)
		os.Exit(1)
	}

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, mode, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, mode implicit.Mode, pdfPath string) error {
	cs, err := implicit.ComputeContours(context.Background(), implicit.Request{
		Equation:    tc.Equation,
		Window:      tc.Window,
		Depth:       tc.Depth,
		SearchDepth: tc.SearchDepth,
		Mode:        mode,
	})
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{URx: pageSize, URy: pageSize}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, pageSize, pageSize)
	page.Fill()

	// Map the window onto the page.  Both use a y-axis pointing up.
	w := tc.Window
	sx := pageSize / (w.URx - w.LLx)
	sy := pageSize / (w.URy - w.LLy)
	page.Transform(matrix.Matrix{sx, 0, 0, sy, -w.LLx * sx, -w.LLy * sy})

	// axes
	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(0.5 / sx)
	axes := false
	if w.LLx < 0 && w.URx > 0 {
		page.MoveTo(0, w.LLy)
		page.LineTo(0, w.URy)
		axes = true
	}
	if w.LLy < 0 && w.URy > 0 {
		page.MoveTo(w.LLx, 0)
		page.LineTo(w.URx, 0)
		axes = true
	}
	if axes {
		page.Stroke()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1.5 / sx)
	drawn := false
	for _, c := range cs {
		if len(c) < 2 {
			continue
		}
		drawn = true
		for cmd, pts := range c.Path().Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}
	if drawn {
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: one point per pixel
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
