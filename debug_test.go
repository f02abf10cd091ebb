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

package implicit

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// writeContourImage draws contours into debug/<name>.png, for visual
// inspection of failed tests. Contour vertices are marked with small
// squares.
func writeContourImage(name string, window rect.Rect, cs []Contour) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	const size = 512
	sx := size / (window.URx - window.LLx)
	sy := size / (window.URy - window.LLy)
	m := matrix.Matrix{sx, 0, 0, -sy, -window.LLx * sx, window.URy * sy}
	dev := func(p vec.Vec2) (float32, float32) {
		x, y := m.Apply(p.X, p.Y)
		return float32(x), float32(y)
	}

	r := vector.NewRasterizer(size, size)
	for _, c := range cs {
		for i := 1; i < len(c); i++ {
			x0, y0 := dev(c[i-1])
			x1, y1 := dev(c[i])
			addLine(r, x0, y0, x1, y1, 0.75)
		}
		for _, p := range c {
			x, y := dev(p)
			addLine(r, x-1.5, y, x+1.5, y, 1.5)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	r.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 160, A: 255}), image.Point{})

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// addLine adds the outline of a line of half-width w to r.
func addLine(r *vector.Rasterizer, x0, y0, x1, y1, w float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*w, dx/l*w
	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}
