// Command export writes the test scenarios, together with the contours
// computed for them, to JSON.
// Run from the module root directory.
package main

import (
	"context"
	"encoding/json"
	"maps"
	"os"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/implicit"
	"seehuhn.de/go/implicit/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name        string          `json:"name"`
	Equation    json.RawMessage `json:"equation"`
	Window      [4]float64      `json:"window"`
	Depth       int             `json:"depth"`
	SearchDepth int             `json:"search_depth"`
	Contours    []jsonContour   `json:"contours"`
}

type jsonContour struct {
	Mode string        `json:"mode"`
	Path []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	eq := tc.Equation.String()
	if !json.Valid([]byte(eq)) {
		// a bare symbol
		eq = strconv.Quote(eq)
	}
	w := tc.Window
	jtc := jsonTestCase{
		Name:        category + "_" + tc.Name,
		Equation:    json.RawMessage(eq),
		Window:      [4]float64{w.LLx, w.LLy, w.URx, w.URy},
		Depth:       tc.Depth,
		SearchDepth: tc.SearchDepth,
	}

	for _, mode := range []implicit.Mode{implicit.ModeDual, implicit.ModeMarchingSquares} {
		cs, err := implicit.ComputeContours(context.Background(), implicit.Request{
			Equation:    tc.Equation,
			Window:      tc.Window,
			Depth:       tc.Depth,
			SearchDepth: tc.SearchDepth,
			Mode:        mode,
		})
		if err != nil {
			panic(err)
		}
		for _, c := range cs {
			jtc.Contours = append(jtc.Contours, jsonContour{
				Mode: mode.String(),
				Path: pathToJSON(c.Path().Iter()),
			})
		}
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
