package implicit

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/implicit/expr"
	"seehuhn.de/go/implicit/testcases"
)

// TestScenarios checks general properties of the contours of all test
// scenarios, in both modes.
func TestScenarios(t *testing.T) {
	modes := []Mode{ModeDual, ModeMarchingSquares}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			for _, mode := range modes {
				name := category + "_" + tc.Name + "_" + strings.ReplaceAll(mode.String(), " ", "_")
				t.Run(name, func(t *testing.T) {
					cs, err := ComputeContours(context.Background(), Request{
						Equation:    tc.Equation,
						Window:      tc.Window,
						Depth:       tc.Depth,
						SearchDepth: tc.SearchDepth,
						Mode:        mode,
					})
					if err != nil {
						t.Fatal(err)
					}
					if err := checkContours(cs, tc); err != nil {
						_ = writeContourImage(name, tc.Window, cs)
						t.Error(err)
					}
				})
			}
		}
	}
}

func checkContours(cs []Contour, tc testcases.TestCase) error {
	w := tc.Window
	for i, c := range cs {
		if len(c) < 2 {
			return fmt.Errorf("contour %d has %d points", i, len(c))
		}
		for j, p := range c {
			if p.X < w.LLx || p.X > w.URx || p.Y < w.LLy || p.Y > w.URy {
				return fmt.Errorf("contour %d: point %v outside window", i, p)
			}
			if j > 0 && p == c[j-1] {
				return fmt.Errorf("contour %d: point %d = %v repeated", i, j, p)
			}
		}
	}
	return nil
}

// TestScenarioMergeIdempotent checks that merging the contours of each
// tree a second time finds nothing more to join.
func TestScenarioMergeIdempotent(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				set, err := expr.EquationToGraphableSet(tc.Equation)
				if err != nil {
					t.Fatal(err)
				}
				for _, g := range set.Include {
					f, err := expr.NewField(g.Expr)
					if err != nil {
						t.Fatal(err)
					}
					root := BuildTree(f, tc.Window, tc.Depth, tc.SearchDepth)
					for _, cs := range [][]Contour{DualContours(f, root), MarchingSquaresContours(root)} {
						again := MergeContours(cs)
						if !sameContours(cs, again) {
							t.Errorf("%s: second merge changed %d contours into %d", g.Expr, len(cs), len(again))
						}
					}
				}
			})
		}
	}
}

func TestEmptyScenario(t *testing.T) {
	// x² + y² + 1 = 0 has no real solutions
	eq := expr.MustParse(`["Equal", ["Add", ["Square", "x"], ["Square", "y"], 1], 0]`)
	set, err := expr.EquationToGraphableSet(eq)
	if err != nil {
		t.Fatal(err)
	}
	f, err := expr.NewField(set.Include[0].Expr)
	if err != nil {
		t.Fatal(err)
	}
	root := BuildTree(f, window10, 7, 4)
	for range root.Leaves() {
		t.Fatal("unexpected leaf")
	}
	buf, err := ComputeFlatContours(context.Background(), eq, window10, 7, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 0 {
		t.Errorf("expected empty buffer, got %d values", len(buf))
	}
}
