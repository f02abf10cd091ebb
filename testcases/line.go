package testcases

import "seehuhn.de/go/geom/rect"

var lineCases = []TestCase{
	{
		Name:        "diagonal",
		Equation:    eq(`["Equal", "y", "x"]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "horizontal",
		Equation:    eq(`["Equal", "y", 0.3]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "steep",
		Equation:    eq(`["Equal", "y", ["Add", ["Multiply", 3, "x"], 1]]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "offset_window",
		Equation:    eq(`["Equal", ["Add", "x", "y"], 200]`),
		Window:      rect.Rect{LLx: 95, LLy: 95, URx: 105, URy: 105},
		Depth:       6,
		SearchDepth: 3,
	},
}
