package testcases

var trigCases = []TestCase{
	{
		Name:        "wave",
		Equation:    eq(`["Equal", "y", ["Multiply", 3, ["Sin", "x"]]]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "egg_crate",
		Equation:    eq(`["Equal", ["Add", ["Sin", "x"], ["Sin", "y"]], 0.5]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name:        "grid",
		Equation:    eq(`["Equal", ["Multiply", ["Sin", "x"], ["Cos", "y"]], 0]`),
		Window:      square(10),
		Depth:       defaultDepth,
		SearchDepth: defaultSearchDepth,
	},
	{
		Name: "spiral",
		Equation: eq(`["Equal",
			["Sin", ["Subtract", ["Sqrt", ["Add", ["Square", "x"], ["Square", "y"]]], ["Arctan", ["Divide", "y", "x"]]]],
			0]`),
		Window:      square(10),
		Depth:       8,
		SearchDepth: 5,
	},
}
