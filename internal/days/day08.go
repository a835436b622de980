package days

import (
	"fmt"

	"aoc2025/internal/circuit"
	"aoc2025/internal/puzzle"
)

func day08(opts Options) puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   8,
		Title: "Playground",
		Part1: func(input string) (any, error) {
			return day08Part1(input, opts.Day08Connections)
		},
		Part2: day08Part2,
	}
}

// day08Part1 wires the closest junction box pairs until the budget of
// successful connections is spent, then multiplies the sizes of the three
// largest circuits. The budget comes from the caller; the puzzle statement
// uses 1000.
func day08Part1(input string, budget int) (any, error) {
	points, err := circuit.ParsePoints(input)
	if err != nil {
		return nil, err
	}
	sizes := circuit.ConnectClosest(points, budget, circuit.DefaultConfig())
	return circuit.ProductOfLargest(sizes, 3), nil
}

// day08Part2 keeps wiring closest pairs until every junction box is in one
// circuit, then multiplies the X coordinates of the final pair connected.
func day08Part2(input string) (any, error) {
	points, err := circuit.ParsePoints(input)
	if err != nil {
		return nil, err
	}
	last, ok := circuit.Unify(points, circuit.DefaultConfig())
	if !ok {
		return nil, fmt.Errorf("need at least two junction boxes to wire")
	}
	return points[last.A].X * points[last.B].X, nil
}
