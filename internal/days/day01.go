package days

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2025/internal/puzzle"
)

func day01() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   1,
		Title: "Secret Entrance",
		Part1: day01Part1,
		Part2: day01Part2,
	}
}

// rotation is a single dial movement: direction L or R with a step count.
type rotation struct {
	dir    byte
	amount int
}

func parseRotations(input string) ([]rotation, error) {
	lines := trimmedLines(input)
	rotations := make([]rotation, 0, len(lines))
	for i, line := range lines {
		if len(line) < 2 || (line[0] != 'L' && line[0] != 'R') {
			return nil, fmt.Errorf("line %d: malformed rotation %q", i+1, line)
		}
		amount, err := strconv.Atoi(strings.TrimSpace(line[1:]))
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed rotation %q: %w", i+1, line, err)
		}
		rotations = append(rotations, rotation{dir: line[0], amount: amount})
	}
	return rotations, nil
}

// day01Part1 counts how many rotations leave the dial resting on zero.
// The dial has positions 0-99 and starts at 50.
func day01Part1(input string) (any, error) {
	rotations, err := parseRotations(input)
	if err != nil {
		return nil, err
	}
	pos := 50
	count := 0
	for _, r := range rotations {
		if r.dir == 'L' {
			pos = ((pos-r.amount)%100 + 100) % 100
		} else {
			pos = (pos + r.amount) % 100
		}
		if pos == 0 {
			count++
		}
	}
	return count, nil
}

// day01Part2 counts every time the dial crosses or lands on zero mid
// rotation, not just where it stops. Each crossing is computed in closed
// form: the steps to the first zero, then one more crossing per full lap.
func day01Part2(input string) (any, error) {
	rotations, err := parseRotations(input)
	if err != nil {
		return nil, err
	}
	pos := 50
	count := 0
	for _, r := range rotations {
		var steps int
		if r.dir == 'L' {
			steps = pos
			if steps == 0 {
				steps = 100
			}
			if r.amount >= steps {
				count += 1 + (r.amount-steps)/100
			}
			pos = ((pos-r.amount)%100 + 100) % 100
		} else {
			steps = (100 - pos) % 100
			if steps == 0 {
				steps = 100
			}
			if r.amount >= steps {
				count += 1 + (r.amount-steps)/100
			}
			pos = (pos + r.amount) % 100
		}
	}
	return count, nil
}
