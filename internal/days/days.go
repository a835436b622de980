// Package days implements the per-day puzzle solvers, one file per day.
// RegisterAll wires them into a puzzle registry owned by the caller.
package days

import (
	"strings"

	"aoc2025/internal/puzzle"
)

// Options carries solver knobs that the puzzle input itself does not encode.
type Options struct {
	// Day08Connections is the wiring budget for day 8 part 1.
	Day08Connections int
}

// DefaultOptions returns the knob values the puzzle statements use.
func DefaultOptions() Options {
	return Options{Day08Connections: 1000}
}

// RegisterAll adds every implemented day to the registry.
func RegisterAll(reg *puzzle.Registry, opts Options) {
	reg.Register(day01())
	reg.Register(day02())
	reg.Register(day03())
	reg.Register(day04())
	reg.Register(day05())
	reg.Register(day06())
	reg.Register(day07())
	reg.Register(day08(opts))
	reg.Register(day09())
	reg.Register(day10())
	reg.Register(day11())
	reg.Register(day12())
}

// trimmedLines splits input into lines, trimming surrounding whitespace and
// dropping blank lines. Suitable for record-per-line inputs.
func trimmedLines(input string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// rawLines splits input into lines keeping internal spacing intact. Only
// leading and trailing newlines are stripped; grid and column-aligned inputs
// need their padding preserved.
func rawLines(input string) []string {
	return strings.Split(strings.Trim(input, "\n"), "\n")
}
