// Package puzzle holds the registry of day solvers. The caller builds a
// Registry, fills it with the days it wants, and looks days up by number.
package puzzle

import (
	"fmt"
	"sort"
)

// Func solves one part of a day's puzzle over the raw input text.
// The returned value is printed with fmt.Sprint by the caller.
type Func func(input string) (any, error)

// Puzzle is one day's solver pair. Part2 is nil while the second half of a
// puzzle has not been released yet.
type Puzzle struct {
	Day   int
	Title string
	Part1 Func
	Part2 Func
}

// Registry maps day numbers to their solvers.
type Registry struct {
	puzzles map[int]Puzzle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{puzzles: map[int]Puzzle{}}
}

// Register adds a day to the registry. Panics on duplicate days or missing
// Part1 — both are wiring mistakes, not runtime conditions.
func (r *Registry) Register(p Puzzle) {
	if p.Part1 == nil {
		panic(fmt.Sprintf("puzzle: day %d registered without Part1", p.Day))
	}
	if _, exists := r.puzzles[p.Day]; exists {
		panic(fmt.Sprintf("puzzle: day %d registered twice", p.Day))
	}
	r.puzzles[p.Day] = p
}

// Get returns the solver for a day.
func (r *Registry) Get(day int) (Puzzle, bool) {
	p, ok := r.puzzles[day]
	return p, ok
}

// Days returns all registered day numbers in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.puzzles))
	for day := range r.puzzles {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}
