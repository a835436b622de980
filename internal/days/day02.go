package days

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2025/internal/puzzle"
)

func day02() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   2,
		Title: "Gift Shop",
		Part1: day02Part1,
		Part2: day02Part2,
	}
}

// idRange is an inclusive range of product IDs.
type idRange struct {
	lo, hi int
}

func parseIDRanges(input string) ([]idRange, error) {
	text := strings.ReplaceAll(strings.TrimSpace(input), "\n", "")
	var ranges []idRange
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, ok := strings.Cut(part, "-")
		if !ok {
			return nil, fmt.Errorf("malformed range %q", part)
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("malformed range %q: %w", part, err)
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("malformed range %q: %w", part, err)
		}
		ranges = append(ranges, idRange{lo: start, hi: end})
	}
	return ranges, nil
}

// isDoubled reports whether the decimal form of n is some sequence written
// exactly twice, like 55 or 6464.
func isDoubled(n int) bool {
	s := strconv.Itoa(n)
	if len(s)%2 != 0 {
		return false
	}
	half := len(s) / 2
	return s[:half] == s[half:]
}

// isRepeated reports whether the decimal form of n is some sequence written
// two or more times, like 121212.
func isRepeated(n int) bool {
	s := strconv.Itoa(n)
	for patLen := 1; patLen <= len(s)/2; patLen++ {
		if len(s)%patLen != 0 {
			continue
		}
		if strings.Repeat(s[:patLen], len(s)/patLen) == s {
			return true
		}
	}
	return false
}

func day02Part1(input string) (any, error) {
	ranges, err := parseIDRanges(input)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, r := range ranges {
		for n := r.lo; n <= r.hi; n++ {
			if isDoubled(n) {
				sum += n
			}
		}
	}
	return sum, nil
}

func day02Part2(input string) (any, error) {
	ranges, err := parseIDRanges(input)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, r := range ranges {
		for n := r.lo; n <= r.hi; n++ {
			if isRepeated(n) {
				sum += n
			}
		}
	}
	return sum, nil
}
