package days

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"aoc2025/internal/puzzle"
)

func day05() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   5,
		Title: "Cafeteria",
		Part1: day05Part1,
		Part2: day05Part2,
	}
}

func parseFreshness(input string) (ranges []idRange, ids []int, err error) {
	sections := strings.SplitN(strings.TrimSpace(input), "\n\n", 2)
	if len(sections) != 2 {
		return nil, nil, fmt.Errorf("expected ranges and IDs separated by a blank line")
	}
	for _, line := range trimmedLines(sections[0]) {
		lo, hi, ok := strings.Cut(line, "-")
		if !ok {
			return nil, nil, fmt.Errorf("malformed range %q", line)
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, nil, fmt.Errorf("malformed range %q: %w", line, err)
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return nil, nil, fmt.Errorf("malformed range %q: %w", line, err)
		}
		ranges = append(ranges, idRange{lo: start, hi: end})
	}
	for _, line := range trimmedLines(sections[1]) {
		id, err := strconv.Atoi(line)
		if err != nil {
			return nil, nil, fmt.Errorf("malformed ID %q: %w", line, err)
		}
		ids = append(ids, id)
	}
	return ranges, ids, nil
}

// day05Part1 counts ingredient IDs covered by at least one freshness range.
func day05Part1(input string) (any, error) {
	ranges, ids, err := parseFreshness(input)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, id := range ids {
		for _, r := range ranges {
			if id >= r.lo && id <= r.hi {
				count++
				break
			}
		}
	}
	return count, nil
}

// day05Part2 merges overlapping and adjacent ranges and reports the total
// number of distinct IDs they cover.
func day05Part2(input string) (any, error) {
	ranges, _, err := parseFreshness(input)
	if err != nil {
		return nil, err
	}
	if len(ranges) == 0 {
		return 0, nil
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].lo != ranges[j].lo {
			return ranges[i].lo < ranges[j].lo
		}
		return ranges[i].hi < ranges[j].hi
	})

	merged := []idRange{ranges[0]}
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.lo <= last.hi+1 {
			if r.hi > last.hi {
				last.hi = r.hi
			}
		} else {
			merged = append(merged, r)
		}
	}

	total := 0
	for _, r := range merged {
		total += r.hi - r.lo + 1
	}
	return total, nil
}
