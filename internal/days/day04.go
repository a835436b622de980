package days

import (
	"aoc2025/internal/puzzle"
)

func day04() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   4,
		Title: "Printing Department",
		Part1: day04Part1,
		Part2: day04Part2,
	}
}

type gridPos struct {
	row, col int
}

func parseRollGrid(input string) map[gridPos]bool {
	rolls := make(map[gridPos]bool)
	for r, line := range trimmedLines(input) {
		for c, ch := range line {
			if ch == '@' {
				rolls[gridPos{row: r, col: c}] = true
			}
		}
	}
	return rolls
}

func neighborCount(rolls map[gridPos]bool, p gridPos) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if rolls[gridPos{row: p.row + dr, col: p.col + dc}] {
				count++
			}
		}
	}
	return count
}

// day04Part1 counts rolls with fewer than four of the eight surrounding
// cells occupied. Those are the ones a forklift can reach.
func day04Part1(input string) (any, error) {
	rolls := parseRollGrid(input)
	count := 0
	for p := range rolls {
		if neighborCount(rolls, p) < 4 {
			count++
		}
	}
	return count, nil
}

// day04Part2 repeatedly removes every reachable roll until none remain
// accessible and reports how many were removed in total. Neighbor counts
// are cached and only the neighbors of removed rolls are rechecked.
func day04Part2(input string) (any, error) {
	rolls := parseRollGrid(input)
	counts := make(map[gridPos]int, len(rolls))
	for p := range rolls {
		counts[p] = neighborCount(rolls, p)
	}

	candidates := make([]gridPos, 0, len(rolls))
	for p := range rolls {
		if counts[p] < 4 {
			candidates = append(candidates, p)
		}
	}

	removed := 0
	for len(candidates) > 0 {
		var batch []gridPos
		for _, p := range candidates {
			if rolls[p] && counts[p] < 4 {
				batch = append(batch, p)
			}
		}
		if len(batch) == 0 {
			break
		}

		next := make(map[gridPos]bool)
		for _, p := range batch {
			delete(rolls, p)
			removed++
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					n := gridPos{row: p.row + dr, col: p.col + dc}
					if rolls[n] {
						counts[n]--
						if counts[n] < 4 {
							next[n] = true
						}
					}
				}
			}
		}
		candidates = candidates[:0]
		for p := range next {
			candidates = append(candidates, p)
		}
	}
	return removed, nil
}
