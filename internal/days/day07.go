package days

import (
	"fmt"
	"math/big"
	"strings"

	"aoc2025/internal/puzzle"
)

func day07() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   7,
		Title: "Laboratories",
		Part1: day07Part1,
		Part2: day07Part2,
	}
}

type manifold struct {
	rows, cols int
	starts     []int
	splitters  map[gridPos]bool
}

func parseManifold(input string) (*manifold, error) {
	lines := rawLines(strings.TrimSpace(input))
	m := &manifold{
		rows:      len(lines),
		splitters: make(map[gridPos]bool),
	}
	if m.rows > 0 {
		m.cols = len(lines[0])
	}
	for r, line := range lines {
		for c, ch := range line {
			switch ch {
			case 'S':
				m.starts = append(m.starts, c)
			case '^':
				m.splitters[gridPos{row: r, col: c}] = true
			}
		}
	}
	if len(m.starts) == 0 {
		return nil, fmt.Errorf("manifold has no start position")
	}
	return m, nil
}

// day07Part1 tracks the set of active beam columns row by row and counts
// splitter hits. Beams landing on the same column merge, so a set is enough.
func day07Part1(input string) (any, error) {
	m, err := parseManifold(input)
	if err != nil {
		return nil, err
	}
	active := make(map[int]bool, len(m.starts))
	for _, c := range m.starts {
		active[c] = true
	}
	hits := 0
	for row := 1; row < m.rows; row++ {
		next := make(map[int]bool, len(active))
		for col := range active {
			if m.splitters[gridPos{row: row, col: col}] {
				hits++
				if col-1 >= 0 {
					next[col-1] = true
				}
				if col+1 < m.cols {
					next[col+1] = true
				}
			} else {
				next[col] = true
			}
		}
		active = next
	}
	return hits, nil
}

// day07Part2 counts distinct paths from each start to the bottom of the
// manifold. Every splitter doubles the downstream possibilities, so the
// counts grow exponentially and are kept as big integers.
func day07Part2(input string) (any, error) {
	m, err := parseManifold(input)
	if err != nil {
		return nil, err
	}
	memo := make(map[gridPos]*big.Int)
	total := new(big.Int)
	for _, c := range m.starts {
		total.Add(total, m.countPaths(1, c, memo))
	}
	return total, nil
}

func (m *manifold) countPaths(row, col int, memo map[gridPos]*big.Int) *big.Int {
	if row >= m.rows {
		return big.NewInt(1)
	}
	key := gridPos{row: row, col: col}
	if cached, ok := memo[key]; ok {
		return cached
	}
	var n *big.Int
	if m.splitters[key] {
		n = new(big.Int).Add(m.countPaths(row+1, col-1, memo), m.countPaths(row+1, col+1, memo))
	} else {
		n = m.countPaths(row+1, col, memo)
	}
	memo[key] = n
	return n
}
