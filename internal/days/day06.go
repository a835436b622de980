package days

import (
	"fmt"

	"aoc2025/internal/puzzle"
)

func day06() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   6,
		Title: "Trash Compactor",
		Part1: day06Part1,
		Part2: day06Part2,
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func applyWorksheetOp(op byte, numbers []int) int {
	if op == '*' {
		product := 1
		for _, n := range numbers {
			product *= n
		}
		return product
	}
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	return sum
}

// numberNear finds the number written in row at or just right of pos.
// Columns are right-aligned so the number may start a few cells past the
// operator; the scan window covers the column width.
func numberNear(row string, pos int) (int, bool) {
	end := pos + 6
	if end > len(row) {
		end = len(row)
	}
	for scan := pos; scan < end; scan++ {
		if !isDigit(row[scan]) {
			continue
		}
		start := scan
		for start > 0 && isDigit(row[start-1]) {
			start--
		}
		stop := scan
		for stop < len(row)-1 && isDigit(row[stop+1]) {
			stop++
		}
		n := 0
		for i := start; i <= stop; i++ {
			n = n*10 + int(row[i]-'0')
		}
		return n, true
	}
	return 0, false
}

// day06Part1 reads each worksheet column by its operator position: the
// numbers stacked above the operator are combined with it, and the column
// results are summed.
func day06Part1(input string) (any, error) {
	lines := rawLines(input)
	if len(lines) < 2 {
		return nil, fmt.Errorf("worksheet needs number rows and an operator row")
	}
	numberRows := lines[:len(lines)-1]
	opRow := lines[len(lines)-1]

	total := 0
	for pos := 0; pos < len(opRow); pos++ {
		op := opRow[pos]
		if op != '+' && op != '*' {
			continue
		}
		var numbers []int
		for _, row := range numberRows {
			if pos >= len(row) {
				continue
			}
			if n, ok := numberNear(row, pos); ok {
				numbers = append(numbers, n)
			}
		}
		total += applyWorksheetOp(op, numbers)
	}
	return total, nil
}

// day06Part2 reads the worksheet in columns from right to left. Digits in a
// column stack top to bottom into one number. A column holding an operator
// closes the current group: the operator is applied to the numbers collected
// since the previous group ended.
func day06Part2(input string) (any, error) {
	lines := rawLines(input)
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	total := 0
	var current []int
	for col := maxLen - 1; col >= 0; col-- {
		digits := 0
		hasDigits := false
		var op byte
		for _, line := range lines {
			if col >= len(line) {
				continue
			}
			switch ch := line[col]; {
			case isDigit(ch):
				digits = digits*10 + int(ch-'0')
				hasDigits = true
			case ch == '+' || ch == '*':
				op = ch
			}
		}
		if !hasDigits {
			continue
		}
		current = append(current, digits)
		if op != 0 {
			total += applyWorksheetOp(op, current)
			current = nil
		}
	}
	return total, nil
}
