package days

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"aoc2025/internal/puzzle"
)

func day10() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   10,
		Title: "Factory",
		Part1: day10Part1,
		Part2: day10Part2,
	}
}

// factoryMachine holds both readings of a machine line: the light diagram
// used by part 1 and the joltage counters used by part 2. Each button lists
// the light/counter indices it acts on.
type factoryMachine struct {
	lights  []int
	buttons [][]int
	joltage []int
}

var (
	diagramRe = regexp.MustCompile(`\[([.#]*)\]`)
	buttonRe  = regexp.MustCompile(`\(([0-9,]+)\)`)
	joltageRe = regexp.MustCompile(`\{([0-9,]+)\}`)
)

func parseMachines(input string) ([]factoryMachine, error) {
	var machines []factoryMachine
	for i, line := range trimmedLines(input) {
		diagram := diagramRe.FindStringSubmatch(line)
		if diagram == nil {
			return nil, fmt.Errorf("line %d: missing light diagram", i+1)
		}
		m := factoryMachine{lights: make([]int, len(diagram[1]))}
		for j, c := range diagram[1] {
			if c == '#' {
				m.lights[j] = 1
			}
		}
		for _, match := range buttonRe.FindAllStringSubmatch(line, -1) {
			var indices []int
			for _, s := range strings.Split(match[1], ",") {
				n, err := strconv.Atoi(s)
				if err != nil {
					return nil, fmt.Errorf("line %d: malformed button %q: %w", i+1, match[1], err)
				}
				indices = append(indices, n)
			}
			m.buttons = append(m.buttons, indices)
		}
		if joltage := joltageRe.FindStringSubmatch(line); joltage != nil {
			for _, s := range strings.Split(joltage[1], ",") {
				n, err := strconv.Atoi(s)
				if err != nil {
					return nil, fmt.Errorf("line %d: malformed joltage %q: %w", i+1, joltage[1], err)
				}
				m.joltage = append(m.joltage, n)
			}
		}
		machines = append(machines, m)
	}
	return machines, nil
}

// buttonMatrix builds the augmented matrix [A | b]: row i has a coefficient
// per button that acts on light/counter i, with the target in the last column.
func buttonMatrix(targets []int, buttons [][]int) [][]int {
	matrix := make([][]int, len(targets))
	for i := range targets {
		row := make([]int, len(buttons)+1)
		for j, button := range buttons {
			for _, idx := range button {
				if idx == i {
					row[j] = 1
					break
				}
			}
		}
		row[len(buttons)] = targets[i]
		matrix[i] = row
	}
	return matrix
}

// eliminateGF2 reduces the augmented matrix to reduced row echelon form over
// GF(2) and returns the pivot columns.
func eliminateGF2(matrix [][]int) []int {
	if len(matrix) == 0 {
		return nil
	}
	cols := len(matrix[0]) - 1
	pivotRow := 0
	var pivotCols []int
	for col := 0; col < cols && pivotRow < len(matrix); col++ {
		found := -1
		for row := pivotRow; row < len(matrix); row++ {
			if matrix[row][col] == 1 {
				found = row
				break
			}
		}
		if found < 0 {
			continue
		}
		matrix[pivotRow], matrix[found] = matrix[found], matrix[pivotRow]
		pivotCols = append(pivotCols, col)
		for row := range matrix {
			if row != pivotRow && matrix[row][col] == 1 {
				for c := 0; c <= cols; c++ {
					matrix[row][c] ^= matrix[pivotRow][c]
				}
			}
		}
		pivotRow++
	}
	return pivotCols
}

// minTogglePresses finds the minimum number of button presses that reaches
// the light diagram, enumerating free variables when the system is
// underdetermined. ok is false when the system has no solution.
func minTogglePresses(m factoryMachine) (int, bool) {
	matrix := buttonMatrix(m.lights, m.buttons)
	pivotCols := eliminateGF2(matrix)
	if len(matrix) == 0 {
		return 0, true
	}
	buttons := len(m.buttons)

	for _, row := range matrix {
		zero := true
		for c := 0; c < buttons; c++ {
			if row[c] != 0 {
				zero = false
				break
			}
		}
		if zero && row[buttons] == 1 {
			return 0, false
		}
	}

	isPivot := make([]bool, buttons)
	for _, c := range pivotCols {
		isPivot[c] = true
	}
	var freeVars []int
	for c := 0; c < buttons; c++ {
		if !isPivot[c] {
			freeVars = append(freeVars, c)
		}
	}

	if len(freeVars) == 0 {
		presses := 0
		for rowIdx := range pivotCols {
			presses += matrix[rowIdx][buttons]
		}
		return presses, true
	}

	best := -1
	solution := make([]int, buttons)
	for mask := 0; mask < 1<<len(freeVars); mask++ {
		for i := range solution {
			solution[i] = 0
		}
		for i, v := range freeVars {
			solution[v] = (mask >> i) & 1
		}
		for rowIdx, col := range pivotCols {
			val := matrix[rowIdx][buttons]
			for j := 0; j < buttons; j++ {
				if j != col {
					val ^= matrix[rowIdx][j] * solution[j]
				}
			}
			solution[col] = val
		}
		presses := 0
		for _, v := range solution {
			presses += v
		}
		if best < 0 || presses < best {
			best = presses
		}
	}
	return best, true
}

func day10Part1(input string) (any, error) {
	machines, err := parseMachines(input)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, m := range machines {
		if presses, ok := minTogglePresses(m); ok {
			total += presses
		}
	}
	return total, nil
}

// minCounterPresses solves min sum(x) with Ax = b, x >= 0 integer, where A
// maps button presses to counter increments. Fraction-free elimination keeps
// everything in integers; free variables are searched within a heuristic
// bound. ok is false when no solution exists or the search space is too big.
func minCounterPresses(targets []int, buttons [][]int) (int, bool) {
	counters := len(targets)
	nButtons := len(buttons)

	allZero := true
	for _, t := range targets {
		if t != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return 0, true
	}

	matrix := buttonMatrix(targets, buttons)

	pivotRow := 0
	var pivotCols []int
	for col := 0; col < nButtons && pivotRow < counters; col++ {
		found := -1
		for row := pivotRow; row < counters; row++ {
			if matrix[row][col] != 0 {
				found = row
				break
			}
		}
		if found < 0 {
			continue
		}
		matrix[pivotRow], matrix[found] = matrix[found], matrix[pivotRow]
		pivotCols = append(pivotCols, col)
		pivotVal := matrix[pivotRow][col]
		for row := pivotRow + 1; row < counters; row++ {
			if matrix[row][col] == 0 {
				continue
			}
			factor := matrix[row][col]
			for c := 0; c <= nButtons; c++ {
				matrix[row][c] = matrix[row][c]*pivotVal - matrix[pivotRow][c]*factor
			}
		}
		pivotRow++
	}

	for row := pivotRow; row < counters; row++ {
		zero := true
		for c := 0; c < nButtons; c++ {
			if matrix[row][c] != 0 {
				zero = false
				break
			}
		}
		if zero && matrix[row][nButtons] != 0 {
			return 0, false
		}
	}

	isPivot := make([]bool, nButtons)
	for _, c := range pivotCols {
		isPivot[c] = true
	}
	var freeVars []int
	for c := 0; c < nButtons; c++ {
		if !isPivot[c] {
			freeVars = append(freeVars, c)
		}
	}

	backSubstitute := func(solution []int) bool {
		for rowIdx := len(pivotCols) - 1; rowIdx >= 0; rowIdx-- {
			col := pivotCols[rowIdx]
			val := matrix[rowIdx][nButtons]
			for c := col + 1; c < nButtons; c++ {
				val -= matrix[rowIdx][c] * solution[c]
			}
			if val%matrix[rowIdx][col] != 0 {
				return false
			}
			solution[col] = val / matrix[rowIdx][col]
			if solution[col] < 0 {
				return false
			}
		}
		return true
	}
	verify := func(solution []int) bool {
		result := make([]int, counters)
		for btnIdx, count := range solution {
			for _, counterIdx := range buttons[btnIdx] {
				result[counterIdx] += count
			}
		}
		for i, t := range targets {
			if result[i] != t {
				return false
			}
		}
		return true
	}

	if len(freeVars) == 0 {
		solution := make([]int, nButtons)
		if !backSubstitute(solution) {
			return 0, false
		}
		if !verify(solution) {
			return 0, false
		}
		presses := 0
		for _, v := range solution {
			presses += v
		}
		return presses, true
	}

	sumTgt := 0
	for _, t := range targets {
		sumTgt += t
	}
	var maxBound int
	switch len(freeVars) {
	case 1:
		maxBound = sumTgt
	case 2:
		maxBound = min(sumTgt, sumTgt/2+50)
	case 3:
		maxBound = min(sumTgt, max(100, sumTgt/3))
	default:
		maxBound = min(sumTgt, max(50, sumTgt/len(freeVars)))
	}

	searchSpace := 1
	for range freeVars {
		searchSpace *= maxBound + 1
		if searchSpace > 1_000_000_000 {
			return 0, false
		}
	}

	best := -1
	values := make([]int, len(freeVars))
	solution := make([]int, nButtons)
	for {
		freeSum := 0
		for _, v := range values {
			freeSum += v
		}
		if best < 0 || freeSum < best {
			for i := range solution {
				solution[i] = 0
			}
			for i, v := range freeVars {
				solution[v] = values[i]
			}
			if backSubstitute(solution) && verify(solution) {
				presses := 0
				for _, v := range solution {
					presses += v
				}
				if best < 0 || presses < best {
					best = presses
				}
			}
		}

		// Advance the odometer over free variable assignments.
		i := len(values) - 1
		for i >= 0 {
			values[i]++
			if values[i] <= maxBound {
				break
			}
			values[i] = 0
			i--
		}
		if i < 0 {
			break
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func day10Part2(input string) (any, error) {
	machines, err := parseMachines(input)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, m := range machines {
		if len(m.joltage) == 0 {
			continue
		}
		if presses, ok := minCounterPresses(m.joltage, m.buttons); ok {
			total += presses
		}
	}
	return total, nil
}
