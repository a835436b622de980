package days

import (
	"fmt"
	"strconv"

	"aoc2025/internal/puzzle"
)

func day03() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   3,
		Title: "Lobby",
		Part1: day03Part1,
		Part2: day03Part2,
	}
}

func parseBanks(input string) ([]string, error) {
	banks := trimmedLines(input)
	for i, bank := range banks {
		for _, r := range bank {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("line %d: bank contains non-digit %q", i+1, r)
			}
		}
	}
	return banks, nil
}

// maxVoltage picks the two digits from a bank that form the largest
// two-digit number while keeping their original order.
func maxVoltage(bank string) int {
	best := 0
	for i := 0; i < len(bank)-1; i++ {
		tens := int(bank[i] - '0')
		for j := i + 1; j < len(bank); j++ {
			v := tens*10 + int(bank[j]-'0')
			if v > best {
				best = v
			}
		}
	}
	return best
}

// maxJoltage picks the largest 12-digit subsequence of a bank. For each
// output position the largest digit is taken from the window that still
// leaves enough digits to fill the remaining positions. Banks shorter than
// 12 digits are used whole.
func maxJoltage(bank string) int {
	const want = 12
	if len(bank) <= want {
		n, _ := strconv.Atoi(bank)
		return n
	}
	digits := make([]byte, 0, want)
	cur := 0
	for remaining := want; remaining > 0; remaining-- {
		limit := len(bank) - remaining
		bestIdx := cur
		for i := cur; i <= limit; i++ {
			if bank[i] > bank[bestIdx] {
				bestIdx = i
			}
		}
		digits = append(digits, bank[bestIdx])
		cur = bestIdx + 1
	}
	n, _ := strconv.Atoi(string(digits))
	return n
}

func day03Part1(input string) (any, error) {
	banks, err := parseBanks(input)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, bank := range banks {
		sum += maxVoltage(bank)
	}
	return sum, nil
}

func day03Part2(input string) (any, error) {
	banks, err := parseBanks(input)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, bank := range banks {
		sum += maxJoltage(bank)
	}
	return sum, nil
}
