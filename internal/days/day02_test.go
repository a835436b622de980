package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day02Example = `11-22,95-115,998-1012,
1188511880-1188511890,222220-222224,
1698522-1698528,446443-446449,38593856-38593862,
565653-565659,824824821-824824827,2121212118-2121212124`

func TestDay02Part1Example(t *testing.T) {
	got, err := day02Part1(day02Example)
	require.NoError(t, err)
	assert.Equal(t, 1227775554, got)
}

func TestDay02Part2Example(t *testing.T) {
	got, err := day02Part2(day02Example)
	require.NoError(t, err)
	assert.Equal(t, 4174379265, got)
}

func TestDay02SingleRanges(t *testing.T) {
	cases := []struct {
		input string
		part1 int
		part2 int
	}{
		{"11-11", 11, 11},
		{"111-111", 0, 111},
		{"999-999", 0, 999},
		{"121212-121212", 0, 121212},
		{"1000-1000", 0, 0},
		// 100100 is "100" written exactly twice, so it counts for both parts.
		{"100100-100100", 100100, 100100},
		{"10-12", 11, 11},
		{"12-15", 0, 0},
		{"99-99", 99, 99},
	}
	for _, tc := range cases {
		p1, err := day02Part1(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.part1, p1, "part 1 of %q", tc.input)

		p2, err := day02Part2(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.part2, p2, "part 2 of %q", tc.input)
	}
}

func TestDay02MalformedRange(t *testing.T) {
	_, err := day02Part1("11")
	assert.Error(t, err)
	_, err = day02Part1("a-b")
	assert.Error(t, err)
}
