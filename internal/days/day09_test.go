package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day09Example = `7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3`

func TestDay09Part1Example(t *testing.T) {
	got, err := day09Part1(day09Example)
	require.NoError(t, err)
	assert.Equal(t, 50, got)
}

func TestDay09Part1Pairs(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"two tiles", "0,0\n5,3", 24},
		{"square", "0,0\n4,4", 25},
		{"adjacent diagonal", "3,3\n4,4", 4},
		{"horizontal line", "1,5\n4,5\n9,5", 0},
		{"vertical line", "3,1\n3,6\n3,9", 0},
		{"single tile", "5,5", 0},
		{"large coordinates", "0,0\n1000,1000", 1002001},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := day09Part1(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDay09Part2Example(t *testing.T) {
	got, err := day09Part2(day09Example)
	require.NoError(t, err)
	assert.Equal(t, 24, got)
}

func TestDay09Part2SquareLoop(t *testing.T) {
	got, err := day09Part2("0,0\n10,0\n10,10\n0,10")
	require.NoError(t, err)
	assert.Equal(t, 121, got)
}

func TestDay09Part2Degenerate(t *testing.T) {
	got, err := day09Part2("3,0\n3,5\n3,10")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = day09Part2("5,5")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestDay09MalformedTile(t *testing.T) {
	_, err := day09Part1("1;2")
	assert.Error(t, err)
}
