package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day10Example = `[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}`

func TestDay10Part1Example(t *testing.T) {
	got, err := day10Part1(day10Example)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestDay10Part1SingleMachines(t *testing.T) {
	got, err := day10Part1("[#] (0) {5}")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// Lights already match the diagram, no presses needed.
	got, err = day10Part1("[.] (0) {5}")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestDay10Part2Example(t *testing.T) {
	got, err := day10Part2(day10Example)
	require.NoError(t, err)
	assert.Equal(t, 33, got)
}

func TestDay10Part2MachineMinimums(t *testing.T) {
	lines := []struct {
		line string
		want int
	}{
		{"[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}", 10},
		{"[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}", 12},
		{"[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}", 11},
		{"[#] (0) {5}", 5},
		{"[#] (0) {0}", 0},
	}
	for _, tc := range lines {
		got, err := day10Part2(tc.line)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "machine %q", tc.line)
	}
}

func TestDay10MissingDiagram(t *testing.T) {
	_, err := day10Part1("(0,1) {3}")
	assert.Error(t, err)
}
