package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day04Example = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.`

func TestDay04Part1Example(t *testing.T) {
	got, err := day04Part1(day04Example)
	require.NoError(t, err)
	assert.Equal(t, 13, got)
}

func TestDay04Part2Example(t *testing.T) {
	got, err := day04Part2(day04Example)
	require.NoError(t, err)
	assert.Equal(t, 43, got)
}

func TestDay04SingleRoll(t *testing.T) {
	got, err := day04Part1("@")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = day04Part2("@")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestDay04EmptyGrid(t *testing.T) {
	got, err := day04Part1("...\n...")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}
