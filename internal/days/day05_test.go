package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day05Example = `3-5
10-14
16-20
12-18

1
5
8
11
17
32`

func TestDay05Part1Example(t *testing.T) {
	got, err := day05Part1(day05Example)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestDay05Part2Example(t *testing.T) {
	got, err := day05Part2(day05Example)
	require.NoError(t, err)
	assert.Equal(t, 14, got)
}

func TestDay05AdjacentRangesMerge(t *testing.T) {
	got, err := day05Part2("1-3\n4-6\n\n1")
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestDay05ContainedRange(t *testing.T) {
	got, err := day05Part2("1-10\n3-5\n\n1")
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestDay05MissingSection(t *testing.T) {
	_, err := day05Part1("1-3\n4-6")
	assert.Error(t, err)
}
