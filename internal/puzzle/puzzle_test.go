package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Puzzle{
		Day:   3,
		Title: "Lobby",
		Part1: func(string) (any, error) { return 42, nil },
	})

	p, ok := reg.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Lobby", p.Title)

	_, ok = reg.Get(4)
	assert.False(t, ok)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reg := NewRegistry()
	p := Puzzle{Day: 1, Part1: func(string) (any, error) { return nil, nil }}
	reg.Register(p)
	assert.Panics(t, func() { reg.Register(p) })
}

func TestRegisterMissingPart1Panics(t *testing.T) {
	reg := NewRegistry()
	assert.Panics(t, func() { reg.Register(Puzzle{Day: 2}) })
}

func TestDaysSorted(t *testing.T) {
	reg := NewRegistry()
	part1 := func(string) (any, error) { return nil, nil }
	for _, day := range []int{7, 2, 11} {
		reg.Register(Puzzle{Day: day, Part1: part1})
	}
	assert.Equal(t, []int{2, 7, 11}, reg.Days())
}
