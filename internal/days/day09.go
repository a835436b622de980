package days

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"

	"aoc2025/internal/puzzle"
)

func day09() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   9,
		Title: "Movie Theater",
		Part1: day09Part1,
		Part2: day09Part2,
	}
}

type tile struct {
	X, Y int
}

func parseTiles(input string) ([]tile, error) {
	lines := trimmedLines(input)
	tiles := make([]tile, 0, len(lines))
	for i, line := range lines {
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: malformed tile %q", i+1, line)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed tile %q: %w", i+1, line, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed tile %q: %w", i+1, line, err)
		}
		tiles = append(tiles, tile{X: x, Y: y})
	}
	return tiles, nil
}

// day09Part1 finds the largest rectangle using any two tiles as opposite
// corners. Tiles sharing a row or column cannot span a rectangle.
func day09Part1(input string) (any, error) {
	tiles, err := parseTiles(input)
	if err != nil {
		return nil, err
	}
	if len(tiles) < 2 {
		return 0, nil
	}
	best := 0
	gen := combin.NewCombinationGenerator(len(tiles), 2)
	pair := make([]int, 2)
	for gen.Next() {
		gen.Combination(pair)
		a, b := tiles[pair[0]], tiles[pair[1]]
		if a.X == b.X || a.Y == b.Y {
			continue
		}
		area := (absInt(b.X-a.X) + 1) * (absInt(b.Y-a.Y) + 1)
		if area > best {
			best = area
		}
	}
	return best, nil
}

// day09Part2 restricts part 1 to rectangles that fit inside the rectilinear
// polygon traced by consecutive tiles.
func day09Part2(input string) (any, error) {
	tiles, err := parseTiles(input)
	if err != nil {
		return nil, err
	}
	return largestInsideRectangle(tiles), nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// xBounds is the horizontal extent of the polygon boundary on one row.
type xBounds struct {
	lo, hi int
}

type tileSegment struct {
	a, b tile
}

// orderedEndpoints returns the segment endpoints sorted by (x, y).
func (s tileSegment) orderedEndpoints() (tile, tile) {
	if s.a.X < s.b.X || (s.a.X == s.b.X && s.a.Y <= s.b.Y) {
		return s.a, s.b
	}
	return s.b, s.a
}

// segmentsCross reports whether two axis-aligned segments properly cross.
// Touching at an endpoint or running along each other does not count; only
// a perpendicular pair where each strictly straddles the other does.
func segmentsCross(t, a tileSegment) bool {
	t1, t2 := t.orderedEndpoints()
	a1, a2 := a.orderedEndpoints()
	if a1.X < t1.X && t1.X < a2.X && a1.X < t2.X && t2.X < a2.X &&
		t1.Y < a1.Y && a1.Y < t2.Y && t1.Y < a2.Y && a2.Y < t2.Y {
		return true
	}
	if a1.Y < t1.Y && t1.Y < a2.Y && a1.Y < t2.Y && t2.Y < a2.Y &&
		t1.X < a1.X && a1.X < t2.X && t1.X < a2.X && a2.X < t2.X {
		return true
	}
	return false
}

// addBoundaryRows records the boundary extent of the rectangle spanned by a
// and b on every row it touches. Consecutive polygon vertices share an axis,
// so in practice the rectangle degenerates to the segment between them.
func addBoundaryRows(rows map[int]xBounds, a, b tile) {
	x0, x1 := a.X, b.X
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 := a.Y, b.Y
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	widen := func(y, lo, hi int) {
		if cur, ok := rows[y]; ok {
			if lo > cur.lo {
				lo = cur.lo
			}
			if hi < cur.hi {
				hi = cur.hi
			}
		}
		rows[y] = xBounds{lo: lo, hi: hi}
	}
	widen(a.Y, x0, x1)
	widen(b.Y, x0, x1)
	for y := y0; y <= y1; y++ {
		widen(y, x0, x0)
		widen(y, x1, x1)
	}
}

// cornersOutside is a cheap reject: both corner rows must exist on the
// polygon boundary and the rectangle's x extent must stay within the
// boundary extent of each.
func cornersOutside(a, b tile, rows map[int]xBounds) bool {
	ra, ok := rows[a.Y]
	if !ok {
		return true
	}
	rb, ok := rows[b.Y]
	if !ok {
		return true
	}
	lo, hi := a.X, b.X
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo < ra.lo || hi > ra.hi || lo < rb.lo || hi > rb.hi
}

// largestInsideRectangle finds the largest rectangle with two tiles as
// opposite corners whose edges do not cross the polygon boundary. Candidates
// are tried largest first per starting corner so the first fit wins.
func largestInsideRectangle(tiles []tile) int {
	if len(tiles) < 3 {
		return 0
	}
	allSameX, allSameY := true, true
	for _, t := range tiles[1:] {
		if t.X != tiles[0].X {
			allSameX = false
		}
		if t.Y != tiles[0].Y {
			allSameY = false
		}
	}
	if allSameX || allSameY {
		return 0
	}

	rows := make(map[int]xBounds)
	boundary := make([]tileSegment, 0, len(tiles))
	prev := tiles[0]
	for i := 1; i <= len(tiles); i++ {
		cur := tiles[i%len(tiles)]
		addBoundaryRows(rows, prev, cur)
		boundary = append(boundary, tileSegment{a: prev, b: cur})
		prev = cur
	}

	type candidate struct {
		area int
		p    tile
	}
	best := 0
	for idx, a := range tiles {
		candidates := make([]candidate, 0, len(tiles)-idx-1)
		for _, p := range tiles[idx+1:] {
			area := (absInt(p.X-a.X) + 1) * (absInt(p.Y-a.Y) + 1)
			candidates = append(candidates, candidate{area: area, p: p})
		}
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].area > candidates[j].area
		})

		for _, c := range candidates {
			if c.area <= best || cornersOutside(a, c.p, rows) {
				continue
			}
			edges := [4]tileSegment{
				{a: a, b: tile{X: a.X, Y: c.p.Y}},
				{a: tile{X: a.X, Y: c.p.Y}, b: c.p},
				{a: a, b: tile{X: c.p.X, Y: a.Y}},
				{a: tile{X: c.p.X, Y: a.Y}, b: c.p},
			}
			fits := true
		edgeCheck:
			for _, edge := range edges {
				for _, seg := range boundary {
					if segmentsCross(seg, edge) {
						fits = false
						break edgeCheck
					}
				}
			}
			if fits {
				best = c.area
				break
			}
		}
	}
	return best
}
