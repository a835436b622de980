package days

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"aoc2025/internal/puzzle"
)

func day12() puzzle.Puzzle {
	return puzzle.Puzzle{
		Day:   12,
		Title: "Christmas Tree Farm",
		Part1: day12Part1,
	}
}

// shapeCell is one occupied cell of a present shape, relative to its
// top-left corner.
type shapeCell struct {
	r, c int
}

type farmRegion struct {
	width, height int
	required      []int
}

func parseFarm(input string) (shapes [][]shapeCell, regions []farmRegion, err error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		switch {
		case line != "" && strings.Contains(line, ":") && !strings.Contains(line, "x"):
			// Shape header like "0:" followed by '#' rows.
			var cells []shapeCell
			i++
			row := 0
			for i < len(lines) && strings.TrimSpace(lines[i]) != "" && !strings.Contains(lines[i], ":") {
				for col, ch := range lines[i] {
					if ch == '#' {
						cells = append(cells, shapeCell{r: row, c: col})
					}
				}
				row++
				i++
			}
			shapes = append(shapes, cells)
		case line != "" && strings.Contains(line, "x") && strings.Contains(line, ":"):
			// Region like "4x4: 0 0 0 0 2 0".
			dims, counts, _ := strings.Cut(line, ":")
			ws, hs, ok := strings.Cut(strings.TrimSpace(dims), "x")
			if !ok {
				return nil, nil, fmt.Errorf("malformed region %q", line)
			}
			w, err := strconv.Atoi(ws)
			if err != nil {
				return nil, nil, fmt.Errorf("malformed region %q: %w", line, err)
			}
			h, err := strconv.Atoi(hs)
			if err != nil {
				return nil, nil, fmt.Errorf("malformed region %q: %w", line, err)
			}
			region := farmRegion{width: w, height: h}
			for _, f := range strings.Fields(counts) {
				n, err := strconv.Atoi(f)
				if err != nil {
					return nil, nil, fmt.Errorf("malformed region %q: %w", line, err)
				}
				region.required = append(region.required, n)
			}
			regions = append(regions, region)
			i++
		default:
			i++
		}
	}
	return shapes, regions, nil
}

func rotateShape(shape []shapeCell) []shapeCell {
	out := make([]shapeCell, len(shape))
	for i, cell := range shape {
		out[i] = shapeCell{r: cell.c, c: -cell.r}
	}
	return out
}

func flipShape(shape []shapeCell) []shapeCell {
	out := make([]shapeCell, len(shape))
	for i, cell := range shape {
		out[i] = shapeCell{r: cell.r, c: -cell.c}
	}
	return out
}

// normalizeShape shifts a shape so its minimum row and column are zero and
// sorts the cells so equivalent orientations compare equal.
func normalizeShape(shape []shapeCell) []shapeCell {
	if len(shape) == 0 {
		return nil
	}
	minR, minC := shape[0].r, shape[0].c
	for _, cell := range shape[1:] {
		if cell.r < minR {
			minR = cell.r
		}
		if cell.c < minC {
			minC = cell.c
		}
	}
	out := make([]shapeCell, len(shape))
	for i, cell := range shape {
		out[i] = shapeCell{r: cell.r - minR, c: cell.c - minC}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].r != out[j].r {
			return out[i].r < out[j].r
		}
		return out[i].c < out[j].c
	})
	return out
}

func shapeKey(shape []shapeCell) string {
	var b strings.Builder
	for _, cell := range shape {
		fmt.Fprintf(&b, "%d,%d;", cell.r, cell.c)
	}
	return b.String()
}

// shapeOrientations generates the distinct rotations and flips of a shape,
// eight variants at most.
func shapeOrientations(shape []shapeCell) [][]shapeCell {
	seen := make(map[string][]shapeCell)
	for _, start := range [][]shapeCell{shape, flipShape(shape)} {
		current := start
		for i := 0; i < 4; i++ {
			n := normalizeShape(current)
			seen[shapeKey(n)] = n
			current = rotateShape(current)
		}
	}
	out := make([][]shapeCell, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	return out
}

func canPlace(grid map[shapeCell]bool, shape []shapeCell, row, col, width, height int) bool {
	for _, cell := range shape {
		r, c := row+cell.r, col+cell.c
		if r < 0 || r >= height || c < 0 || c >= width {
			return false
		}
		if grid[shapeCell{r: r, c: c}] {
			return false
		}
	}
	return true
}

func placePieces(grid map[shapeCell]bool, pieces [][][]shapeCell, idx, width, height int) bool {
	if idx >= len(pieces) {
		return true
	}
	for _, orientation := range pieces[idx] {
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				if !canPlace(grid, orientation, row, col, width, height) {
					continue
				}
				for _, cell := range orientation {
					grid[shapeCell{r: row + cell.r, c: col + cell.c}] = true
				}
				if placePieces(grid, pieces, idx+1, width, height) {
					return true
				}
				for _, cell := range orientation {
					delete(grid, shapeCell{r: row + cell.r, c: col + cell.c})
				}
			}
		}
	}
	return false
}

// regionFits reports whether every required present can be placed in the
// region without overlap. Pieces are tried largest first.
func regionFits(shapes [][]shapeCell, region farmRegion) bool {
	totalArea := 0
	var pieces [][][]shapeCell
	for shapeIdx, count := range region.required {
		if shapeIdx >= len(shapes) {
			continue
		}
		for n := 0; n < count; n++ {
			totalArea += len(shapes[shapeIdx])
			pieces = append(pieces, shapeOrientations(shapes[shapeIdx]))
		}
	}
	if totalArea > region.width*region.height {
		return false
	}
	if len(pieces) == 0 {
		return true
	}
	sort.SliceStable(pieces, func(i, j int) bool {
		return len(pieces[i][0]) > len(pieces[j][0])
	})
	grid := make(map[shapeCell]bool)
	return placePieces(grid, pieces, 0, region.width, region.height)
}

// day12Part1 counts regions that can hold all their required presents.
func day12Part1(input string) (any, error) {
	shapes, regions, err := parseFarm(input)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, region := range regions {
		if regionFits(shapes, region) {
			count++
		}
	}
	return count, nil
}
