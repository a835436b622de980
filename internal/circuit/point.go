package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is the position of a junction box in 3-D space. Boxes carry no
// identity of their own; callers refer to them by index into the input slice.
type Point struct {
	X, Y, Z int
}

// Dist2 returns the squared Euclidean distance between p and q.
// Squared distance preserves the ordering of non-negative distances,
// so the greedy pipeline can sort on it without taking square roots.
func (p Point) Dist2(q Point) int64 {
	dx := int64(p.X - q.X)
	dy := int64(p.Y - q.Y)
	dz := int64(p.Z - q.Z)
	return dx*dx + dy*dy + dz*dz
}

// ParsePoints parses one "x,y,z" triple per line. Blank lines are skipped.
func ParsePoints(text string) ([]Point, error) {
	var points []Point
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("circuit: line %d: expected x,y,z, got %q", i+1, line)
		}
		var coords [3]int
		for j, part := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("circuit: line %d: bad coordinate %q: %w", i+1, part, err)
			}
			coords[j] = v
		}
		points = append(points, Point{X: coords[0], Y: coords[1], Z: coords[2]})
	}
	return points, nil
}
