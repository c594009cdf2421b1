package generate

import (
	"fmt"
	"math/rand"

	"floorplan/internal/grid"
)

// walkCriticalPath empties g and snakes a self-avoiding walk from a random
// corner until it lands on a different corner. It returns ErrStuck when the
// walk boxes itself in; g is then left in the failed state and the caller
// must start over.
func walkCriticalPath(g *grid.Grid, rng *rand.Rand) ([]grid.Coord, error) {
	g.Reset()

	corners := g.Corners()
	start := corners[rng.Intn(len(corners))]
	g.Set(start.X, start.Y, grid.PathStart)
	path := []grid.Coord{start}

	for {
		cur := path[len(path)-1]
		if cur != start && g.IsCorner(cur.X, cur.Y) {
			g.Set(cur.X, cur.Y, grid.PathEnd)
			return path, nil
		}

		next := g.NeighborsEmpty(cur.X, cur.Y)
		if len(next) == 0 {
			return nil, fmt.Errorf("%w at %v after %d steps", ErrStuck, cur, len(path)-1)
		}

		step := next[rng.Intn(len(next))]
		g.Set(step.X, step.Y, grid.PathStep)
		path = append(path, step)
	}
}

// ValidatePath checks that path is a non-repeating chain of 4-adjacent cells
// running from the start marker to the end marker at two distinct corners.
func ValidatePath(g *grid.Grid, path []grid.Coord) error {
	if len(path) < 2 {
		return fmt.Errorf("%w: %d cells", ErrBadPath, len(path))
	}
	start, end := path[0], path[len(path)-1]
	if g.At(start.X, start.Y) != grid.PathStart || g.At(end.X, end.Y) != grid.PathEnd {
		return fmt.Errorf("%w: endpoints %v %v not marked", ErrBadPath, start, end)
	}
	if !g.IsCorner(start.X, start.Y) || !g.IsCorner(end.X, end.Y) {
		return fmt.Errorf("%w: endpoints %v %v not corners", ErrBadPath, start, end)
	}
	if g.Count(grid.PathStart) != 1 || g.Count(grid.PathEnd) != 1 {
		return fmt.Errorf("%w: want one start and one end", ErrBadPath)
	}

	seen := make(map[grid.Coord]bool, len(path))
	for i, c := range path {
		if seen[c] {
			return fmt.Errorf("%w: %v visited twice", ErrBadPath, c)
		}
		seen[c] = true
		if i > 0 && !grid.Adjacent(path[i-1], c) {
			return fmt.Errorf("%w: %v does not touch %v", ErrBadPath, c, path[i-1])
		}
	}
	return nil
}
