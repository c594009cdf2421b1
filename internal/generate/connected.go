package generate

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"floorplan/internal/grid"
)

// Connected reports whether every occupied cell of g can reach every other
// through 4-adjacent occupied cells. A grid with no rooms is not connected.
func Connected(g *grid.Grid) bool {
	rooms := g.Occupied()
	if len(rooms) == 0 {
		return false
	}

	seen := mapset.New[grid.Coord]()
	frontier := queue.New[grid.Coord]()
	seen.Put(rooms[0])
	frontier.Enqueue(rooms[0])
	for !frontier.Empty() {
		c := frontier.Dequeue()
		for _, n := range g.NeighborsOccupied(c.X, c.Y) {
			if !seen.Has(n) {
				seen.Put(n)
				frontier.Enqueue(n)
			}
		}
	}
	return seen.Size() == len(rooms)
}
