package generate

import (
	"math/rand"

	"floorplan/internal/grid"
)

// populateExtraRooms gives every empty cell touching a room a 1-in-chance
// roll to become an extra room. The scan is row-major over the live grid, so
// a room added earlier in the pass counts as a neighbour for later cells.
func populateExtraRooms(g *grid.Grid, rng *rand.Rand, chance int) int {
	added := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsEmpty(x, y) || len(g.NeighborsOccupied(x, y)) == 0 {
				continue
			}
			if rng.Intn(chance) == 0 {
				g.Set(x, y, grid.ExtraRoom)
				added++
			}
		}
	}
	return added
}
