package generate

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"floorplan/internal/grid"
)

var (
	ErrAnomaly       = errors.New("occupied cell has no occupied neighbours")
	ErrNeighborCount = errors.New("neighbour count out of range")
)

// Category is the number of doors a cell's room needs.
type Category uint8

const (
	Empty Category = iota
	One
	Two
	Three
	Four
)

// Doors returns the door count the category stands for.
func (c Category) Doors() int { return int(c) }

func (c Category) String() string {
	switch c {
	case Empty:
		return "empty"
	case One:
		return "one-door"
	case Two:
		return "two-door"
	case Three:
		return "three-door"
	case Four:
		return "four-door"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// RoomTypeRecord is the classification of one cell.
type RoomTypeRecord struct {
	X, Y     int
	Category Category
	// Required lists the directions toward occupied neighbours in
	// grid.Directions order. Empty for Empty cells.
	Required []grid.Direction
}

func categoryForCount(n int) (Category, error) {
	switch n {
	case 0:
		return Empty, nil
	case 1:
		return One, nil
	case 2:
		return Two, nil
	case 3:
		return Three, nil
	case 4:
		return Four, nil
	}
	return Empty, fmt.Errorf("%w: %d", ErrNeighborCount, n)
}

// RequiredDirections returns the directions from (x, y) toward each of its
// occupied neighbours, sorted in grid.Directions order.
func RequiredDirections(g *grid.Grid, x, y int) []grid.Direction {
	from := grid.Coord{X: x, Y: y}
	neighbors := g.NeighborsOccupied(x, y)
	dirs := make([]grid.Direction, 0, len(neighbors))
	for _, n := range neighbors {
		d, _ := grid.DirectionTo(from, n)
		dirs = append(dirs, d)
	}
	slices.Sort(dirs)
	return dirs
}

// Classify labels every cell of g in row-major order. An occupied cell with
// no occupied neighbour is logged and labelled Empty, or returned as
// ErrAnomaly when strict is set.
func Classify(g *grid.Grid, logger *slog.Logger, strict bool) ([]RoomTypeRecord, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	records := make([]RoomTypeRecord, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsOccupied(x, y) {
				records = append(records, RoomTypeRecord{X: x, Y: y, Category: Empty})
				continue
			}

			required := RequiredDirections(g, x, y)
			cat, err := categoryForCount(len(required))
			if err != nil {
				return nil, fmt.Errorf("classify (%d,%d): %w", x, y, err)
			}
			if cat == Empty {
				if strict {
					return nil, fmt.Errorf("classify (%d,%d): %w", x, y, ErrAnomaly)
				}
				logger.Warn("classification anomaly, treating cell as empty",
					"x", x, "y", y, "marker", g.At(x, y).String())
				required = nil
			}
			records = append(records, RoomTypeRecord{X: x, Y: y, Category: cat, Required: required})
		}
	}
	return records, nil
}
