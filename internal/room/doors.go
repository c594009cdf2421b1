// Package room models the room variants a floor plan is furnished with: a
// set of door directions that turns in 90° steps.
package room

import (
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"floorplan/internal/grid"
)

// DoorSet is an unordered set of door directions.
type DoorSet struct {
	set mapset.Set[grid.Direction]
}

// NewDoorSet returns a set holding dirs. Duplicates collapse.
func NewDoorSet(dirs ...grid.Direction) DoorSet {
	s := DoorSet{set: mapset.New[grid.Direction]()}
	for _, d := range dirs {
		s.set.Put(d)
	}
	return s
}

// Has reports whether the set contains a door facing d.
func (s DoorSet) Has(d grid.Direction) bool { return s.set.Has(d) }

// Len returns the number of doors.
func (s DoorSet) Len() int { return s.set.Size() }

// Equal reports whether s and other hold exactly the same directions.
func (s DoorSet) Equal(other DoorSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, d := range grid.Directions {
		if s.Has(d) != other.Has(d) {
			return false
		}
	}
	return true
}

// Rotated returns a copy of s turned 90° counter-clockwise.
func (s DoorSet) Rotated() DoorSet {
	out := NewDoorSet()
	s.set.Each(func(d grid.Direction) {
		out.set.Put(d.CCW())
	})
	return out
}

// Directions lists the doors in grid.Directions order.
func (s DoorSet) Directions() []grid.Direction {
	dirs := make([]grid.Direction, 0, s.Len())
	s.set.Each(func(d grid.Direction) {
		dirs = append(dirs, d)
	})
	slices.Sort(dirs)
	return dirs
}

func (s DoorSet) String() string {
	dirs := s.Directions()
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}
