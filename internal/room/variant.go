package room

import (
	"math/rand"

	"floorplan/internal/grid"
)

// Variant is one room design: an identifier, the glyph drawn at its centre
// and its doors in the unrotated orientation.
type Variant struct {
	ID    string
	Glyph string
	Doors []grid.Direction
}

// DoorCount returns the number of distinct doors of the variant.
func (v Variant) DoorCount() int { return NewDoorSet(v.Doors...).Len() }

// Instantiate returns a fresh, unrotated instance of v.
func (v Variant) Instantiate() *Instance {
	return &Instance{variantID: v.ID, glyph: v.Glyph, doors: NewDoorSet(v.Doors...)}
}

// Instance is a variant placed in one cell. Rotating it turns its doors in
// place.
type Instance struct {
	variantID string
	glyph     string
	doors     DoorSet
	rotations int // quarter turns counter-clockwise, 0-3
}

// VariantID returns the ID of the variant the instance was made from.
func (i *Instance) VariantID() string { return i.variantID }

// Glyph returns the variant's centre glyph.
func (i *Instance) Glyph() string { return i.glyph }

// Doors returns the door set in the current orientation.
func (i *Instance) Doors() DoorSet { return i.doors }

// Rotations returns the quarter turns applied so far, modulo 4.
func (i *Instance) Rotations() int { return i.rotations }

// Rotate90 turns the instance 90° counter-clockwise.
func (i *Instance) Rotate90() {
	i.doors = i.doors.Rotated()
	i.rotations = (i.rotations + 1) % 4
}

// RotateRandom applies 0-3 quarter turns drawn from rng.
func RotateRandom(i *Instance, rng *rand.Rand) {
	for n := rng.Intn(4); n > 0; n-- {
		i.Rotate90()
	}
}
