// Package place furnishes a classified floor plan with concrete room
// variants, turning each one until its doors face exactly the neighbouring
// rooms.
package place

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"floorplan/internal/generate"
	"floorplan/internal/grid"
	"floorplan/internal/room"
)

var ErrEmptyPool = errors.New("no variants for category")

// Provider supplies the candidate variants for each door category.
// Variants(generate.Empty) must hold exactly one doorless variant.
type Provider interface {
	Variants(cat generate.Category) []room.Variant
	Alternates(cat generate.Category) []room.Variant
}

// MismatchError reports a cell whose required doors no candidate variant
// could match in any orientation.
type MismatchError struct {
	X, Y     int
	Category generate.Category
	Required room.DoorSet
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("no %v variant fits (%d,%d) with doors %v", e.Category, e.X, e.Y, e.Required)
}

// Placement is the room chosen for one cell. Err is non-nil when the cell
// could not be furnished; the other room fields are then unset.
type Placement struct {
	X, Y      int
	Category  generate.Category
	VariantID string
	Glyph     string
	Rotations int // quarter turns counter-clockwise applied to the variant
	Doors     room.DoorSet
	Alternate bool // chosen from the alternate pool
	Err       error
}

// ResolvePlacements picks and orients a variant for every record. Random
// draws per cell, in order: the variant, then either the rotation count
// (four-door rooms) or the alternate variant (two-door fallback).
func ResolvePlacements(records []generate.RoomTypeRecord, provider Provider, rng *rand.Rand, logger *slog.Logger) []Placement {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	out := make([]Placement, 0, len(records))
	for _, rec := range records {
		p := resolveOne(rec, provider, rng)
		if p.Err != nil {
			logger.Error("room placement failed", "x", rec.X, "y", rec.Y,
				"category", rec.Category.String(), "error", p.Err)
		}
		out = append(out, p)
	}
	return out
}

func resolveOne(rec generate.RoomTypeRecord, provider Provider, rng *rand.Rand) Placement {
	p := Placement{X: rec.X, Y: rec.Y, Category: rec.Category}

	pool := provider.Variants(rec.Category)
	if len(pool) == 0 {
		p.Err = fmt.Errorf("(%d,%d): %w %v", rec.X, rec.Y, ErrEmptyPool, rec.Category)
		return p
	}

	if rec.Category == generate.Empty {
		return p.with(pool[0].Instantiate(), false)
	}

	inst := pick(pool, rng)
	if rec.Category == generate.Four {
		room.RotateRandom(inst, rng)
		return p.with(inst, false)
	}

	required := room.NewDoorSet(rec.Required...)
	if orient(inst, required) {
		return p.with(inst, false)
	}
	if rec.Category == generate.Two {
		if alts := provider.Alternates(rec.Category); len(alts) > 0 {
			inst = pick(alts, rng)
			if orient(inst, required) {
				return p.with(inst, true)
			}
		}
	}

	p.Err = &MismatchError{X: rec.X, Y: rec.Y, Category: rec.Category, Required: required}
	return p
}

func pick(pool []room.Variant, rng *rand.Rand) *room.Instance {
	return pool[rng.Intn(len(pool))].Instantiate()
}

// orient turns inst through at most three quarter turns until its doors
// equal required. On failure inst is back in its starting orientation.
func orient(inst *room.Instance, required room.DoorSet) bool {
	for turn := 0; turn < 4; turn++ {
		if inst.Doors().Equal(required) {
			return true
		}
		inst.Rotate90()
	}
	return false
}

func (p Placement) with(inst *room.Instance, alternate bool) Placement {
	p.VariantID = inst.VariantID()
	p.Glyph = inst.Glyph()
	p.Rotations = inst.Rotations()
	p.Doors = inst.Doors()
	p.Alternate = alternate
	return p
}

// Failed returns the placements that carry an error.
func Failed(placements []Placement) []Placement {
	var out []Placement
	for _, p := range placements {
		if p.Err != nil {
			out = append(out, p)
		}
	}
	return out
}

// Err joins every placement error, nil when all cells were furnished.
func Err(placements []Placement) error {
	var errs []error
	for _, p := range Failed(placements) {
		errs = append(errs, p.Err)
	}
	return errors.Join(errs...)
}

// At finds the placement for c.
func At(placements []Placement, c grid.Coord) (Placement, bool) {
	for _, p := range placements {
		if p.X == c.X && p.Y == c.Y {
			return p, true
		}
	}
	return Placement{}, false
}
