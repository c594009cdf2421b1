package room

import (
	"errors"
	"fmt"

	"floorplan/internal/generate"
	"floorplan/internal/grid"
)

var (
	ErrCatalog   = errors.New("invalid room catalog")
	ErrDoorCount = errors.New("variant door count does not match category")
)

// Catalog holds the variants available for each door category, plus an
// alternate pool tried when no rotation of the primary pool fits.
type Catalog struct {
	empty      Variant
	pools      map[generate.Category][]Variant
	alternates map[generate.Category][]Variant
}

// NewCatalog validates and assembles a catalog. empty must have no doors,
// every door category needs at least one variant, and every variant must
// have exactly as many doors as its category.
func NewCatalog(empty Variant, pools, alternates map[generate.Category][]Variant) (*Catalog, error) {
	if empty.DoorCount() != 0 {
		return nil, fmt.Errorf("%w: empty variant %q has doors", ErrCatalog, empty.ID)
	}
	c := &Catalog{
		empty:      empty,
		pools:      make(map[generate.Category][]Variant),
		alternates: make(map[generate.Category][]Variant),
	}
	for cat := generate.One; cat <= generate.Four; cat++ {
		if len(pools[cat]) == 0 {
			return nil, fmt.Errorf("%w: no %v variants", ErrCatalog, cat)
		}
	}
	for _, src := range []struct {
		from map[generate.Category][]Variant
		to   map[generate.Category][]Variant
	}{{pools, c.pools}, {alternates, c.alternates}} {
		for cat, vs := range src.from {
			if cat == generate.Empty || cat > generate.Four {
				return nil, fmt.Errorf("%w: pool for %v", ErrCatalog, cat)
			}
			for _, v := range vs {
				if v.DoorCount() != cat.Doors() {
					return nil, fmt.Errorf("%w: %q has %d doors, %v needs %d",
						ErrDoorCount, v.ID, v.DoorCount(), cat, cat.Doors())
				}
			}
			src.to[cat] = append([]Variant(nil), vs...)
		}
	}
	return c, nil
}

// Variants returns the primary pool for cat. The Empty category always has
// exactly the one fixed empty variant.
func (c *Catalog) Variants(cat generate.Category) []Variant {
	if cat == generate.Empty {
		return []Variant{c.empty}
	}
	return c.pools[cat]
}

// Alternates returns the fallback pool for cat, nil when there is none.
func (c *Catalog) Alternates(cat generate.Category) []Variant {
	return c.alternates[cat]
}

// Stock returns the built-in catalog. Its primary two-door pool holds only
// corner rooms and the alternate pool only straight halls, so straight runs
// of the critical path are always furnished from the alternates.
func Stock() *Catalog {
	c, err := NewCatalog(
		Variant{ID: "solid", Glyph: "⬛"},
		map[generate.Category][]Variant{
			generate.One: {
				{ID: "dead-end", Glyph: "🕳", Doors: []grid.Direction{grid.Up}},
				{ID: "alcove", Glyph: "🪔", Doors: []grid.Direction{grid.Up}},
			},
			generate.Two: {
				{ID: "bend", Glyph: "🟫", Doors: []grid.Direction{grid.Up, grid.Right}},
				{ID: "bend-shrine", Glyph: "⛩", Doors: []grid.Direction{grid.Up, grid.Right}},
			},
			generate.Three: {
				{ID: "tee", Glyph: "🟫", Doors: []grid.Direction{grid.Up, grid.Left, grid.Right}},
				{ID: "tee-pillared", Glyph: "🏛", Doors: []grid.Direction{grid.Up, grid.Left, grid.Right}},
			},
			generate.Four: {
				{ID: "cross", Glyph: "🟫", Doors: []grid.Direction{grid.Up, grid.Down, grid.Left, grid.Right}},
				{ID: "cross-fountain", Glyph: "⛲", Doors: []grid.Direction{grid.Up, grid.Down, grid.Left, grid.Right}},
			},
		},
		map[generate.Category][]Variant{
			generate.Two: {
				{ID: "hall", Glyph: "🟫", Doors: []grid.Direction{grid.Up, grid.Down}},
				{ID: "gallery", Glyph: "🖼", Doors: []grid.Direction{grid.Up, grid.Down}},
			},
		},
	)
	if err != nil {
		panic(err) // the stock tables are fixed
	}
	return c
}
