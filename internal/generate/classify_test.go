package generate

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"floorplan/internal/grid"
)

// examplePath is the 4x4 walk (0,0)→(1,0)→(1,1)→(2,1)→(3,1)→(3,2)→(3,3).
func examplePath() (*grid.Grid, []grid.Coord) {
	path := []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}}
	g := grid.New(4, 4)
	for _, c := range path {
		g.Set(c.X, c.Y, grid.PathStep)
	}
	g.Set(0, 0, grid.PathStart)
	g.Set(3, 3, grid.PathEnd)
	return g, path
}

func TestClassifyExamplePath(t *testing.T) {
	g, path := examplePath()
	if err := ValidatePath(g, path); err != nil {
		t.Fatalf("example path invalid: %v", err)
	}
	records, err := Classify(g, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 16 {
		t.Fatalf("%d records; want 16", len(records))
	}

	cases := []struct {
		x, y     int
		cat      Category
		required []grid.Direction
	}{
		{1, 0, Two, []grid.Direction{grid.Up, grid.Left}},
		{3, 3, One, []grid.Direction{grid.Down}},
		{0, 0, One, []grid.Direction{grid.Right}},
		{2, 1, Two, []grid.Direction{grid.Right, grid.Left}},
		{0, 3, Empty, nil},
	}
	for _, c := range cases {
		r := records[c.y*4+c.x]
		if r.X != c.x || r.Y != c.y {
			t.Fatalf("record order: got (%d,%d) at index for (%d,%d)", r.X, r.Y, c.x, c.y)
		}
		if r.Category != c.cat {
			t.Errorf("(%d,%d) category = %v; want %v", c.x, c.y, r.Category, c.cat)
		}
		if !slices.Equal(r.Required, c.required) {
			t.Errorf("(%d,%d) required = %v; want %v", c.x, c.y, r.Required, c.required)
		}
	}
}

func TestClassifyCategoryMatchesNeighbors(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		layout, err := GenerateLayout(defaultTestConfig(seed))
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		for _, r := range layout.Records {
			if !layout.Grid.IsOccupied(r.X, r.Y) {
				if r.Category != Empty {
					t.Errorf("seed=%d: empty cell (%d,%d) classified %v", seed, r.X, r.Y, r.Category)
				}
				continue
			}
			n := len(layout.Grid.NeighborsOccupied(r.X, r.Y))
			if r.Category.Doors() != n || len(r.Required) != n {
				t.Errorf("seed=%d: (%d,%d) has %d neighbours, category %v, required %v",
					seed, r.X, r.Y, n, r.Category, r.Required)
			}
			if r.Category == Empty {
				t.Errorf("seed=%d: occupied cell (%d,%d) classified empty", seed, r.X, r.Y)
			}
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	layout, err := GenerateLayout(defaultTestConfig(11))
	if err != nil {
		t.Fatal(err)
	}
	again, err := Classify(layout.Grid, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(layout.Records) {
		t.Fatalf("record count changed: %d vs %d", len(again), len(layout.Records))
	}
	for i := range again {
		a, b := again[i], layout.Records[i]
		if a.X != b.X || a.Y != b.Y || a.Category != b.Category || !slices.Equal(a.Required, b.Required) {
			t.Errorf("record %d changed: %+v vs %+v", i, a, b)
		}
	}
}

func TestClassifyAnomaly(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(1, 1, grid.ExtraRoom) // isolated room

	records, err := Classify(g, nil, false)
	if err != nil {
		t.Fatalf("lenient classify returned %v", err)
	}
	if r := records[1*3+1]; r.Category != Empty || r.Required != nil {
		t.Errorf("isolated room = %+v; want Empty with no required doors", r)
	}

	if _, err := Classify(g, nil, true); !errors.Is(err, ErrAnomaly) {
		t.Errorf("strict classify err = %v; want ErrAnomaly", err)
	}
}

func TestClassifyFourDoor(t *testing.T) {
	g := grid.New(3, 3)
	for _, c := range []grid.Coord{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}} {
		g.Set(c.X, c.Y, grid.PathStep)
	}
	records, err := Classify(g, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	r := records[1*3+1]
	if r.Category != Four {
		t.Errorf("centre category = %v; want four-door", r.Category)
	}
	want := []grid.Direction{grid.Up, grid.Right, grid.Down, grid.Left}
	if !slices.Equal(r.Required, want) {
		t.Errorf("required = %v; want %v", r.Required, want)
	}
}

func TestCategoryForCount(t *testing.T) {
	for n, want := range []Category{Empty, One, Two, Three, Four} {
		got, err := categoryForCount(n)
		if err != nil || got != want {
			t.Errorf("categoryForCount(%d) = %v, %v; want %v", n, got, err, want)
		}
	}
	for _, n := range []int{-1, 5} {
		if _, err := categoryForCount(n); !errors.Is(err, ErrNeighborCount) {
			t.Errorf("categoryForCount(%d) err = %v; want ErrNeighborCount", n, err)
		}
	}
}

func TestPopulateExtraRoomsRate(t *testing.T) {
	// A long occupied middle row makes every cell above and below it
	// eligible exactly once.
	const width = 2000
	g := grid.New(width, 3)
	for x := 0; x < width; x++ {
		g.Set(x, 1, grid.PathStep)
	}
	added := populateExtraRooms(g, rand.New(rand.NewSource(5)), 4)

	eligible := 2 * width
	rate := float64(added) / float64(eligible)
	if rate < 0.22 || rate > 0.28 {
		t.Errorf("extra room rate = %.3f over %d cells; want about 0.25", rate, eligible)
	}
	if got := g.Count(grid.ExtraRoom); got != added {
		t.Errorf("reported %d added, grid holds %d", added, got)
	}
}

func TestPopulateExtraRoomsCountsSamePassRooms(t *testing.T) {
	g := grid.New(5, 5)
	g.Set(0, 0, grid.PathStart)
	g.Set(1, 0, grid.PathEnd)
	// Chance 1 always succeeds, so the rooms grow along the scan order.
	populateExtraRooms(g, rand.New(rand.NewSource(1)), 1)

	// Row 0 fills rightward from (1,0); every later row touches the one below.
	if n := g.Count(grid.Empty); n != 0 {
		t.Errorf("%d empty cells left with chance 1:\n%s", n, g)
	}
	if !Connected(g) {
		t.Errorf("extra rooms disconnected:\n%s", g)
	}
}

func TestConnected(t *testing.T) {
	g := grid.New(4, 4)
	if Connected(g) {
		t.Error("empty grid reported connected")
	}
	g.Set(0, 0, grid.PathStart)
	g.Set(0, 1, grid.PathStep)
	if !Connected(g) {
		t.Error("two adjacent rooms reported disconnected")
	}
	g.Set(3, 3, grid.ExtraRoom)
	if Connected(g) {
		t.Error("detached room reported connected")
	}
}
