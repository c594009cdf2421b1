// Package viewer runs the interactive floor plan browser: generate a layout,
// furnish it, draw it, and step to the next seed on request.
package viewer

import (
	"fmt"
	"log/slog"

	"floorplan/internal/config"
	"floorplan/internal/generate"
	"floorplan/internal/grid"
	"floorplan/internal/place"
	"floorplan/internal/render"
	"floorplan/internal/room"

	"github.com/gdamore/tcell/v2"
)

// Viewer is the top-level orchestrator for one screen.
type Viewer struct {
	screen   tcell.Screen
	board    *render.Board
	cfg      config.Config
	provider place.Provider
	logger   *slog.Logger
	theme    int
	seed     int64

	layout     *generate.Layout
	placements []place.Placement
	err        error

	pointer    grid.Coord // last mouse position on screen
	hasPointer bool
}

// New creates a Viewer drawing on screen. The screen must already be
// initialized; Run finalizes it on return.
func New(screen tcell.Screen, cfg config.Config, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewer{
		screen:   screen,
		board:    render.NewBoard(screen, render.Themes[0]),
		cfg:      cfg,
		provider: room.Stock(),
		logger:   logger,
	}
}

// Seed returns the seed of the layout on screen.
func (v *Viewer) Seed() int64 { return v.seed }

// Layout returns the layout on screen, nil if the last step failed.
func (v *Viewer) Layout() *generate.Layout { return v.layout }

// Placements returns the furnished rooms on screen.
func (v *Viewer) Placements() []place.Placement { return v.placements }

// Hovered returns the placement under the mouse pointer, if any.
func (v *Viewer) Hovered() (place.Placement, bool) {
	if !v.hasPointer {
		return place.Placement{}, false
	}
	c, ok := v.board.RoomAt(v.pointer.X, v.pointer.Y)
	if !ok {
		return place.Placement{}, false
	}
	return place.At(v.placements, c)
}

// PointAt records the mouse position and refreshes the status line.
func (v *Viewer) PointAt(sx, sy int) {
	v.pointer, v.hasPointer = grid.Coord{X: sx, Y: sy}, true
	v.draw()
}

// Board returns the board the viewer draws on.
func (v *Viewer) Board() *render.Board { return v.board }

// Step generates, furnishes and draws the layout for seed. Generation and
// furnishing share one random stream, so a seed always yields the same
// furnished floor.
func (v *Viewer) Step(seed int64) error {
	v.seed = seed
	genCfg := v.cfg.Generate(seed, v.logger)

	layout, err := generate.GenerateLayout(genCfg)
	if err != nil {
		v.layout, v.placements, v.err = nil, nil, err
		v.board.Release()
		v.logger.Error("layout generation failed", "seed", seed, "error", err)
		v.draw()
		return err
	}

	v.layout = layout
	v.placements = place.ResolvePlacements(layout.Records, v.provider, genCfg.Rand, v.logger)
	v.err = place.Err(v.placements)
	v.board.Apply(layout.Grid, v.placements)
	v.draw()
	return v.err
}

func (v *Viewer) draw() {
	help := "r/→ next  p/← previous  t theme  q quit"
	if v.layout == nil {
		v.board.DrawStatus(fmt.Sprintf("seed %d: %v", v.seed, v.err), help)
		return
	}
	status := fmt.Sprintf("seed %d  %dx%d  attempts %d  path %d  rooms %d  theme %s",
		v.seed, v.layout.Grid.Width, v.layout.Grid.Height, v.layout.Attempts,
		len(v.layout.Path), len(v.layout.Grid.Occupied()), v.board.Theme().Name)
	if failed := place.Failed(v.placements); len(failed) > 0 {
		status += fmt.Sprintf("  %d rooms failed to fit", len(failed))
	}
	if p, ok := v.Hovered(); ok {
		help = describe(p)
	}
	v.board.DrawStatus(status, help)
}

// describe summarizes one placement for the status line.
func describe(p place.Placement) string {
	if p.Err != nil {
		return fmt.Sprintf("(%d,%d) %s: %v", p.X, p.Y, p.Category, p.Err)
	}
	s := fmt.Sprintf("(%d,%d) %s %s rot %d doors %s", p.X, p.Y, p.Category, p.VariantID, p.Rotations, p.Doors)
	if p.Alternate {
		s += " (alternate)"
	}
	return s
}

// processAction applies a to the viewer. It returns false when the viewer
// should exit.
func (v *Viewer) processAction(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionRegenerate:
		_ = v.Step(v.seed + 1) // failures are shown on the status line
	case ActionPrevious:
		_ = v.Step(v.seed - 1)
	case ActionTheme:
		v.theme = (v.theme + 1) % len(render.Themes)
		v.board.SetTheme(render.Themes[v.theme])
		v.redraw()
	}
	return true
}

func (v *Viewer) redraw() {
	if v.layout != nil {
		v.board.Apply(v.layout.Grid, v.placements)
	}
	v.draw()
}

// Run shows the layout for the configured seed and handles keys until the
// user quits or the screen closes.
func (v *Viewer) Run() {
	defer v.screen.Fini()

	v.screen.EnableMouse()
	_ = v.Step(v.cfg.ResolveSeed())
	for {
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
			v.redraw()
		case *tcell.EventMouse:
			v.PointAt(ev.Position())
		case *tcell.EventKey:
			if !v.processAction(keyToAction(ev)) {
				return
			}
		}
	}
}
