// Package generate lays out a dungeon floor plan: a corner-to-corner critical
// path, optional branch rooms, and a door-count category for every cell.
package generate

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"floorplan/internal/grid"
)

const (
	DefaultWidth           = 4
	DefaultHeight          = 4
	DefaultExtraRoomChance = 4
	DefaultMaxAttempts     = 1000
)

var (
	ErrInvalidConfig     = errors.New("invalid layout config")
	ErrStuck             = errors.New("critical path stuck")
	ErrAttemptsExhausted = errors.New("critical path attempts exhausted")
	ErrDisconnected      = errors.New("layout rooms are not connected")
	ErrBadPath           = errors.New("malformed critical path")
)

// Config drives generation of one floor plan.
type Config struct {
	Width, Height   int
	ExtraRoomChance int  // one in N eligible cells becomes an extra room
	MaxAttempts     int  // critical path retries before giving up
	Strict          bool // classification anomalies become errors
	Rand            *rand.Rand
	Logger          *slog.Logger
}

func (cfg *Config) validate() error {
	switch {
	case cfg.Rand == nil:
		return fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	case cfg.Width < 1 || cfg.Height < 1:
		return fmt.Errorf("%w: %dx%d grid", ErrInvalidConfig, cfg.Width, cfg.Height)
	case cfg.Width*cfg.Height < 2:
		return fmt.Errorf("%w: %dx%d grid has no second corner", ErrInvalidConfig, cfg.Width, cfg.Height)
	case cfg.ExtraRoomChance < 0 || cfg.MaxAttempts < 0:
		return fmt.Errorf("%w: negative chance or attempts", ErrInvalidConfig)
	}
	return nil
}

func (cfg *Config) extraRoomChance() int {
	if cfg.ExtraRoomChance == 0 {
		return DefaultExtraRoomChance
	}
	return cfg.ExtraRoomChance
}

func (cfg *Config) maxAttempts() int {
	if cfg.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return cfg.MaxAttempts
}

func (cfg *Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.Logger
}

// Layout is the result of one successful generation run.
type Layout struct {
	Grid     *grid.Grid
	Path     []grid.Coord
	Records  []RoomTypeRecord
	Attempts int // critical path attempts consumed, including the successful one
}

// Start returns the first cell of the critical path.
func (l *Layout) Start() grid.Coord { return l.Path[0] }

// End returns the ladder cell at the end of the critical path.
func (l *Layout) End() grid.Coord { return l.Path[len(l.Path)-1] }

// Record returns the classification of (x, y).
func (l *Layout) Record(x, y int) RoomTypeRecord {
	return l.Records[y*l.Grid.Width+x]
}

// GenerateLayout walks a critical path (retrying from an empty grid until one
// reaches a corner), sprinkles extra rooms next to it and classifies every
// cell. The result depends only on cfg and the state of cfg.Rand.
func GenerateLayout(cfg *Config) (*Layout, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger := cfg.logger()
	g := grid.New(cfg.Width, cfg.Height)

	var (
		path     []grid.Coord
		attempts int
		lastErr  error
	)
	for path == nil {
		if attempts >= cfg.maxAttempts() {
			return nil, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, attempts, lastErr)
		}
		attempts++
		p, err := walkCriticalPath(g, cfg.Rand)
		if err != nil {
			logger.Debug("critical path stuck, regenerating", "attempt", attempts, "error", err)
			lastErr = err
			continue
		}
		path = p
	}

	extra := populateExtraRooms(g, cfg.Rand, cfg.extraRoomChance())

	if err := ValidatePath(g, path); err != nil {
		return nil, err
	}
	if !Connected(g) {
		return nil, ErrDisconnected
	}

	records, err := Classify(g, logger, cfg.Strict)
	if err != nil {
		return nil, err
	}

	logger.Info("layout generated",
		"width", cfg.Width, "height", cfg.Height,
		"attempts", attempts, "path", len(path), "extra", extra,
		"start", path[0].String(), "end", path[len(path)-1].String())

	return &Layout{Grid: g, Path: path, Records: records, Attempts: attempts}, nil
}
