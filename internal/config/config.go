// Package config gathers the floor plan settings from defaults, an optional
// .env file, the process environment and command-line flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"floorplan/internal/generate"
)

const (
	MinExtraRoomChance = 4
	MaxExtraRoomChance = 20

	EnvWidth           = "FLOORPLAN_WIDTH"
	EnvHeight          = "FLOORPLAN_HEIGHT"
	EnvExtraRoomChance = "FLOORPLAN_EXTRA_ROOM_CHANCE"
	EnvMaxAttempts     = "FLOORPLAN_MAX_ATTEMPTS"
	EnvSeed            = "FLOORPLAN_SEED"
	EnvStrict          = "FLOORPLAN_STRICT"
)

// ErrInvalidConfig is shared with the generator so callers can test for
// either source with one errors.Is.
var ErrInvalidConfig = generate.ErrInvalidConfig

// Config is a complete set of run settings.
type Config struct {
	Width, Height   int
	ExtraRoomChance int
	MaxAttempts     int
	Seed            int64 // 0 picks a time-based seed
	Strict          bool
}

// Default returns the stock 4x4 settings.
func Default() Config {
	return Config{
		Width:           generate.DefaultWidth,
		Height:          generate.DefaultHeight,
		ExtraRoomChance: generate.DefaultExtraRoomChance,
		MaxAttempts:     generate.DefaultMaxAttempts,
	}
}

// Load starts from Default, then applies the .env file at path (a missing
// file is fine) and finally the process environment.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
		{EnvExtraRoomChance, &c.ExtraRoomChance},
		{EnvMaxAttempts, &c.MaxAttempts},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, e.key, v, err)
		}
		*e.dst = n
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvStrict); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvStrict, v, err)
		}
		c.Strict = b
	}
	return nil
}

// RegisterFlags binds flags to c's fields. The current values become the flag
// defaults, so call it after Load.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.Width, "width", c.Width, "grid width in rooms")
	flags.IntVar(&c.Height, "height", c.Height, "grid height in rooms")
	flags.IntVar(&c.ExtraRoomChance, "chance", c.ExtraRoomChance, "one in N cells next to a room becomes an extra room")
	flags.IntVar(&c.MaxAttempts, "attempts", c.MaxAttempts, "critical path attempts before giving up")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time-based)")
	flags.BoolVar(&c.Strict, "strict", c.Strict, "treat classification anomalies as errors")
}

// Validate checks the ranges the generator and viewer rely on.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: %dx%d grid", ErrInvalidConfig, c.Width, c.Height)
	case c.Width*c.Height < 2:
		return fmt.Errorf("%w: %dx%d grid has only one corner", ErrInvalidConfig, c.Width, c.Height)
	case c.ExtraRoomChance < MinExtraRoomChance || c.ExtraRoomChance > MaxExtraRoomChance:
		return fmt.Errorf("%w: extra room chance %d outside [%d, %d]",
			ErrInvalidConfig, c.ExtraRoomChance, MinExtraRoomChance, MaxExtraRoomChance)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts %d", ErrInvalidConfig, c.MaxAttempts)
	}
	return nil
}

// ResolveSeed returns Seed, or a time-based seed when Seed is 0.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Generate builds the generator settings for one run seeded with seed.
func (c Config) Generate(seed int64, logger *slog.Logger) *generate.Config {
	return &generate.Config{
		Width:           c.Width,
		Height:          c.Height,
		ExtraRoomChance: c.ExtraRoomChance,
		MaxAttempts:     c.MaxAttempts,
		Strict:          c.Strict,
		Rand:            rand.New(rand.NewSource(seed)),
		Logger:          logger,
	}
}
