package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"floorplan/internal/generate"
)

var allKeys = []string{EnvWidth, EnvHeight, EnvExtraRoomChance, EnvMaxAttempts, EnvSeed, EnvStrict}

// unsetEnv removes every FLOORPLAN_ variable for the test and restores the
// previous state afterwards, including values a .env file writes.
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 4 || cfg.ExtraRoomChance != 4 {
		t.Errorf("Default() = %+v; want 4x4 with chance 4", cfg)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	unsetEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("Load with missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load = %+v; want defaults", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	unsetEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	data := "FLOORPLAN_WIDTH=6\nFLOORPLAN_HEIGHT=9\nFLOORPLAN_SEED=42\nFLOORPLAN_STRICT=true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	// The process environment beats the file.
	t.Setenv(EnvHeight, "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 6 || cfg.Height != 5 || cfg.Seed != 42 || !cfg.Strict {
		t.Errorf("Load = %+v; want width 6 from file, height 5 from env, seed 42, strict", cfg)
	}

	// Flags beat both.
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-width", "8", "-chance", "10"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 8 || cfg.Height != 5 || cfg.ExtraRoomChance != 10 {
		t.Errorf("after flags = %+v; want width 8, height 5, chance 10", cfg)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"width", map[string]string{EnvWidth: "wide"}},
		{"seed", map[string]string{EnvSeed: "1.5"}},
		{"strict", map[string]string{EnvStrict: "sometimes"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.applyEnv(func(k string) (string, bool) {
				v, ok := tc.env[k]
				return v, ok
			})
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"single row", func(c *Config) { c.Width, c.Height = 5, 1 }, true},
		{"one cell", func(c *Config) { c.Width, c.Height = 1, 1 }, false},
		{"zero height", func(c *Config) { c.Height = 0 }, false},
		{"chance too small", func(c *Config) { c.ExtraRoomChance = 3 }, false},
		{"chance at max", func(c *Config) { c.ExtraRoomChance = 20 }, true},
		{"chance too large", func(c *Config) { c.ExtraRoomChance = 21 }, false},
		{"no attempts", func(c *Config) { c.MaxAttempts = 0 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 99
	if got := cfg.ResolveSeed(); got != 99 {
		t.Errorf("ResolveSeed() = %d; want 99", got)
	}
	cfg.Seed = 0
	if got := cfg.ResolveSeed(); got == 0 {
		t.Error("ResolveSeed() with seed 0 should pick a time-based seed")
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	cfg := Default()
	a, err := generate.GenerateLayout(cfg.Generate(17, nil))
	if err != nil {
		t.Fatal(err)
	}
	b, err := generate.GenerateLayout(cfg.Generate(17, nil))
	if err != nil {
		t.Fatal(err)
	}
	if a.Grid.String() != b.Grid.String() {
		t.Errorf("seed 17 gave different layouts:\n%s\n%s", a.Grid, b.Grid)
	}
}
