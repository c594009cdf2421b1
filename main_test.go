package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"floorplan/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvWidth, config.EnvHeight, config.EnvExtraRoomChance,
		config.EnvMaxAttempts, config.EnvSeed, config.EnvStrict,
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestRunDump(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "none.env")

	var out, errOut bytes.Buffer
	if err := run([]string{"-dump", "-seed", "3", "-width", "5", "-env", missing}, &out, &errOut); err != nil {
		t.Fatalf("run: %v (stderr %q)", err, errOut.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "seed 3  5x4") {
		t.Errorf("header = %q", lines[0])
	}
	// Header, four grid rows, then one line per cell.
	if got, want := len(lines), 1+4+20; got != want {
		t.Fatalf("%d output lines; want %d:\n%s", got, want, out.String())
	}
	for _, row := range lines[1:5] {
		if len(row) != 5 {
			t.Errorf("grid row %q; want 5 cells", row)
		}
	}
}

func TestRunFlagsOverrideEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FLOORPLAN_WIDTH=6\nFLOORPLAN_HEIGHT=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run([]string{"-dump", "-seed", "9", "-height", "2", "-env", path}, &out, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if header := strings.SplitN(out.String(), "\n", 2)[0]; !strings.Contains(header, "6x2") {
		t.Errorf("header = %q; want width from file, height from flag", header)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "none.env")
	err := run([]string{"-dump", "-chance", "2", "-env", missing}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("chance 2 accepted")
	}
}
