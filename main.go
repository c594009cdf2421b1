// floorplan generates dungeon floor plans and browses them in the terminal.
//
// Usage:
//
//	floorplan [-width 4] [-height 4] [-chance 4] [-seed N] [-attempts 1000]
//	          [-strict] [-env .env] [-dump]
//
// With -dump the layout for the seed is printed to stdout instead of opening
// the interactive viewer.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"floorplan/internal/config"
	"floorplan/internal/generate"
	"floorplan/internal/place"
	"floorplan/internal/room"
	"floorplan/internal/viewer"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("floorplan", flag.ContinueOnError)
	flags.SetOutput(stderr)
	envPath := flags.String("env", ".env", "path to an optional .env file")
	dumpOnly := flags.Bool("dump", false, "print the layout and exit")
	verbose := flags.Bool("v", false, "log generation details")
	parsed := config.Default()
	parsed.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	// The .env path is itself a flag, so load after parsing and replay the
	// flags the user set on top of the loaded values.
	cfg, err := config.Load(*envPath)
	if err != nil {
		return err
	}
	overlay := flag.NewFlagSet("overlay", flag.ContinueOnError)
	cfg.RegisterFlags(overlay)
	var replayErr error
	flags.Visit(func(f *flag.Flag) {
		if overlay.Lookup(f.Name) == nil {
			return
		}
		if err := overlay.Set(f.Name, f.Value.String()); err != nil && replayErr == nil {
			replayErr = err
		}
	})
	if replayErr != nil {
		return replayErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *dumpOnly {
		return dump(stdout, cfg, logger)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// The viewer owns the screen and logs would corrupt it.
	logger = slog.New(slog.DiscardHandler)
	viewer.New(screen, cfg, logger).Run()
	return nil
}

// dump writes the debug rendering and the furnished rooms for one seed.
func dump(w io.Writer, cfg config.Config, logger *slog.Logger) error {
	seed := cfg.ResolveSeed()
	genCfg := cfg.Generate(seed, logger)
	layout, err := generate.GenerateLayout(genCfg)
	if err != nil {
		return err
	}
	placements := place.ResolvePlacements(layout.Records, room.Stock(), genCfg.Rand, logger)

	fmt.Fprintf(w, "seed %d  %dx%d  attempts %d  path %d\n",
		seed, layout.Grid.Width, layout.Grid.Height, layout.Attempts, len(layout.Path))
	fmt.Fprint(w, layout.Grid.String())
	for _, p := range placements {
		if p.Err != nil {
			fmt.Fprintf(w, "(%d,%d) %-9s FAILED: %v\n", p.X, p.Y, p.Category, p.Err)
			continue
		}
		fmt.Fprintf(w, "(%d,%d) %-9s %-15s rot %d doors %s\n",
			p.X, p.Y, p.Category, p.VariantID, p.Rotations, p.Doors)
	}
	return place.Err(placements)
}
