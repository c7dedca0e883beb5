// Combatsim runs seeded duels between catalog creatures and prints
// aggregate outcomes.
//
// Usage:
//
//	go run ./cmd/combatsim -scenario cmd/combatsim/scenarios/lugian_vs_drudge.yaml
//	go run ./cmd/combatsim -scenario s.yaml -seed 7 -duels 1000
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/udisondev/acego/internal/config"
	"github.com/udisondev/acego/internal/data"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario YAML file")
	seed := flag.Uint64("seed", 0, "override scenario seed")
	duels := flag.Int("duels", 0, "override number of duels")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: combatsim -scenario <file.yaml> [-seed N] [-duels N]")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(ctx, *scenarioPath, *seed, *duels); err != nil {
		fmt.Fprintf(os.Stderr, "[combatsim] %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, seed uint64, duels int) error {
	s, err := LoadScenario(path)
	if err != nil {
		return err
	}
	if seed != 0 {
		s.Seed = seed
	}
	if duels > 0 {
		s.Duels = duels
	}

	catalog, err := data.Defaults()
	if s.DataDir != "" {
		catalog, err = data.LoadDir(s.DataDir)
	}
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	report, err := Simulate(ctx, s, catalog, config.DefaultCombat())
	if err != nil {
		return err
	}
	return report.Print(os.Stdout)
}
