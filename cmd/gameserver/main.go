package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/acego/internal/config"
	"github.com/udisondev/acego/internal/data"
	"github.com/udisondev/acego/internal/db"
	"github.com/udisondev/acego/internal/game/combat"
	"github.com/udisondev/acego/internal/game/event"
	"github.com/udisondev/acego/internal/game/treasure"
	"github.com/udisondev/acego/internal/rnd"
	"github.com/udisondev/acego/internal/telemetry"
	"github.com/udisondev/acego/internal/world"
)

const GameConfigPath = "config/gameserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfgPath := GameConfigPath
	if p := os.Getenv("ACEGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGameServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading game config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("acego server starting", "log_level", cfg.LogLevel, "config", cfgPath)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			slog.Warn("telemetry shutdown", "error", err)
		}
	}()

	catalog, err := loadCatalog(cfg.DataDir)
	if err != nil {
		return err
	}

	var source treasure.Source = catalog.Treasure
	if cfg.UseDatabase {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		if err := syncCatalog(ctx, database, catalog); err != nil {
			return err
		}
		source = database.Treasure()
	}

	seed := cfg.World.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rnd.New(seed)

	queue := event.NewQueue(cfg.Events.QueueSize, event.LogSink{})

	lifestones := combat.NewLifestoneTracker(cfg.World.LifestoneDuration, queue)
	lifestones.Start()
	defer lifestones.Stop()

	resolver := combat.NewResolver(rng, queue, cfg.Combat,
		combat.WithLifestoneTracker(lifestones),
		combat.WithObserver(logOutcome),
	)

	ids := world.NewObjectIDGenerator()
	gen := treasure.NewGenerator(rng,
		treasure.NewCache(source, cfg.World.TreasureCacheSize),
		data.NewFactory(catalog.Items, ids))

	w := world.New(cfg.World, resolver,
		world.WithTreasure(gen),
		world.WithIDGenerator(ids),
		world.WithSink(queue),
		world.WithLifestones(lifestones),
	)

	population, err := populate(ctx, w, catalog)
	if err != nil {
		return err
	}
	champion, err := addChampion(w, catalog)
	if err != nil {
		return err
	}
	population = append(population, champion.Creature)
	slog.Info("world populated", "fighters", len(population), "seed", seed)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := queue.Run(gctx); err != nil {
			return fmt.Errorf("event queue: %w", err)
		}
		if n := queue.Dropped(); n > 0 {
			slog.Warn("events dropped", "count", n)
		}
		return nil
	})

	g.Go(func() error {
		if err := w.Run(gctx); err != nil {
			return fmt.Errorf("world: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return skirmish(gctx, w, rng, population, time.Second)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func loadCatalog(dir string) (*data.Catalog, error) {
	if dir == "" {
		catalog, err := data.Defaults()
		if err != nil {
			return nil, fmt.Errorf("loading built-in data: %w", err)
		}
		return catalog, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		slog.Warn("data dir not found, using built-in data", "dir", dir)
		return loadCatalog("")
	}
	catalog, err := data.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loading data from %s: %w", dir, err)
	}
	return catalog, nil
}

// syncCatalog stores the YAML catalog in the database and reloads the item
// templates from it, so the database is the source of truth at runtime.
func syncCatalog(ctx context.Context, database *db.DB, catalog *data.Catalog) error {
	if err := database.ItemTemplates().SaveAll(ctx, catalog.Items.All()); err != nil {
		return fmt.Errorf("storing item templates: %w", err)
	}
	for id, entries := range catalog.Treasure {
		if err := database.Treasure().ReplaceTable(ctx, id, entries); err != nil {
			return fmt.Errorf("storing treasure table %d: %w", id, err)
		}
	}

	templates, err := database.ItemTemplates().LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading item templates: %w", err)
	}
	items := data.NewItemTemplates()
	for _, t := range templates {
		if err := items.Add(t); err != nil {
			return fmt.Errorf("registering item template: %w", err)
		}
	}
	catalog.Items = items

	slog.Info("catalog synced to database",
		"items", items.Len(),
		"treasureTables", len(catalog.Treasure))
	return nil
}

func logOutcome(out combat.Outcome) {
	if out.Killed {
		slog.Info("kill", "attacker", out.AttackerID, "target", out.TargetID, "damage", out.Amount)
		return
	}
	slog.Debug("attack",
		"attacker", out.AttackerID,
		"target", out.TargetID,
		"result", out.Result.String(),
		"damage", out.Amount)
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
