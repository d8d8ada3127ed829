// Command gridtown runs the city simulation with its journal, growth
// service, and HTTP/websocket API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mkrellis/gridtown/internal/api"
	"github.com/mkrellis/gridtown/internal/city"
	"github.com/mkrellis/gridtown/internal/config"
	"github.com/mkrellis/gridtown/internal/engine"
	"github.com/mkrellis/gridtown/internal/growth"
	"github.com/mkrellis/gridtown/internal/journal"
	"github.com/mkrellis/gridtown/internal/roadnet"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	configPath := flag.String("config", "", "path to gridtown.yaml (built-in defaults when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	slog.Info("gridtown starting",
		"city", cfg.CityName,
		"grid_size", cfg.GridSize,
		"starting_money", cfg.StartingMoney,
		"seed", cfg.Seed,
	)

	// ── Journal ──────────────────────────────────────────────────────
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		slog.Error("failed to create data dir", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	db, err := journal.Open(filepath.Join(cfg.DataDir, "gridtown.db"))
	if err != nil {
		slog.Error("failed to open journal", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if last, err := db.GetMeta("last_tick"); err == nil {
		slog.Info("journal resumed", "previous_last_tick", last)
	}

	eventLog := journal.NewEventLog(filepath.Join(cfg.DataDir, "events"), "events")
	defer eventLog.Close()
	recorder := journal.NewRecorder(db, eventLog)

	// ── City ─────────────────────────────────────────────────────────
	roads := roadnet.New(cfg.GridSize)
	apiServer := &api.Server{
		Roads:    roads,
		Journal:  db,
		Port:     cfg.APIPort,
		AdminKey: os.Getenv("GRIDTOWN_ADMIN_KEY"),
	}
	if apiServer.AdminKey == "" {
		slog.Warn("GRIDTOWN_ADMIN_KEY not set — admin POST endpoints will be disabled")
	}

	town := city.New(cfg.GridSize, cfg.StartingMoney, cfg.CityName, city.Deps{
		Roads:    roads,
		Notifier: city.MultiNotifier(city.SlogNotifier{}, recorder, apiServer),
	})
	recorder.Attach(town)
	town.Register(growth.NewService(cfg.Seed))
	town.Register(recorder)

	apiServer.City = town

	// ── Engine ───────────────────────────────────────────────────────
	eng := engine.New()
	eng.Interval = time.Duration(cfg.TickIntervalMs) * time.Millisecond
	eng.OnTick = func(tick uint64) {
		town.Simulate(1)
		apiServer.BroadcastState()
		if town.Finished() {
			slog.Info("campaign complete", "tick", tick)
		}
	}
	apiServer.Eng = eng
	apiServer.Start()

	// ── Start ────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	fmt.Printf("%s is open for business on a %d×%d grid with %d in the bank.\n",
		cfg.CityName, cfg.GridSize, cfg.GridSize, cfg.StartingMoney)
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.APIPort)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run()

	_ = db.SaveMeta("last_tick", fmt.Sprintf("%d", town.Clock))
	fmt.Println("Simulation stopped.")
}
