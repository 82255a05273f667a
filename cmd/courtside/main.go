package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/hoopsight/courtside/internal/api/rest"
	"github.com/hoopsight/courtside/internal/cache"
	"github.com/hoopsight/courtside/internal/config"
	"github.com/hoopsight/courtside/internal/metrics"
	"github.com/hoopsight/courtside/internal/store"
	"github.com/hoopsight/courtside/internal/store/repository"
)

const serviceName = "courtside"

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}

	if level, err := log.ParseLevel(cfg.Server.LogLevel); err == nil {
		log.SetLevel(level)
	}

	log.Info("Starting box-score query service", "service", serviceName)

	// Connect to the record store
	db, err := store.NewDatabase(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database", "driver", cfg.Database.Driver, "error", err)
	}
	defer db.Close()

	log.Info("Connected to database", "driver", cfg.Database.Driver)

	m := metrics.NewService()

	// Bulk-load the immutable snapshot the whole service reads from
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snap, err := repository.LoadSnapshot(ctx, db)
	if err != nil {
		log.Fatal("Failed to load record store snapshot", "error", err)
	}
	catalog := store.NewCatalog(snap)
	m.ObserveSnapshot(len(snap.PlayerGames), len(snap.TeamGames), len(snap.Directory))

	log.Info("Record store snapshot loaded",
		"player_games", len(snap.PlayerGames),
		"team_games", len(snap.TeamGames),
		"teams", len(snap.Directory),
	)

	// Redis cache is optional; the engine recomputes when it is absent
	var redisCache *cache.RedisCache
	if cfg.Redis.URL != "" {
		redisCache, err = cache.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			log.Warn("Redis unavailable, serving without query cache", "error", err)
		} else {
			defer redisCache.Close()
			log.Info("Connected to Redis", "cache_ttl", cfg.Redis.CacheTTL)
		}
	}

	// Optional periodic refresh: rebuild the snapshot and swap it in whole.
	// There is no in-place mutation path.
	if cfg.Server.ReloadInterval > 0 {
		go reloadLoop(ctx, db, catalog, redisCache, m, cfg.Server.ReloadInterval)
		log.Info("Snapshot reload enabled", "interval", cfg.Server.ReloadInterval)
	}

	// Start the REST API server
	handler := rest.NewHandler(catalog, redisCache, cfg.Redis.CacheTTL)
	restServer := rest.NewServer(cfg.Server.Port, handler, m)
	go func() {
		if err := restServer.Start(); err != nil {
			log.Error("REST server error", "error", err)
		}
	}()

	log.Info("REST API server listening", "port", cfg.Server.Port)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down gracefully")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Error("REST server shutdown error", "error", err)
	}

	log.Info("Stopped")
}

// reloadLoop periodically rebuilds the snapshot. A failed reload keeps the
// previous snapshot serving; queries never see a partial store.
func reloadLoop(ctx context.Context, db *store.Database, catalog *store.Catalog, redisCache *cache.RedisCache, m *metrics.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		snap, err := repository.LoadSnapshot(ctx, db)
		if err != nil {
			log.Error("Snapshot reload failed, keeping previous snapshot", "error", err)
			continue
		}

		catalog.Replace(snap)
		m.ObserveSnapshot(len(snap.PlayerGames), len(snap.TeamGames), len(snap.Directory))

		if redisCache != nil {
			if err := redisCache.FlushQueries(ctx); err != nil {
				log.Warn("Failed to flush query cache after reload", "error", err)
			}
		}

		log.Info("Record store snapshot replaced",
			"player_games", len(snap.PlayerGames),
			"team_games", len(snap.TeamGames),
			"teams", len(snap.Directory),
		)
	}
}
