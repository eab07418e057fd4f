package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/fplytics/fpl-insights/internal/config"
	"github.com/fplytics/fpl-insights/internal/domain/attribution"
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
	infracache "github.com/fplytics/fpl-insights/internal/infrastructure/cache"
	repocache "github.com/fplytics/fpl-insights/internal/infrastructure/repository/cache"
	"github.com/fplytics/fpl-insights/internal/infrastructure/repository/memory"
	"github.com/fplytics/fpl-insights/internal/infrastructure/repository/postgres"
	"github.com/fplytics/fpl-insights/internal/infrastructure/seasondata"
	"github.com/fplytics/fpl-insights/internal/interfaces/httpapi"
	platformcache "github.com/fplytics/fpl-insights/internal/platform/cache"
	"github.com/fplytics/fpl-insights/internal/platform/logging"
	"github.com/fplytics/fpl-insights/internal/usecase"
)

// NewHTTPServer wires config through repositories and use cases into a
// ready-to-listen server. The returned close function releases backend
// connections and must run after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	playerRepo, historyRepo, closeStore, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	breakdownCache, closeCache, err := buildBreakdownCache(cfg, logger)
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}

	attributionSvc, err := usecase.NewAttributionService(playerRepo, historyRepo, attribution.DefaultRuleSet(), breakdownCache)
	if err != nil {
		_ = closeStore()
		_ = closeCache()
		return nil, nil, fmt.Errorf("build attribution service: %w", err)
	}
	comparisonSvc := usecase.NewComparisonService(attributionSvc, attribution.DefaultDisplayConfig())
	tableSvc := usecase.NewTableService(playerRepo, attributionSvc, cfg.TableMaxWorkers)

	httpLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logging.SlogLevel(cfg.LogLevel),
	}))
	handler := httpapi.NewHandler(attributionSvc, comparisonSvc, tableSvc, logger)
	router := httpapi.NewRouter(handler, httpLogger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = closeStore()
		_ = closeCache()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	closeAll := func() error {
		storeErr := closeStore()
		cacheErr := closeCache()
		if storeErr != nil {
			return storeErr
		}
		return cacheErr
	}

	return server, closeAll, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (player.Repository, gameweek.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		players, weekly, err := loadSeason(cfg, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return memory.NewPlayerRepository(players), memory.NewStatsRepository(weekly), noop, nil

	case config.StoreBackendPostgres:
		dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
		db, err := otelsqlx.Open("postgres", dsn,
			otelsql.WithDBName(dbNameFromURL(dsn)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open season store: %w", err)
		}

		var playerRepo player.Repository = postgres.NewPlayerRepository(db)
		var historyRepo gameweek.Repository = postgres.NewStatsRepository(db)
		if cfg.CacheEnabled {
			// The decorators only shield the database from repeated directory
			// scans; breakdown results have their own cache.
			playerRepo = repocache.NewPlayerRepository(playerRepo, platformcache.NewStore(cfg.CacheTTL))
			historyRepo = repocache.NewHistoryRepository(historyRepo, platformcache.NewStore(cfg.CacheTTL))
		}
		logger.Info("season store opened", "backend", cfg.StoreBackend, "db", dbNameFromURL(dsn))
		return playerRepo, historyRepo, db.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}

func loadSeason(cfg config.Config, logger *logging.Logger) ([]player.Player, map[int][]gameweek.Stat, error) {
	if cfg.PlayersFile == "" {
		logger.Info("season files not configured, using built-in sample season")
		return memory.SeedPlayers(), memory.SeedWeekly(), nil
	}

	players, err := seasondata.LoadPlayers(cfg.PlayersFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load players export: %w", err)
	}
	weekly, err := seasondata.LoadWeekly(cfg.WeeklyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load weekly export: %w", err)
	}

	logger.Info("season exports loaded",
		"players_file", cfg.PlayersFile,
		"weekly_file", cfg.WeeklyFile,
		"players", len(players),
	)
	return players, weekly, nil
}

func buildBreakdownCache(cfg config.Config, logger *logging.Logger) (usecase.BreakdownCache, func() error, error) {
	noop := func() error { return nil }

	if !cfg.CacheEnabled {
		return nil, noop, nil
	}

	switch cfg.CacheBackend {
	case config.CacheBackendMemory:
		return infracache.NewMemoryBreakdownCache(platformcache.NewStore(cfg.CacheTTL)), noop, nil

	case config.CacheBackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		logger.Info("breakdown cache backed by redis", "addr", opts.Addr, "ttl", cfg.CacheTTL)
		return infracache.NewRedisBreakdownCache(client, cfg.CacheTTL), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported cache backend: %s", cfg.CacheBackend)
	}
}
