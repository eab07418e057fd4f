package app

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/fplytics/fpl-insights/internal/config"
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
	"github.com/fplytics/fpl-insights/internal/infrastructure/repository/postgres"
	"github.com/fplytics/fpl-insights/internal/infrastructure/seasondata"
	"github.com/fplytics/fpl-insights/internal/platform/logging"
)

type playerSnapshotStore interface {
	ReplaceAll(ctx context.Context, players []player.Player) error
}

type statsSnapshotStore interface {
	ReplaceAll(ctx context.Context, statsByPlayer map[int][]gameweek.Stat) error
}

// ImportSeason loads the configured season exports and replaces the postgres
// snapshot with them. Each table is rewritten in its own transaction, players
// first so the stats foreign keys always land on fresh rows.
func ImportSeason(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.PlayersFile == "" || cfg.WeeklyFile == "" {
		return fmt.Errorf("season import requires PLAYERS_FILE and WEEKLY_FILE")
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return fmt.Errorf("open season store: %w", err)
	}
	defer func() { _ = db.Close() }()

	return importSeason(ctx, cfg, logger, postgres.NewPlayerRepository(db), postgres.NewStatsRepository(db))
}

func importSeason(
	ctx context.Context,
	cfg config.Config,
	logger *logging.Logger,
	playerStore playerSnapshotStore,
	statsStore statsSnapshotStore,
) error {
	players, err := seasondata.LoadPlayers(cfg.PlayersFile)
	if err != nil {
		return fmt.Errorf("load players export: %w", err)
	}
	weekly, err := seasondata.LoadWeekly(cfg.WeeklyFile)
	if err != nil {
		return fmt.Errorf("load weekly export: %w", err)
	}

	if err := playerStore.ReplaceAll(ctx, players); err != nil {
		return fmt.Errorf("replace player snapshot: %w", err)
	}
	if err := statsStore.ReplaceAll(ctx, weekly); err != nil {
		return fmt.Errorf("replace gameweek stats snapshot: %w", err)
	}

	rounds := 0
	for _, stats := range weekly {
		rounds += len(stats)
	}
	logger.Info("season snapshot imported",
		"players", len(players),
		"stat_rows", rounds,
		"players_file", cfg.PlayersFile,
		"weekly_file", cfg.WeeklyFile,
	)
	return nil
}
