package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

const statSelectColumns = `player_id, round, minutes, goals_scored, assists, clean_sheets,
	goals_conceded, own_goals, penalties_saved, penalties_missed, yellow_cards,
	red_cards, saves, bonus, defensive_contribution, total_points, created_at, updated_at`

func (r *StatsRepository) ListByPlayer(ctx context.Context, playerID int) ([]gameweek.Stat, error) {
	query := "SELECT " + statSelectColumns + " FROM player_gameweek_stats WHERE player_id = $1 ORDER BY round"

	var rows []gameweekStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, playerID); err != nil {
		return nil, fmt.Errorf("select gameweek stats for player %d: %w", playerID, err)
	}

	out := make([]gameweek.Stat, 0, len(rows))
	for _, row := range rows {
		out = append(out, statFromTableModel(row))
	}

	return out, nil
}

func (r *StatsRepository) Bounds(ctx context.Context) (gameweek.Range, bool, error) {
	const query = "SELECT MIN(round) AS min_round, MAX(round) AS max_round FROM player_gameweek_stats"

	var row struct {
		MinRound sql.NullInt64 `db:"min_round"`
		MaxRound sql.NullInt64 `db:"max_round"`
	}
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return gameweek.Range{}, false, fmt.Errorf("select gameweek bounds: %w", err)
	}
	if !row.MinRound.Valid || !row.MaxRound.Valid {
		return gameweek.Range{}, false, nil
	}

	return gameweek.Range{Start: int(row.MinRound.Int64), End: int(row.MaxRound.Int64)}, true, nil
}

// ReplaceAll swaps all round histories inside one transaction, mirroring
// the snapshot semantics of the player roster import.
func (r *StatsRepository) ReplaceAll(ctx context.Context, statsByPlayer map[int][]gameweek.Stat) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace stats tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM player_gameweek_stats"); err != nil {
		return fmt.Errorf("clear gameweek stats: %w", err)
	}

	const insert = `
		INSERT INTO player_gameweek_stats (
			player_id, round, minutes, goals_scored, assists, clean_sheets,
			goals_conceded, own_goals, penalties_saved, penalties_missed,
			yellow_cards, red_cards, saves, bonus, defensive_contribution, total_points
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	for playerID, stats := range statsByPlayer {
		for _, s := range stats {
			if _, err := tx.ExecContext(ctx, insert,
				playerID, s.Round, s.Minutes, s.GoalsScored, s.Assists, s.CleanSheets,
				s.GoalsConceded, s.OwnGoals, s.PenaltiesSaved, s.PenaltiesMissed,
				s.YellowCards, s.RedCards, s.Saves, s.Bonus, s.DefensiveContribution, s.TotalPoints,
			); err != nil {
				return fmt.Errorf("insert gameweek stat player=%d round=%d: %w", playerID, s.Round, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace stats tx: %w", err)
	}

	return nil
}

func statFromTableModel(row gameweekStatTableModel) gameweek.Stat {
	return gameweek.Stat{
		PlayerID:              int(row.PlayerID),
		Round:                 row.Round,
		Minutes:               row.Minutes,
		GoalsScored:           row.GoalsScored,
		Assists:               row.Assists,
		CleanSheets:           row.CleanSheets,
		GoalsConceded:         row.GoalsConceded,
		OwnGoals:              row.OwnGoals,
		PenaltiesSaved:        row.PenaltiesSaved,
		PenaltiesMissed:       row.PenaltiesMissed,
		YellowCards:           row.YellowCards,
		RedCards:              row.RedCards,
		Saves:                 row.Saves,
		Bonus:                 row.Bonus,
		DefensiveContribution: row.DefensiveContribution,
		TotalPoints:           row.TotalPoints,
	}
}
