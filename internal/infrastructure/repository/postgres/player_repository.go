package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplytics/fpl-insights/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerSelectColumns = "id, name, team, position, price, selected_by, created_at, updated_at"

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query := "SELECT " + playerSelectColumns + " FROM players ORDER BY id"

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromTableModel(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int) (player.Player, bool, error) {
	query := "SELECT " + playerSelectColumns + " FROM players WHERE id = $1"

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player %d: %w", playerID, err)
	}

	return playerFromTableModel(row), true, nil
}

// ReplaceAll swaps the whole roster inside one transaction. Season imports
// are full snapshots, so incremental upserts buy nothing here.
func (r *PlayerRepository) ReplaceAll(ctx context.Context, players []player.Player) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace players tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM players"); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}

	const insert = `
		INSERT INTO players (id, name, team, position, price, selected_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, p := range players {
		if _, err := tx.ExecContext(ctx, insert, p.ID, p.Name, p.Team, string(p.Position), p.Price, p.SelectedBy); err != nil {
			return fmt.Errorf("insert player %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace players tx: %w", err)
	}

	return nil
}

func playerFromTableModel(row playerTableModel) player.Player {
	return player.Player{
		ID:         int(row.ID),
		Name:       row.Name,
		Team:       row.Team,
		Position:   player.Position(row.Position),
		Price:      row.Price,
		SelectedBy: row.SelectedBy,
	}
}
