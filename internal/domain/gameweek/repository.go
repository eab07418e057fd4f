package gameweek

import "context"

// Repository describes the read-only weekly history consumed by use cases.
// ListByPlayer returns records ordered by round; a player with no history
// yields an empty slice, not an error.
type Repository interface {
	ListByPlayer(ctx context.Context, playerID int) ([]Stat, error)
	Bounds(ctx context.Context) (Range, bool, error)
}
