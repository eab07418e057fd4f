package player

import "context"

// Repository describes the read-only player directory consumed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID int) (Player, bool, error)
}
