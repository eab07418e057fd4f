// Package cache provides read-through decorators over the season
// repositories. The season snapshot is immutable between imports, so a
// plain TTL store is enough; entries expire instead of being invalidated.
package cache

import (
	"context"
	"strconv"

	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
	basecache "github.com/fplytics/fpl-insights/internal/platform/cache"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int) (player.Player, bool, error) {
	key := "player:id:" + strconv.Itoa(playerID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

type HistoryRepository struct {
	next  gameweek.Repository
	cache *basecache.Store
}

func NewHistoryRepository(next gameweek.Repository, cache *basecache.Store) *HistoryRepository {
	return &HistoryRepository{next: next, cache: cache}
}

func (r *HistoryRepository) ListByPlayer(ctx context.Context, playerID int) ([]gameweek.Stat, error) {
	key := "history:player:" + strconv.Itoa(playerID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByPlayer(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return append([]gameweek.Stat(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]gameweek.Stat)
	return append([]gameweek.Stat(nil), items...), nil
}

func (r *HistoryRepository) Bounds(ctx context.Context) (gameweek.Range, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "history:bounds", func(ctx context.Context) (any, error) {
		rng, ok, err := r.next.Bounds(ctx)
		if err != nil {
			return nil, err
		}
		return cachedBounds{value: rng, ok: ok}, nil
	})
	if err != nil {
		return gameweek.Range{}, false, err
	}

	cached, _ := v.(cachedBounds)
	return cached.value, cached.ok, nil
}

type cachedBounds struct {
	value gameweek.Range
	ok    bool
}
