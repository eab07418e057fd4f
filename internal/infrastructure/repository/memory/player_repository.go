package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fplytics/fpl-insights/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	index   map[int]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	ordered := make([]player.Player, len(players))
	copy(ordered, players)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	index := make(map[int]player.Player, len(ordered))
	for _, p := range ordered {
		index[p.ID] = p
	}

	return &PlayerRepository{
		players: ordered,
		index:   index,
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[playerID]
	return p, ok, nil
}
