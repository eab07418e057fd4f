package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
)

// StatsRepository holds per-player round histories. Bounds are computed
// once at construction since the data set is immutable after load.
type StatsRepository struct {
	mu            sync.RWMutex
	statsByPlayer map[int][]gameweek.Stat
	bounds        gameweek.Range
	hasBounds     bool
}

func NewStatsRepository(statsByPlayer map[int][]gameweek.Stat) *StatsRepository {
	indexed := make(map[int][]gameweek.Stat, len(statsByPlayer))

	minRound, maxRound := 0, 0
	for playerID, stats := range statsByPlayer {
		ordered := make([]gameweek.Stat, len(stats))
		copy(ordered, stats)
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].Round < ordered[j].Round })
		indexed[playerID] = ordered

		for _, stat := range ordered {
			if minRound == 0 || stat.Round < minRound {
				minRound = stat.Round
			}
			if stat.Round > maxRound {
				maxRound = stat.Round
			}
		}
	}

	return &StatsRepository{
		statsByPlayer: indexed,
		bounds:        gameweek.Range{Start: minRound, End: maxRound},
		hasBounds:     minRound > 0,
	}
}

func (r *StatsRepository) ListByPlayer(_ context.Context, playerID int) ([]gameweek.Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := r.statsByPlayer[playerID]
	out := make([]gameweek.Stat, 0, len(stats))
	out = append(out, stats...)

	return out, nil
}

func (r *StatsRepository) Bounds(_ context.Context) (gameweek.Range, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.bounds, r.hasBounds, nil
}
