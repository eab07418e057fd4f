package usecase

import (
	"context"
	"fmt"

	"github.com/fplytics/fpl-insights/internal/domain/attribution"
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
)

// BreakdownCache memoizes computed breakdowns by (player, range). The engine
// is a pure function of its read-only inputs, so caching is always safe.
type BreakdownCache interface {
	GetOrLoad(ctx context.Context, key string, loader func(context.Context) (attribution.Breakdown, error)) (attribution.Breakdown, error)
}

type AttributionService struct {
	playerRepo  player.Repository
	historyRepo gameweek.Repository
	rules       attribution.RuleSet
	cache       BreakdownCache
}

// NewAttributionService validates the rule set once; an incomplete table is
// a deployment defect and must fail construction, never a call.
func NewAttributionService(
	playerRepo player.Repository,
	historyRepo gameweek.Repository,
	rules attribution.RuleSet,
	cache BreakdownCache,
) (*AttributionService, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("validate scoring rule set: %w", err)
	}

	return &AttributionService{
		playerRepo:  playerRepo,
		historyRepo: historyRepo,
		rules:       rules,
		cache:       cache,
	}, nil
}

func (s *AttributionService) GetPlayer(ctx context.Context, playerID int) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttributionService.GetPlayer")
	defer span.End()

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player %d: %w", playerID, err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}
	return p, nil
}

// ComputeBreakdown decomposes the player's authoritative range total into
// rule-derived categories plus a residual. A range with no recorded rounds
// yields an all-zero breakdown, which is a valid result distinct from an
// unknown player.
func (s *AttributionService) ComputeBreakdown(ctx context.Context, playerID int, rng gameweek.Range) (attribution.Breakdown, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttributionService.ComputeBreakdown")
	defer span.End()

	if err := rng.Validate(); err != nil {
		return attribution.Breakdown{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return attribution.Breakdown{}, err
	}

	if s.cache == nil {
		return s.computeBreakdown(ctx, p, rng)
	}

	key := fmt.Sprintf("breakdown:%d:%d:%d", playerID, rng.Start, rng.End)
	return s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (attribution.Breakdown, error) {
		return s.computeBreakdown(ctx, p, rng)
	})
}

func (s *AttributionService) computeBreakdown(ctx context.Context, p player.Player, rng gameweek.Range) (attribution.Breakdown, error) {
	stats, err := s.historyRepo.ListByPlayer(ctx, p.ID)
	if err != nil {
		return attribution.Breakdown{}, fmt.Errorf("list weekly history for player %d: %w", p.ID, err)
	}

	agg, err := attribution.Aggregate(stats, rng)
	if err != nil {
		return attribution.Breakdown{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	breakdown, err := attribution.ComputeBreakdown(p.ID, p.Position, rng, agg, s.rules)
	if err != nil {
		return attribution.Breakdown{}, fmt.Errorf("compute breakdown for player %d: %w", p.ID, err)
	}

	return breakdown, nil
}

// ComputeRangeTotal sums the authoritative per-round totals over the range.
// It never derives points from rules.
func (s *AttributionService) ComputeRangeTotal(ctx context.Context, playerID int, rng gameweek.Range) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttributionService.ComputeRangeTotal")
	defer span.End()

	if err := rng.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if _, err := s.GetPlayer(ctx, playerID); err != nil {
		return 0, err
	}

	stats, err := s.historyRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("list weekly history for player %d: %w", playerID, err)
	}

	total := 0
	for _, stat := range stats {
		if rng.Contains(stat.Round) {
			total += stat.TotalPoints
		}
	}
	return total, nil
}

// History returns the player's per-round records inside the range, ordered
// by round.
func (s *AttributionService) History(ctx context.Context, playerID int, rng gameweek.Range) ([]gameweek.Stat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttributionService.History")
	defer span.End()

	if err := rng.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if _, err := s.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	stats, err := s.historyRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list weekly history for player %d: %w", playerID, err)
	}

	out := make([]gameweek.Stat, 0, len(stats))
	for _, stat := range stats {
		if rng.Contains(stat.Round) {
			out = append(out, stat)
		}
	}
	return out, nil
}

// GameweekBounds reports the lowest and highest recorded round across the
// dataset. The second return is false when no history is loaded.
func (s *AttributionService) GameweekBounds(ctx context.Context) (gameweek.Range, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttributionService.GameweekBounds")
	defer span.End()

	bounds, ok, err := s.historyRepo.Bounds(ctx)
	if err != nil {
		return gameweek.Range{}, false, fmt.Errorf("resolve gameweek bounds: %w", err)
	}
	return bounds, ok, nil
}
