package usecase

import (
	"context"
	"fmt"

	"github.com/fplytics/fpl-insights/internal/domain/attribution"
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
)

type ComparisonService struct {
	attributionSvc *AttributionService
	display        attribution.DisplayConfig
}

func NewComparisonService(attributionSvc *AttributionService, display attribution.DisplayConfig) *ComparisonService {
	return &ComparisonService{
		attributionSvc: attributionSvc,
		display:        display,
	}
}

// ComparisonCell is one category row of a head-to-head view together with
// its render-agnostic styling intent.
type ComparisonCell struct {
	Category attribution.Category
	PointsA  int
	PointsB  int
	Winner   attribution.Winner
	Style    attribution.CellStyle
}

type ComparisonResult struct {
	PlayerA player.Player
	PlayerB player.Player
	Range   gameweek.Range
	Cells   []ComparisonCell
	// Radar vectors share one normalized scale across both players.
	RadarCategories []attribution.Category
	RadarA          []float64
	RadarB          []float64
}

// Compare builds the full head-to-head view for two players over a range.
func (s *ComparisonService) Compare(ctx context.Context, playerAID, playerBID int, rng gameweek.Range) (ComparisonResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.Compare")
	defer span.End()

	if playerAID == playerBID {
		return ComparisonResult{}, fmt.Errorf("%w: cannot compare a player against themselves", ErrInvalidInput)
	}

	breakdownA, err := s.attributionSvc.ComputeBreakdown(ctx, playerAID, rng)
	if err != nil {
		return ComparisonResult{}, err
	}
	breakdownB, err := s.attributionSvc.ComputeBreakdown(ctx, playerBID, rng)
	if err != nil {
		return ComparisonResult{}, err
	}

	playerA, err := s.attributionSvc.GetPlayer(ctx, playerAID)
	if err != nil {
		return ComparisonResult{}, err
	}
	playerB, err := s.attributionSvc.GetPlayer(ctx, playerBID)
	if err != nil {
		return ComparisonResult{}, err
	}

	view := attribution.Compare(breakdownA, breakdownB)
	cells := make([]ComparisonCell, 0, len(view.Entries))
	for _, e := range view.Entries {
		cells = append(cells, ComparisonCell{
			Category: e.Category,
			PointsA:  e.PointsA,
			PointsB:  e.PointsB,
			Winner:   e.Winner,
			Style:    attribution.StyleFor(e),
		})
	}

	radarA := attribution.RadarVector(breakdownA, s.display.RadarCategories)
	radarB := attribution.RadarVector(breakdownB, s.display.RadarCategories)
	attribution.NormalizeRadar(radarA, radarB)

	return ComparisonResult{
		PlayerA:         playerA,
		PlayerB:         playerB,
		Range:           rng,
		Cells:           cells,
		RadarCategories: s.display.RadarCategories,
		RadarA:          radarA,
		RadarB:          radarB,
	}, nil
}

// PresentBreakdown applies the display config to a computed breakdown for
// single-player detail views.
func (s *ComparisonService) PresentBreakdown(ctx context.Context, playerID int, rng gameweek.Range) ([]attribution.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.PresentBreakdown")
	defer span.End()

	breakdown, err := s.attributionSvc.ComputeBreakdown(ctx, playerID, rng)
	if err != nil {
		return nil, err
	}
	return s.display.Present(breakdown), nil
}
