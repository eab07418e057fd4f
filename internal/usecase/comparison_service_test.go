package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fplytics/fpl-insights/internal/domain/attribution"
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
)

func newTestComparisonService(t *testing.T) *ComparisonService {
	t.Helper()
	return NewComparisonService(newTestAttributionService(t, nil), attribution.DefaultDisplayConfig())
}

func TestComparisonService_Compare(t *testing.T) {
	t.Parallel()

	svc := newTestComparisonService(t)
	result, err := svc.Compare(context.Background(), 1, 2, gameweek.Range{Start: 1, End: 3})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}

	if result.PlayerA.ID != 1 || result.PlayerB.ID != 2 {
		t.Fatalf("unexpected players: %+v vs %+v", result.PlayerA, result.PlayerB)
	}
	if len(result.Cells) != len(attribution.CanonicalOrder)+1 {
		t.Fatalf("expected all categories plus residual, got %d cells", len(result.Cells))
	}
	if result.Cells[len(result.Cells)-1].Category != attribution.CategoryUnattributed {
		t.Fatalf("residual must come last, got %s", result.Cells[len(result.Cells)-1].Category)
	}

	for _, cell := range result.Cells {
		switch cell.Winner {
		case attribution.WinnerA:
			if cell.PointsA <= cell.PointsB {
				t.Fatalf("%s: winner A with points %d vs %d", cell.Category, cell.PointsA, cell.PointsB)
			}
			if cell.Style != attribution.StyleWinnerA {
				t.Fatalf("%s: expected StyleWinnerA, got %s", cell.Category, cell.Style)
			}
		case attribution.WinnerB:
			if cell.PointsB <= cell.PointsA {
				t.Fatalf("%s: winner B with points %d vs %d", cell.Category, cell.PointsA, cell.PointsB)
			}
			if cell.Style != attribution.StyleWinnerB {
				t.Fatalf("%s: expected StyleWinnerB, got %s", cell.Category, cell.Style)
			}
		case attribution.WinnerTie:
			if cell.PointsA != cell.PointsB {
				t.Fatalf("%s: tie with points %d vs %d", cell.Category, cell.PointsA, cell.PointsB)
			}
			if cell.Style != attribution.StyleNeutral {
				t.Fatalf("%s: expected StyleNeutral, got %s", cell.Category, cell.Style)
			}
		}
	}
}

func TestComparisonService_RadarVectorsShareScale(t *testing.T) {
	t.Parallel()

	svc := newTestComparisonService(t)
	result, err := svc.Compare(context.Background(), 1, 2, gameweek.Range{Start: 1, End: 3})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}

	if len(result.RadarA) != len(result.RadarCategories) || len(result.RadarB) != len(result.RadarCategories) {
		t.Fatalf("radar vectors must match category count")
	}
	for i := range result.RadarA {
		if result.RadarA[i] < -1 || result.RadarA[i] > 1 || result.RadarB[i] < -1 || result.RadarB[i] > 1 {
			t.Fatalf("normalized radar values out of range: A=%v B=%v", result.RadarA, result.RadarB)
		}
	}
}

func TestComparisonService_SamePlayerRejected(t *testing.T) {
	t.Parallel()

	svc := newTestComparisonService(t)
	_, err := svc.Compare(context.Background(), 1, 1, gameweek.Range{Start: 1, End: 3})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestComparisonService_UnknownPlayerPropagatesNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestComparisonService(t)
	_, err := svc.Compare(context.Background(), 1, 999, gameweek.Range{Start: 1, End: 3})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestComparisonService_PresentBreakdownAppliesDisplayConfig(t *testing.T) {
	t.Parallel()

	svc := newTestComparisonService(t)

	// Player 1 is a midfielder, so goalkeeper-only categories are filtered out.
	entries, err := svc.PresentBreakdown(context.Background(), 1, gameweek.Range{Start: 1, End: 3})
	if err != nil {
		t.Fatalf("PresentBreakdown error: %v", err)
	}
	for _, e := range entries {
		if e.Category == attribution.CategorySaves {
			t.Fatalf("saves must be hidden for midfielders")
		}
	}
}
