package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/fplytics/fpl-insights/internal/domain/attribution"
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
)

func newTestTableService(t *testing.T, players map[int]player.Player, stats map[int][]gameweek.Stat) *TableService {
	t.Helper()

	playerRepo := &stubPlayerRepository{players: players}
	historyRepo := &stubHistoryRepository{statsByPlayer: stats}
	attributionSvc, err := NewAttributionService(playerRepo, historyRepo, attribution.DefaultRuleSet(), nil)
	if err != nil {
		t.Fatalf("NewAttributionService error: %v", err)
	}
	return NewTableService(playerRepo, attributionSvc, 4)
}

func tableFixture() (map[int]player.Player, map[int][]gameweek.Stat) {
	players := map[int]player.Player{
		1: {ID: 1, Name: "Haaland", Team: "Man City", Position: player.PositionForward, Price: 14.0, SelectedBy: 60},
		2: {ID: 2, Name: "Watkins", Team: "Aston Villa", Position: player.PositionForward, Price: 9.0, SelectedBy: 25},
		3: {ID: 3, Name: "Gabriel", Team: "Arsenal", Position: player.PositionDefender, Price: 6.0, SelectedBy: 30},
		4: {ID: 4, Name: "Unlisted", Team: "Arsenal", Position: player.PositionMidfielder, Price: 0, SelectedBy: 1},
	}
	stats := map[int][]gameweek.Stat{
		1: {{PlayerID: 1, Round: 1, Minutes: 90, GoalsScored: 2, TotalPoints: 13}},
		2: {{PlayerID: 2, Round: 1, Minutes: 90, GoalsScored: 1, TotalPoints: 9}},
		3: {{PlayerID: 3, Round: 1, Minutes: 90, CleanSheets: 1, TotalPoints: 6}},
		4: {{PlayerID: 4, Round: 1, Minutes: 90, TotalPoints: 2}},
	}
	return players, stats
}

func TestTableService_BuildTableSortsByPointsDescending(t *testing.T) {
	t.Parallel()

	players, stats := tableFixture()
	svc := newTestTableService(t, players, stats)

	rows, err := svc.BuildTable(context.Background(), FilterConfig{Range: gameweek.Range{Start: 1, End: 1}})
	if err != nil {
		t.Fatalf("BuildTable error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].RangePoints < rows[i].RangePoints {
			t.Fatalf("rows not sorted by points descending: %d before %d", rows[i-1].RangePoints, rows[i].RangePoints)
		}
	}
}

func TestTableService_FiltersByTeamAndPosition(t *testing.T) {
	t.Parallel()

	players, stats := tableFixture()
	svc := newTestTableService(t, players, stats)
	ctx := context.Background()
	rng := gameweek.Range{Start: 1, End: 1}

	rows, err := svc.BuildTable(ctx, FilterConfig{Team: "Arsenal", Range: rng})
	if err != nil {
		t.Fatalf("BuildTable error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 Arsenal rows, got %d", len(rows))
	}

	rows, err = svc.BuildTable(ctx, FilterConfig{Position: player.PositionForward, Range: rng})
	if err != nil {
		t.Fatalf("BuildTable error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 forward rows, got %d", len(rows))
	}

	rows, err = svc.BuildTable(ctx, FilterConfig{Team: "Chelsea", Range: rng})
	if err != nil {
		t.Fatalf("BuildTable error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty table for unmatched team, got %d rows", len(rows))
	}
}

func TestTableService_ValueMetrics(t *testing.T) {
	t.Parallel()

	players, stats := tableFixture()
	svc := newTestTableService(t, players, stats)

	rows, err := svc.BuildTable(context.Background(), FilterConfig{Range: gameweek.Range{Start: 1, End: 1}})
	if err != nil {
		t.Fatalf("BuildTable error: %v", err)
	}

	byID := make(map[int]TableRow, len(rows))
	for _, row := range rows {
		byID[row.Player.ID] = row
	}

	haaland := byID[1]
	wantPPM := 13.0 / 14.0
	if math.Abs(haaland.PointsPerMillion-wantPPM) > 1e-9 {
		t.Fatalf("points per million: got %v, want %v", haaland.PointsPerMillion, wantPPM)
	}
	if math.Abs(haaland.TemplateValue-wantPPM*0.6) > 1e-9 {
		t.Fatalf("template value: got %v, want %v", haaland.TemplateValue, wantPPM*0.6)
	}
	if math.Abs(haaland.DifferentialValue-wantPPM*0.4) > 1e-9 {
		t.Fatalf("differential value: got %v, want %v", haaland.DifferentialValue, wantPPM*0.4)
	}

	zeroPrice := byID[4]
	if !math.IsNaN(zeroPrice.PointsPerMillion) || !math.IsNaN(zeroPrice.TemplateValue) || !math.IsNaN(zeroPrice.DifferentialValue) {
		t.Fatalf("zero price must yield NaN value metrics, got %+v", zeroPrice)
	}
}

func TestTableService_NaNRowsSortLast(t *testing.T) {
	t.Parallel()

	players, stats := tableFixture()
	svc := newTestTableService(t, players, stats)
	ctx := context.Background()
	rng := gameweek.Range{Start: 1, End: 1}

	for _, order := range []SortOrder{OrderAscending, OrderDescending} {
		rows, err := svc.BuildTable(ctx, FilterConfig{Range: rng, SortBy: SortByPPM, Order: order})
		if err != nil {
			t.Fatalf("BuildTable(%s) error: %v", order, err)
		}
		last := rows[len(rows)-1]
		if last.Player.ID != 4 {
			t.Fatalf("order %s: NaN row must sort last, got player %d", order, last.Player.ID)
		}
	}
}

func TestTableService_InvalidFilterConfig(t *testing.T) {
	t.Parallel()

	players, stats := tableFixture()
	svc := newTestTableService(t, players, stats)
	ctx := context.Background()

	cases := []struct {
		name string
		cfg  FilterConfig
	}{
		{"invalid range", FilterConfig{Range: gameweek.Range{Start: 3, End: 1}}},
		{"unknown sort column", FilterConfig{Range: gameweek.Range{Start: 1, End: 1}, SortBy: "xg"}},
		{"unknown sort order", FilterConfig{Range: gameweek.Range{Start: 1, End: 1}, Order: "sideways"}},
		{"unknown position", FilterConfig{Range: gameweek.Range{Start: 1, End: 1}, Position: "WB"}},
	}
	for _, tc := range cases {
		if _, err := svc.BuildTable(ctx, tc.cfg); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}
