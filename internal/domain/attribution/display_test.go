package attribution

import (
	"testing"

	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
)

func TestDisplayConfig_SavesVisibleOnlyForGoalkeepers(t *testing.T) {
	t.Parallel()

	cfg := DefaultDisplayConfig()

	hasSaves := func(pos player.Position) bool {
		for _, cat := range cfg.Visible(pos) {
			if cat == CategorySaves {
				return true
			}
		}
		return false
	}

	if !hasSaves(player.PositionGoalkeeper) {
		t.Fatalf("saves must be visible for goalkeepers")
	}
	for _, pos := range []player.Position{player.PositionDefender, player.PositionMidfielder, player.PositionForward} {
		if hasSaves(pos) {
			t.Fatalf("saves must be hidden for %s", pos)
		}
	}
}

func TestDisplayConfig_PresentKeepsResidualAndDropsZeros(t *testing.T) {
	t.Parallel()

	rng := gameweek.Range{Start: 1, End: 1}
	b := breakdownFor(t, player.PositionForward, []gameweek.Stat{
		{PlayerID: 1, Round: 1, Minutes: 90, GoalsScored: 1, TotalPoints: 6},
	}, rng)

	entries := DefaultDisplayConfig().Present(b)

	sawResidual := false
	for _, e := range entries {
		if e.Category == CategoryUnattributed {
			sawResidual = true
			continue
		}
		if e.Points == 0 {
			t.Fatalf("zero entry %s must be filtered from the presented view", e.Category)
		}
		if e.Category == CategorySaves || e.Category == CategoryGoalsConceded {
			t.Fatalf("category %s must be hidden for forwards", e.Category)
		}
	}
	if !sawResidual {
		t.Fatalf("residual entry must always survive presentation")
	}

	// The computed breakdown itself keeps every category.
	if len(b.Entries) != len(CanonicalOrder)+1 {
		t.Fatalf("presentation must not mutate the breakdown")
	}
}
