package attribution

import "github.com/fplytics/fpl-insights/internal/domain/player"

// DisplayConfig declares which categories a presentation layer should show
// per position, replacing position branches scattered through rendering
// code. The computed breakdown itself is never filtered.
type DisplayConfig struct {
	VisibleByPosition map[player.Position][]Category
	HideZeroEntries   bool
	// RadarCategories is the fixed ordered subset used for comparative
	// radar charts.
	RadarCategories []Category
}

func DefaultDisplayConfig() DisplayConfig {
	outfield := []Category{
		CategoryMinutes,
		CategoryGoals,
		CategoryAssists,
		CategoryCleanSheets,
		CategoryCards,
		CategoryOwnGoals,
		CategoryPenalties,
		CategoryBonus,
		CategoryDefContrib,
	}

	withConceded := append(append([]Category(nil), outfield...), CategoryGoalsConceded)
	goalkeeper := append(append([]Category(nil), withConceded...), CategorySaves)

	return DisplayConfig{
		VisibleByPosition: map[player.Position][]Category{
			player.PositionGoalkeeper: goalkeeper,
			player.PositionDefender:   withConceded,
			player.PositionMidfielder: outfield,
			player.PositionForward:    outfield,
		},
		HideZeroEntries: true,
		RadarCategories: []Category{
			CategoryMinutes,
			CategoryGoals,
			CategoryAssists,
			CategoryCleanSheets,
			CategoryBonus,
			CategoryDefContrib,
		},
	}
}

func (c DisplayConfig) Visible(pos player.Position) []Category {
	return c.VisibleByPosition[pos]
}

// Present filters a breakdown's entries down to the presented view. The
// residual entry is always kept so the displayed rows remain traceable to
// the authoritative total.
func (c DisplayConfig) Present(b Breakdown) []Entry {
	visible := make(map[Category]struct{})
	for _, cat := range c.Visible(b.Position) {
		visible[cat] = struct{}{}
	}

	out := make([]Entry, 0, len(b.Entries))
	for _, e := range b.Entries {
		if e.Category == CategoryUnattributed {
			out = append(out, e)
			continue
		}
		if len(visible) > 0 {
			if _, ok := visible[e.Category]; !ok {
				continue
			}
		}
		if c.HideZeroEntries && e.Points == 0 {
			continue
		}
		out = append(out, e)
	}

	return out
}
