package attribution

import (
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
)

// ComputeBreakdown applies the rule set to a range aggregate and reconciles
// the result against the authoritative total carried by the aggregate. The
// returned breakdown always satisfies CategorySum + residual == Total.
func ComputeBreakdown(playerID int, pos player.Position, rng gameweek.Range, agg Aggregated, rules RuleSet) (Breakdown, error) {
	rule, err := rules.ForPosition(pos)
	if err != nil {
		return Breakdown{}, err
	}

	entries := make([]Entry, 0, len(CanonicalOrder)+1)
	sum := 0
	add := func(cat Category, points int) {
		entries = append(entries, Entry{Category: cat, Points: points})
		sum += points
	}

	add(CategoryMinutes, agg.AppearancePoints)
	add(CategoryGoals, agg.GoalsScored*rule.GoalPoints)
	add(CategoryAssists, agg.Assists*assistPoints)
	add(CategoryCleanSheets, agg.EligibleCleanSheets*rule.CleanSheetPoints)

	savesPoints := 0
	if rule.CountsSaves {
		savesPoints = agg.Saves / savesPerPoint
	}
	add(CategorySaves, savesPoints)

	concededPoints := 0
	if rule.CountsConceded {
		concededPoints = -(agg.GoalsConceded / concededPerDeduction)
	}
	add(CategoryGoalsConceded, concededPoints)

	add(CategoryCards, agg.YellowCards*yellowCardPoints+agg.RedCards*redCardPoints)
	add(CategoryOwnGoals, agg.OwnGoals*ownGoalPoints)

	penaltyPoints := agg.PenaltiesMissed * penaltyMissedPoints
	if rule.CountsPenaltySave {
		penaltyPoints += agg.PenaltiesSaved * penaltySavedPoints
	}
	add(CategoryPenalties, penaltyPoints)

	add(CategoryBonus, agg.Bonus)

	// The threshold is evaluated once over the whole range, not per match.
	defContribPoints := 0
	if rule.DefContribThreshold > 0 && agg.DefensiveContribution >= rule.DefContribThreshold {
		defContribPoints = rule.DefContribBonus
	}
	add(CategoryDefContrib, defContribPoints)

	entries = append(entries, Entry{
		Category: CategoryUnattributed,
		Points:   agg.TotalPoints - sum,
	})

	return Breakdown{
		PlayerID: playerID,
		Position: pos,
		Range:    rng,
		Entries:  entries,
		Total:    agg.TotalPoints,
	}, nil
}
