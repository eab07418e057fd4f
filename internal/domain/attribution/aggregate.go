package attribution

import (
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
)

// Aggregated holds a player's raw event counts summed over a range, plus the
// two sub-totals that must be classified match-by-match before summing:
// appearance points and clean-sheet eligibility. Summing minutes first would
// misclassify, e.g. two 40-minute appearances are two sub appearances, never
// one 60+ match.
type Aggregated struct {
	Matches             int
	AppearancePoints    int
	EligibleCleanSheets int

	GoalsScored           int
	Assists               int
	GoalsConceded         int
	OwnGoals              int
	PenaltiesSaved        int
	PenaltiesMissed       int
	YellowCards           int
	RedCards              int
	Saves                 int
	Bonus                 int
	DefensiveContribution int
	TotalPoints           int
}

// Aggregate filters stats to rounds within rng and sums them. A player with
// no records in range yields a zero value, which is a valid result.
func Aggregate(stats []gameweek.Stat, rng gameweek.Range) (Aggregated, error) {
	if err := rng.Validate(); err != nil {
		return Aggregated{}, err
	}

	var agg Aggregated
	for _, stat := range stats {
		if !rng.Contains(stat.Round) {
			continue
		}

		agg.Matches++
		switch {
		case stat.Minutes >= fullAppearanceMinutes:
			agg.AppearancePoints += fullAppearancePoints
			if stat.CleanSheets > 0 {
				agg.EligibleCleanSheets++
			}
		case stat.Minutes > 0:
			agg.AppearancePoints += subAppearancePoints
		}

		agg.GoalsScored += stat.GoalsScored
		agg.Assists += stat.Assists
		agg.GoalsConceded += stat.GoalsConceded
		agg.OwnGoals += stat.OwnGoals
		agg.PenaltiesSaved += stat.PenaltiesSaved
		agg.PenaltiesMissed += stat.PenaltiesMissed
		agg.YellowCards += stat.YellowCards
		agg.RedCards += stat.RedCards
		agg.Saves += stat.Saves
		agg.Bonus += stat.Bonus
		agg.DefensiveContribution += stat.DefensiveContribution
		agg.TotalPoints += stat.TotalPoints
	}

	return agg, nil
}
