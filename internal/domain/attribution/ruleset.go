package attribution

import (
	"errors"
	"fmt"

	"github.com/fplytics/fpl-insights/internal/domain/player"
)

var ErrMissingPositionRule = errors.New("scoring rule set is missing a position")

// Position-independent scoring constants.
const (
	assistPoints         = 3
	yellowCardPoints     = -1
	redCardPoints        = -3
	ownGoalPoints        = -2
	penaltySavedPoints   = 5
	penaltyMissedPoints  = -2
	savesPerPoint        = 3
	concededPerDeduction = 2

	fullAppearanceMinutes = 60
	fullAppearancePoints  = 2
	subAppearancePoints   = 1
)

// Rule stores the position-dependent scoring coefficients.
type Rule struct {
	GoalPoints       int
	CleanSheetPoints int
	CountsSaves      bool
	CountsConceded   bool
	// CountsPenaltySave gates the +5 penalty-save term; only goalkeepers
	// can earn it.
	CountsPenaltySave bool
	// DefContribThreshold is the range-aggregated defensive contribution
	// needed to earn DefContribBonus once. Zero disables the category.
	DefContribThreshold int
	DefContribBonus     int
}

// RuleSet maps every position to its scoring coefficients. It is built once
// and never mutated afterwards.
type RuleSet map[player.Position]Rule

// DefaultRuleSet returns the classic FPL coefficient table. The goalkeeper
// goal value is 6, matching the retained revision of the source data.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		player.PositionGoalkeeper: {
			GoalPoints:        6,
			CleanSheetPoints:  4,
			CountsSaves:       true,
			CountsConceded:    true,
			CountsPenaltySave: true,
			DefContribBonus:   2,
		},
		player.PositionDefender: {
			GoalPoints:          6,
			CleanSheetPoints:    4,
			CountsConceded:      true,
			DefContribThreshold: 10,
			DefContribBonus:     2,
		},
		player.PositionMidfielder: {
			GoalPoints:          5,
			CleanSheetPoints:    1,
			DefContribThreshold: 12,
			DefContribBonus:     2,
		},
		player.PositionForward: {
			GoalPoints:          4,
			DefContribThreshold: 12,
			DefContribBonus:     2,
		},
	}
}

// Validate checks that every known position has an entry. A missing entry is
// a deployment defect and must halt engine construction.
func (rs RuleSet) Validate() error {
	for pos := range player.AllPositions {
		if _, ok := rs[pos]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingPositionRule, pos)
		}
	}
	return nil
}

func (rs RuleSet) ForPosition(pos player.Position) (Rule, error) {
	rule, ok := rs[pos]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", ErrMissingPositionRule, pos)
	}
	return rule, nil
}
