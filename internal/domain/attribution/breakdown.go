package attribution

import (
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
)

// Category names one rule-derived slice of a player's point total.
type Category string

const (
	CategoryMinutes       Category = "Minutes"
	CategoryGoals         Category = "Goals"
	CategoryAssists       Category = "Assists"
	CategoryCleanSheets   Category = "Clean Sheets"
	CategorySaves         Category = "Saves"
	CategoryGoalsConceded Category = "Goals Conceded"
	CategoryCards         Category = "Cards"
	CategoryOwnGoals      Category = "Own Goals"
	CategoryPenalties     Category = "Penalties"
	CategoryBonus         Category = "Bonus"
	CategoryDefContrib    Category = "Defensive Contribution"
	CategoryUnattributed  Category = "Unattributed"
)

// CanonicalOrder is the rule-evaluation order. The residual entry always
// comes last.
var CanonicalOrder = []Category{
	CategoryMinutes,
	CategoryGoals,
	CategoryAssists,
	CategoryCleanSheets,
	CategorySaves,
	CategoryGoalsConceded,
	CategoryCards,
	CategoryOwnGoals,
	CategoryPenalties,
	CategoryBonus,
	CategoryDefContrib,
}

type Entry struct {
	Category Category
	Points   int
}

// Breakdown decomposes a player's authoritative range total into rule-derived
// categories plus an explicit residual. Entries follow CanonicalOrder and
// every category is present, zero-valued or not, so the reconciliation
// invariant is checkable without re-deriving anything.
type Breakdown struct {
	PlayerID int
	Position player.Position
	Range    gameweek.Range
	Entries  []Entry
	// Total is the authoritative total over the range, taken as given.
	Total int
}

// Points returns the points attributed to cat, 0 when absent.
func (b Breakdown) Points(cat Category) int {
	for _, e := range b.Entries {
		if e.Category == cat {
			return e.Points
		}
	}
	return 0
}

// CategorySum sums every rule-derived entry, excluding the residual.
func (b Breakdown) CategorySum() int {
	sum := 0
	for _, e := range b.Entries {
		if e.Category == CategoryUnattributed {
			continue
		}
		sum += e.Points
	}
	return sum
}
