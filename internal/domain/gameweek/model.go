package gameweek

import (
	"errors"
	"fmt"
)

var ErrInvalidRange = errors.New("invalid gameweek range")

// Range is an inclusive span of gameweek rounds.
type Range struct {
	Start int
	End   int
}

func NewRange(start, end int) (Range, error) {
	r := Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Validate() error {
	if r.Start < 1 || r.End < 1 {
		return fmt.Errorf("%w: rounds must be greater than zero, got [%d, %d]", ErrInvalidRange, r.Start, r.End)
	}
	if r.Start > r.End {
		return fmt.Errorf("%w: start %d is after end %d", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

func (r Range) Contains(round int) bool {
	return round >= r.Start && round <= r.End
}

// Stat is one player's raw statistics for a single round. TotalPoints is the
// externally computed ground truth and is never recomputed here.
type Stat struct {
	PlayerID              int
	Round                 int
	Minutes               int
	GoalsScored           int
	Assists               int
	CleanSheets           int
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
