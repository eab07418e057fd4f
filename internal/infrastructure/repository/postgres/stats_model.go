package postgres

import "time"

type gameweekStatTableModel struct {
	PlayerID              int64     `db:"player_id"`
	Round                 int       `db:"round"`
	Minutes               int       `db:"minutes"`
	GoalsScored           int       `db:"goals_scored"`
	Assists               int       `db:"assists"`
	CleanSheets           int       `db:"clean_sheets"`
	GoalsConceded         int       `db:"goals_conceded"`
	OwnGoals              int       `db:"own_goals"`
	PenaltiesSaved        int       `db:"penalties_saved"`
	PenaltiesMissed       int       `db:"penalties_missed"`
	YellowCards           int       `db:"yellow_cards"`
	RedCards              int       `db:"red_cards"`
	Saves                 int       `db:"saves"`
	Bonus                 int       `db:"bonus"`
	DefensiveContribution int       `db:"defensive_contribution"`
	TotalPoints           int       `db:"total_points"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}
