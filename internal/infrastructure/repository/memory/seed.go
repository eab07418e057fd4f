package memory

import (
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
)

// SeedPlayers returns a small fixture roster for local development when no
// season export files are configured.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Raya", Team: "Arsenal", Position: player.PositionGoalkeeper, Price: 5.5, SelectedBy: 20.4},
		{ID: 2, Name: "Gabriel", Team: "Arsenal", Position: player.PositionDefender, Price: 6.0, SelectedBy: 30.1},
		{ID: 3, Name: "Saliba", Team: "Arsenal", Position: player.PositionDefender, Price: 6.1, SelectedBy: 22.7},
		{ID: 4, Name: "Salah", Team: "Liverpool", Position: player.PositionMidfielder, Price: 12.5, SelectedBy: 45.0},
		{ID: 5, Name: "Szoboszlai", Team: "Liverpool", Position: player.PositionMidfielder, Price: 6.6, SelectedBy: 8.3},
		{ID: 6, Name: "Haaland", Team: "Man City", Position: player.PositionForward, Price: 14.0, SelectedBy: 60.2},
		{ID: 7, Name: "Watkins", Team: "Aston Villa", Position: player.PositionForward, Price: 9.0, SelectedBy: 25.6},
	}
}

// SeedWeekly returns round histories matching SeedPlayers over three
// gameweeks.
func SeedWeekly() map[int][]gameweek.Stat {
	return map[int][]gameweek.Stat{
		1: {
			{PlayerID: 1, Round: 1, Minutes: 90, CleanSheets: 1, Saves: 3, TotalPoints: 8},
			{PlayerID: 1, Round: 2, Minutes: 90, GoalsConceded: 2, Saves: 5, TotalPoints: 3},
			{PlayerID: 1, Round: 3, Minutes: 90, CleanSheets: 1, Saves: 1, PenaltiesSaved: 1, TotalPoints: 11},
		},
		2: {
			{PlayerID: 2, Round: 1, Minutes: 90, CleanSheets: 1, DefensiveContribution: 9, TotalPoints: 6},
			{PlayerID: 2, Round: 2, Minutes: 90, GoalsConceded: 2, YellowCards: 1, DefensiveContribution: 7, TotalPoints: 0},
			{PlayerID: 2, Round: 3, Minutes: 90, GoalsScored: 1, CleanSheets: 1, Bonus: 3, DefensiveContribution: 6, TotalPoints: 15},
		},
		3: {
			{PlayerID: 3, Round: 1, Minutes: 90, CleanSheets: 1, DefensiveContribution: 11, TotalPoints: 6},
			{PlayerID: 3, Round: 3, Minutes: 74, CleanSheets: 1, DefensiveContribution: 5, TotalPoints: 6},
		},
		4: {
			{PlayerID: 4, Round: 1, Minutes: 90, GoalsScored: 1, Assists: 1, Bonus: 3, TotalPoints: 13},
			{PlayerID: 4, Round: 2, Minutes: 58, Assists: 1, TotalPoints: 4},
			{PlayerID: 4, Round: 3, Minutes: 90, GoalsScored: 2, TotalPoints: 13},
		},
		5: {
			{PlayerID: 5, Round: 1, Minutes: 64, TotalPoints: 2},
			{PlayerID: 5, Round: 2, Minutes: 90, GoalsScored: 1, TotalPoints: 7},
			{PlayerID: 5, Round: 3, Minutes: 12, TotalPoints: 1},
		},
		6: {
			{PlayerID: 6, Round: 1, Minutes: 90, GoalsScored: 2, Bonus: 3, TotalPoints: 16},
			{PlayerID: 6, Round: 2, Minutes: 90, GoalsScored: 1, PenaltiesMissed: 1, TotalPoints: 4},
			{PlayerID: 6, Round: 3, Minutes: 90, Assists: 1, TotalPoints: 5},
		},
		7: {
			{PlayerID: 7, Round: 1, Minutes: 90, TotalPoints: 2},
			{PlayerID: 7, Round: 2, Minutes: 90, GoalsScored: 1, Bonus: 1, TotalPoints: 8},
			{PlayerID: 7, Round: 3, Minutes: 45, TotalPoints: 1},
		},
	}
}
