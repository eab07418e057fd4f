// Package seasondata reads the cached season exports produced by the
// data fetch job: players.json (the bootstrap payload with elements and
// teams) and weekly.json (per-player round histories keyed by player id).
package seasondata

import (
	"os"
	"sort"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
)

type bootstrapPayload struct {
	Elements []bootstrapElement `json:"elements"`
	Teams    []bootstrapTeam    `json:"teams"`
}

type bootstrapElement struct {
	ID               int    `json:"id"`
	WebName          string `json:"web_name"`
	Team             int    `json:"team"`
	ElementType      int    `json:"element_type"`
	NowCost          int    `json:"now_cost"`
	SelectedByString string `json:"selected_by_percent"`
}

type bootstrapTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type weeklyRecord struct {
	Round                 int `json:"round"`
	Minutes               int `json:"minutes"`
	GoalsScored           int `json:"goals_scored"`
	Assists               int `json:"assists"`
	CleanSheets           int `json:"clean_sheets"`
	GoalsConceded         int `json:"goals_conceded"`
	OwnGoals              int `json:"own_goals"`
	PenaltiesSaved        int `json:"penalties_saved"`
	PenaltiesMissed       int `json:"penalties_missed"`
	YellowCards           int `json:"yellow_cards"`
	RedCards              int `json:"red_cards"`
	Saves                 int `json:"saves"`
	Bonus                 int `json:"bonus"`
	DefensiveContribution int `json:"defensive_contribution"`
	TotalPoints           int `json:"total_points"`
}

// LoadPlayers decodes a bootstrap export into domain players. Team ids are
// resolved to names, prices are converted from tenths of a million, and the
// selection percentage is parsed from its string form. Elements with an
// unknown position are skipped rather than failing the whole load; the
// export occasionally carries manager entries with element types outside
// the four playing positions.
func LoadPlayers(path string) ([]player.Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read players file %s", path)
	}

	var payload bootstrapPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, crerr.Wrapf(err, "decode players file %s", path)
	}
	if len(payload.Elements) == 0 {
		return nil, crerr.Newf("players file %s has no elements", path)
	}

	teamNames := make(map[int]string, len(payload.Teams))
	for _, team := range payload.Teams {
		teamNames[team.ID] = team.Name
	}

	players := make([]player.Player, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		pos, posErr := player.FromElementType(el.ElementType)
		if posErr != nil {
			continue
		}

		selectedBy, parseErr := parseSelectedBy(el.SelectedByString)
		if parseErr != nil {
			return nil, crerr.Wrapf(parseErr, "element %d has invalid selected_by_percent", el.ID)
		}

		p := player.Player{
			ID:         el.ID,
			Name:       el.WebName,
			Team:       teamNames[el.Team],
			Position:   pos,
			Price:      float64(el.NowCost) / 10,
			SelectedBy: selectedBy,
		}
		if err := p.Validate(); err != nil {
			return nil, crerr.Wrapf(err, "element %d failed validation", el.ID)
		}
		players = append(players, p)
	}

	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

// LoadWeekly decodes a weekly export into per-player round histories. Keys
// are stringified player ids. Histories come back sorted by round; the
// defensive_contribution field is absent in older exports and defaults to
// zero through the usual decode rules.
func LoadWeekly(path string) (map[int][]gameweek.Stat, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read weekly file %s", path)
	}

	var payload map[string][]weeklyRecord
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, crerr.Wrapf(err, "decode weekly file %s", path)
	}

	out := make(map[int][]gameweek.Stat, len(payload))
	for key, records := range payload {
		playerID, convErr := strconv.Atoi(strings.TrimSpace(key))
		if convErr != nil {
			return nil, crerr.Wrapf(convErr, "weekly file %s has non-numeric player key %q", path, key)
		}

		stats := make([]gameweek.Stat, 0, len(records))
		for _, rec := range records {
			if rec.Round < 1 {
				return nil, crerr.Newf("player %d has invalid round %d", playerID, rec.Round)
			}
			stats = append(stats, gameweek.Stat{
				PlayerID:              playerID,
				Round:                 rec.Round,
				Minutes:               rec.Minutes,
				GoalsScored:           rec.GoalsScored,
				Assists:               rec.Assists,
				CleanSheets:           rec.CleanSheets,
				GoalsConceded:         rec.GoalsConceded,
				OwnGoals:              rec.OwnGoals,
				PenaltiesSaved:        rec.PenaltiesSaved,
				PenaltiesMissed:       rec.PenaltiesMissed,
				YellowCards:           rec.YellowCards,
				RedCards:              rec.RedCards,
				Saves:                 rec.Saves,
				Bonus:                 rec.Bonus,
				DefensiveContribution: rec.DefensiveContribution,
				TotalPoints:           rec.TotalPoints,
			})
		}
		sort.Slice(stats, func(i, j int) bool { return stats[i].Round < stats[j].Round })
		out[playerID] = stats
	}

	return out, nil
}

func parseSelectedBy(v string) (float64, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return 0, nil
	}
	return strconv.ParseFloat(trimmed, 64)
}
