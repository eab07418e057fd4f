package httpapi

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/fplytics/fpl-insights/internal/domain/attribution"
	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
	"github.com/fplytics/fpl-insights/internal/usecase"
)

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type rangeQuery struct {
	Start int `validate:"required,min=1"`
	End   int `validate:"required,min=1,gtefield=Start"`
}

// parseRangeQuery reads the start/end gameweek parameters. When both are
// omitted the recorded season bounds are used; a half-specified range is
// rejected.
func (h *Handler) parseRangeQuery(ctx context.Context, r *http.Request) (gameweek.Range, error) {
	startRaw := strings.TrimSpace(r.URL.Query().Get("start"))
	endRaw := strings.TrimSpace(r.URL.Query().Get("end"))

	if startRaw == "" && endRaw == "" {
		bounds, ok, err := h.attributionService.GameweekBounds(ctx)
		if err != nil {
			return gameweek.Range{}, err
		}
		if !ok {
			return gameweek.Range{}, fmt.Errorf("%w: no gameweek data recorded and no range given", usecase.ErrInvalidInput)
		}
		return bounds, nil
	}
	if startRaw == "" || endRaw == "" {
		return gameweek.Range{}, fmt.Errorf("%w: start and end must be given together", usecase.ErrInvalidInput)
	}

	start, err := strconv.Atoi(startRaw)
	if err != nil {
		return gameweek.Range{}, fmt.Errorf("%w: invalid start %q", usecase.ErrInvalidInput, startRaw)
	}
	end, err := strconv.Atoi(endRaw)
	if err != nil {
		return gameweek.Range{}, fmt.Errorf("%w: invalid end %q", usecase.ErrInvalidInput, endRaw)
	}

	query := rangeQuery{Start: start, End: end}
	if err := h.validateRequest(ctx, query); err != nil {
		return gameweek.Range{}, err
	}

	return gameweek.Range{Start: query.Start, End: query.End}, nil
}

func parsePlayerIDPath(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("playerID"))
	playerID, err := strconv.Atoi(raw)
	if err != nil || playerID <= 0 {
		return 0, fmt.Errorf("%w: invalid player id %q", usecase.ErrInvalidInput, raw)
	}
	return playerID, nil
}

func parsePlayerIDQuery(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	playerID, err := strconv.Atoi(raw)
	if err != nil || playerID <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, key, raw)
	}
	return playerID, nil
}

type rangeDTO struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type playerDTO struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Team       string  `json:"team"`
	Position   string  `json:"position"`
	Price      float64 `json:"price"`
	SelectedBy float64 `json:"selectedBy"`
}

type tableRowDTO struct {
	Player            playerDTO `json:"player"`
	RangePoints       int       `json:"rangePoints"`
	PointsPerMillion  *float64  `json:"pointsPerMillion"`
	TemplateValue     *float64  `json:"templateValue"`
	DifferentialValue *float64  `json:"differentialValue"`
}

type breakdownEntryDTO struct {
	Category string `json:"category"`
	Points   int    `json:"points"`
}

type breakdownDTO struct {
	PlayerID int                 `json:"playerId"`
	Position string              `json:"position"`
	Range    rangeDTO            `json:"range"`
	Entries  []breakdownEntryDTO `json:"entries"`
	Total    int                 `json:"total"`
}

type historyRoundDTO struct {
	Round                 int `json:"round"`
	Minutes               int `json:"minutes"`
	GoalsScored           int `json:"goalsScored"`
	Assists               int `json:"assists"`
	CleanSheets           int `json:"cleanSheets"`
	GoalsConceded         int `json:"goalsConceded"`
	OwnGoals              int `json:"ownGoals"`
	PenaltiesSaved        int `json:"penaltiesSaved"`
	PenaltiesMissed       int `json:"penaltiesMissed"`
	YellowCards           int `json:"yellowCards"`
	RedCards              int `json:"redCards"`
	Saves                 int `json:"saves"`
	Bonus                 int `json:"bonus"`
	DefensiveContribution int `json:"defensiveContribution"`
	TotalPoints           int `json:"totalPoints"`
}

type comparisonCellDTO struct {
	Category string `json:"category"`
	PointsA  int    `json:"pointsA"`
	PointsB  int    `json:"pointsB"`
	Winner   string `json:"winner"`
	Style    string `json:"style"`
}

type comparisonDTO struct {
	PlayerA         playerDTO           `json:"playerA"`
	PlayerB         playerDTO           `json:"playerB"`
	Range           rangeDTO            `json:"range"`
	Cells           []comparisonCellDTO `json:"cells"`
	RadarCategories []string            `json:"radarCategories"`
	RadarA          []float64           `json:"radarA"`
	RadarB          []float64           `json:"radarB"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:         p.ID,
		Name:       p.Name,
		Team:       p.Team,
		Position:   string(p.Position),
		Price:      p.Price,
		SelectedBy: p.SelectedBy,
	}
}

// finiteOrNil keeps unpriced players encodable: NaN has no JSON
// representation, so it becomes null.
func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func tableRowToDTO(row usecase.TableRow) tableRowDTO {
	return tableRowDTO{
		Player:            playerToDTO(row.Player),
		RangePoints:       row.RangePoints,
		PointsPerMillion:  finiteOrNil(row.PointsPerMillion),
		TemplateValue:     finiteOrNil(row.TemplateValue),
		DifferentialValue: finiteOrNil(row.DifferentialValue),
	}
}

func breakdownToDTO(b attribution.Breakdown) breakdownDTO {
	entries := make([]breakdownEntryDTO, 0, len(b.Entries))
	for _, e := range b.Entries {
		entries = append(entries, breakdownEntryDTO{Category: string(e.Category), Points: e.Points})
	}
	return breakdownDTO{
		PlayerID: b.PlayerID,
		Position: string(b.Position),
		Range:    rangeDTO{Start: b.Range.Start, End: b.Range.End},
		Entries:  entries,
		Total:    b.Total,
	}
}

func entriesToDTO(entries []attribution.Entry) []breakdownEntryDTO {
	out := make([]breakdownEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, breakdownEntryDTO{Category: string(e.Category), Points: e.Points})
	}
	return out
}

func historyToDTO(stats []gameweek.Stat) []historyRoundDTO {
	out := make([]historyRoundDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, historyRoundDTO{
			Round:                 s.Round,
			Minutes:               s.Minutes,
			GoalsScored:           s.GoalsScored,
			Assists:               s.Assists,
			CleanSheets:           s.CleanSheets,
			GoalsConceded:         s.GoalsConceded,
			OwnGoals:              s.OwnGoals,
			PenaltiesSaved:        s.PenaltiesSaved,
			PenaltiesMissed:       s.PenaltiesMissed,
			YellowCards:           s.YellowCards,
			RedCards:              s.RedCards,
			Saves:                 s.Saves,
			Bonus:                 s.Bonus,
			DefensiveContribution: s.DefensiveContribution,
			TotalPoints:           s.TotalPoints,
		})
	}
	return out
}

func comparisonToDTO(result usecase.ComparisonResult) comparisonDTO {
	cells := make([]comparisonCellDTO, 0, len(result.Cells))
	for _, cell := range result.Cells {
		cells = append(cells, comparisonCellDTO{
			Category: string(cell.Category),
			PointsA:  cell.PointsA,
			PointsB:  cell.PointsB,
			Winner:   string(cell.Winner),
			Style:    string(cell.Style),
		})
	}

	categories := make([]string, 0, len(result.RadarCategories))
	for _, cat := range result.RadarCategories {
		categories = append(categories, string(cat))
	}

	return comparisonDTO{
		PlayerA:         playerToDTO(result.PlayerA),
		PlayerB:         playerToDTO(result.PlayerB),
		Range:           rangeDTO{Start: result.Range.Start, End: result.Range.End},
		Cells:           cells,
		RadarCategories: categories,
		RadarA:          result.RadarA,
		RadarB:          result.RadarB,
	}
}
