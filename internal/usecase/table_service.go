package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/fplytics/fpl-insights/internal/domain/gameweek"
	"github.com/fplytics/fpl-insights/internal/domain/player"
)

type SortColumn string

const (
	SortByPoints       SortColumn = "points"
	SortByPrice        SortColumn = "price"
	SortByPPM          SortColumn = "ppm"
	SortBySelected     SortColumn = "selected"
	SortByTemplate     SortColumn = "template"
	SortByDifferential SortColumn = "differential"
)

type SortOrder string

const (
	OrderAscending  SortOrder = "asc"
	OrderDescending SortOrder = "desc"
)

var validSortColumns = map[SortColumn]struct{}{
	SortByPoints:       {},
	SortByPrice:        {},
	SortByPPM:          {},
	SortBySelected:     {},
	SortByTemplate:     {},
	SortByDifferential: {},
}

// FilterConfig replaces ambient table state with an explicit immutable
// value: team/position filters, the gameweek range, and the sort.
type FilterConfig struct {
	Team     string
	Position player.Position
	Range    gameweek.Range
	SortBy   SortColumn
	Order    SortOrder
}

// TableRow is one player of the value table. Value metrics are NaN when the
// player has no price; NaN rows always sort last.
type TableRow struct {
	Player            player.Player
	RangePoints       int
	PointsPerMillion  float64
	TemplateValue     float64
	DifferentialValue float64
}

type TableService struct {
	playerRepo     player.Repository
	attributionSvc *AttributionService
	maxWorkers     int
}

const defaultTableWorkers = 8

func NewTableService(playerRepo player.Repository, attributionSvc *AttributionService, maxWorkers int) *TableService {
	if maxWorkers <= 0 {
		maxWorkers = defaultTableWorkers
	}
	return &TableService{
		playerRepo:     playerRepo,
		attributionSvc: attributionSvc,
		maxWorkers:     maxWorkers,
	}
}

// BuildTable filters the directory, computes every surviving player's range
// total concurrently, derives the value metrics and sorts the result.
func (s *TableService) BuildTable(ctx context.Context, cfg FilterConfig) ([]TableRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TableService.BuildTable")
	defer span.End()

	if err := cfg.Range.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if cfg.SortBy == "" {
		cfg.SortBy = SortByPoints
	}
	if _, ok := validSortColumns[cfg.SortBy]; !ok {
		return nil, fmt.Errorf("%w: unknown sort column %q", ErrInvalidInput, cfg.SortBy)
	}
	if cfg.Order == "" {
		cfg.Order = OrderDescending
	}
	if cfg.Order != OrderAscending && cfg.Order != OrderDescending {
		return nil, fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, cfg.Order)
	}
	if cfg.Position != "" {
		if _, ok := player.AllPositions[cfg.Position]; !ok {
			return nil, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, cfg.Position)
		}
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players for table: %w", err)
	}

	selected := make([]player.Player, 0, len(players))
	for _, p := range players {
		if cfg.Team != "" && p.Team != cfg.Team {
			continue
		}
		if cfg.Position != "" && p.Position != cfg.Position {
			continue
		}
		selected = append(selected, p)
	}
	if len(selected) == 0 {
		return []TableRow{}, nil
	}

	workerCount := s.maxWorkers
	if workerCount > len(selected) {
		workerCount = len(selected)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create table worker pool: %w", err)
	}
	defer pool.Release()

	rows := make([]TableRow, len(selected))
	errs := make([]error, len(selected))

	var workers sync.WaitGroup
	for idx, p := range selected {
		idx, p := idx, p
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			total, totalErr := s.attributionSvc.ComputeRangeTotal(ctx, p.ID, cfg.Range)
			if totalErr != nil {
				errs[idx] = totalErr
				return
			}
			rows[idx] = buildTableRow(p, total)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit table task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for _, rowErr := range errs {
		if rowErr != nil {
			return nil, rowErr
		}
	}

	sortRows(rows, cfg.SortBy, cfg.Order)
	return rows, nil
}

func buildTableRow(p player.Player, rangePoints int) TableRow {
	ppm := math.NaN()
	template := math.NaN()
	differential := math.NaN()

	if p.Price > 0 {
		ppm = float64(rangePoints) / p.Price
		ownedFraction := p.SelectedBy / 100
		template = ppm * ownedFraction
		differential = ppm * (1 - ownedFraction)
	}

	return TableRow{
		Player:            p,
		RangePoints:       rangePoints,
		PointsPerMillion:  ppm,
		TemplateValue:     template,
		DifferentialValue: differential,
	}
}

func sortRows(rows []TableRow, column SortColumn, order SortOrder) {
	value := func(row TableRow) float64 {
		switch column {
		case SortByPrice:
			return row.Player.Price
		case SortByPPM:
			return row.PointsPerMillion
		case SortBySelected:
			return row.Player.SelectedBy
		case SortByTemplate:
			return row.TemplateValue
		case SortByDifferential:
			return row.DifferentialValue
		default:
			return float64(row.RangePoints)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		vi, vj := value(rows[i]), value(rows[j])
		// NaN means "no price"; those rows go last in either direction.
		if math.IsNaN(vi) {
			return false
		}
		if math.IsNaN(vj) {
			return true
		}
		if vi != vj {
			if order == OrderAscending {
				return vi < vj
			}
			return vi > vj
		}
		return rows[i].Player.ID < rows[j].Player.ID
	})
}
