package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fplytics/fpl-insights/internal/domain/player"
	"github.com/fplytics/fpl-insights/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	rng, err := h.parseRangeQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	cfg := usecase.FilterConfig{
		Team:     strings.TrimSpace(r.URL.Query().Get("team")),
		Position: player.Position(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("position")))),
		Range:    rng,
		SortBy:   usecase.SortColumn(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("sort_by")))),
		Order:    usecase.SortOrder(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("order")))),
	}

	rows, err := h.tableService.BuildTable(ctx, cfg)
	if err != nil {
		h.logger.WarnContext(ctx, "build player table failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tableRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, tableRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := parsePlayerIDPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.attributionService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) GetPlayerRangePoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRangePoints")
	defer span.End()

	playerID, err := parsePlayerIDPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	rng, err := h.parseRangeQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	total, err := h.attributionService.ComputeRangeTotal(ctx, playerID, rng)
	if err != nil {
		h.logger.WarnContext(ctx, "compute range total failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"playerId": playerID,
		"range":    rangeDTO{Start: rng.Start, End: rng.End},
		"points":   total,
	})
}

// GetPlayerBreakdown returns the per-category attribution. With
// presented=true the position display rules are applied and zero rows
// are trimmed the way the detail panel shows them.
func (h *Handler) GetPlayerBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerBreakdown")
	defer span.End()

	playerID, err := parsePlayerIDPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	rng, err := h.parseRangeQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	presented, _ := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("presented")))
	if presented {
		entries, presentErr := h.comparisonService.PresentBreakdown(ctx, playerID, rng)
		if presentErr != nil {
			h.logger.WarnContext(ctx, "present breakdown failed", "player_id", playerID, "error", presentErr)
			writeError(ctx, w, presentErr)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, map[string]any{
			"playerId": playerID,
			"range":    rangeDTO{Start: rng.Start, End: rng.End},
			"entries":  entriesToDTO(entries),
		})
		return
	}

	breakdown, err := h.attributionService.ComputeBreakdown(ctx, playerID, rng)
	if err != nil {
		h.logger.WarnContext(ctx, "compute breakdown failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, breakdownToDTO(breakdown))
}

func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerHistory")
	defer span.End()

	playerID, err := parsePlayerIDPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	rng, err := h.parseRangeQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	history, err := h.attributionService.History(ctx, playerID, rng)
	if err != nil {
		h.logger.WarnContext(ctx, "get player history failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"playerId": playerID,
		"range":    rangeDTO{Start: rng.Start, End: rng.End},
		"rounds":   historyToDTO(history),
	})
}
