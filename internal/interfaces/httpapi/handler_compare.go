package httpapi

import (
	"net/http"
)

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	playerAID, err := parsePlayerIDQuery(r, "player_a")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerBID, err := parsePlayerIDQuery(r, "player_b")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	rng, err := h.parseRangeQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.comparisonService.Compare(ctx, playerAID, playerBID, rng)
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed",
			"player_a", playerAID,
			"player_b", playerBID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(result))
}
