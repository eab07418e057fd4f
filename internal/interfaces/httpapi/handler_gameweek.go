package httpapi

import (
	"fmt"
	"net/http"

	"github.com/fplytics/fpl-insights/internal/usecase"
)

func (h *Handler) GetGameweekBounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameweekBounds")
	defer span.End()

	bounds, ok, err := h.attributionService.GameweekBounds(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get gameweek bounds failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no gameweek data recorded", usecase.ErrNotFound))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rangeDTO{Start: bounds.Start, End: bounds.End})
}
