package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/fplytics/fpl-insights/internal/platform/logging"
	"github.com/fplytics/fpl-insights/internal/usecase"
)

type Handler struct {
	attributionService *usecase.AttributionService
	comparisonService  *usecase.ComparisonService
	tableService       *usecase.TableService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	attributionService *usecase.AttributionService,
	comparisonService *usecase.ComparisonService,
	tableService *usecase.TableService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		attributionService: attributionService,
		comparisonService:  comparisonService,
		tableService:       tableService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
