package list_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/api/handlers"
	"github.com/jpedrosa/Mira-BookingService/internal/api/middleware"
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/internal/service/schedule"
	"github.com/jpedrosa/Mira-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidPeriod = "período inválido, esperado from=YYYY-MM-DD&to=YYYY-MM-DD"
	msgForbidden     = "acesso negado"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/schedule?from=2025-10-01&to=2025-10-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /admin/schedule - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /admin/schedule - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	result, err := h.service.ListSchedule(r.Context(), &models.ListScheduleRequest{
		From:  from,
		To:    to,
		Actor: actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("GET /admin/schedule - Access denied")
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /admin/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/schedule - Failed to list schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/schedule - Schedule retrieved: blocks=%d, exceptions=%d",
		len(result.Blocks), len(result.Exceptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
