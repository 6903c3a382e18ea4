package get_day_agenda

import (
	"errors"
	"net/http"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/api/handlers"
	"github.com/jpedrosa/Mira-BookingService/internal/api/middleware"
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/internal/service/bookings"
	"github.com/jpedrosa/Mira-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidDate = "data inválida, esperado YYYY-MM-DD"
	msgForbidden   = "acesso negado"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/agenda?date=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /admin/agenda - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	result, err := h.service.GetDayAgenda(r.Context(), &models.GetDayAgendaRequest{
		Date:  date,
		Actor: actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /admin/agenda - Access denied: date=%s", date.Format(domain.DateFormat))
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/agenda - Failed to get agenda: date=%s, error=%v",
				date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/agenda - Retrieved %d bookings: date=%s",
		len(result.Bookings), date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, result)
}
