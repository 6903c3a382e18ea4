package get_client_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jpedrosa/Mira-BookingService/internal/api/handlers"
	"github.com/jpedrosa/Mira-BookingService/internal/api/middleware"
	"github.com/jpedrosa/Mira-BookingService/internal/service/bookings"
	"github.com/jpedrosa/Mira-BookingService/internal/service/bookings/models"
)

const (
	msgMissingPhone = "telefone em falta"
	msgForbidden    = "acesso negado"
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

// Handle GET /api/v1/clients/{phone}/bookings?includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	phone := vars["phone"]
	if phone == "" {
		h.logger.Warn("GET /clients/{phone}/bookings - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	includeCancelled := r.URL.Query().Get("includeCancelled") == "true"

	actor := middleware.ActorFromContext(r.Context())

	result, err := h.service.GetClientBookings(r.Context(), &models.GetClientBookingsRequest{
		Phone:            phone,
		IncludeCancelled: includeCancelled,
		Actor:            actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /clients/{phone}/bookings - Access denied: phone=%s", phone)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/{phone}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingPhone)

		default:
			h.logger.Error("GET /clients/{phone}/bookings - Failed to get bookings: phone=%s, error=%v", phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{phone}/bookings - Retrieved %d bookings: phone=%s",
		len(result.Bookings), phone)
	handlers.RespondJSON(w, http.StatusOK, result)
}
