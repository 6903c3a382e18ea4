package update_client_info

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jpedrosa/Mira-BookingService/internal/api/handlers"
	"github.com/jpedrosa/Mira-BookingService/internal/api/middleware"
	"github.com/jpedrosa/Mira-BookingService/internal/service/bookings"
)

const (
	msgMissingPhone       = "telefone em falta"
	msgInvalidRequestBody = "corpo do pedido inválido"
	msgClientNotFound     = "cliente não encontrado"
	msgForbidden          = "acesso negado"
	msgInvalidInput       = "dados do cliente inválidos"
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

// Handle PATCH /api/v1/admin/clients/{phone}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	phone := vars["phone"]
	if phone == "" {
		h.logger.Warn("PATCH /admin/clients/{phone} - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	var req UpdateClientInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/clients/{phone} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	result, err := h.service.UpdateClientInfo(r.Context(), req.ToServiceRequest(actor, phone))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrClientNotFound):
			h.logger.Warn("PATCH /admin/clients/{phone} - Client not found: phone=%s", phone)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/clients/{phone} - Access denied: phone=%s", phone)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/clients/{phone} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /admin/clients/{phone} - Failed to update client: phone=%s, error=%v", phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/clients/{phone} - Client updated: phone=%s, bookings=%d",
		phone, result.UpdatedBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
