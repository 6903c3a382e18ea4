package create_blocked_time

import (
	"errors"
	"net/http"

	"github.com/jpedrosa/Mira-BookingService/internal/api/handlers"
	"github.com/jpedrosa/Mira-BookingService/internal/api/middleware"
	"github.com/jpedrosa/Mira-BookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "corpo do pedido inválido"
	msgInvalidDate        = "data inválida, esperado YYYY-MM-DD"
	msgCategoryNotFound   = "categoria de serviço não encontrada"
	msgForbidden          = "acesso negado"
	msgInvalidInput       = "dados da blocagem inválidos"
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

// Handle POST /api/v1/admin/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	serviceReq, err := req.ToServiceRequest(actor)
	if err != nil {
		h.logger.Warn("POST /admin/blocked-times - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateBlock(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrCategoryNotFound):
			h.logger.Warn("POST /admin/blocked-times - Category not found: %v", err)
			handlers.RespondBadRequest(w, msgCategoryNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /admin/blocked-times - Access denied")
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/blocked-times - Failed to create block: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-times - Block created: block_id=%d, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
