package create_date_exception

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
	msgInvalidInput       = "dados da exceção inválidos"
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

// Handle POST /api/v1/admin/date-exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/date-exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	serviceReq, err := req.ToServiceRequest(actor)
	if err != nil {
		h.logger.Warn("POST /admin/date-exceptions - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateException(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrCategoryNotFound):
			h.logger.Warn("POST /admin/date-exceptions - Category not found: %v", err)
			handlers.RespondBadRequest(w, msgCategoryNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /admin/date-exceptions - Access denied")
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/date-exceptions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/date-exceptions - Failed to create exception: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/date-exceptions - Exception created: exception_id=%d, date=%s",
		result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
