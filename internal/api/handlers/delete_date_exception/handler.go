package delete_date_exception

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jpedrosa/Mira-BookingService/internal/api/handlers"
	"github.com/jpedrosa/Mira-BookingService/internal/api/middleware"
	"github.com/jpedrosa/Mira-BookingService/internal/service/schedule"
)

const (
	msgInvalidExceptionID = "ID de exceção inválido"
	msgNotFound           = "exceção não encontrada"
	msgForbidden          = "acesso negado"
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

// Handle DELETE /api/v1/admin/date-exceptions/{exceptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	exceptionID, err := strconv.ParseInt(vars["exceptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/date-exceptions/{id} - Invalid exception ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	if err := h.service.DeleteException(r.Context(), exceptionID, actor); err != nil {
		switch {
		case errors.Is(err, schedule.ErrExceptionNotFound):
			h.logger.Warn("DELETE /admin/date-exceptions/{id} - Exception not found: exception_id=%d", exceptionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/date-exceptions/{id} - Access denied: exception_id=%d", exceptionID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /admin/date-exceptions/{id} - Failed to delete exception: exception_id=%d, error=%v",
				exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/date-exceptions/{id} - Exception deleted: exception_id=%d", exceptionID)
	w.WriteHeader(http.StatusNoContent)
}
