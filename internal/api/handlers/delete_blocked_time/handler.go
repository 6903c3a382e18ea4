package delete_blocked_time

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
	msgInvalidBlockID = "ID de blocagem inválido"
	msgNotFound       = "blocagem não encontrada"
	msgForbidden      = "acesso negado"
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

// Handle DELETE /api/v1/admin/blocked-times/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-times/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	if err := h.service.DeleteBlock(r.Context(), blockID, actor); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockNotFound):
			h.logger.Warn("DELETE /admin/blocked-times/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/blocked-times/{id} - Access denied: block_id=%d", blockID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /admin/blocked-times/{id} - Failed to delete block: block_id=%d, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-times/{id} - Block deleted: block_id=%d", blockID)
	w.WriteHeader(http.StatusNoContent)
}
