package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jpedrosa/Mira-BookingService/internal/api/handlers"
	"github.com/jpedrosa/Mira-BookingService/internal/api/middleware"
	rescheduleBooking "github.com/jpedrosa/Mira-BookingService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID   = "ID de marcação inválido"
	msgInvalidRequestBody = "corpo do pedido inválido"
	msgInvalidDateTime    = "data ou hora inválida, esperado YYYY-MM-DD e HH:MM"
	msgNotFound           = "marcação não encontrada"
	msgCancelled          = "a marcação foi cancelada e não pode ser alterada"
	msgForbidden          = "acesso negado"
	msgChangeWindowClose  = "alterações só são possíveis até 24 horas antes da marcação"
	msgDateClosed         = "a data escolhida está fechada para marcações"
	msgInvalidSlotTime    = "hora de início inválida para este serviço"
	msgTooLateToBook      = "demasiado tarde para marcar este horário"
	msgSlotConflict       = "o horário escolhido já não está disponível"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(actor, bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrBookingCancelled):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking cancelled: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCancelled)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Access denied: booking_id=%d", bookingID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrChangeWindowClosed):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Change window closed: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgChangeWindowClose)

		case errors.Is(err, rescheduleBooking.ErrDateClosed):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Date closed: booking_id=%d, date=%s",
				bookingID, req.NewDate)
			handlers.RespondBadRequest(w, msgDateClosed)

		case errors.Is(err, rescheduleBooking.ErrInvalidSlotTime):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid slot time: booking_id=%d, time=%s",
				bookingID, req.NewStartTime)
			handlers.RespondBadRequest(w, msgInvalidSlotTime)

		case errors.Is(err, rescheduleBooking.ErrTooLateToBook):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Too late to book: booking_id=%d, time=%s",
				bookingID, req.NewStartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, rescheduleBooking.ErrSlotConflict):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot conflict: booking_id=%d, date=%s, time=%s",
				bookingID, req.NewDate, req.NewStartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled: booking_id=%d, date=%s, time=%s",
		bookingID, req.NewDate, req.NewStartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
