package create_booking

import (
	"errors"
	"net/http"

	"github.com/jpedrosa/Mira-BookingService/internal/api/handlers"
	"github.com/jpedrosa/Mira-BookingService/internal/api/middleware"
	createBooking "github.com/jpedrosa/Mira-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo do pedido inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidTime        = "formato de hora inválido, esperado HH:MM"
	msgServiceNotFound    = "serviço não encontrado"
	msgDateClosed         = "a data escolhida está fechada para marcações"
	msgInvalidSlotTime    = "hora de início inválida para este serviço"
	msgTooLateToBook      = "demasiado tarde para marcar este horário"
	msgSlotConflict       = "o horário escolhido já não está disponível"
	msgPhoneInUse         = "o telefone pertence a outra conta"
	msgAccessDenied       = "acesso negado"
	msgInvalidInput       = "dados do pedido inválidos"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if req.StartTime != "" && len(req.BookingDate) == len("2006-01-02") {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: service_id=%d, date=%s, time=%s",
				req.ServiceID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrDateClosed):
			h.logger.Warn("POST /bookings - Date closed: service_id=%d, date=%s", req.ServiceID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateClosed)

		case errors.Is(err, createBooking.ErrInvalidSlotTime):
			h.logger.Warn("POST /bookings - Invalid slot time: service_id=%d, time=%s", req.ServiceID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlotTime)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: service_id=%d, time=%s", req.ServiceID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrPhoneInUse):
			h.logger.Warn("POST /bookings - Phone in use: phone=%s", req.ClientPhone)
			handlers.RespondConflict(w, msgPhoneInUse)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied")
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service_id=%d, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, service_id=%d, date=%s",
		result.ID, req.ServiceID, req.BookingDate)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
