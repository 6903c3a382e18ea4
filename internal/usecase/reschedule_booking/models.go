package reschedule_booking

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	Actor     domain.Actor
	BookingID int64

	NewDate      time.Time        // Новая дата (без времени)
	NewStartTime types.TimeString // Новое время начала
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID          int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string

	ServiceName            string
	ServiceDurationMinutes int
	ServicePrice           float64
	ServiceCategory        string

	ClientName  string
	ClientPhone string
	ClientEmail *string

	ResponsibleAdminID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:                     b.ID,
		BookingDate:            b.BookingDate,
		StartTime:              b.StartTime,
		EndTime:                b.EndTime,
		Status:                 string(b.Status),
		ServiceName:            b.ServiceName,
		ServiceDurationMinutes: b.ServiceDurationMinutes,
		ServicePrice:           b.ServicePrice,
		ServiceCategory:        b.ServiceCategory,
		ClientName:             b.ClientName,
		ClientPhone:            b.ClientPhone,
		ClientEmail:            b.ClientEmail,
		ResponsibleAdminID:     b.ResponsibleAdminID,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}
