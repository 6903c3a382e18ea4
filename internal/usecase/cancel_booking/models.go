package cancel_booking

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// Request модель запроса на отмену бронирования
type Request struct {
	Actor     domain.Actor
	BookingID int64
}

// Response модель ответа с отменённым бронированием
type Response struct {
	ID          int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string

	ServiceName string
	ClientName  string
	ClientPhone string

	UpdatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		ServiceName: b.ServiceName,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		UpdatedAt:   b.UpdatedAt,
	}
}
