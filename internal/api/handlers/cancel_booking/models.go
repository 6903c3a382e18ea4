package cancel_booking

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	cancelBooking "github.com/jpedrosa/Mira-BookingService/internal/usecase/cancel_booking"
)

// CancelledBookingResponse HTTP response model
type CancelledBookingResponse struct {
	ID          int64  `json:"id"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	Status      string `json:"status"`
	ServiceName string `json:"serviceName"`
	UpdatedAt   string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelledBookingResponse {
	return &CancelledBookingResponse{
		ID:          resp.ID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Status:      resp.Status,
		ServiceName: resp.ServiceName,
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
