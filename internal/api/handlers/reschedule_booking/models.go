package reschedule_booking

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	rescheduleBooking "github.com/jpedrosa/Mira-BookingService/internal/usecase/reschedule_booking"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate      string `json:"newDate"`      // "2025-10-15"
	NewStartTime string `json:"newStartTime"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                     int64   `json:"id"`
	BookingDate            string  `json:"bookingDate"`
	StartTime              string  `json:"startTime"`
	EndTime                string  `json:"endTime"`
	Status                 string  `json:"status"`
	ServiceName            string  `json:"serviceName"`
	ServiceDurationMinutes int     `json:"serviceDurationMinutes"`
	ServicePrice           float64 `json:"servicePrice"`
	ServiceCategory        string  `json:"serviceCategory"`
	ClientName             string  `json:"clientName"`
	ClientPhone            string  `json:"clientPhone"`
	ClientEmail            *string `json:"clientEmail,omitempty"`
	ResponsibleAdminID     *int64  `json:"responsibleAdminId,omitempty"`
	CreatedAt              string  `json:"createdAt"`
	UpdatedAt              string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64) (*rescheduleBooking.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		Actor:        actor,
		BookingID:    bookingID,
		NewDate:      newDate,
		NewStartTime: newStartTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                     resp.ID,
		BookingDate:            resp.BookingDate.Format(domain.DateFormat),
		StartTime:              resp.StartTime.String(),
		EndTime:                resp.EndTime.String(),
		Status:                 resp.Status,
		ServiceName:            resp.ServiceName,
		ServiceDurationMinutes: resp.ServiceDurationMinutes,
		ServicePrice:           resp.ServicePrice,
		ServiceCategory:        resp.ServiceCategory,
		ClientName:             resp.ClientName,
		ClientPhone:            resp.ClientPhone,
		ClientEmail:            resp.ClientEmail,
		ResponsibleAdminID:     resp.ResponsibleAdminID,
		CreatedAt:              resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              resp.UpdatedAt.Format(time.RFC3339),
	}
}
