package create_booking

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	createBooking "github.com/jpedrosa/Mira-BookingService/internal/usecase/create_booking"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   int64   `json:"serviceId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
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
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Actor:       actor,
		ServiceID:   r.ServiceID,
		Date:        bookingDate,
		StartTime:   startTime,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
