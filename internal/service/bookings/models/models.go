package models

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
)

// Request модели

// GetClientBookingsRequest запрос истории бронирований клиента
type GetClientBookingsRequest struct {
	Phone            string
	IncludeCancelled bool
	Actor            domain.Actor
}

// GetDayAgendaRequest запрос агенды на день (только администратор)
type GetDayAgendaRequest struct {
	Date  time.Time
	Actor domain.Actor
}

// UpdateClientInfoRequest запрос на исправление данных клиента
type UpdateClientInfoRequest struct {
	Phone string
	Name  string
	Email *string
	Actor domain.Actor
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`

	// Денормализованные данные услуги
	ServiceName            string  `json:"serviceName"`
	ServiceDurationMinutes int     `json:"serviceDurationMinutes"`
	ServicePrice           float64 `json:"servicePrice"`
	ServiceCategory        string  `json:"serviceCategory"`

	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`

	ResponsibleAdminID *int64 `json:"responsibleAdminId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// UpdateClientInfoResponse результат исправления данных клиента
type UpdateClientInfoResponse struct {
	UpdatedBookings int64 `json:"updatedBookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                     b.ID,
		BookingDate:            b.BookingDate.Format(domain.DateFormat),
		StartTime:              b.StartTime.String(),
		EndTime:                b.EndTime.String(),
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

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
