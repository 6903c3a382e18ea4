package create_booking

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor     domain.Actor     // Кто создает бронирование
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")

	// Данные клиента; телефон является каноническим идентификатором
	ClientName  string
	ClientPhone string
	ClientEmail *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания
	Status      string           // Статус бронирования

	// Снапшот услуги на момент создания
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
