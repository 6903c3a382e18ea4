package get_day_agenda

import (
	"context"

	"github.com/jpedrosa/Mira-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetDayAgenda(ctx context.Context, req *models.GetDayAgendaRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
