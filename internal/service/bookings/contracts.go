package bookings

import (
	"context"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientPhone(ctx context.Context, phone string, includeCancelled bool) ([]*domain.Booking, error)
	GetByDay(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
	UpdateClientInfo(ctx context.Context, phone string, name string, email *string) (int64, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Client, error)
	UpdateInfo(ctx context.Context, phone string, name string, email *string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
