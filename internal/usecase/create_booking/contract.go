package create_booking

import (
	"context"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.ServiceOffering, error)
}

// SettingsRepository интерфейс репозитория настроек бизнеса
type SettingsRepository interface {
	LoadPolicy(ctx context.Context, timezone string) (domain.BusinessPolicy, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByDay внутри транзакции блокирует строки дорожки (FOR UPDATE)
	GetByDay(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
	UpsertByPhone(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

// BlockRepository интерфейс репозитория блокировок расписания
type BlockRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.BlockedTime, error)
}

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.DateException, error)
}

// Notifier интерфейс отправки уведомлений после фиксации бронирования
type Notifier interface {
	BookingCreated(booking *domain.Booking)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
