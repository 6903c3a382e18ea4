package get_available_slots

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
	// GetByDay получает бронирования на конкретную дату с фильтром по дорожке
	GetByDay(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория блокировок расписания
type BlockRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.BlockedTime, error)
}

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.DateException, error)
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
