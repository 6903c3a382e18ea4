package reminder

import (
	"context"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetPendingReminders(ctx context.Context, fromDate, toDate time.Time) ([]*domain.Booking, error)
	MarkReminderSent(ctx context.Context, id int64) error
}

// Notifier интерфейс отправки напоминаний
type Notifier interface {
	SendReminder(ctx context.Context, booking *domain.Booking) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
