package notifier

import (
	"context"

	"github.com/jpedrosa/Mira-BookingService/internal/infra/storage/gcal"
	"github.com/jpedrosa/Mira-BookingService/internal/integrations/gcalendar"
)

// MailerClient интерфейс почтового клиента
type MailerClient interface {
	Send(ctx context.Context, to, subject, body string) error
}

// PushClient интерфейс push-клиента
type PushClient interface {
	Notify(ctx context.Context, deviceToken, title, body string) error
}

// CalendarClient интерфейс клиента Google Calendar
type CalendarClient interface {
	CreateEvent(ctx context.Context, refreshToken, calendarID string, event gcalendar.Event) (string, error)
	UpdateEvent(ctx context.Context, refreshToken, calendarID string, event gcalendar.Event) (string, error)
	DeleteEvent(ctx context.Context, refreshToken, calendarID string, bookingID int64) error
}

// TokenRepository интерфейс репозитория календарных токенов
type TokenRepository interface {
	GetByAdminID(ctx context.Context, adminID int64) (*gcal.Token, error)
	ListConnectedAdmins(ctx context.Context) ([]int64, error)
}

// DeviceRepository интерфейс репозитория push-подписок
type DeviceRepository interface {
	ListTokensByPhone(ctx context.Context, phone string) ([]string, error)
	DeleteToken(ctx context.Context, deviceToken string) error
}

// MetricsCollector счётчики отправленных уведомлений
type MetricsCollector interface {
	IncNotification(channel, status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
