package delete_blocked_time

import (
	"context"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
)

type ScheduleService interface {
	DeleteBlock(ctx context.Context, id int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
