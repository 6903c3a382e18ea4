package list_schedule

import (
	"context"

	"github.com/jpedrosa/Mira-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListSchedule(ctx context.Context, req *models.ListScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
