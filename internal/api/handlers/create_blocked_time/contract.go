package create_blocked_time

import (
	"context"

	"github.com/jpedrosa/Mira-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
