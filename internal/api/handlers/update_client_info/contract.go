package update_client_info

import (
	"context"

	"github.com/jpedrosa/Mira-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	UpdateClientInfo(ctx context.Context, req *models.UpdateClientInfoRequest) (*models.UpdateClientInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
