package create_blocked_time

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/internal/service/schedule/models"
)

// CreateBlockedTimeRequest HTTP request model
type CreateBlockedTimeRequest struct {
	Date            string  `json:"date"` // "2025-10-15"
	IsFullDay       bool    `json:"isFullDay"`
	StartTime       string  `json:"startTime,omitempty"` // "HH:MM", обязательно для частичной блокировки
	EndTime         string  `json:"endTime,omitempty"`
	ServiceCategory *string `json:"serviceCategory,omitempty"`
	Reason          *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlockedTimeRequest) ToServiceRequest(actor domain.Actor) (*models.CreateBlockRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlockRequest{
		Date:            date,
		IsFullDay:       r.IsFullDay,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		ServiceCategory: r.ServiceCategory,
		Reason:          r.Reason,
		Actor:           actor,
	}, nil
}
