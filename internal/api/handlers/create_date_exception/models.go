package create_date_exception

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/internal/service/schedule/models"
)

// CreateDateExceptionRequest HTTP request model
type CreateDateExceptionRequest struct {
	Date            string  `json:"date"` // "2025-10-15"
	ServiceCategory *string `json:"serviceCategory,omitempty"`
	Reason          *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateDateExceptionRequest) ToServiceRequest(actor domain.Actor) (*models.CreateExceptionRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateExceptionRequest{
		Date:            date,
		ServiceCategory: r.ServiceCategory,
		Reason:          r.Reason,
		Actor:           actor,
	}, nil
}
