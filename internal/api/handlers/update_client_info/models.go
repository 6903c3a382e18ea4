package update_client_info

import (
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/internal/service/bookings/models"
)

// UpdateClientInfoRequest HTTP request model
type UpdateClientInfoRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateClientInfoRequest) ToServiceRequest(actor domain.Actor, phone string) *models.UpdateClientInfoRequest {
	return &models.UpdateClientInfoRequest{
		Phone: phone,
		Name:  r.Name,
		Email: r.Email,
		Actor: actor,
	}
}
