package models

import "github.com/jpedrosa/Mira-BookingService/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
}

// CategoryResponse категория услуг
type CategoryResponse struct {
	Slug     string            `json:"slug"`
	Name     string            `json:"name"`
	Services []ServiceResponse `json:"services"`
}

// CatalogResponse каталог услуг, сгруппированный по категориям
type CatalogResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromDomainService конвертирует domain модель услуги в DTO
func FromDomainService(s *domain.ServiceOffering) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Category:        s.CategorySlug,
	}
}
