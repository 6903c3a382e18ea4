package catalog

import (
	"context"
	"fmt"

	"github.com/jpedrosa/Mira-BookingService/internal/service/catalog/models"
)

// Service сервис чтения каталога услуг
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListServices получает активные услуги, сгруппированные по категориям
// в порядке отображения
func (s *Service) ListServices(ctx context.Context) (*models.CatalogResponse, error) {
	s.logger.Info("ListServices: fetching active services")

	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListServices: failed to list categories: %v", err)
		return nil, fmt.Errorf("%w: ListServices - categories: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.ListActiveServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: ListServices - services: %v", ErrInternal, err)
	}

	byCategory := make(map[string][]models.ServiceResponse, len(categories))
	for _, svc := range services {
		byCategory[svc.CategorySlug] = append(byCategory[svc.CategorySlug], models.FromDomainService(svc))
	}

	resp := &models.CatalogResponse{
		Categories: make([]models.CategoryResponse, 0, len(categories)),
	}
	for _, cat := range categories {
		resp.Categories = append(resp.Categories, models.CategoryResponse{
			Slug:     cat.Slug,
			Name:     cat.Name,
			Services: byCategory[cat.Slug],
		})
	}

	s.logger.Info("ListServices: fetched %d services in %d categories", len(services), len(categories))
	return resp, nil
}
