package catalog

import (
	"context"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListActiveServices(ctx context.Context) ([]*domain.ServiceOffering, error)
	ListCategories(ctx context.Context) ([]domain.ServiceCategory, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
