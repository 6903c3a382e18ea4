package schedule

import (
	"context"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.BlockedTime, error)
	Delete(ctx context.Context, id int64) error
}

// ExceptionRepository интерфейс репозитория исключений
type ExceptionRepository interface {
	Create(ctx context.Context, exc *domain.DateException) (*domain.DateException, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.DateException, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogRepository интерфейс каталога (проверка slug категории)
type CatalogRepository interface {
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.ServiceCategory, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
