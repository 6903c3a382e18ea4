package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/dbmetrics"
	"github.com/jpedrosa/Mira-BookingService/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"s.id",
	"s.name",
	"s.description",
	"s.duration_minutes",
	"s.price",
	"s.category_id",
	"c.slug",
	"s.responsible_admin_id",
	"s.is_active",
	"s.display_order",
	"s.created_at",
	"s.updated_at",
}

// Repository репозиторий каталога услуг и категорий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServiceByID получает услугу по ID вместе со slug категории
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.ServiceOffering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services s").
		Join("service_categories c ON c.id = s.category_id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// ListActiveServices получает активные услуги в порядке отображения
func (r *Repository) ListActiveServices(ctx context.Context) ([]*domain.ServiceOffering, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services s").
		Join("service_categories c ON c.id = s.category_id").
		Where(squirrel.Eq{"s.is_active": true}).
		OrderBy("c.display_order ASC, s.display_order ASC, s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.ServiceOffering, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListCategories получает все категории в порядке отображения
func (r *Repository) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slug", "name", "display_order").
		From("service_categories").
		OrderBy("display_order ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]domain.ServiceCategory, 0)
	for rows.Next() {
		var cat domain.ServiceCategory
		if err := rows.Scan(&cat.ID, &cat.Slug, &cat.Name, &cat.DisplayOrder); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// GetCategoryBySlug получает категорию по slug
func (r *Repository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.ServiceCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slug", "name", "display_order").
		From("service_categories").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var cat domain.ServiceCategory
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cat.ID, &cat.Slug, &cat.Name, &cat.DisplayOrder)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryBySlug - scan category: %v", ErrScanRow, err)
	}

	return &cat, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.ServiceOffering, error) {
	var svc domain.ServiceOffering
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.CategoryID,
		&svc.CategorySlug,
		&svc.ResponsibleAdminID,
		&svc.IsActive,
		&svc.DisplayOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
