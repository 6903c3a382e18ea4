package exception

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/dbmetrics"
	"github.com/jpedrosa/Mira-BookingService/pkg/psqlbuilder"
)

var exceptionColumns = []string{
	"id",
	"exception_date",
	"service_category",
	"reason",
	"created_by",
	"created_at",
}

// Repository репозиторий для работы с исключениями календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое исключение (открывает дату, закрытую регулярным правилом)
func (r *Repository) Create(ctx context.Context, exc *domain.DateException) (*domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("date_exceptions").
		Columns(
			"exception_date",
			"service_category",
			"reason",
			"created_by",
		).
		Values(
			exc.ExceptionDate,
			exc.ServiceCategory,
			exc.Reason,
			exc.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&exc.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	exc.CreatedAt = createdAt.Time

	return exc, nil
}

// GetByDate получает все исключения на дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(exceptionColumns...).
		From("date_exceptions").
		Where(squirrel.Eq{"exception_date": date}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanExceptions(rows)
}

// GetByDateRange получает исключения в диапазоне дат
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(exceptionColumns...).
		From("date_exceptions").
		Where(squirrel.GtOrEq{"exception_date": from}).
		Where(squirrel.LtOrEq{"exception_date": to}).
		OrderBy("exception_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanExceptions(rows)
}

// Delete удаляет исключение
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("date_exceptions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}

// scanExceptions сканирует результаты запроса в слайс исключений
func scanExceptions(rows *sql.Rows) ([]domain.DateException, error) {
	exceptions := make([]domain.DateException, 0)

	for rows.Next() {
		var exc domain.DateException
		var createdAt sql.NullTime

		err := rows.Scan(
			&exc.ID,
			&exc.ExceptionDate,
			&exc.ServiceCategory,
			&exc.Reason,
			&exc.CreatedBy,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanExceptions - scan row: %v", ErrScanRow, err)
		}

		exc.CreatedAt = createdAt.Time
		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanExceptions - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}
