package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/dbmetrics"
	"github.com/jpedrosa/Mira-BookingService/pkg/psqlbuilder"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

var blockColumns = []string{
	"id",
	"block_date",
	"is_full_day",
	"start_time",
	"end_time",
	"service_category",
	"reason",
	"created_by",
	"created_at",
}

// Repository репозиторий для работы с блокировками времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var start, end interface{}
	if !block.IsFullDay {
		start = block.StartTime
		end = block.EndTime
	}

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns(
			"block_date",
			"is_full_day",
			"start_time",
			"end_time",
			"service_category",
			"reason",
			"created_by",
		).
		Values(
			block.BlockDate,
			block.IsFullDay,
			start,
			end,
			block.ServiceCategory,
			block.Reason,
			block.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// GetByDate получает все блокировки на дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_times").
		Where(squirrel.Eq{"block_date": date}).
		OrderBy("is_full_day DESC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// GetByDateRange получает блокировки в диапазоне дат (для календарной сетки)
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_times").
		Where(squirrel.GtOrEq{"block_date": from}).
		Where(squirrel.LtOrEq{"block_date": to}).
		OrderBy("block_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
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
		return ErrBlockNotFound
	}

	return nil
}

// scanBlocks сканирует результаты запроса в слайс блокировок
func scanBlocks(rows *sql.Rows) ([]domain.BlockedTime, error) {
	blocks := make([]domain.BlockedTime, 0)

	for rows.Next() {
		var block domain.BlockedTime
		var start, end sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.BlockDate,
			&block.IsFullDay,
			&start,
			&end,
			&block.ServiceCategory,
			&block.Reason,
			&block.CreatedBy,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}

		if start.Valid {
			ts, err := types.NewTimeStringFromString(start.String)
			if err != nil {
				return nil, fmt.Errorf("%w: scanBlocks - parse start_time: %v", ErrScanRow, err)
			}
			block.StartTime = ts
		}
		if end.Valid {
			ts, err := types.NewTimeStringFromString(end.String)
			if err != nil {
				return nil, fmt.Errorf("%w: scanBlocks - parse end_time: %v", ErrScanRow, err)
			}
			block.EndTime = ts
		}

		block.CreatedAt = createdAt.Time
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
