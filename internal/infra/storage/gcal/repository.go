package gcal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/jpedrosa/Mira-BookingService/pkg/dbmetrics"
	"github.com/jpedrosa/Mira-BookingService/pkg/psqlbuilder"
)

// Token OAuth-токен Google Calendar одного администратора
type Token struct {
	AdminID      int64
	RefreshToken string
	CalendarID   string
	UpdatedAt    time.Time
}

// Repository репозиторий токенов Google Calendar
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория токенов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет токен администратора (upsert по admin_id)
func (r *Repository) Save(ctx context.Context, token *Token) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("google_calendar_tokens").
		Columns("admin_id", "refresh_token", "calendar_id", "updated_at").
		Values(token.AdminID, token.RefreshToken, token.CalendarID, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (admin_id) DO UPDATE SET
			refresh_token = EXCLUDED.refresh_token,
			calendar_id = EXCLUDED.calendar_id,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByAdminID получает токен администратора
func (r *Repository) GetByAdminID(ctx context.Context, adminID int64) (*Token, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("admin_id", "refresh_token", "calendar_id", "updated_at").
		From("google_calendar_tokens").
		Where(squirrel.Eq{"admin_id": adminID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAdminID - build select query: %v", ErrBuildQuery, err)
	}

	var token Token
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&token.AdminID,
		&token.RefreshToken,
		&token.CalendarID,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAdminID - scan token: %v", ErrScanRow, err)
	}

	token.UpdatedAt = updatedAt.Time

	return &token, nil
}

// ListConnectedAdmins получает идентификаторы администраторов с подключённым
// календарём (по возрастанию: первый используется как владелец по умолчанию
// для неназначенных услуг)
func (r *Repository) ListConnectedAdmins(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("admin_id").
		From("google_calendar_tokens").
		OrderBy("admin_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConnectedAdmins - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConnectedAdmins - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	adminIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListConnectedAdmins - scan admin_id: %v", ErrScanRow, err)
		}
		adminIDs = append(adminIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConnectedAdmins - rows error: %v", ErrScanRow, err)
	}

	return adminIDs, nil
}

// Delete отключает календарь администратора
func (r *Repository) Delete(ctx context.Context, adminID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("google_calendar_tokens").
		Where(squirrel.Eq{"admin_id": adminID}).
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
		return ErrTokenNotFound
	}

	return nil
}
