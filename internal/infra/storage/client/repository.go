package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/dbmetrics"
	"github.com/jpedrosa/Mira-BookingService/pkg/psqlbuilder"
)

var clientColumns = []string{
	"id",
	"user_id",
	"name",
	"phone",
	"email",
	"created_at",
	"updated_at",
}

// Repository репозиторий клиентов. Телефон — уникальный каноничный ключ.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByPhone создает или обновляет клиента по телефону.
// Повторное бронирование с тем же телефоном обновляет имя и email,
// но не затирает привязку к аккаунту (user_id пишется только если был NULL).
func (r *Repository) UpsertByPhone(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("user_id", "name", "phone", "email").
		Values(c.UserID, c.Name, c.Phone, c.Email).
		Suffix(`ON CONFLICT (phone) DO UPDATE SET
			name = EXCLUDED.name,
			email = COALESCE(EXCLUDED.email, clients.email),
			user_id = COALESCE(clients.user_id, EXCLUDED.user_id),
			updated_at = NOW()
		RETURNING id, user_id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.UserID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - execute upsert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByPhone получает клиента по телефону
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanClient(executor.QueryRowContext(ctx, query, args...))
}

// GetByUserID получает клиента по идентификатору аккаунта
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanClient(executor.QueryRowContext(ctx, query, args...))
}

// UpdateInfo обновляет имя и email клиента
func (r *Repository) UpdateInfo(ctx context.Context, phone string, name string, email *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set("name", name).
		Set("email", email).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"phone": phone}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateInfo - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateInfo - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateInfo - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}

func (r *Repository) scanClient(row *sql.Row) (*domain.Client, error) {
	var c domain.Client
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanClient: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
