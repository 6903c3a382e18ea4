package device

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jpedrosa/Mira-BookingService/pkg/dbmetrics"
	"github.com/jpedrosa/Mira-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий push-подписок устройств. Подписка привязана к
// телефону клиента: одному клиенту может принадлежать несколько устройств.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет подписку устройства (upsert по токену)
func (r *Repository) Save(ctx context.Context, phone, deviceToken string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("push_subscriptions").
		Columns("client_phone", "device_token").
		Values(phone, deviceToken).
		Suffix("ON CONFLICT (device_token) DO UPDATE SET client_phone = EXCLUDED.client_phone, created_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListTokensByPhone получает токены устройств клиента
func (r *Repository) ListTokensByPhone(ctx context.Context, phone string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("device_token").
		From("push_subscriptions").
		Where(squirrel.Eq{"client_phone": phone}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTokensByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTokensByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tokens := make([]string, 0)
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("%w: ListTokensByPhone - scan token: %v", ErrScanRow, err)
		}
		tokens = append(tokens, token)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTokensByPhone - rows error: %v", ErrScanRow, err)
	}

	return tokens, nil
}

// DeleteToken удаляет протухшую подписку
func (r *Repository) DeleteToken(ctx context.Context, deviceToken string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("push_subscriptions").
		Where(squirrel.Eq{"device_token": deviceToken}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteToken - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteToken - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteToken - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
