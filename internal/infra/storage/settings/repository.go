package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/dbmetrics"
	"github.com/jpedrosa/Mira-BookingService/pkg/psqlbuilder"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// Repository репозиторий настроек бизнеса (key/value с JSON-значениями)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetValue получает сырое JSON-значение настройки по ключу
func (r *Repository) GetValue(ctx context.Context, key string) (json.RawMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("business_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetValue - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetValue - scan value: %v", ErrScanRow, err)
	}

	return raw, nil
}

// SetValue сохраняет JSON-значение настройки (upsert по ключу)
func (r *Repository) SetValue(ctx context.Context, key string, value json.RawMessage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_settings").
		Columns("key", "value", "updated_at").
		Values(key, []byte(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetValue - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetValue - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// hoursWindowJSON формат хранения рабочих часов
type hoursWindowJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// LoadPolicy собирает бизнес-политику из настроек.
// Отсутствующие ключи заполняются значениями по умолчанию: пустая таблица
// настроек означает политику по умолчанию, а не ошибку.
func (r *Repository) LoadPolicy(ctx context.Context, timezone string) (domain.BusinessPolicy, error) {
	policy := domain.DefaultBusinessPolicy()
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return policy, fmt.Errorf("%w: LoadPolicy - timezone %q: %v", ErrDecodeValue, timezone, err)
		}
		policy.Timezone = loc
	}

	if raw, err := r.GetValue(ctx, domain.SettingRecurringDaysOff); err == nil {
		var days []int
		if err := json.Unmarshal(raw, &days); err != nil {
			return policy, fmt.Errorf("%w: LoadPolicy - recurring_days_off: %v", ErrDecodeValue, err)
		}
		daysOff := make(map[time.Weekday]bool, len(days))
		for _, d := range days {
			daysOff[time.Weekday(d)] = true
		}
		policy.RecurringDaysOff = daysOff
	} else if err != ErrSettingNotFound {
		return policy, err
	}

	if window, err := r.loadWindow(ctx, domain.SettingWorkingHours); err == nil {
		policy.WorkingHours = window
	} else if err != ErrSettingNotFound {
		return policy, err
	}

	if window, err := r.loadWindow(ctx, domain.SettingLaserWorkingHours); err == nil {
		policy.LaserWorkingHours = window
	} else if err != ErrSettingNotFound {
		return policy, err
	}

	return policy, nil
}

// SaveRecurringDaysOff сохраняет выходные дни недели
func (r *Repository) SaveRecurringDaysOff(ctx context.Context, daysOff map[time.Weekday]bool) error {
	days := make([]int, 0, len(daysOff))
	for d, off := range daysOff {
		if off {
			days = append(days, int(d))
		}
	}

	raw, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("%w: SaveRecurringDaysOff - marshal: %v", ErrDecodeValue, err)
	}

	return r.SetValue(ctx, domain.SettingRecurringDaysOff, raw)
}

// SaveWorkingHours сохраняет окно рабочих часов по ключу
func (r *Repository) SaveWorkingHours(ctx context.Context, key string, window domain.HoursWindow) error {
	raw, err := json.Marshal(hoursWindowJSON{
		Start: window.Start.String(),
		End:   window.End.String(),
	})
	if err != nil {
		return fmt.Errorf("%w: SaveWorkingHours - marshal: %v", ErrDecodeValue, err)
	}

	return r.SetValue(ctx, key, raw)
}

func (r *Repository) loadWindow(ctx context.Context, key string) (domain.HoursWindow, error) {
	raw, err := r.GetValue(ctx, key)
	if err != nil {
		return domain.HoursWindow{}, err
	}

	var stored hoursWindowJSON
	if err := json.Unmarshal(raw, &stored); err != nil {
		return domain.HoursWindow{}, fmt.Errorf("%w: loadWindow - %s: %v", ErrDecodeValue, key, err)
	}

	start, err := types.NewTimeStringFromString(stored.Start)
	if err != nil {
		return domain.HoursWindow{}, fmt.Errorf("%w: loadWindow - %s start: %v", ErrDecodeValue, key, err)
	}
	end, err := types.NewTimeStringFromString(stored.End)
	if err != nil {
		return domain.HoursWindow{}, fmt.Errorf("%w: loadWindow - %s end: %v", ErrDecodeValue, key, err)
	}

	return domain.HoursWindow{Start: start, End: end}, nil
}
