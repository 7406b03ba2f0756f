package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

const (
	tableName = "schedule_config"

	// singletonID единственная строка таблицы
	singletonID = 1

	// serializationRetries сколько раз повторять GetOrCreateDefault при конфликте сериализации
	serializationRetries = 3
)

// Коды ошибок Postgres, после которых транзакцию можно повторить
const (
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

var columns = []string{
	"session_duration",
	"weekly",
	"special_dates",
	"recurring_holidays",
	"seasonal_schedules",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации расписания (одна строка JSONB документов)
type Repository struct {
	db        DBExecutor
	txManager TxManager
	now       func() time.Time
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor, txManager TxManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		now:       time.Now,
	}
}

// Get возвращает сохраненную конфигурацию или ErrConfigNotFound
func (r *Repository) Get(ctx context.Context) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildSelectQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var rw row
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rw.SessionDuration,
		&rw.Weekly,
		&rw.SpecialDates,
		&rw.RecurringHolidays,
		&rw.SeasonalSchedules,
		&rw.CreatedAt,
		&rw.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConfigNotFound
		}
		return nil, wrapDBError(ErrScanRow, "Get - scan", err)
	}

	return rw.toDomain()
}

// GetOrCreateDefault возвращает конфигурацию, при отсутствии сохраняет дефолтную.
// Вставка и чтение выполняются в одной serializable транзакции,
// при конфликте сериализации транзакция повторяется.
func (r *Repository) GetOrCreateDefault(ctx context.Context) (*domain.ScheduleConfig, error) {
	var (
		result *domain.ScheduleConfig
		err    error
	)

	for attempt := 0; attempt < serializationRetries; attempt++ {
		err = r.txManager.DoSerializable(ctx, func(ctx context.Context) error {
			if err := r.insertDefault(ctx); err != nil {
				return err
			}

			cfg, err := r.Get(ctx)
			if err != nil {
				return err
			}

			result = cfg
			return nil
		})

		if err == nil || !(errors.Is(err, ErrSerialization) || isRetryable(err)) {
			break
		}
	}

	if err != nil {
		if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrDocument) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: GetOrCreateDefault: %v", ErrTransaction, err)
	}

	return result, nil
}

// Replace полностью заменяет конфигурацию (последняя запись побеждает).
// created_at сохраняется, updated_at обновляется.
func (r *Repository) Replace(ctx context.Context, cfg *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := r.now()
	stored := *cfg
	stored.CreatedAt = now
	stored.UpdatedAt = now

	rw, err := toRow(&stored)
	if err != nil {
		return nil, err
	}

	query, args, err := buildUpsertQuery(rw, true)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt time.Time
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Replace - upsert: %v", ErrExecQuery, err)
	}

	stored.CreatedAt = createdAt
	stored.UpdatedAt = updatedAt
	return &stored, nil
}

func (r *Repository) insertDefault(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cfg := domain.DefaultScheduleConfig()
	now := r.now()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	rw, err := toRow(cfg)
	if err != nil {
		return err
	}

	query, args, err := buildUpsertQuery(rw, false)
	if err != nil {
		return fmt.Errorf("%w: insertDefault - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(ErrExecQuery, "insertDefault - exec", err)
	}
	return nil
}

func buildSelectQuery() (string, []interface{}, error) {
	return psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
}

// buildUpsertQuery при overwrite=false существующая строка не трогается,
// при overwrite=true перезаписываются все колонки кроме created_at
func buildUpsertQuery(rw *row, overwrite bool) (string, []interface{}, error) {
	builder := psqlbuilder.Insert(tableName).
		Columns(append([]string{"id"}, columns...)...).
		Values(
			singletonID,
			rw.SessionDuration,
			string(rw.Weekly),
			string(rw.SpecialDates),
			string(rw.RecurringHolidays),
			string(rw.SeasonalSchedules),
			rw.CreatedAt,
			rw.UpdatedAt,
		)

	if !overwrite {
		return builder.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	}

	return builder.
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			session_duration = EXCLUDED.session_duration,
			weekly = EXCLUDED.weekly,
			special_dates = EXCLUDED.special_dates,
			recurring_holidays = EXCLUDED.recurring_holidays,
			seasonal_schedules = EXCLUDED.seasonal_schedules,
			updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at`).
		ToSql()
}

// wrapDBError оборачивает ошибку драйвера, конфликты сериализации помечаются ErrSerialization
func wrapDBError(sentinel error, op string, err error) error {
	if isRetryable(err) {
		return fmt.Errorf("%w: %s: %v", ErrSerialization, op, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, op, err)
}

// isRetryable возвращает true для ошибок сериализации и дедлоков Postgres
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqSerializationFailure || pqErr.Code == pqDeadlockDetected
}
