package schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetOrCreateDefault(ctx context.Context) (*domain.ScheduleConfig, error)
	Replace(ctx context.Context, cfg *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
}

// AccessChecker проверяет право пользователя изменять расписание
type AccessChecker interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// MetricsRecorder получатель доменных метрик
type MetricsRecorder interface {
	RecordScheduleUpdate(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
