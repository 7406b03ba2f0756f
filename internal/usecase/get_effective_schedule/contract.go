package get_effective_schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetOrCreateDefault(ctx context.Context) (*domain.ScheduleConfig, error)
}

// Engine интерфейс движка доступности
type Engine interface {
	Anchor(date domain.Date, slots []domain.TimeSlot) []domain.AvailabilitySlot
}

// MetricsRecorder получатель доменных метрик
type MetricsRecorder interface {
	RecordResolution(tier string, closed bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
