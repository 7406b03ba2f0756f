package check_slot_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetOrCreateDefault(ctx context.Context) (*domain.ScheduleConfig, error)
}

// Engine интерфейс движка доступности
type Engine interface {
	IsSlotAvailable(start, end time.Time, cfg *domain.ScheduleConfig) bool
	DateOf(t time.Time) domain.Date
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
