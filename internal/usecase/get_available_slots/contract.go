package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/availability"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	// GetOrCreateDefault получает конфигурацию, при отсутствии сохраняет дефолтную
	GetOrCreateDefault(ctx context.Context) (*domain.ScheduleConfig, error)
}

// Engine интерфейс движка доступности
type Engine interface {
	SlotsFor(effective availability.EffectiveSchedule, sessionDurationMinutes int) []domain.AvailabilitySlot
}

// Resolver определяет действующее расписание на дату
type Resolver func(date domain.Date, cfg *domain.ScheduleConfig) availability.EffectiveSchedule

// MetricsRecorder получатель доменных метрик
type MetricsRecorder interface {
	RecordResolution(tier string, closed bool)
	RecordGeneratedSlots(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
