package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/availability"
)

// UseCase use case для получения слотов приема на дату
type UseCase struct {
	repo         ScheduleRepository
	engine       Engine
	resolve      Resolver
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ScheduleRepository,
	engine Engine,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		engine:       engine,
		resolve:      availability.Resolve,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию расписания
	cfg, err := uc.repo.GetOrCreateDefault(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	duration := cfg.SessionDurationMinutes
	if req.SessionDurationMinutes != nil {
		duration = *req.SessionDurationMinutes
	}

	// 3. Определяем действующее расписание
	effective := uc.resolve(req.Date, cfg)
	uc.metrics.RecordResolution(string(effective.Tier), effective.Closed)

	// 4. Нарезаем слоты по уже определенному расписанию
	generated := uc.engine.SlotsFor(effective, duration)
	slots := toSlots(generated, req.UpcomingOnly, uc.timeProvider.Now())
	uc.metrics.RecordGeneratedSlots(len(slots))

	uc.logger.Info("GetAvailableSlots: date=%s, tier=%s, closed=%t, duration=%d, slots=%d",
		req.Date, effective.Tier, effective.Closed, duration, len(slots))

	return &Response{
		Date:                   req.Date,
		SessionDurationMinutes: duration,
		Tier:                   string(effective.Tier),
		Closed:                 effective.Closed,
		Description:            effective.Description,
		Slots:                  slots,
	}, nil
}
