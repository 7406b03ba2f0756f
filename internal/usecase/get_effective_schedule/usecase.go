package get_effective_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/availability"
)

// UseCase use case для получения действующего расписания на дату
type UseCase struct {
	repo    ScheduleRepository
	engine  Engine
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ScheduleRepository, engine Engine, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		repo:    repo,
		engine:  engine,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute определяет, какой уровень расписания действует на дату, и возвращает рабочие интервалы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetEffectiveSchedule: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	cfg, err := uc.repo.GetOrCreateDefault(ctx)
	if err != nil {
		uc.logger.Error("GetEffectiveSchedule: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	effective := availability.Resolve(req.Date, cfg)
	uc.metrics.RecordResolution(string(effective.Tier), effective.Closed)

	anchored := uc.engine.Anchor(req.Date, effective.TimeSlots)
	windows := make([]Window, 0, len(anchored))
	for i, w := range anchored {
		windows = append(windows, Window{
			TimeSlot:  effective.TimeSlots[i],
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	uc.logger.Info("GetEffectiveSchedule: date=%s, tier=%s, closed=%t, windows=%d",
		req.Date, effective.Tier, effective.Closed, len(windows))

	return &Response{
		Date:        req.Date,
		Tier:        string(effective.Tier),
		Closed:      effective.Closed,
		Description: effective.Description,
		Windows:     windows,
	}, nil
}
