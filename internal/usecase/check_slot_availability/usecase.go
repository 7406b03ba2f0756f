package check_slot_availability

import (
	"context"
	"fmt"
	"time"
)

// UseCase use case проверки, что интервал целиком попадает в рабочее окно
type UseCase struct {
	repo   ScheduleRepository
	engine Engine
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ScheduleRepository, engine Engine, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		engine: engine,
		logger: logger,
	}
}

// Execute проверяет доступность интервала.
// Пустой или перевернутый интервал не ошибка, он просто недоступен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Start.IsZero() || req.End.IsZero() {
		uc.logger.Warn("CheckSlotAvailability: start and end are required")
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	cfg, err := uc.repo.GetOrCreateDefault(ctx)
	if err != nil {
		uc.logger.Error("CheckSlotAvailability: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	available := uc.engine.IsSlotAvailable(req.Start, req.End, cfg)

	uc.logger.Info("CheckSlotAvailability: start=%s, end=%s, available=%t",
		req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339), available)

	return &Response{
		Start:     req.Start,
		End:       req.End,
		Date:      uc.engine.DateOf(req.Start),
		Available: available,
	}, nil
}
