package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

// Результаты обновления для метрик
const (
	UpdateResultOK        = "ok"
	UpdateResultInvalid   = "invalid"
	UpdateResultForbidden = "forbidden"
	UpdateResultError     = "error"
)

// Service сервис администрирования расписания
type Service struct {
	repo    ScheduleRepository
	access  AccessChecker
	metrics MetricsRecorder
	loc     *time.Location
	logger  Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	repo ScheduleRepository,
	access AccessChecker,
	metrics MetricsRecorder,
	loc *time.Location,
	logger Logger,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo:    repo,
		access:  access,
		metrics: metrics,
		loc:     loc,
		logger:  logger,
	}
}

// Get возвращает текущую конфигурацию расписания, при отсутствии создает дефолтную
func (s *Service) Get(ctx context.Context) (*models.ScheduleResponse, error) {
	cfg, err := s.repo.GetOrCreateDefault(ctx)
	if err != nil {
		s.logger.Error("Get: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	return models.FromDomain(cfg), nil
}

// Update полностью заменяет конфигурацию расписания.
// Доступно только администраторам. Конкурентные обновления не блокируются,
// сохраняется последняя запись.
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: replacing schedule config by user=%d", req.UserID)

	// 1. Проверяем права доступа
	isAdmin, err := s.access.IsAdmin(ctx, req.UserID)
	if err != nil {
		s.logger.Error("Update: failed to check access for user=%d: %v", req.UserID, err)
		s.metrics.RecordScheduleUpdate(UpdateResultError)
		return nil, fmt.Errorf("%w: access check: %v", ErrInternal, err)
	}
	if !isAdmin {
		s.logger.Warn("Update: user=%d is not a schedule admin", req.UserID)
		s.metrics.RecordScheduleUpdate(UpdateResultForbidden)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем и собираем доменную модель
	cfg, err := buildConfig(req, s.loc)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		s.metrics.RecordScheduleUpdate(UpdateResultInvalid)
		return nil, err
	}

	// 3. Неоднозначности не блокируют сохранение, но возвращаются клиенту
	warnings := collectWarnings(cfg)
	for _, w := range warnings {
		s.logger.Warn("Update: data quality: %s", w)
	}

	// 4. Сохраняем
	stored, err := s.repo.Replace(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: failed to replace schedule config: %v", err)
		s.metrics.RecordScheduleUpdate(UpdateResultError)
		return nil, fmt.Errorf("%w: failed to replace schedule config: %v", ErrInternal, err)
	}

	s.metrics.RecordScheduleUpdate(UpdateResultOK)
	s.logger.Info("Update: schedule config replaced by user=%d: special_dates=%d, recurring_holidays=%d, seasons=%d, warnings=%d",
		req.UserID, len(stored.SpecialDates), len(stored.RecurringHolidays), len(stored.SeasonalSchedules), len(warnings))

	resp := models.FromDomain(stored)
	resp.Warnings = warnings
	return resp, nil
}

// IsClientError возвращает true для ошибок, вызванных запросом клиента
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrAccessDenied)
}
