package schedule

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

// buildConfig валидирует запрос и собирает доменную конфигурацию.
// Любая ошибка оборачивается в ErrInvalidInput.
// Даты в формате RFC3339 приводятся к календарной дате в зоне loc.
func buildConfig(req *models.UpdateScheduleRequest, loc *time.Location) (*domain.ScheduleConfig, error) {
	if req.Schedule == nil {
		return nil, fmt.Errorf("%w: schedule is required", ErrInvalidInput)
	}

	if req.SessionDuration == nil {
		return nil, fmt.Errorf("%w: sessionDuration is required", ErrInvalidInput)
	}

	if err := domain.ValidateSessionDuration(*req.SessionDuration); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	weekly, err := toWeekly(req.Schedule, "schedule")
	if err != nil {
		return nil, err
	}

	cfg := &domain.ScheduleConfig{
		Weekly:                 weekly,
		SessionDurationMinutes: *req.SessionDuration,
		SpecialDates:           make([]domain.SpecialDate, 0, len(req.SpecialDates)),
		RecurringHolidays:      make([]domain.RecurringHoliday, 0, len(req.RecurringHolidays)),
		SeasonalSchedules:      make([]domain.SeasonalSchedule, 0, len(req.SeasonalSchedules)),
	}

	for i, sd := range req.SpecialDates {
		specialDate, err := toSpecialDate(sd, fmt.Sprintf("specialDates[%d]", i), loc)
		if err != nil {
			return nil, err
		}
		cfg.SpecialDates = append(cfg.SpecialDates, specialDate)
	}

	for i, h := range req.RecurringHolidays {
		holiday, err := toRecurringHoliday(h, fmt.Sprintf("recurringHolidays[%d]", i))
		if err != nil {
			return nil, err
		}
		cfg.RecurringHolidays = append(cfg.RecurringHolidays, holiday)
	}

	for i, s := range req.SeasonalSchedules {
		season, err := toSeasonalSchedule(s, fmt.Sprintf("seasonalSchedules[%d]", i), loc)
		if err != nil {
			return nil, err
		}
		cfg.SeasonalSchedules = append(cfg.SeasonalSchedules, season)
	}

	return cfg, nil
}

func toSpecialDate(sd models.SpecialDate, field string, loc *time.Location) (domain.SpecialDate, error) {
	if sd.Date == "" || sd.Type == "" {
		return domain.SpecialDate{}, fmt.Errorf("%w: %s: date and type are required", ErrInvalidInput, field)
	}

	if err := validateDescription(sd.Description, field); err != nil {
		return domain.SpecialDate{}, err
	}

	date, err := domain.ParseDateIn(sd.Date, loc)
	if err != nil {
		return domain.SpecialDate{}, fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, err)
	}

	dateType, err := domain.ParseSpecialDateType(sd.Type)
	if err != nil {
		return domain.SpecialDate{}, fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, err)
	}

	slots, err := toTimeSlots(sd.TimeSlots, field)
	if err != nil {
		return domain.SpecialDate{}, err
	}

	return domain.SpecialDate{
		Date:         date,
		Type:         dateType,
		Description:  sd.Description,
		IsFullDayOff: fullDayOff(sd.IsFullDayOff),
		TimeSlots:    slots,
	}, nil
}

func toRecurringHoliday(h models.RecurringHoliday, field string) (domain.RecurringHoliday, error) {
	if h.Month < domain.MinMonth || h.Month > domain.MaxMonth {
		return domain.RecurringHoliday{}, fmt.Errorf("%w: %s: month must be in %d..%d, got %d",
			ErrInvalidInput, field, domain.MinMonth, domain.MaxMonth, h.Month)
	}

	if h.Day < domain.MinDayOfMonth || h.Day > domain.MaxDayOfMonth {
		return domain.RecurringHoliday{}, fmt.Errorf("%w: %s: day must be in %d..%d, got %d",
			ErrInvalidInput, field, domain.MinDayOfMonth, domain.MaxDayOfMonth, h.Day)
	}

	if err := validateDescription(h.Description, field); err != nil {
		return domain.RecurringHoliday{}, err
	}

	slots, err := toTimeSlots(h.TimeSlots, field)
	if err != nil {
		return domain.RecurringHoliday{}, err
	}

	return domain.RecurringHoliday{
		Month:        h.Month,
		Day:          h.Day,
		Description:  h.Description,
		IsFullDayOff: fullDayOff(h.IsFullDayOff),
		TimeSlots:    slots,
	}, nil
}

func toSeasonalSchedule(s models.SeasonalSchedule, field string, loc *time.Location) (domain.SeasonalSchedule, error) {
	if s.StartDate == "" || s.EndDate == "" {
		return domain.SeasonalSchedule{}, fmt.Errorf("%w: %s: startDate and endDate are required", ErrInvalidInput, field)
	}

	if err := validateDescription(s.Description, field); err != nil {
		return domain.SeasonalSchedule{}, err
	}

	start, err := domain.ParseDateIn(s.StartDate, loc)
	if err != nil {
		return domain.SeasonalSchedule{}, fmt.Errorf("%w: %s: startDate: %v", ErrInvalidInput, field, err)
	}

	end, err := domain.ParseDateIn(s.EndDate, loc)
	if err != nil {
		return domain.SeasonalSchedule{}, fmt.Errorf("%w: %s: endDate: %v", ErrInvalidInput, field, err)
	}

	if start.After(end) {
		return domain.SeasonalSchedule{}, fmt.Errorf("%w: %s: startDate %s is after endDate %s",
			ErrInvalidInput, field, start, end)
	}

	season := domain.SeasonalSchedule{
		StartDate:       start,
		EndDate:         end,
		Description:     s.Description,
		IsFullPeriodOff: s.IsFullPeriodOff,
	}

	if s.Schedule != nil {
		weekly, err := toWeekly(s.Schedule, field+".schedule")
		if err != nil {
			return domain.SeasonalSchedule{}, err
		}
		season.Schedule = &weekly
	}

	return season, nil
}

// toWeekly требует наличия всех семи дней
func toWeekly(w *models.WeeklySchedule, field string) (domain.WeeklySchedule, error) {
	var weekly domain.WeeklySchedule

	for _, wd := range domain.Weekdays {
		name := domain.WeekdayName(wd)
		day := w.Day(wd)
		if day == nil {
			return domain.WeeklySchedule{}, fmt.Errorf("%w: %s.%s is required", ErrInvalidInput, field, name)
		}

		slots, err := toTimeSlots(day.TimeSlots, field+"."+name)
		if err != nil {
			return domain.WeeklySchedule{}, err
		}

		weekly.SetDay(wd, domain.DaySchedule{Enabled: day.Enabled, TimeSlots: slots})
	}

	return weekly, nil
}

func toTimeSlots(slots []models.TimeSlot, field string) ([]domain.TimeSlot, error) {
	result := make([]domain.TimeSlot, 0, len(slots))
	for i, s := range slots {
		slot, err := domain.NewTimeSlot(s.StartTime, s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.timeSlots[%d]: %v", ErrInvalidInput, field, i, err)
		}
		result = append(result, slot)
	}
	return result, nil
}

func validateDescription(description, field string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: %s: description is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: %s: description is longer than %d characters",
			ErrInvalidInput, field, domain.MaxDescriptionLength)
	}
	return nil
}

// fullDayOff по умолчанию выходной на весь день
func fullDayOff(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
