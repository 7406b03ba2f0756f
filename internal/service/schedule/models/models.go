package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// Общие модели

// TimeSlot интервал рабочего времени "HH:MM"-"HH:MM"
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DaySchedule расписание одного дня недели
type DaySchedule struct {
	Enabled   bool       `json:"enabled"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// WeeklySchedule недельное расписание; nil означает, что день не передан
type WeeklySchedule struct {
	Monday    *DaySchedule `json:"monday"`
	Tuesday   *DaySchedule `json:"tuesday"`
	Wednesday *DaySchedule `json:"wednesday"`
	Thursday  *DaySchedule `json:"thursday"`
	Friday    *DaySchedule `json:"friday"`
	Saturday  *DaySchedule `json:"saturday"`
	Sunday    *DaySchedule `json:"sunday"`
}

// SpecialDate особая дата (YYYY-MM-DD)
// IsFullDayOff по умолчанию true
type SpecialDate struct {
	Date         string     `json:"date"`
	Type         string     `json:"type"`
	Description  string     `json:"description"`
	IsFullDayOff *bool      `json:"isFullDayOff,omitempty"`
	TimeSlots    []TimeSlot `json:"timeSlots,omitempty"`
}

// RecurringHoliday ежегодный праздник
// IsFullDayOff по умолчанию true
type RecurringHoliday struct {
	Month        int        `json:"month"`
	Day          int        `json:"day"`
	Description  string     `json:"description"`
	IsFullDayOff *bool      `json:"isFullDayOff,omitempty"`
	TimeSlots    []TimeSlot `json:"timeSlots,omitempty"`
}

// SeasonalSchedule сезонное расписание (даты включительно)
type SeasonalSchedule struct {
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	Description     string          `json:"description"`
	IsFullPeriodOff bool            `json:"isFullPeriodOff"`
	Schedule        *WeeklySchedule `json:"schedule,omitempty"`
}

// Request модели

// UpdateScheduleRequest полная замена конфигурации расписания
type UpdateScheduleRequest struct {
	UserID            int64              `json:"-"`
	Schedule          *WeeklySchedule    `json:"schedule"`
	SessionDuration   *int               `json:"sessionDuration"`
	SpecialDates      []SpecialDate      `json:"specialDates"`
	RecurringHolidays []RecurringHoliday `json:"recurringHolidays"`
	SeasonalSchedules []SeasonalSchedule `json:"seasonalSchedules"`

	// Поля ответа GET, которые сервер заполняет сам. Принимаются и игнорируются,
	// чтобы полученный документ можно было отправить обратно после правки.
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
	Warnings    []string   `json:"warnings,omitempty"`
}

// Response модели

// ScheduleResponse конфигурация расписания
type ScheduleResponse struct {
	Schedule          WeeklySchedule     `json:"schedule"`
	SessionDuration   int                `json:"sessionDuration"`
	SpecialDates      []SpecialDate      `json:"specialDates"`
	RecurringHolidays []RecurringHoliday `json:"recurringHolidays"`
	SeasonalSchedules []SeasonalSchedule `json:"seasonalSchedules"`
	CreatedAt         time.Time          `json:"createdAt"`
	LastUpdated       time.Time          `json:"lastUpdated"`
	Warnings          []string           `json:"warnings,omitempty"`
}

// FromDomain конвертирует доменную конфигурацию в ответ
func FromDomain(cfg *domain.ScheduleConfig) *ScheduleResponse {
	resp := &ScheduleResponse{
		Schedule:          FromWeekly(&cfg.Weekly),
		SessionDuration:   cfg.SessionDurationMinutes,
		SpecialDates:      make([]SpecialDate, 0, len(cfg.SpecialDates)),
		RecurringHolidays: make([]RecurringHoliday, 0, len(cfg.RecurringHolidays)),
		SeasonalSchedules: make([]SeasonalSchedule, 0, len(cfg.SeasonalSchedules)),
		CreatedAt:         cfg.CreatedAt,
		LastUpdated:       cfg.UpdatedAt,
	}

	for _, sd := range cfg.SpecialDates {
		resp.SpecialDates = append(resp.SpecialDates, SpecialDate{
			Date:         sd.Date.String(),
			Type:         string(sd.Type),
			Description:  sd.Description,
			IsFullDayOff: ptr.Ptr(sd.IsFullDayOff),
			TimeSlots:    FromTimeSlots(sd.TimeSlots),
		})
	}

	for _, h := range cfg.RecurringHolidays {
		resp.RecurringHolidays = append(resp.RecurringHolidays, RecurringHoliday{
			Month:        h.Month,
			Day:          h.Day,
			Description:  h.Description,
			IsFullDayOff: ptr.Ptr(h.IsFullDayOff),
			TimeSlots:    FromTimeSlots(h.TimeSlots),
		})
	}

	for _, s := range cfg.SeasonalSchedules {
		season := SeasonalSchedule{
			StartDate:       s.StartDate.String(),
			EndDate:         s.EndDate.String(),
			Description:     s.Description,
			IsFullPeriodOff: s.IsFullPeriodOff,
		}
		if s.Schedule != nil {
			season.Schedule = ptr.Ptr(FromWeekly(s.Schedule))
		}
		resp.SeasonalSchedules = append(resp.SeasonalSchedules, season)
	}

	return resp
}

// FromWeekly конвертирует недельное расписание, все семь дней заполнены
func FromWeekly(w *domain.WeeklySchedule) WeeklySchedule {
	day := func(d domain.DaySchedule) *DaySchedule {
		return &DaySchedule{Enabled: d.Enabled, TimeSlots: FromTimeSlots(d.TimeSlots)}
	}
	return WeeklySchedule{
		Monday:    day(w.Monday),
		Tuesday:   day(w.Tuesday),
		Wednesday: day(w.Wednesday),
		Thursday:  day(w.Thursday),
		Friday:    day(w.Friday),
		Saturday:  day(w.Saturday),
		Sunday:    day(w.Sunday),
	}
}

// FromTimeSlots конвертирует слоты в строковое представление
func FromTimeSlots(slots []domain.TimeSlot) []TimeSlot {
	result := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		result = append(result, TimeSlot{StartTime: s.StartTime.String(), EndTime: s.EndTime.String()})
	}
	return result
}

// Day возвращает расписание дня недели по time.Weekday
func (w *WeeklySchedule) Day(weekday time.Weekday) *DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return nil
	}
}
