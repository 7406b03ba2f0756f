package domain

import (
	"fmt"
	"time"
)

// ScheduleConfig is the singleton availability configuration of a deployment.
// It is always replaced as a whole; sub-entities have no identity of their own.
type ScheduleConfig struct {
	Weekly                 WeeklySchedule
	SessionDurationMinutes int
	SpecialDates           []SpecialDate
	RecurringHolidays      []RecurringHoliday
	SeasonalSchedules      []SeasonalSchedule
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// DefaultScheduleConfig returns the configuration materialized when none is stored:
// Mon-Fri 08:00-17:00 enabled, Sat/Sun disabled with the same hours kept, 60 minute sessions.
func DefaultScheduleConfig() *ScheduleConfig {
	workday := func(enabled bool) DaySchedule {
		return DaySchedule{
			Enabled:   enabled,
			TimeSlots: []TimeSlot{MustTimeSlot(DefaultOpenTime, DefaultCloseTime)},
		}
	}

	return &ScheduleConfig{
		Weekly: WeeklySchedule{
			Monday:    workday(true),
			Tuesday:   workday(true),
			Wednesday: workday(true),
			Thursday:  workday(true),
			Friday:    workday(true),
			Saturday:  workday(false),
			Sunday:    workday(false),
		},
		SessionDurationMinutes: DefaultSessionDurationMinutes,
		SpecialDates:           []SpecialDate{},
		RecurringHolidays:      []RecurringHoliday{},
		SeasonalSchedules:      []SeasonalSchedule{},
	}
}

// ValidateSessionDuration checks the session length bounds
func ValidateSessionDuration(minutes int) error {
	if minutes < MinSessionDurationMinutes || minutes > MaxSessionDurationMinutes {
		return fmt.Errorf("%w: %d minutes, expected %d..%d",
			ErrInvalidSessionDuration, minutes, MinSessionDurationMinutes, MaxSessionDurationMinutes)
	}
	return nil
}
