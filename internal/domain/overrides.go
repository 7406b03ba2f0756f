package domain

import "fmt"

// SpecialDateType classifies a one-off date override
type SpecialDateType string

const (
	SpecialDateHoliday       SpecialDateType = "holiday"
	SpecialDateModifiedHours SpecialDateType = "modified_hours"
	SpecialDateVacation      SpecialDateType = "vacation"
)

// ParseSpecialDateType rejects anything outside the three known types
func ParseSpecialDateType(s string) (SpecialDateType, error) {
	t := SpecialDateType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSpecialDateType, s)
	}
	return t, nil
}

// IsValid returns true for the known special date types
func (t SpecialDateType) IsValid() bool {
	switch t {
	case SpecialDateHoliday, SpecialDateModifiedHours, SpecialDateVacation:
		return true
	default:
		return false
	}
}

// SpecialDate overrides one exact calendar date. Highest precedence.
// TimeSlots is meaningful only when IsFullDayOff is false.
type SpecialDate struct {
	Date         Date
	Type         SpecialDateType
	Description  string
	IsFullDayOff bool
	TimeSlots    []TimeSlot
}

// Matches returns true if the special date falls on date
func (s *SpecialDate) Matches(date Date) bool {
	return s.Date.Equal(date)
}

// RecurringHoliday repeats every year on Month/Day.
// Day is not checked against the month length, so Feb 30 never matches.
type RecurringHoliday struct {
	Month        int
	Day          int
	Description  string
	IsFullDayOff bool
	TimeSlots    []TimeSlot
}

// Matches returns true if date has the holiday's month and day, in any year
func (h *RecurringHoliday) Matches(date Date) bool {
	return int(date.Month) == h.Month && date.Day == h.Day
}

// SeasonalSchedule applies to every date in [StartDate, EndDate] inclusive.
// When Schedule is set it replaces the default weekly schedule for the period.
type SeasonalSchedule struct {
	StartDate       Date
	EndDate         Date
	Description     string
	IsFullPeriodOff bool
	Schedule        *WeeklySchedule
}

// Contains returns true if date lies within the period, endpoints included
func (s *SeasonalSchedule) Contains(date Date) bool {
	return !date.Before(s.StartDate) && !date.After(s.EndDate)
}

// HasSchedule returns true if the season carries its own weekly pattern
func (s *SeasonalSchedule) HasSchedule() bool {
	return s.Schedule != nil
}
